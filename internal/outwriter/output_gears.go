package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/huangsam/gearpath/internal/contract"
	"github.com/huangsam/gearpath/internal/parquet"
	"github.com/huangsam/gearpath/schema"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// PrintGearsResults outputs the gear matrices, dispatching based on the output format configured.
func PrintGearsResults(results []schema.GearsResult, cfg *contract.Config, duration time.Duration) error {
	switch cfg.Output {
	case schema.ParquetOut:
		return writeParquet(parquet.ConvertGearsResults(results), cfg.OutputFile)
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return WriteGearsResults(w, results, cfg, duration)
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return WriteGearsResults(w, results, cfg, duration)
		}, "Wrote CSV")
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return WriteGearsResults(w, results, cfg, duration)
		}, "Wrote table")
	}
}

// WriteGearsResults writes the gear matrices to w in the configured text format.
func WriteGearsResults(w io.Writer, results []schema.GearsResult, cfg *contract.Config, duration time.Duration) error {
	fmtFloat, intFmt := createFormatters(cfg.Precision)

	switch cfg.Output {
	case schema.JSONOut:
		if err := writeJSON(w, results); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.CSVOut:
		if err := writeCSVResultsForGears(w, results, cfg, fmtFloat, intFmt); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	default:
		for i, r := range results {
			if i > 0 {
				if _, err := fmt.Fprintln(w); err != nil {
					return err
				}
			}
			if err := writeGearsTable(w, r, cfg, fmtFloat); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintf(w, "Computed %d drivetrain(s) in %v\n", len(results), duration); err != nil {
			return err
		}
	}
	return nil
}

// ringLabel returns the row title of a chainring, with the hub ratio when the drivetrain has a hub.
func ringLabel(row schema.ChainringRow, hasHub bool) string {
	if !hasHub {
		return strconv.Itoa(row.Front)
	}
	return fmt.Sprintf("%d@%.2f", row.Front, row.HubRatio)
}

// writeGearsTable renders one drivetrain matrix as a table with one line per gear.
func writeGearsTable(w io.Writer, r schema.GearsResult, cfg *contract.Config, fmtFloat func(float64) string) error {
	if _, err := fmt.Fprintf(w, "⚙️  %s\n", r.Drivetrain.Title); err != nil {
		return err
	}

	table := tablewriter.NewWriter(w)
	defer func() { _ = table.Close() }()

	headers := []string{"Ring", "Cog", "Gain", "Step"}
	headers = append(headers, speedHeaders(r.RPMs, r.Units)...)
	headers = append(headers, "Path")
	table.Header(headers)

	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignRight
	})

	hasHub := len(r.Drivetrain.HubRatios) > 1
	inPath := 0
	var data [][]string
	for _, row := range r.Rows {
		for j, g := range row.Gears {
			ring, step := "", ""
			if j == 0 {
				ring = ringLabel(row, hasHub)
			} else {
				step = fmtPercent(g.StepFromPrevious)
			}
			if g.InBestPath {
				inPath++
			}
			line := []string{ring, strconv.Itoa(g.Rear), fmtFloat(g.GainRatio), step}
			line = append(line, speedValues(g, fmtFloat)...)
			line = append(line, contract.GetPathMarker(g.InBestPath, cfg.UseColors))
			data = append(data, line)
		}
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "%d gears, %d in best path (%s, %s, threshold %s)\n",
		r.Drivetrain.Size, inPath, r.Drivetrain.Strategy, r.Drivetrain.Objective, fmtPercent(r.Drivetrain.Threshold))
	return err
}

// writeCSVResultsForGears writes one CSV line per gear of every drivetrain.
func writeCSVResultsForGears(w io.Writer, results []schema.GearsResult, cfg *contract.Config, fmtFloat func(float64) string, intFmt string) error {
	header := []string{
		"drivetrain",
		"label",
		"front",
		"rear",
		"hub_ratio",
		"gear_ratio",
		"gain_ratio",
		"gear_inches",
		"development",
		"step",
	}
	header = append(header, speedCSVHeaders(cfg.RPMs)...)
	header = append(header, "in_best_path", "units")

	return writeCSVWithHeader(w, header, func(csvWriter *csv.Writer) error {
		for _, r := range results {
			for _, row := range r.Rows {
				for _, g := range row.Gears {
					rec := []string{
						r.Drivetrain.Title,
						g.Label,
						fmt.Sprintf(intFmt, g.Front),
						fmt.Sprintf(intFmt, g.Rear),
						fmtFloat(g.HubRatio),
						fmtFloat(g.GearRatio),
						fmtFloat(g.GainRatio),
						fmtFloat(g.GearInches),
						fmtFloat(g.Development),
						fmtFloat(g.StepFromPrevious),
					}
					rec = append(rec, speedValues(g, fmtFloat)...)
					rec = append(rec, strconv.FormatBool(g.InBestPath), string(r.Units))
					if err := csvWriter.Write(rec); err != nil {
						return err
					}
				}
			}
		}
		return nil
	})
}
