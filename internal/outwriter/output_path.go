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

// PrintPathResults outputs the best paths, dispatching based on the output format configured.
func PrintPathResults(results []schema.PathResult, cfg *contract.Config, duration time.Duration) error {
	switch cfg.Output {
	case schema.ParquetOut:
		return writeParquet(parquet.ConvertPathResults(results), cfg.OutputFile)
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return WritePathResults(w, results, cfg, duration)
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return WritePathResults(w, results, cfg, duration)
		}, "Wrote CSV")
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return WritePathResults(w, results, cfg, duration)
		}, "Wrote table")
	}
}

// WritePathResults writes the best paths to w in the configured text format.
func WritePathResults(w io.Writer, results []schema.PathResult, cfg *contract.Config, duration time.Duration) error {
	fmtFloat, intFmt := createFormatters(cfg.Precision)

	switch cfg.Output {
	case schema.JSONOut:
		if err := writeJSONResultsForPaths(w, results); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.CSVOut:
		if err := writeCSVResultsForPaths(w, results, cfg, fmtFloat, intFmt); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	default:
		for i, r := range results {
			if i > 0 {
				if _, err := fmt.Fprintln(w); err != nil {
					return err
				}
			}
			if err := writePathTable(w, r, cfg, fmtFloat); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintf(w, "Computed %d drivetrain(s) in %v\n", len(results), duration); err != nil {
			return err
		}
	}
	return nil
}

// writePathTable renders one best path, followed by the remaining gears when present.
func writePathTable(w io.Writer, r schema.PathResult, cfg *contract.Config, fmtFloat func(float64) string) error {
	if _, err := fmt.Fprintf(w, "🚲 %s\n", r.Drivetrain.Title); err != nil {
		return err
	}

	table := tablewriter.NewWriter(w)
	defer func() { _ = table.Close() }()

	headers := []string{"#", "Gear", "Gain", "Inches", "Dev " + schema.DistanceUnit(r.Units)}
	headers = append(headers, speedHeaders(r.RPMs, r.Units)...)
	headers = append(headers, "Step", "Label")
	table.Header(headers)

	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignRight
	})

	var data [][]string
	for i, g := range r.Path {
		step, label := "", ""
		if i > 0 {
			step = fmtPercent(g.StepFromPrevious)
			label = contract.GetStepLabel(g.StepFromPrevious, cfg.UseColors)
		}
		data = append(data, pathRow(strconv.Itoa(i+1), g, fmtFloat, step, label))
	}
	for _, g := range r.Remaining {
		data = append(data, pathRow("-", g, fmtFloat, "", "Redundant"))
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	s := r.Summary
	if _, err := fmt.Fprintf(w, "Best path: %d of %d gears, range %.2fx (%s, %s)\n",
		s.Gears, r.Drivetrain.Size, s.RangeMultiple, r.Drivetrain.Strategy, r.Drivetrain.Objective); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "Steps: mean %s, min %s, max %s, stddev %s\n",
		fmtPercent(s.MeanStep), fmtPercent(s.MinStep), fmtPercent(s.MaxStep), fmtPercent(s.StdDevStep))
	return err
}

// pathRow formats one table row of the path view.
func pathRow(pos string, g schema.GearResult, fmtFloat func(float64) string, step, label string) []string {
	row := []string{pos, g.Label, fmtFloat(g.GainRatio), fmtFloat(g.GearInches), fmtFloat(g.Development)}
	row = append(row, speedValues(g, fmtFloat)...)
	return append(row, step, label)
}

// writeJSONResultsForPaths writes the best paths with position and step label added.
func writeJSONResultsForPaths(w io.Writer, results []schema.PathResult) error {
	type JSONPathResult struct {
		Drivetrain schema.DrivetrainInfo       `json:"drivetrain"`
		Units      schema.Units                `json:"units"`
		RPMs       []float64                   `json:"rpms"`
		Path       []schema.EnrichedGearResult `json:"path"`
		Remaining  []schema.GearResult         `json:"remaining,omitempty"`
		Summary    schema.PathSummary          `json:"summary"`
	}

	output := make([]JSONPathResult, len(results))
	for i, r := range results {
		output[i] = JSONPathResult{
			Drivetrain: r.Drivetrain,
			Units:      r.Units,
			RPMs:       r.RPMs,
			Path:       schema.EnrichGears(r.Path),
			Remaining:  r.Remaining,
			Summary:    r.Summary,
		}
	}
	return writeJSON(w, output)
}

// writeCSVResultsForPaths writes one CSV line per path gear, then the remaining gears without a position.
func writeCSVResultsForPaths(w io.Writer, results []schema.PathResult, cfg *contract.Config, fmtFloat func(float64) string, intFmt string) error {
	header := []string{
		"drivetrain",
		"position",
		"label",
		"front",
		"rear",
		"hub_ratio",
		"gain_ratio",
		"gear_inches",
		"development",
	}
	header = append(header, speedCSVHeaders(cfg.RPMs)...)
	header = append(header, "step", "step_label", "in_best_path")

	record := func(title, pos string, g schema.GearResult, label string) []string {
		rec := []string{
			title,
			pos,
			g.Label,
			fmt.Sprintf(intFmt, g.Front),
			fmt.Sprintf(intFmt, g.Rear),
			fmtFloat(g.HubRatio),
			fmtFloat(g.GainRatio),
			fmtFloat(g.GearInches),
			fmtFloat(g.Development),
		}
		rec = append(rec, speedValues(g, fmtFloat)...)
		return append(rec, fmtFloat(g.StepFromPrevious), label, strconv.FormatBool(g.InBestPath))
	}

	return writeCSVWithHeader(w, header, func(csvWriter *csv.Writer) error {
		for _, r := range results {
			for _, g := range schema.EnrichGears(r.Path) {
				if err := csvWriter.Write(record(r.Drivetrain.Title, strconv.Itoa(g.Position), g.GearResult, g.StepLabel)); err != nil {
					return err
				}
			}
			for _, g := range r.Remaining {
				if err := csvWriter.Write(record(r.Drivetrain.Title, "", g, "Redundant")); err != nil {
					return err
				}
			}
		}
		return nil
	})
}
