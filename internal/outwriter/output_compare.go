package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/huangsam/gearpath/internal/contract"
	"github.com/huangsam/gearpath/schema"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// PrintComparisonResults outputs the comparison, dispatching based on the output format configured.
func PrintComparisonResults(result schema.ComparisonResult, cfg *contract.Config, duration time.Duration) error {
	msg := "Wrote table"
	switch cfg.Output {
	case schema.JSONOut:
		msg = "Wrote JSON"
	case schema.CSVOut:
		msg = "Wrote CSV"
	case schema.ParquetOut:
		return fmt.Errorf("parquet output is not supported for comparisons")
	}
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		return WriteComparisonResults(w, result, cfg, duration)
	}, msg)
}

// WriteComparisonResults outputs the comparison results, dispatching based on the output format configured.
func WriteComparisonResults(w io.Writer, result schema.ComparisonResult, cfg *contract.Config, duration time.Duration) error {
	fmtFloat, intFmt := createFormatters(cfg.Precision)

	switch cfg.Output {
	case schema.JSONOut:
		if err := writeJSON(w, result); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.CSVOut:
		csvWriter := csv.NewWriter(w)
		defer csvWriter.Flush()
		if err := writeCSVResultsForComparison(csvWriter, result, fmtFloat, intFmt); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	default:
		return writeComparisonTable(result, cfg, fmtFloat, intFmt, duration, w)
	}
	return nil
}

// formatDelta colors a gain ratio delta against the baseline. Lower easiest gears and higher
// hardest gears both widen the range, so the caller picks which sign is good.
func formatDelta(delta float64, precision int, higherIsBetter bool, good, bad, same func(...any) string) string {
	switch {
	case delta > 0:
		text := fmt.Sprintf("+%.*f ▲", precision, delta)
		if higherIsBetter {
			return good(text)
		}
		return bad(text)
	case delta < 0:
		text := fmt.Sprintf("%.*f ▼", precision, delta)
		if higherIsBetter {
			return bad(text)
		}
		return good(text)
	default:
		return same(fmt.Sprintf("%.*f", precision, 0.0))
	}
}

// writeComparisonTable writes one row per drivetrain with its deltas against the baseline.
func writeComparisonTable(result schema.ComparisonResult, cfg *contract.Config, fmtFloat func(float64) string, intFmt string, duration time.Duration, writer io.Writer) error {
	table := tablewriter.NewWriter(writer)
	defer func() { _ = table.Close() }()

	headers := []string{
		"Drivetrain",
		"Easiest",
		"Hardest",
		"Range",
		"Gears",
		"Mean Step",
		"Max Step",
		"Δ Easiest",
		"Δ Hardest",
		fmt.Sprintf("In %g-%g", result.RangeLow, result.RangeHigh),
	}
	table.Header(headers)

	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignRight
	})

	var red, green, yellow func(...any) string
	if cfg.UseColors {
		red = color.New(color.FgRed).SprintFunc()
		green = color.New(color.FgGreen).SprintFunc()
		yellow = color.New(color.FgYellow).SprintFunc()
	} else {
		red = fmt.Sprint
		green = fmt.Sprint
		yellow = fmt.Sprint
	}

	titleWidth := GetMaxTableTitleWidth(cfg)
	var data [][]string
	for _, d := range result.Details {
		row := []string{
			contract.TruncateTitle(d.Drivetrain.Title, titleWidth),
			fmtFloat(d.Easiest),
			fmtFloat(d.Hardest),
			fmtFloat(d.RangeMultiple) + "x",
			fmt.Sprintf(intFmt, d.PathSize),
			fmtPercent(d.MeanStep),
			fmtPercent(d.MaxStep),
			formatDelta(d.DeltaEasiest, cfg.Precision, false, green, red, yellow),
			formatDelta(d.DeltaHardest, cfg.Precision, true, green, red, yellow),
			strconv.Itoa(len(d.InRange)),
		}
		data = append(data, row)
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	s := result.Summary
	if _, err := fmt.Fprintf(writer, "Compared %d drivetrains against baseline %s\n", len(result.Details), s.Baseline); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(writer, "Widest: %s, Smoothest: %s, Most gears: %s\n", s.Widest, s.Smoothest, s.MostGears); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(writer, "Comparison completed in %v\n", duration); err != nil {
		return err
	}
	return nil
}

// writeCSVResultsForComparison writes the schema.ComparisonResult data to a CSV writer.
func writeCSVResultsForComparison(w *csv.Writer, result schema.ComparisonResult, fmtFloat func(float64) string, intFmt string) error {
	header := []string{
		"drivetrain",
		"easiest",
		"hardest",
		"range_multiple",
		"path_size",
		"mean_step",
		"max_step",
		"stddev_step",
		"delta_easiest",
		"delta_hardest",
		"in_range",
	}
	if err := w.Write(header); err != nil {
		return err
	}

	for _, d := range result.Details {
		row := []string{
			d.Drivetrain.Title,
			fmtFloat(d.Easiest),
			fmtFloat(d.Hardest),
			fmtFloat(d.RangeMultiple),
			fmt.Sprintf(intFmt, d.PathSize),
			fmtFloat(d.MeanStep),
			fmtFloat(d.MaxStep),
			fmtFloat(d.StdDevStep),
			fmtFloat(d.DeltaEasiest),
			fmtFloat(d.DeltaHardest),
			strings.Join(d.InRange, "|"),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return nil
}
