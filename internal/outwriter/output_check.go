package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/huangsam/gearpath/internal/contract"
	"github.com/huangsam/gearpath/schema"
)

// maxFailuresShown caps the violations listed in text output.
const maxFailuresShown = 5

// PrintCheckResults outputs the check result, dispatching based on the output format configured.
func PrintCheckResults(result schema.CheckResult, cfg *contract.Config, duration time.Duration) error {
	msg := "Wrote text"
	switch cfg.Output {
	case schema.JSONOut:
		msg = "Wrote JSON"
	case schema.CSVOut:
		msg = "Wrote CSV"
	case schema.ParquetOut:
		return fmt.Errorf("parquet output is not supported for checks")
	}
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		return WriteCheckResults(w, result, cfg, duration)
	}, msg)
}

// WriteCheckResults writes the check result to w in the configured text format.
func WriteCheckResults(w io.Writer, result schema.CheckResult, cfg *contract.Config, duration time.Duration) error {
	fmtFloat, _ := createFormatters(cfg.Precision)

	switch cfg.Output {
	case schema.JSONOut:
		if err := writeJSON(w, result); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
		return nil
	case schema.CSVOut:
		if err := writeCSVResultsForCheck(w, result, fmtFloat); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
		return nil
	}

	if err := writeCheckHeader(w, result, duration); err != nil {
		return err
	}
	if result.Passed {
		return writeCheckSuccess(w, result)
	}
	return writeCheckFailure(w, result)
}

// writeCheckHeader prints the common header information for check results.
func writeCheckHeader(w io.Writer, result schema.CheckResult, duration time.Duration) error {
	minGears := "disabled"
	if result.MinGears > 0 {
		minGears = strconv.Itoa(result.MinGears)
	}
	labels := []string{"Max step:", "Min gears:"}
	values := []string{fmtPercent(result.MaxStep), minGears}

	maxLabelLen := 0
	for _, label := range labels {
		maxLabelLen = max(maxLabelLen, len(label))
	}

	if _, err := fmt.Fprintln(w, "Step Policy Check Results:"); err != nil {
		return err
	}
	for i, label := range labels {
		if _, err := fmt.Fprintf(w, "  %-*s %s\n", maxLabelLen+1, label, values[i]); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "\nChecked %d drivetrain(s) in %v\n\n", result.Checked, duration)
	return err
}

// writeWorstSteps lists the largest step of every drivetrain.
func writeWorstSteps(w io.Writer, result schema.CheckResult) error {
	if _, err := fmt.Fprintln(w, "Largest steps observed:"); err != nil {
		return err
	}
	for _, s := range result.WorstSteps {
		if s.From == "" {
			if _, err := fmt.Fprintf(w, "  %s: single gear path\n", s.Drivetrain); err != nil {
				return err
			}
			continue
		}
		if _, err := fmt.Fprintf(w, "  %s: %s (%s -> %s), %d gears\n", s.Drivetrain, fmtPercent(s.Step), s.From, s.To, s.PathSize); err != nil {
			return err
		}
	}
	return nil
}

// writeCheckSuccess prints the success case output.
func writeCheckSuccess(w io.Writer, result schema.CheckResult) error {
	if _, err := fmt.Fprintf(w, "✅ All drivetrains passed step checks\n\n"); err != nil {
		return err
	}
	return writeWorstSteps(w, result)
}

// formatFailure describes one violation against its limit.
func formatFailure(f schema.CheckFailure) string {
	if f.Reason == schema.MinGearsReason {
		return fmt.Sprintf("%s (gears: %d < minimum: %d)", f.Drivetrain, int(f.Value), int(f.Limit))
	}
	return fmt.Sprintf("%s (step: %s > limit: %s)", f.Drivetrain, fmtPercent(f.Value), fmtPercent(f.Limit))
}

// writeCheckFailure prints the failure case output.
func writeCheckFailure(w io.Writer, result schema.CheckResult) error {
	if _, err := fmt.Fprintf(w, "❌ Step check failed: %d violation(s) found across %d drivetrain(s)\n\n", len(result.Failures), result.Checked); err != nil {
		return err
	}
	for i, f := range result.Failures {
		if i >= maxFailuresShown {
			if _, err := fmt.Fprintf(w, "  ... and %d more\n", len(result.Failures)-maxFailuresShown); err != nil {
				return err
			}
			break
		}
		if _, err := fmt.Fprintf(w, "  - %s\n", formatFailure(f)); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintln(w); err != nil {
		return err
	}
	return writeWorstSteps(w, result)
}

// writeCSVResultsForCheck writes one line per violation.
func writeCSVResultsForCheck(w io.Writer, result schema.CheckResult, fmtFloat func(float64) string) error {
	header := []string{"drivetrain", "reason", "value", "limit"}
	return writeCSVWithHeader(w, header, func(csvWriter *csv.Writer) error {
		for _, f := range result.Failures {
			if err := csvWriter.Write([]string{f.Drivetrain, f.Reason, fmtFloat(f.Value), fmtFloat(f.Limit)}); err != nil {
				return err
			}
		}
		return nil
	})
}
