package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"

	"github.com/huangsam/gearpath/internal/contract"
	"github.com/huangsam/gearpath/schema"
)

// stepLabelOrder lists step labels from the smallest step to the largest.
var stepLabelOrder = []string{contract.TightValue, contract.SmoothValue, contract.WideValue, contract.LargeValue}

// getDisplayNameForObjective returns the display name with emoji for an objective.
func getDisplayNameForObjective(name schema.ObjectiveName) string {
	switch name {
	case schema.StdDevObjective:
		return "📏 STDDEV"
	case schema.SumObjective:
		return "➕ SUM"
	case schema.MaxObjective:
		return "⛰️  MAX"
	default:
		return strings.ToUpper(string(name))
	}
}

// PrintMetricsDefinitions displays the definitions of every metric and objective.
// This is a static display that does not need a drivetrain.
func PrintMetricsDefinitions(model schema.MetricsRenderModel, cfg *contract.Config) error {
	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, model)
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			writer := csv.NewWriter(w)
			defer writer.Flush()
			return writeCSVMetrics(writer, model)
		}, "Wrote CSV")
	case schema.ParquetOut:
		return fmt.Errorf("parquet output is not supported for metrics")
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return printMetricsText(w, model)
		}, "Wrote text")
	}
}

// printMetricsText displays metrics in human-readable text format.
func printMetricsText(w io.Writer, model schema.MetricsRenderModel) error {
	title := "⚙️  " + model.Title
	lines := []string{
		title,
		strings.Repeat("=", len([]rune(title))+1),
		"",
		model.Description,
		"",
		"📐 Gear Metrics",
	}
	for _, m := range model.Metrics {
		lines = append(lines,
			fmt.Sprintf("%s: %s", m.Name, m.Description),
			fmt.Sprintf("   Formula: %s", m.Formula),
		)
		if m.Unit != "" {
			lines = append(lines, fmt.Sprintf("   Unit: %s", m.Unit))
		}
	}

	lines = append(lines, "", "🎯 Objectives")
	for _, o := range model.Objectives {
		active := ""
		if o.Active {
			active = " (active)"
		}
		lines = append(lines,
			fmt.Sprintf("%s%s: %s", getDisplayNameForObjective(o.Name), active, o.Purpose),
			fmt.Sprintf("   Formula: %s", o.Formula),
		)
	}

	lines = append(lines, "", "🔍 Strategies")
	strategies := make([]string, 0, len(model.Strategies))
	for s := range model.Strategies {
		strategies = append(strategies, string(s))
	}
	slices.Sort(strategies)
	for _, s := range strategies {
		lines = append(lines, fmt.Sprintf("%s: %s", s, model.Strategies[schema.SearchStrategy(s)]))
	}

	lines = append(lines, "", fmt.Sprintf("🧮 Distinct threshold: %s", fmtPercent(model.Threshold)), "", "🏷️  Step Labels")
	for _, label := range stepLabelOrder {
		if rule, ok := model.StepLabels[label]; ok {
			lines = append(lines, fmt.Sprintf("%s: %s", label, rule))
		}
	}

	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

// writeCSVMetrics writes metrics and objectives as CSV rows.
func writeCSVMetrics(w *csv.Writer, model schema.MetricsRenderModel) error {
	if err := w.Write([]string{"kind", "name", "description", "formula", "unit", "active"}); err != nil {
		return err
	}
	for _, m := range model.Metrics {
		if err := w.Write([]string{"metric", m.Name, m.Description, m.Formula, m.Unit, ""}); err != nil {
			return err
		}
	}
	for _, o := range model.Objectives {
		if err := w.Write([]string{"objective", string(o.Name), o.Purpose, o.Formula, "", strconv.FormatBool(o.Active)}); err != nil {
			return err
		}
	}
	return nil
}
