// Package parquet provides data structures and functions for exporting gear
// data to Parquet files using github.com/parquet-go/parquet-go.
package parquet

import (
	"fmt"
	"os"

	"github.com/huangsam/gearpath/schema"
	"github.com/parquet-go/parquet-go"
)

// GearRow represents a single gear of a drivetrain, flattened for columnar export.
type GearRow struct {
	// Drivetrain is the title of the drivetrain the gear belongs to
	Drivetrain string `parquet:"drivetrain,snappy"`

	// Label is the human readable gear, e.g. "46/11" or "36/22@0.50"
	Label string `parquet:"label,snappy"`

	Front    int32   `parquet:"front,snappy"`
	Rear     int32   `parquet:"rear,snappy"`
	HubRatio float64 `parquet:"hub_ratio,snappy"`

	GearRatio   float64 `parquet:"gear_ratio,snappy"`
	GainRatio   float64 `parquet:"gain_ratio,snappy"`
	GearInches  float64 `parquet:"gear_inches,snappy"`
	Development float64 `parquet:"development,snappy"`

	// Step is the relative step from the previous gear of the listing
	Step float64 `parquet:"step,snappy"`

	// InBestPath is set for gears selected by path search
	InBestPath bool `parquet:"in_best_path,snappy"`

	// PathPosition is the 1-based position in the best path (nullable for matrix exports)
	PathPosition *int32 `parquet:"path_position,optional,snappy"`

	// Units is the unit system of Development
	Units string `parquet:"units,snappy"`
}

// WriteGearRowsParquet writes a slice of GearRow structs to a Parquet file.
func WriteGearRowsParquet(data []GearRow, outputPath string) error {
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = file.Close() }()

	// The schema is derived from the GearRow struct tags
	writer := parquet.NewGenericWriter[GearRow](file)
	if _, err := writer.Write(data); err != nil {
		_ = writer.Close()
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("failed to close parquet writer: %w", err)
	}
	return nil
}

// newGearRow converts one gear result to a row.
func newGearRow(drivetrain string, units schema.Units, g schema.GearResult) GearRow {
	return GearRow{
		Drivetrain:  drivetrain,
		Label:       g.Label,
		Front:       int32(g.Front),
		Rear:        int32(g.Rear),
		HubRatio:    g.HubRatio,
		GearRatio:   g.GearRatio,
		GainRatio:   g.GainRatio,
		GearInches:  g.GearInches,
		Development: g.Development,
		Step:        g.StepFromPrevious,
		InBestPath:  g.InBestPath,
		Units:       string(units),
	}
}

// ConvertGearsResults flattens gear matrices into rows, chainring by chainring.
func ConvertGearsResults(results []schema.GearsResult) []GearRow {
	var rows []GearRow
	for _, r := range results {
		for _, row := range r.Rows {
			for _, g := range row.Gears {
				rows = append(rows, newGearRow(r.Drivetrain.Title, r.Units, g))
			}
		}
	}
	return rows
}

// ConvertPathResults flattens best paths into rows. Remaining gears follow each path without a position.
func ConvertPathResults(results []schema.PathResult) []GearRow {
	var rows []GearRow
	for _, r := range results {
		for i, g := range r.Path {
			row := newGearRow(r.Drivetrain.Title, r.Units, g)
			pos := int32(i + 1)
			row.PathPosition = &pos
			rows = append(rows, row)
		}
		for _, g := range r.Remaining {
			rows = append(rows, newGearRow(r.Drivetrain.Title, r.Units, g))
		}
	}
	return rows
}
