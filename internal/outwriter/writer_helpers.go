package outwriter

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/huangsam/gearpath/internal/contract"
	"github.com/huangsam/gearpath/internal/parquet"
	"github.com/huangsam/gearpath/schema"
)

// writeWithFile handles the common pattern of opening a file, writing to it, and cleaning up.
// It accepts a writer function that takes an io.Writer and returns an error.
func writeWithFile(outputFile string, writer func(io.Writer) error, successMsg string) error {
	file, err := contract.SelectOutputFile(outputFile)
	if err != nil {
		return err
	}
	// Only close if it's not stdout
	if file != os.Stdout {
		defer func() { _ = file.Close() }()
	}

	if err := writer(file); err != nil {
		return err
	}

	if file != os.Stdout {
		fmt.Fprintf(os.Stderr, "💾 %s to %s\n", successMsg, outputFile)
	}
	return nil
}

// writeParquet exports gear rows to outputFile, which the config layer requires for parquet output.
func writeParquet(rows []parquet.GearRow, outputFile string) error {
	if outputFile == "" {
		return fmt.Errorf("parquet output requires an output file")
	}
	if err := parquet.WriteGearRowsParquet(rows, outputFile); err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "💾 Wrote Parquet to %s\n", outputFile)
	return nil
}

// writeJSON is a generic JSON encoder that handles indentation consistently.
func writeJSON(w io.Writer, data any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(data); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	return nil
}

// writeCSVWithHeader handles the common pattern of creating a CSV writer,
// writing a header, and writing data rows.
func writeCSVWithHeader(w io.Writer, header []string, writeRows func(*csv.Writer) error) error {
	csvWriter := csv.NewWriter(w)
	defer csvWriter.Flush()

	if err := csvWriter.Write(header); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	if err := writeRows(csvWriter); err != nil {
		return err
	}

	return nil
}

// createFormatters creates the common formatter closures used across multiple output types.
func createFormatters(precision int) (fmtFloat func(float64) string, intFmt string) {
	numFmt := "%.*f"
	intFmt = "%d"
	fmtFloat = func(v float64) string {
		return fmt.Sprintf(numFmt, precision, v)
	}
	return fmtFloat, intFmt
}

// fmtPercent formats a relative step such as 0.125 as "12.5%".
func fmtPercent(step float64) string {
	return fmt.Sprintf("%.1f%%", step*100)
}

// speedHeaders returns one column header per cadence.
func speedHeaders(rpms []float64, units schema.Units) []string {
	headers := make([]string, len(rpms))
	for i, rpm := range rpms {
		headers[i] = schema.SpeedHeader(rpm, units)
	}
	return headers
}

// speedCSVHeaders returns one machine friendly column name per cadence, e.g. "speed_85rpm".
func speedCSVHeaders(rpms []float64) []string {
	headers := make([]string, len(rpms))
	for i, rpm := range rpms {
		headers[i] = fmt.Sprintf("speed_%grpm", rpm)
	}
	return headers
}

// speedValues formats the speeds of a gear in cadence order.
func speedValues(g schema.GearResult, fmtFloat func(float64) string) []string {
	values := make([]string, len(g.Speeds))
	for i, s := range g.Speeds {
		values[i] = fmtFloat(s.Speed)
	}
	return values
}
