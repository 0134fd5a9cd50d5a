package outwriter

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"github.com/huangsam/gearpath/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testComparisonResult() schema.ComparisonResult {
	return schema.ComparisonResult{
		RangeLow:  1,
		RangeHigh: 4,
		Details: []schema.ComparisonDetail{
			{
				Drivetrain:    testDrivetrainInfo("gravel"),
				Easiest:       1.66,
				Hardest:       8.36,
				RangeMultiple: 5.04,
				PathSize:      13,
				MeanStep:      0.144,
				MaxStep:       0.18,
				StdDevStep:    0.019,
				InRange:       []string{"30/36", "30/32"},
			},
			{
				Drivetrain:    testDrivetrainInfo("road"),
				Easiest:       2.43,
				Hardest:       9.09,
				RangeMultiple: 3.74,
				PathSize:      15,
				MeanStep:      0.099,
				MaxStep:       0.17,
				StdDevStep:    0.029,
				InRange:       []string{"34/28"},
				DeltaEasiest:  0.77,
				DeltaHardest:  0.73,
			},
		},
		Summary: schema.ComparisonSummary{
			Baseline:  "gravel",
			Widest:    "gravel",
			Smoothest: "gravel",
			MostGears: "road",
		},
	}
}

func TestWriteComparisonResultsTable(t *testing.T) {
	var buf bytes.Buffer
	err := WriteComparisonResults(&buf, testComparisonResult(), testConfig(schema.TextOut), 10*time.Millisecond)
	require.NoError(t, err)

	output := buf.String()
	assert.Contains(t, output, "gravel")
	assert.Contains(t, output, "road")
	assert.Contains(t, output, "5.04x")
	assert.Contains(t, output, "14.4%")
	assert.Contains(t, output, "+0.77 ▲")
	assert.Contains(t, output, "+0.73 ▲")
	assert.Contains(t, output, "0.00")
	assert.Contains(t, output, "Compared 2 drivetrains against baseline gravel")
	assert.Contains(t, output, "Widest: gravel, Smoothest: gravel, Most gears: road")
	assert.Contains(t, output, "Comparison completed in 10ms")
}

func TestFormatDelta(t *testing.T) {
	good := func(a ...any) string { return "good:" + fmt.Sprint(a...) }
	bad := func(a ...any) string { return "bad:" + fmt.Sprint(a...) }
	same := func(a ...any) string { return "same:" + fmt.Sprint(a...) }

	tests := []struct {
		name           string
		delta          float64
		higherIsBetter bool
		expected       string
	}{
		{"taller top gear", 0.5, true, "good:+0.50 ▲"},
		{"shorter top gear", -0.5, true, "bad:-0.50 ▼"},
		{"lower climbing gear", -0.25, false, "good:-0.25 ▼"},
		{"higher climbing gear", 0.25, false, "bad:+0.25 ▲"},
		{"unchanged", 0, true, "same:0.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, formatDelta(tt.delta, 2, tt.higherIsBetter, good, bad, same))
		})
	}
}

func TestWriteComparisonResultsCSV(t *testing.T) {
	var buf bytes.Buffer
	err := WriteComparisonResults(&buf, testComparisonResult(), testConfig(schema.CSVOut), 0)
	require.NoError(t, err)

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)

	assert.Equal(t, "drivetrain", records[0][0])
	assert.Equal(t, "in_range", records[0][10])
	assert.Equal(t, []string{"gravel", "1.66", "8.36", "5.04", "13"}, records[1][:5])
	assert.Equal(t, "30/36|30/32", records[1][10])
	assert.Equal(t, "0.77", records[2][8])
}

func TestWriteComparisonResultsJSON(t *testing.T) {
	var buf bytes.Buffer
	err := WriteComparisonResults(&buf, testComparisonResult(), testConfig(schema.JSONOut), 0)
	require.NoError(t, err)

	var decoded schema.ComparisonResult
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, testComparisonResult(), decoded)
}

func TestPrintComparisonResultsParquet(t *testing.T) {
	err := PrintComparisonResults(testComparisonResult(), testConfig(schema.ParquetOut), 0)
	require.Error(t, err)
}
