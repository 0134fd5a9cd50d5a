package outwriter

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/huangsam/gearpath/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteGearsResultsTable(t *testing.T) {
	var buf bytes.Buffer
	err := WriteGearsResults(&buf, []schema.GearsResult{testGearsResult()}, testConfig(schema.TextOut), 50*time.Millisecond)
	require.NoError(t, err)

	output := buf.String()
	assert.Contains(t, output, "⚙️  gravel")
	assert.Contains(t, output, "1.67")
	assert.Contains(t, output, "8.36")
	assert.Contains(t, output, "227.0%")
	assert.Contains(t, output, "9.02")
	assert.Contains(t, output, "●")
	assert.Contains(t, output, "4 gears, 2 in best path (greedy, stddev, threshold 5.0%)")
	assert.Contains(t, output, "Computed 1 drivetrain(s) in 50ms")
}

func TestWriteGearsResultsTableWithHub(t *testing.T) {
	result := testGearsResult()
	result.Drivetrain.HubRatios = []float64{0.5, 1}
	result.Rows[0].HubRatio = 0.5

	var buf bytes.Buffer
	err := WriteGearsResults(&buf, []schema.GearsResult{result, testGearsResult()}, testConfig(schema.TextOut), time.Second)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "30@0.50")
	assert.Contains(t, buf.String(), "Computed 2 drivetrain(s)")
}

func TestRingLabel(t *testing.T) {
	row := schema.ChainringRow{Front: 36, HubRatio: 0.5}
	assert.Equal(t, "36", ringLabel(row, false))
	assert.Equal(t, "36@0.50", ringLabel(row, true))
}

func TestWriteGearsResultsCSV(t *testing.T) {
	var buf bytes.Buffer
	err := WriteGearsResults(&buf, []schema.GearsResult{testGearsResult()}, testConfig(schema.CSVOut), 0)
	require.NoError(t, err)

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 5) // header + 4 gears

	assert.Equal(t, []string{
		"drivetrain", "label", "front", "rear", "hub_ratio", "gear_ratio", "gain_ratio",
		"gear_inches", "development", "step", "speed_85rpm", "speed_95rpm", "in_best_path", "units",
	}, records[0])

	first := records[1]
	assert.Equal(t, "gravel", first[0])
	assert.Equal(t, "30/36", first[1])
	assert.Equal(t, "30", first[2])
	assert.Equal(t, "36", first[3])
	assert.Equal(t, "0.83", first[5])
	assert.Equal(t, "1.67", first[6])
	assert.Equal(t, "true", first[12])
	assert.Equal(t, "metric", first[13])

	assert.Equal(t, "46/11", records[4][1])
	assert.Equal(t, "2.27", records[4][9])
}

func TestWriteGearsResultsJSON(t *testing.T) {
	var buf bytes.Buffer
	err := WriteGearsResults(&buf, []schema.GearsResult{testGearsResult()}, testConfig(schema.JSONOut), 0)
	require.NoError(t, err)

	var decoded []map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	require.Len(t, decoded, 1)

	drivetrain := decoded[0]["drivetrain"].(map[string]any)
	assert.Equal(t, "gravel", drivetrain["title"])
	assert.Equal(t, "greedy", drivetrain["strategy"])

	rows := decoded[0]["rows"].([]any)
	require.Len(t, rows, 2)
	gears := rows[1].(map[string]any)["gears"].([]any)
	last := gears[1].(map[string]any)
	assert.Equal(t, "46/11", last["label"])
	assert.Equal(t, true, last["in_best_path"])
	assert.Len(t, last["speeds"], 2)
}

func TestPrintGearsResultsFiles(t *testing.T) {
	dir := t.TempDir()

	t.Run("json file", func(t *testing.T) {
		cfg := testConfig(schema.JSONOut)
		cfg.OutputFile = filepath.Join(dir, "gears.json")
		require.NoError(t, PrintGearsResults([]schema.GearsResult{testGearsResult()}, cfg, 0))

		content, err := os.ReadFile(cfg.OutputFile)
		require.NoError(t, err)
		assert.Contains(t, string(content), `"title": "gravel"`)
	})

	t.Run("parquet file", func(t *testing.T) {
		cfg := testConfig(schema.ParquetOut)
		cfg.OutputFile = filepath.Join(dir, "gears.parquet")
		require.NoError(t, PrintGearsResults([]schema.GearsResult{testGearsResult()}, cfg, 0))

		info, err := os.Stat(cfg.OutputFile)
		require.NoError(t, err)
		assert.Greater(t, info.Size(), int64(0))
	})

	t.Run("parquet without file", func(t *testing.T) {
		require.Error(t, PrintGearsResults([]schema.GearsResult{testGearsResult()}, testConfig(schema.ParquetOut), 0))
	})
}
