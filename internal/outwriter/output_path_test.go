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

func TestWritePathResultsTable(t *testing.T) {
	var buf bytes.Buffer
	err := WritePathResults(&buf, []schema.PathResult{testPathResult()}, testConfig(schema.TextOut), 20*time.Millisecond)
	require.NoError(t, err)

	output := buf.String()
	assert.Contains(t, output, "🚲 gravel")
	assert.Contains(t, output, "30/36")
	assert.Contains(t, output, "46/11")
	assert.Contains(t, output, "53.0%")
	assert.Contains(t, output, "Large")
	assert.NotContains(t, output, "Redundant")
	assert.Contains(t, output, "Best path: 3 of 4 gears, range 5.01x (greedy, stddev)")
	assert.Contains(t, output, "Steps: mean 140.0%, min 53.0%, max 227.0%, stddev 87.0%")
	assert.Contains(t, output, "Computed 1 drivetrain(s) in 20ms")
}

func TestWritePathResultsTableWithRemaining(t *testing.T) {
	result := testPathResult()
	result.Remaining = []schema.GearResult{testGear(30, 11, 5.45, 0, false)}

	var buf bytes.Buffer
	err := WritePathResults(&buf, []schema.PathResult{result}, testConfig(schema.TextOut), 0)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "30/11")
	assert.Contains(t, buf.String(), "Redundant")
}

func TestWritePathResultsCSV(t *testing.T) {
	result := testPathResult()
	result.Remaining = []schema.GearResult{testGear(30, 11, 5.45, 0, false)}

	var buf bytes.Buffer
	err := WritePathResults(&buf, []schema.PathResult{result}, testConfig(schema.CSVOut), 0)
	require.NoError(t, err)

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 5) // header + 3 path gears + 1 remaining

	header := records[0]
	assert.Equal(t, "drivetrain", header[0])
	assert.Equal(t, "position", header[1])
	assert.Equal(t, []string{"step", "step_label", "in_best_path"}, header[len(header)-3:])

	assert.Equal(t, []string{"gravel", "1", "30/36"}, records[1][:3])
	assert.Equal(t, "Start", records[1][len(records[1])-2])
	assert.Equal(t, "Large", records[3][len(records[3])-2])

	remaining := records[4]
	assert.Equal(t, "", remaining[1])
	assert.Equal(t, "30/11", remaining[2])
	assert.Equal(t, []string{"Redundant", "false"}, remaining[len(remaining)-2:])
}

func TestWritePathResultsJSON(t *testing.T) {
	var buf bytes.Buffer
	err := WritePathResults(&buf, []schema.PathResult{testPathResult()}, testConfig(schema.JSONOut), 0)
	require.NoError(t, err)

	var decoded []map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	require.Len(t, decoded, 1)
	assert.NotContains(t, decoded[0], "remaining")

	path := decoded[0]["path"].([]any)
	require.Len(t, path, 3)
	first := path[0].(map[string]any)
	assert.Equal(t, float64(1), first["position"])
	assert.Equal(t, "Start", first["step_label"])
	assert.Equal(t, "30/36", first["label"])
	assert.Equal(t, "Large", path[2].(map[string]any)["step_label"])

	summary := decoded[0]["summary"].(map[string]any)
	assert.Equal(t, float64(3), summary["gears"])
	assert.Equal(t, 5.01, summary["range_multiple"])
}

func TestPrintPathResultsParquet(t *testing.T) {
	cfg := testConfig(schema.ParquetOut)
	cfg.OutputFile = filepath.Join(t.TempDir(), "path.parquet")
	require.NoError(t, PrintPathResults([]schema.PathResult{testPathResult()}, cfg, 0))

	info, err := os.Stat(cfg.OutputFile)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}
