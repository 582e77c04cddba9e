package experiment

import (
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func quietRun(t *testing.T, cfg Config) []Record {
	t.Helper()
	old := Verbose
	Verbose = false
	t.Cleanup(func() { Verbose = old })

	records, err := Run(cfg)
	require.NoError(t, err)
	return records
}

func TestRunEndToEnd(t *testing.T) {
	dir := t.TempDir()
	records := quietRun(t, Config{
		Start:      0.5,
		End:        2.0,
		Steps:      3,
		Samples:    40,
		ClusterStd: 0.5,
		OutDir:     dir,
	})

	require.Len(t, records, 3)
	assert.True(t, sort.SliceIsSorted(records, func(i, j int) bool {
		return records[i].Distance < records[j].Distance
	}))
	assert.InDelta(t, 0.5, records[0].Distance, 1e-12)
	assert.InDelta(t, 2.0, records[2].Distance, 1e-12)

	for _, name := range []string{PanelsFile, SummaryFile} {
		info, err := os.Stat(filepath.Join(dir, name))
		require.NoError(t, err, name)
		assert.Greater(t, info.Size(), int64(0), name)
	}
}

func TestMetricTrends(t *testing.T) {
	records := quietRun(t, Config{
		Start:      0.25,
		End:        2.0,
		Steps:      5,
		Samples:    60,
		ClusterStd: 0.5,
		OutDir:     t.TempDir(),
	})

	first, last := records[0], records[len(records)-1]

	// More separation means easier classification and a wider confidence
	// band. These are trend assertions over the sweep ends, not per-step.
	assert.Less(t, last.LogLoss, first.LogLoss)
	assert.GreaterOrEqual(t, last.MarginWidth, first.MarginWidth)
	for _, r := range records {
		assert.GreaterOrEqual(t, r.LogLoss, 0.0)
	}
}

func TestRunSingleStep(t *testing.T) {
	records := quietRun(t, Config{
		Start:      1.0,
		End:        1.0,
		Steps:      1,
		Samples:    30,
		ClusterStd: 0.5,
		OutDir:     t.TempDir(),
	})
	require.Len(t, records, 1)
	assert.InDelta(t, 1.0, records[0].Distance, 1e-12)
}

func TestRunRejectsInvalidConfig(t *testing.T) {
	_, err := Run(Config{Start: 2, End: 1, Steps: 3, Samples: 10, ClusterStd: 0.5, OutDir: "x"})
	assert.Error(t, err)
}
