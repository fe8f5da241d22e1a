package solver

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun_Metrics(t *testing.T) {
	starts := testutil.ToFloat64(startsTotal)
	expanded := testutil.ToFloat64(expandedTotal)
	pruned := testutil.ToFloat64(prunedTotal)
	updates := testutil.ToFloat64(bestUpdatesTotal)

	res := run(t, 3, 3, nil, 9)
	stats := res.Stats()

	assert.Equal(t, float64(stats.Starts), testutil.ToFloat64(startsTotal)-starts)
	assert.Equal(t, float64(stats.Expanded), testutil.ToFloat64(expandedTotal)-expanded)
	assert.Equal(t, float64(stats.Pruned), testutil.ToFloat64(prunedTotal)-pruned)
	assert.Equal(t, float64(stats.Improvements), testutil.ToFloat64(bestUpdatesTotal)-updates)
}

func TestWriteMetrics(t *testing.T) {
	run(t, 2, 2, nil, 4)

	path := filepath.Join(t.TempDir(), "gridcover.prom")
	require.NoError(t, WriteMetrics(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	out := string(data)
	for _, name := range []string{
		"gridcover_solver_starts_total",
		"gridcover_solver_states_expanded_total",
		"gridcover_solver_states_pruned_total",
		"gridcover_solver_best_updates_total",
		"gridcover_solver_run_duration_seconds_count",
	} {
		assert.Contains(t, out, name)
	}
}
