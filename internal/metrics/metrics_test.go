package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestGridBuildsTotal_Labels(t *testing.T) {
	before := testutil.ToFloat64(GridBuildsTotal.WithLabelValues("ok"))
	GridBuildsTotal.WithLabelValues("ok").Inc()
	assert.Equal(t, before+1, testutil.ToFloat64(GridBuildsTotal.WithLabelValues("ok")))
}

func TestCounters_Exist(t *testing.T) {
	before := testutil.ToFloat64(GeneratorsTotal)
	GeneratorsTotal.Add(3)
	assert.Equal(t, before+3, testutil.ToFloat64(GeneratorsTotal))

	before = testutil.ToFloat64(CellsAssembledTotal)
	CellsAssembledTotal.Inc()
	assert.Equal(t, before+1, testutil.ToFloat64(CellsAssembledTotal))
}

func TestHistograms_Exist(t *testing.T) {
	// Verify they accept observations
	GridBuildDurationSeconds.Observe(0.01)
	SubsetSize.Observe(42)
	assert.Equal(t, 1, testutil.CollectAndCount(SubsetSize))
}
