package partscope

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStats(t *testing.T) {
	got := Stats(sampleRecords(), FieldBreakdownVoltage)
	assert.Equal(t, "vds", got.Field)
	assert.Equal(t, uint64(5), got.Count)
	require.NotNil(t, got.Min)
	assert.Equal(t, -100.0, *got.Min)
	assert.Equal(t, 900.0, *got.Max)
	assert.InDelta(t, 196.0, *got.Avg, 1e-9)
	assert.Equal(t, 40.0, *got.Median)
}

func TestStats_SkipsAbsentAndAveragesMiddle(t *testing.T) {
	// thresholds present on 1, 2 and 4
	got := Stats(sampleRecords(), FieldThresholdVoltage)
	assert.Equal(t, uint64(3), got.Count)
	assert.Equal(t, 2.5, *got.Median)

	// effective on-resistance: 0.044, 0.3, 0.8, 0.117 (record 4 unknown)
	got = Stats(sampleRecords(), FieldEffectiveOnResistance)
	assert.Equal(t, uint64(4), got.Count)
	assert.InDelta(t, (0.117+0.3)/2, *got.Median, 1e-12)
	assert.Equal(t, 0.044, *got.Min)
}

func TestStats_NoValues(t *testing.T) {
	got := Stats(sampleRecords(), FieldCapacitance)
	assert.Equal(t, uint64(0), got.Count)
	assert.Nil(t, got.Min)
	assert.Nil(t, got.Median)
}
