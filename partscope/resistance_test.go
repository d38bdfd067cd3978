package partscope

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEffectiveOnResistance(t *testing.T) {
	tests := []struct {
		name     string
		readings [OnResistanceConditions]*float64
		typical  *float64
		want     *float64
	}{
		{
			name:     "minimum of present readings",
			readings: [OnResistanceConditions]*float64{Float(0.5), nil, Float(0.3), nil},
			typical:  Float(0.1),
			want:     Float(0.3),
		},
		{
			name:    "falls back to typical",
			typical: Float(0.8),
			want:    Float(0.8),
		},
		{
			name: "unknown when nothing is present",
		},
		{
			name:     "single reading",
			readings: [OnResistanceConditions]*float64{nil, nil, nil, Float(0.02)},
			want:     Float(0.02),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := Record{OnResistance: tt.readings, TypicalOnResistance: tt.typical}
			got := EffectiveOnResistance(&r)
			if tt.want == nil {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.InDelta(t, *tt.want, *got, 1e-12)
		})
	}
}

func TestEffectiveOnResistance_UnknownFailsActiveBound(t *testing.T) {
	r := Record{ID: 1}

	var c Criteria
	c.SetBound(RangeOnResistance, BoundMax, Float(10))
	assert.False(t, Matches(&r, c))

	c = Criteria{}
	c.SetBound(RangeOnResistance, BoundMin, Float(0))
	assert.False(t, Matches(&r, c))

	assert.True(t, Matches(&r, Criteria{}))
}

func TestEffectiveOnResistance_DoesNotAliasRecord(t *testing.T) {
	r := Record{TypicalOnResistance: Float(0.8)}
	got := EffectiveOnResistance(&r)
	require.NotNil(t, got)
	*got = 5
	assert.Equal(t, 0.8, *r.TypicalOnResistance)
}
