package partscope

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestRecord_MarshalFlattensOnResistance(t *testing.T) {
	r := Record{
		ID:           9,
		PartNumber:   "X1",
		Manufacturer: "M",
		Automotive:   "Yes",
		OnResistance: [OnResistanceConditions]*float64{nil, Float(0.2), nil, nil},
	}

	b, err := json.Marshal(r)
	require.NoError(t, err)
	var m map[string]any
	require.NoError(t, json.Unmarshal(b, &m))
	assert.Equal(t, 0.2, m["rdson2max"])
	assert.NotContains(t, m, "rdson1max")
	assert.Equal(t, float64(9), m["did"])
	assert.Equal(t, "Yes", m["auto"])

	y, err := yaml.Marshal(r)
	require.NoError(t, err)
	assert.Contains(t, string(y), "rdson2max: 0.2")
	assert.Contains(t, string(y), "partno: X1")
}

func TestRecord_Qualification(t *testing.T) {
	assert.True(t, (&Record{Automotive: "Yes"}).IsAutomotiveQualified())
	assert.False(t, (&Record{Automotive: "yes"}).IsAutomotiveQualified())
	assert.Equal(t, QualificationNonAutomotive, (&Record{}).QualificationLabel())
}
