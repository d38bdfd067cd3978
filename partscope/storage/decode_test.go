package storage

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/partscope/partscope/partscope"
)

func TestDecodeRecords_FlexibleValues(t *testing.T) {
	in := `[
		{"did": 1, "manf": 3, "config": true, "vds": "  ", "vgs": "20", "rthja": "n/a"},
		{"did": " 2 ", "manf": null, "vds": 12.5},
		{"did": null},
		{"did": ""}
	]`
	records, skipped, err := DecodeRecords(strings.NewReader(in))
	require.NoError(t, err)
	assert.Equal(t, 2, skipped)
	require.Len(t, records, 2)

	assert.Equal(t, "3", records[0].Manufacturer)
	assert.Equal(t, "true", records[0].Configuration)
	assert.Equal(t, 0.0, records[0].BreakdownVoltage)
	assert.Equal(t, 20.0, *records[0].GateVoltage)
	assert.Nil(t, records[0].ThermalResistance)

	assert.Equal(t, partscope.RecordID(2), records[1].ID)
	assert.Empty(t, records[1].Manufacturer)
	assert.Equal(t, 12.5, records[1].BreakdownVoltage)
}

func TestDecodeRecords_Rejects(t *testing.T) {
	tests := map[string]string{
		"not an array":  `{"did": 1}`,
		"fractional id": `[{"did": 1.5}]`,
		"object number": `[{"did": 1, "vds": {}}]`,
		"truncated":      `[{"did": 1`,
	}
	for name, in := range tests {
		t.Run(name, func(t *testing.T) {
			_, _, err := DecodeRecords(strings.NewReader(in))
			assert.True(t, partscope.IsKind(err, partscope.ErrDecode), "got %v", err)
		})
	}
}
