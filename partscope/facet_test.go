package partscope

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDistinctValues(t *testing.T) {
	records := []Record{
		{ID: 1, Manufacturer: "C"},
		{ID: 2, Manufacturer: "A"},
		{ID: 3, Manufacturer: "B"},
		{ID: 4, Manufacturer: "A"},
		{ID: 5, Manufacturer: ""},
		{ID: 6, Manufacturer: "   "},
	}
	assert.Equal(t, []string{"A", "B", "C"}, DistinctValues(records, DimManufacturer))
}

func TestDistinctValues_ByteOrder(t *testing.T) {
	records := []Record{
		{ID: 1, Package: "to-220"},
		{ID: 2, Package: "TO-247"},
		{ID: 3, Package: "SOT-23"},
	}
	assert.Equal(t, []string{"SOT-23", "TO-247", "to-220"}, DistinctValues(records, DimPackage))
}

func TestDistinctValues_EmptyAndInvalid(t *testing.T) {
	assert.Empty(t, DistinctValues(nil, DimMaterial))
	assert.Nil(t, DistinctValues(sampleRecords(), Dimension(99)))
}

func TestFacetCounts(t *testing.T) {
	got := FacetCounts(sampleRecords(), DimMountingType, 0)
	assert.Equal(t, []ValueCount{{Value: "THT", Count: 3}, {Value: "SMD", Count: 2}}, got)

	got = FacetCounts(sampleRecords(), DimManufacturer, 2)
	assert.Equal(t, []ValueCount{{Value: "Infineon", Count: 2}, {Value: "Vishay", Count: 2}}, got)

	got = FacetCounts(sampleRecords(), DimQualification, 0)
	assert.Equal(t, []ValueCount{
		{Value: QualificationNonAutomotive, Count: 3},
		{Value: QualificationAutomotive, Count: 2},
	}, got)
}
