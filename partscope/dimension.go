package partscope

import "strings"

// Dimension is a categorical facet.
type Dimension int

const (
	DimManufacturer Dimension = iota
	DimPackage
	DimMountingType
	DimChannelType
	DimConfiguration
	DimMaterial
	DimPartStatus
	DimIndustryPackageCategory
	DimProductPackageCategory
	// DimQualification is derived from the automotive marker and has a fixed option list.
	DimQualification

	numDimensions
)

var dimensionNames = [numDimensions]string{
	DimManufacturer:            "manufacturer",
	DimPackage:                 "package",
	DimMountingType:            "mounting",
	DimChannelType:             "channel",
	DimConfiguration:           "configuration",
	DimMaterial:                "material",
	DimPartStatus:              "part_status",
	DimIndustryPackageCategory: "industry_package",
	DimProductPackageCategory:  "product_package",
	DimQualification:           "qualification",
}

var dimensionAccessors = [numDimensions]func(*Record) string{
	DimManufacturer:            func(r *Record) string { return r.Manufacturer },
	DimPackage:                 func(r *Record) string { return r.Package },
	DimMountingType:            func(r *Record) string { return r.MountingType },
	DimChannelType:             func(r *Record) string { return r.ChannelType },
	DimConfiguration:           func(r *Record) string { return r.Configuration },
	DimMaterial:                func(r *Record) string { return r.Material },
	DimPartStatus:              func(r *Record) string { return r.PartStatus },
	DimIndustryPackageCategory: func(r *Record) string { return r.IndustryPackageCategory },
	DimProductPackageCategory:  func(r *Record) string { return r.ProductPackageCategory },
	DimQualification:           func(r *Record) string { return r.QualificationLabel() },
}

// Dimensions returns every categorical dimension, qualification last.
func Dimensions() []Dimension {
	out := make([]Dimension, 0, numDimensions)
	for d := Dimension(0); d < numDimensions; d++ {
		out = append(out, d)
	}
	return out
}

// FacetDimensions returns the dimensions whose options are derived from the catalog.
func FacetDimensions() []Dimension {
	return Dimensions()[:DimQualification]
}

func (d Dimension) Valid() bool {
	return d >= 0 && d < numDimensions
}

// Derived reports whether the options are fixed rather than extracted from records.
func (d Dimension) Derived() bool {
	return d == DimQualification
}

func (d Dimension) String() string {
	if !d.Valid() {
		return "unknown"
	}
	return dimensionNames[d]
}

// Value returns the record's value for d, or "" if d is not a dimension.
func (d Dimension) Value(r *Record) string {
	if !d.Valid() {
		return ""
	}
	return dimensionAccessors[d](r)
}

func (d Dimension) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

func (d *Dimension) UnmarshalText(b []byte) error {
	parsed, err := ParseDimension(string(b))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// ParseDimension resolves a dimension by name, ignoring case and surrounding space.
func ParseDimension(name string) (Dimension, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	for d, n := range dimensionNames {
		if n == key {
			return Dimension(d), nil
		}
	}
	return 0, UnknownDimensionError(name)
}

// RangeDimension is a numeric range criterion.
type RangeDimension int

const (
	RangeBreakdownVoltage RangeDimension = iota
	RangeOnResistance
	RangeThresholdVoltage

	numRangeDimensions
)

var rangeNames = [numRangeDimensions]string{
	RangeBreakdownVoltage: "vds",
	RangeOnResistance:     "rdson",
	RangeThresholdVoltage: "vth",
}

func RangeDimensions() []RangeDimension {
	return []RangeDimension{RangeBreakdownVoltage, RangeOnResistance, RangeThresholdVoltage}
}

func (d RangeDimension) Valid() bool {
	return d >= 0 && d < numRangeDimensions
}

func (d RangeDimension) String() string {
	if !d.Valid() {
		return "unknown"
	}
	return rangeNames[d]
}

// Value returns the record's value for the range; nil when absent or unknown.
func (d RangeDimension) Value(r *Record) *float64 {
	switch d {
	case RangeBreakdownVoltage:
		v := r.BreakdownVoltage
		return &v
	case RangeOnResistance:
		return EffectiveOnResistance(r)
	case RangeThresholdVoltage:
		return r.ThresholdVoltage
	}
	return nil
}

func ParseRangeDimension(name string) (RangeDimension, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	for d, n := range rangeNames {
		if n == key {
			return RangeDimension(d), nil
		}
	}
	return 0, UnknownDimensionError(name)
}

// NumericField names a numeric column, including the derived effective on-resistance.
type NumericField string

const (
	FieldBreakdownVoltage      NumericField = "vds"
	FieldGateVoltage           NumericField = "vgs"
	FieldThresholdVoltage      NumericField = "vthtyp"
	FieldThermalResistance     NumericField = "rthja"
	FieldCapacitance           NumericField = "cisstyp"
	FieldOnResistance1         NumericField = "rdson1max"
	FieldOnResistance2         NumericField = "rdson2max"
	FieldOnResistance3         NumericField = "rdson3max"
	FieldOnResistance4         NumericField = "rdson4max"
	FieldTypicalOnResistance   NumericField = "rdsontyp10vgs25ta"
	FieldEffectiveOnResistance NumericField = "rdson"
)

var numericFields = []NumericField{
	FieldBreakdownVoltage,
	FieldGateVoltage,
	FieldThresholdVoltage,
	FieldThermalResistance,
	FieldCapacitance,
	FieldOnResistance1,
	FieldOnResistance2,
	FieldOnResistance3,
	FieldOnResistance4,
	FieldTypicalOnResistance,
	FieldEffectiveOnResistance,
}

func NumericFields() []NumericField {
	return append([]NumericField(nil), numericFields...)
}

// Value returns the record's value for f; nil when absent.
func (f NumericField) Value(r *Record) *float64 {
	switch f {
	case FieldBreakdownVoltage:
		v := r.BreakdownVoltage
		return &v
	case FieldGateVoltage:
		return r.GateVoltage
	case FieldThresholdVoltage:
		return r.ThresholdVoltage
	case FieldThermalResistance:
		return r.ThermalResistance
	case FieldCapacitance:
		return r.Capacitance
	case FieldOnResistance1:
		return r.OnResistance[0]
	case FieldOnResistance2:
		return r.OnResistance[1]
	case FieldOnResistance3:
		return r.OnResistance[2]
	case FieldOnResistance4:
		return r.OnResistance[3]
	case FieldTypicalOnResistance:
		return r.TypicalOnResistance
	case FieldEffectiveOnResistance:
		return EffectiveOnResistance(r)
	}
	return nil
}

func ParseNumericField(name string) (NumericField, error) {
	key := NumericField(strings.ToLower(strings.TrimSpace(name)))
	for _, f := range numericFields {
		if f == key {
			return f, nil
		}
	}
	return "", UnknownFieldError(name)
}

func ParseScale(s string) (Scale, error) {
	switch Scale(strings.ToLower(strings.TrimSpace(s))) {
	case ScaleLinear:
		return ScaleLinear, nil
	case ScaleLog:
		return ScaleLog, nil
	}
	return "", ConfigError("scale", "must be linear or log, got "+s)
}

func ParseZoomMode(s string) (ZoomMode, error) {
	switch ZoomMode(strings.ToLower(strings.TrimSpace(s))) {
	case ZoomXY:
		return ZoomXY, nil
	case ZoomX:
		return ZoomX, nil
	case ZoomY:
		return ZoomY, nil
	}
	return "", ConfigError("zoom_mode", "must be xy, x or y, got "+s)
}
