package partscope

import "encoding/json"

// Record is one catalog entry. Empty strings and nil numerics mean absent.
type Record struct {
	ID                      RecordID `json:"did" yaml:"did"`
	FileName                string   `json:"fname,omitempty" yaml:"fname,omitempty"`
	Manufacturer            string   `json:"manf" yaml:"manf"`
	PartNumber              string   `json:"partno" yaml:"partno"`
	Package                 string   `json:"package,omitempty" yaml:"package,omitempty"`
	PackageManufacturerName string   `json:"packagemanfname,omitempty" yaml:"packagemanfname,omitempty"`
	MountingType            string   `json:"mounting,omitempty" yaml:"mounting,omitempty"`
	ChannelType             string   `json:"channel,omitempty" yaml:"channel,omitempty"`
	Configuration           string   `json:"config,omitempty" yaml:"config,omitempty"`
	Material                string   `json:"material,omitempty" yaml:"material,omitempty"`
	PartStatus              string   `json:"part_status,omitempty" yaml:"part_status,omitempty"`
	IndustryPackageCategory string   `json:"discoveree_package_cat1,omitempty" yaml:"discoveree_package_cat1,omitempty"`
	ProductPackageCategory  string   `json:"discoveree_package_cat2,omitempty" yaml:"discoveree_package_cat2,omitempty"`
	Automotive              string   `json:"auto,omitempty" yaml:"auto,omitempty"`

	BreakdownVoltage    float64                          `json:"vds" yaml:"vds"`
	GateVoltage         *float64                         `json:"vgs,omitempty" yaml:"vgs,omitempty"`
	ThresholdVoltage    *float64                         `json:"vthtyp,omitempty" yaml:"vthtyp,omitempty"`
	ThermalResistance   *float64                         `json:"rthja,omitempty" yaml:"rthja,omitempty"`
	Capacitance         *float64                         `json:"cisstyp,omitempty" yaml:"cisstyp,omitempty"`
	OnResistance        [OnResistanceConditions]*float64 `json:"-" yaml:"-"`
	TypicalOnResistance *float64                         `json:"rdsontyp10vgs25ta,omitempty" yaml:"rdsontyp10vgs25ta,omitempty"`
}

// IsAutomotiveQualified reports whether the part carries the automotive marker.
func (r *Record) IsAutomotiveQualified() bool {
	return r.Automotive == AutomotiveYes
}

// QualificationLabel maps the automotive marker onto the qualification facet options.
func (r *Record) QualificationLabel() string {
	if r.IsAutomotiveQualified() {
		return QualificationAutomotive
	}
	return QualificationNonAutomotive
}

// Float returns a pointer to v. Convenience for building records and bounds.
func Float(v float64) *float64 {
	return &v
}

// clone returns a copy of r that shares no numeric storage with it.
func (r Record) clone() Record {
	out := r
	out.GateVoltage = copyFloat(r.GateVoltage)
	out.ThresholdVoltage = copyFloat(r.ThresholdVoltage)
	out.ThermalResistance = copyFloat(r.ThermalResistance)
	out.Capacitance = copyFloat(r.Capacitance)
	for i := range r.OnResistance {
		out.OnResistance[i] = copyFloat(r.OnResistance[i])
	}
	out.TypicalOnResistance = copyFloat(r.TypicalOnResistance)
	return out
}

func cloneRecords(records []Record) []Record {
	out := make([]Record, len(records))
	for i := range records {
		out[i] = records[i].clone()
	}
	return out
}

type plainRecord Record

// recordView flattens the per-condition on-resistance readings into their source columns.
type recordView struct {
	plainRecord   `yaml:",inline"`
	OnResistance1 *float64 `json:"rdson1max,omitempty" yaml:"rdson1max,omitempty"`
	OnResistance2 *float64 `json:"rdson2max,omitempty" yaml:"rdson2max,omitempty"`
	OnResistance3 *float64 `json:"rdson3max,omitempty" yaml:"rdson3max,omitempty"`
	OnResistance4 *float64 `json:"rdson4max,omitempty" yaml:"rdson4max,omitempty"`
}

func (r Record) view() recordView {
	return recordView{
		plainRecord:   plainRecord(r),
		OnResistance1: r.OnResistance[0],
		OnResistance2: r.OnResistance[1],
		OnResistance3: r.OnResistance[2],
		OnResistance4: r.OnResistance[3],
	}
}

func (r Record) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.view())
}

func (r Record) MarshalYAML() (interface{}, error) {
	return r.view(), nil
}
