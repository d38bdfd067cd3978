package partscope

// RecordID identifies a catalog record
type RecordID int64

// Scale is the plot axis scale
type Scale string

const (
	ScaleLinear Scale = "linear"
	ScaleLog    Scale = "log"
)

// ZoomMode is the plot zoom mode
type ZoomMode string

const (
	ZoomXY ZoomMode = "xy"
	ZoomX  ZoomMode = "x"
	ZoomY  ZoomMode = "y"
)

// State of the pending/committed filter machine
type State string

const (
	StateUninitialized State = "uninitialized"
	StateDefaulted     State = "defaulted"
	StateEditing       State = "editing"
	StateCommitted     State = "committed"
)

// PlotConfig holds opaque plot settings passed through to the presentation layer
type PlotConfig struct {
	XField   string   `json:"x_field" yaml:"x_field"`
	YField   string   `json:"y_field" yaml:"y_field"`
	Scale    Scale    `json:"scale" yaml:"scale"`
	ZoomMode ZoomMode `json:"zoom_mode" yaml:"zoom_mode"`
}

// DefaultPlotConfig returns the initial plot settings
func DefaultPlotConfig() PlotConfig {
	return PlotConfig{
		XField:   DefaultXField,
		YField:   DefaultYField,
		Scale:    DefaultScale,
		ZoomMode: DefaultZoomMode,
	}
}

// ValueCount is a facet value with count
type ValueCount struct {
	Value string `json:"value" yaml:"value"`
	Count uint64 `json:"count" yaml:"count"`
}

// StatsResult contains aggregated statistics for a numeric field
type StatsResult struct {
	Field  string   `json:"field" yaml:"field"`
	Count  uint64   `json:"count" yaml:"count"`
	Min    *float64 `json:"min" yaml:"min"`
	Max    *float64 `json:"max" yaml:"max"`
	Avg    *float64 `json:"avg" yaml:"avg"`
	Median *float64 `json:"median" yaml:"median"`
}

// FacetSummary describes how many options a facet has and how many are selected
type FacetSummary struct {
	Dimension Dimension `json:"dimension" yaml:"dimension"`
	Options   int       `json:"options" yaml:"options"`
	Pending   int       `json:"pending" yaml:"pending"`
	Committed int       `json:"committed" yaml:"committed"`
}
