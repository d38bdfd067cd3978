package partscope

const (
	// QualificationAutomotive and QualificationNonAutomotive are the only
	// qualification facet options.
	QualificationAutomotive    = "Automotive"
	QualificationNonAutomotive = "Non-Automotive"

	// AutomotiveYes is the source marker for an automotive-qualified part.
	AutomotiveYes = "Yes"

	DefaultXField   = "vds"
	DefaultYField   = "rdsontyp10vgs25ta"
	DefaultScale    = ScaleLog
	DefaultZoomMode = ZoomXY

	// OnResistanceConditions is the number of per-condition on-resistance readings.
	OnResistanceConditions = 4
)

// QualificationOptions returns the fixed qualification option list.
func QualificationOptions() []string {
	return []string{QualificationAutomotive, QualificationNonAutomotive}
}
