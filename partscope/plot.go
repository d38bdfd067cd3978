package partscope

import "strings"

// Validate rejects empty axis fields and unknown scale or zoom values. Axis field
// names are otherwise opaque.
func (p PlotConfig) Validate() error {
	if strings.TrimSpace(p.XField) == "" {
		return ConfigError("x_field", "must not be empty")
	}
	if strings.TrimSpace(p.YField) == "" {
		return ConfigError("y_field", "must not be empty")
	}
	if _, err := ParseScale(string(p.Scale)); err != nil {
		return err
	}
	if _, err := ParseZoomMode(string(p.ZoomMode)); err != nil {
		return err
	}
	return nil
}
