package config

// DiffConfig defines configuration for rendering comparisons
type DiffConfig struct {
	Layout         string `json:"layout,omitempty" yaml:"layout,omitempty" validate:"omitempty,layout"`
	AlignTimeoutMs int    `json:"align_timeout_ms,omitempty" yaml:"align_timeout_ms,omitempty" validate:"omitempty,min=0"`
}

// NewDefaultDiffConfig creates default diff configuration
func NewDefaultDiffConfig() DiffConfig {
	return DiffConfig{
		Layout:         DefaultDiffLayout,
		AlignTimeoutMs: DefaultDiffAlignTimeoutMs,
	}
}
