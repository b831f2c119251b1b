package differ

import (
	"time"

	"github.com/aleister1102/sidediff/internal/config"
)

// DiffConfig holds configuration for side-by-side diffing
type DiffConfig struct {
	Layout       Layout
	AlignTimeout time.Duration
}

// DefaultDiffConfig returns default configuration
func DefaultDiffConfig() DiffConfig {
	return DiffConfig{
		Layout:       LayoutPaired,
		AlignTimeout: 0,
	}
}

// DiffConfigFromSettings converts the file/flag level settings into a DiffConfig.
func DiffConfigFromSettings(settings config.DiffConfig) (DiffConfig, error) {
	cfg := DefaultDiffConfig()

	if settings.Layout != "" {
		layout, err := ParseLayout(settings.Layout)
		if err != nil {
			return cfg, err
		}
		cfg.Layout = layout
	}

	if settings.AlignTimeoutMs > 0 {
		cfg.AlignTimeout = time.Duration(settings.AlignTimeoutMs) * time.Millisecond
	}

	return cfg, nil
}
