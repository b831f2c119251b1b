package differ

import (
	"strings"

	"github.com/aleister1102/sidediff/internal/common"
)

// ParseLayout parses a layout name, case-insensitively.
func ParseLayout(name string) (Layout, error) {
	switch Layout(strings.ToLower(strings.TrimSpace(name))) {
	case LayoutPaired:
		return LayoutPaired, nil
	case LayoutPlain:
		return LayoutPlain, nil
	default:
		return "", common.NewValidationError("layout", name, "layout must be one of: paired, plain")
	}
}

// validateConfig validates a DiffConfig before a differ is built from it
func validateConfig(cfg DiffConfig) error {
	if _, err := ParseLayout(string(cfg.Layout)); err != nil {
		return err
	}
	if cfg.AlignTimeout < 0 {
		return common.NewValidationError("align_timeout", cfg.AlignTimeout, "align timeout cannot be negative")
	}
	return nil
}
