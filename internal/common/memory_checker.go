package common

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/shirou/gopsutil/v3/mem"
)

// DefaultMemoryFactor is how many times its size an input is expected to occupy
// once indexed and rendered.
const DefaultMemoryFactor = 4

// MemoryChecker compares input sizes with the memory the system reports as available
type MemoryChecker struct {
	logger    zerolog.Logger
	factor    int64
	available func() (uint64, error)
}

// NewMemoryChecker creates a checker backed by gopsutil
func NewMemoryChecker(logger zerolog.Logger) *MemoryChecker {
	return &MemoryChecker{
		logger:    logger.With().Str("component", "MemoryChecker").Logger(),
		factor:    DefaultMemoryFactor,
		available: systemAvailableMemory,
	}
}

func systemAvailableMemory() (uint64, error) {
	vmStat, err := mem.VirtualMemory()
	if err != nil {
		return 0, err
	}
	return vmStat.Available, nil
}

// CheckSize fails when size times the factor exceeds available memory.
// If memory cannot be queried the check is skipped.
func (mc *MemoryChecker) CheckSize(fieldName string, size int64) error {
	if size <= 0 {
		return nil
	}

	available, err := mc.available()
	if err != nil {
		mc.logger.Debug().Err(err).Msg("Could not query available memory, skipping check")
		return nil
	}

	required := uint64(size) * uint64(mc.factor)
	if required > available {
		return NewValidationError(fieldName, size,
			fmt.Sprintf("%s needs about %d bytes of memory, only %d available", fieldName, required, available))
	}
	return nil
}
