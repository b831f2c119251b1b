package differ

import "time"

// ComparisonResult is the outcome of comparing two buffers
type ComparisonResult struct {
	Output           []byte
	Stats            DiffStatistics
	Identical        bool
	Layout           Layout
	ProcessingTimeMs int64
}

// ComparisonResultBuilder builds ComparisonResult objects
type ComparisonResultBuilder struct {
	result ComparisonResult
}

// NewComparisonResultBuilder creates a new result builder
func NewComparisonResultBuilder(layout Layout) *ComparisonResultBuilder {
	return &ComparisonResultBuilder{
		result: ComparisonResult{
			Layout: layout,
			Output: []byte{},
		},
	}
}

// WithOutput sets the rendered rows
func (rb *ComparisonResultBuilder) WithOutput(output []byte) *ComparisonResultBuilder {
	rb.result.Output = output
	return rb
}

// WithStats sets the row statistics
func (rb *ComparisonResultBuilder) WithStats(stats DiffStatistics) *ComparisonResultBuilder {
	rb.result.Stats = stats
	return rb
}

// WithIdentical records whether the inputs were byte-for-byte equal
func (rb *ComparisonResultBuilder) WithIdentical(identical bool) *ComparisonResultBuilder {
	rb.result.Identical = identical
	return rb
}

// WithProcessingTime sets the processing time
func (rb *ComparisonResultBuilder) WithProcessingTime(duration time.Duration) *ComparisonResultBuilder {
	rb.result.ProcessingTimeMs = duration.Milliseconds()
	return rb
}

// Build creates the final ComparisonResult
func (rb *ComparisonResultBuilder) Build() *ComparisonResult {
	return &rb.result
}
