package differ

import (
	"bytes"
	"time"

	"github.com/rs/zerolog"
)

// ContentDiffer renders side-by-side comparisons of two byte buffers
type ContentDiffer struct {
	logger     zerolog.Logger
	config     DiffConfig
	aligner    Aligner
	reconciler *Reconciler
	formatter  *RowFormatter
	plain      *PlainRenderer
}

// ContentDifferBuilder provides a fluent interface for creating ContentDiffer
type ContentDifferBuilder struct {
	logger  zerolog.Logger
	config  DiffConfig
	aligner Aligner
}

// NewContentDifferBuilder creates a new builder
func NewContentDifferBuilder(logger zerolog.Logger) *ContentDifferBuilder {
	return &ContentDifferBuilder{
		logger: logger.With().Str("component", "ContentDiffer").Logger(),
		config: DefaultDiffConfig(),
	}
}

// WithConfig sets the diff configuration
func (b *ContentDifferBuilder) WithConfig(cfg DiffConfig) *ContentDifferBuilder {
	b.config = cfg
	return b
}

// WithAligner replaces the default diffmatchpatch aligner
func (b *ContentDifferBuilder) WithAligner(aligner Aligner) *ContentDifferBuilder {
	b.aligner = aligner
	return b
}

// Build creates a new ContentDiffer instance
func (b *ContentDifferBuilder) Build() (*ContentDiffer, error) {
	if err := validateConfig(b.config); err != nil {
		return nil, err
	}

	aligner := b.aligner
	if aligner == nil {
		aligner = NewDiffProcessor(b.config, b.logger)
	}

	return newContentDiffer(b.logger, b.config, aligner), nil
}

func newContentDiffer(logger zerolog.Logger, cfg DiffConfig, aligner Aligner) *ContentDiffer {
	return &ContentDiffer{
		logger:     logger,
		config:     cfg,
		aligner:    aligner,
		reconciler: NewReconciler(),
		formatter:  NewRowFormatter(),
		plain:      NewPlainRenderer(),
	}
}

// NewContentDiffer creates a ContentDiffer with the given configuration
func NewContentDiffer(logger zerolog.Logger, cfg DiffConfig) (*ContentDiffer, error) {
	return NewContentDifferBuilder(logger).
		WithConfig(cfg).
		Build()
}

// Diff renders the paired side-by-side view of left and right with the default aligner.
// It never fails; two empty buffers produce an empty result.
func Diff(left, right []byte) []byte {
	cfg := DefaultDiffConfig()
	logger := zerolog.Nop()
	return newContentDiffer(logger, cfg, NewDiffProcessor(cfg, logger)).Compare(left, right).Output
}

// Compare renders left and right using the configured layout.
func (cd *ContentDiffer) Compare(left, right []byte) *ComparisonResult {
	startTime := time.Now()

	var (
		output []byte
		stats  DiffStatistics
	)
	switch cd.config.Layout {
	case LayoutPlain:
		output, stats = cd.renderPlain(left, right)
	default:
		output, stats = cd.renderPaired(left, right)
	}

	result := NewComparisonResultBuilder(cd.config.Layout).
		WithOutput(output).
		WithStats(stats).
		WithIdentical(bytes.Equal(left, right)).
		WithProcessingTime(time.Since(startTime)).
		Build()

	cd.logger.Debug().
		Str("layout", cd.config.Layout.String()).
		Int("rows", stats.Rows).
		Int("identical", stats.Identical).
		Int("changed", stats.Changed).
		Int("left_only", stats.LeftOnly).
		Int("right_only", stats.RightOnly).
		Int64("processing_time_ms", result.ProcessingTimeMs).
		Msg("Comparison rendered")

	return result
}

// renderPaired runs the reconciler over the edit script and formats every row.
func (cd *ContentDiffer) renderPaired(left, right []byte) ([]byte, DiffStatistics) {
	if len(left) == 0 && len(right) == 0 {
		return []byte{}, DiffStatistics{}
	}

	leftLines := SplitLines(left)
	rightLines := SplitLines(right)

	var buf bytes.Buffer
	calc := NewDiffStatsCalculator()
	script := cd.aligner.Align(leftLines, rightLines)
	for row := range cd.reconciler.Reconcile(script, leftLines, rightLines, NewDispatchedSet()) {
		calc.Record(cd.formatter.FormatRow(&buf, row))
	}

	return bufferBytes(&buf), calc.Stats()
}

// renderPlain drops the trailing empty record of each side and renders the script entry by entry.
func (cd *ContentDiffer) renderPlain(left, right []byte) ([]byte, DiffStatistics) {
	leftLines := trimTrailingEmpty(SplitLines(left))
	rightLines := trimTrailingEmpty(SplitLines(right))

	var buf bytes.Buffer
	stats := cd.plain.Render(&buf, cd.aligner.Align(leftLines, rightLines))

	return bufferBytes(&buf), stats
}

// bufferBytes returns the buffer contents as a non-nil slice.
func bufferBytes(buf *bytes.Buffer) []byte {
	if buf.Len() == 0 {
		return []byte{}
	}
	return buf.Bytes()
}
