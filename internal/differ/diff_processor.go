package differ

import (
	"iter"
	"unicode/utf8"

	"github.com/rs/zerolog"
	"github.com/sergi/go-diff/diffmatchpatch"
)

const (
	surrogateMin = 0xD800
	surrogateMax = 0xDFFF

	// maxDistinctLines is how many distinct lines can be encoded as valid runes.
	maxDistinctLines = utf8.MaxRune + 1 - (surrogateMax - surrogateMin + 1)
)

// DiffProcessor aligns line sequences with diffmatchpatch in line mode.
// Every distinct line content is mapped to one rune, the rune strings are diffed,
// and the resulting diffs are decoded back into per-line edit entries.
type DiffProcessor struct {
	dmp    *diffmatchpatch.DiffMatchPatch
	logger zerolog.Logger
}

// NewDiffProcessor creates a new diff processor
func NewDiffProcessor(config DiffConfig, logger zerolog.Logger) *DiffProcessor {
	dmp := diffmatchpatch.New()
	dmp.DiffTimeout = config.AlignTimeout

	return &DiffProcessor{
		dmp:    dmp,
		logger: logger.With().Str("component", "DiffProcessor").Logger(),
	}
}

// Align computes the edit script between left and right.
func (dp *DiffProcessor) Align(left, right []Line) iter.Seq[EditEntry] {
	leftRunes, rightRunes, ok := encodeLines(left, right)
	if !ok {
		dp.logger.Warn().
			Int("left_lines", len(left)).
			Int("right_lines", len(right)).
			Msg("Too many distinct lines to align, reporting every line as one-sided")
		return oneSidedScript(left, right)
	}

	diffs := dp.dmp.DiffMainRunes(leftRunes, rightRunes, false)
	dp.logger.Debug().Int("diff_chunks", len(diffs)).Msg("Aligned input lines")

	return decodeDiffs(diffs, left, right)
}

// encodeLines maps each distinct line content to its own rune.
func encodeLines(left, right []Line) ([]rune, []rune, bool) {
	runeByContent := make(map[string]rune)

	encode := func(lines []Line) ([]rune, bool) {
		out := make([]rune, len(lines))
		for i, line := range lines {
			r, seen := runeByContent[string(line.Content)]
			if !seen {
				if len(runeByContent) >= maxDistinctLines {
					return nil, false
				}
				r = lineRune(len(runeByContent))
				runeByContent[string(line.Content)] = r
			}
			out[i] = r
		}
		return out, true
	}

	leftRunes, ok := encode(left)
	if !ok {
		return nil, nil, false
	}
	rightRunes, ok := encode(right)
	if !ok {
		return nil, nil, false
	}
	return leftRunes, rightRunes, true
}

// lineRune skips the surrogate block so diff texts survive the rune to string round trip.
func lineRune(n int) rune {
	if n >= surrogateMin {
		n += surrogateMax - surrogateMin + 1
	}
	return rune(n)
}

// decodeDiffs walks the diffs, consuming one line per rune of each chunk.
func decodeDiffs(diffs []diffmatchpatch.Diff, left, right []Line) iter.Seq[EditEntry] {
	return func(yield func(EditEntry) bool) {
		li, ri := 0, 0
		for _, d := range diffs {
			n := utf8.RuneCountInString(d.Text)
			for range n {
				var entry EditEntry
				switch d.Type {
				case diffmatchpatch.DiffEqual:
					entry = Both(left[li], right[ri])
					li, ri = li+1, ri+1
				case diffmatchpatch.DiffDelete:
					entry = OnlyLeft(left[li])
					li++
				case diffmatchpatch.DiffInsert:
					entry = OnlyRight(right[ri])
					ri++
				}
				if !yield(entry) {
					return
				}
			}
		}
	}
}

// oneSidedScript reports every left line as removed and every right line as added.
func oneSidedScript(left, right []Line) iter.Seq[EditEntry] {
	return func(yield func(EditEntry) bool) {
		for _, l := range left {
			if !yield(OnlyLeft(l)) {
				return
			}
		}
		for _, r := range right {
			if !yield(OnlyRight(r)) {
				return
			}
		}
	}
}
