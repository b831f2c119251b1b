package differ

import (
	"slices"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func align(t *testing.T, left, right string) []EditEntry {
	t.Helper()
	dp := NewDiffProcessor(DefaultDiffConfig(), zerolog.Nop())
	return slices.Collect(dp.Align(SplitLines([]byte(left)), SplitLines([]byte(right))))
}

func kinds(entries []EditEntry) []EntryKind {
	out := make([]EntryKind, len(entries))
	for i, e := range entries {
		out[i] = e.Kind
	}
	return out
}

func TestDiffProcessor_IdenticalInputs(t *testing.T) {
	entries := align(t, "a\nb\nc", "a\nb\nc")

	require.Len(t, entries, 3)
	for i, e := range entries {
		assert.Equal(t, EntryBoth, e.Kind)
		assert.Equal(t, i, e.Left.Index)
		assert.Equal(t, i, e.Right.Index)
	}
}

func TestDiffProcessor_Insertion(t *testing.T) {
	entries := align(t, "a\nc", "a\nb\nc")

	assert.Equal(t, []EntryKind{EntryBoth, EntryOnlyRight, EntryBoth}, kinds(entries))
	assert.Equal(t, "b", string(entries[1].Right.Content))
	assert.Equal(t, 1, entries[1].Right.Index)
}

func TestDiffProcessor_Deletion(t *testing.T) {
	entries := align(t, "a\nb\nc", "a\nc")

	assert.Equal(t, []EntryKind{EntryBoth, EntryOnlyLeft, EntryBoth}, kinds(entries))
	assert.Equal(t, 2, entries[2].Left.Index)
	assert.Equal(t, 1, entries[2].Right.Index)
}

func TestDiffProcessor_ReplacementListsDeletionsFirst(t *testing.T) {
	entries := align(t, "a\nb", "c\nd")

	assert.Equal(t, []EntryKind{EntryOnlyLeft, EntryOnlyLeft, EntryOnlyRight, EntryOnlyRight}, kinds(entries))
}

func TestDiffProcessor_ComparesWholeLines(t *testing.T) {
	// Lines sharing a prefix still count as different.
	entries := align(t, "prefix-one", "prefix-two")

	assert.Equal(t, []EntryKind{EntryOnlyLeft, EntryOnlyRight}, kinds(entries))
}

func TestDiffProcessor_EveryLineConsumedOnce(t *testing.T) {
	left := "x\ny\nz\nx\ny"
	right := "y\nx\nq\ny\nz\nz"
	entries := align(t, left, right)

	var leftSeen, rightSeen []int
	for _, e := range entries {
		if e.Kind != EntryOnlyRight {
			leftSeen = append(leftSeen, e.Left.Index)
		}
		if e.Kind != EntryOnlyLeft {
			rightSeen = append(rightSeen, e.Right.Index)
		}
		if e.Kind == EntryBoth {
			assert.Equal(t, e.Left.Content, e.Right.Content)
		}
	}

	assert.Equal(t, []int{0, 1, 2, 3, 4}, leftSeen)
	assert.Equal(t, []int{0, 1, 2, 3, 4, 5}, rightSeen)
}

func TestDiffProcessor_WithTimeout(t *testing.T) {
	cfg := DefaultDiffConfig()
	cfg.AlignTimeout = time.Second
	dp := NewDiffProcessor(cfg, zerolog.Nop())

	entries := slices.Collect(dp.Align(SplitLines([]byte("a\nb")), SplitLines([]byte("a\nc"))))

	assert.Equal(t, []EntryKind{EntryBoth, EntryOnlyLeft, EntryOnlyRight}, kinds(entries))
}

func TestLineRuneSkipsSurrogates(t *testing.T) {
	assert.Equal(t, rune(0), lineRune(0))
	assert.Equal(t, rune(surrogateMin-1), lineRune(surrogateMin-1))
	assert.Equal(t, rune(surrogateMax+1), lineRune(surrogateMin))
}

func TestOneSidedScript(t *testing.T) {
	left := SplitLines([]byte("a\nb"))
	right := SplitLines([]byte("c"))

	entries := slices.Collect(oneSidedScript(left, right))

	assert.Equal(t, []EditEntry{OnlyLeft(left[0]), OnlyLeft(left[1]), OnlyRight(right[0])}, entries)
}

func TestEntryKindString(t *testing.T) {
	assert.Equal(t, "only_left", EntryOnlyLeft.String())
	assert.Equal(t, "only_right", EntryOnlyRight.String())
	assert.Equal(t, "both", EntryBoth.String())
	assert.Equal(t, "unknown", EntryKind(9).String())
}
