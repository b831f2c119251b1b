package differ

import "iter"

// EntryKind tags an edit script entry.
type EntryKind int

const (
	EntryOnlyLeft EntryKind = iota
	EntryOnlyRight
	EntryBoth
)

// String returns string representation of EntryKind
func (k EntryKind) String() string {
	switch k {
	case EntryOnlyLeft:
		return "only_left"
	case EntryOnlyRight:
		return "only_right"
	case EntryBoth:
		return "both"
	default:
		return "unknown"
	}
}

// EditEntry is one step of an edit script turning the left lines into the right lines.
// Only the side(s) named by Kind are meaningful.
type EditEntry struct {
	Kind  EntryKind
	Left  Line
	Right Line
}

// OnlyLeft builds an entry for a line present only on the left.
func OnlyLeft(l Line) EditEntry {
	return EditEntry{Kind: EntryOnlyLeft, Left: l}
}

// OnlyRight builds an entry for a line present only on the right.
func OnlyRight(r Line) EditEntry {
	return EditEntry{Kind: EntryOnlyRight, Right: r}
}

// Both builds an entry for a line matched on both sides.
func Both(l, r Line) EditEntry {
	return EditEntry{Kind: EntryBoth, Left: l, Right: r}
}

// Aligner produces an edit script between two line sequences, comparing lines by content.
type Aligner interface {
	Align(left, right []Line) iter.Seq[EditEntry]
}

// AlignerFunc adapts a plain function to the Aligner interface.
type AlignerFunc func(left, right []Line) iter.Seq[EditEntry]

// Align calls f(left, right).
func (f AlignerFunc) Align(left, right []Line) iter.Seq[EditEntry] {
	return f(left, right)
}
