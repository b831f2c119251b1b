package differ

import "bytes"

// Line is one '\n'-separated record of an input buffer.
// Content is a view into the source buffer and never includes the separator.
type Line struct {
	Index   int
	Content []byte
}

// SplitLines indexes buf by splitting on '\n'. Carriage returns are kept and no
// encoding validation is done. An empty buffer yields exactly one empty Line.
func SplitLines(buf []byte) []Line {
	parts := bytes.Split(buf, []byte{'\n'})
	lines := make([]Line, len(parts))
	for i, part := range parts {
		lines[i] = Line{Index: i, Content: part}
	}
	return lines
}

// IsEmpty reports whether the line has no content.
func (l Line) IsEmpty() bool {
	return len(l.Content) == 0
}

// placeholder stands in for a missing counterpart at the given index.
func placeholder(index int) Line {
	return Line{Index: index}
}

// lineAt returns lines[index] when the index is in range.
func lineAt(lines []Line, index int) (Line, bool) {
	if index < 0 || index >= len(lines) {
		return Line{}, false
	}
	return lines[index], true
}

// trimTrailingEmpty drops the empty record produced by a final '\n'.
func trimTrailingEmpty(lines []Line) []Line {
	if n := len(lines); n > 0 && lines[n-1].IsEmpty() {
		return lines[:n-1]
	}
	return lines
}
