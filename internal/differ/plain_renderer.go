package differ

import (
	"bytes"
	"iter"
)

const (
	plainMiddleLeft  = " < "
	plainMiddleRight = " > "
	plainMiddleBoth  = "   "
)

// PlainRenderer writes an edit script straight to columns, one row per entry,
// without re-pairing one-sided entries by index.
type PlainRenderer struct {
	width      int
	lineEnding string
}

// NewPlainRenderer creates a renderer with ColumnWidth columns
func NewPlainRenderer() *PlainRenderer {
	return &PlainRenderer{
		width:      ColumnWidth,
		lineEnding: LineEnding,
	}
}

// Render writes every entry of script to buf and returns the row counts.
func (pr *PlainRenderer) Render(buf *bytes.Buffer, script iter.Seq[EditEntry]) DiffStatistics {
	calc := NewDiffStatsCalculator()

	for entry := range script {
		switch entry.Kind {
		case EntryOnlyLeft:
			pr.writeRow(buf, entry.Left.Content, nil, plainMiddleLeft)
			calc.Record(SymbolLeftOnly)
		case EntryOnlyRight:
			pr.writeRow(buf, nil, entry.Right.Content, plainMiddleRight)
			calc.Record(SymbolRightOnly)
		case EntryBoth:
			pr.writeRow(buf, entry.Left.Content, entry.Right.Content, plainMiddleBoth)
			calc.Record(SymbolIdentical)
		}
	}

	return calc.Stats()
}

// writeRow pads the left column to exactly width bytes.
func (pr *PlainRenderer) writeRow(buf *bytes.Buffer, left, right []byte, middle string) {
	left = truncate(left, pr.width)
	buf.Write(left)
	writeSpaces(buf, pr.width-len(left))
	buf.WriteString(middle)
	buf.Write(truncate(right, pr.width))
	buf.WriteString(pr.lineEnding)
}
