package differ

import "bytes"

// RowFormatter renders rows as fixed-width byte columns.
type RowFormatter struct {
	limiter    int
	lineEnding string
}

// NewRowFormatter creates a formatter using the package limiter and the platform line ending
func NewRowFormatter() *RowFormatter {
	return &RowFormatter{
		limiter:    Limiter,
		lineEnding: LineEnding,
	}
}

// SymbolFor picks the row symbol from the content of both sides.
func SymbolFor(left, right []byte) Symbol {
	switch {
	case len(left) == 0 && len(right) > 0:
		return SymbolRightOnly
	case len(left) > 0 && len(right) == 0:
		return SymbolLeftOnly
	case bytes.Equal(left, right):
		return SymbolIdentical
	default:
		return SymbolChanged
	}
}

// FormatRow writes row to buf and returns the symbol it used.
func (rf *RowFormatter) FormatRow(buf *bytes.Buffer, row Row) Symbol {
	symbol := SymbolFor(row.Left.Content, row.Right.Content)
	rf.Format(buf, row.Left.Content, row.Right.Content, symbol)
	return symbol
}

// Format writes one output line:
// {left}{padding} {symbol} {right}{EOL}
// Each side is cut to the limiter; the padding is never shorter than one space.
func (rf *RowFormatter) Format(buf *bytes.Buffer, left, right []byte, symbol Symbol) {
	left = truncate(left, rf.limiter)
	right = truncate(right, rf.limiter)

	buf.Write(left)
	writeSpaces(buf, max(rf.limiter-len(left), 0)+1)
	buf.WriteString(string(symbol))
	buf.WriteByte(' ')
	buf.Write(right)
	buf.WriteString(rf.lineEnding)
}

// truncate keeps the first limit bytes; multi-byte characters may be split.
func truncate(content []byte, limit int) []byte {
	if len(content) > limit {
		return content[:limit]
	}
	return content
}

func writeSpaces(buf *bytes.Buffer, n int) {
	for range n {
		buf.WriteByte(' ')
	}
}
