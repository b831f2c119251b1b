package differ

// Layout selects how an edit script is rendered into columns.
type Layout string

const (
	// LayoutPaired re-pairs one-sided entries by line index before rendering.
	LayoutPaired Layout = "paired"
	// LayoutPlain renders the edit script entry by entry.
	LayoutPlain Layout = "plain"
)

// String returns string representation of Layout
func (l Layout) String() string {
	return string(l)
}

// Symbol is the marker printed between the two columns of a row.
type Symbol string

const (
	SymbolIdentical Symbol = " "
	SymbolChanged   Symbol = "|"
	SymbolLeftOnly  Symbol = "<"
	SymbolRightOnly Symbol = ">"
)

const (
	// ColumnWidth is the nominal width of each column.
	ColumnWidth = 60
	// Limiter is the number of content bytes kept per side in the paired layout.
	Limiter = ColumnWidth + 1
)
