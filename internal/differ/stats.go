package differ

// DiffStatistics holds per-symbol row counts for one comparison
type DiffStatistics struct {
	Rows      int
	Identical int
	Changed   int
	LeftOnly  int
	RightOnly int
}

// DiffStatsCalculator tallies rows as they are rendered
type DiffStatsCalculator struct {
	stats DiffStatistics
}

// NewDiffStatsCalculator creates a new diff stats calculator
func NewDiffStatsCalculator() *DiffStatsCalculator {
	return &DiffStatsCalculator{}
}

// Record counts one rendered row.
func (dsc *DiffStatsCalculator) Record(symbol Symbol) {
	dsc.stats.Rows++
	switch symbol {
	case SymbolIdentical:
		dsc.stats.Identical++
	case SymbolChanged:
		dsc.stats.Changed++
	case SymbolLeftOnly:
		dsc.stats.LeftOnly++
	case SymbolRightOnly:
		dsc.stats.RightOnly++
	}
}

// Stats returns the counts recorded so far
func (dsc *DiffStatsCalculator) Stats() DiffStatistics {
	return dsc.stats
}

// HasDifferences reports whether any rendered row was not identical.
func (s DiffStatistics) HasDifferences() bool {
	return s.Changed+s.LeftOnly+s.RightOnly > 0
}
