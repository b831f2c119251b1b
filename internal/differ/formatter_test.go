package differ

import (
	"bytes"
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSymbolFor(t *testing.T) {
	tests := []struct {
		name     string
		left     string
		right    string
		expected Symbol
	}{
		{name: "both empty", left: "", right: "", expected: SymbolIdentical},
		{name: "left empty", left: "", right: "x", expected: SymbolRightOnly},
		{name: "right empty", left: "x", right: "", expected: SymbolLeftOnly},
		{name: "equal", left: "x", right: "x", expected: SymbolIdentical},
		{name: "different", left: "x", right: "y", expected: SymbolChanged},
		{name: "whitespace differs", left: "x ", right: "x", expected: SymbolChanged},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, SymbolFor([]byte(tt.left), []byte(tt.right)))
		})
	}
}

func TestRowFormatter_Format(t *testing.T) {
	var buf bytes.Buffer
	NewRowFormatter().Format(&buf, []byte("abc"), []byte("abd"), SymbolChanged)

	assert.Equal(t, "abc"+strings.Repeat(" ", 59)+"| abd"+LineEnding, buf.String())
}

func TestRowFormatter_PaddingNeverBelowOneSpace(t *testing.T) {
	var buf bytes.Buffer
	exact := strings.Repeat("a", Limiter)
	NewRowFormatter().Format(&buf, []byte(exact), []byte("b"), SymbolChanged)

	assert.Equal(t, exact+" | b"+LineEnding, buf.String())
}

func TestRowFormatter_TruncatesBothSides(t *testing.T) {
	var buf bytes.Buffer
	long := strings.Repeat("z", 100)
	NewRowFormatter().Format(&buf, []byte(long), []byte(long), SymbolIdentical)

	assert.Equal(t, strings.Repeat("z", Limiter)+"   "+strings.Repeat("z", Limiter)+LineEnding, buf.String())
}

func TestRowFormatter_FormatRowReturnsSymbol(t *testing.T) {
	var buf bytes.Buffer
	row := Row{Left: Line{Index: 0}, Right: Line{Index: 0, Content: []byte("new")}}

	symbol := NewRowFormatter().FormatRow(&buf, row)

	assert.Equal(t, SymbolRightOnly, symbol)
	assert.Equal(t, strings.Repeat(" ", 62)+"> new"+LineEnding, buf.String())
}

func TestDiffStatsCalculator(t *testing.T) {
	calc := NewDiffStatsCalculator()
	for _, s := range []Symbol{SymbolIdentical, SymbolIdentical, SymbolChanged, SymbolLeftOnly, SymbolRightOnly} {
		calc.Record(s)
	}

	assert.Equal(t, DiffStatistics{Rows: 5, Identical: 2, Changed: 1, LeftOnly: 1, RightOnly: 1}, calc.Stats())
	assert.False(t, DiffStatistics{Rows: 3, Identical: 3}.HasDifferences())
}

func TestLineEndingMatchesPlatform(t *testing.T) {
	expected := "\n"
	if runtime.GOOS == "windows" {
		expected = "\r\n"
	}

	assert.Equal(t, expected, LineEnding)

	output := Diff([]byte("a"), []byte("a"))
	assert.Equal(t, "a"+strings.Repeat(" ", 61)+"  a"+expected, string(output))
	assert.True(t, bytes.HasSuffix(output, []byte(expected)))
	if expected == "\n" {
		assert.NotContains(t, string(output), "\r")
	}
}
