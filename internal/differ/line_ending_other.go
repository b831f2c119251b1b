//go:build !windows

package differ

// LineEnding terminates every rendered row.
const LineEnding = "\n"
