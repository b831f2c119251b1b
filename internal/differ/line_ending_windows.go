package differ

// LineEnding terminates every rendered row.
const LineEnding = "\r\n"
