//go:build windows

package justify

// defaultLineBreak is the platform line break, used for the default line and
// paragraph separators.
const defaultLineBreak = "\r\n"
