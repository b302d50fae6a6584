//go:build !unix

package render

// TerminalWidth always reports that fd is not a terminal.
func TerminalWidth(uintptr) (int, bool) {
	return 0, false
}
