//go:build unix

package render

import "golang.org/x/sys/unix"

// TerminalWidth returns the column count of the terminal open on fd.
// ok is false when fd is not a terminal.
func TerminalWidth(fd uintptr) (width int, ok bool) {
	ws, err := unix.IoctlGetWinsize(int(fd), unix.TIOCGWINSZ)
	if err != nil || ws.Col == 0 {
		return 0, false
	}

	return int(ws.Col), true
}
