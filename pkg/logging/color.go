package logging

import (
	"io"
	"os"
	"strings"
)

// Color is an ANSI escape sequence
type Color string

// Color codes
const (
	ColorReset         Color = "\033[0m"
	ColorRed           Color = "\033[31m"
	ColorGreen         Color = "\033[32m"
	ColorYellow        Color = "\033[33m"
	ColorCyan          Color = "\033[36m"
	ColorWhite         Color = "\033[37m"
	ColorGray          Color = "\033[90m"
	ColorBrightGreen   Color = "\033[92m"
	ColorBrightMagenta Color = "\033[95m"
	ColorBrightCyan    Color = "\033[96m"
	ColorBold          Color = "\033[1m"
)

// Paint wraps text in the given colors when enabled is true.
// With no colors or enabled false the text is returned unchanged.
func Paint(enabled bool, text string, colors ...Color) string {
	if !enabled || len(colors) == 0 {
		return text
	}
	var sb strings.Builder
	for _, c := range colors {
		sb.WriteString(string(c))
	}
	sb.WriteString(text)
	sb.WriteString(string(ColorReset))
	return sb.String()
}

// IsTerminal reports whether w is a character device such as a TTY
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	fileInfo, err := f.Stat()
	if err != nil {
		return false
	}
	return (fileInfo.Mode() & os.ModeCharDevice) != 0
}
