package common

// ANSI color codes for terminal board rendering
const (
	ColorReset  = "\033[0m"
	ColorRed    = "\033[31m"
	ColorGreen  = "\033[32m"
	ColorYellow = "\033[33m"
	ColorBlue   = "\033[34m"
	ColorCyan   = "\033[36m"
	ColorGray   = "\033[90m"

	BgBlue   = "\033[44m"
	BgRed    = "\033[41m"
	BgYellow = "\033[43m"
)

// Colorize wraps s in the given color code, or returns s unchanged when
// color is empty
func Colorize(s, color string) string {
	if color == "" {
		return s
	}
	return color + s + ColorReset
}
