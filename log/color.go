package log

// ANSI color codes
const (
	ColorReset  = "\033[0m"
	ColorRed    = "\033[31m"
	ColorGreen  = "\033[32m"
	ColorYellow = "\033[33m"
	ColorBlue   = "\033[34m"
	ColorCyan   = "\033[36m"
	ColorBold   = "\033[1m"
)

// ColoredString returns a colored string if color is enabled
func ColoredString(s string, color string, noColor bool) string {
	if noColor {
		return s
	}
	return color + s + ColorReset
}

// levelColor returns the color used for a level label.
func levelColor(level Level) string {
	switch level {
	case DebugLevel:
		return ColorBlue
	case InfoLevel:
		return ColorGreen
	case WarnLevel:
		return ColorYellow
	case ErrorLevel:
		return ColorRed
	case FatalLevel:
		return ColorRed + ColorBold
	}
	return ""
}

// ColoredLevel returns the padded level label, colored unless noColor is set.
func ColoredLevel(level Level, noColor bool) string {
	label := "| " + padLevel(level.String()) + " |"
	color := levelColor(level)
	if noColor || color == "" {
		return label
	}
	return color + label + ColorReset
}

func padLevel(name string) string {
	for len(name) < 5 {
		name += " "
	}
	return name
}
