package display

// Terminal color codes
const (
	Reset   = "\033[0m"
	Red     = "\033[31m"
	Green   = "\033[32m"
	Yellow  = "\033[33m"
	Blue    = "\033[34m"
	Magenta = "\033[35m"
	Cyan    = "\033[36m"
	White   = "\033[37m"
)

// Prompt returns a prompt string, colored unless plain is set
func Prompt(text string, plain bool) string {
	if plain {
		return text + " > "
	}
	return Yellow + text + Yellow + " > " + Reset
}

// Paint wraps text in color unless plain is set
func Paint(color, text string, plain bool) string {
	if plain || color == "" {
		return text
	}
	return color + text + Reset
}

// ColorForTurn returns the turn indicator for a color name
func ColorForTurn(name string, plain bool) string {
	if name == "White" {
		return Paint(Blue, name, plain)
	}
	return Paint(Red, name, plain)
}
