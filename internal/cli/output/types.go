package output

import "strings"

// OutputMode selects how command results are rendered.
type OutputMode int

const (
	// ModeAuto picks text rendering suited to the attached writer.
	ModeAuto OutputMode = iota
	// ModeText forces human-readable text.
	ModeText
	// ModeJSON emits one machine-readable JSON document.
	ModeJSON
)

// Mode parses a --format value. Unknown values fall back to auto.
func Mode(s string) OutputMode {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "text":
		return ModeText
	case "json":
		return ModeJSON
	default:
		return ModeAuto
	}
}

// String returns the flag spelling of the mode.
func (m OutputMode) String() string {
	switch m {
	case ModeText:
		return "text"
	case ModeJSON:
		return "json"
	default:
		return "auto"
	}
}
