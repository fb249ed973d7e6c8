package number

import (
	"fmt"
	"strings"
)

// Format selects how an identifier is rendered for display.
type Format string

// Supported display formats.
const (
	// FormatCompact is the plain ten-digit form, valid for every identifier.
	FormatCompact Format = "compact"
	// FormatOfficial is the spaced form mandated for some identifiers, such
	// as the NHS 3-3-4 grouping.
	FormatOfficial Format = "official"
)

// validFormats is the single source of truth for valid display formats.
var validFormats = map[Format]bool{
	FormatCompact:  true,
	FormatOfficial: true,
}

// ParseFormat constructs a Format from external input, case-insensitively.
// Returns an error for anything outside the allowlist.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(s))
	if !validFormats[f] {
		return "", fmt.Errorf("unknown format: %s", s)
	}
	return f, nil
}

// String returns the string representation of the format.
func (f Format) String() string {
	return string(f)
}
