package output

import (
	"fmt"
	"strings"
)

// Format represents a supported output encoding.
type Format string

const (
	// FormatEnv prints key=value lines.
	FormatEnv Format = "env"

	// FormatJSON prints a single-line JSON object.
	FormatJSON Format = "json"

	// FormatYAML prints a YAML mapping.
	FormatYAML Format = "yaml"

	// FormatTOML prints a TOML document.
	FormatTOML Format = "toml"
)

// DefaultFormat is used when no format is configured.
const DefaultFormat = FormatEnv

// String returns the string representation of the format.
func (f Format) String() string {
	return string(f)
}

// IsValid returns true if the format is a known valid format.
func (f Format) IsValid() bool {
	switch f {
	case FormatEnv, FormatJSON, FormatYAML, FormatTOML:
		return true
	default:
		return false
	}
}

// Formats returns the names of all supported formats.
func Formats() []string {
	return []string{
		FormatEnv.String(),
		FormatJSON.String(),
		FormatYAML.String(),
		FormatTOML.String(),
	}
}

// ParseFormat converts a string to a Format.
// Matching is case-insensitive; an empty string yields DefaultFormat.
func ParseFormat(s string) (Format, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return DefaultFormat, nil
	}
	f := Format(s)
	if !f.IsValid() {
		return "", fmt.Errorf("unsupported output format %q (expected one of: %s)", s, strings.Join(Formats(), ", "))
	}
	return f, nil
}
