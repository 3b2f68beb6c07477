package output

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/indaco/relmeta/internal/release"
	"github.com/pelletier/go-toml/v2"
	"github.com/tidwall/sjson"
)

// Formatter renders a ParsedVersion in a single output format.
type Formatter struct {
	format Format
}

// NewFormatter creates a new Formatter with the specified output format.
// Invalid formats fall back to DefaultFormat.
func NewFormatter(format Format) *Formatter {
	if !format.IsValid() {
		format = DefaultFormat
	}
	return &Formatter{format: format}
}

// Format returns the encoding used by the formatter.
func (f *Formatter) Format() Format {
	return f.format
}

// Render returns pv rendered in the formatter's encoding, newline terminated.
func (f *Formatter) Render(pv release.ParsedVersion) (string, error) {
	switch f.format {
	case FormatJSON:
		return f.renderJSON(pv)
	case FormatYAML:
		return f.renderYAML(pv)
	case FormatTOML:
		return f.renderTOML(pv)
	default:
		return f.renderEnv(pv), nil
	}
}

// Write renders pv and writes it to w.
func (f *Formatter) Write(w io.Writer, pv release.ParsedVersion) error {
	out, err := f.Render(pv)
	if err != nil {
		return err
	}
	if _, err := io.WriteString(w, out); err != nil {
		return fmt.Errorf("failed to write %s output: %w", f.format, err)
	}
	return nil
}

// renderEnv formats one key=value line per field.
func (f *Formatter) renderEnv(pv release.ParsedVersion) string {
	var sb strings.Builder
	for _, field := range pv.Fields() {
		sb.WriteString(field.Key)
		sb.WriteByte('=')
		sb.WriteString(formatValue(field.Value))
		sb.WriteByte('\n')
	}
	return sb.String()
}

// renderJSON builds the object key by key with sjson so field order is kept.
func (f *Formatter) renderJSON(pv release.ParsedVersion) (string, error) {
	var doc string
	for _, field := range pv.Fields() {
		var err error
		doc, err = sjson.Set(doc, field.Key, field.Value)
		if err != nil {
			return "", fmt.Errorf("failed to set %q in JSON output: %w", field.Key, err)
		}
	}
	return doc + "\n", nil
}

// renderYAML marshals an ordered mapping.
func (f *Formatter) renderYAML(pv release.ParsedVersion) (string, error) {
	fields := pv.Fields()
	ms := make(yaml.MapSlice, 0, len(fields))
	for _, field := range fields {
		ms = append(ms, yaml.MapItem{Key: field.Key, Value: field.Value})
	}

	data, err := yaml.Marshal(ms)
	if err != nil {
		return "", fmt.Errorf("failed to marshal YAML output: %w", err)
	}
	return ensureNewline(string(data)), nil
}

// tomlDocument mirrors release.ParsedVersion with stable key order.
type tomlDocument struct {
	Version       string `toml:"version"`
	MajorMinor    string `toml:"major_minor"`
	ReleaseBranch string `toml:"release_branch"`
	IsMinor       bool   `toml:"is_minor"`
	IsFirstRC     bool   `toml:"is_first_rc"`
}

// renderTOML marshals a flat TOML table.
func (f *Formatter) renderTOML(pv release.ParsedVersion) (string, error) {
	doc := tomlDocument{
		Version:       pv.Version,
		MajorMinor:    pv.MajorMinor,
		ReleaseBranch: pv.ReleaseBranch,
		IsMinor:       pv.IsMinor,
		IsFirstRC:     pv.IsFirstRC,
	}

	data, err := toml.Marshal(doc)
	if err != nil {
		return "", fmt.Errorf("failed to marshal TOML output: %w", err)
	}
	return ensureNewline(string(data)), nil
}

// formatValue renders booleans as lowercase true/false and strings verbatim.
func formatValue(v any) string {
	switch val := v.(type) {
	case string:
		return val
	case bool:
		return strconv.FormatBool(val)
	default:
		return fmt.Sprint(val)
	}
}

func ensureNewline(s string) string {
	if s == "" || strings.HasSuffix(s, "\n") {
		return s
	}
	return s + "\n"
}
