package release

import (
	"strings"
)

// Field keys, in output order.
const (
	KeyVersion       = "version"
	KeyMajorMinor    = "major_minor"
	KeyReleaseBranch = "release_branch"
	KeyIsMinor       = "is_minor"
	KeyIsFirstRC     = "is_first_rc"
)

// firstRCMarker is matched anywhere in the version, not only as a suffix.
const firstRCMarker = "rc1"

// ParsedVersion holds the metadata derived from a release version string.
type ParsedVersion struct {
	Version       string
	MajorMinor    string
	ReleaseBranch string
	IsMinor       bool
	IsFirstRC     bool
}

// Field is a single key/value pair of a ParsedVersion.
// Value is either a string or a bool.
type Field struct {
	Key   string
	Value any
}

// Fields returns the metadata as ordered key/value pairs.
func (p ParsedVersion) Fields() []Field {
	return []Field{
		{Key: KeyVersion, Value: p.Version},
		{Key: KeyMajorMinor, Value: p.MajorMinor},
		{Key: KeyReleaseBranch, Value: p.ReleaseBranch},
		{Key: KeyIsMinor, Value: p.IsMinor},
		{Key: KeyIsFirstRC, Value: p.IsFirstRC},
	}
}

// StripPrefix removes every leading "v" from s.
func StripPrefix(s string) string {
	return strings.TrimLeft(s, "v")
}

// Parse derives release metadata from a version string.
//
// Accepted input looks like "v2.99.0-rc1" or "2.5.3". Leading "v" characters
// are removed, then the remainder must split on "." into exactly three parts;
// anything else yields a *FormatError. Parts are not checked for being
// numeric, so "01.02.0" keeps its leading zeros in the branch name.
//
// Examples:
//   - "v2.99.0-rc1" -> branch "v2.99.x", minor, first RC
//   - "2.5.3"       -> branch "v2.5.x", neither
//   - "v1.0.0"      -> minor, not first RC
func Parse(raw string) (ParsedVersion, error) {
	version := StripPrefix(raw)

	parts := strings.Split(version, ".")
	if len(parts) != 3 {
		return ParsedVersion{}, &FormatError{Input: raw, Components: len(parts)}
	}

	major, minor := parts[0], parts[1]
	patch, _, _ := strings.Cut(parts[2], "-")

	isMinor := patch == "0"

	return ParsedVersion{
		Version:       version,
		MajorMinor:    major + "." + minor,
		ReleaseBranch: "v" + major + "." + minor + ".x",
		IsMinor:       isMinor,
		IsFirstRC:     isMinor && strings.Contains(version, firstRCMarker),
	}, nil
}
