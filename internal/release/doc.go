// Package release derives release metadata from a version string: the
// normalized version, the major.minor pair, the maintenance branch name, and
// whether the version is a minor release or its first release candidate.
//
// Components are treated as opaque text. Only the dot-separated shape
// MAJOR.MINOR.PATCH is checked.
package release
