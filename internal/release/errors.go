package release

import (
	"errors"
	"fmt"
)

// ErrFormat is matched by every *FormatError via errors.Is.
var ErrFormat = errors.New("invalid version format")

// FormatError is returned when a version does not split into exactly three
// dot-separated components.
type FormatError struct {
	Input      string
	Components int
}

// Error implements the error interface.
func (e *FormatError) Error() string {
	return fmt.Sprintf("invalid version %q: expected MAJOR.MINOR.PATCH, got %d component(s)", e.Input, e.Components)
}

// Is reports whether target is ErrFormat.
func (e *FormatError) Is(target error) bool {
	return target == ErrFormat
}
