package text

import (
	"errors"
	"fmt"
)

// Sentinel errors for text packages.
var (
	// ErrEmptyFontData is returned when font data is empty.
	ErrEmptyFontData = errors.New("text: empty font data")

	// ErrInvalidFont is returned when font data cannot be parsed.
	ErrInvalidFont = errors.New("text: invalid font")

	// ErrFontNotFound is returned when no registered font matches a request.
	ErrFontNotFound = errors.New("text: font not found")

	// ErrInvalidRange is returned when a character range lies outside the text.
	ErrInvalidRange = errors.New("text: invalid range")

	// ErrInvalidLocale is returned when a locale string cannot be parsed.
	ErrInvalidLocale = errors.New("text: invalid locale")

	// ErrManagerClosed is returned when requesting work from a closed async manager.
	ErrManagerClosed = errors.New("text: async manager closed")

	// ErrLoaderPanic is reported when an async loader panics while processing a task.
	ErrLoaderPanic = errors.New("text: loader panicked")
)

// RunErrorKind describes how a run vector breaks the model invariants.
type RunErrorKind int

const (
	// RunPastEnd means a run extends beyond the character sequence.
	RunPastEnd RunErrorKind = iota
	// RunUnsorted means a run starts before the end of its predecessor.
	RunUnsorted
	// RunCoverage means glyph to character counts do not cover the text.
	RunCoverage
)

// String returns the string representation of the kind.
func (k RunErrorKind) String() string {
	switch k {
	case RunPastEnd:
		return "PastEnd"
	case RunUnsorted:
		return "Unsorted"
	case RunCoverage:
		return "Coverage"
	default:
		return unknownStr
	}
}

// RunError is returned when a run vector violates the model invariants.
type RunError struct {
	Vector string
	Kind   RunErrorKind
	Index  int
	Length Length
}

func (e *RunError) Error() string {
	return fmt.Sprintf("text: %s run %d invalid (%s, text length %d)", e.Vector, e.Index, e.Kind, e.Length)
}
