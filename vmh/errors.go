package vmh

import (
	"errors"
	"fmt"
)

// ErrMalformedWord is matched by *MalformedWordError via errors.Is.
var ErrMalformedWord = errors.New("malformed word")

// MalformedWordError indicates a data word that does not split cleanly into lanes.
type MalformedWordError struct {
	Line   int
	Word   string
	Reason string
}

func (e *MalformedWordError) Error() string {
	return fmt.Sprintf("line %d: malformed word %q: %s", e.Line, e.Word, e.Reason)
}

func (e *MalformedWordError) Is(target error) bool { return target == ErrMalformedWord }

// ErrInvalidLaneCount is matched by *LaneCountError via errors.Is.
var ErrInvalidLaneCount = errors.New("invalid lane count")

// LaneCountError indicates an unusable bytes-per-word setting.
type LaneCountError struct {
	BytesPerWord int
}

func (e *LaneCountError) Error() string {
	return fmt.Sprintf("invalid bytes per word: %d (must be at least 1)", e.BytesPerWord)
}

func (e *LaneCountError) Is(target error) bool { return target == ErrInvalidLaneCount }
