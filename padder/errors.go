package padder

import (
	"errors"
	"fmt"
)

// Sentinel errors matched by the typed errors below via errors.Is.
var (
	// ErrInvalidSize indicates a size argument that is not a non-negative integer.
	ErrInvalidSize = errors.New("invalid size argument")
	// ErrTargetTooSmall indicates a target size below the current image length.
	ErrTargetTooSmall = errors.New("target size smaller than image")
)

// SizeError indicates that a size argument could not be used.
type SizeError struct {
	Input string
	Err   error
}

func (e *SizeError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("invalid size argument %q: %v", e.Input, e.Err)
	}
	return fmt.Sprintf("invalid size argument %q", e.Input)
}

func (e *SizeError) Unwrap() error { return e.Err }

func (e *SizeError) Is(target error) bool { return target == ErrInvalidSize }

// TargetTooSmallError indicates that padding would require truncating the image.
type TargetTooSmallError struct {
	Path   string
	Size   int64
	Target int64
}

func (e *TargetTooSmallError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("target size %d is smaller than %s (%d bytes)", e.Target, e.Path, e.Size)
	}
	return fmt.Sprintf("target size %d is smaller than image (%d bytes)", e.Target, e.Size)
}

func (e *TargetTooSmallError) Is(target error) bool { return target == ErrTargetTooSmall }
