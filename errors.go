package chart

import (
	"errors"
	"fmt"
)

// ErrLengthMismatch indicates that two slices of a series which must have
// the same length do not.
var ErrLengthMismatch = errors.New("length mismatch")

// ErrNoAxis indicates a plot without an x or y axis.
var ErrNoAxis = errors.New("missing axis")

// SeriesError reports an invalid series.
type SeriesError struct {
	Label string
	Field string // "y", "xerr.minus", "xerr.plus", "yerr.minus", "yerr.plus"
	Err   error
}

func (e *SeriesError) Error() string {
	return fmt.Sprintf("series %q (%s): %v", e.Label, e.Field, e.Err)
}

func (e *SeriesError) Unwrap() error {
	return e.Err
}
