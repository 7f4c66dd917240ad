package chart

import "errors"

var (
	// ErrInvalidInput covers series and palettes the renderer cannot draw:
	// empty or non-finite data, no positive value on axes, a pie that sums to
	// zero or holds a negative slice, unparsable colours.
	ErrInvalidInput    = errors.New("invalid input")
	ErrUnknownKind     = errors.New("unknown chart type")
	ErrNotAttached     = errors.New("renderer has no surface")
	ErrAlreadyAttached = errors.New("renderer already attached")
)
