// Package errs defines the sentinel errors shared across bytesight packages.
//
// Callers should use errors.Is to test for these, since most call sites wrap
// them with additional context via fmt.Errorf("%w: ...").
package errs

import "errors"

var (
	// ErrNilSurface is returned when a channel is created without a frame surface.
	ErrNilSurface = errors.New("nil frame surface")

	// ErrNilQueue is returned when a channel is created without an event queue.
	ErrNilQueue = errors.New("nil event queue")

	// ErrInvalidBase is returned when a resize targets a zero or negative
	// frame dimension, or one larger than the surface can hold.
	ErrInvalidBase = errors.New("invalid frame base dimension")

	// ErrInvalidClockMode is returned for a clock mode outside the known set.
	ErrInvalidClockMode = errors.New("invalid clock mode")

	// ErrInvalidPackMode is returned for a packing mode outside the known set.
	ErrInvalidPackMode = errors.New("invalid packing mode")

	// ErrInvalidMapMode is returned for a mapping mode outside the known set.
	ErrInvalidMapMode = errors.New("invalid mapping mode")

	// ErrInvalidAlphaMode is returned for an alpha mode outside the known set.
	ErrInvalidAlphaMode = errors.New("invalid alpha mode")

	// ErrUnknownOpcode is returned when a graph-mode command carries an
	// opcode that does not select any mode. No state changes.
	ErrUnknownOpcode = errors.New("unknown graph-mode opcode")

	// ErrEmptyPattern is returned when a pattern is registered with an
	// empty byte sequence.
	ErrEmptyPattern = errors.New("empty pattern sequence")

	// ErrMalformedPattern is returned when a textual pattern specification
	// contains a token that is not a hexadecimal byte value. The whole
	// pattern set is discarded.
	ErrMalformedPattern = errors.New("malformed pattern specification")

	// ErrInvalidCompression is returned for an unsupported source
	// compression type.
	ErrInvalidCompression = errors.New("invalid source compression")
)
