package tlsf

import "errors"

// Errors returned by AddPool. The design treats pool admission failure as
// a "false/zero" return; in Go, a descriptive sentinel error serves the
// same purpose and lets callers errors.Is against a specific cause.
var (
	// ErrInvalidPool is returned when AddPool is given an empty slice.
	ErrInvalidPool = errors.New("tlsf: pool memory must not be empty")

	// ErrMisaligned is returned when a pool's base address is not a
	// multiple of alignSize.
	ErrMisaligned = errors.New("tlsf: pool base address is not aligned")

	// ErrPoolTooSmall is returned when a pool is smaller than the fixed
	// bookkeeping overhead it must carry regardless of payload.
	ErrPoolTooSmall = errors.New("tlsf: pool smaller than minimum overhead")

	// ErrPoolSizeOutOfRange is returned when a pool's usable size, after
	// subtracting overhead, falls outside [blockSizeMin, blockSizeMax).
	ErrPoolSizeOutOfRange = errors.New("tlsf: usable pool size out of range")
)
