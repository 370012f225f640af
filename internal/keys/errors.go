package keys

import "errors"

var (
	// ErrDHZero is returned when a Diffie–Hellman computation yields a
	// degenerate (all-zero) result. Callers must treat it as fatal for the
	// current operation and never fall back to the zero value.
	ErrDHZero = errors.New("keys: degenerate diffie-hellman result")

	// ErrKeySize is returned when raw key material has the wrong length.
	ErrKeySize = errors.New("keys: invalid key size")
)
