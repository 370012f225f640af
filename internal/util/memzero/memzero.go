package memzero

import "crypto/subtle"

// Zero overwrites b with zeros in a constant-time friendly way.
//
// Private key buffers must be zeroed before their owner is released, on
// every exit path; callers typically defer this.
func Zero(b []byte) {
	if len(b) == 0 {
		return
	}
	zero := make([]byte, len(b))
	subtle.ConstantTimeCopy(1, b, zero)
}
