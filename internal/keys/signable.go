package keys

// Signable is the capability of producing a canonical unsigned payload: a
// deterministic byte serialization of the value excluding its own
// signature field. Sign and Verify operate on that payload, so the bytes
// signed and the bytes verified are identical by construction.
type Signable interface {
	UnsignedPayload() []byte
}

// Sign signs s's canonical unsigned payload with id.
func Sign(id *Identity, s Signable) Signature {
	return id.Sign(s.UnsignedPayload())
}

// Verify checks signature over s's canonical unsigned payload under id.
func Verify(id *Identity, s Signable, signature Signature) bool {
	return id.Verify(s.UnsignedPayload(), signature)
}
