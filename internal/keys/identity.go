package keys

import (
	"crypto/ed25519"
	"crypto/rand"

	"groupcrypt/internal/codec"
	"groupcrypt/internal/util/memzero"
)

const (
	// SignaturePublicKeySize is the size of an Ed25519 public key in bytes.
	SignaturePublicKeySize = ed25519.PublicKeySize
	// SignaturePrivateKeySize is the size of an Ed25519 private key in bytes.
	SignaturePrivateKeySize = ed25519.PrivateKeySize
	// SignatureSize is the size of a detached Ed25519 signature in bytes.
	SignatureSize = ed25519.SignatureSize

	// identityIDSize is the size of the locally chosen identity label.
	identityIDSize = 4
)

// SignaturePublicKey is an Ed25519 signing public key.
type SignaturePublicKey [SignaturePublicKeySize]byte

// Slice returns the key as a []byte.
func (p SignaturePublicKey) Slice() []byte { return p[:] }

// Encode writes the key as a uint16-length-prefixed vector.
func (p SignaturePublicKey) Encode(w *codec.Writer) {
	w.WriteVec16(p[:])
}

// DecodeSignaturePublicKey reads a uint16-length-prefixed signing key.
func DecodeSignaturePublicKey(c *codec.Cursor) (SignaturePublicKey, error) {
	var p SignaturePublicKey
	b, err := c.ReadVec16()
	if err != nil {
		return p, err
	}
	if len(b) != SignaturePublicKeySize {
		return p, codec.ErrDecode
	}
	copy(p[:], b)
	return p, nil
}

// SignaturePrivateKey is an Ed25519 signing private key (seed plus public
// half, as in crypto/ed25519).
type SignaturePrivateKey [SignaturePrivateKeySize]byte

// Signature is a detached Ed25519 signature.
type Signature [SignatureSize]byte

// SignatureFromSlice copies b into a Signature.
func SignatureFromSlice(b []byte) (Signature, error) {
	var s Signature
	if len(b) != SignatureSize {
		return s, ErrKeySize
	}
	copy(s[:], b)
	return s, nil
}

// Slice returns the signature as a []byte.
func (s Signature) Slice() []byte { return s[:] }

// Encode writes the signature as a uint16-length-prefixed vector.
func (s Signature) Encode(w *codec.Writer) {
	w.WriteVec16(s[:])
}

// DecodeSignature reads a uint16-length-prefixed signature.
func DecodeSignature(c *codec.Cursor) (Signature, error) {
	var s Signature
	b, err := c.ReadVec16()
	if err != nil {
		return s, err
	}
	if len(b) != SignatureSize {
		return s, codec.ErrDecode
	}
	copy(s[:], b)
	return s, nil
}

// SignatureScheme identifies a signature algorithm on the wire.
type SignatureScheme uint16

const (
	// SchemeEd25519 is the only scheme this implementation produces or
	// accepts.
	SchemeEd25519 SignatureScheme = 0x0807
	// SchemeECDSASecp256r1SHA256 is declared for wire compatibility only.
	SchemeECDSASecp256r1SHA256 SignatureScheme = 0x0403
)

// Identity is a user's long-term signing identity: a locally chosen label
// and an Ed25519 key pair. The label is not derived from the keys.
type Identity struct {
	ID        []byte
	PublicKey SignaturePublicKey

	privateKey SignaturePrivateKey
}

// NewIdentity generates a fresh Ed25519 key pair and a 4-byte random label.
func NewIdentity() (*Identity, error) {
	id := &Identity{ID: make([]byte, identityIDSize)}
	if _, err := rand.Read(id.ID); err != nil {
		return nil, err
	}
	pub, priv, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return nil, err
	}
	copy(id.PublicKey[:], pub)
	copy(id.privateKey[:], priv)
	return id, nil
}

// identityFromParts builds an Identity from raw material. Used by decoding
// and by tests that pin known keys.
func identityFromParts(label []byte, pub SignaturePublicKey, priv SignaturePrivateKey) *Identity {
	return &Identity{ID: append([]byte(nil), label...), PublicKey: pub, privateKey: priv}
}

// Sign returns a deterministic detached signature over exactly payload.
// No hashing or domain separation is added at this layer.
func (id *Identity) Sign(payload []byte) Signature {
	var s Signature
	copy(s[:], ed25519.Sign(ed25519.PrivateKey(id.privateKey[:]), payload))
	return s
}

// Verify reports whether signature is valid over payload under this
// identity's public key.
func (id *Identity) Verify(payload []byte, signature Signature) bool {
	return VerifyWithKey(id.PublicKey, payload, signature)
}

// VerifyWithKey verifies a detached signature under an arbitrary signing
// public key.
func VerifyWithKey(pub SignaturePublicKey, payload []byte, signature Signature) bool {
	return ed25519.Verify(ed25519.PublicKey(pub[:]), payload, signature[:])
}

// Encode writes label, public key and private key.
func (id *Identity) Encode(w *codec.Writer) {
	w.WriteVec8(id.ID)
	id.PublicKey.Encode(w)
	w.WriteVec16(id.privateKey[:])
}

// DecodeIdentity reads an Identity in the layout written by Encode.
func DecodeIdentity(c *codec.Cursor) (*Identity, error) {
	label, err := c.ReadVec8()
	if err != nil {
		return nil, err
	}
	pub, err := DecodeSignaturePublicKey(c)
	if err != nil {
		return nil, err
	}
	pb, err := c.ReadVec16()
	if err != nil {
		return nil, err
	}
	if len(pb) != SignaturePrivateKeySize {
		return nil, codec.ErrDecode
	}
	var priv SignaturePrivateKey
	copy(priv[:], pb)
	return identityFromParts(label, pub, priv), nil
}

// IdentityFromKey rebuilds an Identity from a private key; the public key
// is the deterministic public half embedded in it.
func IdentityFromKey(label []byte, priv SignaturePrivateKey) *Identity {
	var pub SignaturePublicKey
	copy(pub[:], priv[SignaturePrivateKeySize-SignaturePublicKeySize:])
	return identityFromParts(label, pub, priv)
}

// Wipe zeroes the private key, the public key and the label.
func (id *Identity) Wipe() {
	memzero.Zero(id.privateKey[:])
	memzero.Zero(id.PublicKey[:])
	memzero.Zero(id.ID)
}
