package keys

import (
	"crypto/rand"

	"golang.org/x/crypto/curve25519"

	"groupcrypt/internal/codec"
	"groupcrypt/internal/util/memzero"
)

const (
	// X25519PublicKeySize is the size of a Curve25519 point in bytes.
	X25519PublicKeySize = 32
	// X25519PrivateKeySize is the size of a Curve25519 scalar in bytes.
	X25519PrivateKeySize = 32
	// SharedSecretSize is the size of an X25519 shared secret in bytes.
	SharedSecretSize = 32
)

// X25519PublicKey is a Curve25519 public key. It is a comparable value
// type; equality is byte-exact.
type X25519PublicKey [X25519PublicKeySize]byte

// X25519PublicKeyFromSlice copies b into a public key.
func X25519PublicKeyFromSlice(b []byte) (X25519PublicKey, error) {
	var p X25519PublicKey
	if len(b) != X25519PublicKeySize {
		return p, ErrKeySize
	}
	copy(p[:], b)
	return p, nil
}

// Slice returns the key as a []byte.
func (p X25519PublicKey) Slice() []byte { return p[:] }

// Encode writes the key as a uint16-length-prefixed vector.
func (p X25519PublicKey) Encode(w *codec.Writer) {
	w.WriteVec16(p[:])
}

// DecodeX25519PublicKey reads a uint16-length-prefixed public key.
func DecodeX25519PublicKey(c *codec.Cursor) (X25519PublicKey, error) {
	var p X25519PublicKey
	b, err := c.ReadVec16()
	if err != nil {
		return p, err
	}
	if len(b) != X25519PublicKeySize {
		return p, codec.ErrDecode
	}
	copy(p[:], b)
	return p, nil
}

// X25519PrivateKey is a Curve25519 scalar, exclusively owned by one key
// pair or one bundle. Wipe zeroes the backing bytes.
type X25519PrivateKey struct {
	k [X25519PrivateKeySize]byte
}

// X25519PrivateKeyFromSlice copies b into a private key. The bytes are
// kept verbatim; clamping happens inside the curve operations.
func X25519PrivateKeyFromSlice(b []byte) (*X25519PrivateKey, error) {
	if len(b) != X25519PrivateKeySize {
		return nil, ErrKeySize
	}
	k := new(X25519PrivateKey)
	copy(k.k[:], b)
	return k, nil
}

// SharedSecret computes X25519 Diffie–Hellman with the peer's public key.
// A degenerate all-zero result is reported as ErrDHZero, never returned
// as a usable secret.
func (k *X25519PrivateKey) SharedSecret(peer X25519PublicKey) ([SharedSecretSize]byte, error) {
	var out [SharedSecretSize]byte
	secret, err := curve25519.X25519(k.k[:], peer[:])
	if err != nil {
		return out, ErrDHZero
	}
	copy(out[:], secret)
	return out, nil
}

// PublicKey returns the fixed-base scalar multiplication of the scalar.
func (k *X25519PrivateKey) PublicKey() (X25519PublicKey, error) {
	var p X25519PublicKey
	pb, err := curve25519.X25519(k.k[:], curve25519.Basepoint)
	if err != nil {
		return p, ErrDHZero
	}
	copy(p[:], pb)
	return p, nil
}

// Encode writes the scalar as a uint16-length-prefixed vector.
func (k *X25519PrivateKey) Encode(w *codec.Writer) {
	w.WriteVec16(k.k[:])
}

// DecodeX25519PrivateKey reads a uint16-length-prefixed private key.
func DecodeX25519PrivateKey(c *codec.Cursor) (*X25519PrivateKey, error) {
	b, err := c.ReadVec16()
	if err != nil {
		return nil, err
	}
	if len(b) != X25519PrivateKeySize {
		return nil, codec.ErrDecode
	}
	k := new(X25519PrivateKey)
	copy(k.k[:], b)
	return k, nil
}

// Wipe zeroes the private scalar.
func (k *X25519PrivateKey) Wipe() {
	memzero.Zero(k.k[:])
}

// X25519KeyPair is an ephemeral or long-term Diffie–Hellman key pair. The
// public key is always the fixed-base scalar multiplication of the
// private key.
type X25519KeyPair struct {
	PrivateKey X25519PrivateKey
	PublicKey  X25519PublicKey
}

// GenerateX25519KeyPair draws a fresh random scalar and derives its
// public key. It fails only if the randomness source fails.
func GenerateX25519KeyPair() (*X25519KeyPair, error) {
	var seed [X25519PrivateKeySize]byte
	if _, err := rand.Read(seed[:]); err != nil {
		return nil, err
	}
	defer memzero.Zero(seed[:])
	return X25519KeyPairFromSeed(seed)
}

// X25519KeyPairFromSeed derives a key pair deterministically from seed.
// The seed is used verbatim as the private scalar; callers must supply
// uniformly random or protocol-derived bytes.
func X25519KeyPairFromSeed(seed [X25519PrivateKeySize]byte) (*X25519KeyPair, error) {
	kp := &X25519KeyPair{PrivateKey: X25519PrivateKey{k: seed}}
	pub, err := kp.PrivateKey.PublicKey()
	if err != nil {
		kp.Wipe()
		return nil, err
	}
	kp.PublicKey = pub
	return kp, nil
}

// Wipe zeroes the private half of the pair.
func (kp *X25519KeyPair) Wipe() {
	kp.PrivateKey.Wipe()
}
