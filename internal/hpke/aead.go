package hpke

import (
	"crypto/aes"
	"crypto/cipher"
	"errors"

	"golang.org/x/crypto/chacha20poly1305"
)

// AEAD key and nonce lengths (Nk, Nn) fixed per ciphersuite.
const (
	NkAES128GCM = 16
	NnAES128GCM = 12

	NkAES256GCM = 32
	NnAES256GCM = 12

	NkChaCha20Poly1305 = 32
	NnChaCha20Poly1305 = 12
)

// ErrSeal is returned when the AEAD primitive rejects its inputs.
var ErrSeal = errors.New("hpke: aead failure")

// AEADAlgorithm selects the symmetric primitive of a ciphersuite.
type AEADAlgorithm uint8

const (
	AEADAES128GCM AEADAlgorithm = iota
	AEADAES256GCM
	AEADChaCha20Poly1305
)

// KeySize returns Nk for the algorithm.
func (a AEADAlgorithm) KeySize() int {
	switch a {
	case AEADAES256GCM:
		return NkAES256GCM
	case AEADChaCha20Poly1305:
		return NkChaCha20Poly1305
	default:
		return NkAES128GCM
	}
}

// NonceSize returns Nn for the algorithm.
func (a AEADAlgorithm) NonceSize() int {
	return NnAES128GCM // 12 for every supported algorithm
}

// New constructs the AEAD for key.
func (a AEADAlgorithm) New(key []byte) (cipher.AEAD, error) {
	if len(key) != a.KeySize() {
		return nil, ErrSeal
	}
	switch a {
	case AEADChaCha20Poly1305:
		return chacha20poly1305.New(key)
	default:
		block, err := aes.NewCipher(key)
		if err != nil {
			return nil, err
		}
		return cipher.NewGCM(block)
	}
}

// Seal encrypts plaintext under (key, nonce) with additional data aad.
// The authentication tag is appended to the returned ciphertext.
func (a AEADAlgorithm) Seal(key, nonce, plaintext, aad []byte) ([]byte, error) {
	aead, err := a.New(key)
	if err != nil {
		return nil, err
	}
	if len(nonce) != aead.NonceSize() {
		return nil, ErrSeal
	}
	return aead.Seal(nil, nonce, plaintext, aad), nil
}

// Open decrypts and authenticates ciphertext under (key, nonce, aad).
func (a AEADAlgorithm) Open(key, nonce, ciphertext, aad []byte) ([]byte, error) {
	aead, err := a.New(key)
	if err != nil {
		return nil, err
	}
	if len(nonce) != aead.NonceSize() {
		return nil, ErrSeal
	}
	pt, err := aead.Open(nil, nonce, ciphertext, aad)
	if err != nil {
		return nil, ErrSeal
	}
	return pt, nil
}
