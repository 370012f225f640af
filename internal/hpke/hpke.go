package hpke

import (
	"crypto/sha256"
	"errors"
	"fmt"
	"io"

	"golang.org/x/crypto/hkdf"

	"groupcrypt/internal/codec"
	"groupcrypt/internal/keys"
	"groupcrypt/internal/util/memzero"
)

// Mode tags the HPKE variant mixed into the binding context.
type Mode uint8

const (
	ModeBase Mode = 0x00
	// ModePsk and ModeAuth are wire ids only; no code path dispatches on
	// them.
	ModePsk  Mode = 0x01
	ModeAuth Mode = 0x02
)

// CipherSuite identifies an HPKE algorithm bundle on the wire.
type CipherSuite uint16

const (
	P256SHA256AES128GCM   CipherSuite = 0x0001
	P521SHA512AES256GCM   CipherSuite = 0x0002
	X25519SHA256AES128GCM CipherSuite = 0x0003
	X448SHA512AES256GCM   CipherSuite = 0x0004
)

// Context is the binding value for a single HPKE operation. Its wire
// encoding is mixed into key and nonce derivation, so a (enc, recipient,
// info) triple never shares derived material with any other triple.
type Context struct {
	CipherSuite CipherSuite
	Mode        Mode
	KEMContext  []byte // enc ‖ recipient public key
	Info        []byte
}

// Encode writes the context in its wire layout.
func (c *Context) Encode(w *codec.Writer) {
	w.WriteUint16(uint16(c.CipherSuite))
	w.WriteUint8(uint8(c.Mode))
	w.WriteVec8(c.KEMContext)
	w.WriteVec8(c.Info)
}

// DecodeContext reads a Context.
func DecodeContext(cur *codec.Cursor) (*Context, error) {
	suite, err := cur.ReadUint16()
	if err != nil {
		return nil, err
	}
	mode, err := cur.ReadUint8()
	if err != nil {
		return nil, err
	}
	kemContext, err := cur.ReadVec8()
	if err != nil {
		return nil, err
	}
	info, err := cur.ReadVec8()
	if err != nil {
		return nil, err
	}
	return &Context{
		CipherSuite: CipherSuite(suite),
		Mode:        Mode(mode),
		KEMContext:  kemContext,
		Info:        info,
	}, nil
}

// maxContextField is the vec8 range of the context's wire fields. Any
// kem_context or info beyond it is rejected before derivation; a
// truncated length prefix would let two distinct (enc, recipient, info)
// triples share one serialized context and therefore one (key, nonce).
const maxContextField = 255

// ErrContextTooLarge is returned when enc or info would overflow the
// binding context's wire encoding.
var ErrContextTooLarge = errors.New("hpke: binding context exceeds wire bounds")

// SetupBase derives the AEAD key and nonce for a base-mode operation from
// the shared secret, bound to enc, the recipient's public key and info.
// Base mode uses no external salt: the extract step runs over a fixed
// all-zero salt. enc is limited to maxContextField minus the recipient
// key size, info to maxContextField.
func SetupBase(recipient keys.X25519PublicKey, sharedSecret, enc, info []byte) (key, nonce []byte, err error) {
	if len(enc)+keys.X25519PublicKeySize > maxContextField || len(info) > maxContextField {
		return nil, nil, ErrContextTooLarge
	}

	kemContext := make([]byte, 0, len(enc)+keys.X25519PublicKeySize)
	kemContext = append(kemContext, enc...)
	kemContext = append(kemContext, recipient.Slice()...)

	salt := make([]byte, sha256.Size)
	secret := hkdf.Extract(sha256.New, sharedSecret, salt)
	defer memzero.Zero(secret)

	key, nonce = setupCore(X25519SHA256AES128GCM, ModeBase, secret, kemContext, info, NkAES128GCM, NnAES128GCM)
	return key, nonce, nil
}

// setupCore derives key = Expand(secret, "hpke key" ‖ context, Nk) and
// nonce = Expand(secret, "hpke nonce" ‖ context, Nn) over the encoded
// binding context.
func setupCore(suite CipherSuite, mode Mode, secret, kemContext, info []byte, nk, nn int) (key, nonce []byte) {
	ctx := Context{CipherSuite: suite, Mode: mode, KEMContext: kemContext, Info: info}
	var w codec.Writer
	ctx.Encode(&w)

	key = expand(secret, "hpke key", w.Bytes(), nk)
	nonce = expand(secret, "hpke nonce", w.Bytes(), nn)
	return key, nonce
}

func expand(prk []byte, label string, context []byte, n int) []byte {
	info := make([]byte, 0, len(label)+len(context))
	info = append(info, label...)
	info = append(info, context...)

	out := make([]byte, n)
	// Expand cannot fail for the short output lengths used here.
	if _, err := io.ReadFull(hkdf.Expand(sha256.New, prk, info), out); err != nil {
		panic(err)
	}
	return out
}

// Ciphertext is a single HPKE output: the ephemeral public key used for
// encapsulation and the AEAD output (tag included).
type Ciphertext struct {
	EphemeralPublicKey keys.X25519PublicKey
	Content            []byte
}

// Encode writes the fixed-size ephemeral key followed by the content.
func (ct *Ciphertext) Encode(w *codec.Writer) {
	w.WriteBytes(ct.EphemeralPublicKey.Slice())
	w.WriteVec16(ct.Content)
}

// DecodeCiphertext reads a Ciphertext.
func DecodeCiphertext(cur *codec.Cursor) (*Ciphertext, error) {
	raw, err := cur.ReadBytes(keys.X25519PublicKeySize)
	if err != nil {
		return nil, err
	}
	pub, err := keys.X25519PublicKeyFromSlice(raw)
	if err != nil {
		return nil, codec.ErrDecode
	}
	content, err := cur.ReadVec16()
	if err != nil {
		return nil, err
	}
	return &Ciphertext{EphemeralPublicKey: pub, Content: content}, nil
}

// Encrypt encapsulates enc against the recipient's public key with a
// fresh ephemeral key pair. A degenerate Diffie–Hellman result or an AEAD
// failure surfaces as an error; retrying meaningfully requires a new
// ephemeral key pair, which a plain re-call provides.
func Encrypt(recipient keys.X25519PublicKey, enc []byte) (*Ciphertext, error) {
	kp, err := keys.GenerateX25519KeyPair()
	if err != nil {
		return nil, err
	}
	defer kp.Wipe()
	return EncryptWithEphemeral(recipient, enc, kp)
}

// EncryptWithEphemeral is Encrypt with a caller-supplied ephemeral key
// pair, for deterministic encryption in tests and derived-key flows.
func EncryptWithEphemeral(recipient keys.X25519PublicKey, enc []byte, eph *keys.X25519KeyPair) (*Ciphertext, error) {
	zz, err := eph.PrivateKey.SharedSecret(recipient)
	if err != nil {
		return nil, err
	}
	defer memzero.Zero(zz[:])

	key, nonce, err := SetupBase(recipient, zz[:], enc, nil)
	if err != nil {
		return nil, err
	}
	defer memzero.Zero(key)

	// enc doubles as plaintext and additional authenticated data, binding
	// the sealed value to the declared encapsulation.
	content, err := AEADAES128GCM.Seal(key, nonce, enc, enc)
	if err != nil {
		return nil, fmt.Errorf("hpke: seal: %w", err)
	}
	return &Ciphertext{EphemeralPublicKey: eph.PublicKey, Content: content}, nil
}
