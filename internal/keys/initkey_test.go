package keys_test

import (
	"bytes"
	"encoding/hex"
	"errors"
	"testing"

	"groupcrypt/internal/codec"
	"groupcrypt/internal/keys"
)

// userInitKeyVectorHex is the pinned wire encoding of a UserInitKey built
// from the fixed signing and DH keys below.
const userInitKeyVectorHex = "020001002200203CB3FC6B9271B308EFEDC029502278DED42FC4AF181A44E31549F53B9B" +
	"F7436C080700205F334D034259E2D6670D6CA8F5A937EA7CE9438259292F8872AEA6C7BB8AA2C000407DF11F6392DC7" +
	"F1BD6FAFB34AA220C5457D2E58A2BB2C21DA4878A3E8AB8B0BA2AF2A87E7102D23DE169F880E38688406B34E582B6E9" +
	"78867755E37FB352DB0C"

const (
	vectorSigningKeyHex = "AA5A90D1AA3DEECB657F43630680A0001FC910506DC8D3D363095E5E7A7D1B6C" +
		"5F334D034259E2D6670D6CA8F5A937EA7CE9438259292F8872AEA6C7BB8AA2C0"
	vectorDHPublicHex = "3CB3FC6B9271B308EFEDC029502278DED42FC4AF181A44E31549F53B9BF7436C"
)

func vectorIdentity(t *testing.T) *keys.Identity {
	t.Helper()
	var priv keys.SignaturePrivateKey
	copy(priv[:], mustDecodeHex(t, vectorSigningKeyHex))
	return keys.IdentityFromKey(nil, priv)
}

func encodeUIK(t *testing.T, u *keys.UserInitKey) []byte {
	t.Helper()
	var w codec.Writer
	u.Encode(&w)
	return w.Bytes()
}

func TestUserInitKeyKnownAnswer(t *testing.T) {
	id := vectorIdentity(t)
	dhPub, err := keys.X25519PublicKeyFromSlice(mustDecodeHex(t, vectorDHPublicHex))
	if err != nil {
		t.Fatalf("X25519PublicKeyFromSlice: %v", err)
	}

	uik := keys.NewUserInitKey([]keys.X25519PublicKey{dhPub}, id)
	if !uik.SelfVerify() {
		t.Fatal("freshly signed init key fails self-verification")
	}

	got := hex.EncodeToString(encodeUIK(t, uik))
	want := userInitKeyVectorHex
	if !bytes.EqualFold([]byte(got), []byte(want)) {
		t.Fatalf("encoding mismatch\n got %s\nwant %s", got, want)
	}
}

func TestUserInitKeyDecodeKnownAnswer(t *testing.T) {
	raw := mustDecodeHex(t, userInitKeyVectorHex)

	uik, err := keys.DecodeUserInitKey(codec.NewCursor(raw))
	if err != nil {
		t.Fatalf("DecodeUserInitKey: %v", err)
	}
	if !uik.SelfVerify() {
		t.Fatal("decoded init key fails self-verification")
	}
	if len(uik.CipherSuites) != 1 || uik.CipherSuites[0] != keys.AES128GCMCurve25519SHA256 {
		t.Fatalf("unexpected ciphersuites %v", uik.CipherSuites)
	}
	if len(uik.InitKeys) != 1 {
		t.Fatalf("got %d init keys, want 1", len(uik.InitKeys))
	}

	if reencoded := encodeUIK(t, uik); !bytes.Equal(reencoded, raw) {
		t.Fatalf("re-encoding mismatch\n got %x\nwant %x", reencoded, raw)
	}
}

func TestUserInitKeyRoundTrip(t *testing.T) {
	id, err := keys.NewIdentity()
	if err != nil {
		t.Fatalf("NewIdentity: %v", err)
	}
	kp, err := keys.GenerateX25519KeyPair()
	if err != nil {
		t.Fatalf("GenerateX25519KeyPair: %v", err)
	}

	uik := keys.NewUserInitKey([]keys.X25519PublicKey{kp.PublicKey}, id)
	raw := encodeUIK(t, uik)

	got, err := keys.DecodeUserInitKey(codec.NewCursor(raw))
	if err != nil {
		t.Fatalf("DecodeUserInitKey: %v", err)
	}
	if !bytes.Equal(encodeUIK(t, got), raw) {
		t.Fatal("decode(encode(x)) re-encodes differently")
	}
	if !got.SelfVerify() {
		t.Fatal("round-tripped init key fails self-verification")
	}
}

// wireUIK assembles a UserInitKey wire blob field by field so tests can
// produce structurally valid but semantically broken inputs.
func wireUIK(suites []uint16, keyBlocks [][]byte, alg uint16, idKey, sig []byte) []byte {
	var w codec.Writer

	var s codec.Writer
	for _, cs := range suites {
		s.WriteUint16(cs)
	}
	w.WriteVec8(s.Bytes())

	var kb codec.Writer
	for _, k := range keyBlocks {
		kb.WriteVec16(k)
	}
	w.WriteVec16(kb.Bytes())

	w.WriteUint16(alg)
	w.WriteVec16(idKey)
	w.WriteVec16(sig)
	return w.Bytes()
}

func TestUserInitKeyDecodeRejection(t *testing.T) {
	x25519Key := make([]byte, keys.X25519PublicKeySize)
	p256Key := make([]byte, 65)
	idKey := make([]byte, keys.SignaturePublicKeySize)
	sig := make([]byte, keys.SignatureSize)

	cases := map[string][]byte{
		"empty ciphersuite list": wireUIK(nil, nil, 0x0807, idKey, sig),
		"unknown ciphersuite":    wireUIK([]uint16{0x7A7A}, [][]byte{x25519Key}, 0x0807, idKey, sig),
		"p256 only":              wireUIK([]uint16{0x0000}, [][]byte{p256Key}, 0x0807, idKey, sig),
		"bad algorithm":          wireUIK([]uint16{0x0001}, [][]byte{x25519Key}, 0x0403, idKey, sig),
		"oversized init key":     wireUIK([]uint16{0x0001}, [][]byte{make([]byte, 33)}, 0x0807, idKey, sig),
		"truncated":              wireUIK([]uint16{0x0001}, [][]byte{x25519Key}, 0x0807, idKey, sig)[:40],
	}
	for name, raw := range cases {
		if _, err := keys.DecodeUserInitKey(codec.NewCursor(raw)); !errors.Is(err, codec.ErrDecode) {
			t.Errorf("%s: got %v, want ErrDecode", name, err)
		}
	}
}

func TestUserInitKeyMutationInvalidatesSignature(t *testing.T) {
	raw := mustDecodeHex(t, userInitKeyVectorHex)
	uik, err := keys.DecodeUserInitKey(codec.NewCursor(raw))
	if err != nil {
		t.Fatalf("DecodeUserInitKey: %v", err)
	}

	uik.InitKeys[0][0] ^= 0xFF
	if uik.SelfVerify() {
		t.Fatal("mutated init key still self-verifies")
	}
}

func TestUserInitKeyBundle(t *testing.T) {
	id, err := keys.NewIdentity()
	if err != nil {
		t.Fatalf("NewIdentity: %v", err)
	}
	bundle, err := keys.NewUserInitKeyBundle(id)
	if err != nil {
		t.Fatalf("NewUserInitKeyBundle: %v", err)
	}

	if !bundle.InitKey.SelfVerify() {
		t.Fatal("bundle init key fails self-verification")
	}
	if got, want := bundle.PrivateKeyCount(), len(bundle.InitKey.InitKeys); got != want {
		t.Fatalf("bundle owns %d private keys, init key lists %d", got, want)
	}

	// The bundled private key must match the advertised public key.
	peer, err := keys.GenerateX25519KeyPair()
	if err != nil {
		t.Fatalf("GenerateX25519KeyPair: %v", err)
	}
	fromBundle, err := bundle.SharedSecret(0, peer.PublicKey)
	if err != nil {
		t.Fatalf("bundle SharedSecret: %v", err)
	}
	fromPeer, err := peer.PrivateKey.SharedSecret(bundle.InitKey.InitKeys[0])
	if err != nil {
		t.Fatalf("peer SharedSecret: %v", err)
	}
	if fromBundle != fromPeer {
		t.Fatal("bundle private key does not match advertised public key")
	}
}

func TestUserInitKeyBundleCodecRoundTrip(t *testing.T) {
	id, err := keys.NewIdentity()
	if err != nil {
		t.Fatalf("NewIdentity: %v", err)
	}
	bundle, err := keys.NewUserInitKeyBundle(id)
	if err != nil {
		t.Fatalf("NewUserInitKeyBundle: %v", err)
	}

	var w codec.Writer
	bundle.Encode(&w)
	got, err := keys.DecodeUserInitKeyBundle(codec.NewCursor(w.Bytes()))
	if err != nil {
		t.Fatalf("DecodeUserInitKeyBundle: %v", err)
	}

	var again codec.Writer
	got.Encode(&again)
	if !bytes.Equal(again.Bytes(), w.Bytes()) {
		t.Fatal("bundle round trip re-encodes differently")
	}
}

func TestUserInitKeyBundleCountMismatch(t *testing.T) {
	id, err := keys.NewIdentity()
	if err != nil {
		t.Fatalf("NewIdentity: %v", err)
	}
	bundle, err := keys.NewUserInitKeyBundle(id)
	if err != nil {
		t.Fatalf("NewUserInitKeyBundle: %v", err)
	}

	// Re-assemble the wire form with an empty private key list.
	var w codec.Writer
	bundle.InitKey.Encode(&w)
	w.WriteVec16(nil)

	if _, err := keys.DecodeUserInitKeyBundle(codec.NewCursor(w.Bytes())); !errors.Is(err, codec.ErrDecode) {
		t.Fatalf("got %v, want ErrDecode", err)
	}
}
