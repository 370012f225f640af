package keys_test

import (
	"bytes"
	"testing"

	"groupcrypt/internal/codec"
	"groupcrypt/internal/keys"
)

func TestSignVerify(t *testing.T) {
	id, err := keys.NewIdentity()
	if err != nil {
		t.Fatalf("NewIdentity: %v", err)
	}
	payload := []byte("add me to the group")

	sig := id.Sign(payload)
	if !id.Verify(payload, sig) {
		t.Fatal("signature does not verify")
	}

	// Any bit flip in the payload or the signature must fail.
	flipped := append([]byte(nil), payload...)
	flipped[0] ^= 0x01
	if id.Verify(flipped, sig) {
		t.Fatal("flipped payload verified")
	}
	badSig := sig
	badSig[keys.SignatureSize-1] ^= 0x80
	if id.Verify(payload, badSig) {
		t.Fatal("flipped signature verified")
	}
}

func TestVerifyKnownAnswer(t *testing.T) {
	var pub keys.SignaturePublicKey
	copy(pub[:], mustDecodeHex(t, "6f8a35bff581235d8757b2f3cea6e6bfa7c5005852ac8ccf3c63a2c45c514d0d"))
	sig, err := keys.SignatureFromSlice(mustDecodeHex(t,
		"4d51569eb56fc808cad8d8707110bcbf5c3daae9d394af77d48e840b2750ab15"+
			"ea04c0fd30658625a20d0446fbd8ae09c6cc67f1004ed8c79818b74bef4fa107"))
	if err != nil {
		t.Fatalf("SignatureFromSlice: %v", err)
	}
	if !keys.VerifyWithKey(pub, []byte{0, 1, 2, 3}, sig) {
		t.Fatal("known-answer signature does not verify")
	}
}

func TestIdentityLabel(t *testing.T) {
	id, err := keys.NewIdentity()
	if err != nil {
		t.Fatalf("NewIdentity: %v", err)
	}
	if len(id.ID) != 4 {
		t.Fatalf("label is %d bytes, want 4", len(id.ID))
	}
}

func TestIdentityCodecRoundTrip(t *testing.T) {
	id, err := keys.NewIdentity()
	if err != nil {
		t.Fatalf("NewIdentity: %v", err)
	}

	var w codec.Writer
	id.Encode(&w)
	got, err := keys.DecodeIdentity(codec.NewCursor(w.Bytes()))
	if err != nil {
		t.Fatalf("DecodeIdentity: %v", err)
	}
	if !bytes.Equal(got.ID, id.ID) || got.PublicKey != id.PublicKey {
		t.Fatal("identity round trip mismatch")
	}

	// The decoded private key must produce signatures the original
	// public key accepts.
	payload := []byte("round trip")
	if !id.Verify(payload, got.Sign(payload)) {
		t.Fatal("decoded identity signs with a different key")
	}
}

func TestSignableContract(t *testing.T) {
	id, err := keys.NewIdentity()
	if err != nil {
		t.Fatalf("NewIdentity: %v", err)
	}
	cred := &keys.BasicCredential{Identity: []byte("alice"), PublicKey: id.PublicKey}

	uik := keys.NewUserInitKey(nil, id)
	if !keys.Verify(id, uik, uik.Signature) {
		t.Fatal("Signable verify failed for the signing identity")
	}
	if !cred.Verify(uik.UnsignedPayload(), uik.Signature) {
		t.Fatal("credential rejects a signature from its own key")
	}
}
