package keys

import "groupcrypt/internal/codec"

// CredentialType identifies a credential variant on the wire.
type CredentialType uint8

const (
	CredentialBasic   CredentialType = 0
	CredentialX509    CredentialType = 1
	CredentialDefault CredentialType = 255
)

// BasicCredential is a named, signature-bearing identity claim. It is
// self-contained and carries no private material.
type BasicCredential struct {
	Identity  []byte
	PublicKey SignaturePublicKey
}

// Verify checks a detached signature over payload under the credential's
// signing key.
func (c *BasicCredential) Verify(payload []byte, signature Signature) bool {
	return VerifyWithKey(c.PublicKey, payload, signature)
}

// Encode writes identity bytes and signing key.
func (c *BasicCredential) Encode(w *codec.Writer) {
	w.WriteVec8(c.Identity)
	c.PublicKey.Encode(w)
}

// DecodeBasicCredential reads a BasicCredential.
func DecodeBasicCredential(cur *codec.Cursor) (*BasicCredential, error) {
	identity, err := cur.ReadVec8()
	if err != nil {
		return nil, err
	}
	pub, err := DecodeSignaturePublicKey(cur)
	if err != nil {
		return nil, err
	}
	return &BasicCredential{Identity: identity, PublicKey: pub}, nil
}
