package keys

import "groupcrypt/internal/codec"

// CipherSuite identifies a bundle of algorithm choices on the wire.
type CipherSuite uint16

const (
	// AES128GCMP256SHA256 is declared for wire compatibility; its key
	// payload is parsed and discarded, never turned into usable material.
	AES128GCMP256SHA256 CipherSuite = 0
	// AES128GCMCurve25519SHA256 is the suite this implementation uses.
	AES128GCMCurve25519SHA256 CipherSuite = 1
)

// UserInitKey is a signed offer of one Diffie–Hellman public key per
// declared ciphersuite, published so other participants can add the user
// to a group. It is immutable once signed; mutating any field invalidates
// the signature.
type UserInitKey struct {
	CipherSuites []CipherSuite
	InitKeys     []X25519PublicKey
	Algorithm    SignatureScheme
	IdentityKey  SignaturePublicKey
	Signature    Signature
}

// NewUserInitKey builds and signs an init key offering initKeys under the
// fixed X25519 ciphersuite and Ed25519 signature algorithm.
func NewUserInitKey(initKeys []X25519PublicKey, id *Identity) *UserInitKey {
	u := &UserInitKey{
		CipherSuites: []CipherSuite{AES128GCMCurve25519SHA256},
		InitKeys:     append([]X25519PublicKey(nil), initKeys...),
		Algorithm:    SchemeEd25519,
		IdentityKey:  id.PublicKey,
	}
	u.Signature = Sign(id, u)
	return u
}

// UnsignedPayload returns the canonical serialization of everything but
// the signature: ciphersuites, init keys, algorithm, identity key.
func (u *UserInitKey) UnsignedPayload() []byte {
	var w codec.Writer

	var suites codec.Writer
	for _, cs := range u.CipherSuites {
		suites.WriteUint16(uint16(cs))
	}
	w.WriteVec8(suites.Bytes())

	var ks codec.Writer
	for i := range u.InitKeys {
		u.InitKeys[i].Encode(&ks)
	}
	w.WriteVec16(ks.Bytes())

	w.WriteUint16(uint16(u.Algorithm))
	u.IdentityKey.Encode(&w)
	return w.Bytes()
}

// SelfVerify checks the stored signature over the canonical unsigned
// payload against the stored identity key.
func (u *UserInitKey) SelfVerify() bool {
	return VerifyWithKey(u.IdentityKey, u.UnsignedPayload(), u.Signature)
}

// Encode writes the unsigned payload followed by the signature.
func (u *UserInitKey) Encode(w *codec.Writer) {
	w.WriteBytes(u.UnsignedPayload())
	u.Signature.Encode(w)
}

// DecodeUserInitKey reads and validates a UserInitKey. Validation is
// ordered and strict: the suite list must be non-empty, every listed id
// must be recognized (P-256 payloads are consumed and discarded), an
// X25519 key must be present, and the algorithm must be Ed25519. Anything
// else fails with codec.ErrDecode before signature checks come into play.
func DecodeUserInitKey(c *codec.Cursor) (*UserInitKey, error) {
	rawSuites, err := c.ReadVec8()
	if err != nil {
		return nil, err
	}
	if len(rawSuites) == 0 || len(rawSuites)%2 != 0 {
		return nil, codec.ErrDecode
	}
	sc := codec.NewCursor(rawSuites)
	suites := make([]CipherSuite, 0, len(rawSuites)/2)
	for sc.Remaining() > 0 {
		id, err := sc.ReadUint16()
		if err != nil {
			return nil, err
		}
		suites = append(suites, CipherSuite(id))
	}

	payload, err := c.SubCursor16()
	if err != nil {
		return nil, err
	}
	var x25519Key *X25519PublicKey
	for _, cs := range suites {
		switch cs {
		case AES128GCMP256SHA256:
			// Declared but unimplemented: skip the key payload.
			if _, err := payload.ReadVec16(); err != nil {
				return nil, err
			}
		case AES128GCMCurve25519SHA256:
			k, err := DecodeX25519PublicKey(payload)
			if err != nil {
				return nil, err
			}
			x25519Key = &k
		default:
			return nil, codec.ErrDecode
		}
	}
	if x25519Key == nil {
		return nil, codec.ErrDecode
	}

	alg, err := c.ReadUint16()
	if err != nil {
		return nil, err
	}
	if SignatureScheme(alg) != SchemeEd25519 {
		return nil, codec.ErrDecode
	}
	identityKey, err := DecodeSignaturePublicKey(c)
	if err != nil {
		return nil, err
	}
	signature, err := DecodeSignature(c)
	if err != nil {
		return nil, err
	}
	return &UserInitKey{
		CipherSuites: suites,
		InitKeys:     []X25519PublicKey{*x25519Key},
		Algorithm:    SignatureScheme(alg),
		IdentityKey:  identityKey,
		Signature:    signature,
	}, nil
}

// UserInitKeyBundle is a UserInitKey together with the matching private
// keys, kept by the publishing user.
type UserInitKeyBundle struct {
	InitKey UserInitKey

	privateKeys []*X25519PrivateKey
}

// NewUserInitKeyBundle generates a fresh X25519 key pair and wraps its
// public half in a signed UserInitKey.
func NewUserInitKeyBundle(id *Identity) (*UserInitKeyBundle, error) {
	kp, err := GenerateX25519KeyPair()
	if err != nil {
		return nil, err
	}
	priv := kp.PrivateKey
	kp.Wipe() // the bundle owns the only live copy of the scalar
	u := NewUserInitKey([]X25519PublicKey{kp.PublicKey}, id)
	return &UserInitKeyBundle{
		InitKey:     *u,
		privateKeys: []*X25519PrivateKey{&priv},
	}, nil
}

// PrivateKeyCount reports how many private keys the bundle owns.
func (b *UserInitKeyBundle) PrivateKeyCount() int { return len(b.privateKeys) }

// SharedSecret computes the Diffie–Hellman secret between the bundle's
// i-th private key and peer.
func (b *UserInitKeyBundle) SharedSecret(i int, peer X25519PublicKey) ([SharedSecretSize]byte, error) {
	return b.privateKeys[i].SharedSecret(peer)
}

// Encode writes the init key followed by the private keys.
func (b *UserInitKeyBundle) Encode(w *codec.Writer) {
	b.InitKey.Encode(w)
	var ks codec.Writer
	for _, k := range b.privateKeys {
		k.Encode(&ks)
	}
	w.WriteVec16(ks.Bytes())
}

// DecodeUserInitKeyBundle reads a bundle and enforces that the private
// keys match the init key's public list in count and order.
func DecodeUserInitKeyBundle(c *codec.Cursor) (*UserInitKeyBundle, error) {
	u, err := DecodeUserInitKey(c)
	if err != nil {
		return nil, err
	}
	ks, err := c.SubCursor16()
	if err != nil {
		return nil, err
	}
	var privs []*X25519PrivateKey
	for ks.Remaining() > 0 {
		k, err := DecodeX25519PrivateKey(ks)
		if err != nil {
			return nil, err
		}
		privs = append(privs, k)
	}
	if len(privs) != len(u.InitKeys) {
		return nil, codec.ErrDecode
	}
	for i, k := range privs {
		pub, err := k.PublicKey()
		if err != nil || pub != u.InitKeys[i] {
			return nil, codec.ErrDecode
		}
	}
	return &UserInitKeyBundle{InitKey: *u, privateKeys: privs}, nil
}

// Wipe zeroes every private key the bundle owns.
func (b *UserInitKeyBundle) Wipe() {
	for _, k := range b.privateKeys {
		k.Wipe()
	}
}
