// Package codec implements the bit-exact wire format shared by every
// serialized entity in groupcrypt.
//
// Fixed-width integers are big-endian. Vectors are length-prefixed with a
// byte count (not an element count): one byte for short fields such as
// ciphersuite lists and credential identities, two bytes for key material
// and signatures. A sub-cursor scopes a two-byte-prefixed range so that
// ciphersuite-specific payloads can be skipped without being parsed.
//
// Decoding never panics; all failures surface as ErrDecode.
package codec
