// Package keys holds the asymmetric key material of the protocol.
//
// Contents
//
//   - X25519 key pairs: generation, seed derivation, Diffie–Hellman with an
//     explicit degenerate-result error, and wiping of private scalars
//   - Ed25519 identities with detached signing and boolean verification
//   - The Signable contract: any type with a canonical unsigned payload can
//     be signed by an Identity and verified against its signature
//   - BasicCredential, UserInitKey and UserInitKeyBundle with their
//     bit-exact wire encodings
//
// # Notes
//
// Private key bytes are owned by exactly one value; callers wipe them via
// the Wipe methods when the material is no longer needed. Wire decoding
// rejects anything semantically unusable (unknown ciphersuites, missing
// X25519 key, non-Ed25519 algorithm) before signatures are ever checked.
package keys
