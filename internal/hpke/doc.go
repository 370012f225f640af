// Package hpke implements the base-mode hybrid public-key encryption used
// to protect group secrets delivered to a user.
//
// Each operation is a pure function of its inputs: an ephemeral X25519 key
// pair is encapsulated against the recipient's public key, the shared
// secret is extracted with an all-zero salt and expanded under the
// "hpke key" / "hpke nonce" labels bound to a wire-encoded Context
// (ciphersuite, mode, enc ‖ recipient key, info), and the payload is
// sealed with the suite's AEAD. The Psk and Auth modes exist as wire ids
// only.
//
// The construction seals the encapsulated value itself; there is no
// general decrypt entry point. A recipient that knows the candidate enc
// re-derives (key, nonce) via SetupBase from its own shared secret and
// opens the content with the suite AEAD.
package hpke
