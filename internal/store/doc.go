// Package store persists identities and init-key bundles on disk.
//
// Both files hold the module's wire-codec encoding of the value, sealed
// in a passphrase-protected envelope: an scrypt-derived ChaCha20-Poly1305
// key bound to a random salt. Writes go through a temp file and rename.
package store
