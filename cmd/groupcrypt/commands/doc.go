// Package commands defines the groupcrypt CLI.
//
// Commands
//
//   - init         Create the local signing identity
//   - fingerprint  Print the identity fingerprint
//   - initkey      Generate a fresh init-key bundle and print its encoding
//   - inspect      Decode and self-verify a hex-encoded UserInitKey
//
// # Implementation
//
// The root command resolves the config directory and opens the file store
// before any subcommand runs. All protocol logic lives in the internal
// packages; commands only drive them and print results.
package commands
