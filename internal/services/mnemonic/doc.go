// Package mnemonic validates the embedded checksum of assembled recovery
// phrases. It delegates to the BIP-39 reference implementation and fails
// closed on malformed input.
package mnemonic
