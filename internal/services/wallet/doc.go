// Package wallet derives Ethereum addresses from mnemonics along HD
// derivation paths. The path is interpreted segment by segment over the
// BIP-32 child-key walk; the resulting private key maps to a lowercase hex
// address.
package wallet
