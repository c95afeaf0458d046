// Package wordlist provides membership queries over the BIP-39 English
// vocabulary, loaded once per process.
package wordlist
