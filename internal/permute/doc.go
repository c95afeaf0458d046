// Package permute enumerates candidate word orderings for the unknown
// slots of a recovery phrase. A Generator is a lazy, finite, one-shot
// sequence: once exhausted, a fresh one must be constructed for another
// pass. Two modes exist, direct permutation of a known word set and
// blank substitution against a replacement pool.
package permute
