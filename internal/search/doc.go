// Package search drives the recovery run: it pulls candidates from the
// permutation generator, filters them through staged cheap-to-expensive
// validity checks, tries the derivation path list against the target
// address on every checksum-valid phrase, and stops at the first match.
//
// With one worker the run is strictly sequential and audit rows form a
// total order by candidate id. With more workers, candidates are fanned
// out over a pool; a match broadcasts cooperative cancellation so no
// further cryptographic work starts, though in-flight candidates may
// still complete.
package search
