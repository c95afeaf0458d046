// Package config loads, normalizes and validates the YAML run
// configuration: a settings section plus one or more named wallet entries.
// Validation happens once, before any candidate is generated; a fixed or
// pool word that is not in the vocabulary makes the whole space
// unsatisfiable and is rejected here rather than per candidate.
package config
