package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// PathSegment is one step of a hierarchical-deterministic derivation path.
type PathSegment struct {
	Index    uint32
	Hardened bool
}

// DerivationPath is a parsed HD derivation path. Segments are interpreted
// in order by the address deriver; there is no runtime introspection of the
// underlying wallet library.
type DerivationPath struct {
	Raw      string
	Segments []PathSegment
}

// String returns the canonical "m/…" form of the path.
func (p DerivationPath) String() string {
	var b strings.Builder
	b.WriteString("m")
	for _, s := range p.Segments {
		b.WriteByte('/')
		b.WriteString(strconv.FormatUint(uint64(s.Index), 10))
		if s.Hardened {
			b.WriteByte('\'')
		}
	}
	return b.String()
}

// ParsePath parses a BIP-44 style path such as "m/44'/60'/0'/0/0".
// A trailing apostrophe (or "h"/"H") marks a hardened segment.
func ParsePath(raw string) (DerivationPath, error) {
	trimmed := strings.TrimSpace(raw)
	parts := strings.Split(trimmed, "/")
	if len(parts) == 0 || parts[0] != "m" {
		return DerivationPath{}, fmt.Errorf("%w: path %q must start with \"m\"", ErrValidation, raw)
	}
	segs := make([]PathSegment, 0, len(parts)-1)
	for _, part := range parts[1:] {
		if part == "" {
			return DerivationPath{}, fmt.Errorf("%w: empty segment in path %q", ErrValidation, raw)
		}
		hardened := false
		switch part[len(part)-1] {
		case '\'', 'h', 'H':
			hardened = true
			part = part[:len(part)-1]
		}
		idx, err := strconv.ParseUint(part, 10, 32)
		if err != nil || idx >= 1<<31 {
			return DerivationPath{}, fmt.Errorf("%w: bad segment %q in path %q", ErrValidation, part, raw)
		}
		segs = append(segs, PathSegment{Index: uint32(idx), Hardened: hardened})
	}
	return DerivationPath{Raw: trimmed, Segments: segs}, nil
}

// defaultPathSpecs is the built-in priority order, most common first.
var defaultPathSpecs = []string{
	"m/44'/60'/0'/0/0", // MetaMask, MEW and most wallets
	"m/44'/60'/0'",
	"m/44'/60'/0'/0",
	"m/44'/60'/0/0",
	"m/44'/60'/0/0/0",
	"m/44'/60'/0",
	"m/44'/60'",
	"m/0'/0'/0'", // legacy
	"m/0/0/0",
}

// DefaultPaths returns a fresh copy of the built-in derivation path list in
// priority order.
func DefaultPaths() []DerivationPath {
	paths := make([]DerivationPath, 0, len(defaultPathSpecs))
	for _, spec := range defaultPathSpecs {
		p, err := ParsePath(spec)
		if err != nil {
			panic("domain: bad built-in path " + spec)
		}
		paths = append(paths, p)
	}
	return paths
}

// PathsWithHint returns the default list with hint inserted at the front,
// unless an equivalent path is already present. The returned slice is owned
// by the caller; the defaults are never mutated in place.
func PathsWithHint(hint *DerivationPath) []DerivationPath {
	paths := DefaultPaths()
	if hint == nil {
		return paths
	}
	for _, p := range paths {
		if p.String() == hint.String() {
			return paths
		}
	}
	return append([]DerivationPath{*hint}, paths...)
}
