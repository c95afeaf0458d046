package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"seedhunt/internal/domain"
)

// BlankMarker is the configured placeholder for the one fully unknown word
// slot in blank-substitution mode. Words normalize to lowercase trimmed
// text, so an empty string after normalization is the blank.
const BlankMarker = ""

// MnemonicWords is the phrase length this tool recovers.
const MnemonicWords = 24

// Mode selects how the unknown slots are enumerated.
type Mode int

const (
	// ModeDirect permutes a known set of words.
	ModeDirect Mode = iota
	// ModeBlank substitutes pool candidates into a single blank slot and
	// permutes each resulting set.
	ModeBlank
)

// Settings carries run-wide knobs from the "settings" section.
type Settings struct {
	ChunkSize    int    `yaml:"chunk_size"`
	LoggingLevel string `yaml:"logging_level"`
	Workers      int    `yaml:"workers"`
}

// Wallet is one named recovery target. Exactly one of PermutableWords
// (direct mode) or ScrambledWords+ReplacementPool (blank mode) is set.
type Wallet struct {
	TargetAddress   string   `yaml:"target_address"`
	FixedWords      []string `yaml:"fixed_words"`
	PermutableWords []string `yaml:"permutable_words"`
	ScrambledWords  []string `yaml:"scrambled_words"`
	ReplacementPool []string `yaml:"replacement_pool"`
	DerivationPath  string   `yaml:"derivation_path"`
}

// Document is a parsed configuration file.
type Document struct {
	Settings Settings
	Wallets  map[string]*Wallet
}

type rawDocument struct {
	Settings Settings           `yaml:"settings"`
	Wallets  map[string]*Wallet `yaml:",inline"`
}

// Load reads and parses the configuration file at path.
func Load(path string) (*Document, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: read %s: %v", domain.ErrConfig, path, err)
	}
	return Parse(b)
}

// Parse parses a configuration document and normalizes every wallet entry.
func Parse(b []byte) (*Document, error) {
	var raw rawDocument
	if err := yaml.Unmarshal(b, &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrConfig, err)
	}
	doc := &Document{Settings: raw.Settings, Wallets: raw.Wallets}
	if doc.Settings.ChunkSize <= 0 {
		doc.Settings.ChunkSize = 1000
	}
	if doc.Wallets == nil {
		doc.Wallets = map[string]*Wallet{}
	}
	for id, w := range doc.Wallets {
		// A bare "wallet_x:" line is valid YAML with a null body and
		// unmarshals to a nil entry.
		if w == nil {
			return nil, fmt.Errorf("%w: wallet %q has no body", domain.ErrConfig, id)
		}
		w.normalize()
	}
	return doc, nil
}

// Wallet returns the named wallet entry.
func (d *Document) Wallet(id string) (*Wallet, error) {
	w, ok := d.Wallets[id]
	if !ok {
		return nil, fmt.Errorf("%w: wallet %q not found", domain.ErrConfig, id)
	}
	return w, nil
}

// Debug reports whether the configured logging level asks for per-candidate
// diagnostics.
func (s Settings) Debug() bool {
	return strings.EqualFold(s.LoggingLevel, "DEBUG")
}

// Mode reports which enumeration mode this wallet entry configures.
func (w *Wallet) Mode() Mode {
	if len(w.ScrambledWords) > 0 || len(w.ReplacementPool) > 0 {
		return ModeBlank
	}
	return ModeDirect
}

// Hint parses the optional derivation path hint, or returns nil when the
// entry carries none.
func (w *Wallet) Hint() (*domain.DerivationPath, error) {
	if w.DerivationPath == "" {
		return nil, nil
	}
	p, err := domain.ParsePath(w.DerivationPath)
	if err != nil {
		return nil, fmt.Errorf("%w: derivation_path: %v", domain.ErrConfig, err)
	}
	return &p, nil
}

// normalize lowercases, trims, and quote-strips every word and the target
// address. Runs once at parse time; the entry is treated as immutable
// afterwards.
func (w *Wallet) normalize() {
	normalizeAll(w.FixedWords)
	normalizeAll(w.PermutableWords)
	normalizeAll(w.ScrambledWords)
	normalizeAll(w.ReplacementPool)
	w.TargetAddress = strings.ToLower(strings.TrimSpace(w.TargetAddress))
	w.DerivationPath = strings.TrimSpace(w.DerivationPath)
}

func normalizeAll(words []string) {
	for i, word := range words {
		words[i] = NormalizeWord(word)
	}
}

// NormalizeWord cleans a single configured word: lowercase, surrounding
// whitespace removed, surrounding quote characters stripped.
func NormalizeWord(word string) string {
	return strings.Trim(strings.ToLower(strings.TrimSpace(word)), `"'`)
}

// Validate checks the entry against the mode's structural requirements and
// verifies every known word against the vocabulary. All failures wrap
// domain.ErrConfig and abort the run before any candidate is generated.
func (w *Wallet) Validate(words domain.WordList) error {
	if w.TargetAddress == "" {
		return fmt.Errorf("%w: target_address is required", domain.ErrConfig)
	}
	if _, err := w.Hint(); err != nil {
		return err
	}
	if len(w.PermutableWords) > 0 && w.Mode() == ModeBlank {
		return fmt.Errorf("%w: entry mixes permutable_words with scrambled_words/replacement_pool",
			domain.ErrConfig)
	}

	switch w.Mode() {
	case ModeBlank:
		if len(w.ScrambledWords) != 9 {
			return fmt.Errorf("%w: scrambled_words must have 9 entries, got %d",
				domain.ErrConfig, len(w.ScrambledWords))
		}
		if n := countBlanks(w.ScrambledWords); n != 1 {
			return fmt.Errorf("%w: scrambled_words must contain exactly one blank marker, got %d",
				domain.ErrConfig, n)
		}
		if len(w.FixedWords)+len(w.ScrambledWords) != MnemonicWords {
			return fmt.Errorf("%w: expected %d fixed words, got %d",
				domain.ErrConfig, MnemonicWords-len(w.ScrambledWords), len(w.FixedWords))
		}
		if len(w.ReplacementPool) == 0 {
			return fmt.Errorf("%w: replacement_pool must not be empty", domain.ErrConfig)
		}
		if err := checkMembership(words, "replacement_pool", w.ReplacementPool); err != nil {
			return err
		}
		known := make([]string, 0, len(w.ScrambledWords)-1)
		for _, word := range w.ScrambledWords {
			if word != BlankMarker {
				known = append(known, word)
			}
		}
		if err := checkMembership(words, "scrambled_words", known); err != nil {
			return err
		}
	case ModeDirect:
		if len(w.PermutableWords) < 2 {
			return fmt.Errorf("%w: permutable_words must have at least 2 entries, got %d",
				domain.ErrConfig, len(w.PermutableWords))
		}
		if len(w.FixedWords)+len(w.PermutableWords) != MnemonicWords {
			return fmt.Errorf("%w: expected %d fixed words, got %d",
				domain.ErrConfig, MnemonicWords-len(w.PermutableWords), len(w.FixedWords))
		}
		if err := checkMembership(words, "permutable_words", w.PermutableWords); err != nil {
			return err
		}
	}
	return checkMembership(words, "fixed_words", w.FixedWords)
}

func countBlanks(words []string) int {
	n := 0
	for _, w := range words {
		if w == BlankMarker {
			n++
		}
	}
	return n
}

func checkMembership(words domain.WordList, field string, list []string) error {
	for _, w := range list {
		if !words.Contains(w) {
			return fmt.Errorf("%w: %s: %q is not in the word list", domain.ErrConfig, field, w)
		}
	}
	return nil
}
