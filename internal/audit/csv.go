package audit

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"sync"

	"seedhunt/internal/domain"
)

const (
	mnemonicFile   = "1_mnemonic.csv"
	derivationFile = "2_derivations.csv"
)

// CSVSink records audit rows into two CSV files under a directory.
// Concurrency-safe via internal locking; parallel search workers share one
// sink under a single-writer discipline.
type CSVSink struct {
	mu sync.Mutex

	mnemonicF   *os.File
	mnemonicW   *csv.Writer
	derivationF *os.File
	derivationW *csv.Writer
	closed      bool
}

// NewCSVSink creates (or truncates) the two audit streams under dir,
// creating the directory if needed, and writes the header rows.
func NewCSVSink(dir string) (*CSVSink, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("audit dir: %w", err)
	}
	mf, err := os.Create(filepath.Join(dir, mnemonicFile))
	if err != nil {
		return nil, fmt.Errorf("audit: %w", err)
	}
	df, err := os.Create(filepath.Join(dir, derivationFile))
	if err != nil {
		mf.Close()
		return nil, fmt.Errorf("audit: %w", err)
	}
	s := &CSVSink{
		mnemonicF:   mf,
		mnemonicW:   csv.NewWriter(mf),
		derivationF: df,
		derivationW: csv.NewWriter(df),
	}
	if err := s.write(s.mnemonicW, []string{"permutation_id", "mnemonic", "checksum_valid"}); err != nil {
		s.Close()
		return nil, err
	}
	if err := s.write(s.derivationW, []string{"permutation_id", "derived_address"}); err != nil {
		s.Close()
		return nil, err
	}
	return s, nil
}

// Checksum appends one row to the mnemonic stream.
func (s *CSVSink) Checksum(id int64, mnemonic string, valid bool) error {
	return s.write(s.mnemonicW, []string{
		strconv.FormatInt(id, 10), mnemonic, strconv.FormatBool(valid),
	})
}

// Derivation appends one row to the derivation stream.
func (s *CSVSink) Derivation(id int64, address string) error {
	return s.write(s.derivationW, []string{strconv.FormatInt(id, 10), address})
}

func (s *CSVSink) write(w *csv.Writer, row []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return fmt.Errorf("audit: sink closed")
	}
	if err := w.Write(row); err != nil {
		return fmt.Errorf("audit write: %w", err)
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("audit flush: %w", err)
	}
	return nil
}

// Close flushes and closes both streams. Idempotent.
func (s *CSVSink) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil
	}
	s.closed = true
	s.mnemonicW.Flush()
	s.derivationW.Flush()
	err := s.mnemonicW.Error()
	if e := s.derivationW.Error(); err == nil {
		err = e
	}
	if e := s.mnemonicF.Close(); err == nil {
		err = e
	}
	if e := s.derivationF.Close(); err == nil {
		err = e
	}
	return err
}

// Compile-time assertion against the domain contract.
var _ domain.AuditSink = (*CSVSink)(nil)
