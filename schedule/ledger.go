package schedule

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Load reads and validates a published ledger document.
func Load(path string) (*Ledger, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedLedger, err)
	}

	var ledger Ledger
	if err := json.Unmarshal(raw, &ledger); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedLedger, err)
	}
	if err := ledger.validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedLedger, err)
	}

	return &ledger, nil
}

// WriteFile persists the ledger as pretty-printed JSON, atomically: the
// document is written to a temp file in the target directory and renamed
// into place, so a crash mid-write never leaves a truncated ledger and a
// failure leaves any previously published file untouched.
func (l *Ledger) WriteFile(path string) error {
	raw, err := json.MarshalIndent(l, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: encoding: %v", ErrLedgerWrite, err)
	}
	raw = append(raw, '\n')

	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".ledger-*.json")
	if err != nil {
		return fmt.Errorf("%w: %v", ErrLedgerWrite, err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName) // no-op after a successful rename

	if _, err := tmp.Write(raw); err != nil {
		tmp.Close()

		return fmt.Errorf("%w: %v", ErrLedgerWrite, err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()

		return fmt.Errorf("%w: %v", ErrLedgerWrite, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("%w: %v", ErrLedgerWrite, err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("%w: %v", ErrLedgerWrite, err)
	}

	return nil
}
