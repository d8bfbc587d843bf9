package zenith

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/shopspring/decimal"
	"github.com/zenithfin/zenith/date"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// DecodeState reads the single persisted JSON document. Import validation
// is deliberately minimal: a document with null accounts or transactions
// arrays is rejected as not being a backup at all; everything else is
// accepted and degrades gracefully.
func DecodeState(r io.Reader) (*AppState, error) {
	var s AppState
	dec := json.NewDecoder(r)
	if err := dec.Decode(&s); err != nil {
		return nil, fmt.Errorf("could not decode backup: %w", err)
	}
	if s.Accounts == nil || s.Transactions == nil {
		return nil, errors.New("invalid backup: accounts and transactions are required")
	}
	if s.ProcessedCorporateActionIDs == nil {
		s.ProcessedCorporateActionIDs = []string{}
	}
	return &s, nil
}

// EncodeState writes the state as the persisted JSON document, verbatim the
// same layout import reads.
func EncodeState(w io.Writer, s *AppState) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(s); err != nil {
		return fmt.Errorf("could not encode backup: %w", err)
	}
	return nil
}

// BackupFilename names an export file for the given day, e.g.
// "zenith_backup_2025-08-30.json".
func BackupFilename(on date.Date) string {
	return fmt.Sprintf("zenith_backup_%s.json", on)
}
