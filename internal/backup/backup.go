// Package backup handles encoding, decoding and reconciling-merge of khata
// snapshots used for export and import.
package backup

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/mhsvai/amar-khata-by-mhshahin/internal/model"
)

// ErrInvalidBackup is returned when an imported payload is not parseable as a
// snapshot or lacks the required top-level sections. The import is rejected
// wholesale; no partial repair is attempted.
var ErrInvalidBackup = errors.New("invalid backup format")

// Decode parses backup bytes and validates their structure: both the "khata"
// and "settings" top-level keys must be present. Missing sub-arrays inside
// the khata are tolerated and normalized to empty collections. No deeper
// schema validation is performed.
func Decode(data []byte) (model.Snapshot, error) {
	var raw struct {
		Settings *model.Settings `json:"settings"`
		Khata    *model.Khata    `json:"khata"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return model.Snapshot{}, fmt.Errorf("%w: %v", ErrInvalidBackup, err)
	}
	if raw.Settings == nil || raw.Khata == nil {
		return model.Snapshot{}, ErrInvalidBackup
	}

	snap := model.Snapshot{Settings: *raw.Settings, Khata: *raw.Khata}
	snap.Normalize()
	return snap, nil
}

// Encode serializes a snapshot as indented JSON for backup files.
func Encode(snap model.Snapshot) ([]byte, error) {
	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encoding snapshot: %w", err)
	}
	return data, nil
}

// ExportName builds the date-stamped backup filename for a given moment.
func ExportName(now time.Time) string {
	return fmt.Sprintf("khata-backup-%s.json", now.Format("2006-01-02"))
}
