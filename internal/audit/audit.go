// Package audit writes the CSV log of subtitle text changes recorded during
// conversion.
package audit

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"subgrid/internal/srt"
)

var header = []string{"Timestamp", "Original Subtitle", "Processed Subtitle"}

// Write emits the header row plus one row per change record. CRLF row
// endings match the files existing downstream consumers were built against.
func Write(w io.Writer, changes []srt.ChangeRecord) error {
	cw := csv.NewWriter(w)
	cw.UseCRLF = true
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	for _, change := range changes {
		row := []string{change.Timestamp, change.Original, change.Processed}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write csv row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteFile writes the change log to path, truncating any existing file.
// Callers are expected to skip the write entirely when no changes exist.
func WriteFile(path string, changes []srt.ChangeRecord) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create csv: %w", err)
	}
	if err := Write(file, changes); err != nil {
		_ = file.Close()
		return err
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("close csv: %w", err)
	}
	return nil
}
