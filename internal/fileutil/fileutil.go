// Package fileutil holds small filesystem helpers shared across the
// conversion pipeline.
package fileutil

import (
	"fmt"
	"os"
	"strings"

	"golang.org/x/text/unicode/norm"
)

const utf8BOM = "\ufeff"

// ReadText reads a UTF-8 text file, strips a leading BOM, converts CRLF and
// bare CR line endings to LF, and NFC-normalizes the result. Subtitle files
// arrive from enough different tools that none of these can be assumed.
func ReadText(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", path, err)
	}
	text := strings.TrimPrefix(string(data), utf8BOM)
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	return norm.NFC.String(text), nil
}

// EnsureDir creates dir and any missing parents.
func EnsureDir(dir string) error {
	if strings.TrimSpace(dir) == "" {
		return nil
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("ensure directory %s: %w", dir, err)
	}
	return nil
}
