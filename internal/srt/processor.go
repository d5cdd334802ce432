package srt

import (
	"regexp"
	"strings"

	"subgrid/internal/numerals"
)

// ChangeRecord captures one subtitle's text before and after processing,
// keyed by the block's original timestamp range. Records are produced for
// any subtitle whose original text contains a digit or a run of two or more
// uppercase letters, even when processing is disabled and the text came
// through unchanged.
type ChangeRecord struct {
	Timestamp string
	Original  string
	Processed string
}

var auditPattern = regexp.MustCompile(`\d|[A-Z]{2,}`)

// ProcessText applies numeral expansion and uppercase-run splitting to one
// subtitle's text when convertNumbers is enabled. The returned record is nil
// when the original text has nothing worth auditing.
func ProcessText(text, timestamp string, convertNumbers bool) (string, *ChangeRecord) {
	original := text
	if convertNumbers {
		text = numerals.Expand(text)
		text = splitUppercaseRuns(text)
	}
	if !auditPattern.MatchString(original) {
		return text, nil
	}
	return text, &ChangeRecord{Timestamp: timestamp, Original: original, Processed: text}
}

// splitUppercaseRuns inserts a space between every pair of adjacent ASCII
// uppercase letters, so "SRT" becomes "S R T".
func splitUppercaseRuns(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	prevUpper := false
	for _, r := range text {
		upper := r >= 'A' && r <= 'Z'
		if upper && prevUpper {
			b.WriteByte(' ')
		}
		b.WriteRune(r)
		prevUpper = upper
	}
	return b.String()
}
