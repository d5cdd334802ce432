package audit_test

import (
	"bytes"
	"testing"

	"subgrid/internal/audit"
	"subgrid/internal/srt"
)

func TestWriteHeaderAndRows(t *testing.T) {
	changes := []srt.ChangeRecord{
		{
			Timestamp: "00:00:01,000 --> 00:00:02,000",
			Original:  "pay $25",
			Processed: "pay twenty-five dollars",
		},
	}
	var buf bytes.Buffer
	if err := audit.Write(&buf, changes); err != nil {
		t.Fatalf("Write: %v", err)
	}
	// The timestamp range contains commas, so the csv layer quotes it.
	want := "Timestamp,Original Subtitle,Processed Subtitle\r\n" +
		"\"00:00:01,000 --> 00:00:02,000\",pay $25,pay twenty-five dollars\r\n"
	if got := buf.String(); got != want {
		t.Fatalf("csv mismatch:\ngot:  %q\nwant: %q", got, want)
	}
}

func TestWriteQuotesFieldsWithCommas(t *testing.T) {
	changes := []srt.ChangeRecord{
		{Timestamp: "ts", Original: "wait, 45", Processed: "wait, forty-five"},
	}
	var buf bytes.Buffer
	if err := audit.Write(&buf, changes); err != nil {
		t.Fatalf("Write: %v", err)
	}
	want := "Timestamp,Original Subtitle,Processed Subtitle\r\n" +
		"ts,\"wait, 45\",\"wait, forty-five\"\r\n"
	if got := buf.String(); got != want {
		t.Fatalf("csv mismatch:\ngot:  %q\nwant: %q", got, want)
	}
}
