package srt_test

import (
	"testing"

	"subgrid/internal/srt"
)

func TestProcessTextSplitsUppercaseRuns(t *testing.T) {
	got, record := srt.ProcessText("the SRT file", "00:00:01,000 --> 00:00:02,000", true)
	if got != "the S R T file" {
		t.Fatalf("unexpected processed text: %q", got)
	}
	if record == nil {
		t.Fatal("expected change record for uppercase run")
	}
	if record.Original != "the SRT file" || record.Processed != "the S R T file" {
		t.Fatalf("unexpected record: %#v", record)
	}
}

func TestProcessTextExpandsNumerals(t *testing.T) {
	got, record := srt.ProcessText("pay $25 by the 21st", "ts", true)
	if got != "pay twenty-five dollars by the twenty-first" {
		t.Fatalf("unexpected processed text: %q", got)
	}
	if record == nil {
		t.Fatal("expected change record for digits")
	}
}

func TestProcessTextDisabledStillRecordsChanges(t *testing.T) {
	got, record := srt.ProcessText("call me in 2025", "ts", false)
	if got != "call me in 2025" {
		t.Fatalf("expected text untouched when conversion disabled, got %q", got)
	}
	if record == nil {
		t.Fatal("expected audit record even with conversion disabled")
	}
	if record.Original != record.Processed {
		t.Fatalf("expected no-op record, got %#v", record)
	}
}

func TestProcessTextNoRecordWithoutDigitsOrRuns(t *testing.T) {
	cases := []string{
		"plain lowercase text",
		"One Capital Per Word",
		"",
	}
	for _, text := range cases {
		if _, record := srt.ProcessText(text, "ts", true); record != nil {
			t.Fatalf("unexpected record for %q: %#v", text, record)
		}
	}
}

func TestProcessTextRecordKeepsTimestamp(t *testing.T) {
	const stamp = "00:01:02,300 --> 00:01:04,500"
	_, record := srt.ProcessText("room 45", stamp, true)
	if record == nil || record.Timestamp != stamp {
		t.Fatalf("expected record with timestamp %q, got %#v", stamp, record)
	}
}
