package ffprobe

import (
	"math"
	"testing"
)

func TestResultHelpers(t *testing.T) {
	result := Result{
		Streams: []Stream{
			{CodecType: "audio"},
			{CodecType: "video"},
			{CodecType: "audio"},
		},
		Format: Format{Duration: "123.45"},
	}
	if result.AudioStreamCount() != 2 {
		t.Fatalf("expected 2 audio streams, got %d", result.AudioStreamCount())
	}
	if result.DurationSeconds() != 123.45 {
		t.Fatalf("unexpected duration: %v", result.DurationSeconds())
	}
}

func TestDurationSecondsHandlesInvalidValues(t *testing.T) {
	if got := (Result{}).DurationSeconds(); got != 0 {
		t.Fatalf("expected 0 for missing duration, got %v", got)
	}
	bad := Result{Format: Format{Duration: "nope"}}
	if !math.IsNaN(bad.DurationSeconds()) {
		t.Fatalf("expected NaN for unparseable duration, got %v", bad.DurationSeconds())
	}
}
