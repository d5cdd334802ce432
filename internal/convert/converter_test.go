package convert_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"subgrid/internal/convert"
	"subgrid/internal/history"
	"subgrid/internal/services"
)

type fakeProber struct {
	duration float64
	err      error
}

func (f fakeProber) Duration(context.Context, string) (float64, error) {
	return f.duration, f.err
}

type captureRecorder struct {
	last history.Record
}

func (c *captureRecorder) Add(_ context.Context, rec history.Record) (history.Record, error) {
	rec.ID = "run-1"
	c.last = rec
	return rec, nil
}

func writeFixture(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

const twoSubtitleSRT = `1
00:00:02,000 --> 00:00:04,000
first line

2
00:00:06,000 --> 00:00:08,000
second line
`

func newRequest(t *testing.T, dir, srtContent string) convert.Request {
	t.Helper()
	return convert.Request{
		SRTPath:      writeFixture(t, dir, "in.srt", srtContent),
		MediaPath:    filepath.Join(dir, "in.wav"),
		TextGridPath: filepath.Join(dir, "out.TextGrid"),
		CSVPath:      filepath.Join(dir, "out.csv"),
	}
}

func TestRunProducesLeadingGapAndTrailingSilence(t *testing.T) {
	dir := t.TempDir()
	recorder := &captureRecorder{}
	converter := convert.New(fakeProber{duration: 10}, recorder, nil)

	result, err := converter.Run(context.Background(), newRequest(t, dir, twoSubtitleSRT))
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if result.SpeakerCount != 1 {
		t.Fatalf("expected 1 speaker, got %d", result.SpeakerCount)
	}
	// leading silence, speech, gap silence, speech, trailing silence
	if result.IntervalCount != 5 {
		t.Fatalf("expected 5 intervals, got %d", result.IntervalCount)
	}
	if result.RunID != "run-1" {
		t.Fatalf("expected history run ID, got %q", result.RunID)
	}
	if recorder.last.IntervalCount != 5 || recorder.last.MediaDuration != 10 {
		t.Fatalf("unexpected history record: %#v", recorder.last)
	}

	data, err := os.ReadFile(filepath.Join(dir, "out.TextGrid"))
	if err != nil {
		t.Fatalf("read textgrid: %v", err)
	}
	out := string(data)
	if !strings.Contains(out, `name = "Speaker"`) {
		t.Fatalf("missing default tier:\n%s", out)
	}
	if !strings.Contains(out, "intervals: size = 5") {
		t.Fatalf("unexpected interval count:\n%s", out)
	}
}

func TestRunSkipsCSVWhenNoChanges(t *testing.T) {
	dir := t.TempDir()
	converter := convert.New(fakeProber{duration: 10}, nil, nil)

	result, err := converter.Run(context.Background(), newRequest(t, dir, twoSubtitleSRT))
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if result.CSVWritten {
		t.Fatal("expected CSV skipped for change-free input")
	}
	if _, err := os.Stat(filepath.Join(dir, "out.csv")); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected no csv file, stat err=%v", err)
	}
}

func TestRunWritesCSVWhenChangesRecorded(t *testing.T) {
	dir := t.TempDir()
	converter := convert.New(fakeProber{duration: 10}, nil, nil)

	content := `1
00:00:01,000 --> 00:00:02,000
pay $25 now
`
	req := newRequest(t, dir, content)
	req.ConvertNumbers = true
	result, err := converter.Run(context.Background(), req)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !result.CSVWritten || result.ChangeCount != 1 {
		t.Fatalf("expected one recorded change, got %#v", result)
	}
	data, err := os.ReadFile(req.CSVPath)
	if err != nil {
		t.Fatalf("read csv: %v", err)
	}
	if !strings.Contains(string(data), "twenty-five dollars") {
		t.Fatalf("csv missing processed text:\n%s", data)
	}
}

func TestRunFailsWhenProbeFails(t *testing.T) {
	dir := t.TempDir()
	converter := convert.New(fakeProber{err: errors.New("no duration metadata")}, nil, nil)

	_, err := converter.Run(context.Background(), newRequest(t, dir, twoSubtitleSRT))
	if !errors.Is(err, services.ErrExternalTool) {
		t.Fatalf("expected external tool error, got %v", err)
	}
}

func TestRunFailsWhenSRTMissing(t *testing.T) {
	dir := t.TempDir()
	converter := convert.New(fakeProber{duration: 10}, nil, nil)

	req := convert.Request{
		SRTPath:      filepath.Join(dir, "absent.srt"),
		MediaPath:    filepath.Join(dir, "in.wav"),
		TextGridPath: filepath.Join(dir, "out.TextGrid"),
		CSVPath:      filepath.Join(dir, "out.csv"),
	}
	_, err := converter.Run(context.Background(), req)
	if !errors.Is(err, services.ErrNotFound) {
		t.Fatalf("expected not-found error, got %v", err)
	}
}

func TestRunRejectsEmptyPaths(t *testing.T) {
	converter := convert.New(fakeProber{duration: 10}, nil, nil)
	_, err := converter.Run(context.Background(), convert.Request{})
	if !errors.Is(err, services.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestRunDiarizeDropsUnmarkedBlocks(t *testing.T) {
	dir := t.TempDir()
	converter := convert.New(fakeProber{duration: 10}, nil, nil)

	content := `1
00:00:01,000 --> 00:00:02,000
[Alice]: marked

2
00:00:03,000 --> 00:00:04,000
unmarked line
`
	req := newRequest(t, dir, content)
	req.Diarize = true
	result, err := converter.Run(context.Background(), req)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if result.SpeakerCount != 1 {
		t.Fatalf("expected only marked speaker, got %d tiers", result.SpeakerCount)
	}
	data, _ := os.ReadFile(req.TextGridPath)
	if strings.Contains(string(data), "unmarked line") {
		t.Fatalf("unmarked block leaked into output:\n%s", data)
	}
}
