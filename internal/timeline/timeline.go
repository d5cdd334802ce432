package timeline

import "sort"

// Interval is one labeled span on a speaker's tier. Text is empty for
// synthesized silence and non-empty for speech. Values are never mutated
// after construction; reconciliation builds fresh intervals instead.
type Interval struct {
	Start float64
	End   float64
	Text  string
}

// Silence reports whether the interval is a synthesized silent span.
func (iv Interval) Silence() bool {
	return iv.Text == ""
}

// SpeakerTimeline groups intervals by speaker while remembering the order in
// which speakers first appeared, so tier order in the output matches the
// order speakers show up in the subtitle file.
type SpeakerTimeline struct {
	speakers  []string
	intervals map[string][]Interval
}

// NewSpeakerTimeline returns an empty timeline.
func NewSpeakerTimeline() *SpeakerTimeline {
	return &SpeakerTimeline{intervals: make(map[string][]Interval)}
}

// Append adds an interval to the speaker's tier, registering the speaker on
// first use.
func (t *SpeakerTimeline) Append(speaker string, iv Interval) {
	if _, ok := t.intervals[speaker]; !ok {
		t.speakers = append(t.speakers, speaker)
	}
	t.intervals[speaker] = append(t.intervals[speaker], iv)
}

// Speakers returns speaker labels in first-appearance order.
func (t *SpeakerTimeline) Speakers() []string {
	return append([]string(nil), t.speakers...)
}

// Intervals returns the speaker's tier, or nil for an unknown speaker.
func (t *SpeakerTimeline) Intervals(speaker string) []Interval {
	return t.intervals[speaker]
}

// Len returns the number of speakers with at least one interval.
func (t *SpeakerTimeline) Len() int {
	return len(t.speakers)
}

// FillSilence builds a new timeline in which each speaker's tier covers
// [0, mediaDuration] with silent intervals synthesized before the first
// speech interval, between non-abutting neighbors, and after the last one.
// Intervals are stable-sorted by start time first, so equal starts keep
// their parse order. Overlapping speech intervals pass through untouched.
// Speakers with no intervals are skipped rather than reconciled.
func FillSilence(t *SpeakerTimeline, mediaDuration float64) *SpeakerTimeline {
	filled := NewSpeakerTimeline()
	for _, speaker := range t.speakers {
		source := t.intervals[speaker]
		if len(source) == 0 {
			continue
		}
		sorted := append([]Interval(nil), source...)
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].Start < sorted[j].Start
		})

		if first := sorted[0]; first.Start > 0 {
			filled.Append(speaker, Interval{Start: 0, End: first.Start})
		}
		for i, iv := range sorted {
			filled.Append(speaker, iv)
			if i+1 >= len(sorted) {
				continue
			}
			if next := sorted[i+1]; next.Start > iv.End {
				filled.Append(speaker, Interval{Start: iv.End, End: next.Start})
			}
		}
		if last := sorted[len(sorted)-1]; last.End < mediaDuration {
			filled.Append(speaker, Interval{Start: last.End, End: mediaDuration})
		}
	}
	return filled
}
