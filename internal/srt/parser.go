package srt

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"subgrid/internal/timeline"
)

// DefaultSpeaker labels the single tier used when diarization is disabled.
const DefaultSpeaker = "Speaker"

// Options controls how Parse attributes and transforms subtitle text.
type Options struct {
	// Diarize reads an inline "[Speaker]: text" marker from each subtitle
	// and drops blocks without one.
	Diarize bool
	// ConvertNumbers enables numeral expansion and uppercase-run splitting.
	ConvertNumbers bool
	// Speaker overrides DefaultSpeaker for the non-diarized tier.
	Speaker string
}

var (
	blockSeparator = regexp.MustCompile(`\n\s*\n`)
	speakerMarker  = regexp.MustCompile(`^\[([^\]]+)\]: (.*)`)
)

// Parse converts whole-file SRT content into per-speaker interval tiers plus
// the audit change records produced along the way. Malformed blocks are
// skipped silently, as are subtitles ending past mediaDuration.
func Parse(content string, mediaDuration float64, opts Options) (*timeline.SpeakerTimeline, []ChangeRecord) {
	speaker := strings.TrimSpace(opts.Speaker)
	if speaker == "" {
		speaker = DefaultSpeaker
	}

	tiers := timeline.NewSpeakerTimeline()
	var changes []ChangeRecord

	blocks := blockSeparator.Split(strings.TrimSpace(content), -1)
	for _, block := range blocks {
		lines := strings.Split(block, "\n")
		if len(lines) < 3 {
			continue
		}

		timeRange := lines[1]
		start, end, err := parseTimeRange(timeRange)
		if err != nil {
			continue
		}
		if end > mediaDuration {
			continue
		}

		text := strings.TrimSpace(lines[2])
		tier := speaker
		if opts.Diarize {
			match := speakerMarker.FindStringSubmatch(text)
			if match == nil {
				continue
			}
			tier, text = match[1], match[2]
		}

		processed, record := ProcessText(text, timeRange, opts.ConvertNumbers)
		if record != nil {
			changes = append(changes, *record)
		}
		tiers.Append(tier, timeline.Interval{Start: start, End: end, Text: processed})
	}

	return tiers, changes
}

func parseTimeRange(value string) (float64, float64, error) {
	parts := strings.Split(value, "-->")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("invalid time range %q", value)
	}
	start, err := ParseTimestamp(parts[0])
	if err != nil {
		return 0, 0, err
	}
	end, err := ParseTimestamp(parts[1])
	if err != nil {
		return 0, 0, err
	}
	return start, end, nil
}

// ParseTimestamp converts an SRT timestamp ("HH:MM:SS,mmm") to seconds.
// A period millisecond separator is tolerated and normalized to a comma.
func ParseTimestamp(value string) (float64, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0, fmt.Errorf("empty timestamp")
	}
	value = strings.ReplaceAll(value, ".", ",")
	timeParts := strings.Split(value, ",")
	if len(timeParts) != 2 {
		return 0, fmt.Errorf("invalid timestamp %q", value)
	}
	hms := strings.Split(timeParts[0], ":")
	if len(hms) != 3 {
		return 0, fmt.Errorf("invalid timestamp %q", value)
	}
	hours, errH := strconv.Atoi(hms[0])
	minutes, errM := strconv.Atoi(hms[1])
	seconds, errS := strconv.Atoi(hms[2])
	millis, errMS := strconv.Atoi(timeParts[1])
	if errH != nil || errM != nil || errS != nil || errMS != nil {
		return 0, fmt.Errorf("invalid timestamp %q", value)
	}
	return float64(hours*3600+minutes*60+seconds) + float64(millis)/1000, nil
}
