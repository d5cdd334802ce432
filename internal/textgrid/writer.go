package textgrid

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"

	"subgrid/internal/timeline"
)

// Write renders the timeline as a Praat TextGrid covering [0, duration],
// with one IntervalTier per speaker in the timeline's speaker order.
func Write(w io.Writer, tiers *timeline.SpeakerTimeline, duration float64) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "File type = \"ooTextFile\"\n")
	fmt.Fprintf(bw, "Object class = \"TextGrid\"\n\n")
	fmt.Fprintf(bw, "xmin = 0\n")
	fmt.Fprintf(bw, "xmax = %s\n", formatSeconds(duration))
	fmt.Fprintf(bw, "tiers? <exists>\n")
	fmt.Fprintf(bw, "size = %d\n", tiers.Len())
	fmt.Fprintf(bw, "item []: \n")

	for idx, speaker := range tiers.Speakers() {
		intervals := tiers.Intervals(speaker)
		fmt.Fprintf(bw, "    item [%d]: \n", idx+1)
		fmt.Fprintf(bw, "        class = \"IntervalTier\"\n")
		fmt.Fprintf(bw, "        name = \"%s\"\n", speaker)
		fmt.Fprintf(bw, "        xmin = 0\n")
		fmt.Fprintf(bw, "        xmax = %s\n", formatSeconds(duration))
		fmt.Fprintf(bw, "        intervals: size = %d\n", len(intervals))
		for i, iv := range intervals {
			fmt.Fprintf(bw, "        intervals [%d]:\n", i+1)
			fmt.Fprintf(bw, "            xmin = %s\n", formatSeconds(iv.Start))
			fmt.Fprintf(bw, "            xmax = %s\n", formatSeconds(iv.End))
			fmt.Fprintf(bw, "            text = \"%s\"\n", iv.Text)
		}
	}

	return bw.Flush()
}

// WriteFile writes the TextGrid to path, truncating any existing file.
func WriteFile(path string, tiers *timeline.SpeakerTimeline, duration float64) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create textgrid: %w", err)
	}
	if err := Write(file, tiers, duration); err != nil {
		_ = file.Close()
		return fmt.Errorf("write textgrid: %w", err)
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("close textgrid: %w", err)
	}
	return nil
}

// formatSeconds renders a time value the way the downstream tooling expects:
// zero as "0", other integral values with a trailing ".0", and everything
// else in shortest round-trip form.
func formatSeconds(v float64) string {
	if v == 0 {
		return "0"
	}
	if v == math.Trunc(v) && math.Abs(v) < 1e16 {
		return strconv.FormatFloat(v, 'f', -1, 64) + ".0"
	}
	return strconv.FormatFloat(v, 'g', -1, 64)
}
