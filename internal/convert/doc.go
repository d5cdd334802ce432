// Package convert orchestrates a single SRT-to-TextGrid conversion run:
// probe the media duration, parse and process the subtitles, fill silent
// gaps, and write the TextGrid plus the CSV change log.
package convert
