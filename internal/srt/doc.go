// Package srt parses SubRip subtitle text into per-speaker interval tiers.
//
// Parse consumes whole-file SRT content: blocks separated by blank lines,
// a "HH:MM:SS,mmm --> HH:MM:SS,mmm" range on the block's second line, and
// the subtitle text on the third. Optional diarization reads an inline
// "[Speaker]: text" marker. Subtitle text runs through ProcessText, which
// applies numeral expansion and uppercase-run splitting and emits audit
// change records.
//
// Only the first three lines of each block are consulted; wrapped subtitle
// text on later lines is ignored.
package srt
