// Package textgrid serializes speaker timelines into Praat's ooTextFile
// TextGrid format, one IntervalTier per speaker.
//
// The layout (indentation, trailing spaces, float rendering) reproduces the
// output Praat-side tooling already consumes, so it must not be reformatted.
package textgrid
