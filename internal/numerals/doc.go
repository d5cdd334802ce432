// Package numerals rewrites digit sequences in subtitle text into their
// spoken English word forms.
//
// Expand applies a fixed cascade of pattern passes so that context-sensitive
// forms (percentage ranges, ordinals, currency, year-style four-digit
// numbers, decades) win over the generic cardinal rendering. Each pass is a
// pure transform over the previous pass's output.
//
// The cardinal and ordinal word tables live in words.go and are exported for
// reuse, but most callers only need Expand.
package numerals
