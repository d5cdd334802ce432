// Package ffprobe provides a typed wrapper around ffprobe JSON output.
//
// The converter only needs the container duration, but the full format and
// stream metadata is decoded so callers can sanity-check inputs (for
// example, refusing files with no audio stream).
//
// Primary entry points:
//   - Inspect: executes ffprobe and returns the parsed Result
//   - Duration: Inspect plus validation that a usable duration exists
package ffprobe
