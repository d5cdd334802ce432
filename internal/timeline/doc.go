// Package timeline models per-speaker interval tiers and fills the silent
// gaps between speech intervals so every tier spans the full media duration.
package timeline
