// Package song orchestrates song generation: it submits generation
// requests, polls the feed until songs reach a terminal state or a
// wall-clock deadline elapses, reports the credit balance, and saves
// finished songs to disk with embedded metadata.
package song
