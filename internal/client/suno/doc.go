// Package suno implements the HTTP client for the Suno generative-audio API:
// the Clerk session handshake and bearer-token renewal, generation
// submissions, feed fetches, billing info, and media downloads.
package suno
