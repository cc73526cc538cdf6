// Package utils provides small shared helpers: randomized pauses,
// filename sanitizing, content-type checks, and slice transformations.
package utils
