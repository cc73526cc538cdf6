// Package auth provides browser-based authentication.
// It opens a real browser window, lets the user log in to Suno,
// and captures the session cookies the API client needs.
package auth
