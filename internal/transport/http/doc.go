// Package http provides RoundTripper decorators for the outgoing HTTP pipeline:
// a header injector that attaches the browser-style session cookie and a
// User-Agent, a token injector that reads the current bearer token from an
// accessor immediately before each send, and a debug logging transport.
package http
