package suno

import "errors"

var (
	// ErrUnexpectedHTTPStatus indicates an unexpected HTTP status code was received.
	ErrUnexpectedHTTPStatus = errors.New("unexpected HTTP status")
	// ErrNoActiveSession indicates the identity endpoint returned no usable session identifier.
	ErrNoActiveSession = errors.New("identity endpoint returned no active session")
	// ErrSessionNotInitialized indicates a session-dependent call was made before Initialize succeeded.
	ErrSessionNotInitialized = errors.New("session not initialized")
)
