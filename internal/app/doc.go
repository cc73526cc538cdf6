// Package app provides the main application logic for generating and
// retrieving songs. It wires the API client to the generation service
// and drives each top-level command.
package app
