// Package errors provides unified error handling for the gateway.
// It implements structured error types with machine-readable codes,
// HTTP status mapping, and a stable JSON response envelope.
package errors
