// Package server provides the gateway's HTTP server: a Gin engine mounted on
// a ServeMux behind h2c, with lifecycle management, health endpoints, and a
// configurable middleware stack.
//
// # Middleware
//
// Built-in middleware (server/middleware):
//
//   - Recovery: panic recovery with structured logging
//   - RequestID: request ID generation and propagation
//   - CORS: cross-origin resource sharing
//   - NormalizePath: collapses duplicate slashes in request paths
//   - BodySizeLimit: request body size limits
//   - RequestLogger: request logging with duration tracking
//   - Auth: bearer-token authentication
//
// # Endpoints
//
// Built-in endpoints (server/endpoint):
//
//   - /health: component health aggregation
//   - /info: build and version information
//   - /metrics: runtime memory and goroutine statistics
package server
