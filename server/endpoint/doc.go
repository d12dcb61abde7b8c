// Package endpoint provides the gateway's built-in operational endpoints:
// health aggregation, build information, and runtime metrics.
package endpoint
