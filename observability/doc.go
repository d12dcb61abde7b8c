// Package observability wires OpenTelemetry tracing and metrics export over
// OTLP/HTTP, plus the gateway's own instruments (request counts and
// transcription latency).
package observability
