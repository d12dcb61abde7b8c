// Package component defines the lifecycle interface implemented by the
// gateway's long-lived parts (transcription service, HTTP server,
// observability) and a registry that starts them in dependency order and
// stops them in reverse.
package component
