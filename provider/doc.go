// Package provider defines the pluggable-backend pattern shared by the
// gateway's transcription backends: a minimal Provider interface, named
// factories, a generic registry, and selection strategies for choosing
// among several registered backends.
package provider
