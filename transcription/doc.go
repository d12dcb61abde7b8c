// Package transcription defines the transcription provider interface, the
// canonical transcript types, and the normalization pipeline that converts a
// backend's raw result into a stable {text, segments} shape.
//
// Backends return their result as an opaque value: a decoded JSON mapping, a
// typed object exposing named fields via Fielder, or any scalar. The pipeline
// (ExtractText, ExtractSegments, CleanText) accepts all of them and never
// fails.
//
// # Backends
//
//   - transcription/parakeet: parakeet-mlx via a Python helper process
//   - transcription/whisper: faster-whisper HTTP sidecar
//   - transcription/openai: OpenAI-compatible transcription API
package transcription
