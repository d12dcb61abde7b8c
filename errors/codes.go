package errors

// ErrorCode represents a machine-readable error code.
type ErrorCode string

// Input errors
const (
	// ErrCodeInvalidInput indicates the request contained invalid input.
	ErrCodeInvalidInput ErrorCode = "INVALID_INPUT"
	// ErrCodeMissingField indicates a required field was missing.
	ErrCodeMissingField ErrorCode = "MISSING_FIELD"
)

// Transcription errors
const (
	// ErrCodeEngineNotLoaded indicates no transcription backend is loaded.
	ErrCodeEngineNotLoaded ErrorCode = "ENGINE_NOT_LOADED"
	// ErrCodeTranscriptionFailed indicates the backend failed to transcribe.
	ErrCodeTranscriptionFailed ErrorCode = "TRANSCRIPTION_FAILED"
)

// Internal errors
const (
	// ErrCodeInternal indicates an unexpected internal error.
	ErrCodeInternal ErrorCode = "INTERNAL_ERROR"
	// ErrCodeUnauthorized indicates missing or invalid credentials.
	ErrCodeUnauthorized ErrorCode = "UNAUTHORIZED"
)

// retryableCodes marks codes whose operations may be retried by the client.
var retryableCodes = map[ErrorCode]bool{
	ErrCodeEngineNotLoaded: true,
}

// IsRetryableCode reports whether operations failing with code may be retried.
func IsRetryableCode(code ErrorCode) bool {
	return retryableCodes[code]
}
