package transcription

import (
	"context"
	"errors"

	"github.com/skillsenselab/parakeet-gateway/provider"
)

// ErrLanguageHint reports that a backend does not accept a language hint.
// Callers recover by retrying the call exactly once without the hint; the
// error is never surfaced to API clients.
var ErrLanguageHint = errors.New("transcription: backend does not accept a language hint")

// Provider is the interface that transcription backends must implement.
type Provider interface {
	provider.Provider // embeds Name() and IsAvailable()

	// Transcribe runs speech-to-text on the referenced audio file and returns
	// the backend's raw result. The result shape is backend-specific; use the
	// package-level normalization functions to obtain a canonical Transcript.
	Transcribe(ctx context.Context, req TranscriptionRequest) (any, error)
}

// TranscriptionRequest holds parameters for a transcription call.
type TranscriptionRequest struct {
	// AudioPath is the path to the audio file to transcribe.
	AudioPath string `json:"audio_path"`
	// Language is a hint for the expected language (e.g. "de"). Backends that
	// cannot honor it return ErrLanguageHint when it is set.
	Language string `json:"language,omitempty"`
	// Model is the transcription model to use.
	Model string `json:"model,omitempty"`
}

// NewRegistry creates a new provider registry for transcription backends.
func NewRegistry() *provider.Registry[Provider] {
	return provider.NewRegistry[Provider]()
}
