// Package openai transcribes audio through the OpenAI audio API. The
// verbose-JSON response is exposed to the normalization pipeline as an
// object-like result rather than a decoded map.
package openai

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	goopenai "github.com/sashabaranov/go-openai"

	"github.com/skillsenselab/parakeet-gateway/logger"
	"github.com/skillsenselab/parakeet-gateway/transcription"
)

const (
	backendName    = "openai"
	defaultTimeout = 5 * time.Minute
)

// Provider transcribes audio via the OpenAI API.
type Provider struct {
	client  *goopenai.Client
	apiKey  string
	timeout time.Duration
	log     *logger.Logger
}

// New creates an openai Provider. Recognized options: "api_key" (string,
// falls back to being unavailable when empty), "base_url" (string, for
// API-compatible servers), and "timeout_seconds" (number).
func New(opts map[string]any) (*Provider, error) {
	apiKey, _ := opts["api_key"].(string)

	cfg := goopenai.DefaultConfig(apiKey)
	if v, ok := opts["base_url"].(string); ok && v != "" {
		cfg.BaseURL = v
	}

	timeout := defaultTimeout
	switch v := opts["timeout_seconds"].(type) {
	case int:
		timeout = time.Duration(v) * time.Second
	case float64:
		timeout = time.Duration(v * float64(time.Second))
	}

	return &Provider{
		client:  goopenai.NewClientWithConfig(cfg),
		apiKey:  apiKey,
		timeout: timeout,
		log:     logger.Get(backendName),
	}, nil
}

// Name returns the backend name.
func (p *Provider) Name() string { return backendName }

// IsAvailable reports whether an API key is configured.
func (p *Provider) IsAvailable(ctx context.Context) bool {
	return p.apiKey != ""
}

// Transcribe calls the audio transcription endpoint and wraps the verbose
// response as an object-like result. A 400 complaining about the language
// parameter maps to transcription.ErrLanguageHint.
func (p *Provider) Transcribe(ctx context.Context, req transcription.TranscriptionRequest) (any, error) {
	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	model := req.Model
	if model == "" {
		model = goopenai.Whisper1
	}

	resp, err := p.client.CreateTranscription(ctx, goopenai.AudioRequest{
		Model:    model,
		FilePath: req.AudioPath,
		Language: req.Language,
		Format:   goopenai.AudioResponseFormatVerboseJSON,
	})
	if err != nil {
		var apiErr *goopenai.APIError
		if req.Language != "" && errors.As(err, &apiErr) &&
			apiErr.HTTPStatusCode == 400 && strings.Contains(strings.ToLower(apiErr.Message), "language") {
			return nil, fmt.Errorf("%w: %s", transcription.ErrLanguageHint, apiErr.Message)
		}
		return nil, fmt.Errorf("openai: transcription request: %w", err)
	}

	return audioResult{resp: resp}, nil
}

// audioResult adapts the API response to the normalization pipeline's
// object-like protocol.
type audioResult struct {
	resp goopenai.AudioResponse
}

var _ transcription.Fielder = audioResult{}

func (r audioResult) Field(name string) (any, bool) {
	switch name {
	case "text":
		return r.resp.Text, true
	case "segments":
		if len(r.resp.Segments) == 0 {
			return nil, false
		}
		segs := make([]any, len(r.resp.Segments))
		for i, s := range r.resp.Segments {
			segs[i] = segmentResult{text: s.Text, start: s.Start, end: s.End}
		}
		return segs, true
	}
	return nil, false
}

type segmentResult struct {
	text       string
	start, end float64
}

var _ transcription.Fielder = segmentResult{}

func (r segmentResult) Field(name string) (any, bool) {
	switch name {
	case "text":
		return r.text, true
	case "start":
		return r.start, true
	case "end":
		return r.end, true
	}
	return nil, false
}

// Factory adapts New to the provider registry's factory signature.
func Factory(opts map[string]any) (transcription.Provider, error) {
	return New(opts)
}
