// Package whisper talks to a faster-whisper HTTP sidecar. The sidecar
// accepts multipart uploads on /transcribe and returns a JSON result whose
// shape follows the whisper segment format.
package whisper

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/skillsenselab/parakeet-gateway/logger"
	"github.com/skillsenselab/parakeet-gateway/transcription"
)

const (
	backendName    = "whisper"
	defaultBaseURL = "http://localhost:8003"
	defaultTimeout = 5 * time.Minute
)

// Provider transcribes audio via a faster-whisper sidecar service.
type Provider struct {
	baseURL string
	client  *http.Client
	log     *logger.Logger
}

// New creates a whisper Provider. Recognized options: "base_url" (string)
// and "timeout_seconds" (number).
func New(opts map[string]any) (*Provider, error) {
	baseURL := defaultBaseURL
	if v, ok := opts["base_url"].(string); ok && v != "" {
		baseURL = v
	}

	timeout := defaultTimeout
	switch v := opts["timeout_seconds"].(type) {
	case int:
		timeout = time.Duration(v) * time.Second
	case float64:
		timeout = time.Duration(v * float64(time.Second))
	}

	return &Provider{
		baseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
		log:     logger.Get(backendName),
	}, nil
}

// Name returns the backend name.
func (p *Provider) Name() string { return backendName }

// IsAvailable probes the sidecar's health endpoint.
func (p *Provider) IsAvailable(ctx context.Context) bool {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.baseURL+"/health", nil)
	if err != nil {
		return false
	}
	resp, err := p.client.Do(req)
	if err != nil {
		return false
	}
	defer resp.Body.Close()
	return resp.StatusCode == http.StatusOK
}

// Transcribe uploads the audio file and decodes the sidecar's JSON result.
// A 422 response means the sidecar rejected a request field; when a language
// hint was sent this maps to transcription.ErrLanguageHint so the caller can
// retry without it.
func (p *Provider) Transcribe(ctx context.Context, req transcription.TranscriptionRequest) (any, error) {
	file, err := os.Open(req.AudioPath)
	if err != nil {
		return nil, fmt.Errorf("whisper: open audio: %w", err)
	}
	defer file.Close()

	pr, pw := io.Pipe()
	writer := multipart.NewWriter(pw)

	go func() {
		var werr error
		defer func() { pw.CloseWithError(werr) }()

		part, werr := writer.CreateFormFile("file", filepath.Base(req.AudioPath))
		if werr != nil {
			return
		}
		if _, werr = io.Copy(part, file); werr != nil {
			return
		}
		if req.Model != "" {
			if werr = writer.WriteField("model", req.Model); werr != nil {
				return
			}
		}
		if req.Language != "" {
			if werr = writer.WriteField("language", req.Language); werr != nil {
				return
			}
		}
		werr = writer.Close()
	}()

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, p.baseURL+"/transcribe", pr)
	if err != nil {
		return nil, fmt.Errorf("whisper: build request: %w", err)
	}
	httpReq.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := p.client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("whisper: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnprocessableEntity && req.Language != "" {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, fmt.Errorf("%w: sidecar returned 422: %s", transcription.ErrLanguageHint, body)
	}
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, fmt.Errorf("whisper: sidecar returned %d: %s", resp.StatusCode, body)
	}

	var raw map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, fmt.Errorf("whisper: decode response: %w", err)
	}
	return raw, nil
}

// Factory adapts New to the provider registry's factory signature.
func Factory(opts map[string]any) (transcription.Provider, error) {
	return New(opts)
}
