// Package parakeet runs the parakeet-mlx model through a Python helper
// subprocess. The helper is embedded in the binary and extracted to a
// temporary file at construction; each transcription is one invocation that
// prints a JSON result on stdout.
package parakeet

import (
	"bytes"
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"time"

	"github.com/skillsenselab/parakeet-gateway/logger"
	"github.com/skillsenselab/parakeet-gateway/transcription"
)

//go:embed transcribe.py
var helperScript []byte

const (
	backendName    = "parakeet"
	defaultPython  = "python3"
	defaultTimeout = 5 * time.Minute
)

// Provider runs transcriptions via the embedded Python helper.
type Provider struct {
	pythonPath string
	scriptPath string
	timeout    time.Duration
	log        *logger.Logger
}

// New creates a parakeet Provider. Recognized options: "python_path" (string,
// default python3) and "timeout_seconds" (number).
func New(opts map[string]any) (*Provider, error) {
	pythonPath := defaultPython
	if v, ok := opts["python_path"].(string); ok && v != "" {
		pythonPath = v
	}

	timeout := defaultTimeout
	switch v := opts["timeout_seconds"].(type) {
	case int:
		timeout = time.Duration(v) * time.Second
	case float64:
		timeout = time.Duration(v * float64(time.Second))
	}

	script, err := os.CreateTemp("", "parakeet-helper-*.py")
	if err != nil {
		return nil, fmt.Errorf("parakeet: extract helper script: %w", err)
	}
	if _, err := script.Write(helperScript); err != nil {
		script.Close()
		os.Remove(script.Name())
		return nil, fmt.Errorf("parakeet: write helper script: %w", err)
	}
	if err := script.Close(); err != nil {
		os.Remove(script.Name())
		return nil, fmt.Errorf("parakeet: close helper script: %w", err)
	}

	return &Provider{
		pythonPath: pythonPath,
		scriptPath: script.Name(),
		timeout:    timeout,
		log:        logger.Get(backendName),
	}, nil
}

// Name returns the backend name.
func (p *Provider) Name() string { return backendName }

// IsAvailable reports whether the Python interpreter can be found.
func (p *Provider) IsAvailable(ctx context.Context) bool {
	_, err := exec.LookPath(p.pythonPath)
	return err == nil
}

// Close removes the extracted helper script.
func (p *Provider) Close() error {
	return os.Remove(p.scriptPath)
}

// Transcribe invokes the helper once and decodes its JSON output. The helper
// takes no language flag; passing one makes argparse reject the invocation,
// which is reported as transcription.ErrLanguageHint so callers can retry
// without the hint.
func (p *Provider) Transcribe(ctx context.Context, req transcription.TranscriptionRequest) (any, error) {
	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	args := []string{p.scriptPath, "--audio", req.AudioPath, "--model", req.Model}
	if req.Language != "" {
		args = append(args, "--language", req.Language)
	}

	cmd := exec.CommandContext(ctx, p.pythonPath, args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	start := time.Now()
	err := cmd.Run()
	if err != nil {
		msg := stderr.String()
		if strings.Contains(msg, "unrecognized arguments") && strings.Contains(msg, "--language") {
			return nil, fmt.Errorf("%w: %s", transcription.ErrLanguageHint, strings.TrimSpace(lastLine(msg)))
		}
		return nil, fmt.Errorf("parakeet: helper failed: %w: %s", err, strings.TrimSpace(lastLine(msg)))
	}

	p.log.Debug("Helper completed", logger.Fields(
		"audio", req.AudioPath,
		logger.FieldDuration, time.Since(start).Milliseconds(),
	))

	var raw map[string]any
	if err := json.Unmarshal(stdout.Bytes(), &raw); err != nil {
		return nil, fmt.Errorf("parakeet: decode helper output: %w", err)
	}
	return raw, nil
}

// lastLine returns the final non-empty line of s; argparse prints its usage
// message first and the actual error last.
func lastLine(s string) string {
	lines := strings.Split(strings.TrimSpace(s), "\n")
	for i := len(lines) - 1; i >= 0; i-- {
		if l := strings.TrimSpace(lines[i]); l != "" {
			return l
		}
	}
	return s
}

// Factory adapts New to the provider registry's factory signature.
func Factory(opts map[string]any) (transcription.Provider, error) {
	return New(opts)
}
