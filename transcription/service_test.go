package transcription

import (
	"context"
	"errors"
	"testing"

	apperrors "github.com/skillsenselab/parakeet-gateway/errors"
)

// stubBackend is a scriptable Provider for service tests.
type stubBackend struct {
	name      string
	available bool
	calls     []TranscriptionRequest
	respond   func(req TranscriptionRequest) (any, error)
	closed    bool
}

func (s *stubBackend) Name() string                        { return s.name }
func (s *stubBackend) IsAvailable(ctx context.Context) bool { return s.available }
func (s *stubBackend) Close() error                        { s.closed = true; return nil }

func (s *stubBackend) Transcribe(ctx context.Context, req TranscriptionRequest) (any, error) {
	s.calls = append(s.calls, req)
	return s.respond(req)
}

func newStubService(t *testing.T, backend *stubBackend, cfg Config) *Service {
	t.Helper()
	registry := NewRegistry()
	registry.RegisterFactory(backend.name, func(opts map[string]any) (Provider, error) {
		return backend, nil
	})
	if cfg.Backend == "" {
		cfg.Backend = backend.name
	}
	return NewService(cfg, registry)
}

func TestTranscribeBeforeStart(t *testing.T) {
	backend := &stubBackend{name: "parakeet", available: true}
	svc := newStubService(t, backend, Config{})

	if svc.Loaded() {
		t.Fatal("service must not report loaded before Start")
	}

	_, err := svc.Transcribe(context.Background(), "/tmp/a.wav")
	appErr, ok := apperrors.AsAppError(err)
	if !ok {
		t.Fatalf("expected AppError, got %v", err)
	}
	if appErr.Code != apperrors.ErrCodeEngineNotLoaded {
		t.Errorf("code = %s, want ENGINE_NOT_LOADED", appErr.Code)
	}
	if appErr.Message != "Model not loaded" {
		t.Errorf("message = %q", appErr.Message)
	}
	if len(backend.calls) != 0 {
		t.Errorf("backend invoked before load: %d calls", len(backend.calls))
	}
}

func TestTranscribeSendsHint(t *testing.T) {
	backend := &stubBackend{
		name:      "parakeet",
		available: true,
		respond: func(req TranscriptionRequest) (any, error) {
			return map[string]any{"text": "hallo"}, nil
		},
	}
	svc := newStubService(t, backend, Config{Language: "de", Model: "m1"})
	if err := svc.Start(context.Background()); err != nil {
		t.Fatalf("Start: %v", err)
	}

	raw, err := svc.Transcribe(context.Background(), "/tmp/a.wav")
	if err != nil {
		t.Fatalf("Transcribe: %v", err)
	}
	if ExtractText(raw) != "hallo" {
		t.Errorf("raw = %v", raw)
	}

	if len(backend.calls) != 1 {
		t.Fatalf("calls = %d, want 1", len(backend.calls))
	}
	call := backend.calls[0]
	if call.Language != "de" || call.Model != "m1" || call.AudioPath != "/tmp/a.wav" {
		t.Errorf("request = %+v", call)
	}
}

func TestTranscribeRetriesOnceWithoutHint(t *testing.T) {
	backend := &stubBackend{
		name:      "parakeet",
		available: true,
		respond: func(req TranscriptionRequest) (any, error) {
			if req.Language != "" {
				return nil, ErrLanguageHint
			}
			return map[string]any{"text": "ohne hinweis"}, nil
		},
	}
	svc := newStubService(t, backend, Config{Language: "de"})
	if err := svc.Start(context.Background()); err != nil {
		t.Fatalf("Start: %v", err)
	}

	raw, err := svc.Transcribe(context.Background(), "/tmp/a.wav")
	if err != nil {
		t.Fatalf("Transcribe after retry: %v", err)
	}
	if ExtractText(raw) != "ohne hinweis" {
		t.Errorf("raw = %v", raw)
	}

	if len(backend.calls) != 2 {
		t.Fatalf("backend invoked %d times, want exactly 2", len(backend.calls))
	}
	if backend.calls[0].Language != "de" {
		t.Errorf("first call language = %q, want de", backend.calls[0].Language)
	}
	if backend.calls[1].Language != "" {
		t.Errorf("retry language = %q, want empty", backend.calls[1].Language)
	}
}

func TestTranscribeRetryFailureIsNotRetriedAgain(t *testing.T) {
	backend := &stubBackend{
		name:      "parakeet",
		available: true,
		respond: func(req TranscriptionRequest) (any, error) {
			return nil, ErrLanguageHint
		},
	}
	svc := newStubService(t, backend, Config{Language: "de"})
	if err := svc.Start(context.Background()); err != nil {
		t.Fatalf("Start: %v", err)
	}

	_, err := svc.Transcribe(context.Background(), "/tmp/a.wav")
	if err == nil {
		t.Fatal("expected failure when retry also fails")
	}
	if len(backend.calls) != 2 {
		t.Fatalf("backend invoked %d times, want exactly 2", len(backend.calls))
	}

	appErr, ok := apperrors.AsAppError(err)
	if !ok || appErr.Code != apperrors.ErrCodeTranscriptionFailed {
		t.Errorf("expected TRANSCRIPTION_FAILED, got %v", err)
	}
}

func TestTranscribeOtherErrorsAreNotRetried(t *testing.T) {
	boom := errors.New("backend exploded")
	backend := &stubBackend{
		name:      "parakeet",
		available: true,
		respond: func(req TranscriptionRequest) (any, error) {
			return nil, boom
		},
	}
	svc := newStubService(t, backend, Config{Language: "de"})
	if err := svc.Start(context.Background()); err != nil {
		t.Fatalf("Start: %v", err)
	}

	_, err := svc.Transcribe(context.Background(), "/tmp/a.wav")
	if err == nil {
		t.Fatal("expected error")
	}
	if len(backend.calls) != 1 {
		t.Fatalf("backend invoked %d times, want exactly 1", len(backend.calls))
	}
	if !errors.Is(err, boom) {
		t.Errorf("cause not preserved: %v", err)
	}
}

func TestAutoBackendPicksAvailable(t *testing.T) {
	down := &stubBackend{name: "aaa-down", available: false}
	up := &stubBackend{
		name:      "bbb-up",
		available: true,
		respond: func(req TranscriptionRequest) (any, error) {
			return map[string]any{"text": "x"}, nil
		},
	}

	registry := NewRegistry()
	registry.RegisterFactory(down.name, func(opts map[string]any) (Provider, error) { return down, nil })
	registry.RegisterFactory(up.name, func(opts map[string]any) (Provider, error) { return up, nil })

	svc := NewService(Config{Backend: BackendAuto}, registry)
	if err := svc.Start(context.Background()); err != nil {
		t.Fatalf("Start: %v", err)
	}

	backend, ok := svc.Backend()
	if !ok || backend.Name() != "bbb-up" {
		t.Errorf("selected backend = %v", backend)
	}

	// Only the unselected candidate releases its resources.
	if !down.closed {
		t.Error("unselected candidate not closed")
	}
	if up.closed {
		t.Error("selected backend must stay open")
	}
}

func TestAutoBackendClosesAllOnSelectionFailure(t *testing.T) {
	a := &stubBackend{name: "aaa", available: false}
	b := &stubBackend{name: "bbb", available: false}

	registry := NewRegistry()
	registry.RegisterFactory(a.name, func(opts map[string]any) (Provider, error) { return a, nil })
	registry.RegisterFactory(b.name, func(opts map[string]any) (Provider, error) { return b, nil })

	svc := NewService(Config{Backend: BackendAuto}, registry)
	if err := svc.Start(context.Background()); err == nil {
		t.Fatal("expected Start to fail with no available backend")
	}
	if !a.closed || !b.closed {
		t.Error("candidates not closed after failed selection")
	}
}

func TestStopClosesBackend(t *testing.T) {
	backend := &stubBackend{name: "parakeet", available: true}
	svc := newStubService(t, backend, Config{})
	if err := svc.Start(context.Background()); err != nil {
		t.Fatalf("Start: %v", err)
	}

	if err := svc.Stop(context.Background()); err != nil {
		t.Fatalf("Stop: %v", err)
	}
	if !backend.closed {
		t.Error("backend not closed on Stop")
	}
	if svc.Loaded() {
		t.Error("service still loaded after Stop")
	}
}
