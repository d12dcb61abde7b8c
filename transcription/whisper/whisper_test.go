package whisper

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/skillsenselab/parakeet-gateway/transcription"
)

func audioFixture(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "a.wav")
	if err := os.WriteFile(path, []byte("RIFF0000WAVE"), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	return path
}

func TestTranscribe(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/transcribe" {
			http.NotFound(w, r)
			return
		}
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		if r.FormValue("language") != "de" {
			http.Error(w, "missing language", http.StatusBadRequest)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"text": "guten tag", "segments": [{"text": "guten tag", "start": 0.0, "end": 0.9}], "language": "de"}`))
	}))
	defer srv.Close()

	p, err := New(map[string]any{"base_url": srv.URL})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	raw, err := p.Transcribe(context.Background(), transcription.TranscriptionRequest{
		AudioPath: audioFixture(t),
		Language:  "de",
		Model:     "large-v3",
	})
	if err != nil {
		t.Fatalf("Transcribe: %v", err)
	}

	if got := transcription.ExtractText(raw); got != "guten tag" {
		t.Errorf("ExtractText = %q", got)
	}
	segs := transcription.ExtractSegments(raw)
	if len(segs) != 1 || segs[0].Text != "guten tag" {
		t.Errorf("segments = %+v", segs)
	}
}

func TestTranscribeLanguageRejected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"detail": "unexpected field: language"}`, http.StatusUnprocessableEntity)
	}))
	defer srv.Close()

	p, _ := New(map[string]any{"base_url": srv.URL})
	_, err := p.Transcribe(context.Background(), transcription.TranscriptionRequest{
		AudioPath: audioFixture(t),
		Language:  "de",
	})
	if !errors.Is(err, transcription.ErrLanguageHint) {
		t.Fatalf("expected ErrLanguageHint, got %v", err)
	}
}

func TestTranscribe422WithoutHintIsFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "bad upload", http.StatusUnprocessableEntity)
	}))
	defer srv.Close()

	p, _ := New(map[string]any{"base_url": srv.URL})
	_, err := p.Transcribe(context.Background(), transcription.TranscriptionRequest{
		AudioPath: audioFixture(t),
	})
	if err == nil {
		t.Fatal("expected error")
	}
	if errors.Is(err, transcription.ErrLanguageHint) {
		t.Fatal("422 without a hint must not map to ErrLanguageHint")
	}
}

func TestIsAvailable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/health" {
			w.WriteHeader(http.StatusOK)
			return
		}
		http.NotFound(w, r)
	}))
	defer srv.Close()

	p, _ := New(map[string]any{"base_url": srv.URL})
	if !p.IsAvailable(context.Background()) {
		t.Error("expected available")
	}

	srv.Close()
	if p.IsAvailable(context.Background()) {
		t.Error("expected unavailable after server close")
	}
}
