package transcription

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/skillsenselab/parakeet-gateway/component"
	apperrors "github.com/skillsenselab/parakeet-gateway/errors"
	"github.com/skillsenselab/parakeet-gateway/logger"
	"github.com/skillsenselab/parakeet-gateway/provider"
)

const componentName = "transcription"

// Ensure *Service satisfies component.Component at compile time.
var _ component.Component = (*Service)(nil)

// Service owns the currently loaded transcription backend. The backend
// reference is nil until Start completes; requests arriving earlier observe
// the not-loaded condition instead of blocking.
type Service struct {
	mu       sync.RWMutex
	cfg      Config
	registry *provider.Registry[Provider]
	active   Provider
	log      *logger.Logger
}

// NewService creates a Service that loads its backend from the registry on
// Start. Register backend factories before calling Start.
func NewService(cfg Config, registry *provider.Registry[Provider]) *Service {
	cfg.ApplyDefaults()
	return &Service{
		cfg:      cfg,
		registry: registry,
		log:      logger.Get(componentName),
	}
}

// Name returns the component name used for registration.
func (s *Service) Name() string { return componentName }

// Start constructs the configured backend and makes it visible to requests.
func (s *Service) Start(ctx context.Context) error {
	opts := make(map[string]any, len(s.cfg.Options)+2)
	for k, v := range s.cfg.Options {
		opts[k] = v
	}
	opts["model"] = s.cfg.Model
	opts["language"] = s.cfg.Language

	backend, err := s.loadBackend(ctx, opts)
	if err != nil {
		return fmt.Errorf("load transcription backend %q: %w", s.cfg.Backend, err)
	}

	if !backend.IsAvailable(ctx) {
		s.log.Warn("Backend reports unavailable at startup", map[string]interface{}{
			"backend": backend.Name(),
			"model":   s.cfg.Model,
		})
	}

	s.mu.Lock()
	s.active = backend
	s.mu.Unlock()

	s.log.Info("Transcription backend loaded", map[string]interface{}{
		"backend":  backend.Name(),
		"model":    s.cfg.Model,
		"language": s.cfg.Language,
	})
	return nil
}

// loadBackend constructs the configured backend. The "auto" backend
// instantiates every registered factory, picks the first available one, and
// closes the rest so candidates holding resources (temp files, connections)
// do not leak for the process lifetime.
func (s *Service) loadBackend(ctx context.Context, opts map[string]any) (Provider, error) {
	if s.cfg.Backend != BackendAuto {
		return s.registry.Create(s.cfg.Backend, opts)
	}

	candidates := make(map[string]Provider)
	for _, name := range s.registry.List() {
		backend, err := s.registry.Create(name, opts)
		if err != nil {
			s.log.Warn("Skipping backend", map[string]interface{}{
				"backend": name,
				"error":   err.Error(),
			})
			continue
		}
		candidates[name] = backend
	}

	selector := &provider.HealthCheckSelector[Provider]{}
	selected, err := selector.Select(ctx, candidates)
	for name, candidate := range candidates {
		if err == nil && candidate == selected {
			continue
		}
		s.closeBackend(name, candidate)
	}
	return selected, err
}

func (s *Service) closeBackend(name string, backend Provider) {
	closer, ok := backend.(io.Closer)
	if !ok {
		return
	}
	if err := closer.Close(); err != nil {
		s.log.Debug("Closing unselected backend failed", map[string]interface{}{
			"backend": name,
			"error":   err.Error(),
		})
	}
}

// Stop releases the backend and clears the loaded reference.
func (s *Service) Stop(ctx context.Context) error {
	s.mu.Lock()
	backend := s.active
	s.active = nil
	s.mu.Unlock()

	if closer, ok := backend.(io.Closer); ok {
		return closer.Close()
	}
	return nil
}

// Health reports whether a backend is loaded and answering.
func (s *Service) Health(ctx context.Context) component.Health {
	backend, ok := s.Backend()
	if !ok {
		return component.Health{
			Name:    componentName,
			Status:  component.StatusUnhealthy,
			Message: "no backend loaded",
		}
	}
	if !backend.IsAvailable(ctx) {
		return component.Health{
			Name:    componentName,
			Status:  component.StatusDegraded,
			Message: fmt.Sprintf("backend %s not responding", backend.Name()),
		}
	}
	return component.Health{
		Name:    componentName,
		Status:  component.StatusHealthy,
		Message: backend.Name(),
	}
}

// Backend returns the loaded provider, or false when none is loaded yet.
func (s *Service) Backend() (Provider, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.active, s.active != nil
}

// Loaded reports whether a backend is currently loaded.
func (s *Service) Loaded() bool {
	_, ok := s.Backend()
	return ok
}

// Transcribe invokes the loaded backend with the configured language hint.
// When the backend rejects the hint (ErrLanguageHint) the call is retried
// exactly once without it; any other failure propagates unchanged as a
// transcription failure. The returned raw result is backend-specific.
func (s *Service) Transcribe(ctx context.Context, audioPath string) (any, error) {
	backend, ok := s.Backend()
	if !ok {
		return nil, apperrors.EngineNotLoaded()
	}

	req := TranscriptionRequest{
		AudioPath: audioPath,
		Language:  s.cfg.Language,
		Model:     s.cfg.Model,
	}

	raw, err := backend.Transcribe(ctx, req)
	if err != nil && req.Language != "" && errors.Is(err, ErrLanguageHint) {
		s.log.Debug("Backend rejected language hint, retrying without it", map[string]interface{}{
			"backend": backend.Name(),
		})
		req.Language = ""
		raw, err = backend.Transcribe(ctx, req)
	}
	if err != nil {
		s.log.Warn("Backend transcription failed", logger.ErrorFields("transcribe", err))
		return nil, apperrors.TranscriptionFailed(err)
	}
	return raw, nil
}
