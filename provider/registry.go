package provider

import (
	"fmt"
	"sort"
	"sync"
)

// Registry holds named factories for one provider kind. Instances are
// constructed on demand and owned by the caller; the registry never retains
// them, so a backend's lifecycle (including Close) stays with whoever
// created it.
type Registry[T Provider] struct {
	mu        sync.RWMutex
	factories map[string]Factory[T]
}

// NewRegistry creates an empty Registry.
func NewRegistry[T Provider]() *Registry[T] {
	return &Registry[T]{factories: make(map[string]Factory[T])}
}

// RegisterFactory registers a factory under the given backend name,
// replacing any previous registration.
func (r *Registry[T]) RegisterFactory(name string, factory Factory[T]) {
	r.mu.Lock()
	r.factories[name] = factory
	r.mu.Unlock()
}

// Create builds a fresh provider instance from the named factory. Factory
// errors propagate unchanged so callers can inspect them.
func (r *Registry[T]) Create(name string, cfg map[string]any) (T, error) {
	r.mu.RLock()
	factory, ok := r.factories[name]
	r.mu.RUnlock()
	if !ok {
		var zero T
		return zero, fmt.Errorf("backend %q has no registered factory", name)
	}
	return factory(cfg)
}

// List returns the registered backend names in sorted order.
func (r *Registry[T]) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.factories))
	for name := range r.factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
