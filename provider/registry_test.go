package provider

import (
	"context"
	"errors"
	"testing"
)

type fakeProvider struct {
	name      string
	available bool
}

func (f *fakeProvider) Name() string                         { return f.name }
func (f *fakeProvider) IsAvailable(ctx context.Context) bool { return f.available }

func TestRegistryCreate(t *testing.T) {
	r := NewRegistry[*fakeProvider]()
	r.RegisterFactory("a", func(cfg map[string]any) (*fakeProvider, error) {
		name, _ := cfg["name"].(string)
		return &fakeProvider{name: name}, nil
	})

	p, err := r.Create("a", map[string]any{"name": "alpha"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if p.Name() != "alpha" {
		t.Errorf("name = %q", p.Name())
	}

	if _, err := r.Create("missing", nil); err == nil {
		t.Error("expected error for unregistered factory")
	}
}

func TestRegistryCreatePropagatesFactoryError(t *testing.T) {
	r := NewRegistry[*fakeProvider]()
	boom := errors.New("no credentials")
	r.RegisterFactory("b", func(cfg map[string]any) (*fakeProvider, error) {
		return nil, boom
	})

	if _, err := r.Create("b", nil); !errors.Is(err, boom) {
		t.Errorf("err = %v, want factory error", err)
	}
}

func TestRegistryListSorted(t *testing.T) {
	r := NewRegistry[*fakeProvider]()
	r.RegisterFactory("zeta", func(cfg map[string]any) (*fakeProvider, error) { return nil, nil })
	r.RegisterFactory("alpha", func(cfg map[string]any) (*fakeProvider, error) { return nil, nil })

	names := r.List()
	if len(names) != 2 || names[0] != "alpha" || names[1] != "zeta" {
		t.Errorf("List = %v, want sorted names", names)
	}
}

func TestRegistryCreateReturnsFreshInstances(t *testing.T) {
	r := NewRegistry[*fakeProvider]()
	r.RegisterFactory("a", func(cfg map[string]any) (*fakeProvider, error) {
		return &fakeProvider{name: "a"}, nil
	})

	first, err := r.Create("a", nil)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	second, err := r.Create("a", nil)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if first == second {
		t.Error("Create returned the same instance twice; registry must not cache")
	}
}
