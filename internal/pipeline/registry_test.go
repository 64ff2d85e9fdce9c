package pipeline

import (
	"errors"
	"testing"

	"github.com/alao-ohio/roster/internal/core/domain"
	"github.com/alao-ohio/roster/internal/core/ports/driven"
)

func TestNewRegistry(t *testing.T) {
	r := NewRegistry()
	if r == nil {
		t.Fatal("NewRegistry returned nil")
	}
	if len(r.builders) != 0 {
		t.Errorf("expected empty builders, got %d", len(r.builders))
	}
}

func TestRegistry_Register(t *testing.T) {
	r := NewRegistry()

	r.Register("upper", func(_ map[string]any) (driven.FieldNormaliser, error) {
		return &upperNormaliser{}, nil
	})

	if !r.Has("upper") {
		t.Error("expected 'upper' to be registered")
	}
	if r.Has("lower") {
		t.Error("did not expect 'lower' to be registered")
	}
}

func TestRegistry_Build_PassesConfig(t *testing.T) {
	r := NewRegistry()
	var got map[string]any
	r.Register("upper", func(cfg map[string]any) (driven.FieldNormaliser, error) {
		got = cfg
		return &upperNormaliser{}, nil
	})

	n, err := r.Build("upper", map[string]any{"k": "v"})
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	if n.Name() != "upper" {
		t.Errorf("unexpected normaliser %q", n.Name())
	}
	if got["k"] != "v" {
		t.Errorf("config not passed through: %v", got)
	}
}

func TestRegistry_Build_Unknown(t *testing.T) {
	_, err := NewRegistry().Build("nope", nil)
	if !errors.Is(err, domain.ErrUnknownRule) {
		t.Fatalf("expected ErrUnknownRule, got %v", err)
	}
}

func TestRegistry_Names_Sorted(t *testing.T) {
	names := DefaultRegistry().Names()
	want := []string{"address", "city", "country", "name", "organization", "phone", "postal", "state"}
	if len(names) != len(want) {
		t.Fatalf("expected %d names, got %v", len(want), names)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("names[%d] = %q, want %q", i, names[i], want[i])
		}
	}
}
