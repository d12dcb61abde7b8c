package validation

import (
	"strings"
	"testing"
)

type sample struct {
	Backend string `validate:"required,oneof=parakeet whisper openai auto"`
	Port    int    `validate:"gte=0,lte=65535"`
}

func TestValidateOK(t *testing.T) {
	if err := Validate(sample{Backend: "parakeet", Port: 8002}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidateFailures(t *testing.T) {
	err := Validate(sample{Backend: "mystery", Port: 99999})
	if err == nil {
		t.Fatal("expected validation error")
	}

	verrs, ok := err.(Errors)
	if !ok {
		t.Fatalf("expected Errors, got %T", err)
	}
	if len(verrs) != 2 {
		t.Fatalf("expected 2 field errors, got %d: %v", len(verrs), verrs)
	}
	if verrs[0].Rule != "oneof" {
		t.Errorf("first rule = %q, want oneof", verrs[0].Rule)
	}
	if !strings.Contains(err.Error(), "lte") {
		t.Errorf("error message missing lte rule: %s", err.Error())
	}
}

func TestValidateRequired(t *testing.T) {
	err := Validate(sample{Port: 80})
	if err == nil {
		t.Fatal("expected required failure for empty backend")
	}
}
