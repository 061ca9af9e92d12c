package program

import (
	"errors"
	"strings"
	"testing"
)

func TestRender_ReplacesEveryPlaceholder(t *testing.T) {
	got, err := Render("a={A} b={B_2}", Fragments{"A": "1", "B_2": "two"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "a=1 b=two" {
		t.Fatalf("got %q", got)
	}
}

func TestRender_FailsOnUnreplacedPlaceholder(t *testing.T) {
	_, err := Render("cmp #{NUM_CODES} {MISSING}", Fragments{"NUM_CODES": "2"})
	if !errors.Is(err, ErrUnreplacedPlaceholder) {
		t.Fatalf("expected ErrUnreplacedPlaceholder, got %v", err)
	}
	if !strings.Contains(err.Error(), "MISSING") {
		t.Fatalf("error should name the placeholder: %v", err)
	}
}

func TestRender_FailsOnUnusedFragment(t *testing.T) {
	_, err := Render("{A}", Fragments{"A": "1", "B": "2"})
	if !errors.Is(err, ErrUnusedFragment) {
		t.Fatalf("expected ErrUnusedFragment, got %v", err)
	}
}

func TestRender_FailsOnDuplicatePlaceholder(t *testing.T) {
	_, err := Render("{A} {A}", Fragments{"A": "1"})
	if !errors.Is(err, ErrDuplicatePlaceholder) {
		t.Fatalf("expected ErrDuplicatePlaceholder, got %v", err)
	}
}

func TestRender_DoesNotRescanFragments(t *testing.T) {
	got, err := Render("{A}|{B}", Fragments{"A": "{B}", "B": "x"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "{B}|x" {
		t.Fatalf("got %q", got)
	}
}

func TestRender_IgnoresNonPlaceholderBraces(t *testing.T) {
	got, err := Render("{lower} {A}", Fragments{"A": "1"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "{lower} 1" {
		t.Fatalf("got %q", got)
	}
}
