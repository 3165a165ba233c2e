package errors

import (
	"fmt"
	"testing"
)

func TestFacetError(t *testing.T) {
	// Test basic error creation
	err := New(ErrCodePanelNotFound, "panel not found")
	if err.Code != ErrCodePanelNotFound {
		t.Errorf("expected code %s, got %s", ErrCodePanelNotFound, err.Code)
	}

	// Test error wrapping
	cause := fmt.Errorf("underlying error")
	wrapped := Wrap(cause, ErrCodeWorldInvalid, "parse failed")

	if wrapped.Unwrap() != cause {
		t.Error("Unwrap should return the cause")
	}

	// Test Is function
	if !Is(wrapped, ErrCodeWorldInvalid) {
		t.Error("Is should return true for matching code")
	}

	if Is(wrapped, ErrCodePanelNotFound) {
		t.Error("Is should return false for non-matching code")
	}

	// Test WithDetail
	detailed := err.WithDetail("panel", 3).WithDetail("context", "game:g1|edit")
	if detailed.Details["context"] != "game:g1|edit" {
		t.Error("WithDetail should add details")
	}
}

func TestErrorConstructors(t *testing.T) {
	// Test PanelNotFound
	err := PanelNotFound(7)
	if err.Code != ErrCodePanelNotFound {
		t.Errorf("expected code %s, got %s", ErrCodePanelNotFound, err.Code)
	}
	if err.Details["panel"] != 7 {
		t.Error("PanelNotFound should include panel detail")
	}

	// Test WorldNotFound
	err = WorldNotFound("world.yml")
	if err.Code != ErrCodeWorldNotFound {
		t.Errorf("expected code %s, got %s", ErrCodeWorldNotFound, err.Code)
	}
	if err.Details["path"] != "world.yml" {
		t.Error("WorldNotFound should include path detail")
	}

	// Test NodeNotFound
	err = NodeNotFound("asset:m1")
	if !Is(err, ErrCodeNodeNotFound) {
		t.Error("NodeNotFound should carry its code")
	}
}
