package http

import (
	"strings"
	"testing"
)

type hexProbe struct {
	ID string `validate:"required,hex32"`
}

type dateProbe struct {
	When string `validate:"ymd"`
}

func TestCustomValidator_Hex32(t *testing.T) {
	cv := NewValidator()

	if err := cv.Validate(&hexProbe{ID: strings.Repeat("a", 32)}); err != nil {
		t.Fatalf("valid 32-hex rejected: %v", err)
	}

	bad := []string{
		"",
		strings.Repeat("A", 32), // uppercase
		strings.Repeat("a", 31),
		strings.Repeat("z", 32),
	}
	for _, id := range bad {
		if err := cv.Validate(&hexProbe{ID: id}); err == nil {
			t.Fatalf("hex32 should reject %q", id)
		}
	}
}

func TestCustomValidator_YMD(t *testing.T) {
	cv := NewValidator()

	if err := cv.Validate(&dateProbe{When: "2026-01-31"}); err != nil {
		t.Fatalf("valid date rejected: %v", err)
	}
	// empty dates are legal on draft forms
	if err := cv.Validate(&dateProbe{}); err != nil {
		t.Fatalf("empty date rejected: %v", err)
	}
	for _, bad := range []string{"31-01-2026", "2026/01/31", "2026-13-01", "hoy"} {
		if err := cv.Validate(&dateProbe{When: bad}); err == nil {
			t.Fatalf("ymd should reject %q", bad)
		}
	}
}

func TestToFieldErrors(t *testing.T) {
	cv := NewValidator()

	err := cv.Validate(&hexProbe{ID: ""})
	if err == nil {
		t.Fatalf("expected validation error")
	}
	fes := ToFieldErrors(err)
	if !containsFieldMsg(fes, "ID", "required") {
		t.Fatalf("missing required message: %+v", fes)
	}

	err = cv.Validate(&hexProbe{ID: "nope"})
	fes = ToFieldErrors(err)
	if !containsFieldMsg(fes, "ID", "hex") {
		t.Fatalf("missing hex32 message: %+v", fes)
	}
}
