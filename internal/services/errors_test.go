package services

import (
	"errors"
	"testing"
)

func TestWrapPreservesMarker(t *testing.T) {
	err := Wrap(ErrInputFormat, "loader", "parse srt", "no blocks found", nil)
	if !errors.Is(err, ErrInputFormat) {
		t.Fatalf("expected ErrInputFormat, got %v", err)
	}
	want := "input format error: loader: parse srt: no blocks found"
	if err.Error() != want {
		t.Errorf("Wrap() = %q, want %q", err.Error(), want)
	}
}

func TestWrapNestedError(t *testing.T) {
	inner := errors.New("unexpected token")
	err := Wrap(ErrInputFormat, "loader", "decode json", "", inner)
	if !errors.Is(err, inner) {
		t.Errorf("wrapped error should preserve the inner error")
	}
}

func TestWrapNilMarkerDefaultsToValidation(t *testing.T) {
	err := Wrap(nil, "stage", "", "", nil)
	if !errors.Is(err, ErrValidation) {
		t.Errorf("nil marker should default to ErrValidation, got %v", err)
	}
}

func TestIsFatal(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"input format", Wrap(ErrInputFormat, "loader", "", "", nil), true},
		{"empty input", Wrap(ErrEmptyInput, "loader", "", "", nil), true},
		{"configuration", Wrap(ErrConfiguration, "config", "", "", nil), true},
		{"validation", Wrap(ErrValidation, "config", "", "", nil), false},
		{"external tool", Wrap(ErrExternalTool, "probe", "", "", nil), false},
		{"plain", errors.New("boom"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsFatal(tt.err); got != tt.want {
				t.Errorf("IsFatal() = %v, want %v", got, tt.want)
			}
		})
	}
}
