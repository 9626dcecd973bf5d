package render

import (
	"errors"
	"fmt"
	"testing"
)

func TestUnsupportedFeatureError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      UnsupportedFeatureError
		expected string
	}{
		{
			name: "without hint",
			err: UnsupportedFeatureError{
				Feature: "FOR UPDATE",
				Dialect: "sqlite",
			},
			expected: "sqlite: FOR UPDATE is not supported",
		},
		{
			name: "with hint",
			err: UnsupportedFeatureError{
				Feature: "RETURNING",
				Dialect: "mysql",
				Hint:    "use a separate SELECT query",
			},
			expected: "mysql: RETURNING is not supported: use a separate SELECT query",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.expected {
				t.Errorf("Error() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestNewUnsupportedFeatureError(t *testing.T) {
	t.Run("without hint", func(t *testing.T) {
		err := NewUnsupportedFeatureError("mysql", "RETURNING")
		var ufErr UnsupportedFeatureError
		if !errors.As(err, &ufErr) {
			t.Fatal("expected UnsupportedFeatureError")
		}
		if ufErr.Dialect != "mysql" {
			t.Errorf("Dialect = %q, want %q", ufErr.Dialect, "mysql")
		}
		if ufErr.Feature != "RETURNING" {
			t.Errorf("Feature = %q, want %q", ufErr.Feature, "RETURNING")
		}
		if ufErr.Hint != "" {
			t.Errorf("Hint = %q, want empty", ufErr.Hint)
		}
	})

	t.Run("with hint", func(t *testing.T) {
		err := NewUnsupportedFeatureError("sqlserver", "RETURNING", "use OUTPUT")
		var ufErr UnsupportedFeatureError
		if !errors.As(err, &ufErr) {
			t.Fatal("expected UnsupportedFeatureError")
		}
		if ufErr.Hint != "use OUTPUT" {
			t.Errorf("Hint = %q, want %q", ufErr.Hint, "use OUTPUT")
		}
	})
}

func TestSentinels(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		sentinel error
	}{
		{"malformed", Malformedf("columns and values length mismatch: %d != %d", 2, 1), ErrMalformed},
		{"unsupported", NewUnsupportedFeatureError("mysql", "RETURNING"), ErrUnsupportedFeature},
		{"identifier", InvalidIdentifierError{Name: "", Reason: "empty"}, ErrInvalidIdentifier},
		{"wrapped", fmt.Errorf("render insert: %w", Malformedf("no rows")), ErrMalformed},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !errors.Is(tt.err, tt.sentinel) {
				t.Errorf("errors.Is(%v, %v) = false", tt.err, tt.sentinel)
			}
		})
	}

	if errors.Is(Malformedf("x"), ErrUnsupportedFeature) {
		t.Error("malformed error must not match ErrUnsupportedFeature")
	}
}

func TestMalformedError(t *testing.T) {
	err := Malformedf("columns and values length mismatch: %d != %d", 3, 2)
	want := "malformed statement: columns and values length mismatch: 3 != 2"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}
