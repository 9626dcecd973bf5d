package render

import (
	"errors"
	"fmt"
)

// Sentinels matched with errors.Is.
var (
	ErrMalformed          = errors.New("malformed statement")
	ErrUnsupportedFeature = errors.New("unsupported feature")
	ErrInvalidIdentifier  = errors.New("invalid identifier")
)

// MalformedError indicates a statement that is structurally invalid in every
// dialect, such as a row whose length differs from the column list.
type MalformedError struct {
	Reason string
}

func (e MalformedError) Error() string {
	return "malformed statement: " + e.Reason
}

func (e MalformedError) Is(target error) bool { return target == ErrMalformed }

// Malformedf creates a MalformedError with a formatted reason.
func Malformedf(format string, args ...any) error {
	return MalformedError{Reason: fmt.Sprintf(format, args...)}
}

// UnsupportedFeatureError indicates a feature not supported by the dialect.
type UnsupportedFeatureError struct {
	Feature string
	Dialect string
	Hint    string
}

func (e UnsupportedFeatureError) Error() string {
	if e.Hint != "" {
		return fmt.Sprintf("%s: %s is not supported: %s", e.Dialect, e.Feature, e.Hint)
	}
	return fmt.Sprintf("%s: %s is not supported", e.Dialect, e.Feature)
}

func (e UnsupportedFeatureError) Is(target error) bool { return target == ErrUnsupportedFeature }

// NewUnsupportedFeatureError creates a new unsupported feature error.
func NewUnsupportedFeatureError(dialect, feature string, hint ...string) error {
	err := UnsupportedFeatureError{Feature: feature, Dialect: dialect}
	if len(hint) > 0 {
		err.Hint = hint[0]
	}
	return err
}

// InvalidIdentifierError indicates an identifier that cannot be quoted safely.
type InvalidIdentifierError struct {
	Name   string
	Reason string
}

func (e InvalidIdentifierError) Error() string {
	return fmt.Sprintf("invalid identifier %q: %s", e.Name, e.Reason)
}

func (e InvalidIdentifierError) Is(target error) bool { return target == ErrInvalidIdentifier }
