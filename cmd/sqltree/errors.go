package main

import (
	"errors"
	"fmt"
	"io"
)

// Process exit statuses.
const (
	exitOK        = 0
	exitFailed    = 1 // rendering or applying statements
	exitConfig    = 2
	exitSchemaDoc = 3
	exitConnect   = 4
)

// stepError records which step of a command failed and the status it maps to.
type stepError struct {
	status int
	step   string
	err    error
}

func (e *stepError) Error() string { return e.step + ": " + e.err.Error() }

func (e *stepError) Unwrap() error { return e.err }

func fail(status int, step string, err error) error {
	return &stepError{status: status, step: step, err: err}
}

// exitStatus reports err on w and returns the status to exit with.
func exitStatus(w io.Writer, err error) int {
	if err == nil {
		return exitOK
	}
	fmt.Fprintln(w, "Error:", err)
	var se *stepError
	if errors.As(err, &se) {
		return se.status
	}
	return exitFailed
}
