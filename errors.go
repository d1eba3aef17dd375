package main

import (
	"errors"
	"fmt"
	"net/http"
)

// ===================== Errors =====================

var (
	// ErrNoInput means neither stdin nor the arguments produced any text.
	ErrNoInput = errors.New("no input")
	// ErrAlphanumericInput means text was given but none of it had a letter or digit.
	ErrAlphanumericInput = errors.New("input has no alphanumeric characters")
	// ErrMissingCredential means no API key was found in flags, env or settings.
	ErrMissingCredential = errors.New("missing API credential")
)

// TransportError is a failure before any HTTP status was obtained.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string { return "transport: " + e.Err.Error() }
func (e *TransportError) Unwrap() error { return e.Err }

// UnexpectedStatusError is any non-200 reply from the completions endpoint.
type UnexpectedStatusError struct {
	StatusCode int
}

func (e *UnexpectedStatusError) Error() string {
	return fmt.Sprintf("unexpected status %s", e.Status())
}

// Status renders the code the way an HTTP status line does, e.g. "401 Unauthorized".
func (e *UnexpectedStatusError) Status() string {
	if text := http.StatusText(e.StatusCode); text != "" {
		return fmt.Sprintf("%d %s", e.StatusCode, text)
	}
	return fmt.Sprintf("%d", e.StatusCode)
}

// DeserializationError is a 200 reply whose body does not fit ResponseBody.
type DeserializationError struct {
	Err error
}

func (e *DeserializationError) Error() string { return "decode response: " + e.Err.Error() }
func (e *DeserializationError) Unwrap() error { return e.Err }

// usageError marks bad command-line or settings input; it exits with 2.
type usageError struct {
	err error
}

func (e *usageError) Error() string { return e.err.Error() }
func (e *usageError) Unwrap() error { return e.err }

func usagef(format string, args ...any) error {
	return &usageError{err: fmt.Errorf(format, args...)}
}
