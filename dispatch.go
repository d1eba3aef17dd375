package main

import (
	"errors"
	"fmt"
	"io"

	"go.uber.org/zap"
)

// ===================== Outcome =====================

const (
	exitOK    = 0
	exitFail  = 1
	exitUsage = 2
)

const (
	msgNoInput       = "No input found. Use --help for usage information."
	msgAlphanumeric  = "Input contains no alphanumeric characters. Use --help for usage information."
	msgNoCredential  = "Authentication key not found. Use --help for usage information."
	msgTransport     = "Failed request to OpenAI server."
	msgDeserialize   = "Failed to deserialise OpenAI response."
	msgUsageFollowUp = "Use --help for usage information."
)

// dispatch writes exactly one of the completion or an error message and
// returns the process exit code.
func dispatch(res ResponseBody, err error, stdout, stderr io.Writer, log *zap.Logger) int {
	if err == nil {
		fmt.Fprintln(stdout, res.Completion())
		return exitOK
	}

	log.Debug("run failed", zap.Error(err))

	var (
		statusErr    *UnexpectedStatusError
		transportErr *TransportError
		decodeErr    *DeserializationError
		usageErr     *usageError
	)
	switch {
	case errors.Is(err, ErrAlphanumericInput):
		fmt.Fprintln(stderr, msgAlphanumeric)
	case errors.Is(err, ErrNoInput):
		fmt.Fprintln(stderr, msgNoInput)
	case errors.Is(err, ErrMissingCredential):
		fmt.Fprintln(stderr, msgNoCredential)
	case errors.As(err, &statusErr):
		fmt.Fprintln(stdout, statusErr.Status())
	case errors.As(err, &transportErr):
		fmt.Fprintln(stderr, msgTransport)
	case errors.As(err, &decodeErr):
		fmt.Fprintln(stderr, msgDeserialize)
	case errors.As(err, &usageErr):
		fmt.Fprintln(stderr, "error:", usageErr)
		fmt.Fprintln(stderr, msgUsageFollowUp)
		return exitUsage
	default:
		fmt.Fprintln(stderr, "error:", err)
	}
	return exitFail
}
