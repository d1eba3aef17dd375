package main

import (
	"bytes"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestDispatch(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantCode   int
		wantStdout string
		wantStderr string
	}{
		{"success", nil, exitOK, "fn main() {}\n", ""},
		{"no input", ErrNoInput, exitFail, "", msgNoInput + "\n"},
		{"wrapped no input", fmt.Errorf("%w: read stdin: boom", ErrNoInput), exitFail, "", msgNoInput + "\n"},
		{"alphanumeric", ErrAlphanumericInput, exitFail, "", msgAlphanumeric + "\n"},
		{"credential", ErrMissingCredential, exitFail, "", msgNoCredential + "\n"},
		{"transport", &TransportError{Err: errors.New("dial tcp: refused")}, exitFail, "", msgTransport + "\n"},
		{"decode", &DeserializationError{Err: errors.New("missing choices")}, exitFail, "", msgDeserialize + "\n"},
		{"status", &UnexpectedStatusError{StatusCode: 429}, exitFail, "429 Too Many Requests\n", ""},
		{"usage", usagef("unknown persona %q", "pirate"), exitUsage, "", "error: unknown persona \"pirate\"\n" + msgUsageFollowUp + "\n"},
		{"other", errors.New("weird"), exitFail, "", "error: weird\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stdout, stderr bytes.Buffer
			res := ResponseBody{}
			if tt.err == nil {
				res = sampleResponse()
			}
			code := dispatch(res, tt.err, &stdout, &stderr, zap.NewNop())
			assert.Equal(t, tt.wantCode, code)
			assert.Equal(t, tt.wantStdout, stdout.String())
			assert.Equal(t, tt.wantStderr, stderr.String())
		})
	}
}
