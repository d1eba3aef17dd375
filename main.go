// aibro: sends a prompt, plus anything piped on stdin, to the OpenAI chat
// completions API behind a persona and prints the answer.
//
// Build:
//
//	go build -o aibro .
//
// Usage:
//
//	./aibro --help
//	git diff | ./aibro -p coder write a commit message
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/openai/openai-go/v2/option"
	"go.uber.org/zap"
)

// environment is the process surface a run reads from and writes to.
type environment struct {
	args       []string
	stdin      io.Reader
	stdinPiped bool
	stdout     io.Writer
	stderr     io.Writer
	getenv     func(string) string
}

func osEnvironment() environment {
	return environment{
		args:       os.Args[1:],
		stdin:      os.Stdin,
		stdinPiped: stdinIsPiped(os.Stdin),
		stdout:     os.Stdout,
		stderr:     os.Stderr,
		getenv:     os.Getenv,
	}
}

// ===================== Entry =====================

func main() {
	os.Exit(run(context.Background(), osEnvironment()))
}

// run executes one invocation and returns its exit code. opts are passed
// to the API client after the ones derived from the configuration.
func run(ctx context.Context, env environment, opts ...option.RequestOption) int {
	flags, err := parseFlags(env.args, env.stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}
		return exitUsage
	}

	log, err := NewLogger(firstNonEmpty(flags.LogLevel, env.getenv(envLogLevel)), flags.LogFormat, env.stderr)
	if err != nil {
		fmt.Fprintln(env.stderr, "error:", err)
		return exitUsage
	}
	defer func() { _ = log.Sync() }()

	res, err := complete(ctx, env, flags, log, opts...)
	return dispatch(res, err, env.stdout, env.stderr, log)
}

// complete runs resolver, assembler, builder and gateway in sequence.
func complete(ctx context.Context, env environment, flags Flags, log *zap.Logger, opts ...option.RequestOption) (ResponseBody, error) {
	settings, err := LoadSettings(flags.ConfigPath)
	if err != nil {
		return ResponseBody{}, usagef("%v", err)
	}

	piped, present, err := readPiped(env.stdin, env.stdinPiped)
	if err != nil {
		return ResponseBody{}, fmt.Errorf("%w: %w", ErrNoInput, err)
	}

	in, err := ResolveInput(piped, present, flags.Args, DefaultPrompt(env.getenv, settings))
	if err != nil {
		return ResponseBody{}, err
	}

	cfg, err := AssembleConfig(in, flags, env.getenv, settings)
	if err != nil {
		return ResponseBody{}, err
	}
	log.Debug("configuration assembled", zap.Object("config", cfg))

	msgs := BuildMessages(cfg)

	gw, err := NewGateway(cfg, log, opts...)
	if err != nil {
		return ResponseBody{}, usagef("%v", err)
	}
	return gw.Complete(ctx, NewRequestBody(cfg, msgs))
}
