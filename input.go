package main

import (
	"fmt"
	"io"
	"os"
	"strings"
	"unicode"

	"github.com/mattn/go-isatty"
)

// ===================== Input =====================

// Input is the text resolved from stdin and the positional arguments.
// An empty field means the source was absent or rejected.
type Input struct {
	Context string
	Prompt  string
}

// stdinIsPiped reports whether f is something other than an interactive terminal.
func stdinIsPiped(f *os.File) bool {
	fd := f.Fd()
	return !isatty.IsTerminal(fd) && !isatty.IsCygwinTerminal(fd)
}

// readPiped returns the whole of r when piped is true. The text is kept as-is.
func readPiped(r io.Reader, piped bool) (string, bool, error) {
	if !piped || r == nil {
		return "", false, nil
	}
	b, err := io.ReadAll(r)
	if err != nil {
		return "", false, fmt.Errorf("read stdin: %w", err)
	}
	return string(b), true, nil
}

// hasAlphanumeric reports whether s has at least one letter or number.
func hasAlphanumeric(s string) bool {
	return strings.IndexFunc(s, func(r rune) bool {
		return unicode.IsLetter(r) || unicode.IsNumber(r)
	}) >= 0
}

// ResolveInput picks the context and prompt to send.
//
// context comes from piped stdin; the prompt is args joined by single
// spaces or, with no args, defaultPrompt. Candidates without a single
// alphanumeric character are dropped. When nothing survives the result is
// ErrAlphanumericInput if something was dropped, ErrNoInput otherwise.
func ResolveInput(piped string, isPiped bool, args []string, defaultPrompt string) (Input, error) {
	var (
		in       Input
		rejected bool
	)

	accept := func(text string, present bool) string {
		if !present {
			return ""
		}
		if !hasAlphanumeric(text) {
			rejected = true
			return ""
		}
		return text
	}

	in.Context = accept(piped, isPiped)

	switch {
	case len(args) > 0:
		in.Prompt = accept(strings.Join(args, " "), true)
	case defaultPrompt != "":
		in.Prompt = accept(defaultPrompt, true)
	}

	if in.Context == "" && in.Prompt == "" {
		if rejected {
			return Input{}, ErrAlphanumericInput
		}
		return Input{}, ErrNoInput
	}
	return in, nil
}
