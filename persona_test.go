package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPersonasAreExhaustive(t *testing.T) {
	seen := map[string]bool{}
	for _, p := range Personas() {
		assert.NotEmpty(t, p.Prompt(), "persona %s", p)
		assert.NotEmpty(t, p.Description(), "persona %s", p)
		assert.False(t, seen[p.String()], "duplicate persona name %s", p)
		seen[p.String()] = true
	}
	assert.Len(t, seen, 3)
}

func TestPersonaPromptVerbatim(t *testing.T) {
	prompt := Coder.Prompt()
	assert.True(t, strings.HasPrefix(prompt, "Provide only code as output without any description.\n"))
	assert.Contains(t, prompt, "such as ```.")
	assert.Contains(t, Grandma.Prompt(), "\nINPORTANT: Loves baking cakes")
}

func TestParsePersona(t *testing.T) {
	tests := []struct {
		in   string
		want Persona
	}{
		{"coder", Coder},
		{"CHAD", Chad},
		{" grandma ", Grandma},
	}
	for _, tt := range tests {
		got, err := ParsePersona(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got)
	}

	_, err := ParsePersona("pirate")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "coder, chad, grandma")
}

func TestUnknownPersonaPanics(t *testing.T) {
	assert.Panics(t, func() { _ = Persona(42).Prompt() })
	assert.Equal(t, "Persona(42)", Persona(42).String())
}
