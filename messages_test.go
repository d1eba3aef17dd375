package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildMessages(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
		want []Message
	}{
		{
			name: "prompt only",
			cfg:  Config{Persona: Coder, Prompt: "p"},
			want: []Message{{RoleSystem, Coder.Prompt()}, {RoleUser, "p"}},
		},
		{
			name: "context only",
			cfg:  Config{Persona: Chad, Context: "c"},
			want: []Message{{RoleSystem, Chad.Prompt()}, {RoleUser, "c"}},
		},
		{
			name: "context before prompt",
			cfg:  Config{Persona: Grandma, Context: "c", Prompt: "p"},
			want: []Message{{RoleSystem, Grandma.Prompt()}, {RoleUser, "c"}, {RoleUser, "p"}},
		},
		{
			name: "system only",
			cfg:  Config{Persona: Coder},
			want: []Message{{RoleSystem, Coder.Prompt()}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := BuildMessages(tt.cfg)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, RoleSystem, got[0].Role)
			assert.LessOrEqual(t, len(got), 3)
		})
	}
}
