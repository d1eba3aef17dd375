package main

import (
	"fmt"
	"strings"
)

// Model is a friendly name for a provider model id.
type Model int

const (
	GPT3 Model = iota
	GPT4
)

// most capable model the catalog knows about
const defaultModel = GPT4

func Models() []Model { return []Model{GPT3, GPT4} }

func (m Model) String() string {
	switch m {
	case GPT3:
		return "gpt3"
	case GPT4:
		return "gpt4"
	}
	return fmt.Sprintf("Model(%d)", int(m))
}

func (m Model) Description() string {
	switch m {
	case GPT3:
		return "GPT 3.5 turbo model"
	case GPT4:
		return "GPT 4.0 model"
	}
	return ""
}

// ID is the model string the API expects.
func (m Model) ID() string {
	switch m {
	case GPT3:
		return "gpt-3.5-turbo"
	case GPT4:
		return "gpt-4-1106-preview"
	}
	panic(fmt.Sprintf("unknown model %d", int(m)))
}

// ParseModel accepts either the friendly name or the provider id.
func ParseModel(name string) (Model, error) {
	name = strings.TrimSpace(name)
	for _, m := range Models() {
		if strings.EqualFold(name, m.String()) || name == m.ID() {
			return m, nil
		}
	}
	return 0, fmt.Errorf("unknown model %q (want one of %s)", name, joinNames(Models()))
}
