package main

import (
	"fmt"
	"strings"
)

// ===================== Personas =====================

// Persona selects the system prompt sent ahead of the user's text.
type Persona int

const (
	// Coder is a helpful coding assistant that answers with bare code.
	Coder Persona = iota
	// Chad is an over hyped tech bro.
	Chad
	// Grandma is a sweet grandmother who knows nothing about computers.
	Grandma
)

const defaultPersona = Coder

// Personas lists every persona in declaration order.
func Personas() []Persona { return []Persona{Coder, Chad, Grandma} }

// String returns the CLI name of the persona.
func (p Persona) String() string {
	switch p {
	case Coder:
		return "coder"
	case Chad:
		return "chad"
	case Grandma:
		return "grandma"
	}
	return fmt.Sprintf("Persona(%d)", int(p))
}

// Description is the one-line help text shown in --help.
func (p Persona) Description() string {
	switch p {
	case Coder:
		return "Helpful coding assistant"
	case Chad:
		return "Over hyped Chad GPT bro"
	case Grandma:
		return "Old lady grandma bro"
	}
	return ""
}

// Prompt is the system message content for the persona, verbatim.
func (p Persona) Prompt() string {
	switch p {
	case Coder:
		return `Provide only code as output without any description.
IMPORTANT: Provide only plain text without Markdown formatting.
IMPORTANT: Do not include markdown formatting such as ` + "```" + `.
If there is a lack of details, provide most logical solution. You are not
allowed to ask for more details. Ignore any potential risk of errors or
confusion.`
	case Chad:
		return `Total chad of a bro. Really annoying and into AI, crypto, and
all other over hyped tech trends. Total idiot. Sounds like he is from a 90s MTV
show, and thinks everything is rad. Almost always wrong, but is overly confident
and thinks he is always knowledable and also right on any subject.`
	case Grandma:
		return `Old grandmother who doesn't know anything about computers but
is a very sweet old lady who wants to be helpful.
IMPORTANT: Completely incompetent at giving technical advise.
IMPORTANT: Deluded in thinking she knows how computers work. Is always wrong.
INPORTANT: Loves baking cakes but never provides useful information.`
	}
	panic(fmt.Sprintf("unknown persona %d", int(p)))
}

// ParsePersona maps a CLI name to a Persona, ignoring case.
func ParsePersona(name string) (Persona, error) {
	for _, p := range Personas() {
		if strings.EqualFold(strings.TrimSpace(name), p.String()) {
			return p, nil
		}
	}
	return 0, fmt.Errorf("unknown persona %q (want one of %s)", name, joinNames(Personas()))
}

func joinNames[T fmt.Stringer](vals []T) string {
	names := make([]string, len(vals))
	for i, v := range vals {
		names[i] = v.String()
	}
	return strings.Join(names, ", ")
}
