package main

// ===================== Messages =====================

// Role of a chat message sender.
type Role string

const (
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Message is one entry of the conversation sent to the API.
type Message struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

// BuildMessages returns the persona as the system message, followed by the
// context and then the prompt when they are present.
func BuildMessages(cfg Config) []Message {
	msgs := make([]Message, 0, 3)
	msgs = append(msgs, Message{Role: RoleSystem, Content: cfg.Persona.Prompt()})
	if cfg.Context != "" {
		msgs = append(msgs, Message{Role: RoleUser, Content: cfg.Context})
	}
	if cfg.Prompt != "" {
		msgs = append(msgs, Message{Role: RoleUser, Content: cfg.Prompt})
	}
	return msgs
}
