package main

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/xeipuuv/gojsonschema"
)

// ===================== Wire types =====================

// RequestBody is the JSON posted to chat/completions.
type RequestBody struct {
	Model       string    `json:"model"`
	Temperature float64   `json:"temperature"`
	Seed        int64     `json:"seed"`
	Messages    []Message `json:"messages"`
}

// NewRequestBody pairs the messages with the generation parameters of cfg.
func NewRequestBody(cfg Config, msgs []Message) RequestBody {
	return RequestBody{
		Model:       cfg.Model.ID(),
		Temperature: cfg.Temperature,
		Seed:        cfg.Seed,
		Messages:    msgs,
	}
}

type Usage struct {
	PromptTokens     int64 `json:"prompt_tokens"`
	CompletionTokens int64 `json:"completion_tokens"`
	TotalTokens      int64 `json:"total_tokens"`
}

type Choice struct {
	Message      Message `json:"message"`
	FinishReason string  `json:"finish_reason"`
	Index        int64   `json:"index"`
}

// ResponseBody is a successful chat completion.
type ResponseBody struct {
	ID      string   `json:"id"`
	Object  string   `json:"object"`
	Created int64    `json:"created"`
	Model   string   `json:"model"`
	Usage   Usage    `json:"usage"`
	Choices []Choice `json:"choices"`
}

// Completion is the text of the first choice.
func (r ResponseBody) Completion() string {
	if len(r.Choices) == 0 {
		return ""
	}
	return r.Choices[0].Message.Content
}

// ===================== Decoding =====================

//go:embed schemas/chat_completion.json
var schemaFS embed.FS

var responseSchema = sync.OnceValues(func() (*gojsonschema.Schema, error) {
	raw, err := schemaFS.ReadFile("schemas/chat_completion.json")
	if err != nil {
		return nil, err
	}
	return gojsonschema.NewSchema(gojsonschema.NewBytesLoader(raw))
})

// DecodeResponse checks raw against the chat completion schema and decodes
// it. Every failure is a *DeserializationError.
func DecodeResponse(raw []byte) (ResponseBody, error) {
	schema, err := responseSchema()
	if err != nil {
		return ResponseBody{}, &DeserializationError{Err: fmt.Errorf("load schema: %w", err)}
	}
	result, err := schema.Validate(gojsonschema.NewBytesLoader(raw))
	if err != nil {
		return ResponseBody{}, &DeserializationError{Err: err}
	}
	if !result.Valid() {
		if errs := result.Errors(); len(errs) > 0 {
			return ResponseBody{}, &DeserializationError{Err: fmt.Errorf("schema validation failed: %s", errs[0].String())}
		}
		return ResponseBody{}, &DeserializationError{Err: errors.New("schema validation failed")}
	}

	var body ResponseBody
	if err := json.Unmarshal(raw, &body); err != nil {
		return ResponseBody{}, &DeserializationError{Err: err}
	}
	return body, nil
}
