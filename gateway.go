package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	openai "github.com/openai/openai-go/v2"
	"github.com/openai/openai-go/v2/option"
	"go.uber.org/zap"
)

// ===================== OpenAI Client =====================

const completionsPath = "chat/completions"

// Gateway posts a single chat completion request and decodes the reply.
type Gateway struct {
	client openai.Client
	log    *zap.Logger
}

func httpClientWithProxy(proxy string) (*http.Client, error) {
	tr := http.DefaultTransport.(*http.Transport).Clone()
	if proxy != "" {
		u, err := url.Parse(proxy)
		if err != nil {
			return nil, errors.New("invalid proxy URL")
		}
		tr.Proxy = http.ProxyURL(u)
	}
	return &http.Client{Transport: tr}, nil
}

// NewGateway builds the API client from cfg. Retries are disabled: one
// invocation sends exactly one request. Extra opts are applied last.
func NewGateway(cfg Config, log *zap.Logger, opts ...option.RequestOption) (*Gateway, error) {
	if log == nil {
		log = zap.NewNop()
	}
	baseURL := cfg.BaseURL
	if !strings.HasSuffix(baseURL, "/") {
		baseURL += "/"
	}

	base := []option.RequestOption{
		option.WithAPIKey(cfg.Auth),
		option.WithBaseURL(baseURL),
		option.WithMaxRetries(0),
		option.WithHeader("Accept", "application/json"),
	}
	if cfg.Proxy != "" {
		hc, err := httpClientWithProxy(cfg.Proxy)
		if err != nil {
			return nil, err
		}
		base = append(base, option.WithHTTPClient(hc))
	}

	return &Gateway{
		client: openai.NewClient(append(base, opts...)...),
		log:    log,
	}, nil
}

// Complete sends req and returns the decoded completion.
//
// A non-200 reply yields *UnexpectedStatusError without looking at the
// body as a completion, a 200 reply that does not decode yields
// *DeserializationError, and anything that fails before a status is known
// yields *TransportError.
func (g *Gateway) Complete(ctx context.Context, req RequestBody) (ResponseBody, error) {
	data, err := json.Marshal(req)
	if err != nil {
		return ResponseBody{}, fmt.Errorf("encode request: %w", err)
	}

	g.log.Debug("sending chat completion request",
		zap.String("model", req.Model),
		zap.Float64("temperature", req.Temperature),
		zap.Int64("seed", req.Seed),
		zap.Int("messages", len(req.Messages)),
		zap.Int("body_bytes", len(data)),
	)

	var (
		raw  []byte
		resp *http.Response
	)
	err = g.client.Post(ctx, completionsPath, nil, &raw,
		option.WithRequestBody("application/json", bytes.NewReader(data)),
		option.WithResponseInto(&resp),
	)
	if err != nil {
		var apiErr *openai.Error
		if errors.As(err, &apiErr) {
			g.log.Debug("chat completion rejected",
				zap.Int("status", apiErr.StatusCode),
				zap.String("type", apiErr.Type),
			)
			return ResponseBody{}, &UnexpectedStatusError{StatusCode: apiErr.StatusCode}
		}
		g.log.Debug("chat completion transport failure", zap.Error(err))
		return ResponseBody{}, &TransportError{Err: err}
	}

	// the SDK treats every 2xx as success; only 200 carries a completion
	if resp != nil && resp.StatusCode != http.StatusOK {
		g.log.Debug("chat completion unexpected status", zap.Int("status", resp.StatusCode))
		return ResponseBody{}, &UnexpectedStatusError{StatusCode: resp.StatusCode}
	}

	body, err := DecodeResponse(raw)
	if err != nil {
		g.log.Debug("chat completion decode failure", zap.Error(err), zap.Int("body_bytes", len(raw)))
		return ResponseBody{}, err
	}

	g.log.Debug("chat completion received",
		zap.String("id", body.ID),
		zap.String("model", body.Model),
		zap.Int64("prompt_tokens", body.Usage.PromptTokens),
		zap.Int64("completion_tokens", body.Usage.CompletionTokens),
		zap.Int64("total_tokens", body.Usage.TotalTokens),
		zap.Int("choices", len(body.Choices)),
	)
	return body, nil
}
