package main

import (
	"errors"
	"fmt"
	"math"
	"net/url"
	"strings"

	"go.uber.org/zap/zapcore"
)

// ===================== Config =====================

const (
	envAPIKey        = "OPENAI_API_KEY"
	envBaseURL       = "OPENAI_BASE_URL"
	envDefaultPrompt = "AIBRO_DEFAULT_PROMPT"
	envLogLevel      = "AIBRO_LOG_LEVEL"

	defaultBaseURL     = "https://api.openai.com/v1/"
	defaultTemperature = 1.0
	defaultSeed        = 0
)

// Config is everything a single run needs. Build it with AssembleConfig
// and treat it as read-only afterwards.
type Config struct {
	Context     string
	Prompt      string
	Auth        string
	Persona     Persona
	Model       Model
	Temperature float64
	Seed        int64
	BaseURL     string
	Proxy       string
}

// String never includes the credential.
func (c Config) String() string {
	return fmt.Sprintf("Config{persona=%s model=%s temperature=%g seed=%d context=%dB prompt=%dB base_url=%s auth=%s}",
		c.Persona, c.Model, c.Temperature, c.Seed, len(c.Context), len(c.Prompt), c.BaseURL, redact(c.Auth))
}

// MarshalLogObject lets zap log a Config without the credential.
func (c Config) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddString("persona", c.Persona.String())
	enc.AddString("model", c.Model.ID())
	enc.AddFloat64("temperature", c.Temperature)
	enc.AddInt64("seed", c.Seed)
	enc.AddInt("context_bytes", len(c.Context))
	enc.AddInt("prompt_bytes", len(c.Prompt))
	enc.AddString("base_url", c.BaseURL)
	enc.AddBool("proxy", c.Proxy != "")
	enc.AddString("auth", redact(c.Auth))
	return nil
}

func redact(secret string) string {
	if secret == "" {
		return "<unset>"
	}
	return "<redacted>"
}

// ===================== Fallback chains =====================

// firstNonEmpty returns the first value that is not blank, in order of precedence.
func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}

// firstSet returns the first non-nil value, or fallback.
func firstSet[T any](fallback T, vals ...*T) T {
	for _, v := range vals {
		if v != nil {
			return *v
		}
	}
	return fallback
}

// DefaultPrompt resolves the prompt used when no arguments are given:
// AIBRO_DEFAULT_PROMPT, then the settings file, else none.
func DefaultPrompt(getenv func(string) string, s Settings) string {
	return firstNonEmpty(getenv(envDefaultPrompt), s.DefaultPrompt)
}

// AssembleConfig merges resolved input with flags, environment and
// settings. Precedence is always flag > environment > settings > default.
func AssembleConfig(in Input, f Flags, getenv func(string) string, s Settings) (Config, error) {
	auth := firstNonEmpty(f.Auth, getenv(envAPIKey), s.APIKey)
	if auth == "" {
		return Config{}, ErrMissingCredential
	}

	personaName := firstNonEmpty(f.flagValue("persona", f.Persona), s.Persona, defaultPersona.String())
	persona, err := ParsePersona(personaName)
	if err != nil {
		return Config{}, &usageError{err: err}
	}

	modelName := firstNonEmpty(f.flagValue("model", f.Model), s.Model, defaultModel.String())
	model, err := ParseModel(modelName)
	if err != nil {
		return Config{}, &usageError{err: err}
	}

	var flagTemp *float64
	if f.isSet("temperature") {
		flagTemp = &f.Temperature
	}
	var flagSeed *int64
	if f.isSet("seed") {
		flagSeed = &f.Seed
	}

	temperature := firstSet(defaultTemperature, flagTemp, s.Temperature)
	if math.IsNaN(temperature) || math.IsInf(temperature, 0) {
		return Config{}, usagef("invalid temperature %v: must be a finite number", temperature)
	}

	proxy := firstNonEmpty(f.Proxy, s.Proxy)
	if proxy != "" {
		if err := validateProxy(proxy); err != nil {
			return Config{}, &usageError{err: err}
		}
	}

	return Config{
		Context:     in.Context,
		Prompt:      in.Prompt,
		Auth:        auth,
		Persona:     persona,
		Model:       model,
		Temperature: temperature,
		Seed:        firstSet(int64(defaultSeed), flagSeed, s.Seed),
		BaseURL:     firstNonEmpty(f.BaseURL, getenv(envBaseURL), s.BaseURL, defaultBaseURL),
		Proxy:       proxy,
	}, nil
}

func validateProxy(proxy string) error {
	// url.Parse errors echo the input, which may carry a password
	u, err := url.Parse(proxy)
	if err != nil {
		return errors.New("invalid proxy URL")
	}
	if u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("invalid proxy %q: want scheme://host:port", u.Redacted())
	}
	return nil
}
