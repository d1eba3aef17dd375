package main

import (
	"errors"
	"fmt"
	"os"
	"os/user"
	"path/filepath"

	yaml "gopkg.in/yaml.v3"
)

// ===================== Settings file =====================

// Settings is the optional YAML file under ~/.config/aibro. Every field
// is a fallback used only when neither a flag nor the environment sets it.
type Settings struct {
	APIKey        string   `yaml:"api_key"`
	DefaultPrompt string   `yaml:"default_prompt"`
	Persona       string   `yaml:"persona"`
	Model         string   `yaml:"model"`
	Temperature   *float64 `yaml:"temperature"`
	Seed          *int64   `yaml:"seed"`
	BaseURL       string   `yaml:"base_url"`
	Proxy         string   `yaml:"proxy"`
}

func configDir() string {
	usr, err := user.Current()
	if err != nil {
		return "."
	}
	return filepath.Join(usr.HomeDir, ".config", "aibro")
}

func defaultSettingsPath() string { return filepath.Join(configDir(), "config.yaml") }

// LoadSettings reads path. A missing file yields empty settings.
func LoadSettings(path string) (Settings, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Settings{}, nil
		}
		return Settings{}, fmt.Errorf("read settings %s: %w", path, err)
	}
	var s Settings
	if err := yaml.Unmarshal(b, &s); err != nil {
		return Settings{}, fmt.Errorf("parse settings %s: %w", path, err)
	}
	return s, nil
}
