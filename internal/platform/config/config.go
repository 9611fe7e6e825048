package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"
)

const envPrefix = "KONKRETE"

// Config describes where the app keeps its state. Values come from the
// defaults, then config.yaml in the home dir, then KONKRETE_* env vars.
type Config struct {
	Home            string `yaml:"home" envconfig:"HOME"`
	DBPath          string `yaml:"db_path" envconfig:"DB_PATH"`
	AssistManifest  string `yaml:"assist_manifest" envconfig:"ASSIST_MANIFEST"`
	LogLevel        string `yaml:"log_level" envconfig:"LOG_LEVEL" default:"warn"`
}

func New(home string) (Config, error) {
	if home == "" {
		base, err := os.UserHomeDir()
		if err != nil {
			return Config{}, fmt.Errorf("resolve user home: %w", err)
		}
		home = filepath.Join(base, ".konkrete")
	}

	cfg := Config{Home: home}
	if err := loadFile(filepath.Join(home, "config.yaml"), &cfg); err != nil {
		return Config{}, err
	}
	if err := envconfig.Process(envPrefix, &cfg); err != nil {
		return Config{}, fmt.Errorf("apply env overrides: %w", err)
	}

	if cfg.DBPath == "" {
		cfg.DBPath = filepath.Join(cfg.Home, "konkrete.db")
	}
	if cfg.AssistManifest == "" {
		cfg.AssistManifest = "assistant.json"
	}
	return cfg, nil
}

func loadFile(path string, cfg *Config) error {
	payload, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(payload, cfg); err != nil {
		return fmt.Errorf("decode config file: %w", err)
	}
	return nil
}
