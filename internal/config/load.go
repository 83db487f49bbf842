package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"regexp"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	ferrors "git.home.luguber.info/inful/stdsites/internal/foundation/errors"
)

// CurrentVersion is the only configuration format version accepted by Load.
const CurrentVersion = "1.0"

// envFiles are loaded before the configuration is parsed. Earlier files win
// because godotenv never overrides variables that are already set.
var envFiles = []string{".env.local", ".env"}

// Load reads, normalizes, defaults and validates a family configuration file.
func Load(configPath string) (*Config, error) {
	loadEnvFiles()

	if _, err := os.Stat(configPath); errors.Is(err, os.ErrNotExist) {
		return nil, ferrors.ConfigError("configuration file not found").
			WithContext("path", configPath).
			WithHint("run 'stdsites init' to create one").
			Build()
	}
	// #nosec G304 -- path comes from the operator
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, ferrors.WrapError(err, ferrors.CategoryFileSystem, "failed to read config file").
			WithContext("path", configPath).
			Build()
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, err
	}
	return cfg, nil
}

// Parse builds a configuration from raw YAML. Environment references of the
// form ${VAR} are expanded first.
func Parse(data []byte) (*Config, error) {
	expanded := expandEnv(string(data))

	var cfg Config
	dec := yaml.NewDecoder(bytes.NewReader([]byte(expanded)))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, ferrors.WrapError(err, ferrors.CategoryConfig, "failed to unmarshal config").Fatal().Build()
	}

	if cfg.Version != CurrentVersion {
		return nil, ferrors.ConfigError(fmt.Sprintf("unsupported configuration version: %q (expected %s)", cfg.Version, CurrentVersion)).
			WithContext("version", cfg.Version).
			Build()
	}

	res, err := NormalizeConfig(&cfg)
	if err != nil {
		return nil, err
	}
	for _, w := range res.Warnings {
		slog.Warn("Configuration normalized", "detail", w)
	}

	if err := applyEnvOverrides(&cfg); err != nil {
		return nil, err
	}
	if err := ApplyDefaults(&cfg); err != nil {
		return nil, err
	}
	if err := ValidateConfig(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func loadEnvFiles() {
	for _, f := range envFiles {
		if _, err := os.Stat(f); err != nil {
			continue
		}
		if err := godotenv.Load(f); err != nil {
			slog.Warn("Failed to load environment file", "file", f, "error", err)
			continue
		}
		slog.Debug("Loaded environment variables", "file", f)
	}
}

var envRefPattern = regexp.MustCompile(`\$\{([A-Za-z_][A-Za-z0-9_]*)\}`)

// expandEnv replaces ${VAR} references with set environment variables. Bare
// $ signs (math delimiters, prices) and unset references are kept verbatim.
func expandEnv(s string) string {
	return envRefPattern.ReplaceAllStringFunc(s, func(ref string) string {
		if v, ok := os.LookupEnv(ref[2 : len(ref)-1]); ok {
			return v
		}
		return ref
	})
}
