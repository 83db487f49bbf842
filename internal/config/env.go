package config

import (
	"dario.cat/mergo"
	"github.com/caarlos0/env/v11"

	ferrors "git.home.luguber.info/inful/stdsites/internal/foundation/errors"
)

// envOverrides are the settings an operator may force through the environment,
// e.g. in CI where the output directory differs per job.
type envOverrides struct {
	OutputDir string `env:"STDSITES_OUTPUT_DIR"`
	LogLevel  string `env:"STDSITES_LOG_LEVEL"`
	LogFormat string `env:"STDSITES_LOG_FORMAT"`
	Theme     string `env:"STDSITES_THEME"`
}

func (o envOverrides) asConfig() *Config {
	c := &Config{}
	c.Output.Directory = o.OutputDir
	c.Preset.Theme = o.Theme
	if o.LogLevel != "" {
		c.Monitoring.Logging.Level = NormalizeLogLevel(o.LogLevel)
	}
	if o.LogFormat != "" {
		c.Monitoring.Logging.Format = NormalizeLogFormat(o.LogFormat)
	}
	return c
}

// applyEnvOverrides merges non-empty environment settings over cfg.
func applyEnvOverrides(cfg *Config) error {
	var o envOverrides
	if err := env.Parse(&o); err != nil {
		return ferrors.WrapError(err, ferrors.CategoryConfig, "failed to read environment overrides").Build()
	}
	if err := mergo.Merge(cfg, o.asConfig(), mergo.WithOverride); err != nil {
		return ferrors.WrapError(err, ferrors.CategoryInternal, "failed to merge environment overrides").Build()
	}
	return nil
}
