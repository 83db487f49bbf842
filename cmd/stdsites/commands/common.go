package commands

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"

	"git.home.luguber.info/inful/stdsites/internal/config"
	"git.home.luguber.info/inful/stdsites/internal/registry"
)

// Global carries process-wide dependencies into every command.
type Global struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer
}

// CLI definition & global flags.
type CLI struct {
	Config    string           `short:"c" help:"Configuration file path" default:"stdsites.yaml" env:"STDSITES_CONFIG"`
	Verbose   bool             `short:"v" help:"Enable verbose logging"`
	LogFormat string           `name:"log-format" help:"Log format (text or json); defaults to monitoring.logging.format"`
	Version   kong.VersionFlag `name:"version" help:"Show version and exit"`

	Generate GenerateCmd `cmd:"" help:"Generate hugo.yaml for every site of the family"`
	Init     InitCmd     `cmd:"" help:"Initialize a new configuration file"`
	Resolve  ResolveCmd  `cmd:"" help:"Print the absolute URL of a path on a site"`
	Check    CheckCmd    `cmd:"" help:"Report site: links in Markdown content that do not resolve"`
	Sites    SitesCmd    `cmd:"" help:"List the sites in the registry"`

	logOutput io.Writer
}

// SetLogOutput directs log output; stderr when unset.
func (c *CLI) SetLogOutput(w io.Writer) { c.logOutput = w }

// AfterApply runs after flag parsing; setup logging once.
// nolint:unparam // AfterApply currently never returns an error.
func (c *CLI) AfterApply() error {
	level := config.LogLevelInfo
	if c.Verbose {
		level = config.LogLevelDebug
	}
	c.setupLogging(level, config.NormalizeLogFormat(c.LogFormat))
	return nil
}

// setupLogging installs the default slog logger.
func (c *CLI) setupLogging(level config.LogLevel, format config.LogFormat) {
	w := c.logOutput
	if w == nil {
		w = os.Stderr
	}
	opts := &slog.HandlerOptions{Level: slogLevel(level)}
	var h slog.Handler
	if format == config.LogFormatJSON {
		h = slog.NewJSONHandler(w, opts)
	} else {
		h = slog.NewTextHandler(w, opts)
	}
	slog.SetDefault(slog.New(h))
}

func slogLevel(l config.LogLevel) slog.Level {
	switch l {
	case config.LogLevelDebug:
		return slog.LevelDebug
	case config.LogLevelWarn:
		return slog.LevelWarn
	case config.LogLevelError:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// loadFamily loads the configuration and builds the registry. Logging
// follows the configuration unless set on the command line.
func (c *CLI) loadFamily() (*config.Config, *registry.Registry, error) {
	cfg, err := config.Load(c.Config)
	if err != nil {
		return nil, nil, err
	}
	level := cfg.Monitoring.Logging.Level
	if c.Verbose {
		level = config.LogLevelDebug
	}
	format := cfg.Monitoring.Logging.Format
	if c.LogFormat != "" {
		format = config.NormalizeLogFormat(c.LogFormat)
	}
	c.setupLogging(level, format)
	reg, err := registry.FromConfig(cfg)
	if err != nil {
		return nil, nil, err
	}
	return cfg, reg, nil
}

// ResolveOutputDir determines the output directory.
// Priority: CLI flag > configuration (including STDSITES_OUTPUT_DIR).
func ResolveOutputDir(cliOutput string, cfg *config.Config) string {
	if cliOutput != "" {
		return cliOutput
	}
	if cfg.Output.Directory != "" {
		return cfg.Output.Directory
	}
	return config.DefaultOutputDir
}

// metricsFile prefers the command-line path over monitoring.metrics.textfile.
func metricsFile(flag string, cfg *config.Config) string {
	if flag != "" {
		return flag
	}
	return cfg.Monitoring.Metrics.Textfile
}
