// Package watch regenerates sites when the family configuration changes or
// on a fixed schedule.
package watch

import (
	"context"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"git.home.luguber.info/inful/stdsites/internal/config"
	ferrors "git.home.luguber.info/inful/stdsites/internal/foundation/errors"
	"git.home.luguber.info/inful/stdsites/internal/logfields"
)

// DefaultDebounce collapses the burst of events editors emit on save.
const DefaultDebounce = 500 * time.Millisecond

// Loader reads a configuration file. config.Load is the default.
type Loader func(path string) (*config.Config, error)

// ReloadFunc receives every successfully reloaded configuration.
type ReloadFunc func(ctx context.Context, cfg *config.Config) error

// Option configures a ConfigWatcher.
type Option func(*ConfigWatcher)

// WithDebounce sets the quiet period before a reload.
func WithDebounce(d time.Duration) Option {
	return func(cw *ConfigWatcher) { cw.debounce = d }
}

// WithLoader replaces how the configuration is read.
func WithLoader(l Loader) Option {
	return func(cw *ConfigWatcher) { cw.load = l }
}

// ConfigWatcher monitors the configuration file and triggers reloads.
type ConfigWatcher struct {
	configPath string
	onReload   ReloadFunc
	load       Loader
	debounce   time.Duration
}

// NewConfigWatcher creates a watcher for configPath.
func NewConfigWatcher(configPath string, onReload ReloadFunc, opts ...Option) (*ConfigWatcher, error) {
	absPath, err := filepath.Abs(configPath)
	if err != nil {
		return nil, ferrors.WrapError(err, ferrors.CategoryFileSystem, "failed to resolve config path").
			WithContext("path", configPath).
			Build()
	}
	cw := &ConfigWatcher{
		configPath: absPath,
		onReload:   onReload,
		load:       config.Load,
		debounce:   DefaultDebounce,
	}
	for _, opt := range opts {
		opt(cw)
	}
	return cw, nil
}

// Run watches until ctx is done. Failed reloads are logged and the previous
// output is left in place.
func (cw *ConfigWatcher) Run(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return ferrors.WrapError(err, ferrors.CategoryRuntime, "failed to create file watcher").Build()
	}
	defer func() {
		if cerr := watcher.Close(); cerr != nil {
			slog.Error("Error closing file watcher", logfields.Error(cerr))
		}
	}()

	// Watch the directory: editors often replace the file rather than write it.
	configDir := filepath.Dir(cw.configPath)
	if err := watcher.Add(configDir); err != nil {
		return ferrors.WrapError(err, ferrors.CategoryFileSystem, "failed to watch config directory").
			WithContext("path", configDir).
			Build()
	}
	slog.Info("Watching configuration", logfields.Path(cw.configPath))

	configFile := filepath.Base(cw.configPath)
	timer := time.NewTimer(cw.debounce)
	if !timer.Stop() {
		<-timer.C
	}
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			slog.Info("Stopping configuration watcher")
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Base(event.Name) != configFile {
				continue
			}
			switch {
			case event.Has(fsnotify.Write), event.Has(fsnotify.Create), event.Has(fsnotify.Rename):
				slog.Debug("Config file change detected", logfields.File(event.Name), "op", event.Op.String())
				timer.Reset(cw.debounce)
			case event.Has(fsnotify.Remove):
				slog.Warn("Config file removed", logfields.File(event.Name))
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			slog.Error("Config watcher error", logfields.Error(err))
		case <-timer.C:
			if err := cw.reload(ctx); err != nil {
				slog.Error("Failed to reload configuration", logfields.Error(err))
			}
		}
	}
}

func (cw *ConfigWatcher) reload(ctx context.Context) error {
	slog.Info("Reloading configuration", logfields.Path(cw.configPath))
	cfg, err := cw.load(cw.configPath)
	if err != nil {
		return err
	}
	if err := cw.onReload(ctx, cfg); err != nil {
		return err
	}
	slog.Info("Configuration reloaded successfully")
	return nil
}
