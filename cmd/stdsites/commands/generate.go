package commands

import (
	"context"
	"fmt"
	"log/slog"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"git.home.luguber.info/inful/stdsites/internal/config"
	"git.home.luguber.info/inful/stdsites/internal/hugo"
	"git.home.luguber.info/inful/stdsites/internal/logfields"
	"git.home.luguber.info/inful/stdsites/internal/metrics"
	"git.home.luguber.info/inful/stdsites/internal/registry"
	"git.home.luguber.info/inful/stdsites/internal/watch"
)

// GenerateCmd implements the 'generate' command.
type GenerateCmd struct {
	Output      string        `short:"o" help:"Output directory (overrides output.directory)"`
	Site        []string      `name:"site" short:"s" help:"Generate only these site keys (repeatable)"`
	Watch       bool          `short:"w" help:"Regenerate whenever the configuration file changes"`
	Every       time.Duration `name:"every" help:"Also regenerate on this interval (e.g. 15m) to refresh revisions and build dates"`
	MetricsFile string        `name:"metrics-file" help:"Write Prometheus metrics in textfile format after each run" type:"path"`
}

func (g *GenerateCmd) Run(glob *Global, root *CLI) error {
	cfg, reg, err := root.loadFamily()
	if err != nil {
		return err
	}

	g.MetricsFile = metricsFile(g.MetricsFile, cfg)
	r := &regenerator{cmd: g, glob: glob, cfg: cfg, reg: reg}
	if g.MetricsFile != "" {
		r.rec = metrics.NewPrometheusRecorder(nil)
	}

	if !g.Watch && g.Every <= 0 {
		return r.run(glob.Ctx)
	}

	if err := r.run(glob.Ctx); err != nil {
		slog.Error("Initial generation failed; continuing to watch", logfields.Error(err))
	}
	ctx, stop := signal.NotifyContext(glob.Ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if g.Every > 0 {
		sched, err := watch.NewScheduler()
		if err != nil {
			return err
		}
		if _, err := sched.Every(g.Every, "regenerate", func() {
			if err := r.run(ctx); err != nil {
				slog.Error("Scheduled generation failed", logfields.Error(err))
			}
		}); err != nil {
			return err
		}
		sched.Start()
		defer func() {
			if err := sched.Stop(); err != nil {
				slog.Warn("Scheduler shutdown failed", logfields.Error(err))
			}
		}()
	}

	if !g.Watch {
		<-ctx.Done()
		return nil
	}

	w, err := watch.NewConfigWatcher(root.Config, r.reload)
	if err != nil {
		return err
	}
	return w.Run(ctx)
}

// regenerator serializes runs triggered by the config watcher and the
// scheduler, and holds the most recently loaded family.
type regenerator struct {
	cmd  *GenerateCmd
	glob *Global
	rec  *metrics.PrometheusRecorder

	mu  sync.Mutex
	cfg *config.Config
	reg *registry.Registry
}

func (r *regenerator) reload(ctx context.Context, cfg *config.Config) error {
	reg, err := registry.FromConfig(cfg)
	if err != nil {
		return err
	}
	r.mu.Lock()
	r.cfg, r.reg = cfg, reg
	r.mu.Unlock()
	return r.run(ctx)
}

func (r *regenerator) run(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.cmd.generate(ctx, r.glob, r.cfg, r.reg, r.rec)
}

func (g *GenerateCmd) generate(ctx context.Context, glob *Global, cfg *config.Config, reg *registry.Registry, rec *metrics.PrometheusRecorder) error {
	gen := hugo.NewGenerator(cfg, reg, ResolveOutputDir(g.Output, cfg)).OnlySites(g.Site...)
	if rec != nil {
		gen.SetRecorder(rec)
	}

	report, genErr := gen.Generate(ctx)
	if report != nil {
		for _, s := range report.Sites {
			line := fmt.Sprintf("%-8s %s", s.Outcome, s.Key)
			if s.ConfigPath != "" {
				line += " -> " + s.ConfigPath
			}
			_, _ = fmt.Fprintln(glob.Stdout, line)
		}
		_, _ = fmt.Fprintf(glob.Stdout, "Generated %d of %d sites (%s)\n", report.Succeeded(), len(report.Sites), report.Outcome)
	}

	if rec != nil {
		if err := rec.WriteTextfile(g.MetricsFile); err != nil {
			slog.Warn("Failed to write metrics", logfields.Path(g.MetricsFile), logfields.Error(err))
		}
	}
	return genErr
}
