package commands

import (
	"fmt"
	"log/slog"

	ferrors "git.home.luguber.info/inful/stdsites/internal/foundation/errors"
	"git.home.luguber.info/inful/stdsites/internal/logfields"
	"git.home.luguber.info/inful/stdsites/internal/metrics"
	"git.home.luguber.info/inful/stdsites/internal/sitelink"
)

// CheckCmd implements the 'check' command.
type CheckCmd struct {
	Dir         string `arg:"" help:"Content directory to scan for Markdown files"`
	MetricsFile string `name:"metrics-file" help:"Write link resolution metrics in textfile format" type:"path"`
}

func (c *CheckCmd) Run(glob *Global, root *CLI) error {
	cfg, reg, err := root.loadFamily()
	if err != nil {
		return err
	}
	c.MetricsFile = metricsFile(c.MetricsFile, cfg)

	resolver := sitelink.NewResolver(reg)
	var rec *metrics.PrometheusRecorder
	if c.MetricsFile != "" {
		rec = metrics.NewPrometheusRecorder(nil)
		resolver.Recorder = rec
	}

	findings, err := sitelink.Check(c.Dir, resolver)
	if err != nil {
		return err
	}
	if rec != nil {
		if err := rec.WriteTextfile(c.MetricsFile); err != nil {
			slog.Warn("Failed to write metrics", logfields.Path(c.MetricsFile), logfields.Error(err))
		}
	}

	for _, f := range findings {
		_, _ = fmt.Fprintln(glob.Stdout, f.String())
	}
	if len(findings) > 0 {
		return ferrors.ValidationError(fmt.Sprintf("%d unresolved site links", len(findings))).
			WithContext("path", c.Dir).
			WithHint("site keys are case-sensitive; run 'stdsites sites' to list them").
			Build()
	}
	_, _ = fmt.Fprintln(glob.Stdout, "all site links resolve")
	return nil
}
