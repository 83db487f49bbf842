package hugo

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"git.home.luguber.info/inful/stdsites/internal/config"
	ferrors "git.home.luguber.info/inful/stdsites/internal/foundation/errors"
	"git.home.luguber.info/inful/stdsites/internal/gitinfo"
	th "git.home.luguber.info/inful/stdsites/internal/hugo/theme"
	_ "git.home.luguber.info/inful/stdsites/internal/hugo/themes/docsy"
	_ "git.home.luguber.info/inful/stdsites/internal/hugo/themes/hextra"
	_ "git.home.luguber.info/inful/stdsites/internal/hugo/themes/relearn"
	"git.home.luguber.info/inful/stdsites/internal/logfields"
	"git.home.luguber.info/inful/stdsites/internal/metrics"
	"git.home.luguber.info/inful/stdsites/internal/registry"
)

// Generator writes the Hugo configuration of every site in the family.
type Generator struct {
	config       *config.Config
	registry     *registry.Registry
	outputDir    string
	titles       map[string]string
	recorder     metrics.Recorder
	now          func() time.Time
	readRevision gitinfo.Reader
	only         []string
}

// NewGenerator creates a generator writing below outputDir.
func NewGenerator(cfg *config.Config, reg *registry.Registry, outputDir string) *Generator {
	return &Generator{
		config:       cfg,
		registry:     reg,
		outputDir:    filepath.Clean(outputDir),
		titles:       siteTitles(cfg),
		recorder:     metrics.NoopRecorder{},
		now:          time.Now,
		readRevision: gitinfo.Head,
	}
}

// SetRecorder injects a metrics recorder (nil resets to noop).
func (g *Generator) SetRecorder(r metrics.Recorder) *Generator {
	if r == nil {
		r = metrics.NoopRecorder{}
	}
	g.recorder = r
	return g
}

// WithClock replaces the time source, for reproducible output in tests.
func (g *Generator) WithClock(now func() time.Time) *Generator {
	g.now = now
	return g
}

// WithRevisionReader replaces how content revisions are read.
func (g *Generator) WithRevisionReader(r gitinfo.Reader) *Generator {
	g.readRevision = r
	return g
}

// OnlySites restricts Generate to the given site keys.
func (g *Generator) OnlySites(keys ...string) *Generator {
	g.only = keys
	return g
}

// OutputDir returns the directory sites are written to.
func (g *Generator) OutputDir() string { return g.outputDir }

// Generate writes every selected site and the generation report. A failing
// site does not stop the others; all site errors are joined in the result.
func (g *Generator) Generate(ctx context.Context) (*Report, error) {
	sites, err := g.selectedSites()
	if err != nil {
		return nil, err
	}

	report := &Report{GenerationID: uuid.NewString(), Start: g.now()}
	log := slog.With(logfields.GenerationID(report.GenerationID))
	log.Info("Generating sites",
		logfields.Count(len(sites)),
		logfields.Path(g.outputDir),
		logfields.Theme(string(g.config.Preset.ThemeType())))

	if err := g.prepareOutput(); err != nil {
		return nil, err
	}

	var errs []error
	canceled := false
	for _, site := range sites {
		if ctx.Err() != nil {
			canceled = true
			report.Sites = append(report.Sites, SiteResult{Key: site.Key, Outcome: SiteCanceled})
			g.recorder.IncSiteResult(site.Key, metrics.ResultCanceled)
			continue
		}
		res, err := g.generateSite(site, report.GenerationID)
		report.Sites = append(report.Sites, res)
		if err != nil {
			log.Error("Site generation failed", logfields.Site(site.Key), logfields.Error(err))
			errs = append(errs, err)
		}
	}
	if canceled {
		errs = append(errs, ctx.Err())
	}

	report.End = g.now()
	report.deriveOutcome(canceled)
	g.recorder.ObserveGenerationDuration(report.End.Sub(report.Start))
	g.recorder.IncGenerationOutcome(string(report.Outcome))

	if err := report.Persist(g.outputDir); err != nil {
		errs = append(errs, err)
	}
	log.Info("Generation finished",
		"outcome", string(report.Outcome),
		logfields.Count(report.Succeeded()),
		logfields.DurationMS(float64(report.End.Sub(report.Start).Milliseconds())))
	return report, errors.Join(errs...)
}

// GenerateSite writes a single site without touching the rest of the output.
func (g *Generator) GenerateSite(ctx context.Context, key string) (SiteResult, error) {
	if err := ctx.Err(); err != nil {
		return SiteResult{Key: key, Outcome: SiteCanceled}, err
	}
	site, ok := g.config.Site(key)
	if !ok {
		return SiteResult{Key: key, Outcome: SiteFailed}, ferrors.NotFoundError("site is not configured").
			WithContext("site", key).
			Build()
	}
	if err := checkSiteKey(key); err != nil {
		return SiteResult{Key: key, Outcome: SiteFailed}, err
	}
	return g.generateSite(site, uuid.NewString())
}

func (g *Generator) generateSite(site *config.SiteOptions, generationID string) (SiteResult, error) {
	start := time.Now()
	res := SiteResult{Key: site.Key}
	finish := func(err error) (SiteResult, error) {
		res.Duration = time.Since(start)
		res.DurationMS = res.Duration.Milliseconds()
		g.recorder.ObserveSiteDuration(site.Key, res.Duration)
		if err != nil {
			res.Outcome = SiteFailed
			res.Error = err.Error()
			g.recorder.IncSiteResult(site.Key, metrics.ResultFailed)
			return res, err
		}
		res.Outcome = SiteSuccess
		g.recorder.IncSiteResult(site.Key, metrics.ResultSuccess)
		return res, nil
	}

	rev := g.revision(site)
	if rev != nil {
		res.Revision = rev.Short
	}
	root, err := g.buildSiteConfig(siteInput{site: site, revision: rev, generationID: generationID})
	if err != nil {
		return finish(err)
	}

	siteDir := filepath.Join(g.outputDir, site.Key)
	path, err := writeSiteConfig(siteDir, root)
	if err != nil {
		return finish(err)
	}
	res.ConfigPath = path
	if err := writeShortcodes(siteDir); err != nil {
		return finish(err)
	}
	home, _ := root["baseURL"].(string)
	features := th.Resolve(g.config.Preset.ThemeType()).Features()
	if err := ensureGoMod(siteDir, site.Key, home, features); err != nil {
		return finish(err)
	}

	slog.Info("Generated site", logfields.Site(site.Key), logfields.Path(path))
	return finish(nil)
}

// revision reads the content revision; git problems only degrade the footer.
func (g *Generator) revision(site *config.SiteOptions) *gitinfo.Info {
	if site.ContentDir == "" || g.readRevision == nil {
		return nil
	}
	info, err := g.readRevision(site.ContentDir)
	switch {
	case err == nil:
		return info
	case errors.Is(err, gitinfo.ErrNotRepository):
		slog.Debug("Content directory is not a git repository", logfields.Site(site.Key), logfields.Path(site.ContentDir))
	default:
		slog.Warn("Failed to read content revision", logfields.Site(site.Key), logfields.Error(err))
	}
	return nil
}

func (g *Generator) selectedSites() ([]*config.SiteOptions, error) {
	if len(g.only) == 0 {
		out := make([]*config.SiteOptions, 0, len(g.config.Sites))
		for i := range g.config.Sites {
			if err := checkSiteKey(g.config.Sites[i].Key); err != nil {
				return nil, err
			}
			out = append(out, &g.config.Sites[i])
		}
		return out, nil
	}
	out := make([]*config.SiteOptions, 0, len(g.only))
	for _, key := range g.only {
		site, ok := g.config.Site(key)
		if !ok {
			return nil, ferrors.NotFoundError("site is not configured").
				WithContext("site", key).
				WithHint("run 'stdsites sites' to list configured sites").
				Build()
		}
		if err := checkSiteKey(key); err != nil {
			return nil, err
		}
		out = append(out, site)
	}
	return out, nil
}

// prepareOutput cleans and creates the output directory. A filtered run only
// replaces the selected site directories.
func (g *Generator) prepareOutput() error {
	if g.config.Output.ShouldClean() {
		if len(g.only) > 0 {
			for _, key := range g.only {
				if err := os.RemoveAll(filepath.Join(g.outputDir, key)); err != nil {
					return ferrors.WrapError(err, ferrors.CategoryFileSystem, "failed to clean site directory").
						WithContext("site", key).
						Build()
				}
			}
		} else {
			if err := g.cleanOutput(); err != nil {
				return err
			}
		}
	}
	if err := os.MkdirAll(g.outputDir, 0o750); err != nil {
		return ferrors.WrapError(err, ferrors.CategoryFileSystem, "failed to create output directory").
			WithContext("path", g.outputDir).
			Build()
	}
	return nil
}

func (g *Generator) cleanOutput() error {
	abs, err := filepath.Abs(g.outputDir)
	if err != nil {
		return ferrors.WrapError(err, ferrors.CategoryFileSystem, "failed to resolve output directory").Build()
	}
	wd, _ := os.Getwd()
	if abs == filepath.Dir(abs) || abs == wd {
		return ferrors.ConfigError("refusing to clean output directory").
			WithContext("path", abs).
			WithHint("set output.directory to a dedicated directory or output.clean to false").
			Build()
	}
	if err := os.RemoveAll(abs); err != nil {
		return ferrors.WrapError(err, ferrors.CategoryFileSystem, "failed to clean output directory").
			WithContext("path", abs).
			Build()
	}
	return nil
}

// checkSiteKey refuses keys that would place a site directory outside the
// output directory. Loaded configurations are already validated; this covers
// configurations assembled in code.
func checkSiteKey(key string) error {
	if config.ValidSiteKey(key) {
		return nil
	}
	return ferrors.ValidationError(fmt.Sprintf("invalid site key: %q", key)).
		WithContext("site", key).
		Build()
}
