package hugo

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"git.home.luguber.info/inful/stdsites/internal/config"
	ferrors "git.home.luguber.info/inful/stdsites/internal/foundation/errors"
	"git.home.luguber.info/inful/stdsites/internal/gitinfo"
	th "git.home.luguber.info/inful/stdsites/internal/hugo/theme"
	"git.home.luguber.info/inful/stdsites/internal/logfields"
)

const buildDateLayout = "2006-01-02 15:04:05"

// siteInput is everything that varies per site while building hugo.yaml.
type siteInput struct {
	site         *config.SiteOptions
	revision     *gitinfo.Info
	generationID string
}

// buildSiteConfig composes the hugo.yaml root map for one site.
func (g *Generator) buildSiteConfig(in siteInput) (map[string]any, error) {
	site := in.site
	preset := &g.config.Preset
	ctx := siteContext{site: site, preset: preset}
	engine := th.NewEngine(th.Resolve(preset.ThemeType()))
	features := engine.Features()

	baseURL, err := g.registry.HomeURL(site.Key)
	if err != nil {
		return nil, err
	}

	// Phase 1: core root
	root := map[string]any{
		"title":         site.Title,
		"baseURL":       baseURL,
		"enableGitInfo": in.revision != nil,
		"markup": map[string]any{
			"goldmark":  map[string]any{"renderer": map[string]any{"unsafe": true}},
			"highlight": map[string]any{"style": "github", "lineNos": true, "tabWidth": 4, "noClasses": false},
		},
	}

	// Phases 2-4: theme and preset toggles are the computed layer; the
	// preset's params and then the site's own params override it.
	computed := ComposeParams(engine.Params(ctx), nil, PresetParams(preset))
	params := ComposeParams(preset.Params, site.Params, computed)

	// Phase 5: dynamic fields
	now := g.now()
	params["build_date"] = now.Format(buildDateLayout)
	params["generation_id"] = in.generationID
	params["site_key"] = site.Key
	setIfAbsent(params, "description", site.Description)
	setIfAbsent(params, "tagline", site.Tagline)
	setIfAbsent(params, "favicon", site.Favicon)

	// Phase 6: module/theme block, math passthrough, search outputs
	applyPreset(root, preset, features)

	// Phase 7: menu
	menu, err := BuildNavbar(NavbarInput{
		Site:     site,
		Preset:   preset,
		Registry: g.registry,
		Features: features,
		Titles:   g.titles,
	})
	if err != nil {
		return nil, ferrors.WrapError(err, ferrors.CategoryRender, "failed to build navbar").
			WithContext("site", site.Key).
			Build()
	}
	if len(menu) > 0 && features.NavbarMenu != "" {
		root["menu"] = map[string]any{features.NavbarMenu: menu}
	}

	// Phase 8: generated params
	footer, err := BuildFooter(FooterInput{
		Site:     site,
		Preset:   preset,
		Registry: g.registry,
		Now:      now,
		Revision: in.revision,
	})
	if err != nil {
		return nil, ferrors.WrapError(err, ferrors.CategoryRender, "failed to build footer").
			WithContext("site", site.Key).
			Build()
	}
	mergeParams(params, map[string]any{"footer": footer})

	vocab, err := BuildVocabulary(site, g.registry)
	if err != nil {
		return nil, ferrors.WrapError(err, ferrors.CategoryRender, "failed to build vocabulary").
			WithContext("site", site.Key).
			Build()
	}
	if vocab != nil {
		params["vocabulary"] = vocab.Params
		params["alternates"] = vocab.Alternates
	}

	params["sites"] = sitesParam(g.registry, g.titles)
	if site.Repository != "" {
		mergeParams(params, map[string]any{"editURL": map[string]any{
			"enable": true,
			"base":   editBase(site),
		}})
	}
	if in.revision != nil {
		params["revision"] = map[string]any{
			"commit": in.revision.Commit,
			"short":  in.revision.Short,
			"branch": in.revision.Branch,
		}
	}
	root["params"] = params

	// Phase 9: theme final customization
	engine.Finalize(ctx, root)
	return root, nil
}

// writeSiteConfig marshals root into <siteDir>/hugo.yaml.
func writeSiteConfig(siteDir string, root map[string]any) (string, error) {
	if err := os.MkdirAll(siteDir, 0o750); err != nil {
		return "", ferrors.WrapError(err, ferrors.CategoryFileSystem, "failed to create site directory").
			WithContext("path", siteDir).
			Build()
	}
	data, err := yaml.Marshal(root)
	if err != nil {
		return "", ferrors.WrapError(err, ferrors.CategoryInternal, "failed to marshal Hugo config").Build()
	}
	path := filepath.Join(siteDir, "hugo.yaml")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return "", ferrors.WrapError(err, ferrors.CategoryFileSystem, "failed to write Hugo config").
			WithContext("path", path).
			Build()
	}
	slog.Debug("Wrote Hugo configuration", logfields.Path(path))
	return path, nil
}

// editBase is the repository URL under which a page's source path is
// appended to form its edit link.
func editBase(site *config.SiteOptions) string {
	base := strings.TrimRight(site.Repository, "/") + "/edit/" + site.EditBranch
	if p := strings.Trim(site.ContentPath, "/"); p != "" {
		base += "/" + p
	}
	return base + "/"
}

func setIfAbsent(params map[string]any, key, value string) {
	if value == "" {
		return
	}
	if _, ok := params[key]; !ok {
		params[key] = value
	}
}
