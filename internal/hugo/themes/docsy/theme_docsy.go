package docsy

import (
	"fmt"

	"git.home.luguber.info/inful/stdsites/internal/config"
	th "git.home.luguber.info/inful/stdsites/internal/hugo/theme"
)

type Theme struct{}

func (Theme) Name() config.Theme { return config.ThemeDocsy }

func (Theme) Features() th.Features {
	return th.Features{
		Name: config.ThemeDocsy, UsesModules: true, ModulePath: "github.com/google/docsy", ModuleVersion: "v0.12.0",
		EnableOfflineSearchJSON: true, NavbarMenu: "main", DefaultSearchType: "offline",
	}
}

func (Theme) ApplyParams(ctx th.ParamContext, params map[string]any) {
	preset := ctx.Preset()
	site := ctx.Site()

	search := config.BoolValue(preset.Search, true)
	params["offlineSearch"] = search
	params["offlineSearchSummaryLength"] = 200
	params["offlineSearchMaxResults"] = 25
	params["ui"] = map[string]any{
		"sidebar_menu_compact":   false,
		"sidebar_menu_foldable":  true,
		"breadcrumb_disable":     false,
		"footer_about_disable":   false,
		"navbar_logo":            site.Logo.Src != "",
		"sidebar_search_disable": !search,
	}
	if site.Repository != "" {
		params["links"] = map[string]any{
			"developer": []map[string]any{{
				"name": fmt.Sprintf("%s Repository", site.Title),
				"url":  site.Repository,
				"icon": "fab fa-github",
				"desc": fmt.Sprintf("Development happens here for %s", site.Title),
			}},
		}
	}
	if config.BoolValue(preset.Mermaid, true) {
		params["mermaid"] = map[string]any{"enable": true}
	}
}

// CustomizeRoot maps the composed editURL block onto Docsy's github_* params.
func (Theme) CustomizeRoot(ctx th.ParamContext, root map[string]any) {
	params, ok := root["params"].(map[string]any)
	if !ok {
		return
	}
	delete(params, "editURL")
	site := ctx.Site()
	if site.Repository == "" {
		return
	}
	params["github_repo"] = site.Repository
	params["github_branch"] = site.EditBranch
	params["github_subdir"] = site.ContentPath
	params["edit_page"] = true
}

func init() { th.RegisterTheme(Theme{}) }
