package relearn

import (
	"strings"

	"git.home.luguber.info/inful/stdsites/internal/config"
	th "git.home.luguber.info/inful/stdsites/internal/hugo/theme"
)

type Theme struct{}

func (Theme) Name() config.Theme { return config.ThemeRelearn }

func (Theme) Features() th.Features {
	return th.Features{
		Name:                    config.ThemeRelearn,
		UsesModules:             true,
		ModulePath:              "github.com/McShelby/hugo-theme-relearn",
		EnableMathPassthrough:   true,
		EnableOfflineSearchJSON: true,
		NavbarMenu:              "shortcuts", // Relearn builds the sidebar from content; extra links go to shortcuts
		DefaultSearchType:       "lunr",
		ProvidesMermaidSupport:  true,
	}
}

func (Theme) ApplyParams(ctx th.ParamContext, params map[string]any) {
	preset := ctx.Preset()

	params["themeVariant"] = "auto"
	params["disableGeneratorVersion"] = false
	params["disableBreadcrumb"] = false
	params["showVisitedLinks"] = true
	params["collapsibleMenu"] = true
	params["alwaysopen"] = false
	params["disableLandingPageButton"] = true
	params["disableShortcutsTitle"] = false
	params["search"] = map[string]any{"disable": !config.BoolValue(preset.Search, true)}

	if config.BoolValue(preset.Mermaid, true) {
		params["mermaid"] = map[string]any{"enable": true}
	}
	if config.BoolValue(preset.Math, true) {
		params["math"] = map[string]any{"enable": true}
	}
}

// CustomizeRoot converts the composed editURL block into the pattern string
// Relearn expects.
func (Theme) CustomizeRoot(_ th.ParamContext, root map[string]any) {
	params, ok := root["params"].(map[string]any)
	if !ok {
		return
	}
	edit, ok := params["editURL"].(map[string]any)
	if !ok {
		return
	}
	base, _ := edit["base"].(string)
	if enabled, _ := edit["enable"].(bool); !enabled || base == "" {
		delete(params, "editURL")
		return
	}
	params["editURL"] = strings.TrimRight(base, "/") + "/${FilePath}"
}

func init() { th.RegisterTheme(Theme{}) }
