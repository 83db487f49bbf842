package hextra

import (
	"git.home.luguber.info/inful/stdsites/internal/config"
	th "git.home.luguber.info/inful/stdsites/internal/hugo/theme"
)

type Theme struct{}

func (Theme) Name() config.Theme { return config.ThemeHextra }

func (Theme) Features() th.Features {
	return th.Features{
		Name: config.ThemeHextra, UsesModules: true, ModulePath: "github.com/imfing/hextra", ModuleVersion: "v0.11.0",
		EnableMathPassthrough: true, NavbarMenu: "main", AutoMenuEntries: true, ProvidesMermaidSupport: true, DefaultSearchType: "flexsearch",
	}
}

func (Theme) ApplyParams(ctx th.ParamContext, params map[string]any) {
	preset := ctx.Preset()
	params["search"] = map[string]any{
		"enable":     config.BoolValue(preset.Search, true),
		"type":       "flexsearch",
		"flexsearch": map[string]any{"index": "content", "tokenize": "forward", "version": "0.8.143"},
	}
	params["theme"] = map[string]any{"default": "system", "displayToggle": true}
	params["page"] = map[string]any{"width": "normal"}

	navbar := map[string]any{"displayTitle": true, "displayLogo": false, "width": "normal"}
	site := ctx.Site()
	if site.Logo.Src != "" {
		logo := map[string]any{"path": site.Logo.Src}
		if site.Logo.Dark != "" {
			logo["dark"] = site.Logo.Dark
		}
		if site.Logo.Href != "" {
			logo["link"] = site.Logo.Href
		}
		if site.Logo.Width > 0 {
			logo["width"] = site.Logo.Width
		}
		if site.Logo.Height > 0 {
			logo["height"] = site.Logo.Height
		}
		navbar["displayLogo"] = true
		navbar["logo"] = logo
	}
	params["navbar"] = navbar

	params["footer"] = map[string]any{"enable": true, "displayCopyright": true, "displayPoweredBy": false}
	params["editURL"] = map[string]any{"enable": site.Repository != ""}
}

func (Theme) CustomizeRoot(_ th.ParamContext, _ map[string]any) {}

func init() { th.RegisterTheme(Theme{}) }
