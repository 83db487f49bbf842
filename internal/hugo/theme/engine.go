package theme

// Engine runs the theme phases against a site's root and params maps.
type Engine struct{ theme Theme }

// NewEngine wraps t.
func NewEngine(t Theme) Engine { return Engine{theme: t} }

// Features returns the wrapped theme's features.
func (e Engine) Features() Features { return e.theme.Features() }

// Params returns the theme's default params for the site. The caller
// merges preset and site params over the result.
func (e Engine) Params(ctx ParamContext) map[string]any {
	params := map[string]any{}
	e.theme.ApplyParams(ctx, params)
	return params
}

// Finalize lets the theme adjust the fully composed root map.
func (e Engine) Finalize(ctx ParamContext, root map[string]any) {
	e.theme.CustomizeRoot(ctx, root)
}
