package theme

import (
	"sync"

	"git.home.luguber.info/inful/stdsites/internal/config"
)

// Features describes capability flags and module path for a theme.
type Features struct {
	Name                    config.Theme
	UsesModules             bool
	ModulePath              string
	ModuleVersion           string
	EnableMathPassthrough   bool
	EnableOfflineSearchJSON bool
	NavbarMenu              string // Hugo menu that receives navbar entries
	AutoMenuEntries         bool   // theme wants search/theme-toggle entries in the navbar
	DefaultSearchType       string
	ProvidesMermaidSupport  bool
}

// ParamContext is the surface a theme sees of the site being generated.
type ParamContext interface {
	Site() *config.SiteOptions
	Preset() *config.Preset
}

// Theme provides hooks for shaping the generated Hugo configuration.
type Theme interface {
	Name() config.Theme
	Features() Features
	ApplyParams(ctx ParamContext, params map[string]any)
	CustomizeRoot(ctx ParamContext, root map[string]any)
}

var (
	regMu sync.RWMutex
	reg   = map[config.Theme]Theme{}
)

// RegisterTheme registers a Theme implementation. Duplicate names are ignored.
func RegisterTheme(t Theme) {
	if t == nil {
		return
	}
	regMu.Lock()
	defer regMu.Unlock()
	if _, ok := reg[t.Name()]; !ok {
		reg[t.Name()] = t
	}
}

// Get retrieves a theme by name, or nil when none is registered.
func Get(name config.Theme) Theme {
	regMu.RLock()
	defer regMu.RUnlock()
	return reg[name]
}

// NullTheme is used when the configured theme has not registered itself.
type NullTheme struct{ name config.Theme }

// Null returns a no-op theme carrying name.
func Null(name config.Theme) NullTheme { return NullTheme{name: name} }

func (n NullTheme) Name() config.Theme { return n.name }
func (n NullTheme) Features() Features { return Features{Name: n.name, NavbarMenu: "main"} }
func (NullTheme) ApplyParams(_ ParamContext, _ map[string]any) {}
func (NullTheme) CustomizeRoot(_ ParamContext, _ map[string]any) {}

// Resolve returns the registered theme for name or a NullTheme.
func Resolve(name config.Theme) Theme {
	if t := Get(name); t != nil {
		return t
	}
	return Null(name)
}
