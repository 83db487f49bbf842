package hugo

import (
	"git.home.luguber.info/inful/stdsites/internal/config"
	"git.home.luguber.info/inful/stdsites/internal/registry"
)

// siteTitles maps each configured site key to its title. Registry entries
// without site options are absent.
func siteTitles(cfg *config.Config) map[string]string {
	out := make(map[string]string, len(cfg.Sites))
	for _, s := range cfg.Sites {
		out[s.Key] = s.Title
	}
	return out
}

// sitesParam publishes the registry as params.sites so templates and the
// sitelink shortcode can build cross-site URLs at render time.
func sitesParam(reg *registry.Registry, titles map[string]string) map[string]any {
	out := make(map[string]any, reg.Len())
	for _, s := range reg.Sites() {
		title := titles[s.Key]
		if title == "" {
			title = s.Key
		}
		out[s.Key] = map[string]any{
			"url":     s.URL,
			"baseUrl": s.BaseURL,
			"home":    s.Home(),
			"title":   title,
		}
	}
	return out
}
