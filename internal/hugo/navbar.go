package hugo

import (
	"net/url"
	"strings"

	"git.home.luguber.info/inful/stdsites/internal/config"
	th "git.home.luguber.info/inful/stdsites/internal/hugo/theme"
	"git.home.luguber.info/inful/stdsites/internal/registry"
)

// MenuEntry is one Hugo menu item as written to hugo.yaml.
type MenuEntry struct {
	Identifier string         `yaml:"identifier,omitempty"`
	Name       string         `yaml:"name"`
	URL        string         `yaml:"url,omitempty"`
	PageRef    string         `yaml:"pageRef,omitempty"`
	Parent     string         `yaml:"parent,omitempty"`
	Weight     int            `yaml:"weight,omitempty"`
	Params     map[string]any `yaml:"params,omitempty"`
}

// Fixed weights keep theme and generated entries in a stable place around
// the configured items.
const (
	weightSearch      = 4
	weightItemsStart  = 10
	weightItemsStep   = 10
	weightSiteSwitch  = 90
	weightRepository  = 95
	weightThemeToggle = 98

	switcherIdentifier = "sites"
	defaultSwitchLabel = "Sites"
)

// NavbarInput carries what BuildNavbar needs about the family.
type NavbarInput struct {
	Site     *config.SiteOptions
	Preset   *config.Preset
	Registry *registry.Registry
	Features th.Features
	Titles   map[string]string // site key -> title, for the site switcher
}

// BuildNavbar composes the navbar menu for one site: site items, then preset
// items, the site switcher, the repository link and theme-provided entries.
func BuildNavbar(in NavbarInput) ([]MenuEntry, error) {
	var entries []MenuEntry
	weight := weightItemsStart

	items := make([]config.NavItem, 0, len(in.Site.Navbar.Items)+len(in.Preset.Navbar.Items))
	items = append(items, in.Site.Navbar.Items...)
	items = append(items, in.Preset.Navbar.Items...)

	for _, item := range items {
		w := item.Weight
		if w == 0 {
			w = weight
		}
		weight += weightItemsStep
		built, err := buildMenuItem(item, "", w, in.Registry)
		if err != nil {
			return nil, err
		}
		entries = append(entries, built...)
	}

	entries = append(entries, siteSwitcher(in)...)

	if in.Site.Repository != "" {
		entries = append(entries, MenuEntry{
			Name:   repositoryLabel(in.Site.Repository),
			URL:    in.Site.Repository,
			Weight: weightRepository,
			Params: map[string]any{"icon": repositoryIcon(in.Site.Repository)},
		})
	}

	if in.Features.AutoMenuEntries {
		if config.BoolValue(in.Preset.Search, true) {
			entries = append(entries, MenuEntry{Name: "Search", Weight: weightSearch, Params: map[string]any{"type": "search"}})
		}
		entries = append(entries, MenuEntry{Name: "Theme", Weight: weightThemeToggle, Params: map[string]any{"type": "theme-toggle", "label": false}})
	}
	return entries, nil
}

func buildMenuItem(item config.NavItem, parent string, weight int, reg *registry.Registry) ([]MenuEntry, error) {
	link, err := resolveLink(item, reg)
	if err != nil {
		return nil, err
	}
	e := MenuEntry{
		Name:    item.Label,
		URL:     link.URL,
		PageRef: link.PageRef,
		Parent:  parent,
		Weight:  weight,
	}
	params := map[string]any{}
	if item.Icon != "" {
		params["icon"] = item.Icon
	}
	if item.Position != "" {
		params["position"] = item.Position
	}
	if link.External {
		params["external"] = true
	}
	if len(params) > 0 {
		e.Params = params
	}

	out := []MenuEntry{e}
	if len(item.Items) == 0 {
		return out, nil
	}
	out[0].Identifier = identifier(parent, item.Label)
	for i, child := range item.Items {
		w := child.Weight
		if w == 0 {
			w = (i + 1) * weightItemsStep
		}
		built, err := buildMenuItem(child, out[0].Identifier, w, reg)
		if err != nil {
			return nil, err
		}
		out = append(out, built...)
	}
	return out, nil
}

// siteSwitcher lists every other site of the family as children of a
// "Sites" dropdown, in registry order.
func siteSwitcher(in NavbarInput) []MenuEntry {
	if in.Site.Navbar.HideSiteSwitcher || in.Preset.Navbar.HideSiteSwitcher || in.Registry.Len() < 2 {
		return nil
	}
	label := in.Site.Navbar.SwitcherLabel
	if label == "" {
		label = in.Preset.Navbar.SwitcherLabel
	}
	if label == "" {
		label = defaultSwitchLabel
	}

	out := []MenuEntry{{Identifier: switcherIdentifier, Name: label, Weight: weightSiteSwitch}}
	w := 0
	for _, s := range in.Registry.Sites() {
		if s.Key == in.Site.Key {
			continue
		}
		w += weightItemsStep
		name := s.Key
		if t, ok := in.Titles[s.Key]; ok && t != "" {
			name = t
		}
		out = append(out, MenuEntry{Name: name, URL: s.Home(), Parent: switcherIdentifier, Weight: w})
	}
	return out
}

func repositoryLabel(repo string) string {
	if isGitHub(repo) {
		return "GitHub"
	}
	return "Repository"
}

func repositoryIcon(repo string) string {
	if isGitHub(repo) {
		return "github"
	}
	return "code"
}

func isGitHub(repo string) bool {
	u, err := url.Parse(repo)
	if err != nil {
		return false
	}
	host := strings.ToLower(u.Hostname())
	return host == "github.com" || strings.HasSuffix(host, ".github.com")
}
