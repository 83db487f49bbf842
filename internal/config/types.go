package config

// Config is the family configuration: one registry shared by every site,
// a preset applied uniformly, and the per-site options.
type Config struct {
	Version    string           `yaml:"version"`
	Registry   []RegistryEntry  `yaml:"registry"`
	Preset     Preset           `yaml:"preset"`
	Sites      []SiteOptions    `yaml:"sites"`
	Output     OutputConfig     `yaml:"output"`
	Monitoring MonitoringConfig `yaml:"monitoring,omitempty"`
}

// RegistryEntry maps a site key to where that site is deployed.
type RegistryEntry struct {
	Key     string `yaml:"key"`
	URL     string `yaml:"url"`
	BaseURL string `yaml:"base_url,omitempty"`
}

// Preset bundles theme and shared settings applied to every site.
type Preset struct {
	Theme        string            `yaml:"theme,omitempty"`
	LanguageCode string            `yaml:"language_code,omitempty"`
	Search       *bool             `yaml:"search,omitempty"`
	Math         *bool             `yaml:"math,omitempty"`
	Mermaid      *bool             `yaml:"mermaid,omitempty"`
	Taxonomies   map[string]string `yaml:"taxonomies,omitempty"`
	Params       map[string]any    `yaml:"params,omitempty"`
	Navbar       NavbarOptions     `yaml:"navbar,omitempty"`
	Footer       FooterOptions     `yaml:"footer,omitempty"`
	Defaults     SiteDefaults      `yaml:"defaults,omitempty"`
}

// ThemeType returns the normalized theme.
func (p Preset) ThemeType() Theme { return NormalizeTheme(p.Theme) }

// SiteDefaults are the struct-level fields a preset may fill in for sites
// that leave them empty.
type SiteDefaults struct {
	Tagline    string `yaml:"tagline,omitempty"`
	Favicon    string `yaml:"favicon,omitempty"`
	Logo       Logo   `yaml:"logo,omitempty"`
	EditBranch string `yaml:"edit_branch,omitempty"`
	Copyright  string `yaml:"copyright,omitempty"`
}

// Logo describes the navbar logo.
type Logo struct {
	Src    string `yaml:"src,omitempty"`
	Dark   string `yaml:"dark,omitempty"`
	Alt    string `yaml:"alt,omitempty"`
	Href   string `yaml:"href,omitempty"`
	Width  int    `yaml:"width,omitempty"`
	Height int    `yaml:"height,omitempty"`
}

// SiteOptions describes one site of the family.
type SiteOptions struct {
	Key          string `yaml:"key"`
	Title        string `yaml:"title"`
	Description  string `yaml:"description,omitempty"`
	SiteDefaults `yaml:",inline"`
	Repository   string             `yaml:"repository,omitempty"`
	ContentDir   string             `yaml:"content_dir,omitempty"`  // local checkout, used for git revision
	ContentPath  string             `yaml:"content_path,omitempty"` // path inside the repository, used for edit links
	Navbar       NavbarOptions      `yaml:"navbar,omitempty"`
	Footer       FooterOptions      `yaml:"footer,omitempty"`
	Vocabulary   *VocabularyOptions `yaml:"vocabulary,omitempty"`
	Params       map[string]any     `yaml:"params,omitempty"`
}

// NavbarOptions configures the top navigation.
type NavbarOptions struct {
	Items            []NavItem `yaml:"items,omitempty"`
	HideSiteSwitcher bool      `yaml:"hide_site_switcher,omitempty"`
	SwitcherLabel    string    `yaml:"switcher_label,omitempty"`
}

// NavItem is a navbar or footer link. Site makes To relative to another
// site of the family; Href is an external URL.
type NavItem struct {
	Label    string    `yaml:"label"`
	To       string    `yaml:"to,omitempty"`
	Href     string    `yaml:"href,omitempty"`
	Site     string    `yaml:"site,omitempty"`
	Icon     string    `yaml:"icon,omitempty"`
	Position string    `yaml:"position,omitempty"`
	Weight   int       `yaml:"weight,omitempty"`
	Items    []NavItem `yaml:"items,omitempty"`
}

// FooterOptions configures the footer link columns and copyright line.
type FooterOptions struct {
	Style     string         `yaml:"style,omitempty"`
	Columns   []FooterColumn `yaml:"columns,omitempty"`
	Copyright string         `yaml:"copyright,omitempty"`
}

// FooterColumn is a titled group of footer links.
type FooterColumn struct {
	Title string    `yaml:"title"`
	Items []NavItem `yaml:"items"`
}

// VocabularyOptions describes the RDF vocabulary published by a site.
type VocabularyOptions struct {
	Namespace string   `yaml:"namespace"`
	Prefix    string   `yaml:"prefix"`
	Title     string   `yaml:"title,omitempty"`
	Version   string   `yaml:"version,omitempty"`
	Path      string   `yaml:"path,omitempty"`
	Formats   []string `yaml:"formats,omitempty"`
}

// OutputConfig controls where generated site configuration is written.
type OutputConfig struct {
	Directory string `yaml:"directory"`
	Clean     *bool  `yaml:"clean,omitempty"`
}

// ShouldClean reports whether the output directory is wiped before generation.
func (o OutputConfig) ShouldClean() bool { return o.Clean == nil || *o.Clean }

// MonitoringConfig groups logging and metrics settings.
type MonitoringConfig struct {
	Logging LoggingConfig `yaml:"logging,omitempty"`
	Metrics MetricsConfig `yaml:"metrics,omitempty"`
}

// LoggingConfig selects log level and handler format.
type LoggingConfig struct {
	Level  LogLevel  `yaml:"level,omitempty"`
	Format LogFormat `yaml:"format,omitempty"`
}

// MetricsConfig configures the Prometheus textfile export.
type MetricsConfig struct {
	Textfile string `yaml:"textfile,omitempty"`
}

// Site returns the options for key.
func (c *Config) Site(key string) (*SiteOptions, bool) {
	for i := range c.Sites {
		if c.Sites[i].Key == key {
			return &c.Sites[i], true
		}
	}
	return nil, false
}

// BoolValue dereferences an optional flag with a fallback.
func BoolValue(b *bool, def bool) bool {
	if b == nil {
		return def
	}
	return *b
}
