package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	ferrors "git.home.luguber.info/inful/stdsites/internal/foundation/errors"
)

const minimalYAML = `
version: "1.0"
registry:
  - key: portal
    url: https://standards.example.org
    base_url: /
  - key: LRM
    url: https://standards.example.org
    base_url: /LRM/
preset:
  defaults:
    favicon: /img/favicon.ico
    logo:
      src: /img/logo.svg
      alt: Family logo
    copyright: "© {year} Example"
sites:
  - key: portal
    title: Portal
    tagline: All standards
  - key: LRM
    title: Library Reference Model
    favicon: /LRM/favicon.ico
    logo:
      src: /img/lrm.svg
    vocabulary:
      namespace: https://standards.example.org/LRM/ns/
      prefix: lrm
`

func TestParse_AppliesDefaults(t *testing.T) {
	cfg, err := Parse([]byte(minimalYAML))
	require.NoError(t, err)

	assert.Equal(t, ThemeHextra, cfg.Preset.ThemeType())
	assert.Equal(t, DefaultLanguageCode, cfg.Preset.LanguageCode)
	assert.True(t, BoolValue(cfg.Preset.Search, false))
	assert.Equal(t, DefaultOutputDir, cfg.Output.Directory)
	assert.True(t, cfg.Output.ShouldClean())
	assert.Equal(t, LogLevelInfo, cfg.Monitoring.Logging.Level)
	assert.Equal(t, LogFormatText, cfg.Monitoring.Logging.Format)

	portal, ok := cfg.Site("portal")
	require.True(t, ok)
	assert.Equal(t, "/img/favicon.ico", portal.Favicon)
	assert.Equal(t, "/img/logo.svg", portal.Logo.Src)
	assert.Equal(t, DefaultEditBranch, portal.EditBranch)
	assert.Equal(t, DefaultContentPath, portal.ContentPath)
	assert.Equal(t, "All standards", portal.Description, "description falls back to tagline")
	assert.Equal(t, DefaultFooterStyle, portal.Footer.Style)

	lrm, ok := cfg.Site("LRM")
	require.True(t, ok)
	assert.Equal(t, "/LRM/favicon.ico", lrm.Favicon, "site value wins over preset")
	assert.Equal(t, "/img/lrm.svg", lrm.Logo.Src)
	assert.Equal(t, "Family logo", lrm.Logo.Alt, "empty nested fields are filled from preset")
	require.NotNil(t, lrm.Vocabulary)
	assert.Equal(t, DefaultVocabularyPath, lrm.Vocabulary.Path)
	assert.Equal(t, []string{"ttl", "jsonld"}, lrm.Vocabulary.Formats)
	assert.Equal(t, "Library Reference Model", lrm.Vocabulary.Title)
}

func TestParse_EnvExpansionAndOverrides(t *testing.T) {
	t.Setenv("PORTAL_URL", "https://portal.example.net")
	t.Setenv("STDSITES_OUTPUT_DIR", "/tmp/out")
	t.Setenv("STDSITES_LOG_LEVEL", "DEBUG")
	t.Setenv("STDSITES_THEME", "relearn")

	yml := `
version: "1.0"
registry:
  - key: portal
    url: ${PORTAL_URL}
sites:
  - key: portal
    title: Portal
output:
  directory: ./site
`
	cfg, err := Parse([]byte(yml))
	require.NoError(t, err)
	assert.Equal(t, "https://portal.example.net", cfg.Registry[0].URL)
	assert.Equal(t, "/tmp/out", cfg.Output.Directory)
	assert.Equal(t, LogLevelDebug, cfg.Monitoring.Logging.Level)
	assert.Equal(t, ThemeRelearn, cfg.Preset.ThemeType())
}

func TestParse_Normalization(t *testing.T) {
	yml := `
version: "1.0"
registry:
  - key: " portal "
    url: https://example.org
preset:
  theme: HEXTRA
  footer:
    style: Light
sites:
  - key: portal
    title: Portal
    navbar:
      items:
        - label: Docs
          to: /docs
          position: RIGHT
    vocabulary:
      namespace: https://example.org/ns#
      prefix: ex
      formats: [TTL, " nt "]
monitoring:
  logging:
    level: WARNING
    format: JSON
`
	cfg, err := Parse([]byte(yml))
	require.NoError(t, err)
	assert.Equal(t, "portal", cfg.Registry[0].Key)
	assert.Equal(t, "hextra", cfg.Preset.Theme)
	assert.Equal(t, "light", cfg.Preset.Footer.Style)
	assert.Equal(t, "light", cfg.Sites[0].Footer.Style, "site inherits preset footer style")
	assert.Equal(t, "right", cfg.Sites[0].Navbar.Items[0].Position)
	assert.Equal(t, []string{"ttl", "nt"}, cfg.Sites[0].Vocabulary.Formats)
	assert.Equal(t, LogLevelWarn, cfg.Monitoring.Logging.Level)
	assert.Equal(t, LogFormatJSON, cfg.Monitoring.Logging.Format)
}

func TestParse_EnvExpansionKeepsLiteralDollars(t *testing.T) {
	t.Setenv("STDSITES_TEST_HOLDER", "Example Org")

	yml := `
version: "1.0"
registry:
  - key: portal
    url: https://standards.example.org
preset:
  params:
    math:
      delimiters: ["$$", "$"]
sites:
  - key: portal
    title: Portal
    tagline: "${STDSITES_TEST_UNSET_VAR} stays"
    footer:
      copyright: "$5 per copy, ${STDSITES_TEST_HOLDER}"
`
	cfg, err := Parse([]byte(yml))
	require.NoError(t, err)

	math := cfg.Preset.Params["math"].(map[string]any)
	assert.Equal(t, []any{"$$", "$"}, math["delimiters"])
	portal, ok := cfg.Site("portal")
	require.True(t, ok)
	assert.Equal(t, "$5 per copy, Example Org", portal.Footer.Copyright)
	assert.Equal(t, "${STDSITES_TEST_UNSET_VAR} stays", portal.Tagline)
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name     string
		yaml     string
		category ferrors.ErrorCategory
		contains string
	}{
		{
			name:     "wrong version",
			yaml:     "version: \"2.0\"\n",
			category: ferrors.CategoryConfig,
			contains: "unsupported configuration version",
		},
		{
			name:     "unknown field",
			yaml:     "version: \"1.0\"\nbogus: true\n",
			category: ferrors.CategoryConfig,
			contains: "failed to unmarshal",
		},
		{
			name:     "empty registry",
			yaml:     "version: \"1.0\"\nsites: [{key: a, title: A}]\n",
			category: ferrors.CategoryValidation,
			contains: "registry must contain",
		},
		{
			name: "duplicate registry key",
			yaml: `version: "1.0"
registry: [{key: a, url: "https://a.org"}, {key: a, url: "https://b.org"}]
sites: [{key: a, title: A}]
`,
			category: ferrors.CategoryValidation,
			contains: "duplicate registry key",
		},
		{
			name: "registry keys differing in case",
			yaml: `version: "1.0"
registry: [{key: lrm, url: "https://a.org"}, {key: LRM, url: "https://b.org"}]
sites: [{key: lrm, title: A}]
`,
			category: ferrors.CategoryValidation,
			contains: "differ only in case",
		},
		{
			name: "parent directory key",
			yaml: `version: "1.0"
registry: [{key: "..", url: "https://a.org"}]
sites: [{key: "..", title: A}]
`,
			category: ferrors.CategoryValidation,
			contains: "invalid registry key",
		},
		{
			name: "key with path separator",
			yaml: `version: "1.0"
registry: [{key: "a/b", url: "https://a.org"}]
sites: [{key: "a/b", title: A}]
`,
			category: ferrors.CategoryValidation,
			contains: "invalid registry key",
		},
		{
			name: "key naming the report file",
			yaml: `version: "1.0"
registry: [{key: generation-report.json, url: "https://a.org"}]
sites: [{key: generation-report.json, title: A}]
`,
			category: ferrors.CategoryValidation,
			contains: "invalid registry key",
		},
		{
			name: "relative registry url",
			yaml: `version: "1.0"
registry: [{key: a, url: "/a"}]
sites: [{key: a, title: A}]
`,
			category: ferrors.CategoryValidation,
			contains: "absolute http(s) url",
		},
		{
			name: "site missing from registry",
			yaml: `version: "1.0"
registry: [{key: a, url: "https://a.org"}]
sites: [{key: b, title: B}]
`,
			category: ferrors.CategoryValidation,
			contains: "not declared in the registry",
		},
		{
			name: "missing title",
			yaml: `version: "1.0"
registry: [{key: a, url: "https://a.org"}]
sites: [{key: a}]
`,
			category: ferrors.CategoryValidation,
			contains: "must have a title",
		},
		{
			name: "unknown theme",
			yaml: `version: "1.0"
registry: [{key: a, url: "https://a.org"}]
preset: {theme: bootstrap}
sites: [{key: a, title: A}]
`,
			category: ferrors.CategoryValidation,
			contains: "unsupported theme",
		},
		{
			name: "navbar link to unknown site",
			yaml: `version: "1.0"
registry: [{key: a, url: "https://a.org"}]
sites:
  - key: a
    title: A
    navbar:
      items: [{label: Other, site: zz, to: /}]
`,
			category: ferrors.CategoryValidation,
			contains: "references unknown site zz",
		},
		{
			name: "to and href",
			yaml: `version: "1.0"
registry: [{key: a, url: "https://a.org"}]
sites:
  - key: a
    title: A
    footer:
      columns:
        - title: Links
          items: [{label: X, to: /x, href: "https://x.org"}]
`,
			category: ferrors.CategoryValidation,
			contains: "sets both 'to' and 'href'",
		},
		{
			name: "bad vocabulary namespace",
			yaml: `version: "1.0"
registry: [{key: a, url: "https://a.org"}]
sites:
  - key: a
    title: A
    vocabulary: {namespace: "https://a.org/ns", prefix: a}
`,
			category: ferrors.CategoryValidation,
			contains: "namespace must be an absolute URI",
		},
		{
			name: "bad vocabulary format",
			yaml: `version: "1.0"
registry: [{key: a, url: "https://a.org"}]
sites:
  - key: a
    title: A
    vocabulary: {namespace: "https://a.org/ns/", prefix: a, formats: [owl]}
`,
			category: ferrors.CategoryValidation,
			contains: "format \"owl\" is not supported",
		},
		{
			name: "duplicate vocabulary format",
			yaml: `version: "1.0"
registry: [{key: a, url: "https://a.org"}]
sites:
  - key: a
    title: A
    vocabulary: {namespace: "https://a.org/ns/", prefix: a, formats: [ttl, TTL]}
`,
			category: ferrors.CategoryValidation,
			contains: "format \"ttl\" is listed twice",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			require.Error(t, err)
			assert.True(t, ferrors.HasCategory(err, tt.category), "category of %v", err)
			assert.Contains(t, err.Error(), tt.contains)
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	ce, ok := ferrors.AsClassified(err)
	require.True(t, ok)
	assert.Equal(t, ferrors.CategoryConfig, ce.Category())
	assert.NotEmpty(t, ce.Hint())
}

func TestInit_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "family.yaml")
	require.NoError(t, Init(path, false))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Len(t, cfg.Registry, 3)
	assert.Len(t, cfg.Sites, 3)

	err = Init(path, false)
	require.Error(t, err, "existing file must not be overwritten without force")
	require.NoError(t, Init(path, true))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

func TestValidSiteKey(t *testing.T) {
	tests := []struct {
		key  string
		want bool
	}{
		{"LRM", true},
		{"portal", true},
		{"ead-3_x", true},
		{"2024", true},
		{"", false},
		{".", false},
		{"..", false},
		{"a/b", false},
		{`a\b`, false},
		{"-lead", false},
		{"has space", false},
		{"report.json", false},
	}
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			assert.Equal(t, tt.want, ValidSiteKey(tt.key))
		})
	}
}
