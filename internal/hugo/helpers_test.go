package hugo

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"git.home.luguber.info/inful/stdsites/internal/config"
	"git.home.luguber.info/inful/stdsites/internal/registry"
)

var fixedNow = time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)

const familyYAML = `version: "1.0"
registry:
  - {key: portal, url: "https://standards.example.org", base_url: "/"}
  - {key: LRM, url: "https://standards.example.org", base_url: "/LRM/"}
  - {key: EAD, url: "https://ead.example.org"}
preset:
  theme: hextra
  params:
    page: {width: wide}
  navbar:
    items:
      - {label: Community, href: "https://forum.example.org"}
  footer:
    copyright: "Preset {year}"
    columns:
      - title: Family
        items:
          - {label: Portal, site: portal, to: /}
          - {label: Contact, href: "mailto:team@example.org"}
  defaults:
    favicon: /favicon.ico
    copyright: "© {year} {title}"
sites:
  - key: portal
    title: Standards Portal
    tagline: Entry point
  - key: LRM
    title: Library Reference Model
    repository: https://github.com/example/lrm
    content_path: docs/content
    navbar:
      items:
        - {label: Specification, to: /docs}
        - label: Related
          items:
            - {label: EAD Tag Library, site: EAD, to: /tag-library}
            - {label: Portal, site: portal}
    footer:
      columns:
        - title: Model
          items:
            - {label: Vocabulary, to: /vocabulary}
    vocabulary:
      namespace: "https://standards.example.org/LRM/ns/"
      prefix: lrm
      version: "1.0"
    params:
      page: {width: full}
  - key: EAD
    title: Encoded Archival Description
    navbar:
      hide_site_switcher: true
`

func loadFamily(t *testing.T, yaml string) (*config.Config, *registry.Registry) {
	t.Helper()
	cfg, err := config.Parse([]byte(yaml))
	require.NoError(t, err)
	reg, err := registry.FromConfig(cfg)
	require.NoError(t, err)
	return cfg, reg
}

func mustSite(t *testing.T, cfg *config.Config, key string) *config.SiteOptions {
	t.Helper()
	site, ok := cfg.Site(key)
	require.True(t, ok, "site %s", key)
	return site
}
