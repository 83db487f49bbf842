package hugo

import (
	"fmt"
	"strings"
	"unicode"

	"golang.org/x/text/cases"

	"git.home.luguber.info/inful/stdsites/internal/config"
	"git.home.luguber.info/inful/stdsites/internal/registry"
)

// resolvedLink is a NavItem with its destination worked out.
type resolvedLink struct {
	Label    string
	URL      string // absolute for cross-site and external links
	PageRef  string // site-local route
	External bool
}

// resolveLink resolves item against the registry. Cross-site items become
// absolute URLs, Href is kept verbatim and a bare To stays site-local.
func resolveLink(item config.NavItem, reg *registry.Registry) (resolvedLink, error) {
	out := resolvedLink{Label: item.Label}
	switch {
	case item.Site != "":
		u, err := reg.BuildURL(item.Site, item.To)
		if err != nil {
			return out, fmt.Errorf("link %q: %w", item.Label, err)
		}
		out.URL = u
	case item.Href != "":
		out.URL = item.Href
		out.External = true
	case item.To != "":
		out.PageRef = item.To
	}
	return out, nil
}

// href returns the link target as a single string.
func (l resolvedLink) href() string {
	if l.URL != "" {
		return l.URL
	}
	return l.PageRef
}

// identifier derives a stable Hugo menu identifier from a label.
func identifier(parent, label string) string {
	var b strings.Builder
	dash := false
	for _, r := range cases.Fold().String(label) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
			dash = false
			continue
		}
		if !dash && b.Len() > 0 {
			b.WriteByte('-')
			dash = true
		}
	}
	id := strings.TrimRight(b.String(), "-")
	if parent != "" {
		return parent + "." + id
	}
	return id
}
