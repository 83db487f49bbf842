package hugo

import (
	"strconv"
	"strings"
	"time"

	"git.home.luguber.info/inful/stdsites/internal/config"
	"git.home.luguber.info/inful/stdsites/internal/gitinfo"
	"git.home.luguber.info/inful/stdsites/internal/registry"
)

// FooterInput carries what BuildFooter needs.
type FooterInput struct {
	Site     *config.SiteOptions
	Preset   *config.Preset
	Registry *registry.Registry
	Now      time.Time
	Revision *gitinfo.Info // nil when the content is not under git
}

// BuildFooter composes params.footer for one site. Site columns come first,
// followed by the preset's shared columns.
func BuildFooter(in FooterInput) (map[string]any, error) {
	cols := make([]config.FooterColumn, 0, len(in.Site.Footer.Columns)+len(in.Preset.Footer.Columns))
	cols = append(cols, in.Site.Footer.Columns...)
	cols = append(cols, in.Preset.Footer.Columns...)

	columns := make([]map[string]any, 0, len(cols))
	for _, col := range cols {
		items := make([]map[string]any, 0, len(col.Items))
		for _, it := range col.Items {
			link, err := resolveLink(it, in.Registry)
			if err != nil {
				return nil, err
			}
			items = append(items, map[string]any{
				"label":    link.Label,
				"url":      link.href(),
				"external": link.External,
			})
		}
		columns = append(columns, map[string]any{"title": col.Title, "items": items})
	}

	style := in.Site.Footer.Style
	if style == "" {
		style = in.Preset.Footer.Style
	}

	footer := map[string]any{
		"style":   style,
		"columns": columns,
	}
	if c := copyrightText(in.Site, in.Preset, in.Now); c != "" {
		footer["copyright"] = c
	}
	if in.Revision != nil {
		rev := map[string]any{"commit": in.Revision.Commit, "short": in.Revision.Short}
		if in.Revision.Branch != "" {
			rev["branch"] = in.Revision.Branch
		}
		if !in.Revision.Date.IsZero() {
			rev["date"] = in.Revision.Date.UTC().Format(time.RFC3339)
		}
		footer["revision"] = rev
	}
	return footer, nil
}

// copyrightText picks the most specific copyright template and expands
// {year} and {title}.
func copyrightText(site *config.SiteOptions, preset *config.Preset, now time.Time) string {
	tmpl := site.Footer.Copyright
	if tmpl == "" {
		tmpl = site.Copyright
	}
	if tmpl == "" {
		tmpl = preset.Footer.Copyright
	}
	if tmpl == "" {
		return ""
	}
	r := strings.NewReplacer("{year}", strconv.Itoa(now.Year()), "{title}", site.Title)
	return r.Replace(tmpl)
}
