package commands

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"
)

// SitesCmd implements the 'sites' command.
type SitesCmd struct {
	JSON bool `help:"Print JSON instead of a table"`
}

type siteRow struct {
	Key     string `json:"key"`
	Title   string `json:"title,omitempty"`
	Home    string `json:"home"`
	BaseURL string `json:"base_url"`
}

func (s *SitesCmd) Run(glob *Global, root *CLI) error {
	cfg, reg, err := root.loadFamily()
	if err != nil {
		return err
	}

	rows := make([]siteRow, 0, reg.Len())
	for _, site := range reg.Sites() {
		row := siteRow{Key: site.Key, Home: site.Home(), BaseURL: site.BaseURL}
		if opts, ok := cfg.Site(site.Key); ok {
			row.Title = opts.Title
		}
		rows = append(rows, row)
	}

	if s.JSON {
		enc := json.NewEncoder(glob.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(rows)
	}
	tw := tabwriter.NewWriter(glob.Stdout, 0, 4, 2, ' ', 0)
	_, _ = fmt.Fprintln(tw, "KEY\tTITLE\tHOME")
	for _, r := range rows {
		_, _ = fmt.Fprintf(tw, "%s\t%s\t%s\n", r.Key, r.Title, r.Home)
	}
	return tw.Flush()
}
