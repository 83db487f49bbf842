package commands

import (
	"fmt"

	"git.home.luguber.info/inful/stdsites/internal/sitelink"
)

// ResolveCmd implements the 'resolve' command.
type ResolveCmd struct {
	Site string `arg:"" help:"Site key, or a complete site:<KEY>/<path> link"`
	Path string `arg:"" optional:"" help:"Path on that site"`
}

func (r *ResolveCmd) Run(glob *Global, root *CLI) error {
	_, reg, err := root.loadFamily()
	if err != nil {
		return err
	}

	var u string
	if _, ok := sitelink.Parse(r.Site); ok {
		u, err = sitelink.NewResolver(reg).Resolve(r.Site)
	} else {
		u, err = reg.BuildURL(r.Site, r.Path)
	}
	if err != nil {
		return err
	}
	_, _ = fmt.Fprintln(glob.Stdout, u)
	return nil
}
