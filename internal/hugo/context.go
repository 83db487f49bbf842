package hugo

import (
	"git.home.luguber.info/inful/stdsites/internal/config"
	th "git.home.luguber.info/inful/stdsites/internal/hugo/theme"
)

// siteContext is the view of one site handed to theme hooks.
type siteContext struct {
	site   *config.SiteOptions
	preset *config.Preset
}

var _ th.ParamContext = siteContext{}

func (c siteContext) Site() *config.SiteOptions { return c.site }
func (c siteContext) Preset() *config.Preset     { return c.preset }
