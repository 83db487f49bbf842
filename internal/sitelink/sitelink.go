// Package sitelink resolves cross-site links of the form site:<KEY>/<path>
// against the site registry, both in rendered Markdown and as a content check.
package sitelink

import (
	"strings"

	ferrors "git.home.luguber.info/inful/stdsites/internal/foundation/errors"
	"git.home.luguber.info/inful/stdsites/internal/metrics"
	"git.home.luguber.info/inful/stdsites/internal/registry"
)

// Scheme prefixes every cross-site link destination.
const Scheme = "site:"

// ErrMissingKey is returned for a site link without a site key, e.g. "site:/docs".
var ErrMissingKey = ferrors.ValidationError("site link has no site key").
	WithHint("write links as site:<KEY>/<path>").
	Build()

// Link is a parsed cross-site link.
type Link struct {
	Site string
	Path string // path on the target site, may carry ?query and #fragment
}

func (l Link) String() string {
	if l.Path == "" {
		return Scheme + l.Site
	}
	if strings.HasPrefix(l.Path, "#") || strings.HasPrefix(l.Path, "?") {
		return Scheme + l.Site + l.Path
	}
	return Scheme + l.Site + "/" + strings.TrimLeft(l.Path, "/")
}

// Parse recognises a site: destination. The key ends at the first '/', '?'
// or '#'; everything after a '/' is the path on that site.
func Parse(dest string) (Link, bool) {
	if !strings.HasPrefix(dest, Scheme) {
		return Link{}, false
	}
	rest := dest[len(Scheme):]
	i := strings.IndexAny(rest, "/?#")
	if i < 0 {
		return Link{Site: rest}, true
	}
	return Link{Site: rest[:i], Path: strings.TrimPrefix(rest[i:], "/")}, true
}

// Resolver turns site: destinations into absolute URLs.
type Resolver struct {
	Registry *registry.Registry
	Recorder metrics.Recorder // optional
}

// NewResolver returns a Resolver for reg.
func NewResolver(reg *registry.Registry) Resolver {
	return Resolver{Registry: reg, Recorder: metrics.NoopRecorder{}}
}

// Resolve returns the absolute URL for a site: destination. Other
// destinations are returned unchanged.
func (r Resolver) Resolve(dest string) (string, error) {
	l, ok := Parse(dest)
	if !ok {
		return dest, nil
	}
	if l.Site == "" {
		r.record(metrics.LinkUnresolved)
		return "", ErrMissingKey.WithContext("destination", dest)
	}
	u, err := r.Registry.BuildURL(l.Site, l.Path)
	if err != nil {
		r.record(metrics.LinkUnresolved)
		return "", err
	}
	r.record(metrics.LinkResolved)
	return u, nil
}

func (r Resolver) record(res metrics.LinkResult) {
	if r.Recorder != nil {
		r.Recorder.IncLinkResolution(res)
	}
}
