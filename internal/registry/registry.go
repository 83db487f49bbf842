// Package registry resolves site keys of the family to their deployed
// location and builds absolute cross-site URLs.
package registry

import (
	"fmt"
	"net/url"
	"strings"

	"golang.org/x/net/idna"

	"git.home.luguber.info/inful/stdsites/internal/config"
	ferrors "git.home.luguber.info/inful/stdsites/internal/foundation/errors"
)

// ErrUnknownSite matches (with errors.Is) every lookup of an undeclared key.
// A reference to a key the registry does not declare is a configuration error.
var ErrUnknownSite = ferrors.ConfigError("unknown site key").
	WithHint("declare the site under 'registry' or fix the key; keys are case-sensitive").
	Build()

// Site is the deployed location of one site: URL is scheme and host without
// a trailing slash, BaseURL is the path prefix, always starting and ending in '/'.
type Site struct {
	Key     string
	URL     string
	BaseURL string
}

// Home returns the absolute URL of the site's root.
func (s Site) Home() string { return s.URL + s.BaseURL }

// Registry is an immutable, ordered mapping from site key to Site.
// It is safe for concurrent use.
type Registry struct {
	order []string
	sites map[string]Site
}

// New builds a registry from configuration entries, normalizing every URL.
func New(entries []config.RegistryEntry) (*Registry, error) {
	r := &Registry{
		order: make([]string, 0, len(entries)),
		sites: make(map[string]Site, len(entries)),
	}
	for _, e := range entries {
		if e.Key == "" {
			return nil, ferrors.ValidationError("registry key cannot be empty").
				WithContext("url", e.URL).
				Build()
		}
		if !config.ValidSiteKey(e.Key) {
			return nil, ferrors.ValidationError(fmt.Sprintf("invalid registry key: %q", e.Key)).
				WithContext("site_key", e.Key).
				Build()
		}
		if _, dup := r.sites[e.Key]; dup {
			return nil, ferrors.ValidationError(fmt.Sprintf("duplicate registry key: %s", e.Key)).
				WithContext("site_key", e.Key).
				Build()
		}
		u, err := normalizeURL(e.URL)
		if err != nil {
			return nil, ferrors.WrapError(err, ferrors.CategoryValidation, fmt.Sprintf("invalid url for site %s", e.Key)).
				WithContext("site_key", e.Key).
				WithContext("url", e.URL).
				Fatal().
				Build()
		}
		r.sites[e.Key] = Site{Key: e.Key, URL: u, BaseURL: normalizeBaseURL(e.BaseURL)}
		r.order = append(r.order, e.Key)
	}
	return r, nil
}

// FromConfig builds the registry declared in cfg.
func FromConfig(cfg *config.Config) (*Registry, error) { return New(cfg.Registry) }

// Resolve returns the deployed location of key.
func (r *Registry) Resolve(key string) (Site, error) {
	s, ok := r.sites[key]
	if !ok {
		return Site{}, ErrUnknownSite.WithContext("site_key", key)
	}
	return s, nil
}

// BuildURL returns url + baseUrl + path, with leading slashes of path
// removed so the base path is never doubled. Query and fragment are kept.
func (r *Registry) BuildURL(key, path string) (string, error) {
	s, err := r.Resolve(key)
	if err != nil {
		return "", err
	}
	return s.URL + s.BaseURL + strings.TrimLeft(path, "/"), nil
}

// HomeURL returns the root URL of the site.
func (r *Registry) HomeURL(key string) (string, error) { return r.BuildURL(key, "") }

// Has reports whether key is registered.
func (r *Registry) Has(key string) bool {
	_, ok := r.sites[key]
	return ok
}

// Keys returns the site keys in declaration order.
func (r *Registry) Keys() []string {
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}

// Sites returns every site in declaration order.
func (r *Registry) Sites() []Site {
	out := make([]Site, 0, len(r.order))
	for _, k := range r.order {
		out = append(out, r.sites[k])
	}
	return out
}

// Len returns the number of registered sites.
func (r *Registry) Len() int { return len(r.order) }

func normalizeURL(raw string) (string, error) {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return "", err
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return "", fmt.Errorf("scheme must be http or https, got %q", u.Scheme)
	}
	if u.Host == "" {
		return "", fmt.Errorf("missing host")
	}
	host, err := idna.Lookup.ToASCII(u.Hostname())
	if err != nil {
		return "", fmt.Errorf("invalid host %q: %w", u.Hostname(), err)
	}
	if port := u.Port(); port != "" {
		host += ":" + port
	}
	out := u.Scheme + "://" + host + u.EscapedPath()
	return strings.TrimRight(out, "/"), nil
}

func normalizeBaseURL(raw string) string {
	b := strings.Trim(strings.TrimSpace(raw), "/")
	if b == "" {
		return "/"
	}
	return "/" + b + "/"
}
