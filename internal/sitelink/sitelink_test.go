package sitelink

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yuin/goldmark"

	"git.home.luguber.info/inful/stdsites/internal/config"
	ferrors "git.home.luguber.info/inful/stdsites/internal/foundation/errors"
	"git.home.luguber.info/inful/stdsites/internal/metrics"
	"git.home.luguber.info/inful/stdsites/internal/registry"
)

func testRegistry(t *testing.T) *registry.Registry {
	t.Helper()
	reg, err := registry.New([]config.RegistryEntry{
		{Key: "portal", URL: "https://standards.example.org"},
		{Key: "LRM", URL: "https://standards.example.org", BaseURL: "/LRM/"},
		{Key: "EAD", URL: "https://ead.example.org"},
	})
	require.NoError(t, err)
	return reg
}

func TestParse(t *testing.T) {
	tests := []struct {
		dest string
		want Link
		ok   bool
	}{
		{"site:LRM/docs/intro#scope", Link{Site: "LRM", Path: "docs/intro#scope"}, true},
		{"site:LRM", Link{Site: "LRM"}, true},
		{"site:LRM#scope", Link{Site: "LRM", Path: "#scope"}, true},
		{"site:EAD?q=1", Link{Site: "EAD", Path: "?q=1"}, true},
		{"site:/docs", Link{Path: "docs"}, true},
		{"https://example.org", Link{}, false},
		{"/docs/intro", Link{}, false},
		{"Site:LRM/docs", Link{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.dest, func(t *testing.T) {
			got, ok := Parse(tt.dest)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLinkString(t *testing.T) {
	assert.Equal(t, "site:LRM/docs", Link{Site: "LRM", Path: "docs"}.String())
	assert.Equal(t, "site:LRM#x", Link{Site: "LRM", Path: "#x"}.String())
	assert.Equal(t, "site:LRM", Link{Site: "LRM"}.String())
}

type linkCounter struct {
	metrics.NoopRecorder
	counts map[metrics.LinkResult]int
}

func (c *linkCounter) IncLinkResolution(r metrics.LinkResult) { c.counts[r]++ }

func TestResolver(t *testing.T) {
	rec := &linkCounter{counts: map[metrics.LinkResult]int{}}
	r := Resolver{Registry: testRegistry(t), Recorder: rec}

	tests := []struct {
		dest string
		want string
	}{
		{"site:LRM/docs/intro#scope", "https://standards.example.org/LRM/docs/intro#scope"},
		{"site:LRM//docs", "https://standards.example.org/LRM/docs"},
		{"site:EAD", "https://ead.example.org/"},
		{"site:LRM#scope", "https://standards.example.org/LRM/#scope"},
		{"https://other.example.org/x", "https://other.example.org/x"},
		{"../relative.md", "../relative.md"},
	}
	for _, tt := range tests {
		got, err := r.Resolve(tt.dest)
		require.NoError(t, err, tt.dest)
		assert.Equal(t, tt.want, got, tt.dest)
	}
	assert.Equal(t, 4, rec.counts[metrics.LinkResolved])

	_, err := r.Resolve("site:lrm/docs")
	require.Error(t, err)
	assert.ErrorIs(t, err, registry.ErrUnknownSite)

	_, err = r.Resolve("site:/docs")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMissingKey)
	assert.True(t, ferrors.HasCategory(err, ferrors.CategoryValidation))
	assert.Equal(t, 2, rec.counts[metrics.LinkUnresolved])
}

func TestExtension_RewritesLinksAndImages(t *testing.T) {
	var unresolved []string
	md := goldmark.New(goldmark.WithExtensions(NewExtension(
		NewResolver(testRegistry(t)),
		WithUnresolved(func(u Unresolved) { unresolved = append(unresolved, u.Destination) }),
	)))

	src := `See [the model](site:LRM/docs/intro) and [ref link][ead].

![logo](site:portal/img/logo.svg)

[Ghost](site:GHOST/x) and [local](/about).

[ead]: site:EAD/tag-library
`
	var buf bytes.Buffer
	require.NoError(t, md.Convert([]byte(src), &buf))
	html := buf.String()

	assert.Contains(t, html, `<a href="https://standards.example.org/LRM/docs/intro">the model</a>`)
	assert.Contains(t, html, `<a href="https://ead.example.org/tag-library">ref link</a>`)
	assert.Contains(t, html, `<img src="https://standards.example.org/img/logo.svg" alt="logo">`)
	assert.Contains(t, html, `<a href="site:GHOST/x">Ghost</a>`)
	assert.Contains(t, html, `<a href="/about">local</a>`)
	assert.Equal(t, []string{"site:GHOST/x"}, unresolved)
}

func TestExtension_RewritesAutolinks(t *testing.T) {
	var unresolved []Unresolved
	md := goldmark.New(goldmark.WithExtensions(NewExtension(
		NewResolver(testRegistry(t)),
		WithUnresolved(func(u Unresolved) { unresolved = append(unresolved, u) }),
	)))

	src := "Model: <site:LRM/docs>\n\nMissing: <site:GHOST/x>\n\nWeb: <https://example.org>\n"
	var buf bytes.Buffer
	require.NoError(t, md.Convert([]byte(src), &buf))
	html := buf.String()

	assert.Contains(t, html, `<a href="https://standards.example.org/LRM/docs">site:LRM/docs</a>`)
	assert.Contains(t, html, `<a href="site:GHOST/x">site:GHOST/x</a>`)
	assert.Contains(t, html, `<a href="https://example.org">https://example.org</a>`)
	require.Len(t, unresolved, 1)
	assert.Equal(t, "site:GHOST/x", unresolved[0].Destination)
	assert.Equal(t, 3, unresolved[0].Line)
	assert.ErrorIs(t, unresolved[0].Err, registry.ErrUnknownSite)
}
