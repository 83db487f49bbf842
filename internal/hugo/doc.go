// Package hugo turns a family configuration into one Hugo site
// configuration per site.
//
// For every site the Generator writes <out>/<key>/hugo.yaml, the sitelink
// shortcode and, for module-based themes, a go.mod. The hugo.yaml root is
// composed in phases: core settings, theme params, preset and site params,
// dynamic fields, the theme import, menus, generated params (footer,
// vocabulary, sites, edit links) and finally the theme's own adjustments.
//
// Themes live in subpackages and register themselves on import.
package hugo
