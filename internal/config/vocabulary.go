package config

import (
	"net/url"
	"regexp"
	"strings"
)

// VocabularyMediaTypes maps supported RDF serialization formats to their
// media types.
var VocabularyMediaTypes = map[string]string{
	"ttl":    "text/turtle",
	"jsonld": "application/ld+json",
	"rdf":    "application/rdf+xml",
	"nt":     "application/n-triples",
}

// VocabularyFormatOrder is the order serializations are published in,
// whatever their order in the configuration.
var VocabularyFormatOrder = []string{"ttl", "jsonld", "rdf", "nt"}

var prefixPattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_.-]*$`)

// ValidPrefix reports whether p can be used as a namespace prefix.
func ValidPrefix(p string) bool { return prefixPattern.MatchString(p) }

// ValidNamespace reports whether ns is an absolute URI ending in '/' or '#'.
func ValidNamespace(ns string) bool {
	if !strings.HasSuffix(ns, "/") && !strings.HasSuffix(ns, "#") {
		return false
	}
	u, err := url.Parse(ns)
	return err == nil && u.IsAbs() && u.Host != ""
}
