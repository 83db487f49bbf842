package sitelink

import (
	"bytes"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/text"

	ferrors "git.home.luguber.info/inful/stdsites/internal/foundation/errors"
)

// Finding is a site: link in content that does not resolve.
type Finding struct {
	File        string // relative to the checked directory
	Line        int
	Destination string
	Err         error
}

func (f Finding) String() string {
	return fmt.Sprintf("%s:%d: %s: %v", f.File, f.Line, f.Destination, f.Err)
}

// Check parses every Markdown file below dir and reports the site: links
// that fail to resolve, in file then line order.
func Check(dir string, resolver Resolver) ([]Finding, error) {
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		return nil, ferrors.NotFoundError("content directory not found").
			WithContext("path", dir).
			Build()
	}

	var (
		findings []Finding
		file     string
	)
	md := goldmark.New(goldmark.WithExtensions(NewExtension(resolver, WithUnresolved(func(u Unresolved) {
		findings = append(findings, Finding{File: file, Line: u.Line, Destination: u.Destination, Err: u.Err})
	}))))
	err = filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !isMarkdown(path) {
			return nil
		}
		src, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		rel, _ := filepath.Rel(dir, path)
		file = filepath.ToSlash(rel)
		md.Parser().Parse(text.NewReader(blankFrontmatter(src)))
		return nil
	})
	if err != nil {
		return nil, ferrors.WrapError(err, ferrors.CategoryFileSystem, "failed to walk content directory").
			WithContext("path", dir).
			Build()
	}
	return findings, nil
}

// blankFrontmatter replaces a leading YAML (---) or TOML (+++) front matter
// block with empty lines, so line numbers stay those of the file.
func blankFrontmatter(src []byte) []byte {
	for _, delim := range []string{"---", "+++"} {
		open := delim + "\n"
		if !bytes.HasPrefix(src, []byte(open)) {
			continue
		}
		var end int
		if bytes.HasPrefix(src[len(open):], []byte(open)) {
			end = 2 * len(open)
		} else {
			idx := bytes.Index(src[len(open):], []byte("\n"+open))
			if idx < 0 {
				return src
			}
			end = len(open) + idx + 1 + len(open)
		}
		out := make([]byte, len(src))
		copy(out, src)
		for i := 0; i < end; i++ {
			if out[i] != '\n' {
				out[i] = ' '
			}
		}
		return out
	}
	return src
}

func isMarkdown(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".md" || ext == ".markdown"
}
