package sitelink

import (
	"bytes"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"
	"github.com/yuin/goldmark/util"
)

// transformerPriority runs after goldmark's own transformers.
const transformerPriority = 999

// Unresolved describes a site: destination that failed to resolve.
type Unresolved struct {
	Destination string
	Line        int // 1-based, 0 when unknown
	Err         error
}

// UnresolvedFunc is told about every site: destination that failed to resolve.
type UnresolvedFunc func(Unresolved)

// Option configures the extension.
type Option func(*extension)

// WithUnresolved registers fn for unresolvable links. Such links are left
// untouched in the output either way.
func WithUnresolved(fn UnresolvedFunc) Option {
	return func(e *extension) { e.onUnresolved = fn }
}

type extension struct {
	resolver     Resolver
	onUnresolved UnresolvedFunc
}

// NewExtension returns a goldmark extension rewriting site: link, image and
// autolink destinations to absolute URLs while parsing.
//
//	md := goldmark.New(goldmark.WithExtensions(sitelink.NewExtension(resolver)))
func NewExtension(resolver Resolver, opts ...Option) goldmark.Extender {
	e := &extension{resolver: resolver}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func (e *extension) Extend(m goldmark.Markdown) {
	m.Parser().AddOptions(parser.WithASTTransformers(
		util.Prioritized(&transformer{ext: e}, transformerPriority),
	))
}

type transformer struct{ ext *extension }

type autoLinkRewrite struct {
	node *ast.AutoLink
	dest []byte
}

func (t *transformer) Transform(doc *ast.Document, reader text.Reader, _ parser.Context) {
	src := reader.Source()
	var autoLinks []autoLinkRewrite
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch node := n.(type) {
		case *ast.Link:
			node.Destination = t.rewrite(node, node.Destination, src)
		case *ast.Image:
			node.Destination = t.rewrite(node, node.Destination, src)
		case *ast.AutoLink:
			if node.AutoLinkType != ast.AutoLinkURL {
				return ast.WalkContinue, nil
			}
			u := node.URL(src)
			if dest := t.rewrite(node, u, src); !bytes.Equal(dest, u) {
				autoLinks = append(autoLinks, autoLinkRewrite{node: node, dest: dest})
			}
		}
		return ast.WalkContinue, nil
	})

	// An autolink's destination is its label, so a resolved one becomes a
	// plain link keeping the original text. Replaced after the walk.
	for _, r := range autoLinks {
		link := ast.NewLink()
		link.Destination = r.dest
		link.AppendChild(link, ast.NewString(r.node.Label(src)))
		parent := r.node.Parent()
		parent.ReplaceChild(parent, r.node, link)
	}
}

func (t *transformer) rewrite(n ast.Node, dest, src []byte) []byte {
	if _, ok := Parse(string(dest)); !ok {
		return dest
	}
	u, err := t.ext.resolver.Resolve(string(dest))
	if err != nil {
		if t.ext.onUnresolved != nil {
			t.ext.onUnresolved(Unresolved{Destination: string(dest), Line: lineOf(n, src), Err: err})
		}
		return dest
	}
	return []byte(u)
}

// lineOf reports the 1-based source line of an inline node: that of the first
// text below it, of the autolink text, or else of the enclosing block.
func lineOf(n ast.Node, src []byte) int {
	offset := firstTextOffset(n)
	if al, ok := n.(*ast.AutoLink); ok && offset < 0 {
		offset = autoLinkOffset(al, src)
	}
	if offset < 0 {
		if b := enclosingBlock(n); b != nil && b.Lines().Len() > 0 {
			offset = b.Lines().At(0).Start
		}
	}
	if offset < 0 || offset > len(src) {
		return 0
	}
	return bytes.Count(src[:offset], []byte("\n")) + 1
}

func firstTextOffset(n ast.Node) int {
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		if t, ok := c.(*ast.Text); ok {
			return t.Segment.Start
		}
		if off := firstTextOffset(c); off >= 0 {
			return off
		}
	}
	return -1
}

// autoLinkOffset locates "<label>" in the enclosing block, since goldmark
// does not expose the autolink's own segment.
func autoLinkOffset(n *ast.AutoLink, src []byte) int {
	b := enclosingBlock(n)
	if b == nil {
		return -1
	}
	needle := append(append([]byte{'<'}, n.Label(src)...), '>')
	lines := b.Lines()
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		if idx := bytes.Index(seg.Value(src), needle); idx >= 0 {
			return seg.Start + idx
		}
	}
	return -1
}

func enclosingBlock(n ast.Node) ast.Node {
	for p := n.Parent(); p != nil; p = p.Parent() {
		if p.Type() == ast.TypeBlock {
			return p
		}
	}
	return nil
}
