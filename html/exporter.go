// Package html renders articles as HTML previews using golang.org/x/net/html
// node trees.
package html

import (
	"io"

	"github.com/asheesh-yadav/leximorph"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Ensure Exporter implements leximorph.Exporter at compile time.
var _ leximorph.Exporter = (*Exporter)(nil)

// Exporter writes articles as HTML.
type Exporter struct {
	mark     atom.Atom
	fragment bool
}

// Option configures an Exporter.
type Option func(*Exporter)

// WithHighlightTag sets the element wrapping keyword matches. Defaults to
// <mark>.
func WithHighlightTag(a atom.Atom) Option {
	return func(e *Exporter) {
		e.mark = a
	}
}

// WithFragment renders only the <article> element instead of a complete
// document.
func WithFragment() Option {
	return func(e *Exporter) {
		e.fragment = true
	}
}

// NewExporter creates a new Exporter.
func NewExporter(opts ...Option) *Exporter {
	e := &Exporter{mark: atom.Mark}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Export writes the article to w as HTML.
func (e *Exporter) Export(w io.Writer, article *leximorph.Article, opts leximorph.ExportOptions) error {
	if err := article.Validate(); err != nil {
		return err
	}

	body := e.Article(article, opts)
	if e.fragment {
		return html.Render(w, body)
	}

	doc := &html.Node{Type: html.DocumentNode}
	doc.AppendChild(&html.Node{Type: html.DoctypeNode, Data: "html"})
	root := elem(atom.Html)
	doc.AppendChild(root)

	head := elem(atom.Head)
	head.AppendChild(elem(atom.Meta, html.Attribute{Key: "charset", Val: "utf-8"}))
	head.AppendChild(textElem(atom.Title, article.Title))
	root.AppendChild(head)

	b := elem(atom.Body)
	b.AppendChild(body)
	root.AppendChild(b)

	return html.Render(w, doc)
}

// Article builds the <article> node for an article.
func (e *Exporter) Article(article *leximorph.Article, opts leximorph.ExportOptions) *html.Node {
	root := elem(atom.Article, html.Attribute{Key: "class", Val: "leximorph-article"})

	header := elem(atom.Header)
	brand := elem(atom.P, html.Attribute{Key: "class", Val: "brand"})
	brand.AppendChild(textElem(atom.Strong, leximorph.BrandName))
	brand.AppendChild(text(" "))
	brand.AppendChild(link(leximorph.BrandURL))
	header.AppendChild(brand)

	if opts.SourceURL != "" {
		source := elem(atom.P, html.Attribute{Key: "class", Val: "source"})
		source.AppendChild(textElem(atom.Strong, "Source Article:"))
		source.AppendChild(text(" "))
		source.AppendChild(link(opts.SourceURL))
		header.AppendChild(source)
	}

	header.AppendChild(textElem(atom.H1, article.Title))
	if article.Author != "" {
		p := elem(atom.P, html.Attribute{Key: "class", Val: "byline"})
		p.AppendChild(text("By " + article.Author))
		header.AppendChild(p)
	}
	if article.PublishDate != "" {
		header.AppendChild(textElem(atom.Time, article.PublishDate))
	}
	root.AppendChild(header)

	for _, el := range article.Content {
		switch el := el.(type) {
		case leximorph.Heading:
			root.AppendChild(e.highlighted(headingAtom(el.Level), el.Text, opts.Keywords))
		case leximorph.Paragraph:
			root.AppendChild(e.highlighted(atom.P, el.Text, opts.Keywords))
		case leximorph.List:
			ul := elem(atom.Ul)
			for _, item := range el.Items {
				ul.AppendChild(e.highlighted(atom.Li, item, opts.Keywords))
			}
			root.AppendChild(ul)
		case leximorph.Image:
			fig := elem(atom.Figure)
			fig.AppendChild(elem(atom.Img,
				html.Attribute{Key: "src", Val: el.Src},
				html.Attribute{Key: "alt", Val: el.Alt},
			))
			root.AppendChild(fig)
		}
	}
	return root
}

// highlighted builds an element whose keyword matches are wrapped in the
// highlight tag.
func (e *Exporter) highlighted(a atom.Atom, s string, keywords []string) *html.Node {
	n := elem(a)
	for _, seg := range leximorph.Highlight(s, keywords) {
		if seg.Text == "" {
			continue
		}
		if seg.Match {
			n.AppendChild(textElem(e.mark, seg.Text))
			continue
		}
		n.AppendChild(text(seg.Text))
	}
	return n
}

func headingAtom(level int) atom.Atom {
	switch level {
	case 1:
		return atom.H1
	case 2:
		return atom.H2
	case 3:
		return atom.H3
	case 5:
		return atom.H5
	case 6:
		return atom.H6
	}
	return atom.H4
}

func elem(a atom.Atom, attrs ...html.Attribute) *html.Node {
	return &html.Node{Type: html.ElementNode, DataAtom: a, Data: a.String(), Attr: attrs}
}

func text(s string) *html.Node {
	return &html.Node{Type: html.TextNode, Data: s}
}

func textElem(a atom.Atom, s string) *html.Node {
	n := elem(a)
	n.AppendChild(text(s))
	return n
}

func link(url string) *html.Node {
	n := elem(atom.A, html.Attribute{Key: "href", Val: url})
	n.AppendChild(text(url))
	return n
}
