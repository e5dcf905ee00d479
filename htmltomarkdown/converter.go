// Package htmltomarkdown converts HTML to Markdown with
// JohannesKaufmann/html-to-markdown and exports articles as Markdown.
package htmltomarkdown

import (
	"strings"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/table"
	"github.com/asheesh-yadav/leximorph"
)

var _ leximorph.Converter = (*Converter)(nil)

// chromeTags never carry article text and are dropped with their children.
var chromeTags = []string{"nav", "aside", "footer", "form", "button", "iframe"}

// Converter renders article HTML as CommonMark with tables.
type Converter struct {
	conv   *converter.Converter
	domain string
}

// ConverterOption configures a Converter.
type ConverterOption func(*Converter)

// WithBaseURL resolves relative links and image sources against u.
func WithBaseURL(u string) ConverterOption {
	return func(c *Converter) {
		c.domain = u
	}
}

// NewConverter builds a Converter that drops page chrome.
func NewConverter(opts ...ConverterOption) *Converter {
	conv := converter.NewConverter(
		converter.WithPlugins(
			base.NewBasePlugin(),
			commonmark.NewCommonmarkPlugin(),
			table.NewTablePlugin(),
		),
	)
	for _, tag := range chromeTags {
		conv.Register.TagType(tag, converter.TagTypeRemove, converter.PriorityStandard)
	}

	c := &Converter{conv: conv}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Convert returns the Markdown for html without trailing whitespace. Input
// that renders to nothing is EINVALID.
func (c *Converter) Convert(html string) (string, error) {
	if strings.TrimSpace(html) == "" {
		return "", leximorph.Errorf(leximorph.EINVALID, "empty HTML input")
	}

	var opts []converter.ConvertOptionFunc
	if c.domain != "" {
		opts = append(opts, converter.WithDomain(c.domain))
	}
	md, err := c.conv.ConvertString(html, opts...)
	if err != nil {
		return "", leximorph.Errorf(leximorph.EINTERNAL, "convert to markdown: %v", err)
	}

	md = strings.TrimRight(md, " \t\n")
	if md == "" {
		return "", leximorph.Errorf(leximorph.EINVALID, "HTML has no convertible content")
	}
	return md, nil
}
