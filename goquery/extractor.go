package goquery

import (
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	"github.com/asheesh-yadav/leximorph"
)

// FallbackThreshold is the minimum number of elements the primary parser
// must produce before its output is accepted over the whole-document scan.
const FallbackThreshold = 5

// Ensure Extractor implements leximorph.Extractor at compile time.
var _ leximorph.Extractor = (*Extractor)(nil)

// Extractor is the heuristic article extractor. It is stateless and safe
// for concurrent use.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract processes raw HTML and returns the article it contains. Pages with
// no recognizable content yield the placeholder paragraph. Bytes that are
// not valid UTF-8 become U+FFFD.
func (e *Extractor) Extract(html string) (*leximorph.Article, error) {
	if !utf8.ValidString(html) {
		html = strings.ToValidUTF8(html, "\uFFFD")
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, leximorph.Errorf(leximorph.EINVALID, "failed to parse HTML: %v", err)
	}

	title := Title(doc)
	Sanitize(doc)

	content := parseContent(Locate(doc), title)
	if len(content) < FallbackThreshold {
		content = fallbackContent(doc, title)
	}

	return &leximorph.Article{
		Title:       title,
		Author:      Author(doc),
		PublishDate: PublishDate(doc),
		Content:     orPlaceholder(content),
	}, nil
}

// ParseFragment types an already isolated content fragment, such as the
// output of another extraction library, into article elements. The result
// is never empty.
func ParseFragment(contentHTML, title string) []leximorph.Element {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(contentHTML))
	if err != nil {
		return orPlaceholder(nil)
	}
	content := parseContent(doc.Selection, title)
	if len(content) < FallbackThreshold {
		content = fallbackContent(doc, title)
	}
	return orPlaceholder(content)
}

func orPlaceholder(content []leximorph.Element) []leximorph.Element {
	if len(content) == 0 {
		return []leximorph.Element{leximorph.Paragraph{Text: leximorph.PlaceholderText}}
	}
	return content
}

// Metadata reads the title, author and publication date of a raw page the
// way Extract does. Title is never empty.
func Metadata(html string) (title, author, date string) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return leximorph.UntitledTitle, "", ""
	}
	title = Title(doc)
	Sanitize(doc)
	return title, Author(doc), PublishDate(doc)
}

// Placeholder returns the article produced for a page with no recognizable
// content.
func Placeholder(title string) *leximorph.Article {
	if strings.TrimSpace(title) == "" {
		title = leximorph.UntitledTitle
	}
	return &leximorph.Article{Title: title, Content: orPlaceholder(nil)}
}
