// Package readability extracts articles with go-shiori/go-readability. The
// library isolates the content; the heuristic parser types it into elements.
package readability

import (
	"strings"
	"unicode/utf8"

	"github.com/asheesh-yadav/leximorph"
	"github.com/asheesh-yadav/leximorph/goquery"
	"github.com/go-shiori/go-readability"
)

// Ensure Extractor implements leximorph.Extractor at compile time.
var _ leximorph.Extractor = (*Extractor)(nil)

// Extractor wraps go-readability to extract main content from HTML.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract processes raw HTML and returns the article it contains. Metadata
// the library misses is filled in by the heuristic readers.
func (e *Extractor) Extract(rawHTML string) (*leximorph.Article, error) {
	if !utf8.ValidString(rawHTML) {
		rawHTML = strings.ToValidUTF8(rawHTML, "\uFFFD")
	}
	title, author, date := goquery.Metadata(rawHTML)
	if strings.TrimSpace(rawHTML) == "" {
		return goquery.Placeholder(title), nil
	}

	article, err := readability.FromReader(strings.NewReader(rawHTML), nil)
	if err != nil || strings.TrimSpace(article.Content) == "" {
		return &leximorph.Article{
			Title:       title,
			Author:      author,
			PublishDate: date,
			Content:     goquery.Placeholder(title).Content,
		}, nil
	}

	if t := strings.TrimSpace(article.Title); t != "" {
		title = t
	}
	if b := strings.TrimSpace(article.Byline); b != "" {
		author = b
	}

	return &leximorph.Article{
		Title:       title,
		Author:      author,
		PublishDate: date,
		Content:     goquery.ParseFragment(article.Content, title),
	}, nil
}
