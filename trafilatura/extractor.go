// Package trafilatura extracts articles with markusmobius/go-trafilatura.
// The library isolates the content; the heuristic parser types it into
// elements.
package trafilatura

import (
	"bytes"
	"strings"
	"unicode/utf8"

	"github.com/asheesh-yadav/leximorph"
	"github.com/asheesh-yadav/leximorph/goquery"
	"github.com/markusmobius/go-trafilatura"
	"golang.org/x/net/html"
)

// dateLayout formats publication dates found by the library.
const dateLayout = "2006-01-02"

// Ensure Extractor implements leximorph.Extractor at compile time.
var _ leximorph.Extractor = (*Extractor)(nil)

// Extractor wraps go-trafilatura to extract main content from HTML.
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

	opts := trafilatura.Options{
		EnableFallback: true,
		IncludeImages:  true,
	}

	article := &leximorph.Article{Title: title, Author: author, PublishDate: date}

	result, err := trafilatura.Extract(strings.NewReader(rawHTML), opts)
	if err != nil || result.ContentNode == nil {
		article.Content = goquery.Placeholder(title).Content
		return article, nil
	}

	contentHTML, err := renderNode(result.ContentNode)
	if err != nil {
		return nil, err
	}

	if t := strings.TrimSpace(result.Metadata.Title); t != "" {
		article.Title = t
	}
	if a := strings.TrimSpace(result.Metadata.Author); a != "" {
		article.Author = a
	}
	if !result.Metadata.Date.IsZero() && article.PublishDate == "" {
		article.PublishDate = result.Metadata.Date.Format(dateLayout)
	}
	article.Content = goquery.ParseFragment(contentHTML, article.Title)
	return article, nil
}

// renderNode converts an html.Node to a string.
func renderNode(n *html.Node) (string, error) {
	var buf bytes.Buffer
	if err := html.Render(&buf, n); err != nil {
		return "", err
	}
	return buf.String(), nil
}
