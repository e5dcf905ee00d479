package crawl

import (
	"unicode/utf8"

	"github.com/asheesh-yadav/leximorph"
)

// minStaticTextLen is the amount of text below which a statically fetched
// page is assumed to need JavaScript rendering.
const minStaticTextLen = 200

// NeedsBrowser reports whether an article extracted from static HTML looks
// like a JavaScript-rendered page: the placeholder, or very little text.
func NeedsBrowser(article *leximorph.Article) bool {
	if article == nil || article.IsPlaceholder() {
		return true
	}
	return TextLen(article) < minStaticTextLen
}

// ContentDiffers reports whether the browser-rendered article is worth
// using over the static one: the static one is the placeholder and the
// rendered one is not, or the rendered text is more than 50% longer.
func ContentDiffers(static, rendered *leximorph.Article) bool {
	if rendered == nil || rendered.IsPlaceholder() {
		return false
	}
	if static == nil || static.IsPlaceholder() {
		return true
	}
	staticLen := TextLen(static)
	renderedLen := TextLen(rendered)
	if staticLen == 0 {
		return renderedLen > 0
	}
	return float64(renderedLen) > float64(staticLen)*1.5
}

// TextLen returns the number of characters of text in the article content.
func TextLen(article *leximorph.Article) int {
	n := 0
	for _, e := range article.Content {
		switch e := e.(type) {
		case leximorph.Heading:
			n += utf8.RuneCountInString(e.Text)
		case leximorph.Paragraph:
			n += utf8.RuneCountInString(e.Text)
		case leximorph.List:
			for _, item := range e.Items {
				n += utf8.RuneCountInString(item)
			}
		}
	}
	return n
}
