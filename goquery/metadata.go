package goquery

import (
	"github.com/PuerkitoBio/goquery"
	"github.com/asheesh-yadav/leximorph"
)

var (
	titleSelectors  = []string{"h1", `[class*="title"]`, "title"}
	authorSelectors = []string{`[rel="author"]`, ".author", ".byline", `[class*="author"]`, `[itemprop="author"]`}
	dateSelectors   = []string{"time[datetime]", `[itemprop="datePublished"]`, ".publish-date", ".post-date", `[class*="date"]`}
)

// Title returns the text of the first non-empty match among <h1>, an element
// whose class mentions "title", and <title>. It falls back to
// leximorph.UntitledTitle and is never empty.
func Title(doc *goquery.Document) string {
	if title := firstText(doc, titleSelectors); title != "" {
		return title
	}
	return leximorph.UntitledTitle
}

// Author returns the byline text, or "" when the page has none.
func Author(doc *goquery.Document) string {
	return firstText(doc, authorSelectors)
}

// PublishDate returns the raw publication date. A machine-readable datetime
// or content attribute is preferred over the element text.
func PublishDate(doc *goquery.Document) string {
	for _, selector := range dateSelectors {
		sel := doc.Find(selector).First()
		if sel.Length() == 0 {
			continue
		}
		for _, attr := range []string{"datetime", "content"} {
			if v := sel.AttrOr(attr, ""); v != "" {
				return v
			}
		}
		if text := textOf(sel); text != "" {
			return text
		}
	}
	return ""
}

// firstText returns the trimmed text of the first match of the first
// selector that yields non-empty text.
func firstText(doc *goquery.Document, selectors []string) string {
	for _, selector := range selectors {
		if text := textOf(doc.Find(selector).First()); text != "" {
			return text
		}
	}
	return ""
}
