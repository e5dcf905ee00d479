package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// sanitizeSelector matches every element the sanitizer removes.
var sanitizeSelector = buildSanitizeSelector()

func buildSanitizeSelector() string {
	parts := make([]string, 0, len(structuralSelectors)+len(cmsClassSelectors)+2*len(chromeTokens)+len(adFrameSelectors))
	parts = append(parts, structuralSelectors...)
	parts = append(parts, cmsClassSelectors...)
	for _, tok := range chromeTokens {
		parts = append(parts, `[class*="`+tok+`"]`, `[id*="`+tok+`"]`)
	}
	parts = append(parts, adFrameSelectors...)
	return strings.Join(parts, ", ")
}

// Sanitize removes scripts, site chrome, advertising and other non-article
// subtrees from doc in place. Running it twice has the same effect as
// running it once.
func Sanitize(doc *goquery.Document) {
	doc.Find(sanitizeSelector).Remove()
}
