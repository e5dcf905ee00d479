package leximorph

// Extractor turns a raw HTML page into an Article.
type Extractor interface {
	// Extract processes raw HTML and returns the article it contains.
	// Extraction never fails for content-quality reasons: a page with no
	// recognizable content yields an article holding the placeholder
	// paragraph. Errors are reserved for input that cannot be processed.
	Extract(html string) (*Article, error)
}
