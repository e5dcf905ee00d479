package main

import (
	"fmt"
	"io"
	"net/url"
	"os"
	"path/filepath"

	"github.com/asheesh-yadav/leximorph"
)

// loadArticle fetches and extracts the article named by the source flags.
// It returns the article and the source URL to record for it; local files
// are recorded as file:// URLs.
func loadArticle(deps *Dependencies, src SourceFlags) (*leximorph.Article, string, error) {
	switch {
	case src.URL != "" && src.File != "":
		return nil, "", leximorph.Errorf(leximorph.EINVALID, "use either a URL or --file, not both")
	case src.URL == "" && src.File == "":
		return nil, "", leximorph.Errorf(leximorph.EINVALID, "URL or --file required")
	}

	if src.File != "" {
		b, err := os.ReadFile(src.File)
		if err != nil {
			return nil, "", fmt.Errorf("read %s: %w", src.File, err)
		}
		abs, err := filepath.Abs(src.File)
		if err != nil {
			return nil, "", err
		}
		article, err := deps.Extractor.Extract(string(b))
		if err != nil {
			return nil, "", err
		}
		return article, (&url.URL{Scheme: "file", Path: filepath.ToSlash(abs)}).String(), nil
	}

	if err := validateURL(src.URL); err != nil {
		return nil, "", err
	}
	fetcher := deps.Fetcher
	if src.Browser {
		if deps.Browser == nil {
			return nil, "", leximorph.Errorf(leximorph.EUNAVAILABLE, "browser not available")
		}
		fetcher = deps.Browser
	}
	html, err := fetcher.Fetch(deps.Ctx, src.URL)
	if err != nil {
		return nil, "", err
	}
	article, err := deps.Extractor.Extract(html)
	if err != nil {
		return nil, "", err
	}
	return article, src.URL, nil
}

func validateURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return leximorph.Errorf(leximorph.EINVALID, "invalid URL %q: must be http or https", raw)
	}
	return nil
}

// saveDocument stores an article in history and reports its ID.
func saveDocument(deps *Dependencies, sourceURL, language string, article *leximorph.Article) (*leximorph.Document, error) {
	doc := &leximorph.Document{
		SourceURL: sourceURL,
		Language:  language,
		Article:   article,
	}
	if err := deps.Documents.CreateDocument(deps.Ctx, doc); err != nil {
		return nil, err
	}
	fmt.Fprintf(deps.Stderr, "Saved %s\n", doc.ID)
	return doc, nil
}

// writeArticle exports an article to w in the named format.
func writeArticle(deps *Dependencies, w io.Writer, format string, article *leximorph.Article, opts leximorph.ExportOptions) error {
	return deps.Exporters.ExportAs(w, leximorph.Format(format), article, opts)
}

// printError reports err on stderr and returns it.
func printError(deps *Dependencies, err error) error {
	fmt.Fprintf(deps.Stderr, "error: %s\n", leximorph.ErrorMessage(err))
	return err
}
