package main

import (
	"fmt"
	"strings"

	"github.com/asheesh-yadav/leximorph"
)

// Run executes the extract command.
func (c *ExtractCmd) Run(deps *Dependencies) error {
	article, sourceURL, err := loadArticle(deps, c.SourceFlags)
	if err != nil {
		return printError(deps, err)
	}

	if c.Save {
		if _, err := saveDocument(deps, sourceURL, "", article); err != nil {
			return printError(deps, err)
		}
	}

	if c.Outline {
		for _, s := range leximorph.Outline(article) {
			fmt.Fprintf(deps.Stdout, "%s- %s (#%s)\n", strings.Repeat("  ", max(s.Level-1, 0)), s.Title, s.Anchor)
		}
		return nil
	}

	opts := leximorph.ExportOptions{Keywords: c.Keywords, SourceURL: sourceURL}
	if err := writeArticle(deps, deps.Stdout, c.Format, article, opts); err != nil {
		return printError(deps, err)
	}
	return nil
}
