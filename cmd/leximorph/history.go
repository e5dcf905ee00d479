package main

import (
	"fmt"

	"github.com/asheesh-yadav/leximorph"
	"github.com/asheesh-yadav/leximorph/crawl"
)

// Run executes the history list command.
func (c *HistoryListCmd) Run(deps *Dependencies) error {
	if c.Originals && c.Language != "" {
		return printError(deps, leximorph.Errorf(leximorph.EINVALID, "use either --language or --originals, not both"))
	}

	filter := leximorph.DocumentFilter{Limit: c.Limit, Offset: c.Offset}
	if c.URL != "" {
		filter.SourceURL = &c.URL
	}
	switch {
	case c.Originals:
		original := ""
		filter.Language = &original
	case c.Language != "":
		filter.Language = &c.Language
	}

	docs, err := deps.Documents.FindDocuments(deps.Ctx, filter)
	if err != nil {
		return printError(deps, err)
	}

	if len(docs) == 0 {
		fmt.Fprintln(deps.Stdout, "No documents found. Use 'leximorph extract --save' or 'leximorph batch' to add some.")
		return nil
	}

	for _, doc := range docs {
		lang := doc.Language
		if lang == "" {
			lang = "-"
		}
		fmt.Fprintf(deps.Stdout, "%s  %s  %-5s  %s\n     %s\n",
			doc.ID, doc.CreatedAt.Local().Format("2006-01-02 15:04"), lang, doc.Title, crawl.TruncateURL(doc.SourceURL, 100))
	}
	return nil
}

// Run executes the history show command.
func (c *HistoryShowCmd) Run(deps *Dependencies) error {
	doc, err := deps.Documents.FindDocumentByID(deps.Ctx, c.ID)
	if err != nil {
		if leximorph.ErrorCode(err) == leximorph.ENOTFOUND {
			fmt.Fprintf(deps.Stderr, "error: document %q not found. Use 'leximorph history list' to see saved documents.\n", c.ID)
			return err
		}
		return printError(deps, err)
	}

	opts := leximorph.ExportOptions{Keywords: c.Keywords, SourceURL: doc.SourceURL}
	if err := writeArticle(deps, deps.Stdout, c.Format, doc.Article, opts); err != nil {
		return printError(deps, err)
	}
	return nil
}

// Run executes the history delete command.
func (c *HistoryDeleteCmd) Run(deps *Dependencies) error {
	if !c.Force {
		fmt.Fprintf(deps.Stderr, "error: use --force to confirm deletion\n")
		return leximorph.Errorf(leximorph.EINVALID, "use --force to confirm deletion")
	}

	if err := deps.Documents.DeleteDocument(deps.Ctx, c.ID); err != nil {
		if leximorph.ErrorCode(err) == leximorph.ENOTFOUND {
			fmt.Fprintf(deps.Stderr, "error: document %q not found. Use 'leximorph history list' to see saved documents.\n", c.ID)
			return err
		}
		return printError(deps, err)
	}

	fmt.Fprintf(deps.Stdout, "Deleted document %s\n", c.ID)
	return nil
}
