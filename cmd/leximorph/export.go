package main

import (
	"fmt"
	"os"

	"github.com/asheesh-yadav/leximorph"
	"github.com/asheesh-yadav/leximorph/crawl"
	"github.com/asheesh-yadav/leximorph/fs"
	"github.com/asheesh-yadav/leximorph/translate"
)

// Run executes the export command.
func (c *ExportCmd) Run(deps *Dependencies) error {
	format := leximorph.Format(c.Format)
	if format == "" {
		format = deps.Config.Output.Format
	}
	exporter, err := deps.Exporters.Get(format)
	if err != nil {
		return printError(deps, err)
	}
	dir := c.Output
	if dir == "" {
		dir = deps.Config.Output.Dir
	}

	article, sourceURL, err := loadArticle(deps, c.SourceFlags)
	if err != nil {
		return printError(deps, err)
	}

	doc := &leximorph.Document{SourceURL: sourceURL, Article: article}
	keywords := c.Keywords
	if c.To != "" {
		t, err := deps.Translator.TranslateArticle(deps.Ctx, article, c.To, c.Keywords)
		if err != nil {
			return printError(deps, err)
		}
		fmt.Fprintf(deps.Stderr, "Translated from %s to %s\n",
			translate.LanguageName(t.SourceLanguage), translate.LanguageName(t.TargetLanguage))
		doc.Article = t.Article
		doc.Language = t.TargetLanguage
		keywords = t.TargetKeywords
	}

	if c.Save {
		saved, err := saveDocument(deps, doc.SourceURL, doc.Language, doc.Article)
		if err != nil {
			return printError(deps, err)
		}
		doc = saved
	}

	w := fs.NewWriter(dir, exporter, format, fs.WithKeywords(keywords))
	path, err := w.WriteDocument(deps.Ctx, doc)
	if err != nil {
		return printError(deps, err)
	}

	size := ""
	if fi, err := os.Stat(path); err == nil {
		size = " (" + crawl.FormatBytes(int(fi.Size())) + ")"
	}
	fmt.Fprintf(deps.Stdout, "Wrote %s%s\n", path, size)
	return nil
}
