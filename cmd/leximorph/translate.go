package main

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/asheesh-yadav/leximorph"
	"github.com/asheesh-yadav/leximorph/crawl"
	"github.com/asheesh-yadav/leximorph/translate"
)

// Run executes the translate command.
func (c *TranslateCmd) Run(deps *Dependencies) error {
	target := c.To
	if target == "" {
		target = deps.Config.Translate.Language
	}

	if c.Text != "" {
		if c.URL != "" || c.File != "" {
			return printError(deps, leximorph.Errorf(leximorph.EINVALID, "use either --text or an article, not both"))
		}
		out, err := deps.Files.TranslateText(deps.Ctx, c.Text, target)
		if err != nil {
			return printError(deps, err)
		}
		fmt.Fprintln(deps.Stdout, out)
		return nil
	}

	if c.File != "" && slices.Contains(translate.FileTypes, strings.ToLower(filepath.Ext(c.File))) {
		return c.translateFile(deps, target)
	}

	article, sourceURL, err := loadArticle(deps, c.SourceFlags)
	if err != nil {
		return printError(deps, err)
	}

	t, err := deps.Translator.TranslateArticle(deps.Ctx, article, target, c.Keywords)
	if err != nil {
		return printError(deps, err)
	}
	fmt.Fprintf(deps.Stderr, "Translated from %s to %s\n",
		translate.LanguageName(t.SourceLanguage), translate.LanguageName(t.TargetLanguage))
	for i, kw := range t.TargetKeywords {
		fmt.Fprintf(deps.Stderr, "  %s → %s\n", t.SourceKeywords[i], kw)
	}

	if c.Save {
		if _, err := saveDocument(deps, sourceURL, t.TargetLanguage, t.Article); err != nil {
			return printError(deps, err)
		}
	}

	opts := leximorph.ExportOptions{Keywords: t.TargetKeywords, SourceURL: sourceURL}
	if err := writeArticle(deps, deps.Stdout, c.Format, t.Article, opts); err != nil {
		return printError(deps, err)
	}
	return nil
}

// translateFile writes a translated copy of an Office document, text file or
// subtitle file.
func (c *TranslateCmd) translateFile(deps *Dependencies, target string) error {
	data, err := os.ReadFile(c.File)
	if err != nil {
		return printError(deps, fmt.Errorf("read %s: %w", c.File, err))
	}

	out, err := deps.Files.TranslateFile(deps.Ctx, c.File, data, target)
	if err != nil {
		return printError(deps, err)
	}

	dir := c.Output
	if dir == "" {
		dir = filepath.Dir(c.File)
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return printError(deps, err)
	}
	path := filepath.Join(dir, translate.TranslatedFileName(c.File))
	if err := os.WriteFile(path, out, 0644); err != nil {
		return printError(deps, err)
	}

	fmt.Fprintf(deps.Stdout, "Wrote %s (%s)\n", path, crawl.FormatBytes(len(out)))
	return nil
}
