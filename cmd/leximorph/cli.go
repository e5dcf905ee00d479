package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/asheesh-yadav/leximorph"
	"github.com/asheesh-yadav/leximorph/crawl"
	"github.com/asheesh-yadav/leximorph/export"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer
	Logger *slog.Logger
	Config *Config

	Documents leximorph.DocumentService
	Fetcher   leximorph.Fetcher
	Browser   leximorph.Fetcher
	Extractor leximorph.Extractor
	Exporters *export.Registry

	Translator leximorph.ArticleTranslator
	Files      leximorph.FileTranslator

	// Sources maps the batch --feed, --sitemap and --page flags to URL
	// discovery services.
	Sources map[string]leximorph.URLSource
	Crawler *crawl.Crawler

	Rewriter leximorph.Rewriter
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Config  string `help:"Path to the YAML config file" type:"path"`
	Verbose bool   `short:"v" help:"Log every fetch, extraction and translation to stderr"`

	Extract   ExtractCmd   `cmd:"" help:"Extract the main article from a web page"`
	Translate TranslateCmd `cmd:"" help:"Translate an article, a document or a text"`
	Export    ExportCmd    `cmd:"" help:"Extract an article and save it as a file"`
	Batch     BatchCmd     `cmd:"" help:"Extract many articles from a feed, sitemap, listing page or URL list"`
	History   HistoryCmd   `cmd:"" help:"Inspect saved extractions"`
	Rewrite   RewriteCmd   `cmd:"" help:"Suggest alternative phrasings of a text"`
	Languages LanguagesCmd `cmd:"" help:"List the languages offered for translation"`
}

// SourceFlags selects what a command extracts: a URL or a local HTML file.
type SourceFlags struct {
	URL     string `arg:"" optional:"" help:"Article URL"`
	File    string `short:"f" type:"existingfile" help:"Read HTML from a local file instead of fetching"`
	Engine  string `short:"e" help:"Extraction engine (heuristic, readability, trafilatura)"`
	Browser bool   `short:"b" help:"Fetch with a headless browser for JavaScript-rendered pages"`
	Save    bool   `short:"s" help:"Save the result to history"`
}

// ExtractCmd is the "extract" subcommand.
type ExtractCmd struct {
	SourceFlags
	Format   string   `short:"F" help:"Output format (json, md, html)" default:"json"`
	Keywords []string `short:"k" name:"keyword" help:"Keyword to emphasize (repeatable)"`
	Outline  bool     `help:"Print the heading outline instead of the article"`
}

// TranslateCmd is the "translate" subcommand.
type TranslateCmd struct {
	SourceFlags
	To       string   `short:"t" help:"Target language name or code"`
	Text     string   `help:"Translate this text instead of an article"`
	Format   string   `short:"F" help:"Output format for articles (json, md, html)" default:"json"`
	Keywords []string `short:"k" name:"keyword" help:"Keyword to translate and emphasize (repeatable)"`
	Output   string   `short:"o" type:"path" help:"Directory for translated documents (default: next to the input)"`
}

// ExportCmd is the "export" subcommand.
type ExportCmd struct {
	SourceFlags
	To       string   `short:"t" help:"Translate into this language before exporting"`
	Format   string   `short:"F" help:"File format (docx, pdf, md, html, json)"`
	Keywords []string `short:"k" name:"keyword" help:"Keyword to emphasize (repeatable)"`
	Output   string   `short:"o" type:"path" help:"Output directory"`
}

// BatchCmd is the "batch" subcommand.
type BatchCmd struct {
	URLs        []string `arg:"" optional:"" help:"Article URLs"`
	Feed        string   `help:"Discover URLs from an RSS, Atom or JSON feed"`
	Sitemap     string   `help:"Discover URLs from a site's sitemap"`
	Page        string   `help:"Discover URLs from a listing page such as a blog front page"`
	Filter      []string `short:"F" name:"filter" help:"Only process URLs matching this regex (repeatable)"`
	Exclude     []string `short:"X" name:"exclude" help:"Skip URLs matching this regex (repeatable)"`
	Limit       int      `short:"n" help:"Process at most this many discovered URLs"`
	Preview     bool     `short:"p" help:"Show URLs without processing them"`
	To          string   `short:"t" help:"Translate every article into this language"`
	Keywords    []string `short:"k" name:"keyword" help:"Keyword to translate and emphasize (repeatable)"`
	Output      string   `short:"o" type:"path" help:"Also export every article into this directory"`
	Format      string   `help:"File format for --output (docx, pdf, md, html, json)"`
	Engine      string   `short:"e" help:"Extraction engine (heuristic, readability, trafilatura)"`
	Browser     bool     `short:"b" help:"Re-fetch pages with a headless browser when static HTML has no article"`
	Concurrency int      `short:"c" help:"Concurrent fetch limit"`
}

// HistoryCmd groups the history subcommands.
type HistoryCmd struct {
	List   HistoryListCmd   `cmd:"" default:"1" help:"List saved extractions, newest first"`
	Show   HistoryShowCmd   `cmd:"" help:"Print a saved extraction"`
	Delete HistoryDeleteCmd `cmd:"" help:"Delete a saved extraction"`
}

// HistoryListCmd is the "history list" subcommand.
type HistoryListCmd struct {
	URL       string `help:"Only show extractions of this URL"`
	Language  string `short:"l" help:"Only show translations into this language"`
	Originals bool   `help:"Only show untranslated extractions"`
	Limit     int    `short:"n" default:"20" help:"Maximum number of entries"`
	Offset    int    `help:"Number of entries to skip"`
}

// HistoryShowCmd is the "history show" subcommand.
type HistoryShowCmd struct {
	ID       string   `arg:"" help:"Document ID"`
	Format   string   `short:"F" help:"Output format (json, md, html)" default:"json"`
	Keywords []string `short:"k" name:"keyword" help:"Keyword to emphasize (repeatable)"`
}

// HistoryDeleteCmd is the "history delete" subcommand.
type HistoryDeleteCmd struct {
	ID    string `arg:"" help:"Document ID"`
	Force bool   `help:"Confirm deletion"`
}

// RewriteCmd is the "rewrite" subcommand.
type RewriteCmd struct {
	Text     string `arg:"" optional:"" help:"Text to rewrite"`
	File     string `short:"f" type:"existingfile" help:"Read the text from a file"`
	Mode     string `short:"m" default:"default" help:"Rewrite mode (default, formal, informal, concise, expand, simplify, polish, academic, friendly, persuasive, clarify)"`
	Language string `short:"l" help:"Language of the rewrites" default:"English"`
	Backend  string `help:"Model backend (openai, gemini)"`
	JSON     bool   `help:"Print suggestions as JSON"`
}

// LanguagesCmd is the "languages" subcommand.
type LanguagesCmd struct{}
