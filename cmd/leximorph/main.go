package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/asheesh-yadav/leximorph"
	"github.com/asheesh-yadav/leximorph/bloom"
	"github.com/asheesh-yadav/leximorph/crawl"
	"github.com/asheesh-yadav/leximorph/docx"
	"github.com/asheesh-yadav/leximorph/export"
	"github.com/asheesh-yadav/leximorph/gemini"
	"github.com/asheesh-yadav/leximorph/gofeed"
	"github.com/asheesh-yadav/leximorph/gofpdf"
	"github.com/asheesh-yadav/leximorph/goquery"
	lhtml "github.com/asheesh-yadav/leximorph/html"
	"github.com/asheesh-yadav/leximorph/htmltomarkdown"
	lxhttp "github.com/asheesh-yadav/leximorph/http"
	lopenai "github.com/asheesh-yadav/leximorph/openai"
	"github.com/asheesh-yadav/leximorph/readability"
	"github.com/asheesh-yadav/leximorph/rod"
	lslog "github.com/asheesh-yadav/leximorph/slog"
	"github.com/asheesh-yadav/leximorph/sqlite"
	"github.com/asheesh-yadav/leximorph/trafilatura"
	"github.com/asheesh-yadav/leximorph/translate"
	"golang.org/x/net/html/atom"
	"golang.org/x/time/rate"
	"google.golang.org/genai"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Config file path. Set before calling Run(); --config overrides it.
	ConfigPath string

	// Getenv reads environment overrides. Defaults to os.Getenv.
	Getenv func(string) string

	// SQLite database holding extraction history.
	DB *sqlite.DB

	// Services for end-to-end testing.
	Documents leximorph.DocumentService
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		ConfigPath: defaultConfigPath(),
		Getenv:     os.Getenv,
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	// Initialize dependencies struct for Kong binding
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	// Create Kong parser with dependency binding
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("leximorph"),
		kong.Description("Extract, translate and export web articles."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle help flags using Kong
	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'leximorph --help' to see available commands")
	}
	if args[0] == "help" || args[0] == "--help" || args[0] == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	// Parse arguments first to know which command and its flags
	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}
	cmd := strings.Fields(kongCtx.Command())[0]

	// Load configuration
	configPath := m.ConfigPath
	if cli.Config != "" {
		configPath = cli.Config
	}
	cfg, err := LoadConfig(configPath, m.Getenv)
	if err != nil {
		fmt.Fprintf(stderr, "Hint: Set %s to use a different config file\n", configPathEnv)
		return err
	}
	deps.Config = cfg

	level := slog.LevelWarn
	if cli.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))
	deps.Logger = logger

	if cmd == "languages" {
		return kongCtx.Run(deps)
	}

	if cmd == "rewrite" {
		backend := cli.Rewrite.Backend
		if backend == "" {
			backend = cfg.Rewrite.Backend
		}
		rewriter, err := newRewriter(ctx, cfg, backend, stderr)
		if err != nil {
			return err
		}
		deps.Rewriter = lslog.NewLoggingRewriter(rewriter, logger)
		return kongCtx.Run(deps)
	}

	// Open database
	if err := os.MkdirAll(filepath.Dir(cfg.DB), 0755); err != nil {
		return fmt.Errorf("failed to create database directory: %w", err)
	}
	m.DB = sqlite.NewDB(cfg.DB)
	if err := m.DB.Open(); err != nil {
		fmt.Fprintf(stderr, "Hint: Set %s to use a different database path\n", dbPathEnv)
		return fmt.Errorf("failed to open database at %q: %w", cfg.DB, err)
	}
	defer m.Close()

	// Wire core services into dependencies
	m.Documents = sqlite.NewDocumentService(m.DB)
	deps.Documents = m.Documents
	deps.Exporters = newExporters(cfg.Output.Format)

	if cmd == "history" {
		return kongCtx.Run(deps)
	}

	// Wire fetching and extraction
	engine, browser := cfg.Fetch.Engine, false
	switch cmd {
	case "extract":
		engine, browser = pick(cli.Extract.Engine, engine), cli.Extract.Browser
	case "translate":
		engine, browser = pick(cli.Translate.Engine, engine), cli.Translate.Browser
	case "export":
		engine, browser = pick(cli.Export.Engine, engine), cli.Export.Browser
	case "batch":
		engine, browser = pick(cli.Batch.Engine, engine), cli.Batch.Browser
	}
	extractor, err := newExtractor(engine)
	if err != nil {
		fmt.Fprintln(stderr, "error:", leximorph.ErrorMessage(err))
		return err
	}
	deps.Extractor = lslog.NewLoggingExtractor(extractor, engine, logger)

	fetcher := lxhttp.NewFetcher(lxhttp.WithTimeout(cfg.Fetch.Timeout), lxhttp.WithUserAgent(userAgent(cfg)))
	deps.Fetcher = lslog.NewLoggingFetcher(fetcher, logger)

	if browser {
		b, err := rod.NewFetcher(
			rod.WithFetchTimeout(cfg.Browser.Timeout),
			rod.WithUserAgent(userAgent(cfg)),
			rod.WithBrowserOptions(rod.WithBrowserBin(cfg.Browser.Bin), rod.WithMaxPages(cfg.Browser.MaxPages)),
		)
		if err != nil {
			fmt.Fprintf(stderr, "Hint: Chrome or Chromium must be installed, or set %s\n", browserBinEnv)
			return fmt.Errorf("failed to start browser: %w", err)
		}
		defer b.Close()
		deps.Browser = lslog.NewLoggingFetcher(b, logger)
	}

	// Wire translation
	gtx := lxhttp.NewTranslator(translatorOptions(cfg)...)
	svc := &translate.Service{
		Translator:  gtx,
		Detector:    gtx,
		Limiter:     rate.NewLimiter(rate.Limit(cfg.Translate.RequestsPerSecond), 1),
		Concurrency: cfg.Translate.Concurrency,
		ChunkSize:   cfg.Translate.ChunkSize,
		Logger:      logger,
	}
	deps.Translator = lslog.NewLoggingTranslator(svc, logger)
	deps.Files = svc

	// Wire batch discovery and the pipeline
	if cmd == "batch" {
		registry := lslog.NewLoggingRegistry(goquery.NewDefaultRegistry(), goquery.NewDetector(), logger)
		deps.Sources = map[string]leximorph.URLSource{
			sourceFeed:    lslog.NewLoggingURLSource(gofeed.NewSource(gofeed.WithUserAgent(userAgent(cfg))), logger),
			sourceSitemap: lslog.NewLoggingURLSource(lxhttp.NewSitemapService(nil), logger),
			sourcePage:    lslog.NewLoggingURLSource(goquery.NewListingSource(deps.Fetcher, registry), logger),
		}
		deps.Crawler = &crawl.Crawler{
			Fetcher:     deps.Fetcher,
			Extractor:   deps.Extractor,
			Translator:  deps.Translator,
			Seen:        bloom.NewFilter(cfg.Batch.SeenCapacity, 0.001),
			RateLimiter: crawl.NewDomainLimiter(cfg.Batch.RequestsPerSecond),
			Concurrency: cfg.Batch.Concurrency,
			Logger:      logger,
		}
		if deps.Browser != nil {
			deps.Crawler.Browser = deps.Browser
		}
	}

	return kongCtx.Run(deps)
}

// newExtractor returns the extraction engine with the given name.
func newExtractor(engine string) (leximorph.Extractor, error) {
	switch engine {
	case EngineHeuristic:
		return goquery.NewExtractor(), nil
	case EngineReadability:
		return readability.NewExtractor(), nil
	case EngineTrafilatura:
		return trafilatura.NewExtractor(), nil
	}
	return nil, leximorph.Errorf(leximorph.EINVALID, "unknown extraction engine %q: use heuristic, readability or trafilatura", engine)
}

// newExporters registers an exporter for every supported format.
func newExporters(def leximorph.Format) *export.Registry {
	preview := lhtml.NewExporter()
	r := export.NewRegistry(def)
	r.Register(leximorph.FormatDOCX, docx.NewExporter())
	r.Register(leximorph.FormatPDF, gofpdf.NewExporter())
	r.Register(leximorph.FormatHTML, preview)
	r.Register(leximorph.FormatMarkdown, htmltomarkdown.NewExporter(lhtml.NewExporter(lhtml.WithFragment(), lhtml.WithHighlightTag(atom.Strong))))
	r.Register(leximorph.FormatJSON, &export.JSONExporter{Indent: "  "})
	return r
}

// newRewriter connects to the model backend used by the rewrite command.
func newRewriter(ctx context.Context, cfg *Config, backend string, stderr io.Writer) (leximorph.Rewriter, error) {
	switch backend {
	case BackendOpenAI:
		if cfg.Rewrite.OpenAI.APIKey == "" {
			fmt.Fprintf(stderr, "%s environment variable not set. Get an API key at https://platform.openai.com/api-keys\n", openAIKeyEnv)
			return nil, leximorph.Errorf(leximorph.EINVALID, "%s not set", openAIKeyEnv)
		}
		client := lopenai.NewClient(cfg.Rewrite.OpenAI.APIKey, cfg.Rewrite.OpenAI.BaseURL)
		return lopenai.NewRewriter(client, cfg.Rewrite.OpenAI.Model), nil

	case BackendGemini:
		if cfg.Rewrite.Gemini.APIKey == "" {
			fmt.Fprintf(stderr, "%s environment variable not set. Get an API key at https://aistudio.google.com/apikey\n", geminiKeyEnv)
			return nil, leximorph.Errorf(leximorph.EINVALID, "%s not set", geminiKeyEnv)
		}
		client, err := genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:  cfg.Rewrite.Gemini.APIKey,
			Backend: genai.BackendGeminiAPI,
		})
		if err != nil {
			fmt.Fprintf(stderr, "Hint: Check your %s is valid\n", geminiKeyEnv)
			return nil, fmt.Errorf("failed to connect to Gemini API: %w", err)
		}

		model := pick(cfg.Rewrite.Gemini.Model, gemini.DefaultModel)
		opts := []gemini.Option{gemini.WithModel(model)}
		if cfg.Rewrite.MaxTokens > 0 {
			counter, err := gemini.NewTokenCounter(model)
			if err != nil {
				return nil, fmt.Errorf("failed to create token counter: %w", err)
			}
			opts = append(opts, gemini.WithTokenLimit(counter, cfg.Rewrite.MaxTokens))
		}
		return gemini.NewRewriter(client.Models, opts...), nil
	}
	return nil, leximorph.Errorf(leximorph.EINVALID, "unknown rewrite backend %q: use openai or gemini", backend)
}

func translatorOptions(cfg *Config) []lxhttp.TranslatorOption {
	var opts []lxhttp.TranslatorOption
	if cfg.Translate.BaseURL != "" {
		opts = append(opts, lxhttp.WithBaseURL(cfg.Translate.BaseURL))
	}
	return opts
}

func userAgent(cfg *Config) string {
	return pick(cfg.Fetch.UserAgent, lxhttp.DefaultUserAgent)
}

// pick returns v, or def when v is empty.
func pick(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
