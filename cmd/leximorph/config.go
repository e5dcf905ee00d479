package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/asheesh-yadav/leximorph"
	"gopkg.in/yaml.v3"
)

// Environment variables read by LoadConfig.
const (
	configPathEnv     = "LEXIMORPH_CONFIG"
	dbPathEnv         = "LEXIMORPH_DB"
	outputDirEnv      = "LEXIMORPH_OUTPUT"
	targetLanguageEnv = "LEXIMORPH_TARGET_LANGUAGE"
	browserBinEnv     = "LEXIMORPH_BROWSER"
	openAIKeyEnv      = "OPENAI_API_KEY"
	openAIBaseURLEnv  = "OPENAI_BASE_URL"
	geminiKeyEnv      = "GEMINI_API_KEY"
)

// Extraction engines selectable with --engine.
const (
	EngineHeuristic   = "heuristic"
	EngineReadability = "readability"
	EngineTrafilatura = "trafilatura"
)

// Rewrite backends selectable with --backend.
const (
	BackendOpenAI = "openai"
	BackendGemini = "gemini"
)

// Config holds the settings read from the YAML config file.
type Config struct {
	DB        string          `yaml:"db"`
	Output    OutputConfig    `yaml:"output"`
	Fetch     FetchConfig     `yaml:"fetch"`
	Browser   BrowserConfig   `yaml:"browser"`
	Translate TranslateConfig `yaml:"translate"`
	Batch     BatchConfig     `yaml:"batch"`
	Rewrite   RewriteConfig   `yaml:"rewrite"`
}

// OutputConfig controls where and how exported files are written.
type OutputConfig struct {
	Dir    string           `yaml:"dir"`
	Format leximorph.Format `yaml:"format"`
}

// FetchConfig controls static page downloads.
type FetchConfig struct {
	Engine    string        `yaml:"engine"`
	Timeout   time.Duration `yaml:"timeout"`
	UserAgent string        `yaml:"userAgent"`
}

// BrowserConfig controls the headless browser used for rendered pages.
type BrowserConfig struct {
	Bin      string        `yaml:"bin"`
	Timeout  time.Duration `yaml:"timeout"`
	MaxPages int64         `yaml:"maxPages"`
}

// TranslateConfig controls machine translation.
type TranslateConfig struct {
	Language          string  `yaml:"language"`
	BaseURL           string  `yaml:"baseUrl"`
	RequestsPerSecond float64 `yaml:"requestsPerSecond"`
	Concurrency       int     `yaml:"concurrency"`
	ChunkSize         int     `yaml:"chunkSize"`
}

// BatchConfig controls the batch pipeline.
type BatchConfig struct {
	Concurrency int `yaml:"concurrency"`

	// RequestsPerSecond is the per-host fetch rate.
	RequestsPerSecond float64 `yaml:"requestsPerSecond"`

	// SeenCapacity sizes the URL seen-set of one run.
	SeenCapacity uint `yaml:"seenCapacity"`
}

// RewriteConfig selects and configures the writing assistant backend.
type RewriteConfig struct {
	Backend   string       `yaml:"backend"`
	MaxTokens int          `yaml:"maxTokens"`
	OpenAI    OpenAIConfig `yaml:"openai"`
	Gemini    GeminiConfig `yaml:"gemini"`
}

// OpenAIConfig holds OpenAI credentials. BaseURL may name any
// OpenAI-compatible endpoint.
type OpenAIConfig struct {
	APIKey  string `yaml:"apiKey"`
	BaseURL string `yaml:"baseUrl"`
	Model   string `yaml:"model"`
}

// GeminiConfig holds Gemini credentials.
type GeminiConfig struct {
	APIKey string `yaml:"apiKey"`
	Model  string `yaml:"model"`
}

// DefaultConfig returns the configuration used when no file is present.
func DefaultConfig() *Config {
	return &Config{
		DB: defaultDBPath(),
		Output: OutputConfig{
			Dir:    ".",
			Format: leximorph.FormatDOCX,
		},
		Fetch: FetchConfig{
			Engine:  EngineHeuristic,
			Timeout: 10 * time.Second,
		},
		Browser: BrowserConfig{
			Timeout:  30 * time.Second,
			MaxPages: 40,
		},
		Translate: TranslateConfig{
			Language:          "en",
			RequestsPerSecond: 5,
			Concurrency:       3,
			ChunkSize:         500,
		},
		Batch: BatchConfig{
			Concurrency:       3,
			RequestsPerSecond: 1,
			SeenCapacity:      10000,
		},
		Rewrite: RewriteConfig{
			Backend: BackendOpenAI,
		},
	}
}

// LoadConfig reads the YAML file at path over DefaultConfig and applies
// environment overrides. A missing file is not an error.
func LoadConfig(path string, getenv func(string) string) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		b, err := os.ReadFile(path)
		switch {
		case errors.Is(err, fs.ErrNotExist):
		case err != nil:
			return nil, fmt.Errorf("read config: %w", err)
		default:
			if err := yaml.Unmarshal(b, cfg); err != nil {
				return nil, leximorph.Errorf(leximorph.EINVALID, "parse config %s: %v", path, err)
			}
		}
	}

	cfg.applyEnv(getenv)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnv(getenv func(string) string) {
	if getenv == nil {
		return
	}
	overrides := []struct {
		key string
		dst *string
	}{
		{dbPathEnv, &c.DB},
		{outputDirEnv, &c.Output.Dir},
		{targetLanguageEnv, &c.Translate.Language},
		{browserBinEnv, &c.Browser.Bin},
		{openAIKeyEnv, &c.Rewrite.OpenAI.APIKey},
		{openAIBaseURLEnv, &c.Rewrite.OpenAI.BaseURL},
		{geminiKeyEnv, &c.Rewrite.Gemini.APIKey},
	}
	for _, o := range overrides {
		if v := strings.TrimSpace(getenv(o.key)); v != "" {
			*o.dst = v
		}
	}
}

// Validate returns EINVALID for unknown engines, formats or backends and
// for non-positive limits.
func (c *Config) Validate() error {
	switch c.Fetch.Engine {
	case EngineHeuristic, EngineReadability, EngineTrafilatura:
	default:
		return leximorph.Errorf(leximorph.EINVALID, "unknown extraction engine %q", c.Fetch.Engine)
	}
	if !validFormat(c.Output.Format) {
		return leximorph.Errorf(leximorph.EINVALID, "unknown output format %q", c.Output.Format)
	}
	switch c.Rewrite.Backend {
	case BackendOpenAI, BackendGemini:
	default:
		return leximorph.Errorf(leximorph.EINVALID, "unknown rewrite backend %q", c.Rewrite.Backend)
	}
	if c.Translate.RequestsPerSecond <= 0 || c.Batch.RequestsPerSecond <= 0 {
		return leximorph.Errorf(leximorph.EINVALID, "requestsPerSecond must be positive")
	}
	if c.Fetch.Timeout <= 0 || c.Browser.Timeout <= 0 {
		return leximorph.Errorf(leximorph.EINVALID, "timeouts must be positive")
	}
	if c.Browser.MaxPages <= 0 {
		return leximorph.Errorf(leximorph.EINVALID, "browser maxPages must be positive")
	}
	if c.Batch.SeenCapacity == 0 {
		return leximorph.Errorf(leximorph.EINVALID, "batch seenCapacity must be positive")
	}
	return nil
}

func validFormat(f leximorph.Format) bool {
	for _, known := range leximorph.Formats() {
		if f == known {
			return true
		}
	}
	return false
}

func defaultConfigPath() string {
	if path := os.Getenv(configPathEnv); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".leximorph", "config.yaml")
}

func defaultDBPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "leximorph.db"
	}
	return filepath.Join(home, ".leximorph", "leximorph.db")
}
