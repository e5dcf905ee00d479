package http

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/asheesh-yadav/leximorph"
)

// DefaultTranslateURL is the base URL of the public gtx translation endpoint.
const DefaultTranslateURL = "https://translate.googleapis.com"

// detectSampleLen is the number of characters sent for language detection.
const detectSampleLen = 100

// Ensure Translator implements the translation interfaces at compile time.
var (
	_ leximorph.Translator       = (*Translator)(nil)
	_ leximorph.LanguageDetector = (*Translator)(nil)
)

// Translator is a client for the gtx machine translation endpoint.
type Translator struct {
	client  *http.Client
	baseURL string
}

// TranslatorOption configures a Translator.
type TranslatorOption func(*Translator)

// WithBaseURL points the client at a different endpoint.
func WithBaseURL(u string) TranslatorOption {
	return func(t *Translator) {
		t.baseURL = strings.TrimRight(u, "/")
	}
}

// WithHTTPClient sets the HTTP client used for requests.
func WithHTTPClient(c *http.Client) TranslatorOption {
	return func(t *Translator) {
		t.client = c
	}
}

// NewTranslator creates a new Translator.
func NewTranslator(opts ...TranslatorOption) *Translator {
	t := &Translator{
		client:  &http.Client{Timeout: DefaultFetchTimeout},
		baseURL: DefaultTranslateURL,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// TranslateSpan translates a single span of text. Blank text is returned
// unchanged without a request. Callers are responsible for keeping spans
// short; the endpoint rejects very long queries.
func (t *Translator) TranslateSpan(ctx context.Context, text, sourceLang, targetLang string) (string, error) {
	if strings.TrimSpace(text) == "" {
		return text, nil
	}

	data, err := t.query(ctx, text, sourceLang, targetLang)
	if err != nil {
		return "", err
	}

	var segments [][]any
	if err := json.Unmarshal(data[0], &segments); err != nil {
		return "", leximorph.Errorf(leximorph.EUNAVAILABLE, "unexpected translation response: %v", err)
	}

	var b strings.Builder
	for _, seg := range segments {
		if len(seg) == 0 {
			continue
		}
		if s, ok := seg[0].(string); ok {
			b.WriteString(s)
		}
	}
	if b.Len() == 0 {
		return "", leximorph.Errorf(leximorph.EUNAVAILABLE, "empty translation response")
	}
	return b.String(), nil
}

// DetectLanguage returns the language code reported for the first
// characters of text, or "en" when the text is blank or the response carries
// no detection.
func (t *Translator) DetectLanguage(ctx context.Context, text string) (string, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return "en", nil
	}
	if r := []rune(text); len(r) > detectSampleLen {
		text = string(r[:detectSampleLen])
	}

	data, err := t.query(ctx, text, leximorph.AutoLanguage, "en")
	if err != nil {
		return "", err
	}

	var lang string
	if len(data) > 2 {
		_ = json.Unmarshal(data[2], &lang)
	}
	if lang == "" {
		return "en", nil
	}
	return lang, nil
}

// query calls the endpoint and returns the top-level response array.
func (t *Translator) query(ctx context.Context, text, sourceLang, targetLang string) ([]json.RawMessage, error) {
	q := url.Values{}
	q.Set("client", "gtx")
	q.Set("sl", sourceLang)
	q.Set("tl", targetLang)
	q.Set("dt", "t")
	q.Set("q", text)
	endpoint := t.baseURL + "/translate_a/single?" + q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	resp, err := t.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, leximorph.Errorf(leximorph.EUNAVAILABLE, "translation HTTP %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	var data []json.RawMessage
	if err := json.Unmarshal(body, &data); err != nil || len(data) == 0 {
		return nil, leximorph.Errorf(leximorph.EUNAVAILABLE, "unexpected translation response")
	}
	return data, nil
}
