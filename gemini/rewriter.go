// Package gemini implements the writing assistant with Google Gemini via
// google.golang.org/genai.
package gemini

import (
	"context"
	"time"

	"github.com/asheesh-yadav/leximorph"
	"google.golang.org/genai"
)

// DefaultModel is the Gemini model used for rewrites.
const DefaultModel = "gemini-2.5-flash"

const temperature = 0.95

// Ensure Rewriter implements leximorph.Rewriter at compile time.
var _ leximorph.Rewriter = (*Rewriter)(nil)

// Generator is the subset of genai.Models used by Rewriter.
type Generator interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

// Rewriter implements leximorph.Rewriter using Google Gemini.
type Rewriter struct {
	gen       Generator
	model     string
	counter   leximorph.TokenCounter
	maxTokens int
}

// Option configures a Rewriter.
type Option func(*Rewriter)

// WithModel overrides DefaultModel.
func WithModel(model string) Option {
	return func(r *Rewriter) {
		r.model = model
	}
}

// WithTokenLimit rejects texts longer than max tokens as counted by counter.
func WithTokenLimit(counter leximorph.TokenCounter, max int) Option {
	return func(r *Rewriter) {
		r.counter = counter
		r.maxTokens = max
	}
}

// NewRewriter creates a new Rewriter. Pass client.Models as gen.
func NewRewriter(gen Generator, opts ...Option) *Rewriter {
	r := &Rewriter{gen: gen, model: DefaultModel}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Rewrite returns exactly leximorph.SuggestionCount rewrites of req.Text.
func (r *Rewriter) Rewrite(ctx context.Context, req leximorph.RewriteRequest) ([]leximorph.Suggestion, error) {
	if err := req.Normalize(); err != nil {
		return nil, err
	}
	if req.Variant == 0 {
		req.Variant = time.Now().UnixMilli()
	}
	if r.counter != nil && r.maxTokens > 0 {
		n, err := r.counter.CountTokens(ctx, req.Text)
		if err != nil {
			return nil, err
		}
		if n > r.maxTokens {
			return nil, leximorph.Errorf(leximorph.EINVALID, "text is %d tokens, limit is %d", n, r.maxTokens)
		}
	}

	result, err := r.gen.GenerateContent(ctx, r.model,
		[]*genai.Content{genai.NewContentFromText(leximorph.RewritePrompt(req), genai.RoleUser)},
		BuildConfig(),
	)
	if err != nil {
		return nil, leximorph.Errorf(leximorph.EUNAVAILABLE, "gemini: %v", err)
	}
	if result == nil {
		return nil, leximorph.Errorf(leximorph.EINTERNAL, "gemini returned nil result")
	}
	return leximorph.ParseSuggestions(result.Text())
}

// BuildConfig returns the GenerateContentConfig for rewrite calls.
func BuildConfig() *genai.GenerateContentConfig {
	temp := float32(temperature)
	return &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{Text: leximorph.RewriteSystemPrompt}},
		},
		Temperature:      &temp,
		ResponseMIMEType: "application/json",
	}
}
