package gemini

import (
	"context"
	"strings"

	"github.com/asheesh-yadav/leximorph"
	"google.golang.org/genai"
	"google.golang.org/genai/tokenizer"
)

var _ leximorph.TokenCounter = (*TokenCounter)(nil)

// TokenCounter measures rewrite input with the model's local tokenizer, so
// the token limit is enforced without a round trip to the API.
type TokenCounter struct {
	model string
	tok   *tokenizer.LocalTokenizer
}

// NewTokenCounter loads the tokenizer for model. A model without a local
// tokenizer is EINVALID.
func NewTokenCounter(model string) (*TokenCounter, error) {
	tok, err := tokenizer.NewLocalTokenizer(model)
	if err != nil {
		return nil, leximorph.Errorf(leximorph.EINVALID, "no local tokenizer for model %q: %v", model, err)
	}
	return &TokenCounter{model: model, tok: tok}, nil
}

// CountTokens returns the cost of text sent as one user turn. Blank text
// costs nothing.
func (tc *TokenCounter) CountTokens(ctx context.Context, text string) (int, error) {
	if strings.TrimSpace(text) == "" {
		return 0, nil
	}
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	turn := []*genai.Content{genai.NewContentFromText(text, genai.RoleUser)}
	result, err := tc.tok.CountTokens(turn, nil)
	if err != nil {
		return 0, leximorph.Errorf(leximorph.EINTERNAL, "count tokens for %s: %v", tc.model, err)
	}
	return int(result.TotalTokens), nil
}
