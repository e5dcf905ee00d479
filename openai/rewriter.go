// Package openai implements the writing assistant with the OpenAI chat
// completions API via sashabaranov/go-openai.
package openai

import (
	"context"
	"strings"
	"time"

	"github.com/asheesh-yadav/leximorph"
	"github.com/sashabaranov/go-openai"
)

// DefaultModel is the chat model used for rewrites.
const DefaultModel = "gpt-4o-mini"

const temperature = 0.95

// Ensure Rewriter implements leximorph.Rewriter at compile time.
var _ leximorph.Rewriter = (*Rewriter)(nil)

// ChatClient is the subset of *openai.Client used by Rewriter.
type ChatClient interface {
	CreateChatCompletion(ctx context.Context, request openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

// Rewriter implements leximorph.Rewriter using OpenAI chat completions.
type Rewriter struct {
	client ChatClient
	model  string
}

// NewRewriter creates a new Rewriter. An empty model selects DefaultModel.
func NewRewriter(client ChatClient, model string) *Rewriter {
	if model == "" {
		model = DefaultModel
	}
	return &Rewriter{client: client, model: model}
}

// NewClient creates an OpenAI client. baseURL may point at any
// OpenAI-compatible endpoint; empty keeps the default.
func NewClient(apiKey, baseURL string) *openai.Client {
	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	return openai.NewClientWithConfig(cfg)
}

// Rewrite returns exactly leximorph.SuggestionCount rewrites of req.Text.
func (r *Rewriter) Rewrite(ctx context.Context, req leximorph.RewriteRequest) ([]leximorph.Suggestion, error) {
	if err := req.Normalize(); err != nil {
		return nil, err
	}
	if req.Variant == 0 {
		req.Variant = time.Now().UnixMilli()
	}

	resp, err := r.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: r.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: leximorph.RewriteSystemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: leximorph.RewritePrompt(req)},
		},
		Temperature: temperature,
		N:           1,
	})
	if err != nil {
		return nil, leximorph.Errorf(leximorph.EUNAVAILABLE, "openai: %v", err)
	}
	if len(resp.Choices) == 0 || strings.TrimSpace(resp.Choices[0].Message.Content) == "" {
		return nil, leximorph.Errorf(leximorph.EUNAVAILABLE, "empty response from model")
	}
	return leximorph.ParseSuggestions(resp.Choices[0].Message.Content)
}
