package leximorph

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
)

// SuggestionCount is the number of rewrites a Rewriter must return.
const SuggestionCount = 7

// DefaultRewriteLanguage is used when a request names no language.
const DefaultRewriteLanguage = "English"

// Mode selects the style of a rewrite.
type Mode string

// Rewrite modes offered by the writing assistant.
const (
	ModeDefault    Mode = "default"
	ModeFormal     Mode = "formal"
	ModeInformal   Mode = "informal"
	ModeConcise    Mode = "concise"
	ModeExpand     Mode = "expand"
	ModeSimplify   Mode = "simplify"
	ModePolish     Mode = "polish"
	ModeAcademic   Mode = "academic"
	ModeFriendly   Mode = "friendly"
	ModePersuasive Mode = "persuasive"
	ModeClarify    Mode = "clarify"
)

// Modes lists every rewrite mode.
func Modes() []Mode {
	return []Mode{
		ModeDefault, ModeFormal, ModeInformal, ModeConcise, ModeExpand, ModeSimplify,
		ModePolish, ModeAcademic, ModeFriendly, ModePersuasive, ModeClarify,
	}
}

// RewriteRequest asks the writing assistant to rephrase a text.
type RewriteRequest struct {
	Text     string `json:"text"`
	Language string `json:"language,omitempty"`
	Mode     Mode   `json:"mode,omitempty"`

	// Variant makes otherwise identical requests distinct so the model does
	// not repeat itself. Zero lets the implementation choose one.
	Variant int64 `json:"variant,omitempty"`
}

// Normalize fills defaults and validates the request.
func (r *RewriteRequest) Normalize() error {
	if strings.TrimSpace(r.Text) == "" {
		return Errorf(EINVALID, "text required")
	}
	if r.Language == "" {
		r.Language = DefaultRewriteLanguage
	}
	if r.Mode == "" {
		r.Mode = ModeDefault
	}
	for _, m := range Modes() {
		if r.Mode == m {
			return nil
		}
	}
	return Errorf(EINVALID, "unknown rewrite mode %q", r.Mode)
}

// Suggestion is one rewrite of the input text.
type Suggestion struct {
	Label string `json:"label"`
	Text  string `json:"text"`
}

// Rewriter produces alternative phrasings of a text using a generative model.
type Rewriter interface {
	// Rewrite returns exactly SuggestionCount suggestions.
	Rewrite(ctx context.Context, req RewriteRequest) ([]Suggestion, error)
}

// ParseSuggestions decodes a model reply holding a JSON array of
// suggestions. Code fences around the array are tolerated.
// Returns EINVALID unless exactly SuggestionCount non-empty suggestions are present.
func ParseSuggestions(raw string) ([]Suggestion, error) {
	raw = strings.TrimSpace(raw)
	raw = strings.TrimPrefix(raw, "```json")
	raw = strings.TrimPrefix(raw, "```")
	raw = strings.TrimSuffix(raw, "```")

	var suggestions []Suggestion
	if err := json.Unmarshal([]byte(strings.TrimSpace(raw)), &suggestions); err != nil {
		return nil, Errorf(EINVALID, "invalid JSON from model: %v", err)
	}
	if len(suggestions) != SuggestionCount {
		return nil, Errorf(EINVALID, "expected %d suggestions, got %d", SuggestionCount, len(suggestions))
	}
	for i, s := range suggestions {
		if strings.TrimSpace(s.Text) == "" {
			return nil, Errorf(EINVALID, "suggestion %d is empty", i+1)
		}
	}
	return suggestions, nil
}

// RewriteSystemPrompt is the system instruction sent with every rewrite.
const RewriteSystemPrompt = "You ONLY output valid JSON arrays."

// RewritePrompt builds the user prompt for a normalized request.
func RewritePrompt(req RewriteRequest) string {
	var sb strings.Builder
	sb.WriteString("You are a professional AI writing assistant.\n\n")
	fmt.Fprintf(&sb, "This request has a UNIQUE VARIANT ID: %d\n", req.Variant)
	sb.WriteString("You MUST generate a fresh response. Do NOT reuse previous phrasing.\n\n")
	fmt.Fprintf(&sb, "TASK:\nRewrite the text below in %s.\nMode: %s\n\n", req.Language, req.Mode)
	sb.WriteString("STRICT RULES:\n")
	fmt.Fprintf(&sb, "- Generate EXACTLY %d rewrites\n", SuggestionCount)
	sb.WriteString("- Each rewrite MUST differ in sentence structure, tone and phrasing\n")
	sb.WriteString("- No synonym swaps\n- No repeated openings\n\n")
	sb.WriteString("OUTPUT:\nReturn ONLY a valid JSON array, no markdown, no explanation:\n")
	sb.WriteString(`[{"label": "Rewrite 1", "text": "..."}, {"label": "Rewrite 2", "text": "..."}]`)
	fmt.Fprintf(&sb, "\n\nTEXT:\n\"\"\"%s\"\"\"\n", req.Text)
	return sb.String()
}

// TokenCounter counts model tokens in a text.
type TokenCounter interface {
	CountTokens(ctx context.Context, text string) (int, error)
}
