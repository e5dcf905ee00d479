package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/asheesh-yadav/leximorph"
)

// Run executes the rewrite command.
func (c *RewriteCmd) Run(deps *Dependencies) error {
	text := c.Text
	if c.File != "" {
		if text != "" {
			return printError(deps, leximorph.Errorf(leximorph.EINVALID, "use either a text argument or --file, not both"))
		}
		b, err := os.ReadFile(c.File)
		if err != nil {
			return printError(deps, fmt.Errorf("read %s: %w", c.File, err))
		}
		text = string(b)
	}

	req := leximorph.RewriteRequest{
		Text:     strings.TrimSpace(text),
		Language: c.Language,
		Mode:     leximorph.Mode(c.Mode),
	}
	if err := req.Normalize(); err != nil {
		return printError(deps, err)
	}

	suggestions, err := deps.Rewriter.Rewrite(deps.Ctx, req)
	if err != nil {
		return printError(deps, err)
	}

	if c.JSON {
		enc := json.NewEncoder(deps.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(suggestions)
	}
	for i, s := range suggestions {
		label := s.Label
		if label == "" {
			label = fmt.Sprintf("Rewrite %d", i+1)
		}
		fmt.Fprintf(deps.Stdout, "%d. %s\n   %s\n\n", i+1, label, s.Text)
	}
	return nil
}
