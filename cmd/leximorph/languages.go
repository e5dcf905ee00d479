package main

import (
	"fmt"

	"github.com/asheesh-yadav/leximorph/translate"
	"golang.org/x/text/language/display"
)

// Run executes the languages command.
func (c *LanguagesCmd) Run(deps *Dependencies) error {
	namer := display.English.Tags()
	for _, tag := range translate.Supported {
		code := translate.ResolveLanguage(tag.String())
		fmt.Fprintf(deps.Stdout, "%-6s %s\n", code, namer.Name(tag))
	}
	return nil
}
