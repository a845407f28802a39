package main

import (
	_ "embed"
	"fmt"
)

//go:embed todo.guide.md
var guideContent string

// GuideCmd prints the deadline syntax guide to stdout.
type GuideCmd struct{}

func (cmd *GuideCmd) Run(globals *Globals) error {
	// Raw markdown in JSON mode so scripts and agents get stable text.
	if globals.JSON {
		fmt.Print(guideContent)
		return nil
	}

	fmt.Print(renderMarkdown(guideContent, 80))
	return nil
}
