package main

import (
	"fmt"
	"strings"

	"github.com/fwojciec/docq"
)

// Run executes the compose command.
func (c *ComposeCmd) Run(deps *Dependencies) error {
	doc, err := loadPage(deps, c.Page)
	if err != nil {
		return fail(deps, err)
	}

	selected, err := docq.SelectCodeBlocks(doc, c.Title, c.Lang)
	if err != nil {
		return fail(deps, err)
	}
	if len(selected) == 0 {
		return fail(deps, docq.Errorf(docq.EEMPTY, "no code snippets matched in %s", doc.Path))
	}

	if c.MaxBlocks > 0 && len(selected) > c.MaxBlocks {
		selected = selected[:c.MaxBlocks]
	}

	script := docq.ComposeScript(doc, selected)
	var lines []string
	if script != "" {
		lines = strings.Split(script, "\n")
	}
	if c.MaxLines > 0 && len(lines) > c.MaxLines {
		lines = lines[:c.MaxLines]
	}

	if !c.NoFence {
		tag := strings.ToLower(strings.TrimSpace(c.Lang))
		if tag == "" {
			tag = selected[0].Lang
		}
		fmt.Fprintln(deps.Stdout, "```"+tag)
	}
	for _, line := range lines {
		fmt.Fprintln(deps.Stdout, line)
	}
	if !c.NoFence {
		fmt.Fprintln(deps.Stdout, "```")
	}
	return nil
}
