package main

import (
	"fmt"

	"github.com/fwojciec/docq"
)

// Run executes the snippet command.
func (c *SnippetCmd) Run(deps *Dependencies) error {
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

	var block docq.CodeBlock
	if c.Pick != "" {
		block, err = docq.PickBlock(doc, selected, c.Pick)
	} else {
		block, err = docq.BlockAt(selected, c.Index)
	}
	if err != nil {
		return fail(deps, err)
	}

	body := docq.BlockBody(doc, block)
	if c.MaxLines > 0 && len(body) > c.MaxLines {
		body = body[:c.MaxLines]
	}

	if !c.NoFence {
		fmt.Fprintln(deps.Stdout, "```"+block.Lang)
	}
	for _, line := range body {
		fmt.Fprintln(deps.Stdout, line)
	}
	if !c.NoFence {
		fmt.Fprintln(deps.Stdout, "```")
	}
	return nil
}
