package main

import (
	"fmt"
	"strings"

	"github.com/fwojciec/docq"
)

// Run executes the toc command.
func (c *TocCmd) Run(deps *Dependencies) error {
	doc, err := loadPage(deps, c.Page)
	if err != nil {
		return fail(deps, err)
	}

	for _, h := range docq.TOC(doc, c.Max) {
		indent := strings.Repeat("  ", h.Level-1)
		fmt.Fprintf(deps.Stdout, "%5d: %s%s\n", h.Line+1, indent, h.Title)
	}
	return nil
}
