package main

import (
	"fmt"

	"github.com/fwojciec/docq"
)

// Run executes the section command.
func (c *SectionCmd) Run(deps *Dependencies) error {
	doc, err := loadPage(deps, c.Page)
	if err != nil {
		return fail(deps, err)
	}

	h, err := docq.FindHeading(doc.Headings, c.Title)
	if err != nil {
		return fail(deps, docq.Errorf(docq.ENOTFOUND, "section not found: %q in %s", c.Title, doc.Path))
	}

	start, end := docq.SectionBounds(doc, h)
	out := doc.Lines[start:end]
	if c.MaxLines > 0 && len(out) > c.MaxLines {
		out = out[:c.MaxLines]
	}

	for _, line := range out {
		fmt.Fprintln(deps.Stdout, line)
	}
	return nil
}
