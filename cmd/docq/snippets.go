package main

import (
	"fmt"

	"github.com/fwojciec/docq"
)

// Run executes the snippets command.
func (c *SnippetsCmd) Run(deps *Dependencies) error {
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

	if c.MaxResults > 0 && len(selected) > c.MaxResults {
		selected = selected[:c.MaxResults]
	}

	for i, b := range selected {
		body := docq.BlockBody(doc, b)
		lang := b.Lang
		if lang == "" {
			lang = "text"
		}
		section := docq.HeadingPath(doc.Headings, b.StartLine)
		if section == "" {
			section = docq.NoHeading
		}
		fmt.Fprintf(deps.Stdout, "%3d: lines %d-%d | lang=%s | section=%s\n",
			i+1, b.StartLine+2, b.StartLine+1+len(body), lang, section)
	}
	return nil
}
