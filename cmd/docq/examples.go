package main

import (
	"fmt"

	"github.com/fwojciec/docq"
)

// Run executes the examples command.
func (c *ExamplesCmd) Run(deps *Dependencies) error {
	rows, err := docq.ExampleSections(deps.Ctx, deps.Corpus, c.MaxResults)
	if err != nil {
		return fail(deps, err)
	}

	for _, row := range rows {
		fmt.Fprintf(deps.Stdout, "%s | %s | snippets=%d\n", row.Path, row.Section, row.Count)
	}
	return nil
}
