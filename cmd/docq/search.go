package main

import (
	"fmt"

	"github.com/fwojciec/docq"
)

// Run executes the search command.
func (c *SearchCmd) Run(deps *Dependencies) error {
	hits, err := docq.Search(deps.Ctx, deps.Corpus, c.Query, docq.SearchOptions{
		CaseSensitive: c.CaseSensitive,
		MaxResults:    c.MaxResults,
	})
	if err != nil {
		return fail(deps, err)
	}

	for _, hit := range hits {
		fmt.Fprintf(deps.Stdout, "%s:%d: %s\n", hit.Path, hit.Line, hit.Text)
	}
	return nil
}
