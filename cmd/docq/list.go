package main

import "fmt"

// Run executes the list command.
func (c *ListCmd) Run(deps *Dependencies) error {
	pages, err := deps.Corpus.ListPages(deps.Ctx)
	if err != nil {
		return fail(deps, err)
	}

	if c.Limit > 0 && len(pages) > c.Limit {
		pages = pages[:c.Limit]
	}

	for _, p := range pages {
		fmt.Fprintln(deps.Stdout, p)
	}
	return nil
}
