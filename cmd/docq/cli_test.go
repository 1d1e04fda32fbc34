package main_test

import (
	"bytes"
	"context"
	"path"
	"strings"

	"github.com/fwojciec/docq"
	main "github.com/fwojciec/docq/cmd/docq"
	"github.com/fwojciec/docq/mock"
)

// testDeps returns Dependencies wired to buffers and the given corpus.
func testDeps(corpus docq.Corpus) (*main.Dependencies, *bytes.Buffer, *bytes.Buffer) {
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	return &main.Dependencies{
		Ctx:    context.Background(),
		Stdout: stdout,
		Stderr: stderr,
		Corpus: corpus,
	}, stdout, stderr
}

// testCorpus builds a mock corpus over fixed pages. order fixes the page
// listing; resolution accepts exact relative paths and unique base names.
func testCorpus(order []string, pages map[string]string) *mock.Corpus {
	return &mock.Corpus{
		ListPagesFn: func(_ context.Context) ([]string, error) {
			return order, nil
		},
		ReadPageFn: func(_ context.Context, rel string) (string, error) {
			content, ok := pages[rel]
			if !ok {
				return "", docq.Errorf(docq.ENOTFOUND, "page not found: %s", rel)
			}
			return content, nil
		},
		ResolvePageFn: func(_ context.Context, page string) (string, error) {
			if _, ok := pages[page]; ok {
				return page, nil
			}
			var matches []string
			for _, rel := range order {
				if path.Base(rel) == page {
					matches = append(matches, rel)
				}
			}
			switch len(matches) {
			case 1:
				return matches[0], nil
			case 0:
				return "", docq.Errorf(docq.ENOTFOUND, "page not found: %s", page)
			}
			return "", docq.Errorf(docq.EAMBIGUOUS,
				"ambiguous page %q. Use full relative path. Matches: %s",
				page, strings.Join(matches, ", "))
		},
	}
}

const tutorialPage = `# Tutorial

## A Straight Waveguide

First build the cell.

` + "```py" + `
import meep as mp
cell = mp.Vector3(16, 8, 0)
` + "```" + `

## A 90-degree Bend

` + "```py" + `
geometry = [mp.Block()]
` + "```" + `

` + "```sh" + `
python bend.py
` + "```" + `
`
