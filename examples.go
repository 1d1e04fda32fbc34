package docq

import "context"

// NoHeading labels code blocks that precede every heading in their page.
const NoHeading = "(no heading)"

// ExampleSection reports one section that contains code listings.
type ExampleSection struct {
	Path    string `json:"path"`
	Section string `json:"section"` // breadcrumb heading path
	Count   int    `json:"count"`   // fenced blocks within the section
}

// ExampleSections scans every page and reports, in page order, each section
// that contains at least one fenced code block along with its block count.
// Sections are identified by their breadcrumb heading path and appear in
// the order their first block occurs. maxResults > 0 caps the listing.
func ExampleSections(ctx context.Context, corpus Corpus, maxResults int) ([]ExampleSection, error) {
	pages, err := corpus.ListPages(ctx)
	if err != nil {
		return nil, err
	}

	var out []ExampleSection
	for _, page := range pages {
		content, err := corpus.ReadPage(ctx, page)
		if err != nil {
			return nil, err
		}
		doc := ParseDocument(page, content)
		if len(doc.CodeBlocks) == 0 {
			continue
		}

		var order []string
		counts := make(map[string]int)
		for _, b := range doc.CodeBlocks {
			section := HeadingPath(doc.Headings, b.StartLine)
			if section == "" {
				section = NoHeading
			}
			if _, seen := counts[section]; !seen {
				order = append(order, section)
			}
			counts[section]++
		}

		for _, section := range order {
			out = append(out, ExampleSection{Path: page, Section: section, Count: counts[section]})
			if maxResults > 0 && len(out) >= maxResults {
				return out, nil
			}
		}
	}
	return out, nil
}
