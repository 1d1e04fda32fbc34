package docq

import (
	"context"
	"strings"
)

// SearchHit is one matching line from a corpus search. Hits are transient
// query output, never persisted.
type SearchHit struct {
	Path string `json:"path"`
	Line int    `json:"line"` // 1-based
	Text string `json:"text"`
}

// SearchOptions control corpus search behavior.
type SearchOptions struct {
	CaseSensitive bool
	MaxResults    int // 0 = unlimited
}

// Search scans every page's lines for query as a substring. Hits are
// ordered by (path, line) ascending, following the corpus's deterministic
// page order. The corpus is small and re-scanned on every call; no inverted
// index is built.
func Search(ctx context.Context, corpus Corpus, query string, opts SearchOptions) ([]SearchHit, error) {
	if query == "" {
		return nil, Errorf(EINVALID, "search query required")
	}

	pages, err := corpus.ListPages(ctx)
	if err != nil {
		return nil, err
	}

	needle := query
	if !opts.CaseSensitive {
		needle = strings.ToLower(query)
	}

	var hits []SearchHit
	for _, page := range pages {
		content, err := corpus.ReadPage(ctx, page)
		if err != nil {
			return nil, err
		}
		for i, line := range splitLines(content) {
			haystack := line
			if !opts.CaseSensitive {
				haystack = strings.ToLower(line)
			}
			if strings.Contains(haystack, needle) {
				hits = append(hits, SearchHit{Path: page, Line: i + 1, Text: line})
				if opts.MaxResults > 0 && len(hits) >= opts.MaxResults {
					return hits, nil
				}
			}
		}
	}
	return hits, nil
}
