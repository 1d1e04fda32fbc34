package docq

import "context"

// Heading is a titled section marker within a page. Headings keep their
// natural top-to-bottom file order; they are never sorted by level.
type Heading struct {
	Line      int    `json:"line"`      // 0-based index of the heading's first line
	Level     int    `json:"level"`     // 1 = top level
	Title     string `json:"title"`     // normalized title text
	SpanLines int    `json:"spanLines"` // 1 for ATX headings, 2 for setext headings
}

// CodeBlock is one fenced code listing within a page. The body is the
// literal text between the fences, kept unmodified.
type CodeBlock struct {
	StartLine int    `json:"startLine"` // index of the opening fence line
	EndLine   int    `json:"endLine"`   // index just past the closing fence line
	Lang      string `json:"lang"`      // lower-cased language tag, "" when untagged
	Closed    bool   `json:"closed"`    // false when the fence runs to end of file
}

// Document is a single parsed markdown page. It is derived fresh from the
// file system on every query and never mutated.
type Document struct {
	Path       string
	Lines      []string
	Headings   []Heading
	CodeBlocks []CodeBlock
}

// Corpus enumerates and reads markdown pages under a documentation root.
// Implementations re-read the file system on every call; there is no cache
// or persistent index to go stale.
type Corpus interface {
	// ListPages returns the relative slash paths of every markdown page,
	// sorted case-insensitively for deterministic output.
	ListPages(ctx context.Context) ([]string, error)

	// ReadPage returns the raw UTF-8 content of one page by relative path.
	// Returns ENOTFOUND if the page does not exist.
	ReadPage(ctx context.Context, relPath string) (string, error)

	// ResolvePage maps a page argument (full relative path or bare file
	// name) to a unique relative path. Returns ENOTFOUND when nothing
	// matches and EAMBIGUOUS, listing the candidates, when more than one
	// page matches.
	ResolvePage(ctx context.Context, page string) (string, error)
}
