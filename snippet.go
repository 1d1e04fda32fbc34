package docq

import "strings"

// Snippet pick strategies for selecting one block without an ordinal.
const (
	PickFirst   = "first"
	PickLongest = "longest"
)

// NormalizeLang canonicalizes a fence language tag so common aliases
// compare equal: py and python3 fold to python; bash, sh, and zsh fold to
// shell. Everything else is lower-cased unchanged.
func NormalizeLang(lang string) string {
	base := strings.ToLower(strings.TrimSpace(lang))
	switch base {
	case "py", "python3":
		return "python"
	case "bash", "sh", "zsh":
		return "shell"
	}
	return base
}

// LangMatches reports whether a block's tag satisfies the requested
// language. An empty request matches every block.
func LangMatches(blockLang, queryLang string) bool {
	q := NormalizeLang(queryLang)
	if q == "" {
		return true
	}
	return NormalizeLang(blockLang) == q
}

// SelectCodeBlocks returns the page's code blocks inside the section named
// by titleQuery, or across the whole page when titleQuery is empty, keeping
// only blocks whose language tag matches lang. Source order is preserved;
// filtering never reorders.
//
// A missing section is ENOTFOUND. A valid section with zero matching blocks
// is not an error: it returns an empty slice so callers can tell "no such
// section" from "section exists but has no code".
func SelectCodeBlocks(doc *Document, titleQuery, lang string) ([]CodeBlock, error) {
	start, end := 0, len(doc.Lines)
	if titleQuery != "" {
		h, err := FindHeading(doc.Headings, titleQuery)
		if err != nil {
			return nil, Errorf(ENOTFOUND, "section not found: %q in %s", titleQuery, doc.Path)
		}
		start, end = SectionBounds(doc, h)
	}

	var selected []CodeBlock
	for _, b := range doc.CodeBlocks {
		if b.StartLine < start || b.StartLine >= end {
			continue
		}
		if !LangMatches(b.Lang, lang) {
			continue
		}
		selected = append(selected, b)
	}
	return selected, nil
}

// BlockBody returns the literal lines between a block's fences. No dedent,
// no trimming: the caller sees exactly what the documentation contains.
func BlockBody(doc *Document, b CodeBlock) []string {
	start := b.StartLine + 1
	end := b.EndLine
	if b.Closed {
		end = b.EndLine - 1
	}
	if end < start {
		end = start
	}
	return doc.Lines[start:end]
}

// BlockAt returns the block at a 1-based ordinal within the filtered list.
// Ordinals outside 1..len(blocks) are EINVALID with the available range.
func BlockAt(blocks []CodeBlock, ordinal int) (CodeBlock, error) {
	if ordinal < 1 || ordinal > len(blocks) {
		return CodeBlock{}, Errorf(EINVALID, "snippet index out of range: %d (available: 1..%d)", ordinal, len(blocks))
	}
	return blocks[ordinal-1], nil
}

// PickBlock selects one block by strategy: PickFirst takes the first block,
// PickLongest the one with the most body lines (earlier block wins ties).
func PickBlock(doc *Document, blocks []CodeBlock, strategy string) (CodeBlock, error) {
	if len(blocks) == 0 {
		return CodeBlock{}, Errorf(EEMPTY, "no code blocks to pick from")
	}
	switch strategy {
	case PickFirst:
		return blocks[0], nil
	case PickLongest:
		best := blocks[0]
		for _, b := range blocks[1:] {
			if len(BlockBody(doc, b)) > len(BlockBody(doc, best)) {
				best = b
			}
		}
		return best, nil
	}
	return CodeBlock{}, Errorf(EINVALID, "unknown pick mode: %q", strategy)
}

// ComposeScript joins the blocks' literal bodies in source order, separated
// by a single blank line. Composition is concatenation, not semantic
// merging: no import dedup, no reindentation. Zero blocks compose to the
// empty string.
func ComposeScript(doc *Document, blocks []CodeBlock) string {
	var combined []string
	for _, b := range blocks {
		body := BlockBody(doc, b)
		if len(body) == 0 {
			continue
		}
		if len(combined) > 0 {
			combined = append(combined, "")
		}
		combined = append(combined, body...)
	}
	return strings.Join(combined, "\n")
}
