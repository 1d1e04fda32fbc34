package docq

import (
	"regexp"
	"strings"
)

var (
	// ATX headings: 1-6 marker characters, whitespace, title text.
	// Optional closing markers ("## Title ##") are dropped from the title.
	headingRe = regexp.MustCompile(`^(#{1,6})\s+(.*?)\s*#*\s*$`)

	// Setext underlines: a line of = (level 1) or - (level 2).
	setextRe = regexp.MustCompile(`^(=+|-+)\s*$`)

	// Fence openers: three or more backticks or tildes, optionally
	// followed by a language tag.
	fenceRe = regexp.MustCompile("^\\s*(`{3,}|~{3,})\\s*([A-Za-z0-9_+.-]*).*$")

	leadingMarkersRe  = regexp.MustCompile(`^#+\s*`)
	trailingMarkersRe = regexp.MustCompile(`\s*#+\s*$`)
	innerSpaceRe      = regexp.MustCompile(`\s+`)
)

// ParseDocument scans a page's text line by line, collecting headings and
// fenced code blocks in document order. The scan tracks one piece of state:
// whether it is inside an open fence. Lines inside a fence are never
// headings; a fence closes at the next line whose leading text repeats the
// opening fence character at least as many times. An unclosed fence runs to
// end of file.
func ParseDocument(path, content string) *Document {
	doc := &Document{Path: path, Lines: splitLines(content)}

	inFence := false
	var fenceChar byte
	fenceLen := 0
	fenceStart := 0
	fenceLang := ""

	for i := 0; i < len(doc.Lines); i++ {
		line := doc.Lines[i]

		if inFence {
			stripped := strings.TrimLeft(line, " \t")
			if strings.HasPrefix(stripped, strings.Repeat(string(fenceChar), fenceLen)) {
				doc.CodeBlocks = append(doc.CodeBlocks, CodeBlock{
					StartLine: fenceStart,
					EndLine:   i + 1,
					Lang:      fenceLang,
					Closed:    true,
				})
				inFence = false
			}
			continue
		}

		if m := fenceRe.FindStringSubmatch(line); m != nil {
			fenceChar = m[1][0]
			fenceLen = len(m[1])
			fenceStart = i
			fenceLang = strings.ToLower(strings.TrimSpace(m[2]))
			inFence = true
			continue
		}

		if m := headingRe.FindStringSubmatch(line); m != nil {
			if title := NormalizeHeading(m[2]); title != "" {
				doc.Headings = append(doc.Headings, Heading{
					Line:      i,
					Level:     len(m[1]),
					Title:     title,
					SpanLines: 1,
				})
			}
			continue
		}

		if i+1 < len(doc.Lines) && strings.TrimSpace(line) != "" && setextRe.MatchString(doc.Lines[i+1]) {
			level := 2
			if strings.HasPrefix(strings.TrimSpace(doc.Lines[i+1]), "=") {
				level = 1
			}
			if title := NormalizeHeading(line); title != "" {
				doc.Headings = append(doc.Headings, Heading{
					Line:      i,
					Level:     level,
					Title:     title,
					SpanLines: 2,
				})
			}
			i++ // skip the underline
		}
	}

	if inFence {
		doc.CodeBlocks = append(doc.CodeBlocks, CodeBlock{
			StartLine: fenceStart,
			EndLine:   len(doc.Lines),
			Lang:      fenceLang,
			Closed:    false,
		})
	}

	return doc
}

// NormalizeHeading strips heading markers and collapses runs of whitespace
// so that user-supplied titles and parsed titles compare consistently.
func NormalizeHeading(text string) string {
	text = strings.TrimSpace(text)
	text = leadingMarkersRe.ReplaceAllString(text, "")
	text = trailingMarkersRe.ReplaceAllString(text, "")
	return strings.TrimSpace(innerSpaceRe.ReplaceAllString(text, " "))
}

// FindHeading returns the first heading, in document order, whose title
// contains titleQuery as a case-insensitive substring. The first match wins
// deterministically; callers disambiguate by supplying a longer query.
// Returns ENOTFOUND when no heading matches.
func FindHeading(headings []Heading, titleQuery string) (Heading, error) {
	q := strings.ToLower(NormalizeHeading(titleQuery))
	for _, h := range headings {
		if strings.Contains(strings.ToLower(h.Title), q) {
			return h, nil
		}
	}
	return Heading{}, Errorf(ENOTFOUND, "section not found: %q", titleQuery)
}

// SectionBounds returns the half-open [start, end) line range owned by a
// heading: from the heading's first line to the next heading at the same or
// a higher level, or end of document when no such heading follows.
func SectionBounds(doc *Document, h Heading) (start, end int) {
	start = h.Line
	end = len(doc.Lines)
	for _, next := range doc.Headings {
		if next.Line <= h.Line {
			continue
		}
		if next.Level <= h.Level {
			end = next.Line
			break
		}
	}
	return start, end
}

// TOC returns the page's headings in document order, truncated to
// maxEntries when maxEntries > 0.
func TOC(doc *Document, maxEntries int) []Heading {
	headings := doc.Headings
	if maxEntries > 0 && len(headings) > maxEntries {
		headings = headings[:maxEntries]
	}
	return headings
}

// HeadingPath returns the breadcrumb of headings enclosing a line, joined
// with " > ". Returns "" when the line precedes every heading.
func HeadingPath(headings []Heading, line int) string {
	var stack []Heading
	for _, h := range headings {
		if h.Line > line {
			break
		}
		for len(stack) > 0 && stack[len(stack)-1].Level >= h.Level {
			stack = stack[:len(stack)-1]
		}
		stack = append(stack, h)
	}
	if len(stack) == 0 {
		return ""
	}
	titles := make([]string, len(stack))
	for i, h := range stack {
		titles[i] = h.Title
	}
	return strings.Join(titles, " > ")
}

// splitLines splits content the way terminal output is line-oriented: both
// LF and CRLF endings are accepted, and a trailing newline does not produce
// a phantom empty line.
func splitLines(content string) []string {
	if content == "" {
		return nil
	}
	lines := strings.Split(content, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}
