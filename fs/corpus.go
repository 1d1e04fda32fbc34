package fs

import (
	"context"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"github.com/fwojciec/docq"
)

// Ensure Corpus implements docq.Corpus at compile time.
var _ docq.Corpus = (*Corpus)(nil)

// Corpus reads markdown pages from a directory tree on the local file
// system. Every call re-reads the file system; nothing is cached between
// queries, so concurrent invocations have nothing to contend over.
type Corpus struct {
	root string
}

// NewCorpus creates a Corpus rooted at the given directory.
func NewCorpus(root string) *Corpus {
	return &Corpus{root: root}
}

// ListPages returns the relative slash paths of every .md file under the
// root, sorted case-insensitively (byte order breaks ties) so output is
// deterministic across platforms.
func (c *Corpus) ListPages(ctx context.Context) ([]string, error) {
	var pages []string
	err := filepath.WalkDir(c.root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.EqualFold(filepath.Ext(p), ".md") {
			return nil
		}
		rel, err := filepath.Rel(c.root, p)
		if err != nil {
			return err
		}
		pages = append(pages, filepath.ToSlash(rel))
		return nil
	})
	if err != nil {
		return nil, docq.Errorf(docq.EINTERNAL, "walking docs root %s: %v", c.root, err)
	}

	sort.Slice(pages, func(i, j int) bool {
		a, b := strings.ToLower(pages[i]), strings.ToLower(pages[j])
		if a != b {
			return a < b
		}
		return pages[i] < pages[j]
	})
	return pages, nil
}

// ReadPage returns the raw UTF-8 content of one page by relative path.
func (c *Corpus) ReadPage(ctx context.Context, relPath string) (string, error) {
	data, err := os.ReadFile(filepath.Join(c.root, filepath.FromSlash(relPath)))
	if err != nil {
		if os.IsNotExist(err) {
			return "", docq.Errorf(docq.ENOTFOUND, "page not found: %s", relPath)
		}
		return "", docq.Errorf(docq.EINTERNAL, "reading page %s: %v", relPath, err)
	}
	return string(data), nil
}

// ResolvePage maps a page argument to a unique relative path. An existing
// relative path wins immediately; otherwise every page matching by relative
// path, file name, or stem (case-insensitive, with or without the .md
// suffix) is a candidate. Exactly one candidate resolves; zero is
// ENOTFOUND; more than one is EAMBIGUOUS with the candidate paths listed so
// the caller can retry with a full relative path. An ambiguous reference is
// never resolved by guessing.
func (c *Corpus) ResolvePage(ctx context.Context, page string) (string, error) {
	cleaned := path.Clean(filepath.ToSlash(page))
	direct := filepath.Join(c.root, filepath.FromSlash(cleaned))
	if info, err := os.Stat(direct); err == nil && !info.IsDir() {
		return cleaned, nil
	}

	pages, err := c.ListPages(ctx)
	if err != nil {
		return "", err
	}

	name := path.Base(cleaned)
	stem := strings.TrimSuffix(name, path.Ext(name))
	nameMD := name
	if !strings.EqualFold(path.Ext(name), ".md") {
		nameMD = name + ".md"
	}

	var candidates []string
	for _, rel := range pages {
		base := path.Base(rel)
		switch {
		case strings.EqualFold(rel, cleaned), strings.EqualFold(rel, nameMD):
			candidates = append(candidates, rel)
		case strings.EqualFold(base, name), strings.EqualFold(base, nameMD):
			candidates = append(candidates, rel)
		case strings.EqualFold(strings.TrimSuffix(base, path.Ext(base)), stem):
			candidates = append(candidates, rel)
		}
	}

	switch len(candidates) {
	case 1:
		return candidates[0], nil
	case 0:
		return "", docq.Errorf(docq.ENOTFOUND, "page not found: %s", page)
	}

	shown := candidates
	tail := ""
	if len(shown) > 8 {
		shown = shown[:8]
		tail = " ..."
	}
	return "", docq.Errorf(docq.EAMBIGUOUS,
		"ambiguous page %q. Use full relative path. Matches: %s%s",
		page, strings.Join(shown, ", "), tail)
}
