package mock

import (
	"context"

	"github.com/fwojciec/docq"
)

var _ docq.Corpus = (*Corpus)(nil)

// Corpus is a mock implementation of docq.Corpus.
type Corpus struct {
	ListPagesFn   func(ctx context.Context) ([]string, error)
	ReadPageFn    func(ctx context.Context, relPath string) (string, error)
	ResolvePageFn func(ctx context.Context, page string) (string, error)
}

func (c *Corpus) ListPages(ctx context.Context) ([]string, error) {
	return c.ListPagesFn(ctx)
}

func (c *Corpus) ReadPage(ctx context.Context, relPath string) (string, error) {
	return c.ReadPageFn(ctx, relPath)
}

func (c *Corpus) ResolvePage(ctx context.Context, page string) (string, error) {
	return c.ResolvePageFn(ctx, page)
}
