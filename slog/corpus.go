package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/docq"
)

// Ensure LoggingCorpus implements docq.Corpus.
var _ docq.Corpus = (*LoggingCorpus)(nil)

// LoggingCorpus wraps a Corpus with debug logging for each file-system
// access. The CLI wires it in when run with --verbose.
type LoggingCorpus struct {
	next   docq.Corpus
	logger *slog.Logger
}

// NewLoggingCorpus creates a new LoggingCorpus.
func NewLoggingCorpus(next docq.Corpus, logger *slog.Logger) *LoggingCorpus {
	return &LoggingCorpus{next: next, logger: logger}
}

// ListPages delegates to the wrapped corpus and logs the page count.
func (c *LoggingCorpus) ListPages(ctx context.Context) ([]string, error) {
	begin := time.Now()
	pages, err := c.next.ListPages(ctx)
	c.logger.Debug("list pages",
		"count", len(pages),
		"duration", time.Since(begin),
		"error", err,
	)
	return pages, err
}

// ReadPage delegates to the wrapped corpus and logs the bytes read.
func (c *LoggingCorpus) ReadPage(ctx context.Context, relPath string) (string, error) {
	begin := time.Now()
	content, err := c.next.ReadPage(ctx, relPath)
	c.logger.Debug("read page",
		"page", relPath,
		"bytes", len(content),
		"duration", time.Since(begin),
		"error", err,
	)
	return content, err
}

// ResolvePage delegates to the wrapped corpus and logs the resolution.
func (c *LoggingCorpus) ResolvePage(ctx context.Context, page string) (string, error) {
	resolved, err := c.next.ResolvePage(ctx, page)
	c.logger.Debug("resolve page",
		"page", page,
		"resolved", resolved,
		"error", err,
	)
	return resolved, err
}
