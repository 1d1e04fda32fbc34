package main

import (
	"context"
	"fmt"
	"io"

	"github.com/fwojciec/docq"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer
	Corpus docq.Corpus
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Root    string `help:"Docs root directory." env:"DOCQ_DOCS_ROOT" default:"doc/docs"`
	Verbose bool   `short:"v" help:"Log corpus access to stderr."`

	List     ListCmd     `cmd:"" help:"List markdown pages."`
	Search   SearchCmd   `cmd:"" help:"Search page contents for a substring."`
	Toc      TocCmd      `cmd:"" help:"Show the heading hierarchy of one page."`
	Section  SectionCmd  `cmd:"" help:"Print one section by heading title."`
	Examples ExamplesCmd `cmd:"" help:"List sections that contain code listings."`
	Snippets SnippetsCmd `cmd:"" help:"List code snippets in one page, optionally filtered by section title or language."`
	Snippet  SnippetCmd  `cmd:"" help:"Print one code snippet by 1-based index from the filtered list."`
	Compose  ComposeCmd  `cmd:"" help:"Concatenate all filtered snippets in order into one composite script."`
}

// ListCmd is the "list" subcommand.
type ListCmd struct {
	Limit int `help:"Show only the first N pages."`
}

// SearchCmd is the "search" subcommand.
type SearchCmd struct {
	Query         string `arg:"" help:"Substring to search for."`
	CaseSensitive bool   `help:"Match case-sensitively."`
	MaxResults    int    `help:"Stop after printing this many matches."`
}

// TocCmd is the "toc" subcommand.
type TocCmd struct {
	Page string `arg:"" help:"Page path or bare file name."`
	Max  int    `help:"Show only the first N headings."`
}

// SectionCmd is the "section" subcommand.
type SectionCmd struct {
	Page     string `arg:"" help:"Page path or bare file name."`
	Title    string `arg:"" help:"Section heading title (exact or substring)."`
	MaxLines int    `help:"Show only the first N lines of the section."`
}

// ExamplesCmd is the "examples" subcommand.
type ExamplesCmd struct {
	MaxResults int `help:"Stop after printing this many rows."`
}

// SnippetsCmd is the "snippets" subcommand.
type SnippetsCmd struct {
	Page       string `arg:"" help:"Page path or bare file name."`
	Title      string `help:"Restrict to one section by heading title."`
	Lang       string `help:"Filter by language tag (e.g. py, python, sh, bash)."`
	MaxResults int    `help:"Stop after printing this many snippets."`
}

// SnippetCmd is the "snippet" subcommand.
type SnippetCmd struct {
	Page     string `arg:"" help:"Page path or bare file name."`
	Index    int    `arg:"" optional:"" default:"1" help:"1-based snippet index after filters."`
	Pick     string `enum:",first,longest" default:"" help:"Auto-select a snippet by strategy (ignores index)."`
	Title    string `help:"Restrict to one section by heading title."`
	Lang     string `help:"Filter by language tag (e.g. py, python, sh, bash)."`
	NoFence  bool   `help:"Print the snippet body without markdown fences."`
	MaxLines int    `help:"Show only the first N lines of the snippet body."`
}

// ComposeCmd is the "compose" subcommand.
type ComposeCmd struct {
	Page      string `arg:"" help:"Page path or bare file name."`
	Title     string `help:"Restrict to one section by heading title."`
	Lang      string `help:"Filter by language tag (e.g. py, python, sh, bash)."`
	NoFence   bool   `help:"Print the composed body without markdown fences."`
	MaxLines  int    `help:"Show only the first N lines of the composed script."`
	MaxBlocks int    `help:"Use only the first N filtered code blocks."`
}

// loadPage resolves a page argument, reads it, and parses it.
func loadPage(deps *Dependencies, page string) (*docq.Document, error) {
	rel, err := deps.Corpus.ResolvePage(deps.Ctx, page)
	if err != nil {
		return nil, err
	}
	content, err := deps.Corpus.ReadPage(deps.Ctx, rel)
	if err != nil {
		return nil, err
	}
	return docq.ParseDocument(rel, content), nil
}

// fail reports a command failure on stderr and returns the error unchanged
// so main exits non-zero. Only this layer formats failures for the caller.
func fail(deps *Dependencies, err error) error {
	fmt.Fprintf(deps.Stderr, "error: %s\n", docq.ErrorMessage(err))
	return err
}
