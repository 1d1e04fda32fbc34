package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/docq"
	"github.com/fwojciec/docq/fs"
	docqslog "github.com/fwojciec/docq/slog"
	"github.com/joho/godotenv"
)

func main() {
	// Optional .env for DOCQ_DOCS_ROOT; absence is not an error.
	_ = godotenv.Load()

	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Docs root directory. Overrides the --root flag when set; used by
	// end-to-end tests.
	DocsRoot string
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("docq"),
		kong.Description("Query a local tree of markdown API documentation."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle help flags using Kong
	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'docq --help' to see available commands")
	}
	if cmd := args[0]; cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	root := cli.Root
	if m.DocsRoot != "" {
		root = m.DocsRoot
	}
	if info, err := os.Stat(root); err != nil || !info.IsDir() {
		fmt.Fprintln(stderr, "Hint: Set DOCQ_DOCS_ROOT or pass --root to point at your docs directory")
		return docq.Errorf(docq.EINVALID, "docs root does not exist: %s", root)
	}

	var corpus docq.Corpus = fs.NewCorpus(root)
	if cli.Verbose {
		logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
		corpus = docqslog.NewLoggingCorpus(corpus, logger)
	}
	deps.Corpus = corpus

	return kongCtx.Run(deps)
}
