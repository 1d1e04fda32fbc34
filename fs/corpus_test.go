package fs_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/fwojciec/docq"
	"github.com/fwojciec/docq/fs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeCorpus lays out files under a temp root and returns the root.
func writeCorpus(t *testing.T, files map[string]string) string {
	t.Helper()

	root := t.TempDir()
	for rel, content := range files {
		path := filepath.Join(root, filepath.FromSlash(rel))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}
	return root
}

func TestCorpus_ListPages(t *testing.T) {
	t.Parallel()

	t.Run("lists markdown files recursively with slash paths", func(t *testing.T) {
		t.Parallel()

		root := writeCorpus(t, map[string]string{
			"Index.md":                "# Index",
			"Tutorials/Basics.md":     "# Basics",
			"Tutorials/notes.txt":     "not markdown",
			"Reference/Materials.md":  "# Materials",
			"Reference/deep/Extra.md": "# Extra",
		})

		pages, err := fs.NewCorpus(root).ListPages(context.Background())

		require.NoError(t, err)
		assert.Equal(t, []string{
			"Index.md",
			"Reference/deep/Extra.md",
			"Reference/Materials.md",
			"Tutorials/Basics.md",
		}, pages)
	})

	t.Run("sorts case-insensitively", func(t *testing.T) {
		t.Parallel()

		root := writeCorpus(t, map[string]string{
			"b.md": "",
			"A.md": "",
			"c.md": "",
		})

		pages, err := fs.NewCorpus(root).ListPages(context.Background())

		require.NoError(t, err)
		assert.Equal(t, []string{"A.md", "b.md", "c.md"}, pages)
	})

	t.Run("missing root is EINTERNAL", func(t *testing.T) {
		t.Parallel()

		_, err := fs.NewCorpus(filepath.Join(t.TempDir(), "nope")).ListPages(context.Background())

		require.Error(t, err)
		assert.Equal(t, docq.EINTERNAL, docq.ErrorCode(err))
	})
}

func TestCorpus_ReadPage(t *testing.T) {
	t.Parallel()

	t.Run("returns raw content", func(t *testing.T) {
		t.Parallel()

		root := writeCorpus(t, map[string]string{"Tutorials/Basics.md": "# Basics\n\nbody\n"})

		content, err := fs.NewCorpus(root).ReadPage(context.Background(), "Tutorials/Basics.md")

		require.NoError(t, err)
		assert.Equal(t, "# Basics\n\nbody\n", content)
	})

	t.Run("missing page is ENOTFOUND", func(t *testing.T) {
		t.Parallel()

		root := writeCorpus(t, nil)

		_, err := fs.NewCorpus(root).ReadPage(context.Background(), "Missing.md")

		require.Error(t, err)
		assert.Equal(t, docq.ENOTFOUND, docq.ErrorCode(err))
	})
}

func TestCorpus_ResolvePage(t *testing.T) {
	t.Parallel()

	t.Run("full relative path wins immediately", func(t *testing.T) {
		t.Parallel()

		root := writeCorpus(t, map[string]string{
			"Tutorials/Basics.md": "",
			"Reference/Basics.md": "",
		})

		rel, err := fs.NewCorpus(root).ResolvePage(context.Background(), "Tutorials/Basics.md")

		require.NoError(t, err)
		assert.Equal(t, "Tutorials/Basics.md", rel)
	})

	t.Run("bare file name resolves a unique match in any subdirectory", func(t *testing.T) {
		t.Parallel()

		root := writeCorpus(t, map[string]string{
			"Tutorials/Basics.md":    "",
			"Reference/Materials.md": "",
		})

		rel, err := fs.NewCorpus(root).ResolvePage(context.Background(), "Basics.md")

		require.NoError(t, err)
		assert.Equal(t, "Tutorials/Basics.md", rel)
	})

	t.Run("stem without extension resolves", func(t *testing.T) {
		t.Parallel()

		root := writeCorpus(t, map[string]string{"Tutorials/Basics.md": ""})

		rel, err := fs.NewCorpus(root).ResolvePage(context.Background(), "basics")

		require.NoError(t, err)
		assert.Equal(t, "Tutorials/Basics.md", rel)
	})

	t.Run("ambiguous bare name is EAMBIGUOUS listing all candidates", func(t *testing.T) {
		t.Parallel()

		root := writeCorpus(t, map[string]string{
			"Tutorials/Basics.md": "",
			"Reference/Basics.md": "",
		})

		_, err := fs.NewCorpus(root).ResolvePage(context.Background(), "Basics.md")

		require.Error(t, err)
		assert.Equal(t, docq.EAMBIGUOUS, docq.ErrorCode(err))
		assert.Contains(t, docq.ErrorMessage(err), "Tutorials/Basics.md")
		assert.Contains(t, docq.ErrorMessage(err), "Reference/Basics.md")
	})

	t.Run("no match is ENOTFOUND", func(t *testing.T) {
		t.Parallel()

		root := writeCorpus(t, map[string]string{"Tutorials/Basics.md": ""})

		_, err := fs.NewCorpus(root).ResolvePage(context.Background(), "Ghost.md")

		require.Error(t, err)
		assert.Equal(t, docq.ENOTFOUND, docq.ErrorCode(err))
	})

	t.Run("ambiguity is never resolved by guessing", func(t *testing.T) {
		t.Parallel()

		// Same stem under two names still refuses to pick one.
		root := writeCorpus(t, map[string]string{
			"a/Overview.md": "",
			"b/overview.md": "",
		})

		_, err := fs.NewCorpus(root).ResolvePage(context.Background(), "overview")

		require.Error(t, err)
		assert.Equal(t, docq.EAMBIGUOUS, docq.ErrorCode(err))
	})
}
