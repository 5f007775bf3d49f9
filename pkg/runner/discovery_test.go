package runner_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/liuhaoxuan15/ftl-js-validator/pkg/runner"
)

// writeFile creates a file with parent directories under dir.
func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDiscover_DefaultsToTemplateExtensions(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFile(t, dir, "index.ftl", "<p>hi</p>")
	writeFile(t, dir, "mail.ftlh", "<p>hi</p>")
	writeFile(t, dir, "feed.ftlx", "<p>hi</p>")
	writeFile(t, dir, "readme.md", "# nope")
	writeFile(t, dir, "page.html", "<p>nope</p>")

	files, err := runner.Discover(context.Background(), runner.Options{WorkingDir: dir})
	require.NoError(t, err)

	require.Len(t, files, 3)
	assert.Equal(t, "feed.ftlx", filepath.Base(files[0]))
	assert.Equal(t, "index.ftl", filepath.Base(files[1]))
	assert.Equal(t, "mail.ftlh", filepath.Base(files[2]))
}

func TestDiscover_RecursesAndSkipsHidden(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFile(t, dir, "a.ftl", "")
	writeFile(t, dir, "views/b.ftl", "")
	writeFile(t, dir, "views/deep/c.ftl", "")
	writeFile(t, dir, ".cache/d.ftl", "")
	writeFile(t, dir, ".hidden.ftl", "")

	files, err := runner.Discover(context.Background(), runner.Options{WorkingDir: dir})
	require.NoError(t, err)

	require.Len(t, files, 3)
	for _, f := range files {
		assert.NotContains(t, f, ".cache")
		assert.NotEqual(t, ".hidden.ftl", filepath.Base(f))
	}
}

func TestDiscover_ExcludeGlobs(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFile(t, dir, "keep.ftl", "")
	writeFile(t, dir, "vendor/skip.ftl", "")
	writeFile(t, dir, "views/generated/skip.ftl", "")

	files, err := runner.Discover(context.Background(), runner.Options{
		WorkingDir:   dir,
		ExcludeGlobs: []string{"vendor/**", "**/generated"},
	})
	require.NoError(t, err)

	require.Len(t, files, 1)
	assert.Equal(t, "keep.ftl", filepath.Base(files[0]))
}

func TestDiscover_ExplicitFilePath(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := writeFile(t, dir, "only.ftl", "")
	writeFile(t, dir, "other.ftl", "")

	files, err := runner.Discover(context.Background(), runner.Options{
		WorkingDir: dir,
		Paths:      []string{"only.ftl"},
	})
	require.NoError(t, err)

	require.Len(t, files, 1)
	assert.Equal(t, path, files[0])
}

func TestDiscover_DeduplicatesOverlappingPaths(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFile(t, dir, "views/page.ftl", "")

	files, err := runner.Discover(context.Background(), runner.Options{
		WorkingDir: dir,
		Paths:      []string{".", "views", "views/page.ftl"},
	})
	require.NoError(t, err)

	assert.Len(t, files, 1)
}

func TestDiscover_MissingPathErrors(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	_, err := runner.Discover(context.Background(), runner.Options{
		WorkingDir: dir,
		Paths:      []string{"no-such-file.ftl"},
	})
	assert.Error(t, err)
}

func TestDiscover_CustomExtensions(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFile(t, dir, "page.tpl", "")
	writeFile(t, dir, "page.ftl", "")

	files, err := runner.Discover(context.Background(), runner.Options{
		WorkingDir: dir,
		Extensions: []string{".tpl"},
	})
	require.NoError(t, err)

	require.Len(t, files, 1)
	assert.Equal(t, "page.tpl", filepath.Base(files[0]))
}
