package runner_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/liuhaoxuan15/ftl-js-validator/pkg/jsparse"
	"github.com/liuhaoxuan15/ftl-js-validator/pkg/runner"
	"github.com/liuhaoxuan15/ftl-js-validator/pkg/validate"
)

// markerParser fails any snippet containing "BAD" at the marker offset.
type markerParser struct{}

func (markerParser) Parse(src string) *jsparse.Failure {
	if idx := strings.Index(src, "BAD"); idx >= 0 {
		return &jsparse.Failure{Offset: idx, Message: "Unexpected token BAD"}
	}
	return nil
}

func TestRun_AggregatesAcrossFiles(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFile(t, dir, "clean.ftl", "<script>let a = 1;</script>")
	writeFile(t, dir, "broken.ftl", "<script>BAD</script>")
	writeFile(t, dir, "empty.ftl", "<p>no scripts here</p>")

	r := runner.New(markerParser{})
	result, err := r.Run(context.Background(), runner.Options{WorkingDir: dir})
	require.NoError(t, err)

	assert.Equal(t, 3, result.Stats.FilesDiscovered)
	assert.Equal(t, 3, result.Stats.FilesProcessed)
	assert.Equal(t, 0, result.Stats.FilesErrored)
	assert.Equal(t, 1, result.Stats.FilesWithFindings)
	assert.Equal(t, 1, result.Stats.FindingsTotal)
	assert.True(t, result.HasFindings())
}

func TestRun_DeterministicOrder(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	names := []string{"a.ftl", "b.ftl", "c.ftl", "d.ftl", "e.ftl"}
	for _, name := range names {
		writeFile(t, dir, name, "<script>BAD</script>")
	}

	r := runner.New(markerParser{})

	var first []string
	for run := range 3 {
		result, err := r.Run(context.Background(), runner.Options{WorkingDir: dir, Jobs: 4})
		require.NoError(t, err)
		require.Len(t, result.Files, len(names))

		order := make([]string, 0, len(result.Files))
		for _, outcome := range result.Files {
			order = append(order, outcome.Path)
		}
		if run == 0 {
			first = order
		} else {
			assert.Equal(t, first, order)
		}
	}
}

func TestRun_FileOutcomeFields(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	content := "<script>let x = 1;</script><script>BAD</script>"
	path := writeFile(t, dir, "page.ftl", content)

	r := runner.New(markerParser{})
	result, err := r.Run(context.Background(), runner.Options{WorkingDir: dir})
	require.NoError(t, err)

	require.Len(t, result.Files, 1)
	outcome := result.Files[0]

	assert.Equal(t, path, outcome.Path)
	assert.Equal(t, len(content), outcome.Length)
	assert.Equal(t, 2, outcome.Blocks)
	require.Len(t, outcome.Findings, 1)
	assert.Equal(t, validate.SourceTag, outcome.Findings[0].Source)
	assert.NoError(t, outcome.Error)
}

func TestRun_EmptyDirectory(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	r := runner.New(markerParser{})
	result, err := r.Run(context.Background(), runner.Options{WorkingDir: dir})
	require.NoError(t, err)

	assert.Equal(t, 0, result.Stats.FilesDiscovered)
	assert.Empty(t, result.Files)
	assert.False(t, result.HasFindings())
}

func TestRun_TraceCollectedInFileOrder(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFile(t, dir, "a.ftl", "<script>let a = 1;</script>")
	writeFile(t, dir, "b.ftl", "<script>BAD</script>")

	sink := &validate.BufferSink{}
	r := runner.New(markerParser{})
	r.Trace = sink

	_, err := r.Run(context.Background(), runner.Options{WorkingDir: dir, Jobs: 2})
	require.NoError(t, err)

	joined := strings.Join(sink.Lines, "\n")
	aIdx := strings.Index(joined, "a.ftl")
	bIdx := strings.Index(joined, "b.ftl")
	require.GreaterOrEqual(t, aIdx, 0)
	require.GreaterOrEqual(t, bIdx, 0)
	assert.Less(t, aIdx, bIdx)
	assert.Contains(t, joined, "block 1: passed")
	assert.Contains(t, joined, "block 1: failed")
}

func TestRun_CancelledContext(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFile(t, dir, "a.ftl", "<script>let a = 1;</script>")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	r := runner.New(markerParser{})
	_, err := r.Run(ctx, runner.Options{WorkingDir: dir})
	assert.Error(t, err)
}
