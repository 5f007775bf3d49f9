package extract_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/liuhaoxuan15/ftl-js-validator/pkg/extract"
)

func TestScriptBlocks_Single(t *testing.T) {
	t.Parallel()

	text := "<script>\nlet x = ;\n</script>"
	blocks := extract.ScriptBlocks(text)

	require.Len(t, blocks, 1)
	assert.Equal(t, "let x = ;", blocks[0].Content)
	assert.Equal(t, strings.Index(text, "let"), blocks[0].Offset)
}

func TestScriptBlocks_Multiple(t *testing.T) {
	t.Parallel()

	text := "<html>\n<script>let a = 1;</script>\n<p>hi</p>\n<script>\n  let b = 2;\n</script>\n</html>"
	blocks := extract.ScriptBlocks(text)

	require.Len(t, blocks, 2)
	assert.Equal(t, "let a = 1;", blocks[0].Content)
	assert.Equal(t, strings.Index(text, "let a"), blocks[0].Offset)
	assert.Equal(t, "let b = 2;", blocks[1].Content)
	assert.Equal(t, strings.Index(text, "let b"), blocks[1].Offset)
	assert.Less(t, blocks[0].Offset, blocks[1].Offset)
}

func TestScriptBlocks_TagAttributes(t *testing.T) {
	t.Parallel()

	text := `<script type="text/javascript">let z=1;</script>`
	blocks := extract.ScriptBlocks(text)

	require.Len(t, blocks, 1)
	assert.Equal(t, "let z=1;", blocks[0].Content)
	assert.Equal(t, strings.Index(text, "let z"), blocks[0].Offset)
}

func TestScriptBlocks_SkipsEmptyAndWhitespace(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		text string
	}{
		{"no blocks", "<p>plain template</p>"},
		{"empty body", "<script></script>"},
		{"whitespace body", "<script>\n\t \n</script>"},
		{"unterminated opening tag", "<script>\nlet x = 1;"},
		{"case sensitive markers", "<SCRIPT>let x = 1;</SCRIPT>"},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			assert.Empty(t, extract.ScriptBlocks(testCase.text))
		})
	}
}

func TestScriptBlocks_MixedEmptyAndReal(t *testing.T) {
	t.Parallel()

	text := "<script> </script><script>let ok = true;</script>"
	blocks := extract.ScriptBlocks(text)

	require.Len(t, blocks, 1)
	assert.Equal(t, "let ok = true;", blocks[0].Content)
}

func TestScriptBlocks_OffsetInvariant(t *testing.T) {
	t.Parallel()

	text := "<#assign x=1>\n<script a=b c>\n\n   var v = f(x);  \n\n</script>\ntail"
	blocks := extract.ScriptBlocks(text)

	require.Len(t, blocks, 1)
	block := blocks[0]
	assert.GreaterOrEqual(t, block.Offset, 0)
	assert.LessOrEqual(t, block.Offset+len(block.Content), len(text))
	// The offset points at the first real character of the trimmed content.
	assert.Equal(t, block.Content, text[block.Offset:block.Offset+len(block.Content)])
}

func TestScriptBlocks_Deterministic(t *testing.T) {
	t.Parallel()

	text := "<script>a(</script><script>b()</script>"
	first := extract.ScriptBlocks(text)
	second := extract.ScriptBlocks(text)

	assert.Equal(t, first, second)
}
