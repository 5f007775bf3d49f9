// Package extract locates embedded <script> blocks in template documents.
package extract

import (
	"regexp"
	"strings"
)

// scriptBlockPattern matches a <script ...>...</script> pair, capturing the
// raw body. Matching is case-sensitive, non-greedy, and spans newlines.
// An opening tag without a matching closing tag is simply not matched.
var scriptBlockPattern = regexp.MustCompile(`(?s)<script[^>]*>(.*?)</script>`)

// Block is one embedded script block found in a document.
type Block struct {
	// Content is the trimmed text between the opening and closing tags.
	Content string

	// Offset is the absolute document offset of the first character of
	// the trimmed content (not the tag, not stripped leading whitespace).
	Offset int
}

// ScriptBlocks scans text and returns every non-empty embedded script block
// in first-occurrence order. The scan is stateless: calling it twice on the
// same text yields identical results. Blocks whose body is only whitespace
// are skipped.
func ScriptBlocks(text string) []Block {
	matches := scriptBlockPattern.FindAllStringSubmatchIndex(text, -1)
	if len(matches) == 0 {
		return nil
	}

	blocks := make([]Block, 0, len(matches))
	for _, m := range matches {
		// m[2], m[3] delimit the capture group (the raw body).
		bodyStart, bodyEnd := m[2], m[3]
		raw := text[bodyStart:bodyEnd]

		content := strings.TrimSpace(raw)
		if content == "" {
			continue
		}

		// Account for stripped leading whitespace so the offset points at
		// the first real character.
		lead := strings.Index(raw, content)
		blocks = append(blocks, Block{
			Content: content,
			Offset:  bodyStart + lead,
		})
	}

	if len(blocks) == 0 {
		return nil
	}
	return blocks
}
