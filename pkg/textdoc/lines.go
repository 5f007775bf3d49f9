package textdoc

import "sort"

// BuildLines constructs line metadata from document content.
// It handles both LF (\n) and CRLF (\r\n) line endings.
func BuildLines(content []byte) []LineInfo {
	if len(content) == 0 {
		return []LineInfo{}
	}

	var lines []LineInfo
	lineStart := 0

	for idx, char := range content {
		if char == '\n' {
			// Check for CRLF.
			newlineStart := idx
			if idx > 0 && content[idx-1] == '\r' {
				newlineStart = idx - 1
			}

			lines = append(lines, LineInfo{
				StartOffset:  lineStart,
				NewlineStart: newlineStart,
				EndOffset:    idx + 1,
			})
			lineStart = idx + 1
		}
	}

	// Last line may not have a trailing newline.
	if lineStart <= len(content) {
		lines = append(lines, LineInfo{
			StartOffset:  lineStart,
			NewlineStart: len(content),
			EndOffset:    len(content),
		})
	}

	return lines
}

// LineCount returns the number of lines in the document.
func (d *Document) LineCount() int {
	return len(d.Lines)
}

// PositionAt converts a byte offset to a zero-based Position.
// Valid for offsets from 0 to Len() inclusive: an offset equal to the
// document length maps to the implied trailing position on the last line.
// Offsets outside that range are clamped.
func (d *Document) PositionAt(offset int) Position {
	if offset < 0 {
		offset = 0
	}
	if len(d.Lines) == 0 {
		return Position{}
	}

	// Offset at or past end of content maps onto the last line.
	if offset >= len(d.Content) {
		last := len(d.Lines) - 1
		return Position{Line: last, Column: len(d.Content) - d.Lines[last].StartOffset}
	}

	// Binary search for the line containing the offset.
	line := sort.Search(len(d.Lines), func(i int) bool {
		return d.Lines[i].EndOffset > offset
	})
	if line >= len(d.Lines) {
		line = len(d.Lines) - 1
	}

	return Position{Line: line, Column: offset - d.Lines[line].StartOffset}
}

// OffsetAt converts a zero-based (line, column) pair to a byte offset.
// Returns (offset, true) on success, or (0, false) if out of range.
// The column may point one past the last character of the line.
func (d *Document) OffsetAt(line, column int) (int, bool) {
	if line < 0 || line >= len(d.Lines) || column < 0 {
		return 0, false
	}

	info := d.Lines[line]
	offset := info.StartOffset + column
	if offset > info.EndOffset {
		return 0, false
	}
	return offset, true
}

// LineText returns the content of a zero-based line, excluding its
// terminator. Returns "" if the line index is out of range.
func (d *Document) LineText(line int) string {
	if line < 0 || line >= len(d.Lines) {
		return ""
	}
	info := d.Lines[line]
	return string(d.Content[info.StartOffset:info.NewlineStart])
}
