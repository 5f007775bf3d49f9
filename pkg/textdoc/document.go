// Package textdoc provides an immutable text document snapshot with an
// offset-to-position index. Positions are zero-based (line, column) pairs,
// matching what editors exchange over the wire; terminal output layers add
// one for display.
package textdoc

// Document is an immutable view of a template document at validation time.
// It holds the raw content and a derived line table.
type Document struct {
	// Path identifies the document (may be empty for in-memory content).
	Path string

	// Content is the full document bytes.
	Content []byte

	// Lines contains metadata for each line in the document.
	Lines []LineInfo
}

// LineInfo holds metadata for a single line.
type LineInfo struct {
	// StartOffset is the byte index of the line start.
	StartOffset int

	// NewlineStart is the byte index where newline characters begin.
	// For lines without a trailing newline this equals EndOffset.
	NewlineStart int

	// EndOffset is the byte index just after the newline (or end of content).
	EndOffset int
}

// Position is a zero-based (line, column) pair derived from a byte offset.
type Position struct {
	Line   int
	Column int
}

// Before reports whether p sorts strictly before other, by line then column.
func (p Position) Before(other Position) bool {
	if p.Line != other.Line {
		return p.Line < other.Line
	}
	return p.Column < other.Column
}

// New creates a Document from content, building the line table.
func New(path string, content []byte) *Document {
	return &Document{
		Path:    path,
		Content: content,
		Lines:   BuildLines(content),
	}
}

// Len returns the document length in bytes.
func (d *Document) Len() int {
	return len(d.Content)
}
