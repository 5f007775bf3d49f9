package textdoc_test

import (
	"testing"

	"github.com/liuhaoxuan15/ftl-js-validator/pkg/textdoc"
)

func TestBuildLines(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		content  string
		expected []textdoc.LineInfo
	}{
		{
			name:     "empty content",
			content:  "",
			expected: []textdoc.LineInfo{},
		},
		{
			name:    "single line no newline",
			content: "hello",
			expected: []textdoc.LineInfo{
				{StartOffset: 0, NewlineStart: 5, EndOffset: 5},
			},
		},
		{
			name:    "single line with LF",
			content: "hello\n",
			expected: []textdoc.LineInfo{
				{StartOffset: 0, NewlineStart: 5, EndOffset: 6},
				{StartOffset: 6, NewlineStart: 6, EndOffset: 6},
			},
		},
		{
			name:    "single line with CRLF",
			content: "hello\r\n",
			expected: []textdoc.LineInfo{
				{StartOffset: 0, NewlineStart: 5, EndOffset: 7},
				{StartOffset: 7, NewlineStart: 7, EndOffset: 7},
			},
		},
		{
			name:    "multiple lines LF",
			content: "line1\nline2\nline3",
			expected: []textdoc.LineInfo{
				{StartOffset: 0, NewlineStart: 5, EndOffset: 6},
				{StartOffset: 6, NewlineStart: 11, EndOffset: 12},
				{StartOffset: 12, NewlineStart: 17, EndOffset: 17},
			},
		},
		{
			name:    "only newline",
			content: "\n",
			expected: []textdoc.LineInfo{
				{StartOffset: 0, NewlineStart: 0, EndOffset: 1},
				{StartOffset: 1, NewlineStart: 1, EndOffset: 1},
			},
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			lines := textdoc.BuildLines([]byte(testCase.content))

			if len(lines) != len(testCase.expected) {
				t.Fatalf("expected %d lines, got %d", len(testCase.expected), len(lines))
			}

			for i, exp := range testCase.expected {
				got := lines[i]
				if got != exp {
					t.Errorf("line %d: expected %+v, got %+v", i, exp, got)
				}
			}
		})
	}
}

func TestPositionAt(t *testing.T) {
	t.Parallel()

	doc := textdoc.New("test.ftl", []byte("abc\ndef\nghi"))

	tests := []struct {
		name   string
		offset int
		want   textdoc.Position
	}{
		{"start of document", 0, textdoc.Position{Line: 0, Column: 0}},
		{"middle of first line", 2, textdoc.Position{Line: 0, Column: 2}},
		{"newline belongs to its line", 3, textdoc.Position{Line: 0, Column: 3}},
		{"start of second line", 4, textdoc.Position{Line: 1, Column: 0}},
		{"middle of last line", 9, textdoc.Position{Line: 2, Column: 1}},
		{"end of document", 11, textdoc.Position{Line: 2, Column: 3}},
		{"past end clamps to trailing position", 99, textdoc.Position{Line: 2, Column: 3}},
		{"negative clamps to start", -1, textdoc.Position{Line: 0, Column: 0}},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			got := doc.PositionAt(testCase.offset)
			if got != testCase.want {
				t.Errorf("PositionAt(%d) = %+v, want %+v", testCase.offset, got, testCase.want)
			}
		})
	}
}

func TestPositionAt_TrailingNewline(t *testing.T) {
	t.Parallel()

	// Offset equal to length lands on the implied empty final line.
	doc := textdoc.New("test.ftl", []byte("abc\n"))
	got := doc.PositionAt(4)
	want := textdoc.Position{Line: 1, Column: 0}
	if got != want {
		t.Errorf("PositionAt(4) = %+v, want %+v", got, want)
	}
}

func TestPositionAt_Monotonic(t *testing.T) {
	t.Parallel()

	doc := textdoc.New("test.ftl", []byte("let x = 1;\r\n\r\nlet y = 2;\nlet z;"))

	prev := doc.PositionAt(0)
	for offset := 1; offset <= doc.Len(); offset++ {
		cur := doc.PositionAt(offset)
		if cur.Before(prev) {
			t.Fatalf("PositionAt not monotonic: offset %d -> %+v, offset %d -> %+v",
				offset-1, prev, offset, cur)
		}
		prev = cur
	}
}

func TestLineText_RoundTrip(t *testing.T) {
	t.Parallel()

	content := []byte("first line\nsecond\r\nthird")
	doc := textdoc.New("test.ftl", content)

	// Every non-newline character must appear in the text of its own line.
	for offset, ch := range content {
		if ch == '\n' || ch == '\r' {
			continue
		}
		pos := doc.PositionAt(offset)
		line := doc.LineText(pos.Line)
		if pos.Column >= len(line) || line[pos.Column] != ch {
			t.Errorf("offset %d (%q): line %d text %q does not contain it at column %d",
				offset, ch, pos.Line, line, pos.Column)
		}
	}
}

func TestLineText_OutOfRange(t *testing.T) {
	t.Parallel()

	doc := textdoc.New("test.ftl", []byte("one\ntwo"))

	if got := doc.LineText(-1); got != "" {
		t.Errorf("LineText(-1) = %q, want empty", got)
	}
	if got := doc.LineText(5); got != "" {
		t.Errorf("LineText(5) = %q, want empty", got)
	}
}

func TestOffsetAt(t *testing.T) {
	t.Parallel()

	doc := textdoc.New("test.ftl", []byte("abc\ndef"))

	tests := []struct {
		name       string
		line, col  int
		wantOffset int
		wantOK     bool
	}{
		{"origin", 0, 0, 0, true},
		{"end of first line", 0, 3, 3, true},
		{"second line", 1, 2, 6, true},
		{"column past line end", 0, 10, 0, false},
		{"negative line", -1, 0, 0, false},
		{"line out of range", 9, 0, 0, false},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			offset, ok := doc.OffsetAt(testCase.line, testCase.col)
			if ok != testCase.wantOK || offset != testCase.wantOffset {
				t.Errorf("OffsetAt(%d, %d) = (%d, %v), want (%d, %v)",
					testCase.line, testCase.col, offset, ok, testCase.wantOffset, testCase.wantOK)
			}
		})
	}
}
