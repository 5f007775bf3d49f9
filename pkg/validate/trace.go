package validate

import (
	"fmt"
	"io"
)

// TraceSink receives the line-oriented validation trace. Implementations
// decide where lines go (a log panel, stderr, a buffer); the validator
// only appends.
type TraceSink interface {
	AppendLine(line string)
}

// WriterSink writes trace lines to an io.Writer, one per line.
type WriterSink struct {
	W io.Writer
}

// AppendLine implements TraceSink.
func (s WriterSink) AppendLine(line string) {
	fmt.Fprintln(s.W, line)
}

// BufferSink collects trace lines in memory, mainly for tests.
type BufferSink struct {
	Lines []string
}

// AppendLine implements TraceSink.
func (s *BufferSink) AppendLine(line string) {
	s.Lines = append(s.Lines, line)
}
