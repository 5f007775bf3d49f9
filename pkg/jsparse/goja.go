package jsparse

import (
	"errors"

	"github.com/dop251/goja/parser"

	"github.com/liuhaoxuan15/ftl-js-validator/pkg/textdoc"
)

// GojaParser validates snippets with the goja ECMAScript parser.
// goja accepts modern syntax (let/const, arrow functions, classes,
// template literals) in its default, most permissive mode.
type GojaParser struct{}

// NewGojaParser creates a goja-backed Parser.
func NewGojaParser() *GojaParser {
	return &GojaParser{}
}

// Parse implements Parser.
func (p *GojaParser) Parse(src string) *Failure {
	_, err := parser.ParseFile(nil, "block.js", src, 0)
	if err == nil {
		return nil
	}
	return failureFrom(src, err)
}

// failureFrom converts a goja parse error into a Failure, translating the
// reported 1-based (line, column) into a zero-based snippet offset.
func failureFrom(src string, err error) *Failure {
	var first *parser.Error

	var list parser.ErrorList
	if errors.As(err, &list) && len(list) > 0 {
		first = list[0]
	} else {
		errors.As(err, &first)
	}

	if first == nil {
		return &Failure{Offset: 0, Message: err.Error()}
	}

	return &Failure{
		Offset:  snippetOffset(src, first.Position.Line, first.Position.Column),
		Message: first.Message,
	}
}

// snippetOffset maps a 1-based (line, column) to a zero-based offset in
// src. Degenerate positions default to the snippet start rather than
// failing the run.
func snippetOffset(src string, line, column int) int {
	if line < 1 || column < 1 {
		return 0
	}

	doc := textdoc.New("", []byte(src))
	offset, ok := doc.OffsetAt(line-1, column-1)
	if !ok {
		return 0
	}
	return offset
}
