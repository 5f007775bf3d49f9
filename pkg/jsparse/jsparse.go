// Package jsparse defines the pluggable script parser capability used by
// validation. Any standards-compliant modern-syntax parser satisfies the
// Parser interface; swapping implementations does not affect extraction,
// position mapping, or orchestration.
package jsparse

// Failure describes a single parse failure within a script snippet.
type Failure struct {
	// Offset is the zero-based character offset of the failure within the
	// snippet. Defaults to 0 when the parser reports no usable position.
	Offset int

	// Message is the parser's human-readable error text.
	Message string
}

// Parser attempts to parse a standalone script snippet.
// A nil return means the snippet parsed cleanly. Exactly one failure is
// reported per snippet: the parser is not re-invoked to hunt for
// subsequent errors after the first.
type Parser interface {
	Parse(src string) *Failure
}
