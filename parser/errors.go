package parser

import "fmt"

// ErrorKind identifies the category of a parse failure. The taxonomy
// mirrors the teacher's ErrorCode/IOError split, renamed to this domain's
// vocabulary and collapsed onto a single position (this format never needs
// a start/end range, only the offset where the diagnostic was raised).
type ErrorKind string

const (
	MalformedStructure       ErrorKind = "MalformedStructure"
	UnexpectedCharacter      ErrorKind = "UnexpectedCharacter"
	UnrecognizedToken        ErrorKind = "UnrecognizedToken"
	UnterminatedValue        ErrorKind = "UnterminatedValue"
	IllegalControlCharacter  ErrorKind = "IllegalControlCharacter"
	UTF8DecoderError         ErrorKind = "UTF8Decoder"
	DuplicateObjectNameError ErrorKind = "DuplicateObjectName"
	MaxNestingLevelExceeded  ErrorKind = "MaxNestingLevelExceeded"
	OutOfRange               ErrorKind = "OutOfRange"
	SubsequenceIndexViolation ErrorKind = "SubsequenceIndexViolation"
	IndexOutOfBounds         ErrorKind = "IndexOutOfBounds"
	UnexpectedToken          ErrorKind = "UnexpectedToken"
)

// ParseError is the single error type raised by every component in this
// module. It is deliberately flat (no wrapped-error chain) because every
// message here is a spec-mandated literal string; a general-purpose
// wrapping library (github.com/pkg/errors was considered, see DESIGN.md)
// would only obscure that the message text itself is the contract.
type ParseError struct {
	Kind     ErrorKind
	Message  string
	Position int
	hasPos   bool
}

// Error implements the error interface, rendering "Position: N. <message>"
// when a position is known, matching spec.md's diagnostic format exactly.
func (e *ParseError) Error() string {
	if !e.hasPos {
		return fmt.Sprintf("%s: %s", e.Kind, e.Message)
	}
	return fmt.Sprintf("Position: %d. %s", e.Position, e.Message)
}

func newError(kind ErrorKind, pos int, format string, args ...interface{}) *ParseError {
	return &ParseError{
		Kind:     kind,
		Message:  fmt.Sprintf(format, args...),
		Position: pos,
		hasPos:   true,
	}
}

func newErrorNoPos(kind ErrorKind, format string, args ...interface{}) *ParseError {
	return &ParseError{
		Kind:    kind,
		Message: fmt.Sprintf(format, args...),
	}
}
