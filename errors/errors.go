// Package errors defines the diagnostic error types surfaced by pathseq.
//
// Parse failures carry the full sequence text plus a column span so callers
// can render a caret diagnostic without re-deriving positions.
package errors

import (
	stderrors "errors"
	"fmt"
	"strings"
)

// ParseError describes a sequence string that failed to parse.
//
// Column and EndColumn delimit the offending substring as half-open byte
// offsets into Seq.
type ParseError struct {
	Seq       string
	Column    int
	EndColumn int
	Reason    string
}

// NewParse builds a ParseError over a single-column span.
func NewParse(seq string, column int, reason string) *ParseError {
	return NewParseSpan(seq, column, column+1, reason)
}

// NewParseSpan builds a ParseError over an explicit column span.
func NewParseSpan(seq string, column, endColumn int, reason string) *ParseError {
	if endColumn < column+1 {
		endColumn = column + 1
	}
	return &ParseError{Seq: seq, Column: column, EndColumn: endColumn, Reason: reason}
}

// Error renders the failure with a caret run under the failing span:
//
//	Invalid sequence: Expected the ranges
//	  file.#.#
//	        ^^
func (e *ParseError) Error() string {
	if e == nil {
		return "parse <nil>"
	}

	var b strings.Builder
	b.WriteString("Invalid sequence")
	if e.Reason != "" {
		b.WriteString(": ")
		b.WriteString(e.Reason)
	}
	if e.Column >= 0 {
		b.WriteString("\n  ")
		b.WriteString(e.Seq)
		b.WriteString("\n  ")
		b.WriteString(strings.Repeat(" ", e.Column))
		b.WriteString(strings.Repeat("^", e.EndColumn-e.Column))
	}
	return b.String()
}

// NotASequenceError reports a string with no range token anywhere, i.e. a
// regular path rather than a sequence.
type NotASequenceError struct {
	ParseError
}

// NewNotASequence builds a NotASequenceError covering the whole string.
func NewNotASequence(seq string) *NotASequenceError {
	end := len(seq)
	if end < 1 {
		end = 1
	}
	return &NotASequenceError{ParseError: ParseError{
		Seq:       seq,
		Column:    0,
		EndColumn: end,
		Reason:    "No range string is present",
	}}
}

// RangeError reports an invalid numeric range construction, such as a zero
// step or an end not reachable from the start.
type RangeError struct {
	Message string
}

// NewRangef formats a message and builds a RangeError.
func NewRangef(format string, args ...any) *RangeError {
	return &RangeError{Message: fmt.Sprintf(format, args...)}
}

// Error returns the formatted message.
func (e *RangeError) Error() string {
	if e == nil {
		return "range <nil>"
	}
	return "invalid range: " + e.Message
}

// ArityError reports a Format call whose number count does not match the
// sequence's range count.
type ArityError struct {
	Want int
	Got  int
}

// Error returns the formatted message.
func (e *ArityError) Error() string {
	if e == nil {
		return "arity <nil>"
	}
	return fmt.Sprintf("expected %d file numbers, got %d", e.Want, e.Got)
}

// IncompleteDimensionError reports a filesystem scan of a multi-dimension
// sequence that found an inconsistent number of files across dimensions.
type IncompleteDimensionError struct {
	Seq string
}

// Error returns the formatted message.
func (e *IncompleteDimensionError) Error() string {
	if e == nil {
		return "dimension <nil>"
	}
	return fmt.Sprintf("sequence %q contains an inconsistent number of files across one or more dimensions", e.Seq)
}

// AsParse extracts a ParseError from an error chain.
func AsParse(err error) (*ParseError, bool) {
	var notSeq *NotASequenceError
	if stderrors.As(err, &notSeq) {
		return &notSeq.ParseError, true
	}
	var parse *ParseError
	if stderrors.As(err, &parse) {
		return parse, true
	}
	return nil, false
}

// IsNotASequence reports whether the error chain contains a NotASequenceError.
func IsNotASequence(err error) bool {
	var notSeq *NotASequenceError
	return stderrors.As(err, &notSeq)
}
