package regexlib

import (
	"errors"
	"fmt"
)

var (
	// ErrSyntax is wrapped by every malformed-pattern error.
	ErrSyntax = errors.New("syntax error")

	ErrEmptyPattern     = errors.New("empty pattern")
	ErrUnbalancedParens = errors.New("unbalanced parentheses")
	ErrMissingOperand   = errors.New("operator is missing an operand")
	ErrInvalidSymbol    = errors.New("symbol outside the alphabet")
)

// SyntaxError reports where in a pattern or postfix stream parsing failed.
type SyntaxError struct {
	Pos int // byte offset, -1 when the error is not tied to one position
	Err error
}

func (e *SyntaxError) Error() string {
	if e.Pos < 0 {
		return "syntax error: " + e.Err.Error()
	}
	return fmt.Sprintf("syntax error at offset %d: %v", e.Pos, e.Err)
}

func (e *SyntaxError) Unwrap() []error { return []error{ErrSyntax, e.Err} }

func syntaxErr(pos int, err error) error {
	return &SyntaxError{Pos: pos, Err: err}
}
