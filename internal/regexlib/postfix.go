package regexlib

import (
	"strings"

	"regexfa/internal/logger"
)

// Postfix rewrites an infix pattern into postfix form with explicit '.'
// concatenation, e.g. "a(b|c)*" becomes "abc|*.".
func Postfix(pattern string, log *logger.Logger) (string, error) {
	toks, err := lex(pattern, log)
	if err != nil {
		return "", err
	}
	if len(toks) == 0 {
		return "", syntaxErr(-1, ErrEmptyPattern)
	}
	return toPostfix(insertConcat(toks))
}

// endsOperand reports whether t can be the last token of a subexpression.
func endsOperand(t tokenType) bool {
	switch t {
	case tLiteral, tEmpty, tRParen, tStar, tPlus, tQMark:
		return true
	}
	return false
}

// beginsOperand reports whether t can be the first token of a subexpression.
func beginsOperand(t tokenType) bool {
	switch t {
	case tLiteral, tEmpty, tLParen:
		return true
	}
	return false
}

// insertConcat makes implicit concatenation explicit: "ab(c)" becomes
// "a.b.(c)".
func insertConcat(toks []token) []token {
	out := make([]token, 0, 2*len(toks))
	for i, t := range toks {
		out = append(out, t)
		if i+1 < len(toks) && endsOperand(t.typ) && beginsOperand(toks[i+1].typ) {
			out = append(out, token{typ: tConcat, ch: opConcat, pos: toks[i+1].pos})
		}
	}
	return out
}

func precedence(t tokenType) int {
	switch t {
	case tStar, tPlus, tQMark:
		return 3
	case tConcat:
		return 2
	case tUnion:
		return 1
	}
	return 0
}

func arity(t tokenType) int {
	switch t {
	case tStar, tPlus, tQMark:
		return 1
	case tConcat, tUnion:
		return 2
	}
	return 0
}

// toPostfix is the shunting-yard pass. Besides matching parentheses it
// tracks how many operands are available so that "a|" or "*a" fail here
// instead of producing a stream Thompson construction cannot consume.
func toPostfix(toks []token) (string, error) {
	var out strings.Builder
	var ops []token
	// operands on the simulated evaluation stack, per open group
	depth := []int{0}

	emit := func(op token) error {
		n := arity(op.typ)
		if depth[len(depth)-1] < n {
			return syntaxErr(op.pos, ErrMissingOperand)
		}
		depth[len(depth)-1] -= n - 1
		out.WriteRune(op.ch)
		return nil
	}

	for _, t := range toks {
		switch t.typ {
		case tLiteral, tEmpty:
			out.WriteRune(t.ch)
			depth[len(depth)-1]++
		case tLParen:
			ops = append(ops, t)
			depth = append(depth, 0)
		case tRParen:
			for {
				if len(ops) == 0 {
					return "", syntaxErr(t.pos, ErrUnbalancedParens)
				}
				top := ops[len(ops)-1]
				ops = ops[:len(ops)-1]
				if top.typ == tLParen {
					break
				}
				if err := emit(top); err != nil {
					return "", err
				}
			}
			inner := depth[len(depth)-1]
			depth = depth[:len(depth)-1]
			if inner != 1 {
				return "", syntaxErr(t.pos, ErrMissingOperand)
			}
			depth[len(depth)-1]++
		default:
			for len(ops) > 0 {
				top := ops[len(ops)-1]
				if top.typ == tLParen || precedence(top.typ) < precedence(t.typ) {
					break
				}
				ops = ops[:len(ops)-1]
				if err := emit(top); err != nil {
					return "", err
				}
			}
			if arity(t.typ) == 1 {
				// postfix operators apply to the operand already emitted
				if err := emit(t); err != nil {
					return "", err
				}
				continue
			}
			ops = append(ops, t)
		}
	}

	for len(ops) > 0 {
		top := ops[len(ops)-1]
		ops = ops[:len(ops)-1]
		if top.typ == tLParen {
			return "", syntaxErr(top.pos, ErrUnbalancedParens)
		}
		if err := emit(top); err != nil {
			return "", err
		}
	}
	if depth[0] != 1 {
		return "", syntaxErr(-1, ErrMissingOperand)
	}
	return out.String(), nil
}
