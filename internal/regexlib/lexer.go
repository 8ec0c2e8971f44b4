package regexlib

import (
	"fmt"
	"sync"

	"github.com/timtadh/lexmachine"
	"github.com/timtadh/lexmachine/machines"

	"regexfa/internal/logger"
)

type tokenType int

const (
	tLiteral tokenType = iota // symbol from the alphabet
	tEmpty                    // #
	tLParen                   // (
	tRParen                   // )
	tStar                     // *
	tPlus                     // +
	tQMark                    // ?
	tUnion                    // |
	tConcat                   // . (explicit or inserted)
	tUnknown
)

// Operator characters as they appear in patterns and postfix streams.
const (
	opConcat   = '.'
	opUnion    = '|'
	opStar     = '*'
	opPlus     = '+'
	opOptional = '?'
	opEmpty    = '#'
)

var tokenNames = [...]string{
	tLiteral: "literal",
	tEmpty:   "#",
	tLParen:  "(",
	tRParen:  ")",
	tStar:    "*",
	tPlus:    "+",
	tQMark:   "?",
	tUnion:   "|",
	tConcat:  ".",
	tUnknown: "unknown",
}

func (t tokenType) String() string { return tokenNames[t] }

type token struct {
	typ tokenType
	ch  rune
	pos int // byte offset in the pattern
}

func (t token) String() string {
	if t.typ == tLiteral {
		return string(t.ch)
	}
	return t.typ.String()
}

var (
	patternLexer    *lexmachine.Lexer
	patternLexerErr error
	patternLexOnce  sync.Once
)

func compiledLexer() (*lexmachine.Lexer, error) {
	patternLexOnce.Do(func() {
		l := lexmachine.NewLexer()
		l.Add([]byte(`[ \t\r\n]+`), skip)
		l.Add([]byte(`[0-9A-Za-z]`), tokAction(tLiteral))
		l.Add([]byte(`#`), tokAction(tEmpty))
		l.Add([]byte(`[(]`), tokAction(tLParen))
		l.Add([]byte(`[)]`), tokAction(tRParen))
		l.Add([]byte(`[*]`), tokAction(tStar))
		l.Add([]byte(`[+]`), tokAction(tPlus))
		l.Add([]byte(`[?]`), tokAction(tQMark))
		l.Add([]byte(`[|]`), tokAction(tUnion))
		l.Add([]byte(`[.]`), tokAction(tConcat))
		l.Add([]byte(`.`), tokAction(tUnknown))
		if err := l.Compile(); err != nil {
			patternLexerErr = fmt.Errorf("compile pattern lexer: %w", err)
			return
		}
		patternLexer = l
	})
	return patternLexer, patternLexerErr
}

func skip(*lexmachine.Scanner, *machines.Match) (interface{}, error) {
	return nil, nil
}

func tokAction(typ tokenType) lexmachine.Action {
	return func(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
		return token{typ: typ, ch: rune(m.Bytes[0]), pos: m.TC}, nil
	}
}

// lex splits pattern into tokens. Characters that are neither alphabet
// symbols nor operators are dropped with a warning on log.
func lex(pattern string, log *logger.Logger) ([]token, error) {
	lex, err := compiledLexer()
	if err != nil {
		return nil, err
	}
	scanner, err := lex.Scanner([]byte(pattern))
	if err != nil {
		return nil, err
	}

	var toks []token
	for tok, err, eof := scanner.Next(); !eof; tok, err, eof = scanner.Next() {
		if ui, is := err.(*machines.UnconsumedInput); is {
			log.Warn("skipping unconsumed input at offset %d", ui.StartTC)
			scanner.TC = max(ui.FailTC, ui.StartTC+1)
			continue
		} else if err != nil {
			return nil, err
		}
		t := tok.(token)
		if t.typ == tUnknown {
			log.Warn("skipping unknown character %q at offset %d", t.ch, t.pos)
			continue
		}
		toks = append(toks, t)
	}
	return toks, nil
}
