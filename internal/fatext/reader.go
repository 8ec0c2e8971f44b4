package fatext

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"

	"regexfa/internal/fa"
)

var (
	ErrNoStates         = errors.New("no state declared")
	ErrTransitionCount  = errors.New("transition count mismatch")
	ErrOrphanTransition = errors.New("transition before any state header")
	ErrBadSymbol        = errors.New("symbol must be one alphabet character")
)

// LineError is a problem with one line of input. Reading continues after it.
type LineError struct {
	Line int
	Err  error
}

func (e *LineError) Error() string { return fmt.Sprintf("line %d: %v", e.Line, e.Err) }

func (e *LineError) Unwrap() error { return e.Err }

// ------------------------------------------------------------------- grammar

type header struct {
	ID     int    `parser:"@Int"`
	Marker string `parser:"@Marker"`
	Count  int    `parser:"@Int"`
}

type edge struct {
	Symbol *string `parser:"@(Int | Symbol)?"`
	Dest   int     `parser:"Arrow @Int"`
}

type line struct {
	Header *header `parser:"  @@"`
	Edge   *edge   `parser:"| @@"`
}

var lineLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Comment", Pattern: `//.*`},
	{Name: "Marker", Pattern: `::|=>`},
	{Name: "Arrow", Pattern: `->`},
	{Name: "Int", Pattern: `[0-9]+`},
	{Name: "Symbol", Pattern: `[^\s]+`},
	{Name: "Whitespace", Pattern: `\s+`},
})

var parser = participle.MustBuild[line](
	participle.Lexer(lineLexer),
	participle.Elide("Whitespace", "Comment"),
	participle.UseLookahead(2),
)

// ------------------------------------------------------------------- reader

type block struct {
	line     int
	expected int
	found    int
}

// Read parses the text format. Lines that cannot be parsed are reported as
// *LineError and skipped. The automaton is nil only when no state header
// was read at all.
func Read(r io.Reader) (*fa.Automaton, []error) {
	var (
		a       = fa.New()
		errs    []error
		cur     fa.State
		open    *block
		started bool
	)
	fail := func(n int, err error) { errs = append(errs, &LineError{Line: n, Err: err}) }
	closeBlock := func() {
		if open != nil && open.found != open.expected {
			fail(open.line, fmt.Errorf("%w: declared %d, found %d", ErrTransitionCount, open.expected, open.found))
		}
		open = nil
	}

	sc := bufio.NewScanner(r)
	n := 0
	for sc.Scan() {
		n++
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "//") {
			continue
		}
		ln, err := parser.ParseString("", text)
		if err != nil {
			fail(n, err)
			continue
		}

		switch {
		case ln.Header != nil:
			closeBlock()
			h := ln.Header
			cur = fa.State(h.ID)
			if !started {
				a.SetStart(cur)
				started = true
			}
			a.AddState(cur)
			if h.Marker == AcceptMarker {
				a.AddAccepting(cur)
			}
			open = &block{line: n, expected: h.Count}

		case ln.Edge != nil:
			if open == nil {
				fail(n, ErrOrphanTransition)
				continue
			}
			sym, err := edgeSymbol(ln.Edge.Symbol)
			if err != nil {
				fail(n, err)
				continue
			}
			open.found++
			a.AddState(fa.State(ln.Edge.Dest))
			a.AddTransition(fa.Transition{Sym: sym, From: cur, To: fa.State(ln.Edge.Dest)})
		}
	}
	closeBlock()
	if err := sc.Err(); err != nil {
		errs = append(errs, err)
	}
	if !started {
		return nil, append(errs, ErrNoStates)
	}
	return a, errs
}

func edgeSymbol(s *string) (fa.Symbol, error) {
	if s == nil || *s == fa.EpsilonGlyph {
		return fa.Epsilon, nil
	}
	r := []rune(*s)
	if len(r) != 1 || !fa.InAlphabet(r[0]) {
		return 0, fmt.Errorf("%w: %q", ErrBadSymbol, *s)
	}
	return fa.Literal(r[0]), nil
}

// ReadFile opens path and reads it with Read.
func ReadFile(path string) (*fa.Automaton, []error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, []error{err}
	}
	defer f.Close()
	return Read(f)
}
