// Package fatext reads and writes automata in a small line-oriented text
// format:
//
//	// comment
//	0 :: 2        state 0, two transitions follow
//	a -> 1
//	-> 2          epsilon transition
//	1 => 0        state 1 is accepting
//
// The first state declared is the start state.
package fatext

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"regexfa/internal/fa"
)

const (
	StateMarker  = "::"
	AcceptMarker = "=>"
	Arrow        = "->"
)

// Write prints a in the text format. The start state comes first, the rest
// follow in ascending order.
func Write(w io.Writer, a *fa.Automaton) error {
	bw := bufio.NewWriter(w)

	order := []fa.State{a.Start()}
	for _, s := range a.States() {
		if s != a.Start() {
			order = append(order, s)
		}
	}

	total := 0
	for _, s := range order {
		marker := StateMarker
		if a.IsAccepting(s) {
			marker = AcceptMarker
		}
		out := a.TransitionsOf(s)
		total += len(out)
		fmt.Fprintf(bw, "%d %s %d\n", s, marker, len(out))
		for _, t := range out {
			if t.Sym.IsEpsilon() {
				fmt.Fprintf(bw, "%s %d\n", Arrow, t.To)
				continue
			}
			fmt.Fprintf(bw, "%s %s %d\n", t.Sym, Arrow, t.To)
		}
		bw.WriteString("\n")
	}
	fmt.Fprintf(bw, "// %d states, %d transitions\n", len(order), total)
	return bw.Flush()
}

// Format is Write into a string.
func Format(a *fa.Automaton) string {
	var sb strings.Builder
	_ = Write(&sb, a)
	return sb.String()
}
