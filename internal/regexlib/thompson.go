package regexlib

import (
	"fmt"
	"sync/atomic"

	"regexfa/internal/fa"
)

// IDGen hands out state ids that are never reused. Next is safe for
// concurrent use.
type IDGen struct {
	next atomic.Int64
}

// Next returns a fresh state id.
func (g *IDGen) Next() fa.State {
	return fa.State(g.next.Add(1) - 1)
}

// Fragment is a single-entry, single-exit piece of NFA built while lowering
// a syntax tree.
type Fragment struct {
	States map[fa.State]struct{}
	Entry  fa.State
	Exit   fa.State
	Delta  []fa.Transition
}

// Builder lowers syntax trees to NFAs. All fragments built by one Builder
// draw ids from the same generator, so they never collide.
type Builder struct {
	ids *IDGen
}

// NewBuilder returns a Builder with its own id generator starting at 0.
func NewBuilder() *Builder {
	return &Builder{ids: &IDGen{}}
}

// NewBuilderWith shares gen with other builders.
func NewBuilderWith(gen *IDGen) *Builder {
	return &Builder{ids: gen}
}

// Build turns a postfix stream into an NFA whose start is the entry of the
// top fragment and whose single accepting state is its exit.
func (b *Builder) Build(postfix string) (*fa.Automaton, error) {
	root, err := ParsePostfix(postfix)
	if err != nil {
		return nil, fmt.Errorf("parse postfix %q: %w", postfix, err)
	}
	return b.Fragment(root).Automaton(), nil
}

// Automaton converts the fragment into a standalone NFA.
func (f *Fragment) Automaton() *fa.Automaton {
	a := fa.New()
	for s := range f.States {
		a.AddState(s)
	}
	a.SetStart(f.Entry)
	a.AddAccepting(f.Exit)
	for _, t := range f.Delta {
		a.AddTransition(t)
	}
	return a
}

func (b *Builder) pair() *Fragment {
	entry, exit := b.ids.Next(), b.ids.Next()
	return &Fragment{
		States: map[fa.State]struct{}{entry: {}, exit: {}},
		Entry:  entry,
		Exit:   exit,
	}
}

func (f *Fragment) absorb(parts ...*Fragment) {
	for _, p := range parts {
		for s := range p.States {
			f.States[s] = struct{}{}
		}
		f.Delta = append(f.Delta, p.Delta...)
	}
}

func (f *Fragment) epsilon(from, to fa.State) {
	f.Delta = append(f.Delta, fa.Transition{Sym: fa.Epsilon, From: from, To: to})
}

// Fragment lowers n using Thompson's construction.
func (b *Builder) Fragment(n *Node) *Fragment {
	switch n.typ {
	case nEmpty, nSymbol:
		f := b.pair()
		sym := fa.Epsilon
		if n.typ == nSymbol {
			sym = n.sym
		}
		f.Delta = append(f.Delta, fa.Transition{Sym: sym, From: f.Entry, To: f.Exit})
		return f
	case nOr:
		l := b.Fragment(n.left)
		r := b.Fragment(n.right)
		f := b.pair()
		f.absorb(l, r)
		f.epsilon(f.Entry, l.Entry)
		f.epsilon(f.Entry, r.Entry)
		f.epsilon(l.Exit, f.Exit)
		f.epsilon(r.Exit, f.Exit)
		return f
	case nConcat:
		return fuse(b.Fragment(n.left), b.Fragment(n.right))
	case nStar, nPlus, nOptional:
		in := b.Fragment(n.left)
		f := b.pair()
		f.absorb(in)
		f.epsilon(f.Entry, in.Entry)
		f.epsilon(in.Exit, f.Exit)
		if n.typ != nPlus {
			f.epsilon(f.Entry, f.Exit) // skip
		}
		if n.typ != nOptional {
			f.epsilon(in.Exit, in.Entry) // repeat
		}
		return f
	}
	panic(fmt.Sprintf("regexlib: unknown node type %d", n.typ))
}

// fuse concatenates a and b by merging b's entry into a's exit. Neither input
// is modified: b's transitions are copied through a substitution table.
func fuse(a, b *Fragment) *Fragment {
	rename := map[fa.State]fa.State{b.Entry: a.Exit}
	sub := func(s fa.State) fa.State {
		if r, ok := rename[s]; ok {
			return r
		}
		return s
	}

	f := &Fragment{
		States: make(map[fa.State]struct{}, len(a.States)+len(b.States)-1),
		Entry:  a.Entry,
		Exit:   sub(b.Exit),
		Delta:  make([]fa.Transition, 0, len(a.Delta)+len(b.Delta)),
	}
	f.absorb(a)
	for s := range b.States {
		f.States[sub(s)] = struct{}{}
	}
	for _, t := range b.Delta {
		f.Delta = append(f.Delta, fa.Transition{Sym: t.Sym, From: sub(t.From), To: sub(t.To)})
	}
	return f
}
