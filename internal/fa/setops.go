package fa

import "slices"

// Complete returns a copy of d in which every state has a transition on every
// symbol in symbols. Missing transitions lead to a new rejecting sink state.
// States are renumbered 0..n-1 in ascending order of the originals.
func Complete(d *Automaton, symbols []Symbol) *Automaton {
	old := d.States()
	index := make(map[State]State, len(old))
	for i, s := range old {
		index[s] = State(i)
	}
	sink := State(len(old))

	out := New()
	for _, s := range old {
		out.AddState(index[s])
		if d.IsAccepting(s) {
			out.AddAccepting(index[s])
		}
	}
	out.SetStart(index[d.start])

	needSink := false
	for _, s := range old {
		for _, c := range symbols {
			if to, ok := d.step(s, c); ok {
				out.AddTransition(Transition{Sym: c, From: index[s], To: index[to]})
				continue
			}
			needSink = true
			out.AddTransition(Transition{Sym: c, From: index[s], To: sink})
		}
	}
	if needSink {
		out.AddState(sink)
		for _, c := range symbols {
			out.AddTransition(Transition{Sym: c, From: sink, To: sink})
		}
	}
	return out
}

// Complement accepts exactly the strings over the alphabet that d rejects.
func Complement(d *Automaton) *Automaton {
	full := Complete(d, Alphabet())
	out := New()
	for _, s := range full.States() {
		out.AddState(s)
		if !full.IsAccepting(s) {
			out.AddAccepting(s)
		}
	}
	out.SetStart(full.start)
	for _, t := range full.delta {
		out.AddTransition(t)
	}
	return out
}

// Product runs a and b in lockstep and accepts when op holds for their
// acceptance. Both are completed over the symbols either one uses.
func Product(a, b *Automaton, op func(bool, bool) bool) *Automaton {
	alpha := unionSymbols(a.Symbols(), b.Symbols())
	ca, cb := Complete(a, alpha), Complete(b, alpha)

	type pair struct{ i, j State }
	start := pair{ca.start, cb.start}
	ids := map[pair]State{start: 0}
	queue := []pair{start}

	out := New()
	out.SetStart(0)
	if op(ca.IsAccepting(start.i), cb.IsAccepting(start.j)) {
		out.AddAccepting(0)
	}
	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]
		cur := ids[p]
		for _, c := range alpha {
			ta, _ := ca.step(p.i, c)
			tb, _ := cb.step(p.j, c)
			np := pair{ta, tb}
			ns, exists := ids[np]
			if !exists {
				ns = State(len(ids))
				ids[np] = ns
				out.AddState(ns)
				if op(ca.IsAccepting(ta), cb.IsAccepting(tb)) {
					out.AddAccepting(ns)
				}
				queue = append(queue, np)
			}
			out.AddTransition(Transition{Sym: c, From: cur, To: ns})
		}
	}
	return out
}

// Intersect accepts the strings both a and b accept.
func Intersect(a, b *Automaton) *Automaton {
	return Product(a, b, func(x, y bool) bool { return x && y })
}

// Union accepts the strings either a or b accepts.
func Union(a, b *Automaton) *Automaton {
	return Product(a, b, func(x, y bool) bool { return x || y })
}

// Reverse accepts the reversal of every string d accepts. The reversed edges
// form an NFA with a fresh start state that is then determinized.
func Reverse(d *Automaton) *Automaton {
	start := State(0)
	for _, s := range d.States() {
		if s >= start {
			start = s + 1
		}
	}
	nfa := New()
	for _, s := range d.States() {
		nfa.AddState(s)
	}
	nfa.SetStart(start)
	nfa.AddAccepting(d.start)
	for _, acc := range d.Accepting() {
		nfa.AddTransition(Transition{Sym: Epsilon, From: start, To: acc})
	}
	for _, t := range d.delta {
		nfa.AddTransition(Transition{Sym: t.Sym, From: t.To, To: t.From})
	}
	return nfa.Determinize()
}

func unionSymbols(a, b []Symbol) []Symbol {
	out := append(slices.Clone(a), b...)
	slices.Sort(out)
	return slices.Compact(out)
}
