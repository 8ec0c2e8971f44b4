package fa

// Subsets is the result of subset construction: the DFA and, for every DFA
// state i, the set of NFA states Sets[i] it stands for. State 0 is initial.
type Subsets struct {
	DFA  *Automaton
	Sets []StateSet
}

// SubsetConstruction converts nfa into an equivalent DFA. nfa is not modified.
func SubsetConstruction(nfa *Automaton) *Subsets {
	dfa := New()
	initSet := nfa.EpsilonClosure(nfa.start)

	ids := map[string]State{initSet.Key(): 0}
	sets := []StateSet{initSet}
	dfa.SetStart(0)
	if nfa.AnyAccepting(initSet) {
		dfa.AddAccepting(0)
	}

	alpha := nfa.Symbols()
	queue := []State{0}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		curSet := sets[cur]
		for _, sym := range alpha {
			moved, ok := nfa.Move(curSet, sym)
			if !ok {
				continue
			}
			clo := nfa.EpsilonClosureSet(moved)
			k := clo.Key()
			d, exists := ids[k]
			if !exists {
				d = State(len(sets))
				ids[k] = d
				sets = append(sets, clo)
				dfa.AddState(d)
				if nfa.AnyAccepting(clo) {
					dfa.AddAccepting(d)
				}
				queue = append(queue, d)
			}
			dfa.AddTransition(Transition{Sym: sym, From: cur, To: d})
		}
	}
	return &Subsets{DFA: dfa, Sets: sets}
}

// Determinize returns the DFA produced by subset construction.
func (a *Automaton) Determinize() *Automaton {
	return SubsetConstruction(a).DFA
}
