// Package fa holds the finite automaton shared by NFAs and DFAs, together
// with the algorithms that operate on it: epsilon closure, subset
// construction, minimization and language set operations.
package fa

import (
	"fmt"
	"slices"
	"unicode/utf8"
)

// Transition is a labelled edge. An automaton may hold duplicates.
type Transition struct {
	Sym  Symbol
	From State
	To   State
}

func (t Transition) String() string {
	return fmt.Sprintf("%d -%s-> %d", t.From, t.Sym, t.To)
}

// Automaton is a state graph that models either an NFA or a DFA.
//
// graph is always the group-by-From partition of delta; only AddTransition
// writes to either.
type Automaton struct {
	states    map[State]struct{}
	start     State
	accepting map[State]struct{}
	delta     []Transition
	graph     map[State][]Transition
}

// New returns an empty automaton.
func New() *Automaton {
	return &Automaton{
		states:    make(map[State]struct{}),
		accepting: make(map[State]struct{}),
		graph:     make(map[State][]Transition),
	}
}

// AddState registers s. Adding a state twice is a no-op.
func (a *Automaton) AddState(s State) {
	a.states[s] = struct{}{}
}

// SetStart marks s as the starting state, registering it if needed.
func (a *Automaton) SetStart(s State) {
	a.AddState(s)
	a.start = s
}

// AddAccepting marks s as accepting, registering it if needed.
func (a *Automaton) AddAccepting(s State) {
	a.AddState(s)
	a.accepting[s] = struct{}{}
}

// AddTransition appends t to the transition list and the adjacency index.
func (a *Automaton) AddTransition(t Transition) {
	a.delta = append(a.delta, t)
	a.graph[t.From] = append(a.graph[t.From], t)
}

func (a *Automaton) Start() State { return a.start }

func (a *Automaton) NumStates() int { return len(a.states) }

func (a *Automaton) HasState(s State) bool {
	_, ok := a.states[s]
	return ok
}

// States returns every state in ascending order.
func (a *Automaton) States() []State {
	return sortedKeys(a.states)
}

// Accepting returns the accepting states in ascending order.
func (a *Automaton) Accepting() []State {
	return sortedKeys(a.accepting)
}

func (a *Automaton) IsAccepting(s State) bool {
	_, ok := a.accepting[s]
	return ok
}

// AnyAccepting reports whether set intersects the accepting states.
func (a *Automaton) AnyAccepting(set StateSet) bool {
	for _, s := range set.ids {
		if a.IsAccepting(s) {
			return true
		}
	}
	return false
}

// Transitions returns the transition list in insertion order.
func (a *Automaton) Transitions() []Transition {
	return slices.Clone(a.delta)
}

// TransitionsOf returns the transitions leaving s.
func (a *Automaton) TransitionsOf(s State) []Transition {
	return slices.Clone(a.graph[s])
}

// Symbols returns the distinct literal symbols used by any transition, in
// ascending order.
func (a *Automaton) Symbols() []Symbol {
	seen := make(map[Symbol]struct{})
	for _, t := range a.delta {
		if !t.Sym.IsEpsilon() {
			seen[t.Sym] = struct{}{}
		}
	}
	out := make([]Symbol, 0, len(seen))
	for sym := range seen {
		out = append(out, sym)
	}
	slices.Sort(out)
	return out
}

// IsDeterministic reports whether there are no epsilon transitions and at
// most one transition per state and literal symbol.
func (a *Automaton) IsDeterministic() bool {
	for _, ts := range a.graph {
		seen := make(map[Symbol]struct{}, len(ts))
		for _, t := range ts {
			if t.Sym.IsEpsilon() {
				return false
			}
			if _, dup := seen[t.Sym]; dup {
				return false
			}
			seen[t.Sym] = struct{}{}
		}
	}
	return true
}

// EpsilonClosure returns every state reachable from s through zero or more
// epsilon transitions, s included.
func (a *Automaton) EpsilonClosure(s State) StateSet {
	return a.EpsilonClosureSet(NewStateSet(s))
}

// EpsilonClosureSet returns the union of the epsilon closures of every
// member of set.
func (a *Automaton) EpsilonClosureSet(set StateSet) StateSet {
	visited := make(map[State]struct{}, set.Len())
	stack := make([]State, 0, set.Len())
	for _, s := range set.ids {
		visited[s] = struct{}{}
		stack = append(stack, s)
	}
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, t := range a.graph[top] {
			if !t.Sym.IsEpsilon() {
				continue
			}
			if _, ok := visited[t.To]; ok {
				continue
			}
			visited[t.To] = struct{}{}
			stack = append(stack, t.To)
		}
	}
	return StateSet{ids: sortedKeys(visited)}
}

// Move returns the states reachable from set by exactly one transition
// labelled sym. The boolean is false when no member has such a transition.
func (a *Automaton) Move(set StateSet, sym Symbol) (StateSet, bool) {
	var out []State
	for _, s := range set.ids {
		for _, t := range a.graph[s] {
			if t.Sym == sym {
				out = append(out, t.To)
			}
		}
	}
	if len(out) == 0 {
		return StateSet{}, false
	}
	return NewStateSet(out...), true
}

// Simulate runs input through a DFA and reports whether it ends in an
// accepting state. The result is meaningless on a nondeterministic automaton.
func (a *Automaton) Simulate(input string) bool {
	cur := a.start
	for _, c := range input {
		next, ok := a.step(cur, Literal(c))
		if !ok {
			return false
		}
		cur = next
	}
	return a.IsAccepting(cur)
}

// LongestPrefix returns the byte length of the longest prefix of input that
// a DFA accepts, or -1 when no prefix (not even the empty one) is accepted.
func (a *Automaton) LongestPrefix(input string) int {
	cur := a.start
	best := -1
	if a.IsAccepting(cur) {
		best = 0
	}
	for i, c := range input {
		next, ok := a.step(cur, Literal(c))
		if !ok {
			break
		}
		cur = next
		if a.IsAccepting(cur) {
			best = i + utf8.RuneLen(c)
		}
	}
	return best
}

func (a *Automaton) step(s State, sym Symbol) (State, bool) {
	for _, t := range a.graph[s] {
		if t.Sym == sym {
			return t.To, true
		}
	}
	return 0, false
}

// String gives a short summary.
func (a *Automaton) String() string {
	return fmt.Sprintf("automaton(%d states, %d transitions, start %d, accepting %v)",
		len(a.states), len(a.delta), a.start, a.Accepting())
}

func sortedKeys(m map[State]struct{}) []State {
	out := make([]State, 0, len(m))
	for s := range m {
		out = append(out, s)
	}
	slices.Sort(out)
	return out
}
