package fa

import (
	"slices"
	"strconv"
	"strings"
)

// Minimize returns the smallest DFA accepting the same language as d.
// Unreachable states and states that cannot reach an accepting state are
// dropped first, so a missing transition and a transition into a dead state
// mean the same thing. The remaining states are split, starting from
// {accepting, non-accepting}, until every block agrees on the block each
// symbol leads to. The start state of the result is 0.
func Minimize(d *Automaton) *Automaton {
	live := d.live()
	states := make([]State, 0, len(live))
	for _, s := range d.States() {
		if _, ok := live[s]; ok {
			states = append(states, s)
		}
	}
	if len(states) == 0 {
		// empty language: a lone rejecting start state
		out := New()
		out.SetStart(0)
		return out
	}
	alpha := d.Symbols()

	// --- 1. initial partition ----------------------------------------------
	block := make(map[State]int, len(states))
	for _, s := range states {
		if d.IsAccepting(s) {
			block[s] = 1
		}
	}

	// --- 2. refine until stable --------------------------------------------
	count := countBlocks(block)
	for {
		sigs := make(map[string]int)
		next := make(map[State]int, len(states))
		for _, s := range states {
			var b strings.Builder
			b.WriteString(strconv.Itoa(block[s]))
			for _, c := range alpha {
				b.WriteByte('|')
				if to, ok := d.step(s, c); ok {
					if _, alive := live[to]; alive {
						b.WriteString(strconv.Itoa(block[to]))
						continue
					}
				}
				b.WriteByte('-')
			}
			sig := b.String()
			id, ok := sigs[sig]
			if !ok {
				id = len(sigs)
				sigs[sig] = id
			}
			next[s] = id
		}
		block = next
		if len(sigs) == count {
			break
		}
		count = len(sigs)
	}

	// --- 3. build the reduced DFA, numbering blocks in BFS order from start --
	number := map[int]State{block[d.start]: 0}
	order := []State{d.start}
	out := New()
	out.SetStart(0)
	for i := 0; i < len(order); i++ {
		rep := order[i]
		from := number[block[rep]]
		if d.IsAccepting(rep) {
			out.AddAccepting(from)
		}
		for _, c := range alpha {
			to, ok := d.step(rep, c)
			if !ok {
				continue
			}
			if _, alive := live[to]; !alive {
				continue
			}
			n, seen := number[block[to]]
			if !seen {
				n = State(len(order))
				number[block[to]] = n
				order = append(order, to)
				out.AddState(n)
			}
			out.AddTransition(Transition{Sym: c, From: from, To: n})
		}
	}
	return out
}

// live returns the states reachable from start that can also reach an
// accepting state. The start state is kept when anything is live at all.
func (a *Automaton) live() map[State]struct{} {
	reach := map[State]struct{}{a.start: {}}
	stack := []State{a.start}
	for len(stack) > 0 {
		s := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, t := range a.graph[s] {
			if _, ok := reach[t.To]; !ok {
				reach[t.To] = struct{}{}
				stack = append(stack, t.To)
			}
		}
	}

	rev := make(map[State][]State)
	for _, t := range a.delta {
		rev[t.To] = append(rev[t.To], t.From)
	}
	co := make(map[State]struct{})
	for s := range a.accepting {
		co[s] = struct{}{}
		stack = append(stack, s)
	}
	for len(stack) > 0 {
		s := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, p := range rev[s] {
			if _, ok := co[p]; !ok {
				co[p] = struct{}{}
				stack = append(stack, p)
			}
		}
	}

	live := make(map[State]struct{})
	for s := range reach {
		if _, ok := co[s]; ok {
			live[s] = struct{}{}
		}
	}
	return live
}

func countBlocks(block map[State]int) int {
	ids := make([]int, 0, len(block))
	for _, b := range block {
		ids = append(ids, b)
	}
	slices.Sort(ids)
	return len(slices.Compact(ids))
}
