package fa

import (
	"slices"
	"strconv"
	"strings"
)

// State identifies an automaton state.
type State int

// StateSet is a sorted, duplicate-free set of states. Two sets holding the
// same states have the same Key, so a StateSet can identify a DFA state.
type StateSet struct {
	ids []State
}

// NewStateSet builds a canonical set from states in any order.
func NewStateSet(states ...State) StateSet {
	ids := slices.Clone(states)
	slices.Sort(ids)
	return StateSet{ids: slices.Compact(ids)}
}

func (s StateSet) Len() int { return len(s.ids) }

func (s StateSet) IsEmpty() bool { return len(s.ids) == 0 }

// States returns the members in ascending order.
func (s StateSet) States() []State { return slices.Clone(s.ids) }

func (s StateSet) Contains(st State) bool {
	_, ok := slices.BinarySearch(s.ids, st)
	return ok
}

func (s StateSet) Equal(o StateSet) bool { return slices.Equal(s.ids, o.ids) }

// Union merges two sets.
func (s StateSet) Union(o StateSet) StateSet {
	out := make([]State, 0, len(s.ids)+len(o.ids))
	i, j := 0, 0
	for i < len(s.ids) && j < len(o.ids) {
		switch {
		case s.ids[i] < o.ids[j]:
			out = append(out, s.ids[i])
			i++
		case s.ids[i] > o.ids[j]:
			out = append(out, o.ids[j])
			j++
		default:
			out = append(out, s.ids[i])
			i++
			j++
		}
	}
	out = append(out, s.ids[i:]...)
	out = append(out, o.ids[j:]...)
	return StateSet{ids: out}
}

// IsSubset reports whether every member of s is in o.
func (s StateSet) IsSubset(o StateSet) bool {
	for _, st := range s.ids {
		if !o.Contains(st) {
			return false
		}
	}
	return true
}

// Key is the map key for the set.
func (s StateSet) Key() string {
	var b strings.Builder
	for i, st := range s.ids {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.Itoa(int(st)))
	}
	return b.String()
}

func (s StateSet) String() string { return "{" + s.Key() + "}" }
