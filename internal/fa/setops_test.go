package fa_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"regexfa/internal/fa"
	"regexfa/internal/regexlib"
)

func dfaOf(t *testing.T, pattern string) *fa.Automaton {
	t.Helper()
	re, err := regexlib.Compile(pattern)
	require.NoError(t, err)
	return re.DFA()
}

func TestComplete(t *testing.T) {
	d := dfaOf(t, "ab")
	full := fa.Complete(d, []fa.Symbol{'a', 'b'})

	assert.Equal(t, d.NumStates()+1, full.NumStates())
	assert.True(t, full.IsDeterministic())
	for _, s := range full.States() {
		assert.Len(t, full.TransitionsOf(s), 2)
	}
	for _, s := range []string{"", "a", "ab", "ba", "abab"} {
		assert.Equal(t, d.Simulate(s), full.Simulate(s), s)
	}
}

func TestSetOps(t *testing.T) {
	ab := dfaOf(t, "(a|b)*")
	aplus := dfaOf(t, "a+")

	inter := fa.Intersect(ab, aplus)
	assert.True(t, inter.Simulate("aaa"))
	assert.False(t, inter.Simulate("b"))
	assert.False(t, inter.Simulate(""))

	union := fa.Union(dfaOf(t, "ab"), dfaOf(t, "c*"))
	for _, s := range []string{"ab", "", "ccc"} {
		assert.True(t, union.Simulate(s), s)
	}
	for _, s := range []string{"a", "abc", "cab"} {
		assert.False(t, union.Simulate(s), s)
	}

	comp := fa.Complement(ab)
	assert.True(t, comp.Simulate("ccc"))
	assert.True(t, comp.Simulate("abc"))
	assert.False(t, comp.Simulate("aba"))
	assert.False(t, comp.Simulate(""))

	rev := fa.Reverse(dfaOf(t, "ab*"))
	assert.True(t, rev.Simulate("bba"))
	assert.True(t, rev.Simulate("a"))
	assert.False(t, rev.Simulate("ab"))
}

func TestMinimizeKeepsLanguage(t *testing.T) {
	for _, pat := range []string{"(a|b)*abb", "a(b|c)*d", "(ab|a)*c", "a?b?c?", "(a|b)(a|b)*|a"} {
		t.Run(pat, func(t *testing.T) {
			d := dfaOf(t, pat)
			min := fa.Minimize(d)
			assert.LessOrEqual(t, min.NumStates(), d.NumStates())
			assert.Equal(t, fa.State(0), min.Start())
			assert.True(t, min.IsDeterministic())

			for _, s := range []string{"", "a", "b", "ab", "abb", "aabb", "ad", "abcd", "c", "abc", "ba", "bb"} {
				assert.Equal(t, d.Simulate(s), min.Simulate(s), "input %q", s)
			}
			// minimizing twice changes nothing
			assert.Equal(t, min.NumStates(), fa.Minimize(min).NumStates())
		})
	}
}

func TestMinimizeDropsDeadStates(t *testing.T) {
	d := fa.New()
	d.SetStart(0)
	d.AddAccepting(1)
	d.AddState(2)
	d.AddState(3) // unreachable
	d.AddTransition(fa.Transition{Sym: 'a', From: 0, To: 1})
	d.AddTransition(fa.Transition{Sym: 'b', From: 0, To: 2})
	d.AddTransition(fa.Transition{Sym: 'b', From: 2, To: 2})
	d.AddTransition(fa.Transition{Sym: 'a', From: 3, To: 1})

	min := fa.Minimize(d)
	assert.Equal(t, 2, min.NumStates())
	assert.True(t, min.Simulate("a"))
	assert.False(t, min.Simulate("b"))

	empty := fa.New()
	empty.SetStart(5)
	empty.AddTransition(fa.Transition{Sym: 'a', From: 5, To: 5})
	min = fa.Minimize(empty)
	assert.Equal(t, 1, min.NumStates())
	assert.Empty(t, min.Accepting())
	_, ok := min.ToPattern()
	assert.False(t, ok)
}
