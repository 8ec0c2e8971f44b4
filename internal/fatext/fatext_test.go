package fatext

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"regexfa/internal/fa"
	"regexfa/internal/regexlib"
)

const sample = `// (a|b)*c by hand
0 :: 3
a -> 0
b -> 0
-> 1

1 :: 1
c -> 2
2 => 0
`

func TestRead(t *testing.T) {
	a, errs := Read(strings.NewReader(sample))
	require.Empty(t, errs)
	require.NotNil(t, a)

	assert.Equal(t, fa.State(0), a.Start())
	assert.Equal(t, []fa.State{0, 1, 2}, a.States())
	assert.Equal(t, []fa.State{2}, a.Accepting())
	assert.Equal(t, []fa.Transition{
		{Sym: 'a', From: 0, To: 0},
		{Sym: 'b', From: 0, To: 0},
		{Sym: fa.Epsilon, From: 0, To: 1},
		{Sym: 'c', From: 1, To: 2},
	}, a.Transitions())

	d := a.Determinize()
	assert.True(t, d.Simulate("abbac"))
	assert.True(t, d.Simulate("c"))
	assert.False(t, d.Simulate("ab"))
}

func TestReadStartIsFirstDeclared(t *testing.T) {
	a, errs := Read(strings.NewReader("5 :: 1\n-> 2\n2 => 0\n"))
	require.Empty(t, errs)
	assert.Equal(t, fa.State(5), a.Start())
	assert.Equal(t, []fa.State{2, 5}, a.States())
}

func TestReadAcceptsEpsilonGlyphAndTrailingComments(t *testing.T) {
	a, errs := Read(strings.NewReader("0 :: 2 // start\nε -> 1\n7 -> 1 // digit symbol\n1 => 0\n"))
	require.Empty(t, errs)
	assert.Equal(t, []fa.Transition{
		{Sym: fa.Epsilon, From: 0, To: 1},
		{Sym: '7', From: 0, To: 1},
	}, a.Transitions())
}

func TestReadReportsBadLines(t *testing.T) {
	input := strings.Join([]string{
		"a -> 1",   // 1: orphan
		"0 :: 2",   // 2: declares two, gets one good one
		"a -> 1",   // 3
		"ab -> 1",  // 4: symbol too long
		"! -> 1",   // 5: outside alphabet
		"1 => x",   // 6: garbage
		"1 => 0",   // 7
		"",         // 8
		"1 :: 1",   // 9: missing its transition
	}, "\n")

	a, errs := Read(strings.NewReader(input))
	require.NotNil(t, a)
	require.Len(t, errs, 6)

	lines := make([]int, 0, len(errs))
	for _, err := range errs {
		var le *LineError
		require.ErrorAs(t, err, &le)
		lines = append(lines, le.Line)
	}
	assert.Equal(t, []int{1, 4, 5, 6, 2, 9}, lines)

	assert.ErrorIs(t, errs[0], ErrOrphanTransition)
	assert.ErrorIs(t, errs[1], ErrBadSymbol)
	assert.ErrorIs(t, errs[2], ErrBadSymbol)
	assert.ErrorIs(t, errs[4], ErrTransitionCount)
	assert.ErrorIs(t, errs[5], ErrTransitionCount)

	// the good lines still made it in
	assert.Equal(t, []fa.Transition{{Sym: 'a', From: 0, To: 1}}, a.Transitions())
	assert.Equal(t, []fa.State{1}, a.Accepting())
}

func TestReadEmpty(t *testing.T) {
	a, errs := Read(strings.NewReader("// nothing\n\n"))
	assert.Nil(t, a)
	require.Len(t, errs, 1)
	assert.ErrorIs(t, errs[0], ErrNoStates)
}

func TestWriteLayout(t *testing.T) {
	a := fa.New()
	a.SetStart(3)
	a.AddAccepting(1)
	a.AddTransition(fa.Transition{Sym: 'x', From: 3, To: 1})
	a.AddTransition(fa.Transition{Sym: fa.Epsilon, From: 1, To: 3})

	want := "3 :: 1\nx -> 1\n\n1 => 1\n-> 3\n\n// 2 states, 2 transitions\n"
	assert.Equal(t, want, Format(a))
}

func TestRoundTrip(t *testing.T) {
	for _, pat := range []string{"a(b|c)*d", "(ab|a)*c", "#", "0|1(0|1)*"} {
		t.Run(pat, func(t *testing.T) {
			re := regexlib.MustCompile(pat)
			for _, a := range []*fa.Automaton{re.NFA(), re.DFA()} {
				text := Format(a)
				back, errs := Read(strings.NewReader(text))
				require.Empty(t, errs)

				assert.Equal(t, a.Start(), back.Start())
				assert.Equal(t, a.States(), back.States())
				assert.Equal(t, a.Accepting(), back.Accepting())
				assert.ElementsMatch(t, a.Transitions(), back.Transitions())
				assert.Equal(t, text, Format(back))
			}
		})
	}
}

func TestReadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fa.txt")
	require.NoError(t, os.WriteFile(path, []byte(sample), 0o644))

	a, errs := ReadFile(path)
	require.Empty(t, errs)
	assert.Equal(t, 3, a.NumStates())

	_, errs = ReadFile(filepath.Join(t.TempDir(), "missing.txt"))
	assert.Len(t, errs, 1)
}
