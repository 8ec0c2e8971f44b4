package fa

import "strings"

// EmptyOperand is the pattern operand that matches only the empty string.
const EmptyOperand = "#"

// ToPattern turns a DFA into an equivalent pattern by eliminating states one
// by one (Kleene's construction). It returns false when d accepts nothing.
// The result uses only literals, grouping, '|', '*' and '#'.
func (d *Automaton) ToPattern() (string, bool) {
	states := d.States()
	n := len(states)
	if n == 0 {
		return "", false
	}
	index := make(map[State]int, n)
	for i, s := range states {
		index[s] = i
	}

	// R[i][j] is the pattern of paths i -> j; "" means no path.
	R := make([][]string, n)
	for i := range R {
		R[i] = make([]string, n)
		R[i][i] = EmptyOperand
	}

	// 1. direct edges
	for _, t := range d.delta {
		i, j := index[t.From], index[t.To]
		lit := EmptyOperand
		if !t.Sym.IsEpsilon() {
			lit = t.Sym.String()
		}
		R[i][j] = alt(R[i][j], lit)
	}

	// 2. allow paths through state k, for every k in turn
	for k := 0; k < n; k++ {
		loop := group(R[k][k]) + "*"
		next := make([][]string, n)
		for i := 0; i < n; i++ {
			next[i] = append([]string(nil), R[i]...)
			if R[i][k] == "" {
				continue
			}
			for j := 0; j < n; j++ {
				if R[k][j] == "" {
					continue
				}
				next[i][j] = alt(R[i][j], group(R[i][k])+loop+group(R[k][j]))
			}
		}
		R = next
	}

	// 3. union over accepting states
	start := index[d.start]
	var parts []string
	for _, f := range d.Accepting() {
		if p := R[start][index[f]]; p != "" {
			parts = append(parts, p)
		}
	}
	if len(parts) == 0 {
		return "", false
	}
	return strings.Join(parts, "|"), true
}

func alt(a, b string) string {
	switch {
	case a == "":
		return b
	case a == b:
		return a
	}
	return a + "|" + b
}

func group(s string) string {
	if len(s) == 1 {
		return s
	}
	return "(" + s + ")"
}
