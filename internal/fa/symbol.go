package fa

// Symbol is the label of a transition: either Epsilon or a literal from the
// alphabet. The zero value is Epsilon.
type Symbol rune

// Epsilon is the empty symbol. It is never consumed from input.
const Epsilon Symbol = 0

// EpsilonGlyph is how Epsilon is rendered.
const EpsilonGlyph = "ε"

// Literal returns the symbol for c. Callers check InAlphabet first.
func Literal(c rune) Symbol { return Symbol(c) }

func (s Symbol) IsEpsilon() bool { return s == Epsilon }

// Rune returns the literal character, or 0 for Epsilon.
func (s Symbol) Rune() rune { return rune(s) }

func (s Symbol) String() string {
	if s.IsEpsilon() {
		return EpsilonGlyph
	}
	return string(rune(s))
}

// InAlphabet reports whether c is one of the literal symbols the system
// recognizes: ASCII digits and letters.
func InAlphabet(c rune) bool {
	switch {
	case c >= '0' && c <= '9':
		return true
	case c >= 'A' && c <= 'Z':
		return true
	case c >= 'a' && c <= 'z':
		return true
	}
	return false
}

var alphabet = func() []Symbol {
	out := make([]Symbol, 0, 62)
	for c := rune(0); c < 128; c++ {
		if InAlphabet(c) {
			out = append(out, Literal(c))
		}
	}
	return out
}()

// Alphabet returns every literal symbol in ascending order.
func Alphabet() []Symbol {
	out := make([]Symbol, len(alphabet))
	copy(out, alphabet)
	return out
}
