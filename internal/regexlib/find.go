package regexlib

import "unicode/utf8"

// Match is a half-open byte range [Start, End) of the searched text.
type Match struct {
	Start, End int
}

// FindAt returns the longest match starting exactly at pos, or false.
func (r *Regex) FindAt(text string, pos int) (Match, bool) {
	n := r.dfa.LongestPrefix(text[pos:])
	if n < 0 {
		return Match{}, false
	}
	return Match{Start: pos, End: pos + n}, true
}

// FindAll returns the leftmost-longest non-overlapping non-empty matches in
// text.
func (r *Regex) FindAll(text string) []Match {
	var out []Match
	for i := 0; i < len(text); {
		m, ok := r.FindAt(text, i)
		if !ok || m.End == m.Start {
			_, sz := utf8.DecodeRuneInString(text[i:])
			i += sz
			continue
		}
		out = append(out, m)
		i = m.End
	}
	return out
}

// FindAllString is FindAll returning the matched substrings.
func (r *Regex) FindAllString(text string) []string {
	matches := r.FindAll(text)
	out := make([]string, len(matches))
	for i, m := range matches {
		out[i] = text[m.Start:m.End]
	}
	return out
}
