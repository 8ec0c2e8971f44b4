// Package regexlib compiles patterns over the fa alphabet into automata:
// infix to postfix, Thompson construction, then subset construction.
package regexlib

import (
	"fmt"

	"regexfa/internal/fa"
	"regexfa/internal/logger"
)

// Regex is a compiled pattern.
type Regex struct {
	pattern string
	postfix string
	nfa     *fa.Automaton
	dfa     *fa.Automaton
}

// Option configures Compile.
type Option func(*compileOptions)

type compileOptions struct {
	log      *logger.Logger
	minimize bool
	builder  *Builder
}

// WithLogger sends diagnostics and progress to log.
func WithLogger(log *logger.Logger) Option {
	return func(o *compileOptions) { o.log = log }
}

// WithMinimize minimizes the DFA after subset construction.
func WithMinimize(on bool) Option {
	return func(o *compileOptions) { o.minimize = on }
}

// WithBuilder draws NFA state ids from b instead of a fresh Builder.
func WithBuilder(b *Builder) Option {
	return func(o *compileOptions) { o.builder = b }
}

// Compile runs the whole pipeline. On any syntax error no automaton is
// returned.
func Compile(pattern string, opts ...Option) (*Regex, error) {
	o := compileOptions{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.builder == nil {
		o.builder = NewBuilder()
	}
	log := o.log

	log.Section("Postfix")
	postfix, err := Postfix(pattern, log)
	if err != nil {
		return nil, fmt.Errorf("pattern %q: %w", pattern, err)
	}
	log.Log("%q -> %q", pattern, postfix)

	log.Section("Thompson NFA")
	nfa, err := o.builder.Build(postfix)
	if err != nil {
		return nil, fmt.Errorf("pattern %q: %w", pattern, err)
	}
	log.Log("%v", nfa)

	log.Section("Subset construction")
	sub := fa.SubsetConstruction(nfa)
	if log.Enabled() {
		for i, set := range sub.Sets {
			log.Log("D%d = %v", i, set)
		}
	}
	dfa := sub.DFA
	log.Log("%v", dfa)

	if o.minimize {
		log.Section("Minimization")
		dfa = fa.Minimize(dfa)
		log.Log("%v", dfa)
	}

	return &Regex{pattern: pattern, postfix: postfix, nfa: nfa, dfa: dfa}, nil
}

// MustCompile is like Compile but panics on error.
func MustCompile(pattern string, opts ...Option) *Regex {
	r, err := Compile(pattern, opts...)
	if err != nil {
		panic(err)
	}
	return r
}

// MatchString reports whether the whole of s is in the pattern's language.
func (r *Regex) MatchString(s string) bool { return r.dfa.Simulate(s) }

func (r *Regex) Pattern() string { return r.pattern }
func (r *Regex) Postfix() string { return r.postfix }
func (r *Regex) NFA() *fa.Automaton { return r.nfa }
func (r *Regex) DFA() *fa.Automaton { return r.dfa }
func (r *Regex) String() string { return r.pattern }
