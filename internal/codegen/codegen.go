// Package codegen turns a DFA into a standalone Go matcher function.
package codegen

import (
	"errors"
	"fmt"
	"go/token"
	"io"

	"github.com/dave/jennifer/jen"

	"regexfa/internal/fa"
)

var (
	ErrNotDeterministic = errors.New("automaton is not deterministic")
	ErrBadIdentifier    = errors.New("not a valid Go identifier")
)

const (
	inputName = "input"
	stateName = "state"
	indexName = "i"
)

// Options controls the generated file.
type Options struct {
	Package string // package clause of the generated file
	Name    string // function prefix; the matcher is <Name>MatchString
	Pattern string // shown in comments, optional
}

// FuncName is the name of the generated matcher.
func (o Options) FuncName() string { return o.Name + "MatchString" }

func (o Options) validate() error {
	if !token.IsIdentifier(o.Package) {
		return fmt.Errorf("package %q: %w", o.Package, ErrBadIdentifier)
	}
	if !token.IsIdentifier(o.FuncName()) || o.Name == "" {
		return fmt.Errorf("name %q: %w", o.Name, ErrBadIdentifier)
	}
	return nil
}

// Generate builds a file holding
//
//	func <Name>MatchString(input string) bool
//
// which walks d one byte at a time through a switch per state.
func Generate(d *fa.Automaton, opts Options) (*jen.File, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}
	if !d.IsDeterministic() {
		return nil, ErrNotDeterministic
	}

	f := jen.NewFile(opts.Package)
	f.HeaderComment("Code generated by regexfa. DO NOT EDIT.")

	fn := opts.FuncName()
	if opts.Pattern != "" {
		f.Comment(fmt.Sprintf("%s reports whether input matches %s.", fn, opts.Pattern))
	} else {
		f.Comment(fmt.Sprintf("%s reports whether the automaton accepts input.", fn))
	}
	f.Func().Id(fn).
		Params(jen.Id(inputName).String()).
		Params(jen.Bool()).
		Block(matchBody(d)...)
	return f, nil
}

func matchBody(d *fa.Automaton) []jen.Code {
	var states []jen.Code
	for _, s := range d.States() {
		out := d.TransitionsOf(s)
		if len(out) == 0 {
			states = append(states, jen.Case(jen.Lit(int(s))).Block(jen.Return(jen.False())))
			continue
		}
		syms := make([]jen.Code, 0, len(out)+1)
		for _, t := range out {
			syms = append(syms, jen.Case(jen.LitRune(t.Sym.Rune())).Block(
				jen.Id(stateName).Op("=").Lit(int(t.To)),
			))
		}
		syms = append(syms, jen.Default().Block(jen.Return(jen.False())))
		states = append(states, jen.Case(jen.Lit(int(s))).Block(
			jen.Switch(jen.Id(inputName).Index(jen.Id(indexName))).Block(syms...),
		))
	}

	body := []jen.Code{
		jen.Id(stateName).Op(":=").Lit(int(d.Start())),
		jen.For(
			jen.Id(indexName).Op(":=").Lit(0),
			jen.Id(indexName).Op("<").Len(jen.Id(inputName)),
			jen.Id(indexName).Op("++"),
		).Block(
			jen.Switch(jen.Id(stateName)).Block(states...),
		),
	}

	accepting := d.Accepting()
	if len(accepting) == 0 {
		return append(body, jen.Return(jen.False()))
	}
	vals := make([]jen.Code, len(accepting))
	for i, s := range accepting {
		vals[i] = jen.Lit(int(s))
	}
	return append(body,
		jen.Switch(jen.Id(stateName)).Block(
			jen.Case(vals...).Block(jen.Return(jen.True())),
		),
		jen.Return(jen.False()),
	)
}

// Render writes the generated file to w.
func Render(w io.Writer, d *fa.Automaton, opts Options) error {
	f, err := Generate(d, opts)
	if err != nil {
		return err
	}
	return f.Render(w)
}

// WriteFile generates the matcher and saves it to path.
func WriteFile(path string, d *fa.Automaton, opts Options) error {
	f, err := Generate(d, opts)
	if err != nil {
		return err
	}
	if err := f.Save(path); err != nil {
		return fmt.Errorf("failed to save file: %w", err)
	}
	return nil
}
