package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"regexfa/internal/codegen"
	"regexfa/internal/config"
	"regexfa/internal/dot"
	"regexfa/internal/fa"
	"regexfa/internal/fatext"
	"regexfa/internal/logger"
	"regexfa/internal/regexlib"
)

func main() {
	if err := run(context.Background(), os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		log.Fatal(err)
	}
}

type options struct {
	input   string
	specify bool
	nfa     bool
	png     string
	cfgPath string
	cfg     config.Config
	tests   []string
}

func parseFlags(args []string, stderr io.Writer) (*options, error) {
	fs := flag.NewFlagSet("regexfa", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintln(stderr, "usage: regexfa [-i file] [-s] [-g out.gv] [-min] [-go out.go] [strings...]")
		fs.PrintDefaults()
	}

	o := &options{}
	def := config.Default()
	var (
		graph    = fs.String("g", "", "write the automaton as Graphviz to this file (- for stdout)")
		minimize = fs.Bool("min", false, "minimize the DFA")
		verbose  = fs.Bool("v", false, "log every construction step")
		output   = fs.String("go", "", "write a generated Go matcher to this file")
		pkg      = fs.String("pkg", def.Codegen.Package, "package of the generated matcher")
		name     = fs.String("name", def.Codegen.Name, "name prefix of the generated matcher")
	)
	fs.StringVar(&o.input, "i", "", "read the pattern (or automaton with -s) from this file instead of stdin")
	fs.BoolVar(&o.specify, "s", false, "input is an automaton in text format, not a pattern")
	fs.BoolVar(&o.nfa, "nfa", false, "graph the Thompson NFA instead of the DFA")
	fs.StringVar(&o.png, "png", "", "render the graph to this PNG file via dot -Tpng")
	fs.StringVar(&o.cfgPath, "config", "", "YAML config file; flags given explicitly override it")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	o.tests = fs.Args()

	o.cfg = def
	if o.cfgPath != "" {
		cfg, err := config.Load(o.cfgPath)
		if err != nil {
			return nil, err
		}
		o.cfg = cfg
	}
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "g":
			o.cfg.Graph = *graph
		case "min":
			o.cfg.Minimize = *minimize
		case "v":
			o.cfg.Verbose = *verbose
		case "go":
			o.cfg.Codegen.Output = *output
		case "pkg":
			o.cfg.Codegen.Package = *pkg
		case "name":
			o.cfg.Codegen.Name = *name
		}
	})
	return o, o.cfg.Validate()
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	o, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}
	lg := logger.New(o.cfg.Verbose)
	lg.SetOutput(stderr)
	in := bufio.NewScanner(stdin)

	var (
		nfa, dfa *fa.Automaton
		pattern  string
	)
	if o.specify {
		nfa, err = readAutomaton(o.input, stdin, lg)
		if err != nil {
			return err
		}
		dfa = nfa.Determinize()
		if o.cfg.Minimize {
			dfa = fa.Minimize(dfa)
		}
	} else {
		pattern, err = readPattern(o.input, in, stdout)
		if err != nil {
			return err
		}
		re, err := regexlib.Compile(pattern, regexlib.WithLogger(lg), regexlib.WithMinimize(o.cfg.Minimize))
		if err != nil {
			return err
		}
		nfa, dfa = re.NFA(), re.DFA()
	}

	if err := fatext.Write(stdout, dfa); err != nil {
		return err
	}

	graphed := dfa
	if o.nfa {
		graphed = nfa
	}
	if o.cfg.Graph != "" {
		if err := dot.WriteFile(o.cfg.Graph, graphed); err != nil {
			return err
		}
		lg.Log("DOT written to %s", o.cfg.Graph)
	}
	if o.png != "" {
		if err := dot.RenderPNG(ctx, o.png, graphed); err != nil {
			return err
		}
		lg.Log("PNG written to %s", o.png)
	}

	if out := o.cfg.Codegen; out.Output != "" {
		opts := codegen.Options{Package: out.Package, Name: out.Name, Pattern: pattern}
		if err := codegen.WriteFile(out.Output, dfa, opts); err != nil {
			return err
		}
		lg.Log("matcher %s written to %s", opts.FuncName(), out.Output)
	}

	tests := o.tests
	if len(tests) == 0 && o.input == "" && !o.specify {
		// interactive: one test string after the pattern
		fmt.Fprintln(stdout, "Enter a string to test.")
		if in.Scan() {
			tests = []string{strings.TrimSpace(in.Text())}
		}
	}
	for _, s := range tests {
		verdict := "rejected"
		if dfa.Simulate(s) {
			verdict = "accepted"
		}
		fmt.Fprintf(stdout, "%q: %s\n", s, verdict)
	}
	return in.Err()
}

func readPattern(path string, in *bufio.Scanner, stdout io.Writer) (string, error) {
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return "", err
		}
		return strings.TrimSpace(string(data)), nil
	}
	fmt.Fprintln(stdout, "Enter the pattern you want to compile.")
	if !in.Scan() {
		if err := in.Err(); err != nil {
			return "", err
		}
		return "", io.ErrUnexpectedEOF
	}
	return strings.TrimSpace(in.Text()), nil
}

func readAutomaton(path string, stdin io.Reader, lg *logger.Logger) (*fa.Automaton, error) {
	var (
		a    *fa.Automaton
		errs []error
	)
	if path != "" {
		a, errs = fatext.ReadFile(path)
	} else {
		a, errs = fatext.Read(stdin)
	}
	for _, err := range errs {
		lg.Warn("%v", err)
	}
	if a == nil {
		return nil, errors.Join(errs...)
	}
	return a, nil
}
