// Package dot renders automata as Graphviz graphs.
package dot

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"

	"regexfa/internal/fa"
)

// Export prints the Graphviz form of a to w. Accepting states are double
// circles and epsilon edges are labelled ε.
func Export(w io.Writer, a *fa.Automaton) error {
	var buf bytes.Buffer
	fmt.Fprintln(&buf, "digraph G {")
	fmt.Fprintln(&buf, "    rankdir=LR;")

	for _, s := range a.States() {
		shape := "circle"
		if a.IsAccepting(s) {
			shape = "doublecircle"
		}
		fmt.Fprintf(&buf, "    q%d [shape=%s];\n", s, shape)
	}
	for _, t := range a.Transitions() {
		fmt.Fprintf(&buf, "    q%d -> q%d [label=\"%s\"];\n", t.From, t.To, t.Sym)
	}
	fmt.Fprintf(&buf, "    _start [shape=point]; _start -> q%d;\n", a.Start())

	fmt.Fprintln(&buf, "}")
	_, err := w.Write(buf.Bytes())
	return err
}

// WriteFile exports a to path, or to stdout when path is "-".
func WriteFile(path string, a *fa.Automaton) error {
	if path == "-" {
		return Export(os.Stdout, a)
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := Export(f, a); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// RenderPNG pipes the graph of a through `dot -Tpng` into path.
func RenderPNG(ctx context.Context, path string, a *fa.Automaton) error {
	var buf bytes.Buffer
	if err := Export(&buf, a); err != nil {
		return err
	}
	cmd := exec.CommandContext(ctx, "dot", "-Tpng", "-o", path)
	cmd.Stdin = &buf
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("dot failed: %w", err)
	}
	return nil
}
