package main

import (
	"bytes"
	"context"
	"errors"
	"flag"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"regexfa/internal/config"
	"regexfa/internal/regexlib"
)

func runCLI(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	err := run(context.Background(), args, strings.NewReader(stdin), &out, &errOut)
	return out.String(), errOut.String(), err
}

func TestInteractive(t *testing.T) {
	out, _, err := runCLI(t, "a(b|c)*d\nabcbd\n")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(out, "Enter the pattern you want to compile.\n0 :: 1\na -> 1\n"))
	assert.Contains(t, out, "Enter a string to test.\n")
	assert.True(t, strings.HasSuffix(out, "\"abcbd\": accepted\n"))
}

func TestPatternFileWithTestStrings(t *testing.T) {
	dir := t.TempDir()
	pat := filepath.Join(dir, "pattern.txt")
	require.NoError(t, os.WriteFile(pat, []byte("(a|b)*abb\n"), 0o644))
	gv := filepath.Join(dir, "out.gv")
	gen := filepath.Join(dir, "match.go")

	out, stderr, err := runCLI(t, "", "-i", pat, "-min", "-v", "-g", gv, "-go", gen, "-pkg", "m", "-name", "ABB", "abb", "ab", "babb")
	require.NoError(t, err)

	assert.Contains(t, out, "// 4 states, 8 transitions\n")
	assert.Contains(t, out, "\"abb\": accepted\n")
	assert.Contains(t, out, "\"ab\": rejected\n")
	assert.Contains(t, out, "\"babb\": accepted\n")
	assert.NotContains(t, out, "Enter")

	assert.Contains(t, stderr, "=== Minimization ===")
	assert.Contains(t, stderr, "DOT written to "+gv)

	graph, err := os.ReadFile(gv)
	require.NoError(t, err)
	assert.Contains(t, string(graph), "rankdir=LR;")

	code, err := os.ReadFile(gen)
	require.NoError(t, err)
	assert.Contains(t, string(code), "package m")
	assert.Contains(t, string(code), "func ABBMatchString(input string) bool")
}

func TestSpecifyFromStdin(t *testing.T) {
	text := "0 :: 2\na -> 1\n-> 1\n1 => 1\nb -> 1\n"
	out, _, err := runCLI(t, text, "-s", "b", "abb", "ba")
	require.NoError(t, err)

	assert.Contains(t, out, "\"b\": accepted\n")
	assert.Contains(t, out, "\"abb\": accepted\n")
	assert.Contains(t, out, "\"ba\": rejected\n")
}

func TestSpecifyReportsBadLines(t *testing.T) {
	_, stderr, err := runCLI(t, "0 => 1\n?? -> 0\n", "-s", "")
	require.NoError(t, err)
	assert.Contains(t, stderr, "[regexfa] warning: line 2:")
	assert.Contains(t, stderr, "line 1: transition count mismatch")

	_, _, err = runCLI(t, "// empty\n", "-s")
	assert.Error(t, err)
}

func TestConfigFileAndOverrides(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "regexfa.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("minimize: true\nverbose: true\n"), 0o644))

	o, err := parseFlags([]string{"-config", cfgPath, "-v=false", "x"}, &bytes.Buffer{})
	require.NoError(t, err)
	assert.True(t, o.cfg.Minimize)
	assert.False(t, o.cfg.Verbose)
	assert.Equal(t, []string{"x"}, o.tests)

	o, err = parseFlags(nil, &bytes.Buffer{})
	require.NoError(t, err)
	assert.Equal(t, config.Default(), o.cfg)

	_, err = parseFlags([]string{"-go", "x.go", "-name", ""}, &bytes.Buffer{})
	assert.ErrorIs(t, err, config.ErrInvalid)
}

func TestErrors(t *testing.T) {
	_, _, err := runCLI(t, "(a\n")
	assert.ErrorIs(t, err, regexlib.ErrUnbalancedParens)

	_, _, err = runCLI(t, "")
	assert.Error(t, err, "no pattern on stdin")

	_, _, err = runCLI(t, "", "-h")
	assert.True(t, errors.Is(err, flag.ErrHelp))
}
