package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "regexfa.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	path := writeFile(t, `
minimize: true
graph: out.gv
codegen:
  output: match.go
  name: Ident
`)
	cfg, err := Load(path)
	require.NoError(t, err)

	assert.True(t, cfg.Minimize)
	assert.False(t, cfg.Verbose)
	assert.Equal(t, "out.gv", cfg.Graph)
	assert.Equal(t, Codegen{Output: "match.go", Package: "main", Name: "Ident"}, cfg.Codegen)
}

func TestLoadEmptyKeepsDefaults(t *testing.T) {
	cfg, err := Load(writeFile(t, ""))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name string
		body string
		is   error
	}{
		{"unknown key", "minimise: true\n", nil},
		{"bad type", "minimize: often\n", nil},
		{"missing package", "codegen:\n  output: x.go\n  package: \"\"\n", ErrInvalid},
		{"missing name", "codegen:\n  output: x.go\n  name: \"\"\n", ErrInvalid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeFile(t, tt.body))
			require.Error(t, err)
			if tt.is != nil {
				assert.ErrorIs(t, err, tt.is)
			}
		})
	}

	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestValidate(t *testing.T) {
	assert.NoError(t, Default().Validate())
	assert.NoError(t, Config{}.Validate(), "no output means nothing to check")
	assert.ErrorIs(t, Config{Codegen: Codegen{Output: "a.go", Name: "X"}}.Validate(), ErrInvalid)
}
