package main

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := loadConfig(t.TempDir(), "", nil)
	require.NoError(t, err)

	assert.Equal(t, "atmat", cfg.Root)
	assert.Equal(t, filepath.Join("docs", "m"), cfg.Dest)
	assert.Equal(t, "rst", cfg.Format)
	assert.Equal(t, defaultModules, cfg.Modules)
	assert.True(t, cfg.Recursive)
	assert.Equal(t, "abort", cfg.ScriptFailure)
	assert.Equal(t, ".docmatignore", cfg.IgnoreFile)
	assert.False(t, cfg.NoColor)
}

func TestLoadConfigFile(t *testing.T) {
	dir := t.TempDir()
	content := `
root: toolbox
format: md
modules:
  - first
  - second
recursive: false
script_failure: skip
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "docmat.yaml"), []byte(content), 0o644))

	cfg, err := loadConfig(dir, "", nil)
	require.NoError(t, err)

	assert.Equal(t, "toolbox", cfg.Root)
	assert.Equal(t, "md", cfg.Format)
	assert.Equal(t, []string{"first", "second"}, cfg.Modules)
	assert.False(t, cfg.Recursive)
	assert.Equal(t, "skip", cfg.ScriptFailure)
	assert.Equal(t, filepath.Join("docs", "m"), cfg.Dest)
}

func TestLoadConfigFlagsWin(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "docmat.yaml"), []byte("format: myst\nmodules: [a]\n"), 0o644))

	flags := newRootCmd(io.Discard, io.Discard).PersistentFlags()
	require.NoError(t, flags.Parse([]string{"--format", "rst", "-m", "b", "-m", "c"}))

	cfg, err := loadConfig(dir, "", flags)
	require.NoError(t, err)
	assert.Equal(t, "rst", cfg.Format)
	assert.Equal(t, []string{"b", "c"}, cfg.Modules)
}

func TestLoadConfigUnchangedFlagsKeepFileValues(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "docmat.yaml"), []byte("dest: site\n"), 0o644))

	flags := newRootCmd(io.Discard, io.Discard).PersistentFlags()
	require.NoError(t, flags.Parse(nil))

	cfg, err := loadConfig(dir, "", flags)
	require.NoError(t, err)
	assert.Equal(t, "site", cfg.Dest)
	assert.Equal(t, defaultModules, cfg.Modules)
}

func TestLoadConfigValidation(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{name: "empty root", content: "root: \"\"\n", wantErr: "root must not be empty"},
		{name: "empty dest", content: "dest: \" \"\n", wantErr: "dest must not be empty"},
		{name: "no modules", content: "modules: []\n", wantErr: "at least one module is required"},
		{name: "bad format", content: "format: html\n", wantErr: "unknown markup dialect"},
		{name: "bad policy", content: "script_failure: retry\n", wantErr: "invalid script failure policy"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			require.NoError(t, os.WriteFile(filepath.Join(dir, "docmat.yaml"), []byte(tt.content), 0o644))

			_, err := loadConfig(dir, "", nil)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoadConfigMalformedFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "docmat.yaml"), []byte("format: [unclosed\n"), 0o644))

	_, err := loadConfig(dir, "", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestResolve(t *testing.T) {
	base := filepath.Join(string(filepath.Separator), "src")
	assert.Equal(t, filepath.Join(base, "atmat"), resolve(base, "atmat"))

	abs := filepath.Join(string(filepath.Separator), "out", "..", "docs")
	assert.Equal(t, filepath.Join(string(filepath.Separator), "docs"), resolve(base, abs))
}
