package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tinyrange/sysy/internal/config"
	"github.com/tinyrange/sysy/internal/errors"
)

func execute(t *testing.T, args ...string) (int, string, error) {
	t.Helper()

	exitCode := -1
	cmd := newRootCommand(&exitCode)

	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return exitCode, stdout.String(), err
}

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestRootCommand_Run(t *testing.T) {

	t.Parallel()

	src := writeTemp(t, "prog.sy", "int main() { return 0; }")

	code, stdout, err := execute(t, "--no-color", src)
	require.NoError(t, err)
	assert.Equal(t, errors.ExitOK, code)
	assert.Equal(t, "CompUnit { FuncDef { FuncType { int }, main, Block { Return { Number { 0 } } } } }\n", stdout)
}

func TestRootCommand_Usage(t *testing.T) {

	t.Parallel()

	_, _, err := execute(t)
	require.Error(t, err)

	_, _, err = execute(t, "a.sy", "b.sy")
	require.Error(t, err)

	_, _, err = execute(t, "--format", "xml", "a.sy")
	require.Error(t, err)

	var configErr *errors.ConfigError
	require.ErrorAs(t, err, &configErr)
	assert.Equal(t, errors.ExitUsage, errors.ExitCode(err))
}

func TestRootCommand_FlagsOverrideConfig(t *testing.T) {

	t.Parallel()

	src := writeTemp(t, "prog.sy", "int main() { return 0; }")
	cfgPath := writeTemp(t, "sysyc.toml", "format = \"json\"\nmax_depth = 2\n")

	// max_depth = 2 is too shallow for a function body with a return
	code, stdout, err := execute(t, "--config", cfgPath, "--no-color", src)
	require.NoError(t, err)
	assert.Equal(t, errors.ExitParse, code)
	assert.Empty(t, stdout)

	code, stdout, err = execute(t, "--config", cfgPath, "--max-depth", "16", "--no-color", src)
	require.NoError(t, err)
	assert.Equal(t, errors.ExitOK, code)
	assert.JSONEq(t,
		`{"kind": "CompUnit", "children": [
          {"kind": "FuncDef", "children": [
            {"kind": "FuncType", "children": ["int"]},
            "main",
            {"kind": "Block", "children": [
              {"kind": "Return", "children": [{"kind": "Number", "children": ["0"]}]}
            ]}
          ]}
        ]}`,
		stdout,
	)
}

func TestLoadConfig_Defaults(t *testing.T) {

	t.Parallel()

	exitCode := 0
	cmd := newRootCommand(&exitCode)
	require.NoError(t, cmd.ParseFlags([]string{"--width", "120"}))

	cfg, err := loadConfig(cmd, options{width: 120})
	require.NoError(t, err)

	expected := config.Default()
	expected.Width = 120
	assert.Equal(t, expected, cfg)
}
