package driver

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/tinyrange/sysy/internal/ast"
	"github.com/tinyrange/sysy/internal/config"
	"github.com/tinyrange/sysy/internal/errors"
	"github.com/tinyrange/sysy/internal/types"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type testRun struct {
	code   int
	stdout string
	stderr string
}

func run(t *testing.T, cfg *config.Config, path string) testRun {
	t.Helper()

	if cfg == nil {
		cfg = config.Default()
	}
	cfg.Color = false

	var stdout, stderr bytes.Buffer
	code := New(cfg, &stdout, &stderr).Run(path)
	return testRun{
		code:   code,
		stdout: stdout.String(),
		stderr: stderr.String(),
	}
}

func writeSource(t *testing.T, code string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "prog.sy")
	require.NoError(t, os.WriteFile(path, []byte(code), 0o644))
	return path
}

func TestRun_Success(t *testing.T) {

	t.Parallel()

	path := writeSource(t, "int main(){ return 1+2*3; }")

	result := run(t, nil, path)

	assert.Equal(t, errors.ExitOK, result.code)
	assert.Equal(t,
		"CompUnit { FuncDef { FuncType { int }, main, Block { "+
			"Return { AddExp { Number { 1 } + MulExp { Number { 2 } * Number { 3 } } } } "+
			"} } }\n",
		result.stdout,
	)
	assert.Empty(t, result.stderr)
}

func TestRun_MissingFile(t *testing.T) {

	t.Parallel()

	path := filepath.Join(t.TempDir(), "missing.sy")

	result := run(t, nil, path)

	assert.Equal(t, errors.ExitIO, result.code)
	assert.Empty(t, result.stdout)
	assert.True(t, strings.HasPrefix(result.stderr, "error: cannot read "+path), result.stderr)
}

func TestRun_ParseError(t *testing.T) {

	t.Parallel()

	path := writeSource(t, "int main() {\n    return 1\n}\n")

	result := run(t, nil, path)

	assert.Equal(t, errors.ExitParse, result.code)
	assert.Empty(t, result.stdout)
	assert.Equal(t,
		"error: "+path+":3:1: expected ';', got '}'\n"+
			"    }\n"+
			"    ^\n",
		result.stderr,
	)
}

func TestRun_ParseErrorExcerpt(t *testing.T) {

	t.Parallel()

	path := writeSource(t, "int main() {\n\treturn 1 & 2;\n}\n")

	result := run(t, nil, path)

	assert.Equal(t, errors.ExitParse, result.code)
	assert.Equal(t,
		"error: "+path+":2:11: illegal token \"&\"\n"+
			"    \treturn 1 & 2;\n"+
			"    \t         ^\n",
		result.stderr,
	)
}

func TestExcerpt(t *testing.T) {

	t.Parallel()

	line, caret, ok := excerpt("a\n\tx = 你好 + @;", 2, 11)
	require.True(t, ok)
	assert.Equal(t, "\tx = 你好 + @;", line)
	assert.Equal(t, "\t"+strings.Repeat(" ", 11)+"^", caret)

	line, caret, ok = excerpt("ab\r\n", 1, 10)
	require.True(t, ok)
	assert.Equal(t, "ab", line)
	assert.Equal(t, "  ^", caret)

	_, _, ok = excerpt("ab", 3, 1)
	assert.False(t, ok)
}

func TestRun_MaxDepth(t *testing.T) {

	t.Parallel()

	path := writeSource(t, "int main() { return ((((((1)))))); }")

	cfg := config.Default()
	cfg.MaxDepth = 4

	result := run(t, cfg, path)
	assert.Equal(t, errors.ExitParse, result.code)
	assert.Empty(t, result.stdout)
	assert.Contains(t, result.stderr, "nesting exceeds maximum depth of 4")

	result = run(t, nil, path)
	assert.Equal(t, errors.ExitOK, result.code)
}

func TestRun_LongOperatorChain(t *testing.T) {

	t.Parallel()

	path := writeSource(t, "int main() { return 1"+strings.Repeat("+1", 100_000)+"; }")

	result := run(t, nil, path)
	assert.Equal(t, errors.ExitParse, result.code)
	assert.Empty(t, result.stdout)
	assert.Contains(t, result.stderr, "nesting exceeds maximum depth of 1024")
}

func TestRun_Formats(t *testing.T) {

	t.Parallel()

	path := writeSource(t, "void f() { return; }")

	t.Run("json", func(t *testing.T) {

		t.Parallel()

		cfg := config.Default()
		cfg.Format = config.FormatJSON

		result := run(t, cfg, path)
		require.Equal(t, errors.ExitOK, result.code)
		assert.True(t, strings.HasSuffix(result.stdout, "\n"))
		assert.JSONEq(t,
			`{"kind": "CompUnit", "children": [
              {"kind": "FuncDef", "children": [
                {"kind": "FuncType", "children": ["void"]},
                "f",
                {"kind": "Block", "children": [{"kind": "Return"}]}
              ]}
            ]}`,
			result.stdout,
		)
	})

	t.Run("json-indent", func(t *testing.T) {

		t.Parallel()

		cfg := config.Default()
		cfg.Format = config.FormatIndentJSON
		cfg.Width = 20

		result := run(t, cfg, path)
		require.Equal(t, errors.ExitOK, result.code)
		assert.True(t, strings.HasPrefix(result.stdout, "{\n  \"kind\": \"CompUnit\","), result.stdout)
		assert.JSONEq(t,
			`{"kind": "CompUnit", "children": [
              {"kind": "FuncDef", "children": [
                {"kind": "FuncType", "children": ["void"]},
                "f",
                {"kind": "Block", "children": [{"kind": "Return"}]}
              ]}
            ]}`,
			result.stdout,
		)
	})

	t.Run("pretty", func(t *testing.T) {

		t.Parallel()

		cfg := config.Default()
		cfg.Format = config.FormatPretty
		cfg.Width = 1000

		result := run(t, cfg, path)
		require.Equal(t, errors.ExitOK, result.code)
		assert.Equal(t,
			"CompUnit { FuncDef { FuncType { void }, f, Block { Return { } } } }\n",
			result.stdout,
		)
	})
}

func TestRun_DebugLogging(t *testing.T) {

	t.Parallel()

	path := writeSource(t, "int x; int main() { return x; }")

	cfg := config.Default()
	cfg.LogLevel = "debug"

	result := run(t, cfg, path)
	require.Equal(t, errors.ExitOK, result.code)
	assert.Contains(t, result.stderr, "parsed")
	assert.Contains(t, result.stderr, "functions=1")
	assert.NotContains(t, result.stdout, "parsed")
}

func TestRender_Malformed(t *testing.T) {

	t.Parallel()

	program := &ast.CompUnit{
		Units: []ast.Unit{
			&ast.FuncDef{Type: types.Int, Name: "main"},
		},
	}

	cfg := config.Default()
	cfg.Color = false

	var stdout, stderr bytes.Buffer
	d := New(cfg, &stdout, &stderr)

	_, err := d.render(program)
	require.Error(t, err)
	assert.Equal(t, errors.ExitMalformed, errors.ExitCode(err))

	d.report("prog.sy", "", err)
	assert.Equal(t, "error: internal error: malformed FuncDef node: missing body\n", stderr.String())
	assert.Empty(t, stdout.String())
}
