package testutils

import (
	"strings"
	"testing"

	"github.com/k0kubun/pp/v3"
	"github.com/kr/pretty"
	"github.com/stretchr/testify/require"

	"github.com/tinyrange/sysy/internal/ast"
	"github.com/tinyrange/sysy/internal/parser"
)

var printer = newPrinter()

func newPrinter() *pp.PrettyPrinter {
	p := pp.New()
	p.SetColoringEnabled(false)
	return p
}

// AssertEqualWithDiff asserts that two objects are equal.
//
// If the objects are not equal, this function prints a human-readable diff.
func AssertEqualWithDiff(t *testing.T, expected, actual any) {
	t.Helper()

	diff := pretty.Diff(expected, actual)

	if len(diff) != 0 {
		s := strings.Builder{}

		for i, d := range diff {
			if i == 0 {
				s.WriteString("diff    : ")
			} else {
				s.WriteString("          ")
			}

			s.WriteString(d)
			s.WriteString("\n")
		}

		t.Errorf(
			"Not equal: \n"+
				"expected: %s\n"+
				"actual  : %s\n\n"+
				"%s",
			printer.Sprint(expected),
			printer.Sprint(actual),
			s.String(),
		)
	}
}

// MustParse parses code and fails the test on error.
func MustParse(t *testing.T, code string) *ast.CompUnit {
	t.Helper()

	program, err := parser.ParseProgram(code)
	require.NoError(t, err)
	require.NoError(t, ast.Validate(program))

	return program
}

// Num builds the Exp for an integer literal, with every pass-through level
// filled in.
func Num(v int32) *ast.Exp {
	return ExpOf(&ast.Number{Value: v})
}

// ExpOf wraps a primary expression into a full Exp.
func ExpOf(primary ast.PrimaryExp) *ast.Exp {
	return AddToExp(&ast.AddPass{Mul: &ast.MulPass{Unary: &ast.UnaryPass{Primary: primary}}})
}

// AddToExp wraps an AddExp into a full Exp.
func AddToExp(add ast.AddExp) *ast.Exp {
	return &ast.Exp{
		LOr: &ast.LOrPass{
			LAnd: &ast.LAndPass{
				Eq: &ast.EqPass{
					Rel: &ast.RelPass{Add: add},
				},
			},
		},
	}
}

// MulOf returns the MulExp pass-through for a number.
func MulOf(v int32) ast.MulExp {
	return &ast.MulPass{Unary: UnaryOf(v)}
}

// UnaryOf returns the UnaryExp pass-through for a number.
func UnaryOf(v int32) ast.UnaryExp {
	return &ast.UnaryPass{Primary: &ast.Number{Value: v}}
}
