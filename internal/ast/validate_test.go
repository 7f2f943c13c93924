package ast_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tinyrange/sysy/internal/ast"
	"github.com/tinyrange/sysy/internal/errors"
	. "github.com/tinyrange/sysy/internal/testutils"
	"github.com/tinyrange/sysy/internal/types"
)

func funcReturning(exp *ast.Exp) *ast.CompUnit {
	return &ast.CompUnit{
		Units: []ast.Unit{
			&ast.FuncDef{
				Type: types.Int,
				Name: "main",
				Body: &ast.Block{
					Items: []ast.BlockItem{
						&ast.ReturnStmt{Exp: exp},
					},
				},
			},
		},
	}
}

// sharedOperand places one expression under two statements.
func sharedOperand() *ast.CompUnit {
	shared := Num(7)
	program := funcReturning(shared)
	body := program.Units[0].(*ast.FuncDef).Body
	body.Items = append([]ast.BlockItem{&ast.ExpStmt{Exp: shared}}, body.Items...)
	return program
}

// cyclicParen returns (e) where e is the expression itself.
func cyclicParen() *ast.CompUnit {
	paren := &ast.ParenExp{}
	paren.Exp = ExpOf(paren)
	return funcReturning(paren.Exp)
}

func TestValidate_WellFormed(t *testing.T) {

	t.Parallel()

	program := MustParse(t, `
      const int N = 4;
      int buf[N][2] = {{1, 2}, {3}};
      int sum(int a[], int n) {
          int i = 0, s = 0;
          while (i < n && !(s > 100)) {
              s = s + a[i];
              i = i + 1;
              if (s == 0) continue; else ;
          }
          return s;
      }
      void noop() { return; }
    `)

	require.NoError(t, ast.Validate(program))
}

func TestValidate_Malformed(t *testing.T) {

	t.Parallel()

	tests := []struct {
		name    string
		tree    ast.Node
		node    string
		message string
	}{
		{
			name: "missing right operand",
			tree: funcReturning(AddToExp(&ast.AddBinary{
				Left: &ast.AddPass{Mul: MulOf(1)},
				Op:   ast.OperationPlus,
			})),
			node:    "AddExp",
			message: "missing right operand",
		},
		{
			name: "typed nil left operand",
			tree: funcReturning(AddToExp(&ast.AddBinary{
				Left:  (*ast.AddPass)(nil),
				Op:    ast.OperationMinus,
				Right: MulOf(2),
			})),
			node:    "AddExp",
			message: "missing left operand",
		},
		{
			name: "operator from another level",
			tree: funcReturning(AddToExp(&ast.AddBinary{
				Left:  &ast.AddPass{Mul: MulOf(1)},
				Op:    ast.OperationMul,
				Right: MulOf(2),
			})),
			node:    "AddExp",
			message: "operator * does not belong to this level",
		},
		{
			name: "unknown unary operator",
			tree: funcReturning(AddToExp(&ast.AddPass{
				Mul: &ast.MulPass{
					Unary: &ast.UnaryOpExp{Operand: UnaryOf(1)},
				},
			})),
			node:    "UnaryOp",
			message: "invalid unary operator UnaryOperation(0)",
		},
		{
			name: "scalar parameter with dimensions",
			tree: &ast.FuncDef{
				Type: types.Int,
				Name: "f",
				Params: []*ast.Param{
					{Type: types.Int, Name: "a", Dims: []*ast.ConstExp{{Exp: Num(3)}}},
				},
				Body: &ast.Block{},
			},
			node:    "Param",
			message: "scalar parameter a has dimensions",
		},
		{
			name:    "function without body",
			tree:    &ast.FuncDef{Type: types.Void, Name: "f"},
			node:    "FuncDef",
			message: "missing body",
		},
		{
			name:    "function with invalid type",
			tree:    &ast.FuncDef{Name: "f", Body: &ast.Block{}},
			node:    "FuncDef",
			message: "invalid return type Kind(0)",
		},
		{
			name:    "empty declaration",
			tree:    &ast.VarDecl{Type: types.Int},
			node:    "VarDecl",
			message: "no definitions",
		},
		{
			name:    "void declaration",
			tree:    &ast.VarDecl{Type: types.Void, Defs: []*ast.VarDef{{Name: "x"}}},
			node:    "VarDecl",
			message: "invalid declaration type void",
		},
		{
			name: "constant without initializer",
			tree: &ast.ConstDecl{
				Type: types.Int,
				Defs: []*ast.ConstDef{{Name: "N"}},
			},
			node:    "ConstDef",
			message: "missing initializer",
		},
		{
			name:    "unnamed lvalue",
			tree:    funcReturning(ExpOf(&ast.LVal{})),
			node:    "LVal",
			message: "missing name",
		},
		{
			name:    "if without condition",
			tree:    &ast.IfStmt{Then: &ast.EmptyStmt{}},
			node:    "IfStmt",
			message: "missing condition",
		},
		{
			name:    "node with two parents",
			tree:    sharedOperand(),
			node:    "Exp",
			message: "node has more than one parent",
		},
		{
			name:    "cycle",
			tree:    cyclicParen(),
			node:    "Exp",
			message: "node has more than one parent",
		},
		{
			name: "nil block item",
			tree: &ast.Block{
				Items: []ast.BlockItem{&ast.EmptyStmt{}, nil},
			},
			node:    "Block",
			message: "missing block item",
		},
	}

	for _, test := range tests {
		test := test

		t.Run(test.name, func(t *testing.T) {

			t.Parallel()

			err := ast.Validate(test.tree)
			require.Error(t, err)

			var malformed *errors.MalformedNodeError
			require.ErrorAs(t, err, &malformed)
			assert.Equal(t, test.node, malformed.Node)
			assert.Equal(t, test.message, malformed.Reason)
			assert.True(t, errors.IsInternalError(err))
		})
	}
}

func TestValidate_RepeatedFieldlessStatements(t *testing.T) {

	t.Parallel()

	program := MustParse(t, `
      int main() {
          while (1) { ; ; break; continue; break; continue; }
          return 0;
      }
    `)
	require.NoError(t, ast.Validate(program))
}

func TestValidate_NilRoot(t *testing.T) {

	t.Parallel()

	var program *ast.CompUnit
	err := ast.Validate(program)
	require.Error(t, err)
	assert.Equal(t, "malformed tree node: nil root", err.Error())
}

func TestCheckedConstructors(t *testing.T) {

	t.Parallel()

	t.Run("valid", func(t *testing.T) {

		t.Parallel()

		sub, err := ast.NewAddBinary(&ast.AddPass{Mul: MulOf(1)}, ast.OperationMinus, MulOf(2))
		require.NoError(t, err)
		assert.Equal(t, ast.OperationMinus, sub.Op)

		mul, err := ast.NewMulBinary(MulOf(2), ast.OperationMod, UnaryOf(3))
		require.NoError(t, err)
		assert.Equal(t, ast.KindMulBinary, mul.Kind())

		rel, err := ast.NewRelBinary(
			&ast.RelPass{Add: &ast.AddPass{Mul: MulOf(1)}},
			ast.OperationGreaterEqual,
			&ast.AddPass{Mul: MulOf(2)},
		)
		require.NoError(t, err)
		assert.Equal(t, ast.LevelRel, rel.Op.Level())
	})

	t.Run("wrong level", func(t *testing.T) {

		t.Parallel()

		_, err := ast.NewAddBinary(&ast.AddPass{Mul: MulOf(1)}, ast.OperationAnd, MulOf(2))
		require.Error(t, err)
		assert.Equal(t, "malformed AddExp node: operator && does not belong to this level", err.Error())

		_, err = ast.NewLOrBinary(nil, ast.OperationAnd, nil)
		require.Error(t, err)

		_, err = ast.NewEqBinary(nil, ast.OperationEqual, nil)
		require.Error(t, err)
	})

	t.Run("missing operand", func(t *testing.T) {

		t.Parallel()

		_, err := ast.NewLAndBinary(nil, ast.OperationAnd, &ast.EqPass{})
		require.Error(t, err)

		var malformed *errors.MalformedNodeError
		require.ErrorAs(t, err, &malformed)
		assert.Equal(t, "LAndExp", malformed.Node)
		assert.Equal(t, "missing left operand", malformed.Reason)
	})
}

func TestKindDiscriminants(t *testing.T) {

	t.Parallel()

	assert.Equal(t, ast.KindReturnStmt, (&ast.ReturnStmt{Exp: Num(0)}).Kind())
	assert.Equal(t, ast.KindBareReturnStmt, (&ast.ReturnStmt{}).Kind())

	assert.Equal(t, ast.KindIfStmt, (&ast.IfStmt{Cond: Num(1), Then: &ast.EmptyStmt{}}).Kind())
	assert.Equal(t,
		ast.KindIfElseStmt,
		(&ast.IfStmt{Cond: Num(1), Then: &ast.EmptyStmt{}, Else: &ast.EmptyStmt{}}).Kind(),
	)

	assert.Equal(t, ast.KindCallNoArgs, (&ast.CallExp{Name: "f"}).Kind())
	assert.Equal(t, ast.KindCall, (&ast.CallExp{Name: "f", Args: []*ast.Exp{Num(1)}}).Kind())

	assert.Equal(t, ast.DefBare, (&ast.VarDef{Name: "x"}).Shape())
	assert.Equal(t, ast.DefInit, (&ast.VarDef{Name: "x", Init: &ast.ExpInitVal{Exp: Num(1)}}).Shape())
	assert.Equal(t, ast.DefArray, (&ast.VarDef{Name: "x", Dims: []*ast.ConstExp{{Exp: Num(2)}}}).Shape())
}

func TestOperationLevels(t *testing.T) {

	t.Parallel()

	tests := map[ast.Operation]ast.Level{
		ast.OperationOr:           ast.LevelLOr,
		ast.OperationAnd:          ast.LevelLAnd,
		ast.OperationEqual:        ast.LevelEq,
		ast.OperationNotEqual:     ast.LevelEq,
		ast.OperationLess:         ast.LevelRel,
		ast.OperationGreater:      ast.LevelRel,
		ast.OperationLessEqual:    ast.LevelRel,
		ast.OperationGreaterEqual: ast.LevelRel,
		ast.OperationPlus:         ast.LevelAdd,
		ast.OperationMinus:        ast.LevelAdd,
		ast.OperationMul:          ast.LevelMul,
		ast.OperationDiv:          ast.LevelMul,
		ast.OperationMod:          ast.LevelMul,
		ast.OperationUnknown:      ast.LevelNone,
	}

	for op, level := range tests {
		assert.Equal(t, level, op.Level(), op.String())
	}

	assert.Equal(t, "<=", ast.OperationLessEqual.Symbol())
	assert.Equal(t, "%", ast.OperationMod.Symbol())
	assert.Equal(t, "!", ast.UnaryOperationNot.Symbol())
	assert.Equal(t, "MulExp", ast.LevelMul.String())
}
