// Package printer renders syntax trees as text.
//
// The canonical form is a single line in which every node appears as
//
//	Label { field, field }
//
// and binary expressions as Label { left op right }. Pass-through levels of
// the expression cascade add no output of their own, so the nesting of
// braces is exactly the nesting of operators: 1+2*3 prints as
//
//	AddExp { Number { 1 } + MulExp { Number { 2 } * Number { 3 } } }
//
// Dimensions and indices print as [e]; the elided first dimension of an
// array parameter prints as [].
package printer

import (
	"strconv"

	"github.com/tinyrange/sysy/internal/ast"
	"github.com/tinyrange/sysy/internal/errors"
)

// fragment is a format-neutral piece of rendered output.
type fragment interface {
	isFragment()
}

// atom is printed verbatim: names, types, operators and literals.
type atom string

// element is a labelled node with its fields.
type element struct {
	label  string
	infix  bool // fields are joined by spaces, not commas
	fields []fragment
}

// bracket wraps a dimension or index expression.
type bracket struct {
	inner fragment
}

func (atom) isFragment()     {}
func (*element) isFragment() {}
func (bracket) isFragment()  {}

// emptyDim is the elided first dimension of an array parameter.
const emptyDim atom = "[]"

// render validates root and converts it into fragments.
func render(root *ast.CompUnit) (fragment, error) {
	if err := ast.Validate(root); err != nil {
		return nil, err
	}
	return build(root)
}

func build(n ast.Node) (fragment, error) {
	switch n := n.(type) {
	case *ast.CompUnit:
		e := &element{label: "CompUnit"}
		for _, u := range n.Units {
			if err := e.add(u); err != nil {
				return nil, err
			}
		}
		return e, nil

	case *ast.FuncDef:
		e := &element{label: "FuncDef"}
		e.fields = append(e.fields,
			&element{label: "FuncType", fields: []fragment{atom(n.Type.String())}},
			atom(n.Name),
		)
		if len(n.Params) > 0 {
			params := &element{label: "FuncFParams"}
			for _, param := range n.Params {
				if err := params.add(param); err != nil {
					return nil, err
				}
			}
			e.fields = append(e.fields, params)
		}
		if err := e.add(n.Body); err != nil {
			return nil, err
		}
		return e, nil

	case *ast.Param:
		e := &element{label: "FuncFParam", fields: []fragment{atom(n.Type.String()), atom(n.Name)}}
		if n.Array {
			e.fields = append(e.fields, emptyDim)
			if err := e.addDims(n.Dims); err != nil {
				return nil, err
			}
		}
		return e, nil

	case *ast.Block:
		e := &element{label: "Block"}
		for _, item := range n.Items {
			if err := e.add(item); err != nil {
				return nil, err
			}
		}
		return e, nil

	case *ast.ConstDecl:
		e := &element{label: "ConstDecl", fields: []fragment{atom(n.Type.String())}}
		for _, d := range n.Defs {
			if err := e.add(d); err != nil {
				return nil, err
			}
		}
		return e, nil

	case *ast.ConstDef:
		e := &element{label: "ConstDef", fields: []fragment{atom(n.Name)}}
		if err := e.addDims(n.Dims); err != nil {
			return nil, err
		}
		if err := e.add(n.Init); err != nil {
			return nil, err
		}
		return e, nil

	case *ast.VarDecl:
		e := &element{label: "VarDecl", fields: []fragment{atom(n.Type.String())}}
		for _, d := range n.Defs {
			if err := e.add(d); err != nil {
				return nil, err
			}
		}
		return e, nil

	case *ast.VarDef:
		e := &element{label: "VarDef", fields: []fragment{atom(n.Name)}}
		if err := e.addDims(n.Dims); err != nil {
			return nil, err
		}
		if n.Init != nil {
			if err := e.add(n.Init); err != nil {
				return nil, err
			}
		}
		return e, nil

	case *ast.ExpInitVal:
		return build(n.Exp)

	case *ast.ConstExpInitVal:
		return build(n.Exp)

	case *ast.InitList:
		e := &element{label: "InitList"}
		for _, elem := range n.Elems {
			if err := e.add(elem); err != nil {
				return nil, err
			}
		}
		return e, nil

	case *ast.ConstInitList:
		e := &element{label: "InitList"}
		for _, elem := range n.Elems {
			if err := e.add(elem); err != nil {
				return nil, err
			}
		}
		return e, nil

	case *ast.AssignStmt:
		return newElement("Assign", false, n.Target, n.Value)

	case *ast.ExpStmt:
		return newElement("ExpStmt", false, n.Exp)

	case *ast.EmptyStmt:
		return &element{label: "EmptyStmt"}, nil

	case *ast.BlockStmt:
		return build(n.Block)

	case *ast.ReturnStmt:
		if n.Exp == nil {
			return &element{label: "Return"}, nil
		}
		return newElement("Return", false, n.Exp)

	case *ast.IfStmt:
		if n.Else == nil {
			return newElement("If", false, n.Cond, n.Then)
		}
		return newElement("IfElse", false, n.Cond, n.Then, n.Else)

	case *ast.WhileStmt:
		return newElement("While", false, n.Cond, n.Body)

	case *ast.BreakStmt:
		return &element{label: "Break"}, nil

	case *ast.ContinueStmt:
		return &element{label: "Continue"}, nil

	case *ast.LVal:
		e := &element{label: "LVal", fields: []fragment{atom(n.Name)}}
		for _, idx := range n.Indices {
			f, err := build(idx)
			if err != nil {
				return nil, err
			}
			e.fields = append(e.fields, bracket{inner: f})
		}
		return e, nil

	case *ast.Exp:
		return build(n.LOr)

	case *ast.ConstExp:
		return build(n.Exp)

	case *ast.LOrPass:
		return build(n.LAnd)
	case *ast.LAndPass:
		return build(n.Eq)
	case *ast.EqPass:
		return build(n.Rel)
	case *ast.RelPass:
		return build(n.Add)
	case *ast.AddPass:
		return build(n.Mul)
	case *ast.MulPass:
		return build(n.Unary)
	case *ast.UnaryPass:
		return build(n.Primary)

	case *ast.LOrBinary:
		return newBinary(ast.LevelLOr, n.Left, n.Op, n.Right)
	case *ast.LAndBinary:
		return newBinary(ast.LevelLAnd, n.Left, n.Op, n.Right)
	case *ast.EqBinary:
		return newBinary(ast.LevelEq, n.Left, n.Op, n.Right)
	case *ast.RelBinary:
		return newBinary(ast.LevelRel, n.Left, n.Op, n.Right)
	case *ast.AddBinary:
		return newBinary(ast.LevelAdd, n.Left, n.Op, n.Right)
	case *ast.MulBinary:
		return newBinary(ast.LevelMul, n.Left, n.Op, n.Right)

	case *ast.UnaryOpExp:
		operand, err := build(n.Operand)
		if err != nil {
			return nil, err
		}
		return &element{
			label:  "UnaryExp",
			infix:  true,
			fields: []fragment{atom(n.Op.Symbol()), operand},
		}, nil

	case *ast.CallExp:
		e := &element{label: "Call", fields: []fragment{atom(n.Name)}}
		if len(n.Args) > 0 {
			args := &element{label: "FuncRParams"}
			for _, a := range n.Args {
				if err := args.add(a); err != nil {
					return nil, err
				}
			}
			e.fields = append(e.fields, args)
		}
		return e, nil

	case *ast.ParenExp:
		return newElement("Paren", false, n.Exp)

	case *ast.Number:
		return &element{
			label:  "Number",
			fields: []fragment{atom(strconv.FormatInt(int64(n.Value), 10))},
		}, nil

	default:
		return nil, errors.NewMalformedNodeError("node", "unknown node type %T", n)
	}
}

func (e *element) add(n ast.Node) error {
	f, err := build(n)
	if err != nil {
		return err
	}
	e.fields = append(e.fields, f)
	return nil
}

func (e *element) addDims(dims []*ast.ConstExp) error {
	for _, d := range dims {
		f, err := build(d)
		if err != nil {
			return err
		}
		e.fields = append(e.fields, bracket{inner: f})
	}
	return nil
}

func newElement(label string, infix bool, children ...ast.Node) (*element, error) {
	e := &element{label: label, infix: infix}
	for _, c := range children {
		if err := e.add(c); err != nil {
			return nil, err
		}
	}
	return e, nil
}

func newBinary(level ast.Level, left ast.Node, op ast.Operation, right ast.Node) (*element, error) {
	if op.Level() != level {
		return nil, errors.NewMalformedNodeError(level.String(), "operator %s does not belong to this level", op)
	}
	l, err := build(left)
	if err != nil {
		return nil, err
	}
	r, err := build(right)
	if err != nil {
		return nil, err
	}
	return &element{
		label:  level.String(),
		infix:  true,
		fields: []fragment{l, atom(op.Symbol()), r},
	}, nil
}
