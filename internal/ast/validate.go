package ast

import (
	"github.com/tinyrange/sysy/internal/errors"
)

// Validate checks the variant invariants of every node in the tree rooted
// at node, and that no node is reachable through more than one parent. It
// returns the first violation found as a *errors.MalformedNodeError, or nil.
func Validate(node Node) error {
	if isNil(node) {
		return errors.NewMalformedNodeError("tree", "nil root")
	}
	seen := map[Node]struct{}{}
	stack := []Node{node}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if distinct(n) {
			if _, ok := seen[n]; ok {
				return errors.NewMalformedNodeError(n.Kind().String(), "node has more than one parent")
			}
			seen[n] = struct{}{}
		}
		if err := check(n); err != nil {
			return err
		}
		children := Children(n)
		for i := len(children) - 1; i >= 0; i-- {
			stack = append(stack, children[i])
		}
	}
	return nil
}

// check verifies the invariants local to n. n itself must not be nil.
func check(n Node) error {
	malformed := func(reason string, args ...any) error {
		return errors.NewMalformedNodeError(n.Kind().String(), reason, args...)
	}
	required := func(field string, c Node) error {
		if isNil(c) {
			return malformed("missing %s", field)
		}
		return nil
	}
	named := func(name string) error {
		if name == "" {
			return malformed("missing name")
		}
		return nil
	}
	firstErr := func(errs ...error) error {
		for _, err := range errs {
			if err != nil {
				return err
			}
		}
		return nil
	}

	switch n := n.(type) {
	case *CompUnit:
		for _, u := range n.Units {
			if err := required("unit", u); err != nil {
				return err
			}
		}
	case *FuncDef:
		if !n.Type.IsFuncType() {
			return malformed("invalid return type %s", n.Type)
		}
		for _, p := range n.Params {
			if err := required("parameter", p); err != nil {
				return err
			}
		}
		return firstErr(named(n.Name), required("body", n.Body))
	case *Param:
		if !n.Type.IsBase() {
			return malformed("invalid parameter type %s", n.Type)
		}
		if !n.Array && len(n.Dims) > 0 {
			return malformed("scalar parameter %s has dimensions", n.Name)
		}
		return firstErr(named(n.Name), requiredConstExps(required, n.Dims))
	case *Block:
		for _, item := range n.Items {
			if err := required("block item", item); err != nil {
				return err
			}
		}
	case *ConstDecl:
		if !n.Type.IsBase() {
			return malformed("invalid declaration type %s", n.Type)
		}
		if len(n.Defs) == 0 {
			return malformed("no definitions")
		}
		for _, d := range n.Defs {
			if err := required("definition", d); err != nil {
				return err
			}
		}
	case *ConstDef:
		return firstErr(
			named(n.Name),
			requiredConstExps(required, n.Dims),
			required("initializer", n.Init),
		)
	case *VarDecl:
		if !n.Type.IsBase() {
			return malformed("invalid declaration type %s", n.Type)
		}
		if len(n.Defs) == 0 {
			return malformed("no definitions")
		}
		for _, d := range n.Defs {
			if err := required("definition", d); err != nil {
				return err
			}
		}
	case *VarDef:
		return firstErr(named(n.Name), requiredConstExps(required, n.Dims))
	case *ExpInitVal:
		return required("expression", n.Exp)
	case *InitList:
		for _, e := range n.Elems {
			if err := required("element", e); err != nil {
				return err
			}
		}
	case *ConstExpInitVal:
		return required("expression", n.Exp)
	case *ConstInitList:
		for _, e := range n.Elems {
			if err := required("element", e); err != nil {
				return err
			}
		}
	case *AssignStmt:
		return firstErr(required("target", n.Target), required("value", n.Value))
	case *ExpStmt:
		return required("expression", n.Exp)
	case *EmptyStmt, *BreakStmt, *ContinueStmt, *ReturnStmt, *Number:
		// no invariants
	case *BlockStmt:
		return required("block", n.Block)
	case *IfStmt:
		return firstErr(required("condition", n.Cond), required("then branch", n.Then))
	case *WhileStmt:
		return firstErr(required("condition", n.Cond), required("body", n.Body))
	case *LVal:
		if err := named(n.Name); err != nil {
			return err
		}
		for _, e := range n.Indices {
			if err := required("index", e); err != nil {
				return err
			}
		}
	case *Exp:
		return required("operand", n.LOr)
	case *ConstExp:
		return required("expression", n.Exp)
	case *LOrPass:
		return required("operand", n.LAnd)
	case *LAndPass:
		return required("operand", n.Eq)
	case *EqPass:
		return required("operand", n.Rel)
	case *RelPass:
		return required("operand", n.Add)
	case *AddPass:
		return required("operand", n.Mul)
	case *MulPass:
		return required("operand", n.Unary)
	case *UnaryPass:
		return required("operand", n.Primary)
	case *LOrBinary:
		return checkBinary(LevelLOr, n.Left, n.Op, n.Right)
	case *LAndBinary:
		return checkBinary(LevelLAnd, n.Left, n.Op, n.Right)
	case *EqBinary:
		return checkBinary(LevelEq, n.Left, n.Op, n.Right)
	case *RelBinary:
		return checkBinary(LevelRel, n.Left, n.Op, n.Right)
	case *AddBinary:
		return checkBinary(LevelAdd, n.Left, n.Op, n.Right)
	case *MulBinary:
		return checkBinary(LevelMul, n.Left, n.Op, n.Right)
	case *UnaryOpExp:
		if n.Op.Symbol() == "" {
			return malformed("invalid unary operator %s", n.Op)
		}
		return required("operand", n.Operand)
	case *CallExp:
		if err := named(n.Name); err != nil {
			return err
		}
		for _, a := range n.Args {
			if err := required("argument", a); err != nil {
				return err
			}
		}
	case *ParenExp:
		return required("expression", n.Exp)
	default:
		return errors.NewMalformedNodeError("node", "unknown node type %T", n)
	}
	return nil
}

func requiredConstExps(required func(string, Node) error, dims []*ConstExp) error {
	for _, d := range dims {
		if err := required("dimension", d); err != nil {
			return err
		}
	}
	return nil
}

func checkBinary(level Level, left Node, op Operation, right Node) error {
	name := level.String()
	if isNil(left) {
		return errors.NewMalformedNodeError(name, "missing left operand")
	}
	if isNil(right) {
		return errors.NewMalformedNodeError(name, "missing right operand")
	}
	if op.Level() != level {
		return errors.NewMalformedNodeError(name, "operator %s does not belong to this level", op)
	}
	return nil
}

// Checked constructors for the binary levels. They fail with a
// *errors.MalformedNodeError when an operand is missing or the operator
// belongs to a different precedence level.

func NewLOrBinary(left LOrExp, op Operation, right LAndExp) (*LOrBinary, error) {
	if err := checkBinary(LevelLOr, left, op, right); err != nil {
		return nil, err
	}
	return &LOrBinary{Left: left, Op: op, Right: right}, nil
}

func NewLAndBinary(left LAndExp, op Operation, right EqExp) (*LAndBinary, error) {
	if err := checkBinary(LevelLAnd, left, op, right); err != nil {
		return nil, err
	}
	return &LAndBinary{Left: left, Op: op, Right: right}, nil
}

func NewEqBinary(left EqExp, op Operation, right RelExp) (*EqBinary, error) {
	if err := checkBinary(LevelEq, left, op, right); err != nil {
		return nil, err
	}
	return &EqBinary{Left: left, Op: op, Right: right}, nil
}

func NewRelBinary(left RelExp, op Operation, right AddExp) (*RelBinary, error) {
	if err := checkBinary(LevelRel, left, op, right); err != nil {
		return nil, err
	}
	return &RelBinary{Left: left, Op: op, Right: right}, nil
}

func NewAddBinary(left AddExp, op Operation, right MulExp) (*AddBinary, error) {
	if err := checkBinary(LevelAdd, left, op, right); err != nil {
		return nil, err
	}
	return &AddBinary{Left: left, Op: op, Right: right}, nil
}

func NewMulBinary(left MulExp, op Operation, right UnaryExp) (*MulBinary, error) {
	if err := checkBinary(LevelMul, left, op, right); err != nil {
		return nil, err
	}
	return &MulBinary{Left: left, Op: op, Right: right}, nil
}
