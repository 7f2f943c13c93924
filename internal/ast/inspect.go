package ast

import "reflect"

// Inspect traverses the tree rooted at node in depth-first pre-order,
// calling f for each node. If f returns false the children of that node
// are skipped. The traversal keeps its own stack, so deeply nested trees
// do not grow the goroutine stack. Nil children are not visited, and a
// node reachable through more than one parent is visited only the first
// time, so a cyclic tree still terminates. Use Validate to reject such
// trees.
func Inspect(node Node, f func(Node) bool) {
	if isNil(node) {
		return
	}
	seen := map[Node]struct{}{}
	stack := []Node{node}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if distinct(n) {
			if _, ok := seen[n]; ok {
				continue
			}
			seen[n] = struct{}{}
		}
		if !f(n) {
			continue
		}
		children := Children(n)
		for i := len(children) - 1; i >= 0; i-- {
			stack = append(stack, children[i])
		}
	}
}

// Children returns the direct, non-nil children of n in source order.
func Children(n Node) []Node {
	var out []Node
	add := func(c Node) {
		if !isNil(c) {
			out = append(out, c)
		}
	}
	switch n := n.(type) {
	case *CompUnit:
		for _, u := range n.Units {
			add(u)
		}
	case *FuncDef:
		for _, p := range n.Params {
			add(p)
		}
		add(n.Body)
	case *Param:
		for _, d := range n.Dims {
			add(d)
		}
	case *Block:
		for _, item := range n.Items {
			add(item)
		}
	case *ConstDecl:
		for _, d := range n.Defs {
			add(d)
		}
	case *ConstDef:
		for _, d := range n.Dims {
			add(d)
		}
		add(n.Init)
	case *VarDecl:
		for _, d := range n.Defs {
			add(d)
		}
	case *VarDef:
		for _, d := range n.Dims {
			add(d)
		}
		add(n.Init)
	case *ExpInitVal:
		add(n.Exp)
	case *InitList:
		for _, e := range n.Elems {
			add(e)
		}
	case *ConstExpInitVal:
		add(n.Exp)
	case *ConstInitList:
		for _, e := range n.Elems {
			add(e)
		}
	case *AssignStmt:
		add(n.Target)
		add(n.Value)
	case *ExpStmt:
		add(n.Exp)
	case *BlockStmt:
		add(n.Block)
	case *ReturnStmt:
		add(n.Exp)
	case *IfStmt:
		add(n.Cond)
		add(n.Then)
		add(n.Else)
	case *WhileStmt:
		add(n.Cond)
		add(n.Body)
	case *LVal:
		for _, e := range n.Indices {
			add(e)
		}
	case *Exp:
		add(n.LOr)
	case *ConstExp:
		add(n.Exp)
	case *LOrPass:
		add(n.LAnd)
	case *LOrBinary:
		add(n.Left)
		add(n.Right)
	case *LAndPass:
		add(n.Eq)
	case *LAndBinary:
		add(n.Left)
		add(n.Right)
	case *EqPass:
		add(n.Rel)
	case *EqBinary:
		add(n.Left)
		add(n.Right)
	case *RelPass:
		add(n.Add)
	case *RelBinary:
		add(n.Left)
		add(n.Right)
	case *AddPass:
		add(n.Mul)
	case *AddBinary:
		add(n.Left)
		add(n.Right)
	case *MulPass:
		add(n.Unary)
	case *MulBinary:
		add(n.Left)
		add(n.Right)
	case *UnaryPass:
		add(n.Primary)
	case *UnaryOpExp:
		add(n.Operand)
	case *CallExp:
		for _, a := range n.Args {
			add(a)
		}
	case *ParenExp:
		add(n.Exp)
	}
	return out
}

// distinct reports whether n has an identity of its own. Pointers to
// fieldless nodes may all share one address.
func distinct(n Node) bool {
	switch n.(type) {
	case *EmptyStmt, *BreakStmt, *ContinueStmt:
		return false
	}
	return true
}

// isNil reports whether n is nil or a typed nil pointer.
func isNil(n Node) bool {
	if n == nil {
		return true
	}
	v := reflect.ValueOf(n)
	return v.Kind() == reflect.Ptr && v.IsNil()
}
