// Package ast declares the syntax tree of SysY programs.
//
// The tree is a closed family of node types, one per grammar nonterminal
// variant. Nodes only hold data: printing, validation and any later analysis
// are written as functions that switch on the concrete node type, so new
// consumers never have to touch the definitions here.
//
// Every node is owned by exactly one parent and is not mutated after the
// parser has built it.
package ast

import "fmt"

// Node is implemented by every node of the tree.
type Node interface {
	Kind() Kind
}

// Unit is a top-level element of a CompUnit: a Declaration or a *FuncDef.
type Unit interface {
	Node
	isUnit()
}

// BlockItem is an element of a Block: a Declaration or a Stmt.
type BlockItem interface {
	Node
	isBlockItem()
}

// Kind discriminates the node variants.
type Kind int

const (
	KindUnknown Kind = iota

	KindCompUnit
	KindFuncDef
	KindParam
	KindBlock

	KindConstDecl
	KindConstDef
	KindVarDecl
	KindVarDef
	KindExpInitVal
	KindInitList
	KindConstExpInitVal
	KindConstInitList

	KindAssignStmt
	KindExpStmt
	KindEmptyStmt
	KindBlockStmt
	KindReturnStmt
	KindBareReturnStmt
	KindIfStmt
	KindIfElseStmt
	KindWhileStmt
	KindBreakStmt
	KindContinueStmt

	KindLVal
	KindExp
	KindConstExp
	KindLOrPass
	KindLOrBinary
	KindLAndPass
	KindLAndBinary
	KindEqPass
	KindEqBinary
	KindRelPass
	KindRelBinary
	KindAddPass
	KindAddBinary
	KindMulPass
	KindMulBinary
	KindUnaryPass
	KindUnaryOp
	KindCall
	KindCallNoArgs
	KindParen
	KindNumber
)

var kindNames = [...]string{
	KindUnknown:         "Unknown",
	KindCompUnit:        "CompUnit",
	KindFuncDef:         "FuncDef",
	KindParam:           "Param",
	KindBlock:           "Block",
	KindConstDecl:       "ConstDecl",
	KindConstDef:        "ConstDef",
	KindVarDecl:         "VarDecl",
	KindVarDef:          "VarDef",
	KindExpInitVal:      "ExpInitVal",
	KindInitList:        "InitList",
	KindConstExpInitVal: "ConstExpInitVal",
	KindConstInitList:   "ConstInitList",
	KindAssignStmt:      "AssignStmt",
	KindExpStmt:         "ExpStmt",
	KindEmptyStmt:       "EmptyStmt",
	KindBlockStmt:       "BlockStmt",
	KindReturnStmt:      "ReturnStmt",
	KindBareReturnStmt:  "BareReturnStmt",
	KindIfStmt:          "IfStmt",
	KindIfElseStmt:      "IfElseStmt",
	KindWhileStmt:       "WhileStmt",
	KindBreakStmt:       "BreakStmt",
	KindContinueStmt:    "ContinueStmt",
	KindLVal:            "LVal",
	KindExp:             "Exp",
	KindConstExp:        "ConstExp",
	KindLOrPass:         "LOrPass",
	KindLOrBinary:       "LOrBinary",
	KindLAndPass:        "LAndPass",
	KindLAndBinary:      "LAndBinary",
	KindEqPass:          "EqPass",
	KindEqBinary:        "EqBinary",
	KindRelPass:         "RelPass",
	KindRelBinary:       "RelBinary",
	KindAddPass:         "AddPass",
	KindAddBinary:       "AddBinary",
	KindMulPass:         "MulPass",
	KindMulBinary:       "MulBinary",
	KindUnaryPass:       "UnaryPass",
	KindUnaryOp:         "UnaryOp",
	KindCall:            "Call",
	KindCallNoArgs:      "CallNoArgs",
	KindParen:           "Paren",
	KindNumber:          "Number",
}

func (k Kind) String() string {
	if k >= 0 && int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}
