package ast

import "fmt"

// Level identifies one tier of the binary precedence cascade,
// from the loosest (LevelLOr) to the tightest (LevelMul).
type Level int

const (
	LevelNone Level = iota
	LevelLOr
	LevelLAnd
	LevelEq
	LevelRel
	LevelAdd
	LevelMul
)

func (l Level) String() string {
	switch l {
	case LevelLOr:
		return "LOrExp"
	case LevelLAnd:
		return "LAndExp"
	case LevelEq:
		return "EqExp"
	case LevelRel:
		return "RelExp"
	case LevelAdd:
		return "AddExp"
	case LevelMul:
		return "MulExp"
	default:
		return "none"
	}
}

// Operation is a binary operator.
type Operation int

const (
	OperationUnknown Operation = iota
	OperationOr
	OperationAnd
	OperationEqual
	OperationNotEqual
	OperationLess
	OperationGreater
	OperationLessEqual
	OperationGreaterEqual
	OperationPlus
	OperationMinus
	OperationMul
	OperationDiv
	OperationMod
)

var operationSymbols = [...]string{
	OperationOr:           "||",
	OperationAnd:          "&&",
	OperationEqual:        "==",
	OperationNotEqual:     "!=",
	OperationLess:         "<",
	OperationGreater:      ">",
	OperationLessEqual:    "<=",
	OperationGreaterEqual: ">=",
	OperationPlus:         "+",
	OperationMinus:        "-",
	OperationMul:          "*",
	OperationDiv:          "/",
	OperationMod:          "%",
}

// Symbol returns the operator token as written in source.
func (o Operation) Symbol() string {
	if o > OperationUnknown && int(o) < len(operationSymbols) {
		return operationSymbols[o]
	}
	return ""
}

func (o Operation) String() string {
	if s := o.Symbol(); s != "" {
		return s
	}
	return fmt.Sprintf("Operation(%d)", int(o))
}

// Level returns the cascade tier the operator belongs to.
func (o Operation) Level() Level {
	switch o {
	case OperationOr:
		return LevelLOr
	case OperationAnd:
		return LevelLAnd
	case OperationEqual, OperationNotEqual:
		return LevelEq
	case OperationLess, OperationGreater, OperationLessEqual, OperationGreaterEqual:
		return LevelRel
	case OperationPlus, OperationMinus:
		return LevelAdd
	case OperationMul, OperationDiv, OperationMod:
		return LevelMul
	default:
		return LevelNone
	}
}

// UnaryOperation is a prefix operator of UnaryExp.
type UnaryOperation int

const (
	UnaryOperationUnknown UnaryOperation = iota
	UnaryOperationPlus
	UnaryOperationMinus
	UnaryOperationNot
)

func (o UnaryOperation) Symbol() string {
	switch o {
	case UnaryOperationPlus:
		return "+"
	case UnaryOperationMinus:
		return "-"
	case UnaryOperationNot:
		return "!"
	default:
		return ""
	}
}

func (o UnaryOperation) String() string {
	if s := o.Symbol(); s != "" {
		return s
	}
	return fmt.Sprintf("UnaryOperation(%d)", int(o))
}
