package ast

import "github.com/tinyrange/sysy/internal/types"

// CompUnit is the root of a parsed program. Units are kept in source
// order, declarations and function definitions interleaved as written.
type CompUnit struct {
	Units []Unit
}

func (*CompUnit) Kind() Kind { return KindCompUnit }

// FuncDefs returns the function definitions in source order.
func (c *CompUnit) FuncDefs() []*FuncDef {
	var defs []*FuncDef
	for _, u := range c.Units {
		if f, ok := u.(*FuncDef); ok {
			defs = append(defs, f)
		}
	}
	return defs
}

// Declarations returns the global declarations in source order.
func (c *CompUnit) Declarations() []Declaration {
	var decls []Declaration
	for _, u := range c.Units {
		if d, ok := u.(Declaration); ok {
			decls = append(decls, d)
		}
	}
	return decls
}

type FuncDef struct {
	Type   types.Kind
	Name   string
	Params []*Param // nil when the function takes no parameters
	Body   *Block
}

func (*FuncDef) Kind() Kind { return KindFuncDef }
func (*FuncDef) isUnit()    {}

// Param is a formal parameter. For an array parameter the first
// dimension is written as [] in source and is not stored: Dims holds
// only the remaining, sized dimensions and may be empty.
type Param struct {
	Type  types.Kind
	Name  string
	Array bool
	Dims  []*ConstExp
}

func (*Param) Kind() Kind { return KindParam }

type Block struct {
	Items []BlockItem
}

func (*Block) Kind() Kind { return KindBlock }
