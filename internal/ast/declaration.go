package ast

import "github.com/tinyrange/sysy/internal/types"

// Declaration is a *ConstDecl or a *VarDecl. It may appear at the top
// level and inside blocks.
type Declaration interface {
	Unit
	BlockItem
	isDeclaration()
}

// ConstDecl: const int a = 1, b[2] = {1, 2};
type ConstDecl struct {
	Type types.Kind
	Defs []*ConstDef
}

func (*ConstDecl) Kind() Kind     { return KindConstDecl }
func (*ConstDecl) isUnit()        {}
func (*ConstDecl) isBlockItem()   {}
func (*ConstDecl) isDeclaration() {}

// ConstDef always carries an initializer.
type ConstDef struct {
	Name string
	Dims []*ConstExp
	Init ConstInitVal
}

func (*ConstDef) Kind() Kind { return KindConstDef }

// VarDecl: int a, b = 1, c[2][3];
type VarDecl struct {
	Type types.Kind
	Defs []*VarDef
}

func (*VarDecl) Kind() Kind     { return KindVarDecl }
func (*VarDecl) isUnit()        {}
func (*VarDecl) isBlockItem()   {}
func (*VarDecl) isDeclaration() {}

// DefShape is the variant of a VarDef.
type DefShape int

const (
	DefBare  DefShape = iota // int a;
	DefInit                  // int a = e;
	DefArray                 // int a[2][3]; or int a[2] = {...};
)

func (s DefShape) String() string {
	switch s {
	case DefBare:
		return "bare"
	case DefInit:
		return "init"
	case DefArray:
		return "array"
	default:
		return "unknown"
	}
}

type VarDef struct {
	Name string
	Dims []*ConstExp // non-empty iff the definition is an array
	Init InitVal     // nil when absent
}

func (*VarDef) Kind() Kind { return KindVarDef }

func (d *VarDef) Shape() DefShape {
	switch {
	case len(d.Dims) > 0:
		return DefArray
	case d.Init != nil:
		return DefInit
	default:
		return DefBare
	}
}

// InitVal is an *ExpInitVal or an *InitList.
type InitVal interface {
	Node
	isInitVal()
}

type ExpInitVal struct {
	Exp *Exp
}

func (*ExpInitVal) Kind() Kind { return KindExpInitVal }
func (*ExpInitVal) isInitVal() {}

// InitList is a brace-enclosed, possibly nested, initializer.
type InitList struct {
	Elems []InitVal
}

func (*InitList) Kind() Kind { return KindInitList }
func (*InitList) isInitVal() {}

// ConstInitVal is a *ConstExpInitVal or a *ConstInitList.
type ConstInitVal interface {
	Node
	isConstInitVal()
}

type ConstExpInitVal struct {
	Exp *ConstExp
}

func (*ConstExpInitVal) Kind() Kind      { return KindConstExpInitVal }
func (*ConstExpInitVal) isConstInitVal() {}

type ConstInitList struct {
	Elems []ConstInitVal
}

func (*ConstInitList) Kind() Kind      { return KindConstInitList }
func (*ConstInitList) isConstInitVal() {}
