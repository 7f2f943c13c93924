package ast

// Exp is the root of an expression: the top of the precedence cascade
//
//	LOrExp -> LAndExp -> EqExp -> RelExp -> AddExp -> MulExp -> UnaryExp -> PrimaryExp
//
// Each binary level has a Pass variant (unit production to the next level)
// and a Binary variant whose Left operand is of the same level. Chains of
// equal-precedence operators therefore nest to the left: a - b - c is
// AddBinary{Left: AddBinary{a - b}, Op: -, Right: c}.
type Exp struct {
	LOr LOrExp
}

func (*Exp) Kind() Kind { return KindExp }

// ConstExp marks an expression required to be a compile-time constant,
// such as an array dimension.
type ConstExp struct {
	Exp *Exp
}

func (*ConstExp) Kind() Kind { return KindConstExp }

// LVal names an assignable location: an identifier with zero or more
// index expressions.
type LVal struct {
	Name    string
	Indices []*Exp
}

func (*LVal) Kind() Kind    { return KindLVal }
func (*LVal) isPrimaryExp() {}

// LOrExp

type LOrExp interface {
	Node
	isLOrExp()
}

type LOrPass struct {
	LAnd LAndExp
}

func (*LOrPass) Kind() Kind { return KindLOrPass }
func (*LOrPass) isLOrExp()  {}

type LOrBinary struct {
	Left  LOrExp
	Op    Operation
	Right LAndExp
}

func (*LOrBinary) Kind() Kind { return KindLOrBinary }
func (*LOrBinary) isLOrExp()  {}

// LAndExp

type LAndExp interface {
	Node
	isLAndExp()
}

type LAndPass struct {
	Eq EqExp
}

func (*LAndPass) Kind() Kind { return KindLAndPass }
func (*LAndPass) isLAndExp() {}

type LAndBinary struct {
	Left  LAndExp
	Op    Operation
	Right EqExp
}

func (*LAndBinary) Kind() Kind { return KindLAndBinary }
func (*LAndBinary) isLAndExp() {}

// EqExp

type EqExp interface {
	Node
	isEqExp()
}

type EqPass struct {
	Rel RelExp
}

func (*EqPass) Kind() Kind { return KindEqPass }
func (*EqPass) isEqExp()   {}

type EqBinary struct {
	Left  EqExp
	Op    Operation
	Right RelExp
}

func (*EqBinary) Kind() Kind { return KindEqBinary }
func (*EqBinary) isEqExp()   {}

// RelExp

type RelExp interface {
	Node
	isRelExp()
}

type RelPass struct {
	Add AddExp
}

func (*RelPass) Kind() Kind { return KindRelPass }
func (*RelPass) isRelExp()  {}

type RelBinary struct {
	Left  RelExp
	Op    Operation
	Right AddExp
}

func (*RelBinary) Kind() Kind { return KindRelBinary }
func (*RelBinary) isRelExp()  {}

// AddExp

type AddExp interface {
	Node
	isAddExp()
}

type AddPass struct {
	Mul MulExp
}

func (*AddPass) Kind() Kind { return KindAddPass }
func (*AddPass) isAddExp()  {}

type AddBinary struct {
	Left  AddExp
	Op    Operation
	Right MulExp
}

func (*AddBinary) Kind() Kind { return KindAddBinary }
func (*AddBinary) isAddExp()  {}

// MulExp

type MulExp interface {
	Node
	isMulExp()
}

type MulPass struct {
	Unary UnaryExp
}

func (*MulPass) Kind() Kind { return KindMulPass }
func (*MulPass) isMulExp()  {}

type MulBinary struct {
	Left  MulExp
	Op    Operation
	Right UnaryExp
}

func (*MulBinary) Kind() Kind { return KindMulBinary }
func (*MulBinary) isMulExp()  {}

// UnaryExp

type UnaryExp interface {
	Node
	isUnaryExp()
}

type UnaryPass struct {
	Primary PrimaryExp
}

func (*UnaryPass) Kind() Kind  { return KindUnaryPass }
func (*UnaryPass) isUnaryExp() {}

// UnaryOpExp: op UnaryExp, e.g. -x or !!x.
type UnaryOpExp struct {
	Op      UnaryOperation
	Operand UnaryExp
}

func (*UnaryOpExp) Kind() Kind  { return KindUnaryOp }
func (*UnaryOpExp) isUnaryExp() {}

// CallExp: Name(Args...). A call without arguments has empty Args.
type CallExp struct {
	Name string
	Args []*Exp
}

func (e *CallExp) Kind() Kind {
	if len(e.Args) == 0 {
		return KindCallNoArgs
	}
	return KindCall
}
func (*CallExp) isUnaryExp() {}

// PrimaryExp

type PrimaryExp interface {
	Node
	isPrimaryExp()
}

type ParenExp struct {
	Exp *Exp
}

func (*ParenExp) Kind() Kind    { return KindParen }
func (*ParenExp) isPrimaryExp() {}

// Number is a 32-bit signed integer literal.
type Number struct {
	Value int32
}

func (*Number) Kind() Kind    { return KindNumber }
func (*Number) isPrimaryExp() {}
