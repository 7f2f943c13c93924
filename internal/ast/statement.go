package ast

// Stmt is implemented by every statement variant.
type Stmt interface {
	BlockItem
	isStmt()
}

// AssignStmt: LVal = Exp;
type AssignStmt struct {
	Target *LVal
	Value  *Exp
}

func (*AssignStmt) Kind() Kind   { return KindAssignStmt }
func (*AssignStmt) isBlockItem() {}
func (*AssignStmt) isStmt()      {}

// ExpStmt: Exp;
type ExpStmt struct {
	Exp *Exp
}

func (*ExpStmt) Kind() Kind   { return KindExpStmt }
func (*ExpStmt) isBlockItem() {}
func (*ExpStmt) isStmt()      {}

// EmptyStmt: ;
type EmptyStmt struct{}

func (*EmptyStmt) Kind() Kind   { return KindEmptyStmt }
func (*EmptyStmt) isBlockItem() {}
func (*EmptyStmt) isStmt()      {}

// BlockStmt is a nested block used as a statement.
type BlockStmt struct {
	Block *Block
}

func (*BlockStmt) Kind() Kind   { return KindBlockStmt }
func (*BlockStmt) isBlockItem() {}
func (*BlockStmt) isStmt()      {}

// ReturnStmt: return Exp; or, with a nil Exp, return;
type ReturnStmt struct {
	Exp *Exp
}

func (s *ReturnStmt) Kind() Kind {
	if s.Exp == nil {
		return KindBareReturnStmt
	}
	return KindReturnStmt
}
func (*ReturnStmt) isBlockItem() {}
func (*ReturnStmt) isStmt()      {}

// IfStmt: if (Cond) Then [else Else]. Else is nil when absent.
// The parser binds an else to the nearest unmatched if.
type IfStmt struct {
	Cond *Exp
	Then Stmt
	Else Stmt
}

func (s *IfStmt) Kind() Kind {
	if s.Else == nil {
		return KindIfStmt
	}
	return KindIfElseStmt
}
func (*IfStmt) isBlockItem() {}
func (*IfStmt) isStmt()      {}

type WhileStmt struct {
	Cond *Exp
	Body Stmt
}

func (*WhileStmt) Kind() Kind   { return KindWhileStmt }
func (*WhileStmt) isBlockItem() {}
func (*WhileStmt) isStmt()      {}

type BreakStmt struct{}

func (*BreakStmt) Kind() Kind   { return KindBreakStmt }
func (*BreakStmt) isBlockItem() {}
func (*BreakStmt) isStmt()      {}

type ContinueStmt struct{}

func (*ContinueStmt) Kind() Kind   { return KindContinueStmt }
func (*ContinueStmt) isBlockItem() {}
func (*ContinueStmt) isStmt()      {}
