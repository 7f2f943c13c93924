package types

import "fmt"

// Kind is one of the base types SysY knows about.
type Kind int

const (
	Invalid Kind = iota
	Int
	Void
)

func (k Kind) String() string {
	switch k {
	case Int:
		return "int"
	case Void:
		return "void"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// FromKeyword maps a type keyword to its Kind, or Invalid.
func FromKeyword(kw string) Kind {
	switch kw {
	case "int":
		return Int
	case "void":
		return Void
	default:
		return Invalid
	}
}

// IsBase reports whether k may appear as the type of a declaration or parameter.
func (k Kind) IsBase() bool { return k == Int }

// IsFuncType reports whether k may appear as a function return type.
func (k Kind) IsFuncType() bool { return k == Int || k == Void }
