package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKind_String(t *testing.T) {

	t.Parallel()

	assert.Equal(t, "int", Int.String())
	assert.Equal(t, "void", Void.String())
	assert.Equal(t, "Kind(0)", Invalid.String())
}

func TestFromKeyword(t *testing.T) {

	t.Parallel()

	assert.Equal(t, Int, FromKeyword("int"))
	assert.Equal(t, Void, FromKeyword("void"))
	assert.Equal(t, Invalid, FromKeyword("const"))
}

func TestKind_Positions(t *testing.T) {

	t.Parallel()

	assert.True(t, Int.IsBase())
	assert.False(t, Void.IsBase())
	assert.True(t, Int.IsFuncType())
	assert.True(t, Void.IsFuncType())
	assert.False(t, Invalid.IsFuncType())
}
