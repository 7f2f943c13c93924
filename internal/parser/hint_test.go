package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClosestKeyword(t *testing.T) {

	t.Parallel()

	tests := map[string]string{
		"itn":      "int",
		"retrun":   "return",
		"whiel":    "while",
		"contiue":  "continue",
		"conts":    "const",
		"x":        "",
		"main":     "",
		"value":    "",
		"elsewise": "",
	}

	for name, expected := range tests {
		assert.Equal(t, expected, closestKeyword(name), name)
	}
}
