package vocabulary

import (
	"testing"

	"github.com/adalang/adafront/pkg/token"
	"github.com/stretchr/testify/assert"
)

func TestReservedKindShadowing(t *testing.T) {
	v := Default()

	cases := []struct {
		spelling string
		want     token.Kind
	}{
		{"INTEGER", token.INTEGERT},
		{"integer", token.INTEGERT},
		{"REAL", token.REALT},
		{"CHAR", token.CHART},
		{"CONSTANT", token.CONST},
		{"PROCEDURE", token.PROCEDURE},
		{"Begin", token.BEGIN},
	}
	for _, c := range cases {
		k, ok := v.ReservedKind(c.spelling)
		assert.True(t, ok, c.spelling)
		assert.Equal(t, c.want, k, c.spelling)
	}
}

func TestOrAndRemModAreNeverReserved(t *testing.T) {
	v := Default()
	for _, word := range []string{"or", "and", "rem", "mod"} {
		_, ok := v.ReservedKind(word)
		assert.False(t, ok, "%q must not be in the reserved map", word)
		assert.False(t, v.IsReserved(word))
	}
}

func TestPatternsOrderIsStable(t *testing.T) {
	v := Default()
	patterns := v.Patterns()
	names := make([]string, len(patterns))
	for i, p := range patterns {
		names[i] = p.Name
	}
	assert.Equal(t, []string{
		"COMMENT", "WHITESPACE", "CONCAT", "LITERAL", "CHAR_LITERAL",
		"REAL", "NUM", "ASSIGN", "RELOP", "ADDOP", "MULOP", "ID",
		"LPAREN", "RPAREN", "COMMA", "COLON", "SEMICOLON", "DOT",
	}, names)
}

func TestIsReservedCaseInsensitive(t *testing.T) {
	v := Default()
	assert.True(t, v.IsReserved("procedure"))
	assert.True(t, v.IsReserved("PROCEDURE"))
	assert.False(t, v.IsReserved("foobar"))
}
