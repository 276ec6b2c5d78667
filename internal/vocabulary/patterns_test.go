package vocabulary

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatchWordRespectsBoundaries(t *testing.T) {
	// "order" must not be matched as "or" + "der".
	end, ok := matchAddop("order", 0)
	assert.False(t, ok)
	assert.Equal(t, 0, end)

	end, ok = matchAddop("or der", 0)
	assert.True(t, ok)
	assert.Equal(t, 2, end)
}

func TestMatchMulopWords(t *testing.T) {
	for _, tc := range []struct {
		in   string
		want int
	}{
		{"rem 5", 3},
		{"MOD 5", 3},
		{"AnD 5", 3},
		{"* 5", 1},
	} {
		end, ok := matchMulop(tc.in, 0)
		assert.True(t, ok, tc.in)
		assert.Equal(t, tc.want, end, tc.in)
	}
}

func TestMatchRelopPrefersLongestFirst(t *testing.T) {
	end, ok := matchRelop("<= x", 0)
	assert.True(t, ok)
	assert.Equal(t, 2, end)

	end, ok = matchRelop("< x", 0)
	assert.True(t, ok)
	assert.Equal(t, 1, end)
}

func TestMatchReal(t *testing.T) {
	end, ok := matchReal("3.14;", 0)
	assert.True(t, ok)
	assert.Equal(t, 4, end)

	_, ok = matchReal("3;", 0)
	assert.False(t, ok, "bare integer is not a REAL")

	_, ok = matchReal("3.;", 0)
	assert.False(t, ok, "a dot with no trailing digit is not a REAL")
}

func TestMatchNum(t *testing.T) {
	end, ok := matchNum("123abc", 0)
	assert.True(t, ok)
	assert.Equal(t, 3, end)
}

func TestMatchIdent(t *testing.T) {
	end, ok := matchIdent("foo_Bar2 x", 0)
	assert.True(t, ok)
	assert.Equal(t, 8, end)

	_, ok = matchIdent("2foo", 0)
	assert.False(t, ok)
}

func TestMatchStringLiteralEscapedQuote(t *testing.T) {
	end, ok := matchStringLiteral(`"he said ""hi""" rest`, 0)
	assert.True(t, ok)
	assert.Equal(t, len(`"he said ""hi"""`), end)
}

func TestMatchStringLiteralUnterminated(t *testing.T) {
	end, ok := matchStringLiteral(`"unterminated`, 0)
	assert.True(t, ok, "lenient match still reports ok; the scanner decides termination")
	assert.Equal(t, len(`"unterminated`), end)
}

func TestMatchCharLiteral(t *testing.T) {
	end, ok := matchCharLiteral(`'a' x`, 0)
	assert.True(t, ok)
	assert.Equal(t, 3, end)
}

func TestMatchComment(t *testing.T) {
	end, ok := matchComment("-- a comment\nnext", 0)
	assert.True(t, ok)
	assert.Equal(t, len("-- a comment"), end)
}

func TestMatchWhitespace(t *testing.T) {
	end, ok := matchWhitespace("   \t\nx", 0)
	assert.True(t, ok)
	assert.Equal(t, 5, end)

	_, ok = matchWhitespace("x", 0)
	assert.False(t, ok)
}
