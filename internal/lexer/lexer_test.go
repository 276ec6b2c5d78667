package lexer

import (
	"testing"

	"github.com/adalang/adafront/pkg/token"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func analyze(t *testing.T, src string, opts ...Option) ([]token.Token, []LexicalError, error) {
	t.Helper()
	return New(src, opts...).Analyze()
}

func TestAnalyzeAlwaysEndsWithEOF(t *testing.T) {
	tokens, errs, err := analyze(t, "procedure P is begin end P;")
	require.NoError(t, err)
	assert.Empty(t, errs)
	require.NotEmpty(t, tokens)
	assert.Equal(t, token.EOF, tokens[len(tokens)-1].Kind)
}

func TestEmptySourceProducesOnlyEOF(t *testing.T) {
	tokens, errs, err := analyze(t, "")
	require.NoError(t, err)
	assert.Empty(t, errs)
	require.Len(t, tokens, 1)
	assert.Equal(t, token.EOF, tokens[0].Kind)
}

func TestReservedWordFolding(t *testing.T) {
	tokens, _, err := analyze(t, "PROCEDURE Integer IS")
	require.NoError(t, err)
	assert.Equal(t, token.PROCEDURE, tokens[0].Kind)
	assert.Equal(t, token.INTEGERT, tokens[1].Kind)
	assert.Equal(t, token.IS, tokens[2].Kind)
}

func TestCaseInsensitivity(t *testing.T) {
	tokens, _, err := analyze(t, "procedure PROCEDURE Procedure")
	require.NoError(t, err)
	for _, tok := range tokens[:3] {
		assert.Equal(t, token.PROCEDURE, tok.Kind)
	}
}

func TestOrAndRemModAreOperatorsNotReserved(t *testing.T) {
	tokens, _, err := analyze(t, "a or b and c rem d mod e")
	require.NoError(t, err)

	var kinds []token.Kind
	for _, tok := range tokens {
		if tok.Kind != token.IDENT {
			kinds = append(kinds, tok.Kind)
		}
	}
	assert.Equal(t, []token.Kind{token.OR, token.AND, token.REM, token.MOD, token.EOF}, kinds)
}

func TestOrWordBoundaryDoesNotSwallowOrder(t *testing.T) {
	tokens, errs, err := analyze(t, "order")
	require.NoError(t, err)
	assert.Empty(t, errs)
	assert.Equal(t, token.IDENT, tokens[0].Kind)
	assert.Equal(t, "order", tokens[0].Lexeme)
}

func TestIdentifierLengthLimit(t *testing.T) {
	ok17 := "abcdefghijklmnopq" // 17 chars
	tokens, errs, err := analyze(t, ok17)
	require.NoError(t, err)
	assert.Empty(t, errs)
	assert.Equal(t, token.IDENT, tokens[0].Kind)

	tooLong := ok17 + "r" // 18 chars
	tokens, errs, err = analyze(t, tooLong)
	require.NoError(t, err)
	require.Len(t, errs, 1)
	assert.Equal(t, ErrIdentifierTooLong, errs[0].Kind)
	assert.Equal(t, token.EOF, tokens[0].Kind, "the oversized identifier is discarded, not emitted")
}

func TestStringLiteralUnescaping(t *testing.T) {
	tokens, errs, err := analyze(t, `"she said ""hi"""`)
	require.NoError(t, err)
	assert.Empty(t, errs)
	require.Equal(t, token.STRING, tokens[0].Kind)
	require.NotNil(t, tokens[0].Literal)
	assert.Equal(t, `she said "hi"`, *tokens[0].Literal)
}

func TestCharLiteralUnescaping(t *testing.T) {
	tokens, errs, err := analyze(t, `'a'`)
	require.NoError(t, err)
	assert.Empty(t, errs)
	require.Equal(t, token.CHARLIT, tokens[0].Kind)
	require.NotNil(t, tokens[0].Literal)
	assert.Equal(t, "a", *tokens[0].Literal)
}

func TestUnterminatedStringAlwaysRecoversEvenInStopOnErrorMode(t *testing.T) {
	tokens, errs, err := analyze(t, "\"abc\nend;", WithStopOnError(true))
	require.NoError(t, err, "step 5 always recovers, never halts")
	require.Len(t, errs, 1)
	assert.Equal(t, ErrUnterminatedString, errs[0].Kind)
	assert.Equal(t, token.END, tokens[0].Kind, "scanning continues past the unterminated string")
}

func TestUnterminatedCharHaltsInStopOnErrorMode(t *testing.T) {
	_, errs, err := analyze(t, "'a\nend;", WithStopOnError(true))
	require.Error(t, err, "unterminated char literal is the halting case of the halt policy")
	require.Len(t, errs, 1)
	assert.Equal(t, ErrUnterminatedChar, errs[0].Kind)
}

func TestUnterminatedCharRecoversInAccumulateMode(t *testing.T) {
	tokens, errs, err := analyze(t, "'a\nend;")
	require.NoError(t, err)
	require.Len(t, errs, 1)
	assert.Equal(t, ErrUnterminatedChar, errs[0].Kind)
	assert.Equal(t, token.CHARLIT, tokens[0].Kind, "the unterminated literal is still emitted")
	assert.Equal(t, token.END, tokens[1].Kind)
}

func TestInvalidNumberHaltsInStopOnErrorMode(t *testing.T) {
	overflowing := "99999999999999999999999999" // exceeds int64 range
	_, errs, err := analyze(t, overflowing, WithStopOnError(true))
	require.Error(t, err)
	require.Len(t, errs, 1)
	assert.Equal(t, ErrInvalidNumber, errs[0].Kind)
}

func TestInvalidNumberRecoversInAccumulateMode(t *testing.T) {
	overflowing := "99999999999999999999999999"
	tokens, errs, err := analyze(t, overflowing)
	require.NoError(t, err)
	require.Len(t, errs, 1)
	assert.Equal(t, ErrInvalidNumber, errs[0].Kind)
	assert.Equal(t, token.INTEGER, tokens[0].Kind)
	assert.Nil(t, tokens[0].IntValue)
}

func TestUnrecognizedCharacterAlwaysRecovers(t *testing.T) {
	tokens, errs, err := analyze(t, "a $ b", WithStopOnError(true))
	require.NoError(t, err)
	require.Len(t, errs, 1)
	assert.Equal(t, ErrUnrecognizedChar, errs[0].Kind)
	assert.Equal(t, token.IDENT, tokens[0].Kind)
	assert.Equal(t, token.IDENT, tokens[1].Kind)
}

func TestCommentsAreSkipped(t *testing.T) {
	tokens, errs, err := analyze(t, "-- a comment\nprocedure")
	require.NoError(t, err)
	assert.Empty(t, errs)
	assert.Equal(t, token.PROCEDURE, tokens[0].Kind)
}

func TestPositionsAreOneBasedAndAdvanceAcrossLines(t *testing.T) {
	tokens, _, err := analyze(t, "a\nb")
	require.NoError(t, err)
	assert.Equal(t, token.Position{Line: 1, Column: 1}, tokens[0].Pos)
	assert.Equal(t, token.Position{Line: 2, Column: 1}, tokens[1].Pos)
}

func TestRelationalAndArithmeticOperators(t *testing.T) {
	tokens, _, err := analyze(t, "<= >= /= = < > + - * /")
	require.NoError(t, err)
	want := []token.Kind{
		token.LE, token.GE, token.NEQ, token.EQ, token.LT, token.GT,
		token.PLUS, token.MINUS, token.STAR, token.SLASH, token.EOF,
	}
	for i, k := range want {
		assert.Equal(t, k, tokens[i].Kind, "token %d", i)
	}
}

func TestConcatAndAssign(t *testing.T) {
	tokens, _, err := analyze(t, "a & b := c")
	require.NoError(t, err)
	assert.Equal(t, token.AMP, tokens[1].Kind)
	assert.Equal(t, token.ASSIGN, tokens[3].Kind)
}
