// Package lexer implements the longest-match scanner over the Ada subset's
// ordered pattern table (vocabulary.Patterns), with reserved-word folding,
// an identifier length limit, literal unescaping, and in-band error
// recovery.
package lexer

import (
	"strconv"

	"github.com/adalang/adafront/internal/diagnostics"
	"github.com/adalang/adafront/internal/vocabulary"
	"github.com/adalang/adafront/pkg/token"
)

// maxIdentifierLength is the identifier length limit enforced by the
// scanner (spec §4.3 step 6, "Identifier bound" invariant in §8).
const maxIdentifierLength = 17

// Option configures a Scanner constructed with New.
type Option func(*Scanner)

// WithStopOnError selects halt-on-first-error mode for invalid number,
// invalid real and unterminated character literal (spec §4.3, "Halt policy").
// Unrecognised characters, over-length identifiers and unterminated string
// literals always recover, regardless of this setting.
func WithStopOnError(stop bool) Option {
	return func(s *Scanner) { s.stopOnError = stop }
}

// WithLogger injects the diagnostic sink. The default is a no-op logger.
func WithLogger(l diagnostics.Logger) Option {
	return func(s *Scanner) { s.logger = l }
}

// WithVocabulary injects a Vocabulary other than vocabulary.Default(). This
// exists chiefly for tests that want a reduced pattern table.
func WithVocabulary(v *vocabulary.Vocabulary) Option {
	return func(s *Scanner) { s.vocab = v }
}

// Scanner consumes a source string and produces a finite token sequence
// terminated by EOF, accumulating recoverable errors as it goes. A Scanner
// is not reusable across different source inputs: construct a new one per
// request (spec §5).
type Scanner struct {
	source      string
	pos         int
	line        int
	column      int
	vocab       *vocabulary.Vocabulary
	logger      diagnostics.Logger
	stopOnError bool
	errors      []LexicalError
}

// New constructs a Scanner over source, ready to Analyze.
func New(source string, opts ...Option) *Scanner {
	s := &Scanner{
		source: source,
		line:   1,
		column: 1,
		vocab:  vocabulary.Default(),
		logger: diagnostics.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Analyze runs the scanner to completion. tokens is always non-empty and
// ends with an EOF token; errs is the possibly-empty accumulated error
// list. If the scanner is in halt-on-error mode and a halting condition
// (invalid number, invalid real, unterminated character literal) is reached,
// err is a non-nil *LexicalError and tokens/errs hold whatever was produced
// up to that point.
func (s *Scanner) Analyze() (tokens []token.Token, errs []LexicalError, err error) {
	for {
		s.skipWhitespaceAndComments()

		if s.pos >= len(s.source) {
			tokens = append(tokens, token.New(token.EOF, "", s.pos1()))
			return tokens, s.errors, nil
		}

		if s.source[s.pos] == '"' {
			if unterminated, end := s.unterminatedStringAhead(); unterminated {
				// Always recovers, even in halt-on-error mode: this is step 5
				// of the scanning algorithm, which must keep the scanner
				// productive (spec §4.3).
				startPos := s.pos1()
				s.advanceTo(end)
				s.recordError(ErrUnterminatedString, "unterminated string literal", startPos)
				continue
			}
		}

		tok, haltErr, matched := s.matchOne()
		if haltErr != nil {
			return tokens, s.errors, haltErr
		}
		if matched {
			if tok != nil {
				tokens = append(tokens, *tok)
			}
			continue
		}

		startPos := s.pos1()
		s.advanceRune()
		s.recordError(ErrUnrecognizedChar, "unrecognised character", startPos)
	}
}

// skipWhitespaceAndComments consumes whitespace and comments, interleaved,
// until neither advances the cursor (spec §4.3 step 2).
func (s *Scanner) skipWhitespaceAndComments() {
	for {
		before := s.pos
		for _, name := range []string{"COMMENT", "WHITESPACE"} {
			p := s.pattern(name)
			if end, ok := p.Match(s.source, s.pos); ok && end > s.pos {
				s.advanceTo(end)
			}
		}
		if s.pos == before {
			return
		}
	}
}

// unterminatedStringAhead implements the step-5 lookahead: the current
// character is '"' and no closing '"' precedes the next newline or end of
// input.
func (s *Scanner) unterminatedStringAhead() (bool, int) {
	j := s.pos + 1
	for j < len(s.source) {
		if s.source[j] == '\n' {
			return true, j
		}
		if s.source[j] == '"' {
			return false, 0
		}
		j++
	}
	return true, j
}

// matchOne attempts the pattern table in order and routes a match to its
// kind-specific post-processor. matched is false if nothing in the table
// matched at the current offset (including the whitespace/comment entries,
// which never match here since skipWhitespaceAndComments already consumed
// them).
func (s *Scanner) matchOne() (tok *token.Token, haltErr error, matched bool) {
	for _, p := range s.vocab.Patterns() {
		if p.Name == "COMMENT" || p.Name == "WHITESPACE" {
			continue
		}
		end, ok := p.Match(s.source, s.pos)
		if !ok {
			continue
		}
		lexeme := s.source[s.pos:end]
		startPos := s.pos1()
		s.advanceTo(end)
		t, herr := s.postProcess(p.Name, lexeme, startPos)
		return t, herr, true
	}
	return nil, nil, false
}

// postProcess applies the kind-specific handling of spec §4.3 step 6.
func (s *Scanner) postProcess(patternName, lexeme string, pos token.Position) (*token.Token, error) {
	switch patternName {
	case "ID":
		return s.processIdentifier(lexeme, pos)
	case "NUM":
		return s.processNum(lexeme, pos)
	case "REAL":
		return s.processReal(lexeme, pos)
	case "LITERAL":
		return s.processStringLiteral(lexeme, pos)
	case "CHAR_LITERAL":
		return s.processCharLiteral(lexeme, pos)
	default:
		t := token.New(kindFor(patternName, lexeme), lexeme, pos)
		return &t, nil
	}
}

func (s *Scanner) processIdentifier(lexeme string, pos token.Position) (*token.Token, error) {
	if kind, ok := s.vocab.ReservedKind(lexeme); ok {
		t := token.New(kind, lexeme, pos)
		return &t, nil
	}
	if len(lexeme) > maxIdentifierLength {
		s.recordError(ErrIdentifierTooLong, "identifier exceeds 17 characters", pos)
		return nil, nil
	}
	t := token.New(token.IDENT, lexeme, pos)
	return &t, nil
}

func (s *Scanner) processNum(lexeme string, pos token.Position) (*token.Token, error) {
	v, err := strconv.ParseInt(lexeme, 10, 64)
	if err != nil {
		lexErr := s.recordError(ErrInvalidNumber, "invalid integer literal", pos)
		t := token.New(token.INTEGER, lexeme, pos)
		if s.stopOnError {
			return &t, lexErr
		}
		return &t, nil
	}
	t := token.New(token.INTEGER, lexeme, pos).WithInt(v)
	return &t, nil
}

func (s *Scanner) processReal(lexeme string, pos token.Position) (*token.Token, error) {
	v, err := strconv.ParseFloat(lexeme, 64)
	if err != nil {
		lexErr := s.recordError(ErrInvalidReal, "invalid real literal", pos)
		t := token.New(token.REAL, lexeme, pos)
		if s.stopOnError {
			return &t, lexErr
		}
		return &t, nil
	}
	t := token.New(token.REAL, lexeme, pos).WithReal(v)
	return &t, nil
}

func (s *Scanner) processStringLiteral(lexeme string, pos token.Position) (*token.Token, error) {
	if len(lexeme) == 0 || lexeme[len(lexeme)-1] != '"' || len(lexeme) < 2 {
		s.recordError(ErrUnterminatedString, "unterminated string literal", pos)
		return nil, nil
	}
	decoded := unescape(lexeme[1:len(lexeme)-1], '"')
	t := token.New(token.STRING, lexeme, pos).WithLiteral(decoded)
	return &t, nil
}

func (s *Scanner) processCharLiteral(lexeme string, pos token.Position) (*token.Token, error) {
	if len(lexeme) < 2 || lexeme[len(lexeme)-1] != '\'' {
		lexErr := s.recordError(ErrUnterminatedChar, "unterminated character literal", pos)
		t := token.New(token.CHARLIT, lexeme, pos)
		if s.stopOnError {
			return &t, lexErr
		}
		return &t, nil
	}
	decoded := unescape(lexeme[1:len(lexeme)-1], '\'')
	t := token.New(token.CHARLIT, lexeme, pos).WithLiteral(decoded)
	return &t, nil
}

// unescape collapses a doubled quote character into a single one.
func unescape(s string, quote byte) string {
	out := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		out = append(out, s[i])
		if s[i] == quote && i+1 < len(s) && s[i+1] == quote {
			i++
		}
	}
	return string(out)
}

// kindFor maps a non-literal pattern match to its token kind. For the
// multi-alternative patterns (RELOP/ADDOP/MULOP) it disambiguates by
// inspecting the matched lexeme.
func kindFor(patternName, lexeme string) token.Kind {
	switch patternName {
	case "CONCAT":
		return token.AMP
	case "ASSIGN":
		return token.ASSIGN
	case "RELOP":
		return relopKind(lexeme)
	case "ADDOP":
		return addopKind(lexeme)
	case "MULOP":
		return mulopKind(lexeme)
	case "LPAREN":
		return token.LPAREN
	case "RPAREN":
		return token.RPAREN
	case "COMMA":
		return token.COMMA
	case "COLON":
		return token.COLON
	case "SEMICOLON":
		return token.SEMICOLON
	case "DOT":
		return token.DOT
	default:
		return token.ILLEGAL
	}
}

func relopKind(lexeme string) token.Kind {
	switch lexeme {
	case "<=":
		return token.LE
	case ">=":
		return token.GE
	case "/=":
		return token.NEQ
	case "=":
		return token.EQ
	case "<":
		return token.LT
	default:
		return token.GT
	}
}

func addopKind(lexeme string) token.Kind {
	switch lowerWord(lexeme) {
	case "or":
		return token.OR
	case "+":
		return token.PLUS
	default:
		return token.MINUS
	}
}

func mulopKind(lexeme string) token.Kind {
	switch lowerWord(lexeme) {
	case "rem":
		return token.REM
	case "mod":
		return token.MOD
	case "and":
		return token.AND
	case "*":
		return token.STAR
	default:
		return token.SLASH
	}
}

func lowerWord(s string) string {
	b := make([]byte, len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c >= 'A' && c <= 'Z' {
			c += 'a' - 'A'
		}
		b[i] = c
	}
	return string(b)
}

func (s *Scanner) pos1() token.Position {
	return token.Position{Line: s.line, Column: s.column}
}

// advanceTo moves the cursor to end, updating line/column as it crosses any
// newlines contained in the consumed span (spec §4.3 step 7: lexemes may
// contain newlines only within literals, but the scanner must still account
// for them).
func (s *Scanner) advanceTo(end int) {
	for i := s.pos; i < end; i++ {
		if s.source[i] == '\n' {
			s.line++
			s.column = 1
		} else {
			s.column++
		}
	}
	s.pos = end
}

func (s *Scanner) advanceRune() {
	s.advanceTo(s.pos + 1)
}

func (s *Scanner) pattern(name string) vocabulary.Pattern {
	for _, p := range s.vocab.Patterns() {
		if p.Name == name {
			return p
		}
	}
	return vocabulary.Pattern{}
}

func (s *Scanner) recordError(kind ErrorKind, message string, pos token.Position) error {
	e := LexicalError{Kind: kind, Message: message, Pos: pos}
	s.errors = append(s.errors, e)
	s.logger.Warn(message, diagnostics.String("kind", string(kind)), diagnostics.String("pos", pos.String()))
	return &e
}
