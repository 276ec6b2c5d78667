package lexer

import (
	"fmt"

	"github.com/adalang/adafront/pkg/token"
)

// ErrorKind identifies one of the scanner's recoverable error categories
// (spec §7).
type ErrorKind string

const (
	ErrUnrecognizedChar  ErrorKind = "unrecognised_character"
	ErrIdentifierTooLong ErrorKind = "identifier_too_long"
	ErrInvalidNumber     ErrorKind = "invalid_number"
	ErrInvalidReal       ErrorKind = "invalid_real"
	ErrUnterminatedString ErrorKind = "unterminated_string"
	ErrUnterminatedChar   ErrorKind = "unterminated_char"
)

// LexicalError is a scanner diagnostic, carrying the 1-based position of
// the offending input (spec §7: "every error carries a 1-based line and
// column of the offending position"). In halt-on-error mode the first
// halting error is returned as a *LexicalError satisfying the error
// interface; in accumulate mode all errors collect in Scanner.Analyze's
// errs return value.
type LexicalError struct {
	Kind    ErrorKind
	Message string
	Pos     token.Position
}

// Error implements the error interface.
func (e *LexicalError) Error() string {
	return fmt.Sprintf("%s at %s", e.Message, e.Pos)
}
