package parser

import (
	"fmt"

	"github.com/adalang/adafront/pkg/token"
)

// Error codes for programmatic error handling, trimmed from the teacher's
// larger taxonomy (internal/parser/error.go in the source repo) down to
// what this grammar's two failure shapes actually need.
const (
	ErrUnexpectedToken = "E_UNEXPECTED_TOKEN"
	ErrExtraTokens     = "E_EXTRA_TOKENS"
)

// ParseError is a structured parsing error with position information
// (spec §7: "Expected X, found Y" / "Extra tokens after program end").
type ParseError struct {
	Message string
	Code    string
	Pos     token.Position
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	return fmt.Sprintf("%s at %s", e.Message, e.Pos)
}

// NewParseError constructs a ParseError.
func NewParseError(pos token.Position, message, code string) *ParseError {
	return &ParseError{Message: message, Pos: pos, Code: code}
}
