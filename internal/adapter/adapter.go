// Package adapter wires the scanner and parser together behind a single
// JSON-serialisable boundary (spec §6), used by the web handler (the CLI
// drives the lexer and parser packages directly). It owns no domain logic
// of its own: it constructs a Scanner,
// runs it to completion, feeds its token vector to a Parser, and merges
// both diagnostic streams scanner-first.
package adapter

import (
	"github.com/adalang/adafront/internal/diagnostics"
	"github.com/adalang/adafront/internal/lexer"
	"github.com/adalang/adafront/internal/parser"
	"github.com/adalang/adafront/pkg/token"
)

// Options configures a single Analyze call. The zero value runs in
// accumulate mode, without a parse tree, without panic-mode recovery.
type Options struct {
	StopOnError      bool
	PanicModeRecover bool
	BuildParseTree   bool
	SyncSet          []token.Kind
	Logger           diagnostics.Logger
}

// TokenPair is the wire representation of a single scanned token.
type TokenPair struct {
	Kind   string `json:"kind"`
	Lexeme string `json:"lexeme"`
}

// Result is the JSON-serialisable outcome of one Analyze call (spec §6).
// Tree is the empty string unless Options.BuildParseTree was set. Errors
// carries the scanner's errors first, then the parser's, each rendered via
// their Error() string.
type Result struct {
	Tokens  []TokenPair `json:"tokens"`
	Tree    string      `json:"tree,omitempty"`
	Errors  []string    `json:"errors"`
	Success bool        `json:"success"`
}

// Analyze runs the full scan-then-parse pipeline over source and returns a
// Result. A halting scanner or parser error still yields a Result: halting
// mode stops early, but whatever was produced and accumulated up to that
// point is reported, with Success forced to false.
func Analyze(source string, opts Options) Result {
	logger := opts.Logger
	if logger == nil {
		logger = diagnostics.NewNop()
	}

	scanner := lexer.New(source,
		lexer.WithStopOnError(opts.StopOnError),
		lexer.WithLogger(logger),
	)
	tokens, lexErrs, lexErr := scanner.Analyze()

	result := Result{}
	for _, tok := range tokens {
		result.Tokens = append(result.Tokens, TokenPair{Kind: tok.Kind.String(), Lexeme: tok.Lexeme})
	}
	for _, e := range lexErrs {
		result.Errors = append(result.Errors, e.Error())
	}
	if lexErr != nil {
		// lexErr is the halting error; recordError already appended it to
		// lexErrs before the Scanner returned, so it is represented above.
		result.Success = false
		return result
	}

	syncSet := opts.SyncSet
	if syncSet == nil {
		syncSet = parser.DefaultSyncSet
	}

	p := parser.New(tokens,
		parser.WithStopOnError(opts.StopOnError),
		parser.WithPanicModeRecover(opts.PanicModeRecover),
		parser.WithSyncSet(syncSet),
		parser.WithBuildParseTree(opts.BuildParseTree),
		parser.WithLogger(logger),
	)
	tree, parseErrs, success, parseErr := p.Parse()

	if opts.BuildParseTree && tree != nil {
		result.Tree = parser.RenderTree(tree)
	}
	for _, e := range parseErrs {
		result.Errors = append(result.Errors, e.Error())
	}
	// parseErr, when set, is the halting error; addError already appended it
	// to parseErrs before Parse returned, so it is represented above. Success
	// requires a clean run of both phases: accumulated errors from either
	// (lexErrs or parseErrs, now merged into result.Errors) must never
	// coexist with Success == true (spec §6).
	result.Success = len(result.Errors) == 0 && success && lexErr == nil && parseErr == nil

	return result
}
