// Package parser implements the recursive-descent predictive parser over
// the Ada subset grammar (spec §4.4): one method per nonterminal, singleton
// lookahead sets, optional parse-tree construction, and optional
// panic-mode resynchronisation.
package parser

import (
	"github.com/adalang/adafront/internal/diagnostics"
	"github.com/adalang/adafront/internal/vocabulary"
	"github.com/adalang/adafront/pkg/token"
)

// Option configures a Parser constructed with New.
type Option func(*Parser)

// WithStopOnError selects halt-on-first-error mode: the first unmatched
// expectation surfaces as a fatal *ParseError from Parse, and parsing
// ceases immediately (spec §4.4 "Halt policy").
func WithStopOnError(stop bool) Option {
	return func(p *Parser) { p.stopOnError = stop }
}

// WithPanicModeRecover enables panic-mode resynchronisation on a mismatch:
// the parser consumes tokens until one of syncSet (or EOF) is reached, then
// continues from there. Has no effect together with WithStopOnError, since
// halting mode never resumes after its first error.
func WithPanicModeRecover(enable bool) Option {
	return func(p *Parser) { p.panicRecover = enable }
}

// WithSyncSet overrides DefaultSyncSet for panic-mode recovery.
func WithSyncSet(set []token.Kind) Option {
	return func(p *Parser) { p.syncSet = set }
}

// WithBuildParseTree toggles parse-tree construction. When false the parser
// skips node allocation entirely; its observable behaviour (error list,
// success flag) is identical either way (spec §4.4, "Tree/flag
// equivalence" in §8).
func WithBuildParseTree(build bool) Option {
	return func(p *Parser) { p.buildTree = build }
}

// WithLogger injects the diagnostic sink. The default is a no-op logger.
func WithLogger(l diagnostics.Logger) Option {
	return func(p *Parser) { p.logger = l }
}

// WithVocabulary injects a Vocabulary other than vocabulary.Default(), so
// the parser's ID/reserved-word re-resolution stays consistent with
// whatever vocabulary the scanner used.
func WithVocabulary(v *vocabulary.Vocabulary) Option {
	return func(p *Parser) { p.vocab = v }
}

// Parser is a predictive, single-token-lookahead recursive-descent parser.
// It is not reusable across different token sequences: construct a new one
// per request (spec §5).
type Parser struct {
	cursor       *tokenCursor
	vocab        *vocabulary.Vocabulary
	logger       diagnostics.Logger
	stopOnError  bool
	panicRecover bool
	buildTree    bool
	syncSet      []token.Kind

	errors []*ParseError
}

// New constructs a Parser over a complete token vector (normally the
// output of Scanner.Analyze). tokens must be non-empty and end with EOF.
func New(tokens []token.Token, opts ...Option) *Parser {
	p := &Parser{
		cursor:  newCursor(tokens),
		vocab:   vocabulary.Default(),
		logger:  diagnostics.NewNop(),
		syncSet: DefaultSyncSet,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// parseHalt is the sentinel panic value used to unwind to Parse when
// stopOnError is set and an error is raised. The original implementation
// raises a plain exception from report_error in this situation; confining
// the unwind to this package's single entry point keeps every nonterminal
// method free of threaded error returns.
type parseHalt struct{ err *ParseError }

// Parse runs the parser to completion. tree is nil unless BuildParseTree
// was requested. success is true iff errs is empty. err is non-nil only in
// halt-on-error mode, carrying the first encountered *ParseError.
func (p *Parser) Parse() (tree *ParseTreeNode, errs []*ParseError, success bool, err error) {
	defer func() {
		if r := recover(); r != nil {
			if h, ok := r.(parseHalt); ok {
				err = h.err
				errs = p.errors
				success = false
				return
			}
			panic(r)
		}
	}()

	tree = p.parseProg()

	if !p.cursor.isEOF() {
		p.addError(p.cursor.current().Pos, "Extra tokens found after program end.", ErrExtraTokens)
	}

	return tree, p.errors, len(p.errors) == 0, nil
}

func (p *Parser) addError(pos token.Position, msg, code string) {
	e := NewParseError(pos, msg, code)
	p.errors = append(p.errors, e)
	p.logger.Warn(msg, diagnostics.String("code", code), diagnostics.String("pos", pos.String()))
	if p.stopOnError {
		panic(parseHalt{err: e})
	}
}

// effectiveKind re-resolves a token that the scanner classified as IDENT
// but whose upper-cased lexeme is in fact reserved, so the parser's
// reserved-word handling stays centralised in the vocabulary rather than
// duplicated here (spec §4.4).
func (p *Parser) effectiveKind(tok token.Token) token.Kind {
	if tok.Kind != token.IDENT {
		return tok.Kind
	}
	if k, ok := p.vocab.ReservedKind(tok.Lexeme); ok {
		return k
	}
	return tok.Kind
}

// match compares the effective kind of the current token against expected.
// On a match it advances and, if parent is non-nil and tree building is
// enabled, attaches a leaf to parent. On a mismatch it records an error and
// does not advance, unless panic-mode recovery is enabled, in which case it
// resynchronises on the parser's configured sync set.
func (p *Parser) match(expected token.Kind, parent *ParseTreeNode) bool {
	cur := p.cursor.current()
	if p.effectiveKind(cur) == expected {
		if p.buildTree && parent != nil {
			parent.addChild(leafNode(expected.String(), cur))
		}
		p.cursor.advance()
		return true
	}

	p.addError(cur.Pos, expectedMessage(expected, cur), ErrUnexpectedToken)
	if p.panicRecover {
		p.synchronize(p.syncSet)
	}
	return false
}

func expectedMessage(expected token.Kind, found token.Token) string {
	return "Expected " + expected.String() + ", found '" + found.Lexeme + "'"
}

// peekIs reports whether the effective kind of the current token is k,
// without consuming it. Used to decide which alternative of an
// ε-producing nonterminal to take.
func (p *Parser) peekIs(k token.Kind) bool {
	return p.effectiveKind(p.cursor.current()) == k
}

// --- Grammar ---
//
//	Prog            → PROCEDURE id Args IS DeclPart Procedures BEGIN SeqOfStmts END id ;
//	DeclPart        → IdList : TypeMark ; DeclPart | ε
//	IdList          → id (, id)*
//	TypeMark        → INTEGERT | REALT | CHART | CONSTANT := Value
//	Value           → NUM
//	Procedures      → Prog Procedures | ε
//	Args            → ( ArgList ) | ε
//	ArgList         → Mode IdList : TypeMark MoreArgs
//	MoreArgs        → ; ArgList | ε
//	Mode            → IN | OUT | INOUT | ε
//	SeqOfStmts      → ε

func (p *Parser) newNodeIf(name string) *ParseTreeNode {
	if !p.buildTree {
		return nil
	}
	return newNode(name)
}

func (p *Parser) parseProg() *ParseTreeNode {
	node := p.newNodeIf("Prog")

	p.match(token.PROCEDURE, node)
	p.match(token.IDENT, node)
	if child := p.parseArgs(); child != nil {
		node.addChild(child)
	}
	p.match(token.IS, node)
	if child := p.parseDeclPart(); child != nil {
		node.addChild(child)
	}
	if child := p.parseProcedures(); child != nil {
		node.addChild(child)
	}
	p.match(token.BEGIN, node)
	if child := p.parseSeqOfStatements(); child != nil {
		node.addChild(child)
	}
	p.match(token.END, node)
	p.match(token.IDENT, node)
	p.match(token.SEMICOLON, node)

	return node
}

// parseDeclPart fires on ID lookahead; otherwise ε.
func (p *Parser) parseDeclPart() *ParseTreeNode {
	node := p.newNodeIf("DeclPart")

	if !p.peekIs(token.IDENT) {
		if p.buildTree {
			node.addChild(epsilonNode())
		}
		return node
	}

	if child := p.parseIdentifierList(); child != nil {
		node.addChild(child)
	}
	p.match(token.COLON, node)
	if child := p.parseTypeMark(); child != nil {
		node.addChild(child)
	}
	p.match(token.SEMICOLON, node)
	if child := p.parseDeclPart(); child != nil {
		node.addChild(child)
	}

	return node
}

func (p *Parser) parseIdentifierList() *ParseTreeNode {
	node := p.newNodeIf("IdList")

	p.match(token.IDENT, node)
	for p.peekIs(token.COMMA) {
		p.match(token.COMMA, node)
		p.match(token.IDENT, node)
	}

	return node
}

func (p *Parser) parseTypeMark() *ParseTreeNode {
	node := p.newNodeIf("TypeMark")

	switch {
	case p.peekIs(token.INTEGERT):
		p.match(token.INTEGERT, node)
	case p.peekIs(token.REALT):
		p.match(token.REALT, node)
	case p.peekIs(token.CHART):
		p.match(token.CHART, node)
	case p.peekIs(token.CONST):
		p.match(token.CONST, node)
		p.match(token.ASSIGN, node)
		if child := p.parseValue(); child != nil {
			node.addChild(child)
		}
	default:
		cur := p.cursor.current()
		p.addError(cur.Pos, expectedMessage(token.INTEGERT, cur), ErrUnexpectedToken)
		if p.panicRecover {
			p.synchronize(p.syncSet)
		}
	}

	return node
}

func (p *Parser) parseValue() *ParseTreeNode {
	node := p.newNodeIf("Value")
	p.match(token.INTEGER, node)
	return node
}

// parseProcedures fires on PROCEDURE lookahead; otherwise ε.
func (p *Parser) parseProcedures() *ParseTreeNode {
	node := p.newNodeIf("Procedures")

	if !p.peekIs(token.PROCEDURE) {
		if p.buildTree {
			node.addChild(epsilonNode())
		}
		return node
	}

	if child := p.parseProg(); child != nil {
		node.addChild(child)
	}
	if child := p.parseProcedures(); child != nil {
		node.addChild(child)
	}

	return node
}

// parseArgs fires on '(' lookahead; otherwise ε.
func (p *Parser) parseArgs() *ParseTreeNode {
	node := p.newNodeIf("Args")

	if !p.peekIs(token.LPAREN) {
		if p.buildTree {
			node.addChild(epsilonNode())
		}
		return node
	}

	p.match(token.LPAREN, node)
	if child := p.parseArgList(); child != nil {
		node.addChild(child)
	}
	p.match(token.RPAREN, node)

	return node
}

func (p *Parser) parseArgList() *ParseTreeNode {
	node := p.newNodeIf("ArgList")

	if child := p.parseMode(); child != nil {
		node.addChild(child)
	}
	if child := p.parseIdentifierList(); child != nil {
		node.addChild(child)
	}
	p.match(token.COLON, node)
	if child := p.parseTypeMark(); child != nil {
		node.addChild(child)
	}
	if child := p.parseMoreArgs(); child != nil {
		node.addChild(child)
	}

	return node
}

// parseMoreArgs fires on ';' lookahead; otherwise ε.
func (p *Parser) parseMoreArgs() *ParseTreeNode {
	node := p.newNodeIf("MoreArgs")

	if !p.peekIs(token.SEMICOLON) {
		if p.buildTree {
			node.addChild(epsilonNode())
		}
		return node
	}

	p.match(token.SEMICOLON, node)
	if child := p.parseArgList(); child != nil {
		node.addChild(child)
	}

	return node
}

// parseMode fires on IN/OUT/INOUT lookahead; otherwise ε.
func (p *Parser) parseMode() *ParseTreeNode {
	node := p.newNodeIf("Mode")

	switch {
	case p.peekIs(token.IN):
		p.match(token.IN, node)
	case p.peekIs(token.OUT):
		p.match(token.OUT, node)
	case p.peekIs(token.INOUT):
		p.match(token.INOUT, node)
	default:
		if p.buildTree {
			node.addChild(epsilonNode())
		}
	}

	return node
}

// parseSeqOfStatements is ε in this grammar subset (spec §9, "Open
// question": empty procedure bodies only; an extended statement grammar is
// a future concern outside this spec).
func (p *Parser) parseSeqOfStatements() *ParseTreeNode {
	node := p.newNodeIf("SeqOfStmts")
	if p.buildTree {
		node.addChild(epsilonNode())
	}
	return node
}
