package parser

import "github.com/adalang/adafront/pkg/token"

// DefaultSyncSet is the recommended panic-mode synchronization set (spec
// §9: "not concretely populated in the source... document the recommended
// default").
var DefaultSyncSet = []token.Kind{token.SEMICOLON, token.BEGIN, token.END, token.EOF}

// synchronize implements panic-mode resynchronisation: consume tokens until
// one of syncSet is seen or EOF is reached. Returns true if the cursor
// stopped on a token from syncSet (as opposed to running off the end).
func (p *Parser) synchronize(syncSet []token.Kind) bool {
	for {
		cur := p.cursor.current().Kind
		for _, k := range syncSet {
			if cur == k {
				return true
			}
		}
		if cur == token.EOF {
			return false
		}
		p.cursor.advance()
	}
}
