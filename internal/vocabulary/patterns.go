package vocabulary

// Pattern is one entry of the ordered longest-match pattern table (spec
// §4.1). Match implements "anchored longest-match starting at offset i": it
// reports the exclusive end offset of a match beginning exactly at i, or ok
// == false if the pattern does not match there at all.
type Pattern struct {
	Name  string
	Match func(s string, i int) (end int, ok bool)
}

// buildPatterns returns the pattern table in the exact priority order
// required by spec §4.1. The order is the tiebreak: the scanner takes the
// first pattern that matches at the current offset, not the longest match
// across alternatives (the order is chosen so the two coincide, e.g. REAL
// before NUM, ASSIGN before the single-character COLON).
//
// ADDOP and MULOP precede ID so that the word-form operators or/and/rem/mod
// are classified as operator kinds before the ID pattern ever gets a chance
// at them; matchWord's boundary check still lets "order" fall through to ID
// untouched, since "or" followed by an identifier character is not a match.
func buildPatterns() []Pattern {
	return []Pattern{
		{"COMMENT", matchComment},
		{"WHITESPACE", matchWhitespace},
		{"CONCAT", matchLiteralRune('&')},
		{"LITERAL", matchStringLiteral},
		{"CHAR_LITERAL", matchCharLiteral},
		{"REAL", matchReal},
		{"NUM", matchNum},
		{"ASSIGN", matchLiteralString(":=")},
		{"RELOP", matchRelop},
		{"ADDOP", matchAddop},
		{"MULOP", matchMulop},
		{"ID", matchIdent},
		{"LPAREN", matchLiteralRune('(')},
		{"RPAREN", matchLiteralRune(')')},
		{"COMMA", matchLiteralRune(',')},
		{"COLON", matchLiteralRune(':')},
		{"SEMICOLON", matchLiteralRune(';')},
		{"DOT", matchLiteralRune('.')},
	}
}

func matchLiteralRune(r byte) func(string, int) (int, bool) {
	return func(s string, i int) (int, bool) {
		if i < len(s) && s[i] == r {
			return i + 1, true
		}
		return i, false
	}
}

func matchLiteralString(lit string) func(string, int) (int, bool) {
	return func(s string, i int) (int, bool) {
		if i+len(lit) <= len(s) && s[i:i+len(lit)] == lit {
			return i + len(lit), true
		}
		return i, false
	}
}

func matchComment(s string, i int) (int, bool) {
	if i+1 >= len(s) || s[i] != '-' || s[i+1] != '-' {
		return i, false
	}
	j := i + 2
	for j < len(s) && s[j] != '\n' {
		j++
	}
	return j, true
}

func matchWhitespace(s string, i int) (int, bool) {
	j := i
	for j < len(s) && isSpace(s[j]) {
		j++
	}
	return j, j > i
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\r' || c == '\n'
}

// matchStringLiteral matches a " ... " run, accepting "" as an escaped
// embedded quote. If no closing quote is found it still matches through the
// next newline or end of input (the post-processor in the scanner decides
// whether that is an unterminated literal); this mirrors the original's
// lenient pattern coupled with the scanner's own lookahead at step 5.
func matchStringLiteral(s string, i int) (int, bool) {
	if i >= len(s) || s[i] != '"' {
		return i, false
	}
	j := i + 1
	for j < len(s) {
		if s[j] == '\n' {
			return j, true
		}
		if s[j] == '"' {
			if j+1 < len(s) && s[j+1] == '"' {
				j += 2
				continue
			}
			return j + 1, true
		}
		j++
	}
	return j, true
}

// matchCharLiteral mirrors matchStringLiteral for ' ... ' with '' escaping.
func matchCharLiteral(s string, i int) (int, bool) {
	if i >= len(s) || s[i] != '\'' {
		return i, false
	}
	j := i + 1
	for j < len(s) {
		if s[j] == '\n' {
			return j, true
		}
		if s[j] == '\'' {
			if j+1 < len(s) && s[j+1] == '\'' {
				j += 2
				continue
			}
			return j + 1, true
		}
		j++
	}
	return j, true
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func isLetter(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z'
}

func isIdentChar(c byte) bool {
	return isLetter(c) || isDigit(c) || c == '_'
}

func matchReal(s string, i int) (int, bool) {
	j := i
	for j < len(s) && isDigit(s[j]) {
		j++
	}
	if j == i || j >= len(s) || s[j] != '.' {
		return i, false
	}
	k := j + 1
	for k < len(s) && isDigit(s[k]) {
		k++
	}
	if k == j+1 {
		return i, false
	}
	return k, true
}

func matchNum(s string, i int) (int, bool) {
	j := i
	for j < len(s) && isDigit(s[j]) {
		j++
	}
	return j, j > i
}

func matchIdent(s string, i int) (int, bool) {
	if i >= len(s) || !isLetter(s[i]) {
		return i, false
	}
	j := i + 1
	for j < len(s) && isIdentChar(s[j]) {
		j++
	}
	return j, true
}

func matchRelop(s string, i int) (int, bool) {
	for _, op := range []string{"<=", ">=", "/=", "=", "<", ">"} {
		if i+len(op) <= len(s) && s[i:i+len(op)] == op {
			return i + len(op), true
		}
	}
	return i, false
}

func matchAddop(s string, i int) (int, bool) {
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		return i + 1, true
	}
	return matchWord(s, i, "or")
}

func matchMulop(s string, i int) (int, bool) {
	if i < len(s) && (s[i] == '*' || s[i] == '/') {
		return i + 1, true
	}
	for _, word := range []string{"rem", "mod", "and"} {
		if end, ok := matchWord(s, i, word); ok {
			return end, true
		}
	}
	return i, false
}

// matchWord matches word case-insensitively at i with identifier word
// boundaries on both sides (so "order" does not match the "or" operator).
func matchWord(s string, i int, word string) (int, bool) {
	if i > 0 && isIdentChar(s[i-1]) {
		return i, false
	}
	end := i + len(word)
	if end > len(s) {
		return i, false
	}
	for k := 0; k < len(word); k++ {
		c := s[i+k]
		if c >= 'A' && c <= 'Z' {
			c += 'a' - 'A'
		}
		if c != word[k] {
			return i, false
		}
	}
	if end < len(s) && isIdentChar(s[end]) {
		return i, false
	}
	return end, true
}
