/*
File    : apscript/lexer/lexer.go
Package : lexer
*/
package lexer

// Lexer performs lexical analysis of AP-Pseudocode source text. It is
// pull-driven: each call to Next advances exactly one token and reports
// the span it occupies together with whether a newline separated it from
// the previous token (used by the parser's statement-terminator rule).
//
// The lexer never allocates a copy of the source: Token.Span indexes
// directly into Src, and callers slice the text they need from there.
type Lexer struct {
	Src     string
	Current byte
	Pos     int
	Len     int
}

// NewLexer creates a Lexer positioned at the start of src.
func NewLexer(src string) *Lexer {
	lex := &Lexer{Src: src, Len: len(src)}
	if lex.Len > 0 {
		lex.Current = src[0]
	}
	return lex
}

// Peek returns the byte after the current one, or 0 at end of source.
func (lex *Lexer) Peek() byte {
	if lex.Pos+1 >= lex.Len {
		return 0
	}
	return lex.Src[lex.Pos+1]
}

// Advance moves one byte forward, updating Current.
func (lex *Lexer) Advance() {
	lex.Pos++
	if lex.Pos >= lex.Len {
		lex.Current = 0
		lex.Pos = lex.Len
	} else {
		lex.Current = lex.Src[lex.Pos]
	}
}

func isWhitespaceByte(c byte) bool {
	return c == ' ' || c == '\t' || c == '\r' || c == '\n'
}

// skipWhitespace consumes runs of whitespace and reports whether any of
// the skipped bytes were a newline or carriage return — that flag becomes
// Next's has_newline_before for the token that follows.
func (lex *Lexer) skipWhitespace() bool {
	sawNewline := false
	for isWhitespaceByte(lex.Current) {
		if lex.Current == '\n' || lex.Current == '\r' {
			sawNewline = true
		}
		lex.Advance()
	}
	return sawNewline
}

// Next produces the next token. EOF is sticky: once the source is
// exhausted, every subsequent call returns another EOF_TYPE token at the
// same position.
func (lex *Lexer) Next() Token {
	hasNewlineBefore := lex.skipWhitespace()
	start := lex.Pos

	mk := func(t TokenType, end int) Token {
		return Token{Type: t, Span: NewSpan(start, end), HasNewlineBefore: hasNewlineBefore}
	}

	switch c := lex.Current; {
	case c == 0:
		return mk(EOF_TYPE, start)

	case c == '<':
		lex.Advance()
		switch lex.Current {
		case '-':
			lex.Advance()
			return mk(THIN_ARROW, lex.Pos)
		case '=':
			lex.Advance()
			return mk(LE_OP, lex.Pos)
		default:
			return mk(LT_OP, lex.Pos)
		}

	case c == '>':
		lex.Advance()
		if lex.Current == '=' {
			lex.Advance()
			return mk(GE_OP, lex.Pos)
		}
		return mk(GT_OP, lex.Pos)

	case c == '=':
		lex.Advance()
		return mk(EQ_OP, lex.Pos)

	case c == '!':
		lex.Advance()
		if lex.Current == '=' {
			lex.Advance()
			return mk(NE_OP, lex.Pos)
		}
		// A lone '!' has no meaning in this grammar. The reference
		// implementation folds it into Equal; that is a bug, not a
		// feature, so it is surfaced as an unrecognized character here.
		return mk(INVALID_TYPE, lex.Pos)

	case c == '%':
		lex.Advance()
		return mk(KW_MOD, lex.Pos)

	case c == '+':
		lex.Advance()
		return mk(PLUS_OP, lex.Pos)
	case c == '-':
		lex.Advance()
		return mk(MINUS_OP, lex.Pos)
	case c == '*':
		lex.Advance()
		return mk(MUL_OP, lex.Pos)
	case c == '/':
		lex.Advance()
		return mk(DIV_OP, lex.Pos)

	case c == '(':
		lex.Advance()
		return mk(LEFT_PAREN, lex.Pos)
	case c == ')':
		lex.Advance()
		return mk(RIGHT_PAREN, lex.Pos)
	case c == '[':
		lex.Advance()
		return mk(LEFT_BRACKET, lex.Pos)
	case c == ']':
		lex.Advance()
		return mk(RIGHT_BRACKET, lex.Pos)
	case c == '{':
		lex.Advance()
		return mk(LEFT_BRACE, lex.Pos)
	case c == '}':
		lex.Advance()
		return mk(RIGHT_BRACE, lex.Pos)
	case c == ',':
		lex.Advance()
		return mk(COMMA, lex.Pos)

	case c == '"':
		return lex.readString(start, hasNewlineBefore)

	case isDigit(c):
		return lex.readNumber(start, hasNewlineBefore)

	case isAlpha(c) || c == '_':
		return lex.readIdentifier(start, hasNewlineBefore)

	default:
		lex.Advance()
		return mk(INVALID_TYPE, lex.Pos)
	}
}

// AllTokens drains the lexer into a slice, stopping at (and excluding) the
// first EOF. Handy for tests.
func (lex *Lexer) AllTokens() []Token {
	toks := make([]Token, 0)
	for {
		t := lex.Next()
		if t.Type == EOF_TYPE {
			break
		}
		toks = append(toks, t)
	}
	return toks
}
