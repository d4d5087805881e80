/*
File    : apscript/lexer/lexer_utils.go
Package : lexer
*/
package lexer

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isHexDigit(c byte) bool {
	return isDigit(c) || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}

func isBinaryDigit(c byte) bool {
	return c == '0' || c == '1'
}

func isAlpha(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isAlnum(c byte) bool {
	return isAlpha(c) || isDigit(c) || c == '_'
}

// readNumber scans IntegerLiteral, FloatLiteral, HexLiteral and
// BinaryLiteral tokens. A leading '0' may introduce 0x/0X (hex), 0b/0B
// (binary), or 0.digits (float); otherwise a run of digits is scanned,
// switching to a float as soon as a '.' is seen.
func (lex *Lexer) readNumber(start int, hasNewlineBefore bool) Token {
	mk := func(t TokenType) Token {
		return Token{Type: t, Span: NewSpan(start, lex.Pos), HasNewlineBefore: hasNewlineBefore}
	}

	if lex.Current == '0' && (lex.Peek() == 'x' || lex.Peek() == 'X') {
		lex.Advance() // '0'
		lex.Advance() // 'x'
		for isHexDigit(lex.Current) {
			lex.Advance()
		}
		return mk(HEX_LIT)
	}

	if lex.Current == '0' && (lex.Peek() == 'b' || lex.Peek() == 'B') {
		lex.Advance() // '0'
		lex.Advance() // 'b'
		for isBinaryDigit(lex.Current) {
			lex.Advance()
		}
		return mk(BINARY_LIT)
	}

	for isDigit(lex.Current) {
		lex.Advance()
	}

	if lex.Current == '.' {
		lex.Advance() // '.'
		for isDigit(lex.Current) {
			lex.Advance()
		}
		return mk(FLOAT_LIT)
	}

	return mk(INT_LIT)
}

// readIdentifier scans [A-Za-z_][A-Za-z0-9_]* and classifies it as a
// keyword or a plain identifier.
func (lex *Lexer) readIdentifier(start int, hasNewlineBefore bool) Token {
	for isAlnum(lex.Current) {
		lex.Advance()
	}
	text := lex.Src[start:lex.Pos]
	return Token{Type: lookupIdentifier(text), Span: NewSpan(start, lex.Pos), HasNewlineBefore: hasNewlineBefore}
}

// readString scans a "..." string literal. There is no escape table at
// this stage — the scanner looks for the closing quote, and a backslash
// only keeps the byte after it from being taken as that quote; how the
// pair displays is decided when the body is rendered (see RenderString).
// Reaching EOF before a closing quote yields InvalidStringLiteral,
// spanning from the opening quote to EOF.
func (lex *Lexer) readString(start int, hasNewlineBefore bool) Token {
	lex.Advance() // opening quote
	for lex.Current != '"' {
		if lex.Current == 0 {
			return Token{Type: INVALID_STR, Span: NewSpan(start, lex.Pos), HasNewlineBefore: hasNewlineBefore}
		}
		if lex.Current == '\\' && lex.Peek() != 0 {
			lex.Advance() // backslash; the byte after it is consumed below
		}
		lex.Advance()
	}
	lex.Advance() // closing quote
	return Token{Type: STRING_LIT, Span: NewSpan(start, lex.Pos), HasNewlineBefore: hasNewlineBefore}
}

// RenderString renders a raw string-literal body (as sliced from the
// source, quotes already stripped) the way the language displays it: a
// backslash is itself printed, but it consumes the byte immediately after
// it without emitting anything for that byte. There is no escape table —
// "\n" in source does not become a newline; it becomes a literal
// backslash with the 'n' swallowed.
func RenderString(body string) string {
	out := make([]byte, 0, len(body))
	i := 0
	for i < len(body) {
		c := body[i]
		out = append(out, c)
		if c == '\\' {
			i += 2
		} else {
			i++
		}
	}
	return string(out)
}
