// Package csharp lexes and parses the curly-brace designer dialect: the
// managed method body statements, the member declarations of the
// enclosing type, and the byte spans of the managed regions.
package csharp

import (
	"unicode"
	"unicode/utf8"

	"github.com/dhamidi/winform/designer/syntax"
)

type Lexer struct {
	input  []byte
	file   string
	pos    int
	line   int
	column int
}

func NewLexer(input []byte, file string) *Lexer {
	return &Lexer{
		input:  input,
		file:   file,
		pos:    0,
		line:   1,
		column: 1,
	}
}

func (l *Lexer) Position() syntax.Position {
	return syntax.Position{
		File:   l.file,
		Offset: l.pos,
		Line:   l.line,
		Column: l.column,
	}
}

func (l *Lexer) peek() byte {
	if l.pos >= len(l.input) {
		return 0
	}
	return l.input[l.pos]
}

func (l *Lexer) peekN(n int) byte {
	if l.pos+n >= len(l.input) {
		return 0
	}
	return l.input[l.pos+n]
}

func (l *Lexer) advance() byte {
	if l.pos >= len(l.input) {
		return 0
	}
	ch := l.input[l.pos]
	l.pos++
	if ch == '\n' {
		l.line++
		l.column = 1
	} else {
		l.column++
	}
	return ch
}

func (l *Lexer) advanceN(n int) {
	for i := 0; i < n; i++ {
		l.advance()
	}
}

func (l *Lexer) NextToken() syntax.Token {
	startPos := l.Position()

	if l.pos >= len(l.input) {
		return syntax.Token{Kind: syntax.TokenEOF, Span: syntax.Span{Start: startPos, End: startPos}}
	}

	ch := l.peek()

	if ch == '/' && l.peekN(1) == '/' {
		return l.scanLineComment(startPos)
	}
	if ch == '/' && l.peekN(1) == '*' {
		return l.scanBlockComment(startPos)
	}
	// Preprocessor directives (#region and friends) are opaque lines.
	if ch == '#' {
		return l.scanLineComment(startPos)
	}

	if ch == ' ' || ch == '\t' || ch == '\r' || ch == '\n' {
		return l.scanWhitespace(startPos)
	}

	if ch == '@' && l.peekN(1) == '"' {
		return l.scanVerbatimString(startPos)
	}

	if isIdentStart(ch) {
		return l.scanIdent(startPos)
	}

	if isDigit(ch) {
		return l.scanNumber(startPos)
	}

	if ch == '"' {
		return l.scanString(startPos)
	}

	if ch == '\'' {
		return l.scanChar(startPos)
	}

	return l.scanOperator(startPos)
}

func (l *Lexer) scanWhitespace(start syntax.Position) syntax.Token {
	for {
		ch := l.peek()
		if ch == ' ' || ch == '\t' || ch == '\r' || ch == '\n' {
			l.advance()
		} else {
			break
		}
	}
	return l.token(syntax.TokenWhitespace, start)
}

func (l *Lexer) scanLineComment(start syntax.Position) syntax.Token {
	for l.peek() != 0 && l.peek() != '\n' {
		l.advance()
	}
	return l.token(syntax.TokenComment, start)
}

func (l *Lexer) scanBlockComment(start syntax.Position) syntax.Token {
	l.advanceN(2)
	for {
		if l.peek() == 0 {
			break
		}
		if l.peek() == '*' && l.peekN(1) == '/' {
			l.advanceN(2)
			break
		}
		l.advance()
	}
	return l.token(syntax.TokenComment, start)
}

func (l *Lexer) scanIdent(start syntax.Position) syntax.Token {
	for isIdentPart(l.peek()) {
		l.advance()
	}
	tok := l.token(syntax.TokenIdent, start)
	switch tok.Literal {
	case "this":
		tok.Kind = syntax.TokenSelf
	case "new":
		tok.Kind = syntax.TokenNew
	}
	return tok
}

func (l *Lexer) scanNumber(start syntax.Position) syntax.Token {
	isFloat := false
	for isDigit(l.peek()) {
		l.advance()
	}
	if l.peek() == '.' && isDigit(l.peekN(1)) {
		isFloat = true
		l.advance()
		for isDigit(l.peek()) {
			l.advance()
		}
	}
	ch := l.peek()
	if ch == 'f' || ch == 'F' || ch == 'd' || ch == 'D' || ch == 'm' || ch == 'M' {
		isFloat = true
		l.advance()
	} else if ch == 'l' || ch == 'L' || ch == 'u' || ch == 'U' {
		l.advance()
	}
	kind := syntax.TokenIntLiteral
	if isFloat {
		kind = syntax.TokenFloatLiteral
	}
	return l.token(kind, start)
}

func (l *Lexer) scanString(start syntax.Position) syntax.Token {
	l.advance()
	for l.peek() != 0 && l.peek() != '"' && l.peek() != '\n' {
		if l.peek() == '\\' {
			l.advance()
		}
		l.advance()
	}
	if l.peek() == '"' {
		l.advance()
	}
	return l.token(syntax.TokenStringLiteral, start)
}

func (l *Lexer) scanVerbatimString(start syntax.Position) syntax.Token {
	l.advanceN(2)
	for l.peek() != 0 {
		if l.peek() == '"' {
			if l.peekN(1) == '"' {
				l.advanceN(2)
				continue
			}
			l.advance()
			break
		}
		l.advance()
	}
	return l.token(syntax.TokenStringLiteral, start)
}

func (l *Lexer) scanChar(start syntax.Position) syntax.Token {
	l.advance()
	for l.peek() != 0 && l.peek() != '\'' && l.peek() != '\n' {
		if l.peek() == '\\' {
			l.advance()
		}
		l.advance()
	}
	if l.peek() == '\'' {
		l.advance()
	}
	return l.token(syntax.TokenCharLiteral, start)
}

func (l *Lexer) scanOperator(start syntax.Position) syntax.Token {
	ch := l.peek()

	switch ch {
	case '(':
		l.advance()
		return l.token(syntax.TokenLParen, start)
	case ')':
		l.advance()
		return l.token(syntax.TokenRParen, start)
	case '{':
		l.advance()
		return l.token(syntax.TokenLBrace, start)
	case '}':
		l.advance()
		return l.token(syntax.TokenRBrace, start)
	case '[':
		l.advance()
		return l.token(syntax.TokenLBracket, start)
	case ']':
		l.advance()
		return l.token(syntax.TokenRBracket, start)
	case ';':
		l.advance()
		return l.token(syntax.TokenSemicolon, start)
	case ',':
		l.advance()
		return l.token(syntax.TokenComma, start)
	case '.':
		l.advance()
		return l.token(syntax.TokenDot, start)

	case '=':
		if l.peekN(1) == '=' {
			l.advanceN(2)
			return l.token(syntax.TokenOther, start)
		}
		l.advance()
		return l.token(syntax.TokenAssign, start)

	case '+':
		if l.peekN(1) == '=' {
			l.advanceN(2)
			return l.token(syntax.TokenPlusAssign, start)
		}
		l.advance()
		return l.token(syntax.TokenOther, start)

	case '-':
		if l.peekN(1) == '=' {
			l.advanceN(2)
			return l.token(syntax.TokenMinusAssign, start)
		}
		l.advance()
		return l.token(syntax.TokenOther, start)
	}

	l.advance()
	return l.token(syntax.TokenOther, start)
}

func (l *Lexer) token(kind syntax.TokenKind, start syntax.Position) syntax.Token {
	end := l.Position()
	return syntax.Token{
		Kind:    kind,
		Span:    syntax.Span{Start: start, End: end},
		Literal: string(l.input[start.Offset:end.Offset]),
	}
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}

func isIdentStart(ch byte) bool {
	if ch >= 128 {
		r, _ := utf8.DecodeRune([]byte{ch})
		return unicode.IsLetter(r) || r == '_'
	}
	return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z') || ch == '_'
}

func isIdentPart(ch byte) bool {
	return isIdentStart(ch) || isDigit(ch)
}
