// Package vbnet lexes and parses the keyword-verbose designer dialect.
// The surface differs from the curly-brace dialect (line-terminated
// statements, apostrophe comments, AddHandler/AddressOf event wiring,
// case-insensitive keywords) but it produces the same syntax nodes.
package vbnet

import (
	"strings"
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

	// Line breaks terminate statements in this dialect.
	if ch == '\n' {
		l.advance()
		return l.token(syntax.TokenNewline, startPos)
	}
	if ch == '\r' {
		l.advance()
		if l.peek() == '\n' {
			l.advance()
		}
		return l.token(syntax.TokenNewline, startPos)
	}

	if ch == ' ' || ch == '\t' {
		return l.scanWhitespace(startPos)
	}

	if ch == '\'' {
		return l.scanComment(startPos)
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

	return l.scanOperator(startPos)
}

func (l *Lexer) scanWhitespace(start syntax.Position) syntax.Token {
	for l.peek() == ' ' || l.peek() == '\t' {
		l.advance()
	}
	return l.token(syntax.TokenWhitespace, start)
}

func (l *Lexer) scanComment(start syntax.Position) syntax.Token {
	for l.peek() != 0 && l.peek() != '\n' && l.peek() != '\r' {
		l.advance()
	}
	return l.token(syntax.TokenComment, start)
}

func (l *Lexer) scanIdent(start syntax.Position) syntax.Token {
	for isIdentPart(l.peek()) {
		l.advance()
	}
	tok := l.token(syntax.TokenIdent, start)
	switch strings.ToLower(tok.Literal) {
	case "me", "mybase":
		tok.Kind = syntax.TokenSelf
	case "new":
		tok.Kind = syntax.TokenNew
	case "addhandler":
		tok.Kind = syntax.TokenAddHandler
	case "addressof":
		tok.Kind = syntax.TokenAddressOf
	case "rem":
		// Legacy comment form, runs to end of line.
		for l.peek() != 0 && l.peek() != '\n' && l.peek() != '\r' {
			l.advance()
		}
		return l.token(syntax.TokenComment, start)
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
	if ch == 'F' || ch == 'f' || ch == 'R' || ch == 'r' || ch == 'D' || ch == 'd' {
		isFloat = true
		l.advance()
	} else if ch == 'L' || ch == 'l' || ch == 'I' || ch == 'i' || ch == 'S' || ch == 's' {
		l.advance()
	}
	kind := syntax.TokenIntLiteral
	if isFloat {
		kind = syntax.TokenFloatLiteral
	}
	return l.token(kind, start)
}

// scanString handles doubled-quote escapes: "He said ""hi""".
func (l *Lexer) scanString(start syntax.Position) syntax.Token {
	l.advance()
	for l.peek() != 0 {
		if l.peek() == '"' {
			if l.peekN(1) == '"' {
				l.advanceN(2)
				continue
			}
			l.advance()
			break
		}
		if l.peek() == '\n' || l.peek() == '\r' {
			break
		}
		l.advance()
	}
	tok := l.token(syntax.TokenStringLiteral, start)
	// A trailing c makes it a character literal: "x"c
	if l.peek() == 'c' || l.peek() == 'C' {
		if !isIdentPart(l.peekN(1)) {
			l.advance()
			tok = l.token(syntax.TokenCharLiteral, start)
		}
	}
	return tok
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
	case ',':
		l.advance()
		return l.token(syntax.TokenComma, start)
	case '.':
		l.advance()
		return l.token(syntax.TokenDot, start)
	case '=':
		l.advance()
		return l.token(syntax.TokenAssign, start)
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
