package syntax

type Position struct {
	File   string
	Offset int
	Line   int
	Column int
}

type Span struct {
	Start Position
	End   Position
}

type TokenKind int

const (
	TokenEOF TokenKind = iota
	TokenError
	TokenWhitespace
	TokenNewline
	TokenComment

	// Literals
	TokenIdent
	TokenIntLiteral
	TokenFloatLiteral
	TokenStringLiteral
	TokenCharLiteral

	// Keywords shared across both dialects. Everything else the
	// lexers leave as TokenIdent; the scanners compare literals.
	TokenSelf
	TokenNew
	TokenAddHandler
	TokenAddressOf

	// Operators and punctuation
	TokenLParen
	TokenRParen
	TokenLBrace
	TokenRBrace
	TokenLBracket
	TokenRBracket
	TokenSemicolon
	TokenComma
	TokenDot
	TokenAssign
	TokenPlusAssign
	TokenMinusAssign

	// Any operator character the statement grammar has no use for.
	// Raw value expressions are captured by span, so these only need
	// to keep the token stream moving.
	TokenOther
)

var tokenKindNames = map[TokenKind]string{
	TokenEOF:           "EOF",
	TokenError:         "Error",
	TokenWhitespace:    "Whitespace",
	TokenNewline:       "Newline",
	TokenComment:       "Comment",
	TokenIdent:         "Ident",
	TokenIntLiteral:    "IntLiteral",
	TokenFloatLiteral:  "FloatLiteral",
	TokenStringLiteral: "StringLiteral",
	TokenCharLiteral:   "CharLiteral",
	TokenSelf:          "Self",
	TokenNew:           "New",
	TokenAddHandler:    "AddHandler",
	TokenAddressOf:     "AddressOf",
	TokenLParen:        "LParen",
	TokenRParen:        "RParen",
	TokenLBrace:        "LBrace",
	TokenRBrace:        "RBrace",
	TokenLBracket:      "LBracket",
	TokenRBracket:      "RBracket",
	TokenSemicolon:     "Semicolon",
	TokenComma:         "Comma",
	TokenDot:           "Dot",
	TokenAssign:        "Assign",
	TokenPlusAssign:    "PlusAssign",
	TokenMinusAssign:   "MinusAssign",
	TokenOther:         "Other",
}

func (k TokenKind) String() string {
	if name, ok := tokenKindNames[k]; ok {
		return name
	}
	return "Unknown"
}

type Token struct {
	Kind    TokenKind
	Span    Span
	Literal string
}
