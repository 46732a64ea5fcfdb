package csharp

import (
	"strings"

	"github.com/dhamidi/winform/designer/syntax"
)

// ParseStatements parses the text of a managed method body into one
// syntax node per statement. Statements end at a semicolon outside any
// bracket nesting; anything that does not match the statement grammar
// comes back as KindUnknown rather than aborting the rest of the body.
func ParseStatements(body []byte, file string) []*syntax.Node {
	tokens := tokenize(body, file)

	var stmts []*syntax.Node
	depth := 0
	start := 0
	for i, tok := range tokens {
		switch tok.Kind {
		case syntax.TokenLParen, syntax.TokenLBracket, syntax.TokenLBrace:
			depth++
		case syntax.TokenRParen, syntax.TokenRBracket, syntax.TokenRBrace:
			depth--
		case syntax.TokenSemicolon:
			if depth == 0 {
				if i > start {
					stmts = append(stmts, parseStatement(tokens[start:i], body))
				}
				start = i + 1
			}
		}
	}
	// A trailing run without a semicolon is not a statement.
	return stmts
}

func tokenize(body []byte, file string) []syntax.Token {
	lexer := NewLexer(body, file)
	var tokens []syntax.Token
	for {
		tok := lexer.NextToken()
		if tok.Kind == syntax.TokenEOF {
			break
		}
		if tok.Kind == syntax.TokenWhitespace || tok.Kind == syntax.TokenComment {
			continue
		}
		tokens = append(tokens, tok)
	}
	return tokens
}

type stmtParser struct {
	toks []syntax.Token
	src  []byte
	pos  int
}

func parseStatement(toks []syntax.Token, src []byte) *syntax.Node {
	p := &stmtParser{toks: toks, src: src}

	path := p.memberPath()
	if path == nil {
		return p.unknown()
	}

	switch p.peek().Kind {
	case syntax.TokenAssign:
		p.pos++
		value := p.valueExpr()
		if value == nil {
			return p.unknown()
		}
		return p.stmt(syntax.KindAssignStmt, path, value)
	case syntax.TokenPlusAssign:
		p.pos++
		value := p.handlerExpr()
		if value == nil {
			return p.unknown()
		}
		return p.stmt(syntax.KindAddAssignStmt, path, value)
	case syntax.TokenLParen:
		args, ok := p.argList()
		if !ok || p.pos != len(p.toks) {
			return p.unknown()
		}
		node := p.stmt(syntax.KindCallStmt, path)
		node.Children = append(node.Children, args...)
		return node
	}
	return p.unknown()
}

func (p *stmtParser) peek() syntax.Token {
	if p.pos >= len(p.toks) {
		return syntax.Token{Kind: syntax.TokenEOF}
	}
	return p.toks[p.pos]
}

func (p *stmtParser) stmt(kind syntax.NodeKind, children ...*syntax.Node) *syntax.Node {
	node := &syntax.Node{Kind: kind, Span: p.runSpan(0, len(p.toks))}
	for _, child := range children {
		node.AddChild(child)
	}
	return node
}

func (p *stmtParser) unknown() *syntax.Node {
	return &syntax.Node{
		Kind: syntax.KindUnknown,
		Span: p.runSpan(0, len(p.toks)),
		Text: p.rawText(0, len(p.toks)),
	}
}

func (p *stmtParser) runSpan(from, to int) syntax.Span {
	if from >= len(p.toks) || to == 0 || from >= to {
		return syntax.Span{}
	}
	return syntax.Span{Start: p.toks[from].Span.Start, End: p.toks[to-1].Span.End}
}

// rawText slices the original source between two token indices, so value
// expressions keep their exact spelling, interior whitespace included.
func (p *stmtParser) rawText(from, to int) string {
	if from >= len(p.toks) || from >= to {
		return ""
	}
	start := p.toks[from].Span.Start.Offset
	end := p.toks[to-1].Span.End.Offset
	return strings.TrimSpace(string(p.src[start:end]))
}

// memberPath parses `this`, `this.a.b`, or `a.b`. Returns nil when the
// current token cannot begin a path.
func (p *stmtParser) memberPath() *syntax.Node {
	start := p.pos
	node := &syntax.Node{Kind: syntax.KindMemberPath}

	switch p.peek().Kind {
	case syntax.TokenSelf:
		tok := p.toks[p.pos]
		node.AddChild(&syntax.Node{Kind: syntax.KindSelf, Span: tok.Span, Token: &tok})
		p.pos++
	case syntax.TokenIdent:
		tok := p.toks[p.pos]
		node.AddChild(&syntax.Node{Kind: syntax.KindIdentifier, Span: tok.Span, Token: &tok})
		p.pos++
	default:
		return nil
	}

	for p.peek().Kind == syntax.TokenDot {
		if p.pos+1 >= len(p.toks) || p.toks[p.pos+1].Kind != syntax.TokenIdent {
			p.pos = start
			return nil
		}
		tok := p.toks[p.pos+1]
		node.AddChild(&syntax.Node{Kind: syntax.KindIdentifier, Span: tok.Span, Token: &tok})
		p.pos += 2
	}

	node.Span = p.runSpan(start, p.pos)
	return node
}

// handlerExpr parses the right side of an event wiring: a direct member
// reference to the handler method, or a delegate construction around one.
func (p *stmtParser) handlerExpr() *syntax.Node {
	start := p.pos
	if path := p.memberPath(); path != nil && p.pos == len(p.toks) {
		return path
	}
	p.pos = start
	return p.valueExpr()
}

// valueExpr consumes the rest of the statement as a value. Object
// constructions get structure (type name, arguments); everything else is
// kept as raw text.
func (p *stmtParser) valueExpr() *syntax.Node {
	if p.pos >= len(p.toks) {
		return nil
	}
	start := p.pos

	if p.peek().Kind == syntax.TokenNew {
		node := p.newExpr()
		if node != nil && p.pos == len(p.toks) {
			node.Text = p.rawText(start, len(p.toks))
			return node
		}
		// Construction followed by more tokens (casts, concatenation):
		// keep the whole thing opaque.
		p.pos = len(p.toks)
		return &syntax.Node{
			Kind: syntax.KindRawExpr,
			Span: p.runSpan(start, len(p.toks)),
			Text: p.rawText(start, len(p.toks)),
		}
	}

	p.pos = len(p.toks)
	return &syntax.Node{
		Kind: syntax.KindRawExpr,
		Span: p.runSpan(start, len(p.toks)),
		Text: p.rawText(start, len(p.toks)),
	}
}

func (p *stmtParser) newExpr() *syntax.Node {
	start := p.pos
	p.pos++ // new

	var typeParts []string
	for p.peek().Kind == syntax.TokenIdent {
		typeParts = append(typeParts, p.toks[p.pos].Literal)
		p.pos++
		if p.peek().Kind != syntax.TokenDot {
			break
		}
		p.pos++
	}
	if len(typeParts) == 0 {
		p.pos = start
		return nil
	}

	node := &syntax.Node{
		Kind:  syntax.KindNewExpr,
		Token: &syntax.Token{Kind: syntax.TokenIdent, Literal: strings.Join(typeParts, ".")},
	}
	if p.peek().Kind == syntax.TokenLParen {
		args, ok := p.argList()
		if !ok {
			p.pos = start
			return nil
		}
		node.Children = args
	}
	node.Span = p.runSpan(start, p.pos)
	return node
}

// argList consumes a parenthesized argument list, splitting on commas at
// nesting depth zero. Arguments that are plain member paths keep their
// structure; all others become raw text.
func (p *stmtParser) argList() ([]*syntax.Node, bool) {
	if p.peek().Kind != syntax.TokenLParen {
		return nil, false
	}
	open := p.pos
	p.pos++

	depth := 1
	argStart := p.pos
	var args []*syntax.Node

	flush := func(end int) {
		if end > argStart {
			args = append(args, p.argNode(argStart, end))
		}
	}

	for p.pos < len(p.toks) {
		switch p.toks[p.pos].Kind {
		case syntax.TokenLParen, syntax.TokenLBracket, syntax.TokenLBrace:
			depth++
		case syntax.TokenRParen, syntax.TokenRBracket, syntax.TokenRBrace:
			depth--
			if depth == 0 {
				flush(p.pos)
				p.pos++
				return args, true
			}
		case syntax.TokenComma:
			if depth == 1 {
				flush(p.pos)
				argStart = p.pos + 1
			}
		}
		p.pos++
	}
	p.pos = open
	return nil, false
}

func (p *stmtParser) argNode(from, to int) *syntax.Node {
	sub := &stmtParser{toks: p.toks[from:to], src: p.src}
	if path := sub.memberPath(); path != nil && sub.pos == len(sub.toks) {
		return path
	}
	return &syntax.Node{
		Kind: syntax.KindRawExpr,
		Span: p.runSpan(from, to),
		Text: p.rawText(from, to),
	}
}
