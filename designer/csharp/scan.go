package csharp

import (
	"strings"

	"github.com/dhamidi/winform/designer/syntax"
)

// ManagedMethod is the one method body this engine owns.
const ManagedMethod = "InitializeComponent"

var fieldModifiers = map[string]bool{
	"public":    true,
	"private":   true,
	"protected": true,
	"internal":  true,
	"static":    true,
	"readonly":  true,
	"volatile":  true,
	"new":       true,
}

// FileInfo is the result of scanning a whole designer file: where the
// managed regions live and which members the enclosing type declares.
type FileInfo struct {
	Layout  syntax.Layout
	Members []syntax.Member
}

type classItem struct {
	start    int // byte offset of first token
	end      int // byte offset just past last token
	isField  bool
	isMethod bool // the managed method
	tokens   []syntax.Token
}

// Scan locates the managed method body and the trailing field block using
// structural anchors only: the type keyword, the managed method name, and
// brace matching. A missing type or method is reported through the Has
// flags and an empty TypeName, never as an error; callers decide whether
// that is fatal.
func Scan(src []byte, file string) *FileInfo {
	tokens := tokenize(src, file)
	info := &FileInfo{}

	classIdx := -1
	for i := 0; i+1 < len(tokens); i++ {
		if tokens[i].Kind == syntax.TokenIdent && tokens[i].Literal == "namespace" && tokens[i+1].Kind == syntax.TokenIdent {
			info.Layout.Namespace = dottedName(tokens, i+1)
		}
		if tokens[i].Kind == syntax.TokenIdent && tokens[i].Literal == "class" && tokens[i+1].Kind == syntax.TokenIdent {
			info.Layout.TypeName = tokens[i+1].Literal
			classIdx = i
			break
		}
	}
	if classIdx < 0 {
		return info
	}

	// Base type: first dotted name after the ':' in the class header.
	bodyIdx := -1
	for i := classIdx; i < len(tokens); i++ {
		if tokens[i].Kind == syntax.TokenLBrace {
			bodyIdx = i
			break
		}
		if tokens[i].Kind == syntax.TokenOther && tokens[i].Literal == ":" && i+1 < len(tokens) && tokens[i+1].Kind == syntax.TokenIdent {
			info.Layout.BaseType = dottedName(tokens, i+1)
		}
	}
	if bodyIdx < 0 {
		return info
	}

	items, classEnd := scanClassBody(tokens, bodyIdx, src)

	for _, item := range items {
		if item.isMethod {
			info.Layout.HasMethod = true
			info.Layout.Method = methodBodyRegion(item.tokens, src)
			headerLine := lineIndent(src, item.start)
			info.Layout.BodyIndent = headerLine + "    "
			if info.Layout.DeclIndent == "" {
				info.Layout.DeclIndent = headerLine
			}
		}
		if item.isField {
			if m, ok := memberFromTokens(item.tokens, src); ok {
				info.Members = append(info.Members, m)
			}
			if info.Layout.DeclIndent == "" {
				info.Layout.DeclIndent = lineIndent(src, item.start)
			}
		}
	}

	// The managed field block is the trailing run of field declarations
	// just before the end-of-type marker.
	firstTrailing := -1
	for i := len(items) - 1; i >= 0; i-- {
		if !items[i].isField {
			break
		}
		firstTrailing = i
	}
	if firstTrailing >= 0 {
		info.Layout.HasFields = true
		start := lineStart(src, items[firstTrailing].start)
		end := lineEnd(src, items[len(items)-1].end)
		info.Layout.Fields = syntax.Region{Start: start, End: end}
	} else if classEnd >= 0 {
		at := lineStart(src, classEnd)
		info.Layout.Fields = syntax.Region{Start: at, End: at}
	}

	if info.Layout.DeclIndent == "" {
		info.Layout.DeclIndent = "        "
	}
	if info.Layout.BodyIndent == "" {
		info.Layout.BodyIndent = "            "
	}
	return info
}

// scanClassBody walks the tokens between the class braces at nesting
// depth one and groups them into items: semicolon-terminated runs and
// brace-delimited blocks. Returns the byte offset of the class-closing
// brace.
func scanClassBody(tokens []syntax.Token, bodyIdx int, src []byte) ([]classItem, int) {
	var items []classItem
	itemFrom := bodyIdx + 1
	depth := 1
	i := bodyIdx + 1
	for i < len(tokens) && depth > 0 {
		switch tokens[i].Kind {
		case syntax.TokenLBrace:
			// Block item: consume through the matching brace.
			blockDepth := 1
			j := i + 1
			for j < len(tokens) && blockDepth > 0 {
				switch tokens[j].Kind {
				case syntax.TokenLBrace:
					blockDepth++
				case syntax.TokenRBrace:
					blockDepth--
				}
				j++
			}
			items = append(items, newClassItem(tokens[itemFrom:j], false))
			i = j
			itemFrom = j
		case syntax.TokenRBrace:
			depth--
			if depth == 0 {
				return items, tokens[i].Span.Start.Offset
			}
			i++
		case syntax.TokenSemicolon:
			if i > itemFrom {
				items = append(items, newClassItem(tokens[itemFrom:i+1], true))
			}
			i++
			itemFrom = i
		default:
			i++
		}
	}
	return items, -1
}

func newClassItem(tokens []syntax.Token, simple bool) classItem {
	item := classItem{
		start:  tokens[0].Span.Start.Offset,
		end:    tokens[len(tokens)-1].Span.End.Offset,
		tokens: tokens,
	}
	if simple {
		item.isField = looksLikeField(tokens)
	} else {
		for _, tok := range tokens {
			if tok.Kind == syntax.TokenIdent && tok.Literal == ManagedMethod {
				item.isMethod = true
				break
			}
			if tok.Kind == syntax.TokenLBrace {
				break
			}
		}
	}
	return item
}

// looksLikeField matches `mods Type name;` and `mods Type name = init;`.
// Anything with a parameter list is a method or delegate, not a field.
func looksLikeField(tokens []syntax.Token) bool {
	tokens = skipAttributes(tokens)
	identCount := 0
	for _, tok := range tokens {
		switch tok.Kind {
		case syntax.TokenLParen, syntax.TokenLBrace:
			return false
		case syntax.TokenIdent:
			identCount++
		case syntax.TokenAssign:
			return identCount >= 2
		}
	}
	return identCount >= 2
}

func skipAttributes(tokens []syntax.Token) []syntax.Token {
	for len(tokens) > 0 && tokens[0].Kind == syntax.TokenLBracket {
		depth := 0
		i := 0
		for ; i < len(tokens); i++ {
			switch tokens[i].Kind {
			case syntax.TokenLBracket:
				depth++
			case syntax.TokenRBracket:
				depth--
			}
			if depth == 0 {
				break
			}
		}
		tokens = tokens[i+1:]
	}
	return tokens
}

func memberFromTokens(tokens []syntax.Token, src []byte) (syntax.Member, bool) {
	tokens = skipAttributes(tokens)

	// Drop modifiers.
	for len(tokens) > 0 && tokens[0].Kind == syntax.TokenIdent && fieldModifiers[tokens[0].Literal] {
		tokens = tokens[1:]
	}

	// The name is the identifier right before '=' or ';'.
	nameIdx := -1
	for i, tok := range tokens {
		if tok.Kind == syntax.TokenAssign || tok.Kind == syntax.TokenSemicolon {
			if i > 0 && tokens[i-1].Kind == syntax.TokenIdent {
				nameIdx = i - 1
			}
			break
		}
	}
	if nameIdx <= 0 {
		return syntax.Member{}, false
	}

	typeStart := tokens[0].Span.Start.Offset
	typeEnd := tokens[nameIdx-1].Span.End.Offset
	return syntax.Member{
		Name:     tokens[nameIdx].Literal,
		TypeName: strings.TrimSpace(string(src[typeStart:typeEnd])),
	}, true
}

func methodBodyRegion(tokens []syntax.Token, src []byte) syntax.Region {
	openIdx := -1
	for i, tok := range tokens {
		if tok.Kind == syntax.TokenLBrace {
			openIdx = i
			break
		}
	}
	if openIdx < 0 {
		return syntax.Region{}
	}
	depth := 0
	for i := openIdx; i < len(tokens); i++ {
		switch tokens[i].Kind {
		case syntax.TokenLBrace:
			depth++
		case syntax.TokenRBrace:
			depth--
			if depth == 0 {
				return syntax.Region{
					Start: tokens[openIdx].Span.End.Offset,
					End:   tokens[i].Span.Start.Offset,
				}
			}
		}
	}
	return syntax.Region{}
}

func dottedName(tokens []syntax.Token, from int) string {
	var parts []string
	i := from
	for i < len(tokens) && tokens[i].Kind == syntax.TokenIdent {
		parts = append(parts, tokens[i].Literal)
		if i+1 < len(tokens) && tokens[i+1].Kind == syntax.TokenDot {
			i += 2
		} else {
			break
		}
	}
	return strings.Join(parts, ".")
}

func lineStart(src []byte, offset int) int {
	for offset > 0 && src[offset-1] != '\n' {
		offset--
	}
	return offset
}

func lineEnd(src []byte, offset int) int {
	for offset < len(src) && src[offset] != '\n' {
		offset++
	}
	if offset < len(src) {
		offset++
	}
	return offset
}

func lineIndent(src []byte, offset int) string {
	start := lineStart(src, offset)
	end := start
	for end < len(src) && (src[end] == ' ' || src[end] == '\t') {
		end++
	}
	return string(src[start:end])
}
