package vbnet

import (
	"strings"

	"github.com/dhamidi/winform/designer/syntax"
)

// ManagedMethod is the one method body this engine owns.
const ManagedMethod = "InitializeComponent"

var fieldModifiers = map[string]bool{
	"public":     true,
	"private":    true,
	"protected":  true,
	"friend":     true,
	"shared":     true,
	"dim":        true,
	"readonly":   true,
	"shadows":    true,
	"withevents": true,
}

// FileInfo is the result of scanning a whole designer file: where the
// managed regions live and which members the enclosing type declares.
type FileInfo struct {
	Layout  syntax.Layout
	Members []syntax.Member
}

type logicalLine struct {
	tokens []syntax.Token
	start  int
	end    int
}

// Scan locates the managed method body and the trailing field block. The
// anchors are keyword lines: the type header, the managed Sub header, its
// End Sub, and the End Class marker. Attribute prefixes and line
// continuations are folded away before matching.
func Scan(src []byte, file string) *FileInfo {
	lines := logicalLines(src, file)
	info := &FileInfo{}

	blockDepth := 0
	sawClass := false
	var classEnd = -1
	type fieldLine struct {
		line logicalLine
		m    syntax.Member
	}
	var fields []fieldLine
	var lastItemWasField []bool // parallel to class-level items, in order

	for i := 0; i < len(lines); i++ {
		line := lines[i]
		toks := skipAttributes(line.tokens)
		if len(toks) == 0 {
			continue
		}

		first := strings.ToLower(toks[0].Literal)

		if first == "end" && len(toks) > 1 {
			switch strings.ToLower(toks[1].Literal) {
			case "sub", "function":
				if blockDepth > 0 {
					blockDepth--
				}
			case "class":
				classEnd = lineStart(src, line.start)
			}
			continue
		}

		// Strip declaration modifiers for the keyword check.
		rest := toks
		for len(rest) > 0 && rest[0].Kind == syntax.TokenIdent && declModifier(rest[0].Literal) {
			rest = rest[1:]
		}
		if len(rest) == 0 {
			continue
		}

		switch strings.ToLower(rest[0].Literal) {
		case "namespace":
			if len(rest) > 1 {
				info.Layout.Namespace = dottedName(rest, 1)
			}
			continue
		case "class":
			if !sawClass && len(rest) > 1 {
				info.Layout.TypeName = rest[1].Literal
				sawClass = true
			}
			continue
		case "inherits":
			if len(rest) > 1 {
				info.Layout.BaseType = dottedName(rest, 1)
			}
			continue
		case "sub", "function":
			if blockDepth == 0 && len(rest) > 1 && strings.EqualFold(rest[1].Literal, ManagedMethod) {
				info.Layout.HasMethod = true
				endLine := findEndSub(lines, i+1)
				bodyStart := lineEnd(src, line.end)
				bodyEnd := bodyStart
				if endLine >= 0 {
					bodyEnd = lineStart(src, lines[endLine].start)
				}
				info.Layout.Method = syntax.Region{Start: bodyStart, End: bodyEnd}
				headerIndent := lineIndent(src, line.start)
				info.Layout.BodyIndent = headerIndent + "    "
				if info.Layout.DeclIndent == "" {
					info.Layout.DeclIndent = headerIndent
				}
			}
			blockDepth++
			lastItemWasField = append(lastItemWasField, false)
			continue
		}

		if blockDepth > 0 || !sawClass {
			continue
		}

		if m, ok := memberFromTokens(rest, src, line.end); ok {
			fields = append(fields, fieldLine{line: line, m: m})
			lastItemWasField = append(lastItemWasField, true)
			if info.Layout.DeclIndent == "" {
				info.Layout.DeclIndent = lineIndent(src, line.start)
			}
			continue
		}
		lastItemWasField = append(lastItemWasField, false)
	}

	for _, f := range fields {
		info.Members = append(info.Members, f.m)
	}

	// The managed field block is the trailing run of field declarations
	// before the End Class marker.
	trailing := 0
	for i := len(lastItemWasField) - 1; i >= 0 && lastItemWasField[i]; i-- {
		trailing++
	}
	if trailing > 0 && len(fields) >= trailing {
		run := fields[len(fields)-trailing:]
		info.Layout.HasFields = true
		info.Layout.Fields = syntax.Region{
			Start: lineStart(src, run[0].line.start),
			End:   lineEnd(src, run[len(run)-1].line.end),
		}
	} else if classEnd >= 0 {
		info.Layout.Fields = syntax.Region{Start: classEnd, End: classEnd}
	}

	if info.Layout.DeclIndent == "" {
		info.Layout.DeclIndent = "    "
	}
	if info.Layout.BodyIndent == "" {
		info.Layout.BodyIndent = "        "
	}
	return info
}

func logicalLines(src []byte, file string) []logicalLine {
	tokens := tokenize(src, file)
	var lines []logicalLine
	var current []syntax.Token
	for _, tok := range tokens {
		if tok.Kind == syntax.TokenNewline {
			if len(current) > 0 {
				lines = append(lines, newLine(current))
				current = nil
			}
			continue
		}
		current = append(current, tok)
	}
	if len(current) > 0 {
		lines = append(lines, newLine(current))
	}
	return lines
}

func newLine(tokens []syntax.Token) logicalLine {
	return logicalLine{
		tokens: tokens,
		start:  tokens[0].Span.Start.Offset,
		end:    tokens[len(tokens)-1].Span.End.Offset,
	}
}

func findEndSub(lines []logicalLine, from int) int {
	depth := 1
	for i := from; i < len(lines); i++ {
		toks := skipAttributes(lines[i].tokens)
		if len(toks) < 2 {
			continue
		}
		rest := toks
		for len(rest) > 0 && rest[0].Kind == syntax.TokenIdent && declModifier(rest[0].Literal) {
			rest = rest[1:]
		}
		if len(rest) == 0 {
			continue
		}
		switch strings.ToLower(rest[0].Literal) {
		case "sub", "function":
			depth++
		case "end":
			if len(rest) > 1 {
				switch strings.ToLower(rest[1].Literal) {
				case "sub", "function":
					depth--
					if depth == 0 {
						return i
					}
				}
			}
		}
	}
	return -1
}

func declModifier(lit string) bool {
	switch strings.ToLower(lit) {
	case "partial", "public", "private", "protected", "friend", "shared",
		"overrides", "overloads", "shadows", "notinheritable", "mustinherit":
		return true
	}
	return false
}

// skipAttributes drops a leading `<...>` attribute group.
func skipAttributes(tokens []syntax.Token) []syntax.Token {
	if len(tokens) == 0 || tokens[0].Kind != syntax.TokenOther || tokens[0].Literal != "<" {
		return tokens
	}
	for i := 1; i < len(tokens); i++ {
		if tokens[i].Kind == syntax.TokenOther && tokens[i].Literal == ">" {
			return tokens[i+1:]
		}
	}
	return tokens
}

// memberFromTokens matches `[modifiers] Name As Type`. The caller has
// already stripped declaration modifiers that are shared with method
// headers; WithEvents and Dim still appear here.
func memberFromTokens(tokens []syntax.Token, src []byte, lineEnd int) (syntax.Member, bool) {
	for len(tokens) > 0 && tokens[0].Kind == syntax.TokenIdent && fieldModifiers[strings.ToLower(tokens[0].Literal)] {
		tokens = tokens[1:]
	}
	if len(tokens) < 3 {
		return syntax.Member{}, false
	}
	if tokens[0].Kind != syntax.TokenIdent {
		return syntax.Member{}, false
	}
	if tokens[1].Kind != syntax.TokenIdent || !strings.EqualFold(tokens[1].Literal, "As") {
		return syntax.Member{}, false
	}
	typeStart := tokens[2].Span.Start.Offset
	typeText := strings.TrimSpace(string(src[typeStart:lineEnd]))
	// Initializers stay out of the type name.
	if idx := strings.Index(typeText, "="); idx > 0 {
		typeText = strings.TrimSpace(typeText[:idx])
	}
	return syntax.Member{Name: tokens[0].Literal, TypeName: typeText}, true
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
