package designer

import (
	"path/filepath"
	"strings"

	"github.com/dhamidi/winform/designer/csharp"
	"github.com/dhamidi/winform/designer/syntax"
	"github.com/dhamidi/winform/designer/vbnet"
)

// Dialect selects one of the two surface syntaxes. The engine is
// dialect-parameterized, not extension-aware; DialectForPath is a
// convenience for callers that do map extensions.
type Dialect int

const (
	DialectCSharp Dialect = iota
	DialectVB
)

func (d Dialect) String() string {
	switch d {
	case DialectCSharp:
		return "csharp"
	case DialectVB:
		return "vbnet"
	}
	return "unknown"
}

// Ext returns the source-file extension conventionally used by the
// dialect.
func (d Dialect) Ext() string {
	switch d {
	case DialectCSharp:
		return ".cs"
	case DialectVB:
		return ".vb"
	}
	return ""
}

// DialectForPath maps a file path to a dialect by extension.
func DialectForPath(path string) (Dialect, bool) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".cs":
		return DialectCSharp, true
	case ".vb":
		return DialectVB, true
	}
	return DialectCSharp, false
}

// grammar adapts one dialect's syntax package to the shared pipeline:
// read side (scan, statement parse) and write side (emitter). The
// three-pass builder and the classifier are written once against this.
type grammar struct {
	dialect Dialect
	scan    func(src []byte, file string) (syntax.Layout, []syntax.Member)
	parse   func(body []byte, file string) []*syntax.Node
	emitter func(indent string) emitter
	render  func(doc *Document) []byte // full-generation mode
}

func grammarFor(d Dialect) grammar {
	switch d {
	case DialectVB:
		return grammar{
			dialect: DialectVB,
			scan: func(src []byte, file string) (syntax.Layout, []syntax.Member) {
				info := vbnet.Scan(src, file)
				return info.Layout, info.Members
			},
			parse: vbnet.ParseStatements,
			emitter: func(indent string) emitter {
				return newVBEmitter(indent)
			},
			render: renderFullVB,
		}
	default:
		return grammar{
			dialect: DialectCSharp,
			scan: func(src []byte, file string) (syntax.Layout, []syntax.Member) {
				info := csharp.Scan(src, file)
				return info.Layout, info.Members
			},
			parse: csharp.ParseStatements,
			emitter: func(indent string) emitter {
				return newCSharpEmitter(indent)
			},
			render: renderFullCSharp,
		}
	}
}
