package designer

import (
	"sort"

	"github.com/dhamidi/winform/designer/syntax"
)

// splice replaces only the managed spans of the original file text: the
// method body with freshly rendered statements and the field block with
// freshly rendered declarations. Every other byte survives unchanged.
func splice(original []byte, layout syntax.Layout, doc *Document, g grammar) []byte {
	stmts := renderStatements(doc, g.emitter(layout.BodyIndent))
	fields := renderFieldDecls(doc, g.emitter(layout.DeclIndent))

	type edit struct {
		region syntax.Region
		text   string
	}
	edits := []edit{
		{region: layout.Method, text: methodReplacement(g.dialect, layout, stmts)},
		{region: layout.Fields, text: fields},
	}
	// Apply back to front so earlier offsets stay valid.
	sort.Slice(edits, func(i, j int) bool {
		return edits[i].region.Start > edits[j].region.Start
	})

	out := make([]byte, len(original))
	copy(out, original)
	for _, e := range edits {
		out = append(out[:e.region.Start], append([]byte(e.text), out[e.region.End:]...)...)
	}
	return out
}

// methodReplacement wraps the rendered statements in the chrome each
// dialect's body span expects. The curly-brace span starts right after
// the opening brace and ends right before the closing one, so the text
// supplies the newline after the brace and the indentation the closing
// brace sits on. The keyword dialect's span covers whole lines already.
func methodReplacement(d Dialect, layout syntax.Layout, stmts string) string {
	if d == DialectCSharp {
		return "\n" + stmts + layout.DeclIndent
	}
	return stmts
}
