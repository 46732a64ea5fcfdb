package designer

import (
	"fmt"
	"strings"
)

// csharpEmitter renders statements for the curly-brace dialect.
type csharpEmitter struct {
	lineWriter
}

func newCSharpEmitter(indent string) *csharpEmitter {
	e := &csharpEmitter{}
	e.indent = indent
	return e
}

func (e *csharpEmitter) declaration(n *Node) {
	e.line("this.%s = new %s();", n.Name, n.TypeName)
}

func (e *csharpEmitter) suspendLayout(target string) {
	e.line("%s.SuspendLayout();", selfPathCS(target))
}

func (e *csharpEmitter) property(target, name, value string) {
	e.line("%s.%s = %s;", selfPathCS(target), name, value)
}

func (e *csharpEmitter) childAdd(parent, child string) {
	e.line("%s.Controls.Add(this.%s);", selfPathCS(parent), child)
}

func (e *csharpEmitter) event(target string, b EventBinding) {
	e.line("%s.%s += this.%s;", selfPathCS(target), b.Event, b.Handler)
}

func (e *csharpEmitter) resumeLayout(target string) {
	e.line("%s.ResumeLayout(false);", selfPathCS(target))
}

func (e *csharpEmitter) performLayout() {
	e.line("this.PerformLayout();")
}

func (e *csharpEmitter) fieldDecl(n *Node) {
	e.line("private %s %s;", n.TypeName, n.Name)
}

func selfPathCS(target string) string {
	if target == "" {
		return "this"
	}
	return "this." + target
}

// renderFullCSharp emits a complete minimal file for full-generation
// mode: type declaration, disposal boilerplate, the managed method, and
// the field block. The output round-trips through the parser.
func renderFullCSharp(doc *Document) []byte {
	var b strings.Builder

	classIndent := ""
	if doc.Namespace != "" {
		fmt.Fprintf(&b, "namespace %s\n{\n", doc.Namespace)
		classIndent = "    "
	}

	memberIndent := classIndent + "    "
	bodyIndent := memberIndent + "    "

	baseType := doc.BaseType
	if baseType == "" {
		baseType = "System.Windows.Forms.Form"
	}

	fmt.Fprintf(&b, "%spartial class %s : %s\n%s{\n", classIndent, doc.FormName, baseType, classIndent)
	fmt.Fprintf(&b, "%sprivate System.ComponentModel.IContainer components = null;\n\n", memberIndent)

	fmt.Fprintf(&b, "%sprotected override void Dispose(bool disposing)\n%s{\n", memberIndent, memberIndent)
	fmt.Fprintf(&b, "%sif (disposing && (components != null))\n%s{\n", bodyIndent, bodyIndent)
	fmt.Fprintf(&b, "%s    components.Dispose();\n%s}\n", bodyIndent, bodyIndent)
	fmt.Fprintf(&b, "%sbase.Dispose(disposing);\n%s}\n\n", bodyIndent, memberIndent)

	fmt.Fprintf(&b, "%sprivate void InitializeComponent()\n%s{\n", memberIndent, memberIndent)
	b.WriteString(renderStatements(doc, newCSharpEmitter(bodyIndent)))
	fmt.Fprintf(&b, "%s}\n\n", memberIndent)

	b.WriteString(renderFieldDecls(doc, newCSharpEmitter(memberIndent)))
	fmt.Fprintf(&b, "%s}\n", classIndent)

	if doc.Namespace != "" {
		b.WriteString("}\n")
	}
	return []byte(b.String())
}
