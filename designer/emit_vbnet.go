package designer

import (
	"fmt"
	"strings"
)

// vbEmitter renders statements for the keyword-verbose dialect.
type vbEmitter struct {
	lineWriter
}

func newVBEmitter(indent string) *vbEmitter {
	e := &vbEmitter{}
	e.indent = indent
	return e
}

func (e *vbEmitter) declaration(n *Node) {
	e.line("Me.%s = New %s()", n.Name, n.TypeName)
}

func (e *vbEmitter) suspendLayout(target string) {
	e.line("%s.SuspendLayout()", selfPathVB(target))
}

func (e *vbEmitter) property(target, name, value string) {
	e.line("%s.%s = %s", selfPathVB(target), name, value)
}

func (e *vbEmitter) childAdd(parent, child string) {
	e.line("%s.Controls.Add(Me.%s)", selfPathVB(parent), child)
}

func (e *vbEmitter) event(target string, b EventBinding) {
	e.line("AddHandler %s.%s, AddressOf Me.%s", selfPathVB(target), b.Event, b.Handler)
}

func (e *vbEmitter) resumeLayout(target string) {
	e.line("%s.ResumeLayout(False)", selfPathVB(target))
}

func (e *vbEmitter) performLayout() {
	e.line("Me.PerformLayout()")
}

func (e *vbEmitter) fieldDecl(n *Node) {
	e.line("Friend WithEvents %s As %s", n.Name, n.TypeName)
}

func selfPathVB(target string) string {
	if target == "" {
		return "Me"
	}
	return "Me." + target
}

// renderFullVB emits a complete minimal file for full-generation mode.
func renderFullVB(doc *Document) []byte {
	var b strings.Builder

	classIndent := ""
	if doc.Namespace != "" {
		fmt.Fprintf(&b, "Namespace %s\n", doc.Namespace)
		classIndent = "    "
	}

	memberIndent := classIndent + "    "
	bodyIndent := memberIndent + "    "

	baseType := doc.BaseType
	if baseType == "" {
		baseType = "System.Windows.Forms.Form"
	}

	fmt.Fprintf(&b, "%sPartial Class %s\n", classIndent, doc.FormName)
	fmt.Fprintf(&b, "%sInherits %s\n\n", memberIndent, baseType)
	fmt.Fprintf(&b, "%sPrivate components As System.ComponentModel.IContainer\n\n", memberIndent)

	fmt.Fprintf(&b, "%sProtected Overrides Sub Dispose(ByVal disposing As Boolean)\n", memberIndent)
	fmt.Fprintf(&b, "%sTry\n", bodyIndent)
	fmt.Fprintf(&b, "%s    If disposing AndAlso components IsNot Nothing Then\n", bodyIndent)
	fmt.Fprintf(&b, "%s        components.Dispose()\n", bodyIndent)
	fmt.Fprintf(&b, "%s    End If\n", bodyIndent)
	fmt.Fprintf(&b, "%sFinally\n", bodyIndent)
	fmt.Fprintf(&b, "%s    MyBase.Dispose(disposing)\n", bodyIndent)
	fmt.Fprintf(&b, "%sEnd Try\n", bodyIndent)
	fmt.Fprintf(&b, "%sEnd Sub\n\n", memberIndent)

	fmt.Fprintf(&b, "%sPrivate Sub InitializeComponent()\n", memberIndent)
	b.WriteString(renderStatements(doc, newVBEmitter(bodyIndent)))
	fmt.Fprintf(&b, "%sEnd Sub\n\n", memberIndent)

	b.WriteString(renderFieldDecls(doc, newVBEmitter(memberIndent)))
	fmt.Fprintf(&b, "%sEnd Class\n", classIndent)

	if doc.Namespace != "" {
		b.WriteString("End Namespace\n")
	}
	return []byte(b.String())
}
