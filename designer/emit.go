package designer

import (
	"fmt"
	"strings"
)

// emitter renders single statements in one dialect's surface syntax.
// The empty target string means the form itself.
type emitter interface {
	declaration(n *Node)
	suspendLayout(target string)
	property(target, name, value string)
	childAdd(parent, child string)
	event(target string, b EventBinding)
	resumeLayout(target string)
	performLayout()
	fieldDecl(n *Node)
	text() string
}

// renderStatements serializes a Document into the fixed statement order
// the parser expects back. The order is a contract, not a reproduction
// of whatever order the input file used: declarations, layout
// suspension, per-node statements in declaration order, form-level
// statements, layout resumption.
func renderStatements(doc *Document, e emitter) string {
	ids := doc.Nodes()

	for _, id := range ids {
		e.declaration(doc.Node(id))
	}

	for _, id := range ids {
		if node := doc.Node(id); len(node.Children) > 0 {
			e.suspendLayout(node.Name)
		}
	}
	e.suspendLayout("")

	for _, id := range ids {
		node := doc.Node(id)
		for _, p := range node.Properties {
			e.property(node.Name, p.Name, p.Value)
		}
		for _, childID := range node.Children {
			if child := doc.Node(childID); child != nil {
				e.childAdd(node.Name, child.Name)
			}
		}
		for _, b := range node.Events {
			e.event(node.Name, b)
		}
	}

	for _, p := range doc.FormProperties {
		e.property("", p.Name, p.Value)
	}
	for _, rootID := range doc.Roots() {
		if root := doc.Node(rootID); root != nil {
			e.childAdd("", root.Name)
		}
	}
	for _, b := range doc.FormEvents {
		e.event("", b)
	}

	for _, id := range ids {
		if node := doc.Node(id); len(node.Children) > 0 {
			e.resumeLayout(node.Name)
		}
	}
	e.resumeLayout("")
	e.performLayout()

	return e.text()
}

// renderFieldDecls serializes the managed field-declaration block, one
// declaration per node in declaration order.
func renderFieldDecls(doc *Document, e emitter) string {
	for _, id := range doc.Nodes() {
		e.fieldDecl(doc.Node(id))
	}
	return e.text()
}

// lineWriter accumulates indented lines; both emitters embed it.
type lineWriter struct {
	buf    strings.Builder
	indent string
}

func (w *lineWriter) line(format string, args ...any) {
	w.buf.WriteString(w.indent)
	fmt.Fprintf(&w.buf, format, args...)
	w.buf.WriteByte('\n')
}

func (w *lineWriter) text() string {
	return w.buf.String()
}
