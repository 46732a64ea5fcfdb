package designer

import (
	"strings"

	"github.com/dhamidi/winform/designer/syntax"
)

// formKey is the sentinel for "the form itself" in the child-add
// accumulator.
const formKey = ""

// buildDocument runs the three fixed passes over the statement sequence:
// declarations, then assignments/additions/events, then hierarchy
// linking. Unresolved references are dropped silently; a statement may
// legitimately mention a member the classifier never saw declared, such
// as a non-visual component.
func buildDocument(layout syntax.Layout, members []syntax.Member, stmts []*syntax.Node) *Document {
	doc := NewDocument(layout.TypeName)
	doc.Namespace = layout.Namespace
	doc.BaseType = layout.BaseType

	memberSet := make(map[string]bool, len(members))
	containerMembers := make(map[string]bool)
	for _, m := range members {
		memberSet[strings.ToLower(m.Name)] = true
		if isContainerType(m.TypeName) {
			containerMembers[strings.ToLower(m.Name)] = true
		}
	}

	// Pass 1: declarations, in statement order. The component container
	// the designer allocates for non-visual components is part of the
	// fixed preamble; it is declared outside the managed field block and
	// never becomes a node.
	for _, stmt := range stmts {
		c := classify(stmt, memberSet)
		if c.class == stmtDeclaration && !containerMembers[strings.ToLower(c.target)] {
			doc.AddNode(c.target, c.typeName)
		}
	}

	// Pass 2: properties, child adds, events. Child adds accumulate per
	// parent so the hierarchy can be linked once all names are known.
	pending := make(map[string][]string)
	for _, stmt := range stmts {
		c := classify(stmt, memberSet)
		switch c.class {
		case stmtProperty:
			if c.target == formKey {
				doc.SetFormProperty(c.property, c.value)
			} else if node := doc.NodeByName(c.target); node != nil {
				node.SetProperty(c.property, c.value)
			}
		case stmtChildAdd:
			key := strings.ToLower(c.target)
			pending[key] = append(pending[key], c.child)
		case stmtEvent:
			if c.target == formKey {
				doc.AddFormEvent(c.event, c.handler)
			} else if node := doc.NodeByName(c.target); node != nil {
				node.AddEvent(c.event, c.handler)
			}
		}
	}

	// Pass 3: hierarchy. Parents resolve in declaration order; the form
	// sentinel populates the root list.
	for _, id := range doc.Nodes() {
		parent := doc.Node(id)
		for _, childName := range pending[strings.ToLower(parent.Name)] {
			if childID, ok := doc.Lookup(childName); ok {
				doc.AddChild(id, childID)
			}
		}
	}
	for _, childName := range pending[formKey] {
		if childID, ok := doc.Lookup(childName); ok {
			doc.AddRoot(childID)
		}
	}

	return doc
}

// isContainerType matches the declared type of the component-container
// field, in qualified or bare spelling.
func isContainerType(typeName string) bool {
	switch {
	case strings.EqualFold(typeName, "System.ComponentModel.IContainer"),
		strings.EqualFold(typeName, "System.ComponentModel.Container"),
		strings.EqualFold(typeName, "IContainer"),
		strings.EqualFold(typeName, "Container"):
		return true
	}
	return false
}
