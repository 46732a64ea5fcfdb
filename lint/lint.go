// Package lint checks a parsed form document for the problems that
// survive a syntactically clean round trip: controls nobody added to a
// container, handlers wired to nothing, containers with no content.
package lint

import (
	"fmt"
	"strings"

	"github.com/dhamidi/winform/catalog"
	"github.com/dhamidi/winform/designer"
)

type Severity int

const (
	SeverityInfo Severity = iota
	SeverityWarning
	SeverityError
)

func (s Severity) String() string {
	switch s {
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	}
	return "info"
}

// Issue is one finding. Node is empty when the finding concerns the
// form as a whole.
type Issue struct {
	Severity Severity
	Node     string
	Rule     string
	Message  string
}

func (i Issue) String() string {
	target := i.Node
	if target == "" {
		target = "(form)"
	}
	return fmt.Sprintf("%s: %s: %s [%s]", i.Severity, target, i.Message, i.Rule)
}

// Check runs every rule over the document and returns the findings in
// a stable order: form-level first, then per node in declaration order.
func Check(doc *designer.Document) []Issue {
	var issues []Issue

	if _, ok := doc.FormProperty("Text"); !ok {
		issues = append(issues, Issue{
			Severity: SeverityInfo,
			Rule:     "form-title",
			Message:  "form has no Text property; the window title will be empty",
		})
	}

	contained := containedSet(doc)

	for _, id := range doc.Nodes() {
		node := doc.Node(id)
		ct, known := catalog.Lookup(node.TypeName)

		if !known {
			issues = append(issues, Issue{
				Severity: SeverityInfo,
				Node:     node.Name,
				Rule:     "unknown-type",
				Message:  fmt.Sprintf("type %s is not in the control catalog", node.TypeName),
			})
		}

		if !contained[id] && (!known || ct.Kind != catalog.KindComponent) {
			issues = append(issues, Issue{
				Severity: SeverityWarning,
				Node:     node.Name,
				Rule:     "unparented",
				Message:  "declared but never added to the form or a container",
			})
		}

		if known && ct.Kind == catalog.KindContainer && len(node.Children) == 0 {
			issues = append(issues, Issue{
				Severity: SeverityInfo,
				Node:     node.Name,
				Rule:     "empty-container",
				Message:  fmt.Sprintf("%s contains no controls", ct.Name),
			})
		}

		if known && needsText(ct) {
			if _, ok := node.Property("Text"); !ok {
				issues = append(issues, Issue{
					Severity: SeverityWarning,
					Node:     node.Name,
					Rule:     "missing-text",
					Message:  fmt.Sprintf("%s has no Text; it will render blank", ct.Name),
				})
			}
		}

		for _, b := range node.Events {
			if !handlerNameFits(node.Name, b) {
				issues = append(issues, Issue{
					Severity: SeverityInfo,
					Node:     node.Name,
					Rule:     "handler-naming",
					Message:  fmt.Sprintf("handler %s does not follow the <control>_<event> convention for %s", b.Handler, b.Event),
				})
			}
		}
	}

	return issues
}

// containedSet marks every node referenced by the root list or a child
// list.
func containedSet(doc *designer.Document) map[designer.NodeID]bool {
	contained := make(map[designer.NodeID]bool)
	for _, id := range doc.Roots() {
		contained[id] = true
	}
	for _, id := range doc.Nodes() {
		for _, childID := range doc.Node(id).Children {
			contained[childID] = true
		}
	}
	return contained
}

// needsText lists the control kinds a user reads or clicks by their
// caption.
func needsText(ct catalog.ControlType) bool {
	switch ct.Name {
	case "Button", "Label", "CheckBox", "RadioButton", "GroupBox":
		return true
	}
	return false
}

func handlerNameFits(nodeName string, b designer.EventBinding) bool {
	return strings.EqualFold(b.Handler, nodeName+"_"+b.Event)
}
