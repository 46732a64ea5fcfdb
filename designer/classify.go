package designer

import (
	"strings"

	"github.com/dhamidi/winform/designer/syntax"
)

type statementClass int

const (
	stmtUnrecognized statementClass = iota
	stmtDeclaration
	stmtProperty
	stmtChildAdd
	stmtEvent
)

// classified is the result of matching one statement against the four
// recognized shapes. target is the node name, or "" for the form itself.
type classified struct {
	class    statementClass
	target   string
	typeName string // declarations
	property string // property assignments
	value    string
	child    string // child adds
	event    string // event wirings
	handler  string
}

// classify decides which statement shape a syntax node matches. members
// holds the lower-cased names of fields declared by the enclosing type;
// it guards the Declaration shape so that a property assigned a
// constructed value (a size, a point, a font) is never mistaken for a
// sibling control declaration.
func classify(stmt *syntax.Node, members map[string]bool) classified {
	switch stmt.Kind {
	case syntax.KindAssignStmt:
		return classifyAssign(stmt, members)
	case syntax.KindAddAssignStmt:
		return classifyAddAssign(stmt)
	case syntax.KindAddHandlerStmt:
		return classifyAddHandler(stmt)
	case syntax.KindCallStmt:
		return classifyCall(stmt)
	}
	return classified{}
}

func classifyAssign(stmt *syntax.Node, members map[string]bool) classified {
	if len(stmt.Children) != 2 {
		return classified{}
	}
	path, value := stmt.Children[0], stmt.Children[1]
	if !path.IsSelfRooted() {
		return classified{}
	}
	names := path.PathNames()

	switch len(names) {
	case 1:
		// Declaration only when the constructed name is a known member;
		// otherwise this is a form property that happens to hold an
		// object construction.
		if value.Kind == syntax.KindNewExpr && members[strings.ToLower(names[0])] {
			return classified{
				class:    stmtDeclaration,
				target:   names[0],
				typeName: value.TokenLiteral(),
			}
		}
		return classified{
			class:    stmtProperty,
			property: names[0],
			value:    value.Text,
		}
	case 2:
		return classified{
			class:    stmtProperty,
			target:   names[0],
			property: names[1],
			value:    value.Text,
		}
	}
	return classified{}
}

// classifyAddAssign handles the compound-add operator form of event
// wiring: `self.[target.]event += handler` where the handler is a direct
// reference or a single-argument delegate construction.
func classifyAddAssign(stmt *syntax.Node) classified {
	if len(stmt.Children) != 2 {
		return classified{}
	}
	path, value := stmt.Children[0], stmt.Children[1]
	if !path.IsSelfRooted() {
		return classified{}
	}
	handler := handlerName(value)
	if handler == "" {
		return classified{}
	}
	return eventFromPath(path, handler)
}

// classifyAddHandler handles the explicit add-handler statement form:
// `AddHandler self.[target.]event, AddressOf handler`.
func classifyAddHandler(stmt *syntax.Node) classified {
	if len(stmt.Children) != 2 {
		return classified{}
	}
	path, value := stmt.Children[0], stmt.Children[1]
	if !path.IsSelfRooted() {
		return classified{}
	}
	handler := handlerName(value)
	if handler == "" {
		return classified{}
	}
	return eventFromPath(path, handler)
}

func eventFromPath(path *syntax.Node, handler string) classified {
	names := path.PathNames()
	switch len(names) {
	case 1:
		return classified{class: stmtEvent, event: names[0], handler: handler}
	case 2:
		return classified{class: stmtEvent, target: names[0], event: names[1], handler: handler}
	}
	return classified{}
}

// handlerName digs the handler method name out of the accepted handler
// expression forms.
func handlerName(value *syntax.Node) string {
	switch value.Kind {
	case syntax.KindMemberPath:
		return value.LastName()
	case syntax.KindAddressOf:
		if len(value.Children) == 1 && value.Children[0].Kind == syntax.KindMemberPath {
			return value.Children[0].LastName()
		}
	case syntax.KindNewExpr:
		if len(value.Children) == 1 && value.Children[0].Kind == syntax.KindMemberPath {
			return value.Children[0].LastName()
		}
	}
	return ""
}

// classifyCall recognizes `self.[parent.]Controls.Add(self.child, ...)`.
// Arguments past the first (grid coordinates and the like) are accepted
// and ignored.
func classifyCall(stmt *syntax.Node) classified {
	if len(stmt.Children) < 2 {
		return classified{}
	}
	path := stmt.Children[0]
	if !path.IsSelfRooted() {
		return classified{}
	}
	names := path.PathNames()
	if len(names) < 2 || len(names) > 3 {
		return classified{}
	}
	if !strings.EqualFold(names[len(names)-2], "Controls") || !strings.EqualFold(names[len(names)-1], "Add") {
		return classified{}
	}

	arg := stmt.Children[1]
	if arg.Kind != syntax.KindMemberPath || !arg.IsSelfRooted() {
		return classified{}
	}
	childNames := arg.PathNames()
	if len(childNames) != 1 {
		return classified{}
	}

	parent := ""
	if len(names) == 3 {
		parent = names[0]
	}
	return classified{class: stmtChildAdd, target: parent, child: childNames[0]}
}
