// Package syntax holds the statement-level syntax tree shared by the two
// designer dialects. The dialect packages (csharp, vbnet) lex and parse a
// managed method body into these nodes; the designer package classifies
// them without caring which dialect produced them.
package syntax

type NodeKind int

const (
	KindUnknown NodeKind = iota

	// Statements
	KindAssignStmt     // path = value
	KindAddAssignStmt  // path += handler (C# event wiring)
	KindAddHandlerStmt // AddHandler path, handler (VB event wiring)
	KindCallStmt       // path(args...)

	// Expressions
	KindMemberPath // dotted identifier chain, possibly self-rooted
	KindSelf       // this / Me
	KindIdentifier
	KindNewExpr   // object construction; Token holds the type name
	KindAddressOf // AddressOf wrapper around a member path
	KindRawExpr   // verbatim expression text, never interpreted
)

var nodeKindNames = map[NodeKind]string{
	KindUnknown:        "Unknown",
	KindAssignStmt:     "AssignStmt",
	KindAddAssignStmt:  "AddAssignStmt",
	KindAddHandlerStmt: "AddHandlerStmt",
	KindCallStmt:       "CallStmt",
	KindMemberPath:     "MemberPath",
	KindSelf:           "Self",
	KindIdentifier:     "Identifier",
	KindNewExpr:        "NewExpr",
	KindAddressOf:      "AddressOf",
	KindRawExpr:        "RawExpr",
}

func (k NodeKind) String() string {
	if name, ok := nodeKindNames[k]; ok {
		return name
	}
	return "Unknown"
}

// Node is one statement or expression. Text carries the verbatim source
// text of value-position nodes (RawExpr, NewExpr); property values are
// stored from it untouched, quotes and all.
type Node struct {
	Kind     NodeKind
	Span     Span
	Token    *Token
	Children []*Node
	Text     string
}

func (n *Node) AddChild(child *Node) {
	if child != nil {
		n.Children = append(n.Children, child)
	}
}

func (n *Node) TokenLiteral() string {
	if n.Token != nil {
		return n.Token.Literal
	}
	return ""
}

// IsSelfRooted reports whether a member path starts with the dialect's
// self reference.
func (n *Node) IsSelfRooted() bool {
	return n.Kind == KindMemberPath && len(n.Children) > 0 && n.Children[0].Kind == KindSelf
}

// PathNames returns the identifier chain of a member path, excluding the
// self reference.
func (n *Node) PathNames() []string {
	if n.Kind != KindMemberPath {
		return nil
	}
	var names []string
	for _, child := range n.Children {
		if child.Kind == KindIdentifier {
			names = append(names, child.TokenLiteral())
		}
	}
	return names
}

// LastName returns the final identifier of a member path, or "".
func (n *Node) LastName() string {
	names := n.PathNames()
	if len(names) == 0 {
		return ""
	}
	return names[len(names)-1]
}

// Member is one field declared by the enclosing type. The declaration
// guard uses the name set; regeneration reuses nothing else from it.
type Member struct {
	Name     string
	TypeName string
}

// Region is a half-open byte range [Start, End) in the file text.
type Region struct {
	Start int
	End   int
}

func (r Region) Len() int { return r.End - r.Start }

// Layout locates the managed pieces of a designer file. Method covers the
// statements strictly inside the managed method body; Fields covers the
// trailing field-declaration block. When a region is absent the
// corresponding Has flag is false and the Region marks the insertion
// point (Start == End).
type Layout struct {
	TypeName   string
	Namespace  string
	BaseType   string
	Method     Region
	Fields     Region
	HasMethod  bool
	HasFields  bool
	BodyIndent string // indentation of statements inside the method body
	DeclIndent string // indentation of member declarations
}
