// Package designer parses GUI-form designer files into a dialect-neutral
// model and writes edited models back, splicing only the managed region
// of the file. The two surface dialects live in the csharp and vbnet
// subpackages; everything here works on their shared syntax nodes.
package designer

import "strings"

// NodeID is a stable handle into a Document's node arena. IDs stay valid
// across removals; a removed slot reads back as nil.
type NodeID int

// EventBinding wires an event name to a handler method name.
type EventBinding struct {
	Event   string
	Handler string
}

// Property is one entry of an ordered property map. Value is the raw
// source-text expression, never evaluated; string values include their
// quote characters.
type Property struct {
	Name  string
	Value string
}

// Node is one declared control. Children are references into the owning
// Document's arena, never copies.
type Node struct {
	Name       string
	TypeName   string
	Properties []Property
	Children   []NodeID
	Events     []EventBinding
}

// SetProperty sets a property value, preserving first-seen order and
// letting the last assignment win. Property names compare case-sensitively.
func (n *Node) SetProperty(name, value string) {
	n.Properties = setProperty(n.Properties, name, value)
}

// Property returns the raw value text for a property name.
func (n *Node) Property(name string) (string, bool) {
	return getProperty(n.Properties, name)
}

func (n *Node) AddEvent(event, handler string) {
	n.Events = append(n.Events, EventBinding{Event: event, Handler: handler})
}

// Document is the parse result for one file. The arena owns every node;
// Roots and Node.Children reference into it by ID.
type Document struct {
	FormName  string
	Namespace string
	BaseType  string

	FormProperties []Property
	FormEvents     []EventBinding

	nodes []*Node
	roots []NodeID
	index map[string]NodeID
}

func NewDocument(formName string) *Document {
	return &Document{
		FormName: formName,
		index:    make(map[string]NodeID),
	}
}

// AddNode declares a node. Names are case-insensitively unique; a
// duplicate returns the existing ID.
func (d *Document) AddNode(name, typeName string) NodeID {
	key := strings.ToLower(name)
	if id, ok := d.index[key]; ok {
		return id
	}
	id := NodeID(len(d.nodes))
	d.nodes = append(d.nodes, &Node{Name: name, TypeName: typeName})
	d.index[key] = id
	return id
}

// Node returns the node for an ID, or nil for removed or out-of-range IDs.
func (d *Document) Node(id NodeID) *Node {
	if id < 0 || int(id) >= len(d.nodes) {
		return nil
	}
	return d.nodes[id]
}

// Lookup resolves a node name case-insensitively.
func (d *Document) Lookup(name string) (NodeID, bool) {
	id, ok := d.index[strings.ToLower(name)]
	return id, ok
}

// NodeByName resolves a node name case-insensitively, nil when absent.
func (d *Document) NodeByName(name string) *Node {
	if id, ok := d.Lookup(name); ok {
		return d.nodes[id]
	}
	return nil
}

// Nodes returns the IDs of all live nodes in declaration order.
func (d *Document) Nodes() []NodeID {
	ids := make([]NodeID, 0, len(d.nodes))
	for i, n := range d.nodes {
		if n != nil {
			ids = append(ids, NodeID(i))
		}
	}
	return ids
}

func (d *Document) NodeCount() int {
	count := 0
	for _, n := range d.nodes {
		if n != nil {
			count++
		}
	}
	return count
}

// Roots returns the nodes added directly to the form, in add order.
func (d *Document) Roots() []NodeID {
	return d.roots
}

// AddRoot adds a node directly to the form's child collection. Like
// AddChild, it first removes any existing containment reference.
func (d *Document) AddRoot(id NodeID) {
	if d.Node(id) != nil {
		d.detach(id)
		d.roots = append(d.roots, id)
	}
}

// AddChild appends child to parent's child list. A node belongs to at
// most one container; adding it somewhere else first removes the old
// reference.
func (d *Document) AddChild(parent, child NodeID) {
	p := d.Node(parent)
	if p == nil || d.Node(child) == nil {
		return
	}
	d.detach(child)
	p.Children = append(p.Children, child)
}

// ParentOf returns the container holding id, or -1 with false when the
// node is a root or unparented.
func (d *Document) ParentOf(id NodeID) (NodeID, bool) {
	for i, n := range d.nodes {
		if n == nil {
			continue
		}
		for _, c := range n.Children {
			if c == id {
				return NodeID(i), true
			}
		}
	}
	return -1, false
}

// RemoveNode deletes a node and every reference to it. Its children are
// orphaned, not deleted.
func (d *Document) RemoveNode(name string) bool {
	id, ok := d.Lookup(name)
	if !ok || d.nodes[id] == nil {
		return false
	}
	d.detach(id)
	d.nodes[id] = nil
	delete(d.index, strings.ToLower(name))
	return true
}

// detach removes id from the root list and from every child list.
func (d *Document) detach(id NodeID) {
	d.roots = removeID(d.roots, id)
	for _, n := range d.nodes {
		if n != nil {
			n.Children = removeID(n.Children, id)
		}
	}
}

func removeID(ids []NodeID, id NodeID) []NodeID {
	out := ids[:0]
	for _, x := range ids {
		if x != id {
			out = append(out, x)
		}
	}
	return out
}

// SetFormProperty sets a property on the form itself.
func (d *Document) SetFormProperty(name, value string) {
	d.FormProperties = setProperty(d.FormProperties, name, value)
}

func (d *Document) FormProperty(name string) (string, bool) {
	return getProperty(d.FormProperties, name)
}

func (d *Document) AddFormEvent(event, handler string) {
	d.FormEvents = append(d.FormEvents, EventBinding{Event: event, Handler: handler})
}

func setProperty(props []Property, name, value string) []Property {
	for i := range props {
		if props[i].Name == name {
			props[i].Value = value
			return props
		}
	}
	return append(props, Property{Name: name, Value: value})
}

func getProperty(props []Property, name string) (string, bool) {
	for _, p := range props {
		if p.Name == name {
			return p.Value, true
		}
	}
	return "", false
}
