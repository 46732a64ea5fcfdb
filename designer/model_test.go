package designer

import "testing"

func TestAddNodeDeduplicatesCaseInsensitively(t *testing.T) {
	doc := NewDocument("Form1")
	a := doc.AddNode("Button1", "System.Windows.Forms.Button")
	b := doc.AddNode("button1", "System.Windows.Forms.Button")
	if a != b {
		t.Errorf("AddNode returned distinct IDs %d and %d for the same name", a, b)
	}
	if doc.NodeCount() != 1 {
		t.Errorf("NodeCount = %d, want 1", doc.NodeCount())
	}
	// The first-seen spelling wins.
	if doc.Node(a).Name != "Button1" {
		t.Errorf("Name = %q, want Button1", doc.Node(a).Name)
	}
}

func TestLookupIsCaseInsensitive(t *testing.T) {
	doc := NewDocument("Form1")
	id := doc.AddNode("Panel1", "System.Windows.Forms.Panel")
	got, ok := doc.Lookup("PANEL1")
	if !ok || got != id {
		t.Errorf("Lookup(PANEL1) = %d, %v; want %d, true", got, ok, id)
	}
	if doc.NodeByName("panel1") == nil {
		t.Error("NodeByName(panel1) = nil")
	}
}

func TestPropertyNamesAreCaseSensitive(t *testing.T) {
	doc := NewDocument("Form1")
	node := doc.Node(doc.AddNode("button1", "System.Windows.Forms.Button"))
	node.SetProperty("Text", "\"Save\"")
	node.SetProperty("text", "\"other\"")
	if len(node.Properties) != 2 {
		t.Fatalf("got %d properties, want 2 distinct entries", len(node.Properties))
	}
	if v, _ := node.Property("Text"); v != "\"Save\"" {
		t.Errorf("Property(Text) = %q", v)
	}
	if v, _ := node.Property("text"); v != "\"other\"" {
		t.Errorf("Property(text) = %q", v)
	}
}

func TestSetPropertyLastAssignmentWinsInPlace(t *testing.T) {
	doc := NewDocument("Form1")
	node := doc.Node(doc.AddNode("button1", "System.Windows.Forms.Button"))
	node.SetProperty("Text", "\"one\"")
	node.SetProperty("Size", "new System.Drawing.Size(75, 23)")
	node.SetProperty("Text", "\"two\"")
	if len(node.Properties) != 2 {
		t.Fatalf("got %d properties, want 2", len(node.Properties))
	}
	// Re-assignment keeps the original position.
	if node.Properties[0].Name != "Text" || node.Properties[0].Value != "\"two\"" {
		t.Errorf("Properties[0] = %+v", node.Properties[0])
	}
}

func TestAddChildMovesContainment(t *testing.T) {
	doc := NewDocument("Form1")
	panel1 := doc.AddNode("panel1", "System.Windows.Forms.Panel")
	panel2 := doc.AddNode("panel2", "System.Windows.Forms.Panel")
	button1 := doc.AddNode("button1", "System.Windows.Forms.Button")

	doc.AddChild(panel1, button1)
	doc.AddChild(panel2, button1)

	if n := len(doc.Node(panel1).Children); n != 0 {
		t.Errorf("panel1 still holds %d children", n)
	}
	if parent, ok := doc.ParentOf(button1); !ok || parent != panel2 {
		t.Errorf("ParentOf(button1) = %d, %v; want %d, true", parent, ok, panel2)
	}
}

func TestAddRootDetachesFromParent(t *testing.T) {
	doc := NewDocument("Form1")
	panel1 := doc.AddNode("panel1", "System.Windows.Forms.Panel")
	button1 := doc.AddNode("button1", "System.Windows.Forms.Button")

	doc.AddChild(panel1, button1)
	doc.AddRoot(button1)

	if n := len(doc.Node(panel1).Children); n != 0 {
		t.Errorf("panel1 still holds %d children", n)
	}
	roots := doc.Roots()
	if len(roots) != 1 || roots[0] != button1 {
		t.Errorf("Roots = %v", roots)
	}
}

func TestRemoveNode(t *testing.T) {
	doc := NewDocument("Form1")
	panel1 := doc.AddNode("panel1", "System.Windows.Forms.Panel")
	button1 := doc.AddNode("button1", "System.Windows.Forms.Button")
	doc.AddRoot(panel1)
	doc.AddChild(panel1, button1)

	if !doc.RemoveNode("Button1") {
		t.Fatal("RemoveNode returned false for a live node")
	}
	if doc.Node(button1) != nil {
		t.Error("removed slot should read back nil")
	}
	if doc.NodeCount() != 1 {
		t.Errorf("NodeCount = %d, want 1", doc.NodeCount())
	}
	if n := len(doc.Node(panel1).Children); n != 0 {
		t.Errorf("panel1 still references the removed node, children = %d", n)
	}
	if doc.RemoveNode("button1") {
		t.Error("second removal should return false")
	}

	// IDs remain stable after removal.
	if doc.Node(panel1) == nil || doc.Node(panel1).Name != "panel1" {
		t.Error("surviving node not reachable by its original ID")
	}
	ids := doc.Nodes()
	if len(ids) != 1 || ids[0] != panel1 {
		t.Errorf("Nodes = %v, want [%d]", ids, panel1)
	}
}

func TestRemoveNodeOrphansChildren(t *testing.T) {
	doc := NewDocument("Form1")
	panel1 := doc.AddNode("panel1", "System.Windows.Forms.Panel")
	button1 := doc.AddNode("button1", "System.Windows.Forms.Button")
	doc.AddRoot(panel1)
	doc.AddChild(panel1, button1)

	doc.RemoveNode("panel1")

	if doc.Node(button1) == nil {
		t.Fatal("child should survive removal of its container")
	}
	if _, ok := doc.ParentOf(button1); ok {
		t.Error("orphaned child should have no parent")
	}
	if len(doc.Roots()) != 0 {
		t.Errorf("Roots = %v, want empty", doc.Roots())
	}
}
