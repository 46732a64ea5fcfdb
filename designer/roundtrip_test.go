package designer

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const csSample = `namespace Demo
{
    partial class Form1 : System.Windows.Forms.Form
    {
        private System.ComponentModel.IContainer components = null;

        protected override void Dispose(bool disposing)
        {
            if (disposing && (components != null))
            {
                components.Dispose();
            }
            base.Dispose(disposing);
        }

        private void InitializeComponent()
        {
            this.panel1 = new System.Windows.Forms.Panel();
            this.button1 = new System.Windows.Forms.Button();
            this.panel1.SuspendLayout();
            this.SuspendLayout();
            this.panel1.Location = new System.Drawing.Point(8, 8);
            this.panel1.Size = new System.Drawing.Size(200, 100);
            this.button1.Text = "Save";
            this.button1.Size = new System.Drawing.Size(75, 23);
            this.panel1.Controls.Add(this.button1);
            this.button1.Click += this.button1_Click;
            this.Text = "Demo";
            this.ClientSize = new System.Drawing.Size(292, 273);
            this.Controls.Add(this.panel1);
            this.Load += this.Form1_Load;
            this.panel1.ResumeLayout(false);
            this.ResumeLayout(false);
            this.PerformLayout();
        }

        private System.Windows.Forms.Panel panel1;
        private System.Windows.Forms.Button button1;
    }
}
`

// sameDocument compares two documents field by field, resolving child
// references through names so arena IDs need not line up.
func sameDocument(t *testing.T, got, want *Document) {
	t.Helper()
	if got.FormName != want.FormName {
		t.Errorf("FormName = %q, want %q", got.FormName, want.FormName)
	}
	if got.Namespace != want.Namespace {
		t.Errorf("Namespace = %q, want %q", got.Namespace, want.Namespace)
	}

	gotNames := nodeNames(got)
	wantNames := nodeNames(want)
	if strings.Join(gotNames, ",") != strings.Join(wantNames, ",") {
		t.Fatalf("nodes = %v, want %v", gotNames, wantNames)
	}
	for _, name := range wantNames {
		g, w := got.NodeByName(name), want.NodeByName(name)
		if g.TypeName != w.TypeName {
			t.Errorf("%s: TypeName = %q, want %q", name, g.TypeName, w.TypeName)
		}
		if len(g.Properties) != len(w.Properties) {
			t.Errorf("%s: %d properties, want %d", name, len(g.Properties), len(w.Properties))
			continue
		}
		for i := range w.Properties {
			if g.Properties[i] != w.Properties[i] {
				t.Errorf("%s: property %d = %+v, want %+v", name, i, g.Properties[i], w.Properties[i])
			}
		}
		if strings.Join(childNames(got, g), ",") != strings.Join(childNames(want, w), ",") {
			t.Errorf("%s: children = %v, want %v", name, childNames(got, g), childNames(want, w))
		}
		if len(g.Events) != len(w.Events) {
			t.Errorf("%s: %d events, want %d", name, len(g.Events), len(w.Events))
			continue
		}
		for i := range w.Events {
			if g.Events[i] != w.Events[i] {
				t.Errorf("%s: event %d = %+v, want %+v", name, i, g.Events[i], w.Events[i])
			}
		}
	}

	if len(got.FormProperties) != len(want.FormProperties) {
		t.Errorf("%d form properties, want %d", len(got.FormProperties), len(want.FormProperties))
	} else {
		for i := range want.FormProperties {
			if got.FormProperties[i] != want.FormProperties[i] {
				t.Errorf("form property %d = %+v, want %+v", i, got.FormProperties[i], want.FormProperties[i])
			}
		}
	}
	if len(got.FormEvents) != len(want.FormEvents) {
		t.Errorf("%d form events, want %d", len(got.FormEvents), len(want.FormEvents))
	}
	if strings.Join(rootNames(got), ",") != strings.Join(rootNames(want), ",") {
		t.Errorf("roots = %v, want %v", rootNames(got), rootNames(want))
	}
}

func nodeNames(d *Document) []string {
	var names []string
	for _, id := range d.Nodes() {
		names = append(names, d.Node(id).Name)
	}
	return names
}

func childNames(d *Document, n *Node) []string {
	var names []string
	for _, id := range n.Children {
		if c := d.Node(id); c != nil {
			names = append(names, c.Name)
		}
	}
	return names
}

func rootNames(d *Document) []string {
	var names []string
	for _, id := range d.Roots() {
		if n := d.Node(id); n != nil {
			names = append(names, n.Name)
		}
	}
	return names
}

func TestParseSourceCSharp(t *testing.T) {
	doc, err := ParseSource([]byte(csSample), "Form1.Designer.cs", DialectCSharp)
	if err != nil {
		t.Fatal(err)
	}

	if doc.FormName != "Form1" || doc.Namespace != "Demo" {
		t.Errorf("FormName/Namespace = %q/%q", doc.FormName, doc.Namespace)
	}
	if doc.NodeCount() != 2 {
		t.Fatalf("NodeCount = %d, want 2", doc.NodeCount())
	}
	panel := doc.NodeByName("panel1")
	if v, _ := panel.Property("Location"); v != "new System.Drawing.Point(8, 8)" {
		t.Errorf("panel1.Location = %q", v)
	}
	if v, _ := doc.FormProperty("ClientSize"); v != "new System.Drawing.Size(292, 273)" {
		t.Errorf("ClientSize = %q", v)
	}
	if names := rootNames(doc); len(names) != 1 || names[0] != "panel1" {
		t.Errorf("roots = %v", names)
	}
	if names := childNames(doc, panel); len(names) != 1 || names[0] != "button1" {
		t.Errorf("panel1 children = %v", names)
	}
}

func TestRoundTripIdentity(t *testing.T) {
	original := []byte(csSample)
	doc, err := ParseSource(original, "Form1.Designer.cs", DialectCSharp)
	if err != nil {
		t.Fatal(err)
	}

	rendered := Render(original, doc, DialectCSharp)
	again, err := ParseSource(rendered, "Form1.Designer.cs", DialectCSharp)
	if err != nil {
		t.Fatalf("rendered output does not parse: %v\n%s", err, rendered)
	}
	sameDocument(t, again, doc)
}

func TestRenderIsStable(t *testing.T) {
	original := []byte(csSample)
	doc, err := ParseSource(original, "Form1.Designer.cs", DialectCSharp)
	if err != nil {
		t.Fatal(err)
	}

	first := Render(original, doc, DialectCSharp)
	doc2, err := ParseSource(first, "Form1.Designer.cs", DialectCSharp)
	if err != nil {
		t.Fatal(err)
	}
	second := Render(first, doc2, DialectCSharp)
	if !bytes.Equal(first, second) {
		t.Errorf("second render differs from first:\n%s\n----\n%s", first, second)
	}
}

func TestSplicePreservesSurroundingText(t *testing.T) {
	original := []byte(csSample)
	doc, err := ParseSource(original, "Form1.Designer.cs", DialectCSharp)
	if err != nil {
		t.Fatal(err)
	}

	out := string(Render(original, doc, DialectCSharp))

	for _, keep := range []string{
		"namespace Demo",
		"partial class Form1 : System.Windows.Forms.Form",
		"private System.ComponentModel.IContainer components = null;",
		"protected override void Dispose(bool disposing)",
		"base.Dispose(disposing);",
	} {
		if !strings.Contains(out, keep) {
			t.Errorf("spliced output lost %q", keep)
		}
	}
	// Everything before the managed method body is byte-identical.
	marker := "private void InitializeComponent()"
	if !strings.HasPrefix(out, csSample[:strings.Index(csSample, marker)]) {
		t.Error("prefix before the managed method changed")
	}
}

func TestRenderKeepsSingleContainerDeclaration(t *testing.T) {
	src := strings.Replace(csSample,
		"            this.panel1 = new System.Windows.Forms.Panel();\n",
		"            this.components = new System.ComponentModel.Container();\n"+
			"            this.panel1 = new System.Windows.Forms.Panel();\n", 1)

	doc, err := ParseSource([]byte(src), "Form1.Designer.cs", DialectCSharp)
	if err != nil {
		t.Fatal(err)
	}
	if doc.NodeByName("components") != nil {
		t.Fatal("container preamble should not become a node")
	}

	out := string(Render([]byte(src), doc, DialectCSharp))
	if !strings.Contains(out, "private System.ComponentModel.IContainer components = null;") {
		t.Error("original container declaration lost")
	}
	if strings.Contains(out, "Container components;") {
		t.Errorf("regenerated a second container declaration:\n%s", out)
	}
}

func TestConvertDialects(t *testing.T) {
	doc, err := ParseSource([]byte(csSample), "Form1.Designer.cs", DialectCSharp)
	if err != nil {
		t.Fatal(err)
	}

	vb := Render(nil, doc, DialectVB)
	if !strings.Contains(string(vb), "Me.panel1 = New System.Windows.Forms.Panel()") {
		t.Errorf("generated output missing declaration:\n%s", vb)
	}
	if !strings.Contains(string(vb), "AddHandler Me.button1.Click, AddressOf Me.button1_Click") {
		t.Errorf("generated output missing handler wiring:\n%s", vb)
	}

	fromVB, err := ParseSource(vb, "Form1.Designer.vb", DialectVB)
	if err != nil {
		t.Fatalf("generated output does not parse: %v\n%s", err, vb)
	}
	sameDocument(t, fromVB, doc)

	// And back again.
	cs := Render(nil, fromVB, DialectCSharp)
	fromCS, err := ParseSource(cs, "Form1.Designer.cs", DialectCSharp)
	if err != nil {
		t.Fatalf("regenerated output does not parse: %v\n%s", err, cs)
	}
	sameDocument(t, fromCS, doc)
}

func TestFullGenerationRoundTripVB(t *testing.T) {
	doc := NewDocument("Form1")
	doc.Namespace = "Demo"
	panel := doc.AddNode("Panel1", "System.Windows.Forms.Panel")
	button := doc.AddNode("Button1", "System.Windows.Forms.Button")
	doc.Node(button).SetProperty("Text", "\"Save\"")
	doc.Node(button).AddEvent("Click", "Button1_Click")
	doc.AddChild(panel, button)
	doc.AddRoot(panel)
	doc.SetFormProperty("Text", "\"Demo\"")

	out := Render(nil, doc, DialectVB)
	again, err := ParseSource(out, "Form1.Designer.vb", DialectVB)
	if err != nil {
		t.Fatalf("generated output does not parse: %v\n%s", err, out)
	}
	sameDocument(t, again, doc)
}

func TestWriteRemovedNodeDisappears(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "Form1.Designer.cs")
	src := `namespace Demo
{
    partial class Form1 : System.Windows.Forms.Form
    {
        private void InitializeComponent()
        {
            this.panel1 = new System.Windows.Forms.Panel();
            this.Controls.Add(this.panel1);
        }

        private System.Windows.Forms.Panel panel1;
    }
}
`
	if err := os.WriteFile(path, []byte(src), 0644); err != nil {
		t.Fatal(err)
	}

	doc, err := Parse(path, DialectCSharp)
	if err != nil {
		t.Fatal(err)
	}
	if doc.NodeCount() != 1 {
		t.Fatalf("NodeCount = %d, want 1", doc.NodeCount())
	}

	doc.RemoveNode("panel1")
	if err := Write(path, doc, DialectCSharp); err != nil {
		t.Fatal(err)
	}

	again, err := Parse(path, DialectCSharp)
	if err != nil {
		t.Fatal(err)
	}
	if again.NodeCount() != 0 {
		t.Errorf("NodeCount after removal = %d, want 0", again.NodeCount())
	}
	if len(again.Roots()) != 0 {
		t.Errorf("Roots after removal = %v", again.Roots())
	}
}

func TestWriteCreatesMissingFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "New.Designer.cs")

	doc := NewDocument("NewForm")
	doc.AddRoot(doc.AddNode("label1", "System.Windows.Forms.Label"))

	if err := Write(path, doc, DialectCSharp); err != nil {
		t.Fatal(err)
	}
	again, err := Parse(path, DialectCSharp)
	if err != nil {
		t.Fatal(err)
	}
	if again.FormName != "NewForm" || again.NodeCount() != 1 {
		t.Errorf("FormName = %q, NodeCount = %d", again.FormName, again.NodeCount())
	}
}

func TestParseSourceErrors(t *testing.T) {
	if _, err := ParseSource([]byte("// empty\n"), "x.cs", DialectCSharp); err == nil {
		t.Error("expected an error for a file without a type declaration")
	}
	src := "class Thing\n{\n    void Other()\n    {\n    }\n}\n"
	if _, err := ParseSource([]byte(src), "x.cs", DialectCSharp); err == nil {
		t.Error("expected an error for a file without the managed method")
	}
}

func TestEmissionOrder(t *testing.T) {
	doc, err := ParseSource([]byte(csSample), "Form1.Designer.cs", DialectCSharp)
	if err != nil {
		t.Fatal(err)
	}

	stmts := renderStatements(doc, newCSharpEmitter(""))
	lines := strings.Split(strings.TrimSuffix(stmts, "\n"), "\n")

	want := []string{
		"this.panel1 = new System.Windows.Forms.Panel();",
		"this.button1 = new System.Windows.Forms.Button();",
		"this.panel1.SuspendLayout();",
		"this.SuspendLayout();",
	}
	for i, w := range want {
		if lines[i] != w {
			t.Errorf("line %d = %q, want %q", i, lines[i], w)
		}
	}
	last := lines[len(lines)-1]
	if last != "this.PerformLayout();" {
		t.Errorf("last line = %q", last)
	}
	if lines[len(lines)-2] != "this.ResumeLayout(false);" {
		t.Errorf("next-to-last line = %q", lines[len(lines)-2])
	}
}
