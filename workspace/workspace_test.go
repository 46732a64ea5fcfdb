package workspace

import (
	"os"
	"path/filepath"
	"testing"
)

const designerFile = `namespace Demo
{
    partial class Form1 : System.Windows.Forms.Form
    {
        private void InitializeComponent()
        {
            this.button1 = new System.Windows.Forms.Button();
            this.Controls.Add(this.button1);
        }

        private System.Windows.Forms.Button button1;
    }
}
`

func TestIsDesignerFile(t *testing.T) {
	tests := []struct {
		path string
		want bool
	}{
		{"Form1.Designer.cs", true},
		{"Form1.Designer.vb", true},
		{"sub/dir/Main.designer.CS", true},
		{"Form1.cs", false},
		{"Form1.Designer.txt", false},
		{"Designer.cs", false},
	}
	for _, test := range tests {
		if got := IsDesignerFile(test.path); got != test.want {
			t.Errorf("IsDesignerFile(%q) = %v, want %v", test.path, got, test.want)
		}
	}
}

func TestScanAll(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "Form1.Designer.cs")
	if err := os.WriteFile(good, []byte(designerFile), 0644); err != nil {
		t.Fatal(err)
	}
	// Not a designer file; must be ignored.
	other := filepath.Join(dir, "Program.cs")
	if err := os.WriteFile(other, []byte("class Program {}\n"), 0644); err != nil {
		t.Fatal(err)
	}

	w := New(dir)
	if err := w.ScanAll(); err != nil {
		t.Fatal(err)
	}

	files := w.Files()
	if len(files) != 1 || files[0] != good {
		t.Fatalf("Files = %v", files)
	}
	state := w.Get(good)
	if state == nil || state.Doc == nil {
		t.Fatal("designer file did not parse")
	}
	if state.Doc.FormName != "Form1" {
		t.Errorf("FormName = %q", state.Doc.FormName)
	}
}

func TestUpdateFileKeepsBrokenFilesTracked(t *testing.T) {
	w := New(".")
	err := w.UpdateFile("Broken.Designer.cs", []byte("// not a designer file\n"))
	if err == nil {
		t.Fatal("expected a parse error")
	}

	state := w.Get("Broken.Designer.cs")
	if state == nil {
		t.Fatal("broken file should stay tracked")
	}
	if state.Doc != nil {
		t.Error("broken file should have no document")
	}
	if state.ParseErr == nil {
		t.Error("ParseErr should be set")
	}
	if len(w.Documents()) != 0 {
		t.Errorf("Documents = %v, want none", w.Documents())
	}
}

func TestUpdateThenRemove(t *testing.T) {
	w := New(".")
	if err := w.UpdateFile("Form1.Designer.cs", []byte(designerFile)); err != nil {
		t.Fatal(err)
	}
	if len(w.Documents()) != 1 {
		t.Fatalf("Documents = %d, want 1", len(w.Documents()))
	}
	w.Remove("Form1.Designer.cs")
	if w.Get("Form1.Designer.cs") != nil {
		t.Error("file still tracked after Remove")
	}
}
