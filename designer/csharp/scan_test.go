package csharp

import (
	"strings"
	"testing"
)

const sampleFile = `namespace Demo
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
            this.panel1.Controls.Add(this.button1);
            this.Controls.Add(this.panel1);
        }

        private System.Windows.Forms.Panel panel1;
        private System.Windows.Forms.Button button1;
    }
}
`

func TestScanLayout(t *testing.T) {
	info := Scan([]byte(sampleFile), "Form1.Designer.cs")

	if info.Layout.TypeName != "Form1" {
		t.Errorf("TypeName = %q, want Form1", info.Layout.TypeName)
	}
	if info.Layout.Namespace != "Demo" {
		t.Errorf("Namespace = %q, want Demo", info.Layout.Namespace)
	}
	if info.Layout.BaseType != "System.Windows.Forms.Form" {
		t.Errorf("BaseType = %q", info.Layout.BaseType)
	}
	if !info.Layout.HasMethod {
		t.Fatal("managed method not found")
	}
	body := sampleFile[info.Layout.Method.Start:info.Layout.Method.End]
	if !strings.Contains(body, "this.panel1 = new System.Windows.Forms.Panel();") {
		t.Errorf("method body missing declaration: %q", body)
	}
	if strings.Contains(body, "Dispose") {
		t.Errorf("method body leaked into Dispose: %q", body)
	}
}

func TestScanMembers(t *testing.T) {
	info := Scan([]byte(sampleFile), "Form1.Designer.cs")

	names := make(map[string]string)
	for _, m := range info.Members {
		names[m.Name] = m.TypeName
	}
	if names["components"] != "System.ComponentModel.IContainer" {
		t.Errorf("components type = %q", names["components"])
	}
	if names["panel1"] != "System.Windows.Forms.Panel" {
		t.Errorf("panel1 type = %q", names["panel1"])
	}
	if names["button1"] != "System.Windows.Forms.Button" {
		t.Errorf("button1 type = %q", names["button1"])
	}
}

func TestScanFieldBlockIsTrailingRun(t *testing.T) {
	info := Scan([]byte(sampleFile), "Form1.Designer.cs")

	if !info.Layout.HasFields {
		t.Fatal("field block not found")
	}
	block := sampleFile[info.Layout.Fields.Start:info.Layout.Fields.End]
	if !strings.Contains(block, "panel1;") || !strings.Contains(block, "button1;") {
		t.Errorf("field block = %q", block)
	}
	// The components field sits before other members and is not part of
	// the managed trailing run.
	if strings.Contains(block, "components") {
		t.Errorf("field block should not include components: %q", block)
	}
}

func TestScanWithoutClass(t *testing.T) {
	info := Scan([]byte("// just a comment\n"), "x.cs")
	if info.Layout.TypeName != "" {
		t.Errorf("TypeName = %q, want empty", info.Layout.TypeName)
	}
	if info.Layout.HasMethod {
		t.Error("HasMethod should be false")
	}
}

func TestScanWithoutManagedMethod(t *testing.T) {
	src := "namespace X\n{\n    class Y\n    {\n        void Other() { }\n    }\n}\n"
	info := Scan([]byte(src), "y.cs")
	if info.Layout.TypeName != "Y" {
		t.Errorf("TypeName = %q", info.Layout.TypeName)
	}
	if info.Layout.HasMethod {
		t.Error("HasMethod should be false")
	}
}

func TestScanIndents(t *testing.T) {
	info := Scan([]byte(sampleFile), "Form1.Designer.cs")
	if info.Layout.BodyIndent != "            " {
		t.Errorf("BodyIndent = %q", info.Layout.BodyIndent)
	}
	if info.Layout.DeclIndent != "        " {
		t.Errorf("DeclIndent = %q", info.Layout.DeclIndent)
	}
}
