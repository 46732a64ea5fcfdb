package csharp

import (
	"testing"

	"github.com/dhamidi/winform/designer/syntax"
)

func TestParseStatementKinds(t *testing.T) {
	tests := []struct {
		input string
		kind  syntax.NodeKind
	}{
		{"this.button1 = new System.Windows.Forms.Button();", syntax.KindAssignStmt},
		{`this.button1.Text = "Submit";`, syntax.KindAssignStmt},
		{"this.button1.Size = new System.Drawing.Size(75, 23);", syntax.KindAssignStmt},
		{"this.Controls.Add(this.panel1);", syntax.KindCallStmt},
		{"this.panel1.Controls.Add(this.button1, 0, 1);", syntax.KindCallStmt},
		{"this.button1.Click += new System.EventHandler(this.button1_Click);", syntax.KindAddAssignStmt},
		{"this.button1.Click += this.button1_Click;", syntax.KindAddAssignStmt},
		{"this.SuspendLayout();", syntax.KindCallStmt},
		{"this.ResumeLayout(false);", syntax.KindCallStmt},
		{"((System.ComponentModel.ISupportInitialize)(this.grid)).BeginInit();", syntax.KindUnknown},
		{"int x = 1;", syntax.KindUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			stmts := ParseStatements([]byte(tt.input), "test.cs")
			if len(stmts) != 1 {
				t.Fatalf("got %d statements, want 1", len(stmts))
			}
			if stmts[0].Kind != tt.kind {
				t.Errorf("kind = %v, want %v", stmts[0].Kind, tt.kind)
			}
		})
	}
}

func TestParseEventHandlerShapes(t *testing.T) {
	tests := []struct {
		input string
		kind  syntax.NodeKind
	}{
		{"this.button1.Click += this.button1_Click;", syntax.KindMemberPath},
		{"this.Load += this.Form1_Load;", syntax.KindMemberPath},
		{"this.button1.Click += new System.EventHandler(this.button1_Click);", syntax.KindNewExpr},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			stmts := ParseStatements([]byte(tt.input), "test.cs")
			if len(stmts) != 1 || stmts[0].Kind != syntax.KindAddAssignStmt {
				t.Fatalf("expected one event wiring statement, got %v", stmts)
			}
			if got := stmts[0].Children[1].Kind; got != tt.kind {
				t.Errorf("handler value kind = %v, want %v", got, tt.kind)
			}
		})
	}
}

func TestParseStatementsSplitsOnSemicolons(t *testing.T) {
	body := `
		this.panel1 = new System.Windows.Forms.Panel();
		this.panel1.Controls.Add(this.button1);
	`
	stmts := ParseStatements([]byte(body), "test.cs")
	if len(stmts) != 2 {
		t.Fatalf("got %d statements, want 2", len(stmts))
	}
}

func TestParseAssignValueText(t *testing.T) {
	tests := []struct {
		input string
		value string
	}{
		{`this.button1.Text = "Submit";`, `"Submit"`},
		{"this.button1.Size = new System.Drawing.Size(75, 23);", "new System.Drawing.Size(75, 23)"},
		{"this.button1.TabIndex = 3;", "3"},
		{"this.button1.Anchor = System.Windows.Forms.AnchorStyles.Top | System.Windows.Forms.AnchorStyles.Left;", "System.Windows.Forms.AnchorStyles.Top | System.Windows.Forms.AnchorStyles.Left"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			stmts := ParseStatements([]byte(tt.input), "test.cs")
			if len(stmts) != 1 || stmts[0].Kind != syntax.KindAssignStmt {
				t.Fatalf("expected one assign statement, got %v", stmts)
			}
			if got := stmts[0].Children[1].Text; got != tt.value {
				t.Errorf("value = %q, want %q", got, tt.value)
			}
		})
	}
}

func TestParseNewExprStructure(t *testing.T) {
	stmts := ParseStatements([]byte("this.panel1 = new System.Windows.Forms.Panel();"), "test.cs")
	if len(stmts) != 1 {
		t.Fatalf("got %d statements", len(stmts))
	}
	value := stmts[0].Children[1]
	if value.Kind != syntax.KindNewExpr {
		t.Fatalf("value kind = %v, want NewExpr", value.Kind)
	}
	if value.TokenLiteral() != "System.Windows.Forms.Panel" {
		t.Errorf("type = %q", value.TokenLiteral())
	}
	if value.Text != "new System.Windows.Forms.Panel()" {
		t.Errorf("raw text = %q", value.Text)
	}
}

func TestParseMemberPath(t *testing.T) {
	stmts := ParseStatements([]byte(`this.panel1.Controls.Add(this.button1);`), "test.cs")
	path := stmts[0].Children[0]
	if !path.IsSelfRooted() {
		t.Fatal("path should be self-rooted")
	}
	names := path.PathNames()
	want := []string{"panel1", "Controls", "Add"}
	if len(names) != len(want) {
		t.Fatalf("names = %v", names)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("names[%d] = %q, want %q", i, names[i], want[i])
		}
	}
}
