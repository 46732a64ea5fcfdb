package catalog

import "testing"

func TestLookup(t *testing.T) {
	tests := []struct {
		input string
		name  string
		ok    bool
	}{
		{"System.Windows.Forms.Button", "Button", true},
		{"Button", "Button", true},
		{"button", "Button", true},
		{"system.windows.forms.panel", "Panel", true},
		{"My.Custom.Button", "", false},
		{"System.Windows.Forms.Widget", "", false},
		{"", "", false},
	}
	for _, test := range tests {
		t.Run(test.input, func(t *testing.T) {
			ct, ok := Lookup(test.input)
			if ok != test.ok {
				t.Fatalf("Lookup(%q) ok = %v, want %v", test.input, ok, test.ok)
			}
			if ok && ct.Name != test.name {
				t.Errorf("Lookup(%q) = %q, want %q", test.input, ct.Name, test.name)
			}
		})
	}
}

func TestIsContainer(t *testing.T) {
	if !IsContainer("System.Windows.Forms.Panel") {
		t.Error("Panel should be a container")
	}
	if IsContainer("System.Windows.Forms.Button") {
		t.Error("Button should not be a container")
	}
	if IsContainer("Unknown.Type") {
		t.Error("unknown types are not containers")
	}
}

func TestAllIsSorted(t *testing.T) {
	all := All()
	if len(all) == 0 {
		t.Fatal("catalog is empty")
	}
	for i := 1; i < len(all); i++ {
		if all[i-1].Name >= all[i].Name {
			t.Errorf("entries out of order: %q before %q", all[i-1].Name, all[i].Name)
		}
	}
}
