package designer

import "testing"

func TestParsePair(t *testing.T) {
	tests := []struct {
		input string
		x, y  int
	}{
		{"new System.Drawing.Size(75, 23)", 75, 23},
		{"New System.Drawing.Point(8, 8)", 8, 8},
		{"new System.Drawing.Size(292,273)", 292, 273},
		{"new System.Drawing.Point( 0 , 0 )", 0, 0},
		{"new System.Drawing.Size(640, 480, 32)", 640, 480},
	}
	for _, test := range tests {
		t.Run(test.input, func(t *testing.T) {
			x, y, err := ParsePair(test.input)
			if err != nil {
				t.Fatalf("ParsePair(%q): %v", test.input, err)
			}
			if x != test.x || y != test.y {
				t.Errorf("ParsePair(%q) = %d, %d; want %d, %d", test.input, x, y, test.x, test.y)
			}
		})
	}
}

func TestParsePairErrors(t *testing.T) {
	tests := []string{
		"\"Save\"",
		"true",
		"new System.Drawing.Size()",
		"new System.Drawing.Size(75)",
		"new System.Drawing.Font(\"Segoe UI\", 9)",
	}
	for _, input := range tests {
		t.Run(input, func(t *testing.T) {
			if _, _, err := ParsePair(input); err == nil {
				t.Errorf("ParsePair(%q) expected an error", input)
			}
		})
	}
}
