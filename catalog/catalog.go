// Package catalog is a static table of the common control types found
// in designer files: their full type names, whether they can contain
// other controls, and the event most commonly wired for them.
package catalog

import (
	"sort"
	"strings"
)

type Kind int

const (
	KindControl Kind = iota
	KindContainer
	KindComponent // non-visual, never parented
)

func (k Kind) String() string {
	switch k {
	case KindContainer:
		return "container"
	case KindComponent:
		return "component"
	}
	return "control"
}

type ControlType struct {
	Name         string // short name, e.g. Button
	FullName     string // e.g. System.Windows.Forms.Button
	Kind         Kind
	DefaultEvent string
	// Properties the designer typically emits for this type.
	CommonProperties []string
}

var controlTypes = []ControlType{
	{"Button", "System.Windows.Forms.Button", KindControl, "Click", []string{"Location", "Size", "Text", "TabIndex"}},
	{"CheckBox", "System.Windows.Forms.CheckBox", KindControl, "CheckedChanged", []string{"Location", "Size", "Text", "Checked"}},
	{"ComboBox", "System.Windows.Forms.ComboBox", KindControl, "SelectedIndexChanged", []string{"Location", "Size", "Items"}},
	{"DataGridView", "System.Windows.Forms.DataGridView", KindControl, "CellClick", []string{"Location", "Size", "ColumnHeadersHeightSizeMode"}},
	{"FlowLayoutPanel", "System.Windows.Forms.FlowLayoutPanel", KindContainer, "", []string{"Location", "Size", "FlowDirection"}},
	{"GroupBox", "System.Windows.Forms.GroupBox", KindContainer, "", []string{"Location", "Size", "Text"}},
	{"Label", "System.Windows.Forms.Label", KindControl, "", []string{"Location", "Size", "Text", "AutoSize"}},
	{"ListBox", "System.Windows.Forms.ListBox", KindControl, "SelectedIndexChanged", []string{"Location", "Size", "Items"}},
	{"ListView", "System.Windows.Forms.ListView", KindControl, "SelectedIndexChanged", []string{"Location", "Size", "View"}},
	{"MenuStrip", "System.Windows.Forms.MenuStrip", KindControl, "ItemClicked", []string{"Location", "Size", "Items"}},
	{"Panel", "System.Windows.Forms.Panel", KindContainer, "", []string{"Location", "Size", "BorderStyle"}},
	{"PictureBox", "System.Windows.Forms.PictureBox", KindControl, "Click", []string{"Location", "Size", "Image", "SizeMode"}},
	{"ProgressBar", "System.Windows.Forms.ProgressBar", KindControl, "", []string{"Location", "Size", "Value"}},
	{"RadioButton", "System.Windows.Forms.RadioButton", KindControl, "CheckedChanged", []string{"Location", "Size", "Text", "Checked"}},
	{"RichTextBox", "System.Windows.Forms.RichTextBox", KindControl, "TextChanged", []string{"Location", "Size", "Text"}},
	{"SplitContainer", "System.Windows.Forms.SplitContainer", KindContainer, "", []string{"Location", "Size", "Orientation", "SplitterDistance"}},
	{"StatusStrip", "System.Windows.Forms.StatusStrip", KindControl, "", []string{"Location", "Size", "Items"}},
	{"TabControl", "System.Windows.Forms.TabControl", KindContainer, "SelectedIndexChanged", []string{"Location", "Size", "SelectedIndex"}},
	{"TabPage", "System.Windows.Forms.TabPage", KindContainer, "", []string{"Location", "Size", "Text"}},
	{"TableLayoutPanel", "System.Windows.Forms.TableLayoutPanel", KindContainer, "", []string{"Location", "Size", "ColumnCount", "RowCount"}},
	{"TextBox", "System.Windows.Forms.TextBox", KindControl, "TextChanged", []string{"Location", "Size", "Text", "Multiline"}},
	{"Timer", "System.Windows.Forms.Timer", KindComponent, "Tick", []string{"Interval", "Enabled"}},
	{"ToolStrip", "System.Windows.Forms.ToolStrip", KindControl, "ItemClicked", []string{"Location", "Size", "Items"}},
	{"ToolTip", "System.Windows.Forms.ToolTip", KindComponent, "", nil},
	{"TrackBar", "System.Windows.Forms.TrackBar", KindControl, "Scroll", []string{"Location", "Size", "Minimum", "Maximum"}},
	{"TreeView", "System.Windows.Forms.TreeView", KindControl, "AfterSelect", []string{"Location", "Size", "Nodes"}},
}

var byShortName = func() map[string]ControlType {
	m := make(map[string]ControlType, len(controlTypes))
	for _, ct := range controlTypes {
		m[strings.ToLower(ct.Name)] = ct
	}
	return m
}()

// Lookup resolves a type name as written in a designer file, full or
// short, case-insensitively.
func Lookup(typeName string) (ControlType, bool) {
	short := typeName
	if idx := strings.LastIndexByte(typeName, '.'); idx >= 0 {
		short = typeName[idx+1:]
	}
	ct, ok := byShortName[strings.ToLower(short)]
	if ok && ct.FullName != typeName && ct.Name != typeName {
		// A short-name match only counts when the qualifier agrees.
		if strings.ContainsRune(typeName, '.') && !strings.EqualFold(typeName, ct.FullName) {
			return ControlType{}, false
		}
	}
	return ct, ok
}

// IsContainer reports whether a type name is known to hold children.
func IsContainer(typeName string) bool {
	ct, ok := Lookup(typeName)
	return ok && ct.Kind == KindContainer
}

// All returns every catalog entry sorted by short name.
func All() []ControlType {
	result := make([]ControlType, len(controlTypes))
	copy(result, controlTypes)
	sort.Slice(result, func(i, j int) bool {
		return result[i].Name < result[j].Name
	})
	return result
}
