package format

import (
	"fmt"
	"io"
	"strings"

	"github.com/dhamidi/winform/designer"
)

// TreeEncoder prints the containment hierarchy with two-space
// indentation, one control per line.
type TreeEncoder struct {
	w          io.Writer
	doc        *designer.Document
	Properties bool // include property lines under each control
}

func NewTreeEncoder(w io.Writer) *TreeEncoder {
	return &TreeEncoder{w: w}
}

func (e *TreeEncoder) Encode(doc *designer.Document) error {
	e.doc = doc
	text, err := e.MarshalText()
	if err != nil {
		return err
	}
	_, err = e.w.Write(text)
	return err
}

func (e *TreeEncoder) MarshalText() ([]byte, error) {
	var sb strings.Builder
	doc := e.doc

	fmt.Fprintf(&sb, "%s (%s)\n", doc.FormName, baseTypeOrForm(doc))
	if e.Properties {
		for _, p := range doc.FormProperties {
			fmt.Fprintf(&sb, "  .%s = %s\n", p.Name, p.Value)
		}
	}
	for _, id := range doc.Roots() {
		e.writeNode(&sb, id, 1)
	}
	orphans := orphanIDs(doc)
	if len(orphans) > 0 {
		sb.WriteString("(unparented)\n")
		for _, id := range orphans {
			e.writeNode(&sb, id, 1)
		}
	}
	return []byte(sb.String()), nil
}

func (e *TreeEncoder) writeNode(sb *strings.Builder, id designer.NodeID, depth int) {
	node := e.doc.Node(id)
	if node == nil {
		return
	}
	indent := strings.Repeat("  ", depth)
	fmt.Fprintf(sb, "%s%s (%s)\n", indent, node.Name, node.TypeName)
	if e.Properties {
		for _, p := range node.Properties {
			fmt.Fprintf(sb, "%s  .%s = %s\n", indent, p.Name, p.Value)
		}
	}
	for _, childID := range node.Children {
		e.writeNode(sb, childID, depth+1)
	}
}

func baseTypeOrForm(doc *designer.Document) string {
	if doc.BaseType != "" {
		return doc.BaseType
	}
	return "Form"
}
