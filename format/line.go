package format

import (
	"fmt"
	"io"
	"strings"

	"github.com/dhamidi/winform/designer"
)

type LineEncoder struct {
	w   io.Writer
	doc *designer.Document
}

func NewLineEncoder(w io.Writer) *LineEncoder {
	return &LineEncoder{w: w}
}

func (e *LineEncoder) Encode(doc *designer.Document) error {
	e.doc = doc
	text, err := e.MarshalText()
	if err != nil {
		return err
	}
	_, err = e.w.Write(text)
	return err
}

func (e *LineEncoder) MarshalText() ([]byte, error) {
	var sb strings.Builder
	doc := e.doc

	fmt.Fprintf(&sb, "form\t%s\t%s\t%s\n", doc.FormName, orDash(doc.Namespace), orDash(doc.BaseType))

	for _, p := range doc.FormProperties {
		fmt.Fprintf(&sb, "prop\t.\t%s\t%s\n", p.Name, p.Value)
	}
	for _, b := range doc.FormEvents {
		fmt.Fprintf(&sb, "event\t.\t%s\t%s\n", b.Event, b.Handler)
	}

	for _, id := range doc.Nodes() {
		node := doc.Node(id)
		fmt.Fprintf(&sb, "node\t%s\t%s\t%s\n", node.Name, node.TypeName, e.parentName(id))
		for _, p := range node.Properties {
			fmt.Fprintf(&sb, "prop\t%s\t%s\t%s\n", node.Name, p.Name, p.Value)
		}
		for _, b := range node.Events {
			fmt.Fprintf(&sb, "event\t%s\t%s\t%s\n", node.Name, b.Event, b.Handler)
		}
	}

	return []byte(sb.String()), nil
}

func (e *LineEncoder) parentName(id designer.NodeID) string {
	if parentID, ok := e.doc.ParentOf(id); ok {
		return e.doc.Node(parentID).Name
	}
	for _, rootID := range e.doc.Roots() {
		if rootID == id {
			return "."
		}
	}
	return "-"
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
