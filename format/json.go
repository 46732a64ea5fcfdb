package format

import (
	"encoding/json"
	"io"

	"github.com/dhamidi/winform/designer"
)

type JSONEncoder struct {
	w   io.Writer
	doc *designer.Document
}

func NewJSONEncoder(w io.Writer) *JSONEncoder {
	return &JSONEncoder{w: w}
}

func (e *JSONEncoder) Encode(doc *designer.Document) error {
	e.doc = doc
	text, err := e.MarshalText()
	if err != nil {
		return err
	}
	_, err = e.w.Write(text)
	return err
}

func (e *JSONEncoder) MarshalText() ([]byte, error) {
	data := e.buildFormData()
	return json.MarshalIndent(data, "", "  ")
}

type jsonForm struct {
	Name       string         `json:"name"`
	Namespace  string         `json:"namespace,omitempty"`
	BaseType   string         `json:"baseType,omitempty"`
	Properties []jsonProperty `json:"properties,omitempty"`
	Events     []jsonEvent    `json:"events,omitempty"`
	Controls   []jsonNode     `json:"controls,omitempty"`
	Orphans    []jsonNode     `json:"orphans,omitempty"`
}

type jsonNode struct {
	Name       string         `json:"name"`
	Type       string         `json:"type"`
	Properties []jsonProperty `json:"properties,omitempty"`
	Events     []jsonEvent    `json:"events,omitempty"`
	Controls   []jsonNode     `json:"controls,omitempty"`
}

type jsonProperty struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

type jsonEvent struct {
	Event   string `json:"event"`
	Handler string `json:"handler"`
}

func (e *JSONEncoder) buildFormData() jsonForm {
	doc := e.doc
	data := jsonForm{
		Name:       doc.FormName,
		Namespace:  doc.Namespace,
		BaseType:   doc.BaseType,
		Properties: buildProperties(doc.FormProperties),
		Events:     buildEvents(doc.FormEvents),
	}
	for _, id := range doc.Roots() {
		data.Controls = append(data.Controls, e.buildNode(id))
	}
	for _, id := range orphanIDs(doc) {
		data.Orphans = append(data.Orphans, e.buildNode(id))
	}
	return data
}

func (e *JSONEncoder) buildNode(id designer.NodeID) jsonNode {
	node := e.doc.Node(id)
	data := jsonNode{
		Name:       node.Name,
		Type:       node.TypeName,
		Properties: buildProperties(node.Properties),
		Events:     buildEvents(node.Events),
	}
	for _, childID := range node.Children {
		if e.doc.Node(childID) != nil {
			data.Controls = append(data.Controls, e.buildNode(childID))
		}
	}
	return data
}

func buildProperties(props []designer.Property) []jsonProperty {
	result := make([]jsonProperty, len(props))
	for i, p := range props {
		result[i] = jsonProperty{Name: p.Name, Value: p.Value}
	}
	return result
}

func buildEvents(events []designer.EventBinding) []jsonEvent {
	result := make([]jsonEvent, len(events))
	for i, b := range events {
		result[i] = jsonEvent{Event: b.Event, Handler: b.Handler}
	}
	return result
}

// orphanIDs lists nodes reachable from neither the root list nor any
// child list, in declaration order. Non-visual components end up here.
func orphanIDs(doc *designer.Document) []designer.NodeID {
	contained := make(map[designer.NodeID]bool)
	for _, id := range doc.Roots() {
		contained[id] = true
	}
	for _, id := range doc.Nodes() {
		for _, childID := range doc.Node(id).Children {
			contained[childID] = true
		}
	}
	var orphans []designer.NodeID
	for _, id := range doc.Nodes() {
		if !contained[id] {
			orphans = append(orphans, id)
		}
	}
	return orphans
}
