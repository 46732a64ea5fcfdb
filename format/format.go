// Package format renders parsed form documents for humans and machines:
// JSON for tooling, tab-separated lines for grep pipelines, and an
// indented tree for quick inspection.
package format

import (
	"encoding"

	"github.com/dhamidi/winform/designer"
)

type Encoder interface {
	encoding.TextMarshaler
	Encode(doc *designer.Document) error
}
