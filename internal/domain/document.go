package domain

import (
	"encoding/json"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Shape is the kind of JSON value found at a document root.
type Shape string

const (
	ShapeList   Shape = "list"
	ShapeObject Shape = "object"
	ShapeScalar Shape = "scalar"
)

// Entries keeps object members in the order they were read.
type Entries = orderedmap.OrderedMap[string, json.RawMessage]

// Document is a parsed JSON document whose entries are still raw bytes.
// Exactly one of List, Object or Raw is meaningful, selected by Shape.
type Document struct {
	Shape  Shape
	List   []json.RawMessage
	Object *Entries
	Raw    json.RawMessage
}

func NewListDocument(items []json.RawMessage) Document {
	if items == nil {
		items = []json.RawMessage{}
	}
	return Document{Shape: ShapeList, List: items}
}

func NewObjectDocument() Document {
	return Document{Shape: ShapeObject, Object: orderedmap.New[string, json.RawMessage]()}
}

func NewScalarDocument(raw json.RawMessage) Document {
	return Document{Shape: ShapeScalar, Raw: raw}
}

// Len returns the number of top-level entries. Scalars have none.
func (d Document) Len() int {
	switch d.Shape {
	case ShapeList:
		return len(d.List)
	case ShapeObject:
		if d.Object == nil {
			return 0
		}
		return d.Object.Len()
	default:
		return 0
	}
}

// Keys returns the object keys in insertion order, or nil for other shapes.
func (d Document) Keys() []string {
	if d.Shape != ShapeObject || d.Object == nil {
		return nil
	}
	keys := make([]string, 0, d.Object.Len())
	for p := d.Object.Oldest(); p != nil; p = p.Next() {
		keys = append(keys, p.Key)
	}
	return keys
}

// MarshalJSON writes the document back out. Object members keep their order;
// entry bytes are emitted as-is apart from whitespace compaction.
func (d Document) MarshalJSON() ([]byte, error) {
	switch d.Shape {
	case ShapeList:
		if d.List == nil {
			return []byte("[]"), nil
		}
		return json.Marshal(d.List)
	case ShapeObject:
		if d.Object == nil {
			return []byte("{}"), nil
		}
		return d.Object.MarshalJSON()
	default:
		if len(d.Raw) == 0 {
			return []byte("null"), nil
		}
		return d.Raw, nil
	}
}
