package filter

import (
	"encoding/json"

	"github.com/anujrohit1/pubfilter/internal/app/jsonvalue"
	"github.com/anujrohit1/pubfilter/internal/domain"
)

// PrivateField is the member that marks an entry as private.
const PrivateField = "private"

// Public keeps the entries that are objects with "private" set to the literal
// false. The result has the same shape as doc and preserves entry order.
// Non-object entries are dropped. A scalar root is KindInvalidRootShape.
func Public(doc domain.Document) (domain.Document, error) {
	switch doc.Shape {
	case domain.ShapeList:
		kept := make([]json.RawMessage, 0, len(doc.List))
		for _, entry := range doc.List {
			if isPublic(entry) {
				kept = append(kept, entry)
			}
		}
		return domain.NewListDocument(kept), nil

	case domain.ShapeObject:
		out := domain.NewObjectDocument()
		if doc.Object == nil {
			return out, nil
		}
		for p := doc.Object.Oldest(); p != nil; p = p.Next() {
			if isPublic(p.Value) {
				out.Object.Set(p.Key, p.Value)
			}
		}
		return out, nil

	default:
		return domain.Document{}, &domain.OpError{
			Op:   "filter.public",
			Kind: domain.KindInvalidRootShape,
			Err:  domain.ErrInvalidRoot,
		}
	}
}

func isPublic(entry []byte) bool {
	return jsonvalue.IsBool(entry, PrivateField, false)
}
