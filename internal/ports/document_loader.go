package ports

import "github.com/anujrohit1/pubfilter/internal/domain"

// DocumentLoader loads a JSON document from a source (e.g., filesystem).
type DocumentLoader interface {
	LoadDocument(path string) (domain.Document, error)
}
