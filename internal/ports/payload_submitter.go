package ports

import (
	"context"

	"github.com/anujrohit1/pubfilter/internal/domain"
)

// PayloadSubmitter sends a document to a remote service exactly once.
type PayloadSubmitter interface {
	Submit(ctx context.Context, url string, doc domain.Document) (domain.Response, error)
}
