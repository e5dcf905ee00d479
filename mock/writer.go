package mock

import (
	"context"

	"github.com/asheesh-yadav/leximorph"
)

var _ leximorph.DocumentWriter = (*DocumentWriter)(nil)

// DocumentWriter is a mock implementation of leximorph.DocumentWriter.
type DocumentWriter struct {
	CreateDocumentFn func(ctx context.Context, doc *leximorph.Document) error
}

func (w *DocumentWriter) CreateDocument(ctx context.Context, doc *leximorph.Document) error {
	return w.CreateDocumentFn(ctx, doc)
}
