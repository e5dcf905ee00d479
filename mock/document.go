package mock

import (
	"context"

	"github.com/asheesh-yadav/leximorph"
)

var _ leximorph.DocumentService = (*DocumentService)(nil)

// DocumentService is a mock implementation of leximorph.DocumentService.
type DocumentService struct {
	CreateDocumentFn   func(ctx context.Context, doc *leximorph.Document) error
	FindDocumentByIDFn func(ctx context.Context, id string) (*leximorph.Document, error)
	FindDocumentsFn    func(ctx context.Context, filter leximorph.DocumentFilter) ([]*leximorph.Document, error)
	DeleteDocumentFn   func(ctx context.Context, id string) error
}

func (s *DocumentService) CreateDocument(ctx context.Context, doc *leximorph.Document) error {
	return s.CreateDocumentFn(ctx, doc)
}

func (s *DocumentService) FindDocumentByID(ctx context.Context, id string) (*leximorph.Document, error) {
	return s.FindDocumentByIDFn(ctx, id)
}

func (s *DocumentService) FindDocuments(ctx context.Context, filter leximorph.DocumentFilter) ([]*leximorph.Document, error) {
	return s.FindDocumentsFn(ctx, filter)
}

func (s *DocumentService) DeleteDocument(ctx context.Context, id string) error {
	return s.DeleteDocumentFn(ctx, id)
}
