package leximorph

import (
	"context"
	"time"
)

// Document is a stored extraction, optionally translated.
type Document struct {
	ID          string    `json:"id"`
	SourceURL   string    `json:"sourceUrl"`
	Language    string    `json:"language"`
	Title       string    `json:"title"`
	Article     *Article  `json:"article"`
	ContentHash string    `json:"contentHash"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Validate returns an error if the document contains invalid fields.
func (d *Document) Validate() error {
	if d.SourceURL == "" {
		return Errorf(EINVALID, "document source URL required")
	}
	if d.Article == nil {
		return Errorf(EINVALID, "document article required")
	}
	return d.Article.Validate()
}

// DocumentService represents a service for managing stored documents.
type DocumentService interface {
	// CreateDocument creates a new document.
	// ID, Title, ContentHash and CreatedAt are assigned by the service.
	CreateDocument(ctx context.Context, doc *Document) error

	// FindDocumentByID retrieves a document by ID.
	// Returns ENOTFOUND if document does not exist.
	FindDocumentByID(ctx context.Context, id string) (*Document, error)

	// FindDocuments retrieves documents matching the filter, newest first.
	FindDocuments(ctx context.Context, filter DocumentFilter) ([]*Document, error)

	// DeleteDocument permanently removes a document.
	// Returns ENOTFOUND if document does not exist.
	DeleteDocument(ctx context.Context, id string) error
}

// DocumentWriter is the write side of DocumentService. The batch pipeline
// depends only on this.
type DocumentWriter interface {
	CreateDocument(ctx context.Context, doc *Document) error
}

// DocumentFilter represents a filter for FindDocuments.
type DocumentFilter struct {
	ID        *string `json:"id"`
	SourceURL *string `json:"sourceUrl"`
	Language  *string `json:"language"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}
