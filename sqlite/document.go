package sqlite

import (
	"context"
	"database/sql"
	"encoding/binary"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/asheesh-yadav/leximorph"
	"github.com/cespare/xxhash/v2"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ leximorph.DocumentService = (*DocumentService)(nil)

var documentColumns = []string{"id", "source_url", "language", "title", "article", "content_hash", "created_at"}

// DocumentService implements leximorph.DocumentService using SQLite.
type DocumentService struct {
	db  *DB
	now func() time.Time
}

// NewDocumentService creates a new DocumentService.
func NewDocumentService(db *DB) *DocumentService {
	return &DocumentService{db: db, now: time.Now}
}

// HashArticle computes the xxHash of the article's plain text rendering and
// returns it as hex. Identical articles hash identically regardless of where
// they were fetched from.
func HashArticle(a *leximorph.Article) string {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, xxhash.Sum64String(leximorph.FormatText(a)))
	return hex.EncodeToString(b)
}

// CreateDocument creates a new document.
func (s *DocumentService) CreateDocument(ctx context.Context, doc *leximorph.Document) error {
	if err := doc.Validate(); err != nil {
		return err
	}

	body, err := json.Marshal(doc.Article)
	if err != nil {
		return fmt.Errorf("failed to encode article: %w", err)
	}

	doc.ID = uuid.New().String()
	doc.Title = doc.Article.Title
	doc.ContentHash = HashArticle(doc.Article)
	doc.CreatedAt = s.now().UTC()

	query, args, err := sq.Insert("documents").
		Columns(documentColumns...).
		Values(doc.ID, doc.SourceURL, doc.Language, doc.Title, string(body), doc.ContentHash, formatTime(doc.CreatedAt)).
		ToSql()
	if err != nil {
		return err
	}

	_, err = s.db.ExecContext(ctx, query, args...)
	return err
}

// FindDocumentByID retrieves a document by ID.
func (s *DocumentService) FindDocumentByID(ctx context.Context, id string) (*leximorph.Document, error) {
	docs, err := s.FindDocuments(ctx, leximorph.DocumentFilter{ID: &id, Limit: 1})
	if err != nil {
		return nil, err
	}
	if len(docs) == 0 {
		return nil, leximorph.Errorf(leximorph.ENOTFOUND, "document not found")
	}
	return docs[0], nil
}

// FindDocuments retrieves documents matching the filter, newest first.
func (s *DocumentService) FindDocuments(ctx context.Context, filter leximorph.DocumentFilter) ([]*leximorph.Document, error) {
	b := sq.Select(documentColumns...).From("documents")

	if filter.ID != nil {
		b = b.Where(sq.Eq{"id": *filter.ID})
	}
	if filter.SourceURL != nil {
		b = b.Where(sq.Eq{"source_url": *filter.SourceURL})
	}
	if filter.Language != nil {
		b = b.Where(sq.Eq{"language": *filter.Language})
	}

	b = b.OrderBy("created_at DESC", "rowid DESC")

	// SQLite requires LIMIT whenever OFFSET is present; -1 means no limit.
	switch {
	case filter.Limit > 0:
		b = b.Suffix("LIMIT ?", filter.Limit)
	case filter.Offset > 0:
		b = b.Suffix("LIMIT -1")
	}
	if filter.Offset > 0 {
		b = b.Suffix("OFFSET ?", filter.Offset)
	}

	query, args, err := b.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	docs := []*leximorph.Document{}
	for rows.Next() {
		doc, err := scanDocument(rows)
		if err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}

	return docs, rows.Err()
}

// DeleteDocument permanently removes a document.
func (s *DocumentService) DeleteDocument(ctx context.Context, id string) error {
	query, args, err := sq.Delete("documents").Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return err
	}

	result, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return leximorph.Errorf(leximorph.ENOTFOUND, "document not found")
	}

	return nil
}

func scanDocument(rows *sql.Rows) (*leximorph.Document, error) {
	var doc leximorph.Document
	var body, createdAt string

	if err := rows.Scan(&doc.ID, &doc.SourceURL, &doc.Language, &doc.Title, &body, &doc.ContentHash, &createdAt); err != nil {
		return nil, err
	}

	doc.Article = &leximorph.Article{}
	if err := json.Unmarshal([]byte(body), doc.Article); err != nil {
		return nil, fmt.Errorf("failed to decode article %s: %w", doc.ID, err)
	}

	var err error
	if doc.CreatedAt, err = parseRFC3339(createdAt, "created_at"); err != nil {
		return nil, err
	}

	return &doc, nil
}
