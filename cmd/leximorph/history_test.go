package main_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/asheesh-yadav/leximorph"
	main "github.com/asheesh-yadav/leximorph/cmd/leximorph"
	"github.com/asheesh-yadav/leximorph/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHistoryListCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("lists documents with ID, language, title and URL", func(t *testing.T) {
		t.Parallel()

		deps, stdout, _ := newDeps()
		deps.Documents = &mock.DocumentService{
			FindDocumentsFn: func(_ context.Context, filter leximorph.DocumentFilter) ([]*leximorph.Document, error) {
				assert.Equal(t, 20, filter.Limit)
				assert.Nil(t, filter.SourceURL)
				assert.Nil(t, filter.Language)
				return []*leximorph.Document{
					{ID: "doc-2", Title: "Hafen öffnet wieder", Language: "de", SourceURL: "https://news.example.com/harbor", CreatedAt: time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)},
					{ID: "doc-1", Title: "Harbor Reopens", SourceURL: "https://news.example.com/harbor", CreatedAt: time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)},
				}, nil
			},
		}

		err := (&main.HistoryListCmd{Limit: 20}).Run(deps)

		require.NoError(t, err)
		output := stdout.String()
		assert.Contains(t, output, "doc-2")
		assert.Contains(t, output, "Hafen öffnet wieder")
		assert.Contains(t, output, "de")
		assert.Contains(t, output, "doc-1")
		assert.Contains(t, output, "https://news.example.com/harbor")
		assert.Less(t, strings.Index(output, "doc-2"), strings.Index(output, "doc-1"))
	})

	t.Run("passes URL, language and paging filters", func(t *testing.T) {
		t.Parallel()

		deps, _, _ := newDeps()
		deps.Documents = &mock.DocumentService{
			FindDocumentsFn: func(_ context.Context, filter leximorph.DocumentFilter) ([]*leximorph.Document, error) {
				require.NotNil(t, filter.SourceURL)
				require.NotNil(t, filter.Language)
				assert.Equal(t, "https://news.example.com/harbor", *filter.SourceURL)
				assert.Equal(t, "de", *filter.Language)
				assert.Equal(t, 5, filter.Limit)
				assert.Equal(t, 10, filter.Offset)
				return []*leximorph.Document{}, nil
			},
		}

		cmd := &main.HistoryListCmd{URL: "https://news.example.com/harbor", Language: "de", Limit: 5, Offset: 10}
		require.NoError(t, cmd.Run(deps))
	})

	t.Run("filters originals by empty language", func(t *testing.T) {
		t.Parallel()

		deps, _, _ := newDeps()
		deps.Documents = &mock.DocumentService{
			FindDocumentsFn: func(_ context.Context, filter leximorph.DocumentFilter) ([]*leximorph.Document, error) {
				require.NotNil(t, filter.Language)
				assert.Empty(t, *filter.Language)
				return []*leximorph.Document{}, nil
			},
		}

		require.NoError(t, (&main.HistoryListCmd{Originals: true}).Run(deps))
	})

	t.Run("rejects originals together with a language", func(t *testing.T) {
		t.Parallel()

		deps, _, _ := newDeps()

		err := (&main.HistoryListCmd{Originals: true, Language: "de"}).Run(deps)

		assert.Equal(t, leximorph.EINVALID, leximorph.ErrorCode(err))
	})

	t.Run("shows helpful message when history is empty", func(t *testing.T) {
		t.Parallel()

		deps, stdout, _ := newDeps()
		deps.Documents = &mock.DocumentService{
			FindDocumentsFn: func(context.Context, leximorph.DocumentFilter) ([]*leximorph.Document, error) {
				return []*leximorph.Document{}, nil
			},
		}

		require.NoError(t, (&main.HistoryListCmd{}).Run(deps))
		assert.Contains(t, stdout.String(), "No documents found")
	})

	t.Run("returns error when FindDocuments fails", func(t *testing.T) {
		t.Parallel()

		dbErr := errors.New("database connection failed")
		deps, _, stderr := newDeps()
		deps.Documents = &mock.DocumentService{
			FindDocumentsFn: func(context.Context, leximorph.DocumentFilter) ([]*leximorph.Document, error) {
				return nil, dbErr
			},
		}

		err := (&main.HistoryListCmd{}).Run(deps)

		assert.Equal(t, dbErr, err)
		assert.Contains(t, stderr.String(), "error:")
	})
}

func TestHistoryShowCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("prints the stored article", func(t *testing.T) {
		t.Parallel()

		deps, stdout, _ := newDeps()
		deps.Documents = &mock.DocumentService{
			FindDocumentByIDFn: func(_ context.Context, id string) (*leximorph.Document, error) {
				assert.Equal(t, "doc-1", id)
				return &leximorph.Document{ID: id, SourceURL: "https://news.example.com/harbor", Article: testArticle("Harbor Reopens")}, nil
			},
		}

		err := (&main.HistoryShowCmd{ID: "doc-1", Format: "json"}).Run(deps)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), `"title":"Harbor Reopens"`)
	})

	t.Run("explains missing documents", func(t *testing.T) {
		t.Parallel()

		deps, _, stderr := newDeps()
		deps.Documents = &mock.DocumentService{
			FindDocumentByIDFn: func(context.Context, string) (*leximorph.Document, error) {
				return nil, leximorph.Errorf(leximorph.ENOTFOUND, "document not found")
			},
		}

		err := (&main.HistoryShowCmd{ID: "nope", Format: "json"}).Run(deps)

		assert.Equal(t, leximorph.ENOTFOUND, leximorph.ErrorCode(err))
		assert.Contains(t, stderr.String(), "history list")
	})
}

func TestHistoryDeleteCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("deletes the document when --force is set", func(t *testing.T) {
		t.Parallel()

		var deletedID string
		deps, stdout, _ := newDeps()
		deps.Documents = &mock.DocumentService{
			DeleteDocumentFn: func(_ context.Context, id string) error {
				deletedID = id
				return nil
			},
		}

		err := (&main.HistoryDeleteCmd{ID: "doc-1", Force: true}).Run(deps)

		require.NoError(t, err)
		assert.Equal(t, "doc-1", deletedID)
		assert.Contains(t, stdout.String(), "Deleted")
	})

	t.Run("requires --force flag", func(t *testing.T) {
		t.Parallel()

		deps, _, stderr := newDeps()

		err := (&main.HistoryDeleteCmd{ID: "doc-1"}).Run(deps)

		require.Error(t, err)
		assert.Contains(t, stderr.String(), "--force")
	})

	t.Run("explains missing documents", func(t *testing.T) {
		t.Parallel()

		deps, _, stderr := newDeps()
		deps.Documents = &mock.DocumentService{
			DeleteDocumentFn: func(context.Context, string) error {
				return leximorph.Errorf(leximorph.ENOTFOUND, "document not found")
			},
		}

		err := (&main.HistoryDeleteCmd{ID: "nope", Force: true}).Run(deps)

		assert.Equal(t, leximorph.ENOTFOUND, leximorph.ErrorCode(err))
		assert.Contains(t, stderr.String(), `"nope" not found`)
	})
}
