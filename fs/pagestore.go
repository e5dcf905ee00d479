package fs

import (
	"context"
	"os"
	"path/filepath"

	"github.com/asheesh-yadav/leximorph"
)

// Ensure FileStore implements leximorph.DocumentWriter at compile time.
var _ leximorph.DocumentWriter = (*FileStore)(nil)

// FileStore writes a batch of documents with all-or-nothing semantics.
// Documents are written to a temporary directory, then moved into place on
// Commit.
type FileStore struct {
	baseDir string
	name    string
	writer  *Writer
}

// NewFileStore creates a new FileStore.
// baseDir is the parent directory, name is the output directory name.
// Files are written to baseDir/name.tmp and moved to baseDir/name on Commit.
func NewFileStore(baseDir, name string, exporter leximorph.Exporter, format leximorph.Format, opts ...WriterOption) *FileStore {
	s := &FileStore{
		baseDir: baseDir,
		name:    name,
	}
	s.writer = NewWriter(s.tempDir(), exporter, format, opts...)
	return s
}

func (s *FileStore) tempDir() string {
	return filepath.Join(s.baseDir, s.name+".tmp")
}

// Dir returns the directory documents end up in after Commit.
func (s *FileStore) Dir() string {
	return filepath.Join(s.baseDir, s.name)
}

// CreateDocument exports a document into the temporary directory.
func (s *FileStore) CreateDocument(ctx context.Context, doc *leximorph.Document) error {
	return s.writer.CreateDocument(ctx, doc)
}

// Commit replaces the output directory with the temporary one.
func (s *FileStore) Commit() error {
	if err := os.MkdirAll(s.tempDir(), 0755); err != nil {
		return err
	}
	if err := os.RemoveAll(s.Dir()); err != nil {
		return err
	}
	return os.Rename(s.tempDir(), s.Dir())
}

// Abort discards everything written since the store was created.
func (s *FileStore) Abort() error {
	return os.RemoveAll(s.tempDir())
}
