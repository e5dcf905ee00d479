// Package fs writes exported documents to the local filesystem.
package fs

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/asheesh-yadav/leximorph"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// MaxSlugLength is the maximum number of runes in a file name stem.
const MaxSlugLength = 80

// Slug turns a title into a file name stem: accents are stripped, letters
// are lower-cased and every run of other characters becomes one hyphen.
// Returns "article" when nothing usable remains.
func Slug(title string) string {
	stripped, _, err := transform.String(transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC), title)
	if err != nil {
		stripped = title
	}

	var b strings.Builder
	n := 0
	pendingHyphen := false
	for _, r := range stripped {
		if n >= MaxSlugLength {
			break
		}
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			pendingHyphen = n > 0
			continue
		}
		if pendingHyphen {
			b.WriteByte('-')
			n++
			pendingHyphen = false
		}
		b.WriteRune(unicode.ToLower(r))
		n++
	}

	slug := strings.TrimRight(b.String(), "-")
	if slug == "" {
		return "article"
	}
	return slug
}

// FileName returns the file name for a document: the title slug, the
// language code for translations and the format as extension.
// Example: "Harbor Reopens" in German as pdf → harbor-reopens.de.pdf
func FileName(doc *leximorph.Document, format leximorph.Format) string {
	title := doc.Title
	if title == "" && doc.Article != nil {
		title = doc.Article.Title
	}
	name := Slug(title)
	if doc.Language != "" {
		name += "." + Slug(doc.Language)
	}
	return name + "." + string(format)
}

// HostDir returns the directory for documents from a source URL: the host
// name, or "" for sources without one such as local files.
func HostDir(sourceURL string) (string, error) {
	u, err := url.Parse(sourceURL)
	if err != nil || u.Host == "" {
		return "", nil
	}
	host := strings.ToLower(u.Hostname())
	if host == "." || host == ".." || strings.ContainsAny(host, `/\`) {
		return "", fmt.Errorf("path traversal in host %q", host)
	}
	return host, nil
}

// Ensure Writer implements leximorph.DocumentWriter at compile time.
var _ leximorph.DocumentWriter = (*Writer)(nil)

// Writer exports documents as files under a directory, grouped by source
// host. Existing files are never overwritten; a numeric suffix is added
// instead.
type Writer struct {
	baseDir  string
	exporter leximorph.Exporter
	format   leximorph.Format
	keywords []string
}

// WriterOption configures a Writer.
type WriterOption func(*Writer)

// WithKeywords highlights keywords in every exported document.
func WithKeywords(keywords []string) WriterOption {
	return func(w *Writer) {
		w.keywords = keywords
	}
}

// NewWriter creates a new Writer that exports to baseDir in format using
// exporter.
func NewWriter(baseDir string, exporter leximorph.Exporter, format leximorph.Format, opts ...WriterOption) *Writer {
	w := &Writer{baseDir: baseDir, exporter: exporter, format: format}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// CreateDocument exports a document to disk.
func (w *Writer) CreateDocument(ctx context.Context, doc *leximorph.Document) error {
	_, err := w.WriteDocument(ctx, doc)
	return err
}

// WriteDocument exports a document to disk and returns the path written.
func (w *Writer) WriteDocument(ctx context.Context, doc *leximorph.Document) (string, error) {
	if err := doc.Validate(); err != nil {
		return "", err
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}

	host, err := HostDir(doc.SourceURL)
	if err != nil {
		return "", leximorph.Errorf(leximorph.EINVALID, "%v", err)
	}
	dir := filepath.Join(w.baseDir, host)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}

	f, path, err := createUnique(dir, FileName(doc, w.format))
	if err != nil {
		return "", err
	}

	opts := leximorph.ExportOptions{Keywords: w.keywords, SourceURL: doc.SourceURL}
	if err := w.exporter.Export(f, doc.Article, opts); err != nil {
		f.Close()
		os.Remove(path)
		return "", err
	}
	if err := f.Close(); err != nil {
		os.Remove(path)
		return "", err
	}
	return path, nil
}

// createUnique creates name in dir, or name-2, name-3 and so on when it is
// taken.
func createUnique(dir, name string) (*os.File, string, error) {
	stem, ext := splitName(name)
	for i := 1; ; i++ {
		candidate := name
		if i > 1 {
			candidate = fmt.Sprintf("%s-%d%s", stem, i, ext)
		}
		path := filepath.Join(dir, candidate)
		f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
		if errors.Is(err, fs.ErrExist) {
			continue
		}
		if err != nil {
			return nil, "", err
		}
		return f, path, nil
	}
}

// splitName splits at the first dot so "story.de.pdf" keeps ".de.pdf"
// together.
func splitName(name string) (stem, ext string) {
	if i := strings.IndexByte(name, '.'); i > 0 {
		return name[:i], name[i:]
	}
	return name, ""
}
