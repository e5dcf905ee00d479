package htmltomarkdown

import (
	"bytes"
	"io"

	"github.com/asheesh-yadav/leximorph"
)

// Ensure Exporter implements leximorph.Exporter at compile time.
var _ leximorph.Exporter = (*Exporter)(nil)

// Exporter writes articles as Markdown by converting their HTML rendering.
type Exporter struct {
	preview   leximorph.Exporter
	converter leximorph.Converter
}

// ExporterOption configures an Exporter.
type ExporterOption func(*Exporter)

// WithConverter replaces the default HTML to Markdown converter.
func WithConverter(c leximorph.Converter) ExporterOption {
	return func(e *Exporter) {
		e.converter = c
	}
}

// NewExporter creates an Exporter that converts the output of preview. The
// preview should render a fragment with keywords in <strong> so they come
// out bold.
func NewExporter(preview leximorph.Exporter, opts ...ExporterOption) *Exporter {
	e := &Exporter{preview: preview, converter: NewConverter()}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Export writes the article to w as Markdown.
func (e *Exporter) Export(w io.Writer, article *leximorph.Article, opts leximorph.ExportOptions) error {
	var buf bytes.Buffer
	if err := e.preview.Export(&buf, article, opts); err != nil {
		return err
	}
	md, err := e.converter.Convert(buf.String())
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, md+"\n")
	return err
}
