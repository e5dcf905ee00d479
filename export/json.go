package export

import (
	"encoding/json"
	"io"

	"github.com/asheesh-yadav/leximorph"
)

// Ensure JSONExporter implements leximorph.Exporter at compile time.
var _ leximorph.Exporter = (*JSONExporter)(nil)

// JSONExporter writes articles in their JSON wire format. Keywords and the
// source URL are not part of the wire format and are ignored.
type JSONExporter struct {
	Indent string
}

// Export writes the article to w as JSON followed by a newline.
func (e *JSONExporter) Export(w io.Writer, article *leximorph.Article, _ leximorph.ExportOptions) error {
	if err := article.Validate(); err != nil {
		return err
	}
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	if e.Indent != "" {
		enc.SetIndent("", e.Indent)
	}
	return enc.Encode(article)
}
