package leximorph

import "io"

// Format names an export format.
type Format string

// Supported export formats.
const (
	FormatDOCX     Format = "docx"
	FormatPDF      Format = "pdf"
	FormatMarkdown Format = "md"
	FormatHTML     Format = "html"
	FormatJSON     Format = "json"
)

// Formats lists every supported export format.
func Formats() []Format {
	return []Format{FormatDOCX, FormatPDF, FormatMarkdown, FormatHTML, FormatJSON}
}

// ExportOptions controls how an article is exported.
type ExportOptions struct {
	// Keywords are emphasized wherever they occur, case-insensitively.
	Keywords []string

	// SourceURL, when set, is printed in the document header.
	SourceURL string
}

// Exporter serializes an article into a downloadable format.
type Exporter interface {
	// Export writes the article to w.
	// Returns EINVALID if the article fails validation.
	Export(w io.Writer, article *Article, opts ExportOptions) error
}
