// Package gofpdf exports articles as PDF documents using jung-kurt/gofpdf.
package gofpdf

import (
	"io"

	"github.com/asheesh-yadav/leximorph"
	"github.com/jung-kurt/gofpdf"
)

const (
	fontFamily = "Helvetica"
	lineHeight = 6.0
	bodySize   = 12.0
	margin     = 20.0
	listIndent = 6.0
)

// headingSizes maps heading level to font size in points.
var headingSizes = map[int]float64{1: 16, 2: 14, 3: 13, 4: 12}

// Ensure Exporter implements leximorph.Exporter at compile time.
var _ leximorph.Exporter = (*Exporter)(nil)

// Exporter writes articles as A4 PDF documents.
type Exporter struct {
	compress bool
}

// Option configures an Exporter.
type Option func(*Exporter)

// WithCompression sets whether page content streams are compressed.
// Enabled by default.
func WithCompression(on bool) Option {
	return func(e *Exporter) {
		e.compress = on
	}
}

// NewExporter creates a new Exporter.
func NewExporter(opts ...Option) *Exporter {
	e := &Exporter{compress: true}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Export writes the article to w as a PDF. Core fonts cover Latin-1, so
// characters outside cp1252 are replaced.
func (e *Exporter) Export(w io.Writer, article *leximorph.Article, opts leximorph.ExportOptions) error {
	if err := article.Validate(); err != nil {
		return err
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetCompression(e.compress)
	pdf.SetMargins(margin, margin, margin)
	pdf.SetAutoPageBreak(true, margin)
	pdf.SetTitle(article.Title, true)
	if article.Author != "" {
		pdf.SetAuthor(article.Author, true)
	}
	pdf.SetCreator(leximorph.BrandName, true)
	pdf.AddPage()

	r := &renderer{pdf: pdf, tr: pdf.UnicodeTranslatorFromDescriptor(""), keywords: opts.Keywords}
	r.header(article, opts.SourceURL)
	for _, el := range article.Content {
		switch el := el.(type) {
		case leximorph.Heading:
			size, ok := headingSizes[el.Level]
			if !ok {
				size = headingSizes[4]
			}
			pdf.Ln(3)
			r.highlighted(el.Text, "B", size)
			pdf.Ln(lineHeight + 2)
		case leximorph.Paragraph:
			r.highlighted(el.Text, "", bodySize)
			pdf.Ln(lineHeight + 3)
		case leximorph.List:
			for _, item := range el.Items {
				pdf.SetX(margin + listIndent)
				r.write("", bodySize, "- ")
				r.highlighted(item, "", bodySize)
				pdf.Ln(lineHeight + 1)
			}
			pdf.Ln(2)
		case leximorph.Image:
			pdf.SetTextColor(0x66, 0x66, 0x66)
			r.write("I", bodySize, "[Image: "+el.Alt+"]")
			pdf.SetTextColor(0, 0, 0)
			pdf.Ln(lineHeight + 3)
		}
	}

	return pdf.Output(w)
}

type renderer struct {
	pdf      *gofpdf.Fpdf
	tr       func(string) string
	keywords []string
}

func (r *renderer) header(article *leximorph.Article, sourceURL string) {
	pdf := r.pdf
	r.write("B", 14, leximorph.BrandName)
	pdf.Ln(lineHeight)
	r.link(11, leximorph.BrandURL)
	pdf.Ln(lineHeight)
	r.write("", 11, leximorph.Rule)
	pdf.Ln(lineHeight + 4)

	if sourceURL != "" {
		r.write("B", 11, "Source Article:")
		pdf.Ln(lineHeight)
		r.link(11, sourceURL)
		pdf.Ln(lineHeight)
		r.write("", 11, leximorph.Rule)
		pdf.Ln(lineHeight + 4)
	}

	pdf.SetFont(fontFamily, "B", 16)
	pdf.MultiCell(0, 8, r.tr(article.Title), "", "L", false)
	pdf.Ln(4)
	if article.Author != "" {
		pdf.SetFont(fontFamily, "I", bodySize)
		pdf.CellFormat(0, lineHeight, r.tr("By "+article.Author), "", 1, "C", false, 0, "")
	}
	if article.PublishDate != "" {
		pdf.SetFont(fontFamily, "", 10)
		pdf.SetTextColor(0x66, 0x66, 0x66)
		pdf.CellFormat(0, lineHeight, r.tr(article.PublishDate), "", 1, "C", false, 0, "")
		pdf.SetTextColor(0, 0, 0)
	}
	pdf.Ln(6)
}

// highlighted writes text inline, switching to bold for keyword matches.
func (r *renderer) highlighted(text, style string, size float64) {
	for _, seg := range leximorph.Highlight(text, r.keywords) {
		if seg.Text == "" {
			continue
		}
		s := style
		if seg.Match {
			s = "B"
		}
		r.write(s, size, seg.Text)
	}
}

func (r *renderer) write(style string, size float64, text string) {
	r.pdf.SetFont(fontFamily, style, size)
	r.pdf.Write(lineHeight, r.tr(text))
}

func (r *renderer) link(size float64, url string) {
	r.pdf.SetFont(fontFamily, "U", size)
	r.pdf.SetTextColor(0x05, 0x63, 0xC1)
	r.pdf.WriteLinkString(lineHeight, r.tr(url), url)
	r.pdf.SetTextColor(0, 0, 0)
}
