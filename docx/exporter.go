// Package docx exports articles as Word (.docx) documents. The package parts
// are built with etree and zipped with archive/zip.
package docx

import (
	"archive/zip"
	"io"
	"strconv"

	"github.com/asheesh-yadav/leximorph"
	"github.com/beevik/etree"
)

const (
	nsMain          = "http://schemas.openxmlformats.org/wordprocessingml/2006/main"
	nsRelationships = "http://schemas.openxmlformats.org/package/2006/relationships"
	nsContentTypes  = "http://schemas.openxmlformats.org/package/2006/content-types"
	relOfficeDoc    = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument"
	mimeMain        = "application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"
	mimeRels        = "application/vnd.openxmlformats-package.relationships+xml"
)

// Font sizes in half-points.
const (
	sizeBrand    = 28
	sizeSource   = 22
	sizeTitle    = 32
	sizeDate     = 20
	sizeBody     = 24
	colorMuted   = "666666"
	colorLink    = "0563C1"
	listIndent   = 360
	bodyLineRule = 360
)

// headingStyle is the size and spacing of a heading level.
type headingStyle struct {
	size, before, after int
}

var headingStyles = map[int]headingStyle{
	1: {size: 32, before: 400, after: 200},
	2: {size: 28, before: 300, after: 150},
	3: {size: 26, before: 200, after: 100},
	4: {size: 24, before: 200, after: 100},
}

// Ensure Exporter implements leximorph.Exporter at compile time.
var _ leximorph.Exporter = (*Exporter)(nil)

// Exporter writes articles as Word documents.
type Exporter struct{}

// NewExporter creates a new Exporter.
func NewExporter() *Exporter {
	return &Exporter{}
}

// Export writes the article to w as a .docx package.
func (e *Exporter) Export(w io.Writer, article *leximorph.Article, opts leximorph.ExportOptions) error {
	if err := article.Validate(); err != nil {
		return err
	}

	parts := []struct {
		name string
		doc  *etree.Document
	}{
		{"[Content_Types].xml", contentTypes()},
		{"_rels/.rels", packageRels()},
		{"word/document.xml", Document(article, opts)},
	}

	zw := zip.NewWriter(w)
	for _, p := range parts {
		f, err := zw.Create(p.name)
		if err != nil {
			return err
		}
		p.doc.Indent(etree.NoIndent)
		if _, err := p.doc.WriteTo(f); err != nil {
			return err
		}
	}
	return zw.Close()
}

// Document builds the word/document.xml part for an article.
func Document(article *leximorph.Article, opts leximorph.ExportOptions) *etree.Document {
	doc := newXML()
	root := doc.CreateElement("w:document")
	root.CreateAttr("xmlns:w", nsMain)
	b := &bodyBuilder{body: root.CreateElement("w:body"), keywords: opts.Keywords}

	b.paragraph(paraStyle{}, run{text: leximorph.BrandName, bold: true, size: sizeBrand})
	b.paragraph(paraStyle{after: 200}, run{text: leximorph.BrandURL, color: colorLink, underline: true})
	b.paragraph(paraStyle{after: 300}, run{text: leximorph.Rule})

	if opts.SourceURL != "" {
		b.paragraph(paraStyle{}, run{text: "Source Article:", bold: true, size: sizeSource})
		b.paragraph(paraStyle{after: 300}, run{text: opts.SourceURL, color: colorLink, underline: true, size: sizeSource})
		b.paragraph(paraStyle{after: 400}, run{text: leximorph.Rule})
	}

	b.paragraph(paraStyle{after: 400}, run{text: article.Title, bold: true, size: sizeTitle})
	if article.Author != "" {
		b.paragraph(paraStyle{after: 200, center: true}, run{text: "By " + article.Author, italic: true})
	}
	if article.PublishDate != "" {
		b.paragraph(paraStyle{after: 400, center: true}, run{text: article.PublishDate, size: sizeDate, color: colorMuted})
	}

	for _, el := range article.Content {
		switch el := el.(type) {
		case leximorph.Heading:
			hs, ok := headingStyles[el.Level]
			if !ok {
				hs = headingStyles[4]
			}
			b.paragraph(paraStyle{before: hs.before, after: hs.after}, b.highlighted(el.Text, true, hs.size)...)
		case leximorph.Paragraph:
			b.paragraph(paraStyle{after: 200, line: bodyLineRule}, b.highlighted(el.Text, false, sizeBody)...)
		case leximorph.List:
			for _, item := range el.Items {
				runs := append([]run{{text: "• ", size: sizeBody}}, b.highlighted(item, false, sizeBody)...)
				b.paragraph(paraStyle{after: 100, indent: listIndent}, runs...)
			}
			b.paragraph(paraStyle{after: 200})
		case leximorph.Image:
			b.paragraph(paraStyle{before: 200, after: 200}, run{text: "[Image: " + el.Alt + "]", italic: true, color: colorMuted})
		}
	}

	b.body.CreateElement("w:sectPr")
	return doc
}

// run is one span of uniformly formatted text.
type run struct {
	text      string
	bold      bool
	italic    bool
	underline bool
	highlight bool
	size      int
	color     string
}

// paraStyle holds paragraph properties. Spacing is in twentieths of a point.
type paraStyle struct {
	before, after, line, indent int
	center                      bool
}

type bodyBuilder struct {
	body     *etree.Element
	keywords []string
}

// highlighted splits text into runs, making keyword matches bold with a
// yellow highlight.
func (b *bodyBuilder) highlighted(text string, bold bool, size int) []run {
	var runs []run
	for _, seg := range leximorph.Highlight(text, b.keywords) {
		if seg.Text == "" {
			continue
		}
		runs = append(runs, run{text: seg.Text, bold: bold || seg.Match, highlight: seg.Match, size: size})
	}
	return runs
}

func (b *bodyBuilder) paragraph(style paraStyle, runs ...run) {
	p := b.body.CreateElement("w:p")

	ppr := p.CreateElement("w:pPr")
	if style.before > 0 || style.after > 0 || style.line > 0 {
		spacing := ppr.CreateElement("w:spacing")
		setIntAttr(spacing, "w:before", style.before)
		setIntAttr(spacing, "w:after", style.after)
		setIntAttr(spacing, "w:line", style.line)
	}
	if style.indent > 0 {
		setIntAttr(ppr.CreateElement("w:ind"), "w:left", style.indent)
	}
	if style.center {
		ppr.CreateElement("w:jc").CreateAttr("w:val", "center")
	}

	for _, r := range runs {
		wr := p.CreateElement("w:r")
		rpr := wr.CreateElement("w:rPr")
		if r.bold {
			rpr.CreateElement("w:b")
		}
		if r.italic {
			rpr.CreateElement("w:i")
		}
		if r.underline {
			rpr.CreateElement("w:u").CreateAttr("w:val", "single")
		}
		if r.color != "" {
			rpr.CreateElement("w:color").CreateAttr("w:val", r.color)
		}
		if r.size > 0 {
			rpr.CreateElement("w:sz").CreateAttr("w:val", strconv.Itoa(r.size))
		}
		if r.highlight {
			rpr.CreateElement("w:highlight").CreateAttr("w:val", "yellow")
		}
		t := wr.CreateElement("w:t")
		t.CreateAttr("xml:space", "preserve")
		t.SetText(r.text)
	}
}

func setIntAttr(el *etree.Element, key string, v int) {
	if v > 0 {
		el.CreateAttr(key, strconv.Itoa(v))
	}
}

func newXML() *etree.Document {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8" standalone="yes"`)
	return doc
}

func contentTypes() *etree.Document {
	doc := newXML()
	types := doc.CreateElement("Types")
	types.CreateAttr("xmlns", nsContentTypes)
	def := types.CreateElement("Default")
	def.CreateAttr("Extension", "rels")
	def.CreateAttr("ContentType", mimeRels)
	def = types.CreateElement("Default")
	def.CreateAttr("Extension", "xml")
	def.CreateAttr("ContentType", "application/xml")
	over := types.CreateElement("Override")
	over.CreateAttr("PartName", "/word/document.xml")
	over.CreateAttr("ContentType", mimeMain)
	return doc
}

func packageRels() *etree.Document {
	doc := newXML()
	rels := doc.CreateElement("Relationships")
	rels.CreateAttr("xmlns", nsRelationships)
	rel := rels.CreateElement("Relationship")
	rel.CreateAttr("Id", "rId1")
	rel.CreateAttr("Type", relOfficeDoc)
	rel.CreateAttr("Target", "word/document.xml")
	return doc
}
