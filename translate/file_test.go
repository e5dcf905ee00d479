package translate_test

import (
	"archive/zip"
	"bytes"
	"context"
	"io"
	"testing"

	"github.com/asheesh-yadav/leximorph"
	"github.com/asheesh-yadav/leximorph/translate"
	"github.com/beevik/etree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const contentTypesXML = `<?xml version="1.0" encoding="UTF-8"?><Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types"></Types>`

func buildPackage(t *testing.T, files map[string]string) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for name, body := range files {
		w, err := zw.Create(name)
		require.NoError(t, err)
		_, err = w.Write([]byte(body))
		require.NoError(t, err)
	}
	require.NoError(t, zw.Close())
	return buf.Bytes()
}

func readPackage(t *testing.T, data []byte) map[string]string {
	t.Helper()
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	require.NoError(t, err)
	out := map[string]string{}
	for _, f := range zr.File {
		rc, err := f.Open()
		require.NoError(t, err)
		b, err := io.ReadAll(rc)
		require.NoError(t, err)
		require.NoError(t, rc.Close())
		out[f.Name] = string(b)
	}
	return out
}

func elementTexts(t *testing.T, xml, path string) []string {
	t.Helper()
	doc := etree.NewDocument()
	require.NoError(t, doc.ReadFromString(xml))
	var out []string
	for _, el := range doc.FindElements(path) {
		out = append(out, el.Text())
	}
	return out
}

func TestService_TranslateFile(t *testing.T) {
	t.Parallel()

	svc := &translate.Service{Translator: prefixTranslator()}

	t.Run("translates the text runs of a Word document", func(t *testing.T) {
		t.Parallel()

		docx := buildPackage(t, map[string]string{
			"[Content_Types].xml": contentTypesXML,
			"word/document.xml": `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:body>
<w:p><w:r><w:t>Hello</w:t></w:r></w:p>
<w:p><w:r><w:t xml:space="preserve"> </w:t></w:r></w:p>
</w:body></w:document>`,
		})

		out, err := svc.TranslateFile(context.Background(), "Report.DOCX", docx, "German")

		require.NoError(t, err)
		files := readPackage(t, out)
		assert.Equal(t, contentTypesXML, files["[Content_Types].xml"])
		assert.Equal(t, []string{"[de]Hello", " "}, elementTexts(t, files["word/document.xml"], "//w:t"))
	})

	t.Run("translates slides and spreadsheet strings", func(t *testing.T) {
		t.Parallel()

		pptx := buildPackage(t, map[string]string{
			"ppt/slides/slide1.xml":  `<p:sld xmlns:p="p" xmlns:a="a"><a:t>One</a:t></p:sld>`,
			"ppt/slides/slide2.xml":  `<p:sld xmlns:p="p" xmlns:a="a"><a:t>Two</a:t></p:sld>`,
			"ppt/slideLayouts/l.xml": `<a:t xmlns:a="a">Layout</a:t>`,
		})
		out, err := svc.TranslateFile(context.Background(), "deck.pptx", pptx, "fr")
		require.NoError(t, err)
		files := readPackage(t, out)
		assert.Equal(t, []string{"[fr]One"}, elementTexts(t, files["ppt/slides/slide1.xml"], "//a:t"))
		assert.Equal(t, []string{"[fr]Two"}, elementTexts(t, files["ppt/slides/slide2.xml"], "//a:t"))
		assert.Equal(t, []string{"Layout"}, elementTexts(t, files["ppt/slideLayouts/l.xml"], "//a:t"))

		xlsx := buildPackage(t, map[string]string{
			"xl/sharedStrings.xml":     `<sst><si><t>Name</t></si><si><t>Total</t></si></sst>`,
			"xl/worksheets/sheet1.xml": `<worksheet><sheetData><row><c t="inlineStr"><is><t>Inline</t></is></c><c><v>42</v></c></row></sheetData></worksheet>`,
		})
		out, err = svc.TranslateFile(context.Background(), "book.xlsx", xlsx, "it")
		require.NoError(t, err)
		files = readPackage(t, out)
		assert.Equal(t, []string{"[it]Name", "[it]Total"}, elementTexts(t, files["xl/sharedStrings.xml"], "//t"))
		assert.Equal(t, []string{"[it]Inline"}, elementTexts(t, files["xl/worksheets/sheet1.xml"], "//is/t"))
	})

	t.Run("translates plain text line by line", func(t *testing.T) {
		t.Parallel()

		out, err := svc.TranslateFile(context.Background(), "notes.txt", []byte("Hello\r\n\n  \nWorld"), "es")

		require.NoError(t, err)
		assert.Equal(t, "[es]Hello\n\n  \n[es]World", string(out))
	})

	t.Run("keeps subtitle numbering and timecodes", func(t *testing.T) {
		t.Parallel()

		srt := "1\n00:00:01,000 --> 00:00:02,500\nHello there\n\n2\n00:00:03,000 --> 00:00:04,000\nGeneral Kenobi\n"

		out, err := svc.TranslateFile(context.Background(), "movie.srt", []byte(srt), "es")

		require.NoError(t, err)
		assert.Equal(t, "1\n00:00:01,000 --> 00:00:02,500\n[es]Hello there\n\n2\n00:00:03,000 --> 00:00:04,000\n[es]General Kenobi\n", string(out))
	})

	t.Run("rejects unsupported and corrupt files", func(t *testing.T) {
		t.Parallel()

		_, err := svc.TranslateFile(context.Background(), "paper.pdf", []byte("%PDF"), "es")
		assert.Equal(t, leximorph.EINVALID, leximorph.ErrorCode(err))

		_, err = svc.TranslateFile(context.Background(), "broken.docx", []byte("not a zip"), "es")
		assert.Equal(t, leximorph.EINVALID, leximorph.ErrorCode(err))
	})
}

func TestTranslatedFileName(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "translated_report.docx", translate.TranslatedFileName("/tmp/in/report.docx"))
}
