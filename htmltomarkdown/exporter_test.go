package htmltomarkdown_test

import (
	"bytes"
	"errors"
	"io"
	"testing"

	"github.com/asheesh-yadav/leximorph"
	lhtml "github.com/asheesh-yadav/leximorph/html"
	"github.com/asheesh-yadav/leximorph/htmltomarkdown"
	"github.com/asheesh-yadav/leximorph/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html/atom"
)

func TestExporter_Export(t *testing.T) {
	t.Parallel()

	article := &leximorph.Article{
		Title:  "Solar Power Today",
		Author: "Jane Roe",
		Content: []leximorph.Element{
			leximorph.Heading{Level: 2, Text: "Why solar"},
			leximorph.Paragraph{Text: "Panels convert sunlight."},
			leximorph.List{Items: []string{"Cheap energy", "Clean air"}},
			leximorph.Image{Src: "https://example.com/a.jpg", Alt: "A panel"},
		},
	}
	preview := lhtml.NewExporter(lhtml.WithFragment(), lhtml.WithHighlightTag(atom.Strong))

	t.Run("converts the html rendering to markdown", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		err := htmltomarkdown.NewExporter(preview).Export(&buf, article, leximorph.ExportOptions{})
		require.NoError(t, err)

		md := buf.String()
		assert.Contains(t, md, "LexiMorph")
		assert.Contains(t, md, "# Solar Power Today")
		assert.Contains(t, md, "By Jane Roe")
		assert.Contains(t, md, "## Why solar")
		assert.Contains(t, md, "Panels convert sunlight.")
		assert.Contains(t, md, "- Cheap energy")
		assert.Contains(t, md, "![A panel](https://example.com/a.jpg)")
	})

	t.Run("renders keywords in bold", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		err := htmltomarkdown.NewExporter(preview).Export(&buf, article, leximorph.ExportOptions{
			Keywords: []string{"sunlight"},
		})
		require.NoError(t, err)

		assert.Contains(t, buf.String(), "Panels convert **sunlight**.")
	})

	t.Run("returns preview errors", func(t *testing.T) {
		t.Parallel()

		failing := &mock.Exporter{
			ExportFn: func(io.Writer, *leximorph.Article, leximorph.ExportOptions) error {
				return leximorph.Errorf(leximorph.EINVALID, "article title required")
			},
		}

		var buf bytes.Buffer
		err := htmltomarkdown.NewExporter(failing).Export(&buf, article, leximorph.ExportOptions{})

		assert.Equal(t, leximorph.EINVALID, leximorph.ErrorCode(err))
		assert.Zero(t, buf.Len())
	})
	t.Run("passes the preview html to the converter", func(t *testing.T) {
		t.Parallel()

		var got string
		converter := &mock.Converter{
			ConvertFn: func(html string) (string, error) {
				got = html
				return "converted", nil
			},
		}

		var buf bytes.Buffer
		err := htmltomarkdown.NewExporter(preview, htmltomarkdown.WithConverter(converter)).Export(&buf, article, leximorph.ExportOptions{})

		require.NoError(t, err)
		assert.Contains(t, got, "<h1>Solar Power Today</h1>")
		assert.Equal(t, "converted\n", buf.String())
	})

	t.Run("returns converter errors", func(t *testing.T) {
		t.Parallel()

		converter := &mock.Converter{
			ConvertFn: func(string) (string, error) {
				return "", errors.New("bad markup")
			},
		}

		var buf bytes.Buffer
		err := htmltomarkdown.NewExporter(preview, htmltomarkdown.WithConverter(converter)).Export(&buf, article, leximorph.ExportOptions{})

		require.EqualError(t, err, "bad markup")
		assert.Zero(t, buf.Len())
	})
}
