package crawl_test

import (
	"strings"
	"testing"

	"github.com/asheesh-yadav/leximorph"
	"github.com/asheesh-yadav/leximorph/crawl"
	"github.com/stretchr/testify/assert"
)

func articleWithText(n int) *leximorph.Article {
	return &leximorph.Article{
		Title:   "T",
		Content: []leximorph.Element{leximorph.Paragraph{Text: strings.Repeat("a", n)}},
	}
}

func placeholder() *leximorph.Article {
	return &leximorph.Article{
		Title:   leximorph.UntitledTitle,
		Content: []leximorph.Element{leximorph.Paragraph{Text: leximorph.PlaceholderText}},
	}
}

func TestNeedsBrowser(t *testing.T) {
	t.Parallel()

	t.Run("returns true for the placeholder", func(t *testing.T) {
		t.Parallel()
		assert.True(t, crawl.NeedsBrowser(placeholder()))
	})

	t.Run("returns true for very short content", func(t *testing.T) {
		t.Parallel()
		assert.True(t, crawl.NeedsBrowser(articleWithText(50)))
	})

	t.Run("returns false for substantial content", func(t *testing.T) {
		t.Parallel()
		assert.False(t, crawl.NeedsBrowser(articleWithText(800)))
	})

	t.Run("counts list items and headings", func(t *testing.T) {
		t.Parallel()

		a := &leximorph.Article{Title: "T", Content: []leximorph.Element{
			leximorph.Heading{Level: 2, Text: strings.Repeat("h", 100)},
			leximorph.List{Items: []string{strings.Repeat("i", 60), strings.Repeat("j", 60)}},
			leximorph.Image{Src: "https://example.com/a.png", Alt: strings.Repeat("x", 500)},
		}}

		assert.Equal(t, 220, crawl.TextLen(a))
		assert.False(t, crawl.NeedsBrowser(a))
	})
}

func TestContentDiffers(t *testing.T) {
	t.Parallel()

	t.Run("returns true when rendered text is more than 50% longer", func(t *testing.T) {
		t.Parallel()
		assert.True(t, crawl.ContentDiffers(articleWithText(100), articleWithText(151)))
	})

	t.Run("returns false when rendered text is at most 50% longer", func(t *testing.T) {
		t.Parallel()
		assert.False(t, crawl.ContentDiffers(articleWithText(100), articleWithText(150)))
	})

	t.Run("prefers any rendered content over the placeholder", func(t *testing.T) {
		t.Parallel()
		assert.True(t, crawl.ContentDiffers(placeholder(), articleWithText(10)))
	})

	t.Run("never prefers a rendered placeholder", func(t *testing.T) {
		t.Parallel()
		assert.False(t, crawl.ContentDiffers(articleWithText(10), placeholder()))
	})
}
