package leximorph_test

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/asheesh-yadav/leximorph"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArticle_MarshalJSON(t *testing.T) {
	t.Parallel()

	t.Run("uses the client wire format", func(t *testing.T) {
		t.Parallel()

		a := leximorph.Article{
			Title:  "Widgets",
			Author: "Jane",
			Content: []leximorph.Element{
				leximorph.Heading{Level: 3, Text: "Setup"},
				leximorph.Paragraph{Text: "Widgets are great."},
				leximorph.List{Items: []string{"Faster", "Cheaper"}},
				leximorph.Image{Src: "/w.png", Alt: "Widget"},
			},
		}

		data, err := json.Marshal(a)

		require.NoError(t, err)
		assert.JSONEq(t, `{
			"title": "Widgets",
			"author": "Jane",
			"content": [
				{"type": "heading3", "content": "Setup", "level": 3},
				{"type": "paragraph", "content": "Widgets are great."},
				{"type": "list", "content": "", "items": ["Faster", "Cheaper"]},
				{"type": "image", "content": "/w.png", "alt": "Widget"}
			]
		}`, string(data))
	})

	t.Run("omits absent author and date", func(t *testing.T) {
		t.Parallel()

		data, err := json.Marshal(&leximorph.Article{Title: "T", Content: []leximorph.Element{}})

		require.NoError(t, err)
		assert.NotContains(t, string(data), "author")
		assert.NotContains(t, string(data), "publishDate")
	})
}

func TestArticle_UnmarshalJSON(t *testing.T) {
	t.Parallel()

	t.Run("decodes every element type", func(t *testing.T) {
		t.Parallel()

		var a leximorph.Article
		err := json.Unmarshal([]byte(`{
			"title": "Widgets",
			"publishDate": "2024-05-01",
			"content": [
				{"type": "heading1", "content": "Top"},
				{"type": "heading4", "content": "Deep", "level": 4},
				{"type": "paragraph", "content": "Body"},
				{"type": "list", "content": "", "items": ["one item", "two items"]},
				{"type": "image", "content": "/a.png"}
			]
		}`), &a)

		require.NoError(t, err)
		assert.Equal(t, "2024-05-01", a.PublishDate)
		assert.Equal(t, []leximorph.Element{
			leximorph.Heading{Level: 1, Text: "Top"},
			leximorph.Heading{Level: 4, Text: "Deep"},
			leximorph.Paragraph{Text: "Body"},
			leximorph.List{Items: []string{"one item", "two items"}},
			leximorph.Image{Src: "/a.png", Alt: leximorph.DefaultImageAlt},
		}, a.Content)
	})

	t.Run("rejects unknown element types", func(t *testing.T) {
		t.Parallel()

		var a leximorph.Article
		err := json.Unmarshal([]byte(`{"title": "T", "content": [{"type": "table"}]}`), &a)

		require.Error(t, err)
		assert.Equal(t, leximorph.EINVALID, leximorph.ErrorCode(err))
	})
}

func TestArticle_Validate(t *testing.T) {
	t.Parallel()

	t.Run("requires a title", func(t *testing.T) {
		t.Parallel()

		a := &leximorph.Article{Content: []leximorph.Element{leximorph.Paragraph{Text: "x"}}}

		assert.Equal(t, leximorph.EINVALID, leximorph.ErrorCode(a.Validate()))
	})

	t.Run("requires content", func(t *testing.T) {
		t.Parallel()

		a := &leximorph.Article{Title: "T"}

		assert.Equal(t, leximorph.EINVALID, leximorph.ErrorCode(a.Validate()))
	})

	t.Run("accepts a complete article", func(t *testing.T) {
		t.Parallel()

		a := &leximorph.Article{Title: "T", Content: []leximorph.Element{leximorph.Paragraph{Text: "x"}}}

		assert.NoError(t, a.Validate())
	})
}

func TestArticle_IsPlaceholder(t *testing.T) {
	t.Parallel()

	placeholder := &leximorph.Article{
		Title:   leximorph.UntitledTitle,
		Content: []leximorph.Element{leximorph.Paragraph{Text: leximorph.PlaceholderText}},
	}
	extracted := &leximorph.Article{
		Title:   "T",
		Content: []leximorph.Element{leximorph.Paragraph{Text: "Real content"}},
	}

	assert.True(t, placeholder.IsPlaceholder())
	assert.False(t, extracted.IsPlaceholder())
}

func TestArticle_Clone(t *testing.T) {
	t.Parallel()

	a := &leximorph.Article{
		Title:   "T",
		Content: []leximorph.Element{leximorph.List{Items: []string{"first item"}}},
	}

	clone := a.Clone()
	clone.Content[0].(leximorph.List).Items[0] = "changed"
	clone.Title = "Other"

	assert.Equal(t, "T", a.Title)
	assert.Equal(t, "first item", a.Content[0].(leximorph.List).Items[0])
}

func TestNormalizeKey(t *testing.T) {
	t.Parallel()

	t.Run("lower-cases and trims", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "hello world", leximorph.NormalizeKey("  Hello World \n"))
	})

	t.Run("keeps the first 100 runes", func(t *testing.T) {
		t.Parallel()

		long := strings.Repeat("é", 150)

		assert.Equal(t, strings.Repeat("é", 100), leximorph.NormalizeKey(long))
	})
}
