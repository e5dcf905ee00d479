package goquery_test

import (
	"testing"

	"github.com/asheesh-yadav/leximorph"
	"github.com/asheesh-yadav/leximorph/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func linkURLs(links []leximorph.DiscoveredLink) []string {
	urls := make([]string, len(links))
	for i, l := range links {
		urls[i] = l.URL
	}
	return urls
}

func TestGenericSelector_ExtractLinks(t *testing.T) {
	t.Parallel()

	t.Run("ranks headlines above teasers and related links", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
<header><nav><a href="/world">World</a><a href="/business">Business</a></nav></header>
<main>
	<article>
		<h2><a href="/world/harbor-reopens-after-storm">Harbor reopens after storm</a></h2>
		<a href="/world/harbor-reopens-after-storm"><img src="/harbor.jpg" alt=""></a>
	</article>
	<div class="card"><a href="/business/port-fees-rise">Port fees rise</a></div>
</main>
<aside class="most-read"><a href="/culture/festival-returns">Festival returns</a></aside>
<footer><a href="/about">About</a><a href="/privacy">Privacy</a></footer>
</body></html>`

		links, err := goquery.NewGenericSelector().ExtractLinks(html, "https://news.example.com/")

		require.NoError(t, err)
		require.Len(t, links, 3)
		assert.Equal(t, "https://news.example.com/world/harbor-reopens-after-storm", links[0].URL)
		assert.Equal(t, leximorph.PriorityHeadline, links[0].Priority)
		assert.Equal(t, "https://news.example.com/business/port-fees-rise", links[1].URL)
		assert.Equal(t, leximorph.PriorityTeaser, links[1].Priority)
		assert.Equal(t, "https://news.example.com/culture/festival-returns", links[2].URL)
		assert.Equal(t, leximorph.PriorityRelated, links[2].Priority)
	})

	t.Run("finds stories in non-semantic markup", func(t *testing.T) {
		t.Parallel()

		html := `<html><body><div class="flex gap-4">
	<a href="/2024/03/02/harbor-reopens">Harbor</a>
	<a href="/world">World</a>
</div></body></html>`

		links, err := goquery.NewGenericSelector().ExtractLinks(html, "https://news.example.com/")

		require.NoError(t, err)
		assert.Equal(t, []string{"https://news.example.com/2024/03/02/harbor-reopens"}, linkURLs(links))
	})
}

func TestWordPressSelector_ExtractLinks(t *testing.T) {
	t.Parallel()

	t.Run("extracts entry titles and recent posts", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
<main>
	<article class="post">
		<h2 class="entry-title"><a href="https://blog.example.com/2024/03/harbor-notes/">Harbor notes</a></h2>
		<a class="more-link" href="https://blog.example.com/2024/03/harbor-notes/">Continue reading</a>
		<a href="https://blog.example.com/category/travel/">Travel</a>
	</article>
</main>
<section class="widget widget_recent_entries"><ul>
	<li><a href="https://blog.example.com/2024/02/winter-ferries/">Winter ferries</a></li>
</ul></section>
</body></html>`

		links, err := goquery.NewWordPressSelector().ExtractLinks(html, "https://blog.example.com/")

		require.NoError(t, err)
		require.Len(t, links, 2)
		assert.Equal(t, "https://blog.example.com/2024/03/harbor-notes/", links[0].URL)
		assert.Equal(t, leximorph.PriorityHeadline, links[0].Priority)
		assert.Equal(t, "Harbor notes", links[0].Text)
		assert.Equal(t, "https://blog.example.com/2024/02/winter-ferries/", links[1].URL)
		assert.Equal(t, leximorph.PriorityRelated, links[1].Priority)
	})
}

func TestGhostSelector_ExtractLinks(t *testing.T) {
	t.Parallel()

	t.Run("extracts post card links", func(t *testing.T) {
		t.Parallel()

		html := `<html><body><div class="post-feed">
	<article class="post-card">
		<a class="post-card-image-link" href="/harbor-notes/"><img src="/h.jpg"></a>
		<a class="post-card-content-link" href="/harbor-notes/"><h2>Harbor notes</h2></a>
	</article>
	<article class="gh-card"><a class="gh-card-link" href="/winter-ferries/">Winter ferries</a></article>
	<article class="post-card"><a href="/tag/travel/">Travel</a></article>
</div></body></html>`

		links, err := goquery.NewGhostSelector().ExtractLinks(html, "https://ghost.example.com/")

		require.NoError(t, err)
		assert.Equal(t, []string{
			"https://ghost.example.com/harbor-notes/",
			"https://ghost.example.com/winter-ferries/",
		}, linkURLs(links))
		assert.Equal(t, leximorph.PriorityHeadline, links[0].Priority)
	})
}

func TestSubstackSelector_ExtractLinks(t *testing.T) {
	t.Parallel()

	t.Run("extracts post previews and other post links", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
<div class="post-preview"><a class="post-preview-title" href="https://letter.example.com/p/harbor-notes">Harbor notes</a></div>
<div class="footer"><a href="https://letter.example.com/p/welcome">Welcome</a><a href="https://letter.example.com/about">About</a></div>
</body></html>`

		links, err := goquery.NewSubstackSelector().ExtractLinks(html, "https://letter.example.com/archive")

		require.NoError(t, err)
		require.Len(t, links, 2)
		assert.Equal(t, "https://letter.example.com/p/harbor-notes", links[0].URL)
		assert.Equal(t, leximorph.PriorityHeadline, links[0].Priority)
		assert.Equal(t, "https://letter.example.com/p/welcome", links[1].URL)
		assert.Equal(t, leximorph.PriorityFallback, links[1].Priority)
	})
}

func TestBloggerSelector_ExtractLinks(t *testing.T) {
	t.Parallel()

	t.Run("extracts post titles and archive posts", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
<div class="blog-posts">
	<div class="post-outer">
		<h3 class="post-title entry-title"><a href="https://example.blogspot.com/2024/03/harbor-notes.html">Harbor notes</a></h3>
		<a class="timestamp-link" href="https://example.blogspot.com/2024/03/harbor-notes.html">March 2</a>
	</div>
</div>
<div class="widget BlogArchive"><ul class="posts">
	<li><a href="https://example.blogspot.com/2024/02/winter-ferries.html">Winter ferries</a></li>
</ul></div>
</body></html>`

		links, err := goquery.NewBloggerSelector().ExtractLinks(html, "https://example.blogspot.com/")

		require.NoError(t, err)
		assert.Equal(t, []string{
			"https://example.blogspot.com/2024/03/harbor-notes.html",
			"https://example.blogspot.com/2024/02/winter-ferries.html",
		}, linkURLs(links))
	})
}
