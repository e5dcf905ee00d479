package goquery_test

import (
	"testing"

	"github.com/asheesh-yadav/leximorph"
	"github.com/asheesh-yadav/leximorph/goquery"
	"github.com/stretchr/testify/assert"
)

func TestDetector_Detect(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		html string
		want leximorph.Platform
	}{
		{
			name: "wordpress from generator meta",
			html: `<html><head><meta name="generator" content="WordPress 6.5.2"></head><body></body></html>`,
			want: leximorph.PlatformWordPress,
		},
		{
			name: "ghost from generator meta",
			html: `<html><head><meta name="generator" content="Ghost 5.82"></head><body></body></html>`,
			want: leximorph.PlatformGhost,
		},
		{
			name: "blogger from generator meta",
			html: `<html><head><meta name="generator" content="blogger"></head><body></body></html>`,
			want: leximorph.PlatformBlogger,
		},
		{
			name: "wordpress from asset paths",
			html: `<html><head><link rel="stylesheet" href="https://blog.example.com/wp-content/themes/twentyfour/style.css"></head><body></body></html>`,
			want: leximorph.PlatformWordPress,
		},
		{
			name: "substack from cdn",
			html: `<html><head><script src="https://substackcdn.com/bundle/main.js"></script></head><body></body></html>`,
			want: leximorph.PlatformSubstack,
		},
		{
			name: "substack from post previews",
			html: `<html><body><a class="post-preview-title" href="/p/first">First</a></body></html>`,
			want: leximorph.PlatformSubstack,
		},
		{
			name: "ghost from post cards",
			html: `<html><body><article class="post-card"><a href="/first-post/">First</a></article></body></html>`,
			want: leximorph.PlatformGhost,
		},
		{
			name: "blogger from post markup",
			html: `<html><body><div class="post-outer"><h3 class="post-title"><a href="/2024/03/first.html">First</a></h3></div></body></html>`,
			want: leximorph.PlatformBlogger,
		},
		{
			name: "generator meta wins over markup",
			html: `<html><head><meta name="generator" content="WordPress 6.5"></head><body><article class="post-card"></article></body></html>`,
			want: leximorph.PlatformWordPress,
		},
		{
			name: "unknown for plain news markup",
			html: `<html><body><article><h2><a href="/world/harbor-reopens">Harbor</a></h2></article></body></html>`,
			want: leximorph.PlatformUnknown,
		},
		{
			name: "unknown for unrecognized generator",
			html: `<html><head><meta name="generator" content="Hugo 0.125"></head><body></body></html>`,
			want: leximorph.PlatformUnknown,
		},
	}

	detector := goquery.NewDetector()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, detector.Detect(tt.html))
		})
	}
}
