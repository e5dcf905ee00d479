package goquery_test

import (
	"testing"

	"github.com/asheesh-yadav/leximorph"
	"github.com/asheesh-yadav/leximorph/goquery"
	"github.com/asheesh-yadav/leximorph/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry_Get(t *testing.T) {
	t.Parallel()

	t.Run("returns registered selector for platform", func(t *testing.T) {
		t.Parallel()

		fallback := &mock.LinkSelector{NameFn: func() string { return "fallback" }}
		wordpress := &mock.LinkSelector{NameFn: func() string { return "wordpress" }}

		registry := goquery.NewRegistry(&mock.PlatformDetector{}, fallback)
		registry.Register(leximorph.PlatformWordPress, wordpress)

		got := registry.Get(leximorph.PlatformWordPress)

		require.NotNil(t, got)
		assert.Equal(t, "wordpress", got.Name())
	})

	t.Run("returns nil for unregistered platform", func(t *testing.T) {
		t.Parallel()

		fallback := &mock.LinkSelector{NameFn: func() string { return "fallback" }}
		registry := goquery.NewRegistry(&mock.PlatformDetector{}, fallback)

		assert.Nil(t, registry.Get(leximorph.PlatformGhost))
	})
}

func TestRegistry_GetForHTML(t *testing.T) {
	t.Parallel()

	t.Run("returns selector for detected platform", func(t *testing.T) {
		t.Parallel()

		detector := &mock.PlatformDetector{
			DetectFn: func(html string) leximorph.Platform {
				return leximorph.PlatformGhost
			},
		}
		fallback := &mock.LinkSelector{NameFn: func() string { return "fallback" }}
		ghost := &mock.LinkSelector{NameFn: func() string { return "ghost" }}

		registry := goquery.NewRegistry(detector, fallback)
		registry.Register(leximorph.PlatformGhost, ghost)

		assert.Equal(t, "ghost", registry.GetForHTML("<html></html>").Name())
	})

	t.Run("returns fallback for unknown platform", func(t *testing.T) {
		t.Parallel()

		detector := &mock.PlatformDetector{
			DetectFn: func(html string) leximorph.Platform {
				return leximorph.PlatformUnknown
			},
		}
		fallback := &mock.LinkSelector{NameFn: func() string { return "fallback" }}

		registry := goquery.NewRegistry(detector, fallback)

		assert.Equal(t, "fallback", registry.GetForHTML("<html></html>").Name())
	})

	t.Run("returns fallback when detected platform has no selector", func(t *testing.T) {
		t.Parallel()

		detector := &mock.PlatformDetector{
			DetectFn: func(html string) leximorph.Platform {
				return leximorph.PlatformBlogger
			},
		}
		fallback := &mock.LinkSelector{NameFn: func() string { return "fallback" }}

		registry := goquery.NewRegistry(detector, fallback)

		assert.Equal(t, "fallback", registry.GetForHTML("<html></html>").Name())
	})
}

func TestRegistry_List(t *testing.T) {
	t.Parallel()

	t.Run("lists registered platforms sorted", func(t *testing.T) {
		t.Parallel()

		registry := goquery.NewDefaultRegistry()

		assert.Equal(t, []leximorph.Platform{
			leximorph.PlatformBlogger,
			leximorph.PlatformGhost,
			leximorph.PlatformSubstack,
			leximorph.PlatformWordPress,
		}, registry.List())
	})

	t.Run("replacing a selector keeps one entry", func(t *testing.T) {
		t.Parallel()

		registry := goquery.NewRegistry(&mock.PlatformDetector{}, goquery.NewGenericSelector())
		registry.Register(leximorph.PlatformGhost, goquery.NewGhostSelector())
		registry.Register(leximorph.PlatformGhost, goquery.NewGenericSelector())

		assert.Equal(t, []leximorph.Platform{leximorph.PlatformGhost}, registry.List())
		assert.Equal(t, "generic", registry.Get(leximorph.PlatformGhost).Name())
	})
}

func TestNewDefaultRegistry(t *testing.T) {
	t.Parallel()

	t.Run("picks the wordpress selector for a wordpress page", func(t *testing.T) {
		t.Parallel()

		html := `<html><head><meta name="generator" content="WordPress 6.5"></head><body></body></html>`

		assert.Equal(t, "wordpress", goquery.NewDefaultRegistry().GetForHTML(html).Name())
	})

	t.Run("picks the generic selector for an unknown page", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "generic", goquery.NewDefaultRegistry().GetForHTML("<html></html>").Name())
	})
}
