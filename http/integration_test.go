//go:build integration

package http_test

import (
	"context"
	"testing"
	"time"

	lxhttp "github.com/asheesh-yadav/leximorph/http"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTranslator_Integration(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	tr := lxhttp.NewTranslator()

	lang, err := tr.DetectLanguage(ctx, "Der schnelle braune Fuchs springt über den faulen Hund.")
	require.NoError(t, err)
	assert.Equal(t, "de", lang)

	out, err := tr.TranslateSpan(ctx, "Good morning", "en", "es")
	require.NoError(t, err)
	assert.NotEmpty(t, out)
	t.Logf("translated: %s", out)
}

func TestSitemapService_Integration(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	urls, err := lxhttp.NewSitemapService(nil).DiscoverURLs(ctx, "https://htmx.org", nil)
	require.NoError(t, err)
	assert.NotEmpty(t, urls)

	for _, u := range urls[:min(5, len(urls))] {
		t.Logf("  - %s", u)
	}
}
