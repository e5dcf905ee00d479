package translate_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/asheesh-yadav/leximorph"
	"github.com/asheesh-yadav/leximorph/mock"
	"github.com/asheesh-yadav/leximorph/translate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"
)

// prefixTranslator tags every span with its target language.
func prefixTranslator() *mock.Translator {
	return &mock.Translator{
		TranslateSpanFn: func(_ context.Context, text, _, targetLang string) (string, error) {
			return "[" + targetLang + "]" + text, nil
		},
	}
}

func detector(lang string) *mock.LanguageDetector {
	return &mock.LanguageDetector{
		DetectLanguageFn: func(context.Context, string) (string, error) {
			return lang, nil
		},
	}
}

func sampleArticle() *leximorph.Article {
	return &leximorph.Article{
		Title:       "Titel",
		Author:      "Anna",
		PublishDate: "2024-01-01",
		Content: []leximorph.Element{
			leximorph.Heading{Level: 3, Text: "Abschnitt"},
			leximorph.Paragraph{Text: "Ein Absatz."},
			leximorph.List{Items: []string{"Erstens", "Zweitens"}},
			leximorph.Image{Src: "/bild.jpg", Alt: "Ein Bild"},
		},
	}
}

func TestService_TranslateArticle(t *testing.T) {
	t.Parallel()

	t.Run("translates every leaf and preserves structure", func(t *testing.T) {
		t.Parallel()

		svc := &translate.Service{Translator: prefixTranslator(), Detector: detector("de")}
		article := sampleArticle()
		before := article.Clone()

		got, err := svc.TranslateArticle(context.Background(), article, "Spanish", []string{" schnell ", "", "billig"})

		require.NoError(t, err)
		assert.Equal(t, "de", got.SourceLanguage)
		assert.Equal(t, "es", got.TargetLanguage)
		assert.Equal(t, &leximorph.Article{
			Title:       "[es]Titel",
			Author:      "Anna",
			PublishDate: "2024-01-01",
			Content: []leximorph.Element{
				leximorph.Heading{Level: 3, Text: "[es]Abschnitt"},
				leximorph.Paragraph{Text: "[es]Ein Absatz."},
				leximorph.List{Items: []string{"[es]Erstens", "[es]Zweitens"}},
				leximorph.Image{Src: "/bild.jpg", Alt: "[es]Ein Bild"},
			},
		}, got.Article)
		assert.Equal(t, []string{"[es]schnell", "[es]billig"}, got.TargetKeywords)
		assert.Equal(t, []string{"[de]schnell", "[de]billig"}, got.SourceKeywords)
		assert.Equal(t, before, article)
	})

	t.Run("keeps the original text of a failed span", func(t *testing.T) {
		t.Parallel()

		svc := &translate.Service{
			Translator: &mock.Translator{
				TranslateSpanFn: func(_ context.Context, text, _, _ string) (string, error) {
					if text == "Ein Absatz." {
						return "", leximorph.Errorf(leximorph.EUNAVAILABLE, "HTTP 503")
					}
					return strings.ToUpper(text), nil
				},
			},
			Detector: detector("de"),
		}

		got, err := svc.TranslateArticle(context.Background(), sampleArticle(), "en", nil)

		require.NoError(t, err)
		assert.Equal(t, "TITEL", got.Article.Title)
		assert.Equal(t, leximorph.Paragraph{Text: "Ein Absatz."}, got.Article.Content[1])
		assert.Equal(t, leximorph.Heading{Level: 3, Text: "ABSCHNITT"}, got.Article.Content[0])
		assert.Empty(t, got.TargetKeywords)
	})

	t.Run("defaults the source language when detection fails", func(t *testing.T) {
		t.Parallel()

		svc := &translate.Service{
			Translator: prefixTranslator(),
			Detector: &mock.LanguageDetector{
				DetectLanguageFn: func(context.Context, string) (string, error) {
					return "", errors.New("boom")
				},
			},
		}

		got, err := svc.TranslateArticle(context.Background(), sampleArticle(), "fr", []string{"mot"})

		require.NoError(t, err)
		assert.Equal(t, "en", got.SourceLanguage)
		assert.Equal(t, []string{"[en]mot"}, got.SourceKeywords)
	})

	t.Run("translates long paragraphs in chunks", func(t *testing.T) {
		t.Parallel()

		var calls atomic.Int32
		svc := &translate.Service{
			Translator: &mock.Translator{
				TranslateSpanFn: func(_ context.Context, text, _, _ string) (string, error) {
					calls.Add(1)
					return text, nil
				},
			},
			Detector:  detector("en"),
			ChunkSize: 20,
		}
		article := &leximorph.Article{
			Title:   "T",
			Content: []leximorph.Element{leximorph.Paragraph{Text: "First sentence. Second sentence. Third one."}},
		}

		got, err := svc.TranslateArticle(context.Background(), article, "de", nil)

		require.NoError(t, err)
		assert.Equal(t, leximorph.Paragraph{Text: "First sentence. Second sentence. Third one."}, got.Article.Content[0])
		assert.Equal(t, int32(4), calls.Load())
	})

	t.Run("stops when the context is canceled", func(t *testing.T) {
		t.Parallel()

		svc := &translate.Service{
			Translator: prefixTranslator(),
			Detector:   detector("de"),
			Limiter:    rate.NewLimiter(rate.Every(time.Hour), 1),
		}
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := svc.TranslateArticle(ctx, sampleArticle(), "es", nil)

		require.ErrorIs(t, err, context.Canceled)
	})

	t.Run("rejects an invalid article", func(t *testing.T) {
		t.Parallel()

		svc := &translate.Service{Translator: prefixTranslator()}

		_, err := svc.TranslateArticle(context.Background(), &leximorph.Article{Title: "Empty"}, "es", nil)

		assert.Equal(t, leximorph.EINVALID, leximorph.ErrorCode(err))
	})
}

func TestService_TranslateText(t *testing.T) {
	t.Parallel()

	svc := &translate.Service{Translator: prefixTranslator()}

	got, err := svc.TranslateText(context.Background(), "Hola", "English (American)")

	require.NoError(t, err)
	assert.Equal(t, "[en]Hola", got)
}

// Not parallel: replaces the process-wide default logger.
func TestService_NilLoggerDiscardsFailures(t *testing.T) {
	var buf bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	t.Cleanup(func() { slog.SetDefault(prev) })

	svc := &translate.Service{
		Translator: &mock.Translator{
			TranslateSpanFn: func(context.Context, string, string, string) (string, error) {
				return "", leximorph.Errorf(leximorph.EUNAVAILABLE, "HTTP 503")
			},
		},
		Detector: &mock.LanguageDetector{
			DetectLanguageFn: func(context.Context, string) (string, error) {
				return "", errors.New("detector down")
			},
		},
	}

	got, err := svc.TranslateArticle(context.Background(), sampleArticle(), "en", nil)

	require.NoError(t, err)
	assert.Equal(t, "Titel", got.Article.Title)
	assert.Empty(t, buf.String())
}
