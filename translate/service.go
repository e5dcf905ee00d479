package translate

import (
	"context"
	"log/slog"
	"strings"

	"github.com/asheesh-yadav/leximorph"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"
)

// DefaultConcurrency is the number of content elements translated at once.
const DefaultConcurrency = 3

// Ensure Service implements the translation interfaces at compile time.
var (
	_ leximorph.ArticleTranslator = (*Service)(nil)
	_ leximorph.FileTranslator    = (*Service)(nil)
)

// Service translates articles span by span. A span that fails to translate
// keeps its original text so one bad request never loses the article.
type Service struct {
	Translator leximorph.Translator
	Detector   leximorph.LanguageDetector

	// Limiter paces span requests. Nil means unpaced.
	Limiter *rate.Limiter

	// Concurrency bounds parallel element translation. Defaults to
	// DefaultConcurrency.
	Concurrency int

	// ChunkSize bounds each request. Defaults to DefaultChunkSize.
	ChunkSize int

	// Logger receives span failures. Nil discards them.
	Logger *slog.Logger
}

// TranslateArticle returns a translated copy of article. The source language
// is detected from the title. Every textual leaf is translated into
// targetLang while the element structure, author, date and image sources are
// preserved. Keywords are translated into both the target and the source
// language. The input article is not modified.
func (s *Service) TranslateArticle(ctx context.Context, article *leximorph.Article, targetLang string, keywords []string) (*leximorph.Translation, error) {
	if err := article.Validate(); err != nil {
		return nil, err
	}
	target := ResolveLanguage(targetLang)
	source := s.detect(ctx, article.Title)

	out := article.Clone()

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.concurrency())
	g.Go(func() error {
		title, err := s.text(gctx, article.Title, leximorph.AutoLanguage, target)
		out.Title = title
		return err
	})
	for i, e := range article.Content {
		g.Go(func() error {
			translated, err := s.element(gctx, e, target)
			out.Content[i] = translated
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	t := &leximorph.Translation{
		Article:        out,
		SourceLanguage: source,
		TargetLanguage: target,
		TargetKeywords: []string{},
		SourceKeywords: []string{},
	}
	for _, kw := range keywords {
		kw = strings.TrimSpace(kw)
		if kw == "" {
			continue
		}
		toTarget, err := s.text(ctx, kw, leximorph.AutoLanguage, target)
		if err != nil {
			return nil, err
		}
		toSource, err := s.text(ctx, kw, leximorph.AutoLanguage, source)
		if err != nil {
			return nil, err
		}
		t.TargetKeywords = append(t.TargetKeywords, toTarget)
		t.SourceKeywords = append(t.SourceKeywords, toSource)
	}
	return t, nil
}

// TranslateText translates free text, such as a pasted passage, into
// targetLang.
func (s *Service) TranslateText(ctx context.Context, text, targetLang string) (string, error) {
	return s.text(ctx, text, leximorph.AutoLanguage, ResolveLanguage(targetLang))
}

func (s *Service) element(ctx context.Context, e leximorph.Element, target string) (leximorph.Element, error) {
	switch e := e.(type) {
	case leximorph.Heading:
		text, err := s.text(ctx, e.Text, leximorph.AutoLanguage, target)
		return leximorph.Heading{Level: e.Level, Text: text}, err
	case leximorph.Paragraph:
		text, err := s.text(ctx, e.Text, leximorph.AutoLanguage, target)
		return leximorph.Paragraph{Text: text}, err
	case leximorph.List:
		items := make([]string, len(e.Items))
		for i, item := range e.Items {
			text, err := s.text(ctx, item, leximorph.AutoLanguage, target)
			if err != nil {
				return nil, err
			}
			items[i] = text
		}
		return leximorph.List{Items: items}, nil
	case leximorph.Image:
		alt, err := s.text(ctx, e.Alt, leximorph.AutoLanguage, target)
		return leximorph.Image{Src: e.Src, Alt: alt}, err
	}
	return e, nil
}

// text translates text chunk by chunk. Failed chunks keep their original
// text; only context errors are returned.
func (s *Service) text(ctx context.Context, text, source, target string) (string, error) {
	if strings.TrimSpace(text) == "" {
		return text, nil
	}

	chunks := SplitChunks(text, s.ChunkSize)
	for i, chunk := range chunks {
		if s.Limiter != nil {
			if err := s.Limiter.Wait(ctx); err != nil {
				return "", err
			}
		}
		translated, err := s.Translator.TranslateSpan(ctx, chunk, source, target)
		if err != nil {
			if ctx.Err() != nil {
				return "", ctx.Err()
			}
			s.logger().Warn("span translation failed, keeping original", "target", target, "chars", len(chunk), "error", err)
			continue
		}
		chunks[i] = translated
	}
	return strings.Join(chunks, " "), nil
}

// detect returns the language of text, defaulting to DefaultLanguage.
func (s *Service) detect(ctx context.Context, text string) string {
	if s.Detector == nil {
		return DefaultLanguage
	}
	lang, err := s.Detector.DetectLanguage(ctx, text)
	if err != nil || lang == "" {
		if err != nil {
			s.logger().Warn("language detection failed", "error", err)
		}
		return DefaultLanguage
	}
	return lang
}

func (s *Service) concurrency() int {
	if s.Concurrency <= 0 {
		return DefaultConcurrency
	}
	return s.Concurrency
}

func (s *Service) logger() *slog.Logger {
	if s.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return s.Logger
}
