package mock

import (
	"context"

	"github.com/asheesh-yadav/leximorph"
)

var (
	_ leximorph.Translator        = (*Translator)(nil)
	_ leximorph.LanguageDetector  = (*LanguageDetector)(nil)
	_ leximorph.ArticleTranslator = (*ArticleTranslator)(nil)
	_ leximorph.FileTranslator    = (*FileTranslator)(nil)
)

// Translator is a mock implementation of leximorph.Translator.
type Translator struct {
	TranslateSpanFn func(ctx context.Context, text, sourceLang, targetLang string) (string, error)
}

func (t *Translator) TranslateSpan(ctx context.Context, text, sourceLang, targetLang string) (string, error) {
	return t.TranslateSpanFn(ctx, text, sourceLang, targetLang)
}

// LanguageDetector is a mock implementation of leximorph.LanguageDetector.
type LanguageDetector struct {
	DetectLanguageFn func(ctx context.Context, text string) (string, error)
}

func (d *LanguageDetector) DetectLanguage(ctx context.Context, text string) (string, error) {
	return d.DetectLanguageFn(ctx, text)
}

// ArticleTranslator is a mock implementation of leximorph.ArticleTranslator.
type ArticleTranslator struct {
	TranslateArticleFn func(ctx context.Context, article *leximorph.Article, targetLang string, keywords []string) (*leximorph.Translation, error)
}

func (t *ArticleTranslator) TranslateArticle(ctx context.Context, article *leximorph.Article, targetLang string, keywords []string) (*leximorph.Translation, error) {
	return t.TranslateArticleFn(ctx, article, targetLang, keywords)
}

// FileTranslator is a mock implementation of leximorph.FileTranslator.
type FileTranslator struct {
	TranslateTextFn func(ctx context.Context, text, targetLang string) (string, error)
	TranslateFileFn func(ctx context.Context, name string, data []byte, targetLang string) ([]byte, error)
}

func (t *FileTranslator) TranslateText(ctx context.Context, text, targetLang string) (string, error) {
	return t.TranslateTextFn(ctx, text, targetLang)
}

func (t *FileTranslator) TranslateFile(ctx context.Context, name string, data []byte, targetLang string) ([]byte, error) {
	return t.TranslateFileFn(ctx, name, data, targetLang)
}
