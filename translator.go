package leximorph

import "context"

// AutoLanguage asks a Translator to detect the source language itself.
const AutoLanguage = "auto"

// Translator translates spans of plain text.
type Translator interface {
	// TranslateSpan translates text from sourceLang to targetLang.
	// Both are BCP-47 style codes; sourceLang may be AutoLanguage.
	TranslateSpan(ctx context.Context, text, sourceLang, targetLang string) (string, error)
}

// LanguageDetector identifies the language of a text.
type LanguageDetector interface {
	// DetectLanguage returns the language code of text.
	DetectLanguage(ctx context.Context, text string) (string, error)
}

// Translation is the result of translating an article.
type Translation struct {
	// Article is a new article with every textual leaf translated.
	// It has exactly the same element structure as the source article.
	Article *Article `json:"translatedArticle"`

	// SourceLanguage is the detected language of the source article.
	SourceLanguage string `json:"sourceLanguage"`

	// TargetLanguage is the language the article was translated into.
	TargetLanguage string `json:"targetLanguage"`

	// TargetKeywords are the keywords translated into TargetLanguage.
	TargetKeywords []string `json:"translatedKeywords"`

	// SourceKeywords are the keywords translated into SourceLanguage, so they
	// can be highlighted in the original article as well.
	SourceKeywords []string `json:"sourceLanguageKeywords"`
}

// ArticleTranslator translates whole articles and keyword lists.
type ArticleTranslator interface {
	TranslateArticle(ctx context.Context, article *Article, targetLang string, keywords []string) (*Translation, error)
}

// FileTranslator translates free text and whole documents such as Office
// files and subtitles.
type FileTranslator interface {
	TranslateText(ctx context.Context, text, targetLang string) (string, error)

	// TranslateFile returns the translated document in the same format as
	// data. The format is chosen by the extension of name.
	TranslateFile(ctx context.Context, name string, data []byte, targetLang string) ([]byte, error)
}
