package leximorph

import (
	"encoding/json"
	"strconv"
	"strings"
)

// Literal fallbacks used when extraction finds nothing better.
const (
	UntitledTitle   = "Untitled Article"
	DefaultImageAlt = "Image"
	PlaceholderText = "Unable to extract content from this URL. The page structure may not be supported."
)

// NormalizedKeyLength is the number of runes kept by NormalizeKey.
const NormalizedKeyLength = 100

// Article is the structured result of extracting a web page.
// Content is in reading order and is never empty in extractor output.
type Article struct {
	Title       string
	Author      string // empty when absent
	PublishDate string // raw string, empty when absent
	Content     []Element
}

// Validate returns an error if the article cannot be exported or stored.
func (a *Article) Validate() error {
	if a == nil {
		return Errorf(EINVALID, "article required")
	}
	if strings.TrimSpace(a.Title) == "" {
		return Errorf(EINVALID, "article title required")
	}
	if len(a.Content) == 0 {
		return Errorf(EINVALID, "article content required")
	}
	return nil
}

// IsPlaceholder reports whether the article content is only the
// "extraction failed" placeholder paragraph.
func (a *Article) IsPlaceholder() bool {
	if a == nil || len(a.Content) != 1 {
		return false
	}
	p, ok := a.Content[0].(Paragraph)
	return ok && p.Text == PlaceholderText
}

// Clone returns a deep copy of the article.
func (a *Article) Clone() *Article {
	if a == nil {
		return nil
	}
	other := *a
	other.Content = make([]Element, len(a.Content))
	for i, e := range a.Content {
		if l, ok := e.(List); ok {
			e = List{Items: append([]string(nil), l.Items...)}
		}
		other.Content[i] = e
	}
	return &other
}

// Kind identifies the variant of an Element.
type Kind string

// Element kinds.
const (
	KindHeading   Kind = "heading"
	KindParagraph Kind = "paragraph"
	KindList      Kind = "list"
	KindImage     Kind = "image"
)

// Element is one block of article content. The set of implementations is
// closed: Heading, Paragraph, List and Image.
type Element interface {
	Kind() Kind
	element()
}

// Heading is a section heading. Level is 2, 3 or 4; level 1 belongs to the title.
type Heading struct {
	Level int
	Text  string
}

// Paragraph is a block of running text.
type Paragraph struct {
	Text string
}

// List is an ordered sequence of item texts.
type List struct {
	Items []string
}

// Image is an embedded picture.
type Image struct {
	Src string
	Alt string
}

func (Heading) Kind() Kind   { return KindHeading }
func (Paragraph) Kind() Kind { return KindParagraph }
func (List) Kind() Kind      { return KindList }
func (Image) Kind() Kind     { return KindImage }

func (Heading) element()   {}
func (Paragraph) element() {}
func (List) element()      {}
func (Image) element()     {}

// NormalizeKey returns the de-duplication key for a text: lower-cased,
// trimmed and cut to the first NormalizedKeyLength runes.
func NormalizeKey(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	n := 0
	for i := range s {
		if n == NormalizedKeyLength {
			return s[:i]
		}
		n++
	}
	return s
}

// wireArticle is the JSON shape shared with the web client.
type wireArticle struct {
	Title       string        `json:"title"`
	Author      string        `json:"author,omitempty"`
	PublishDate string        `json:"publishDate,omitempty"`
	Content     []wireElement `json:"content"`
}

type wireElement struct {
	Type    string   `json:"type"`
	Content string   `json:"content"`
	Level   int      `json:"level,omitempty"`
	Items   []string `json:"items,omitempty"`
	Alt     string   `json:"alt,omitempty"`
}

// MarshalJSON encodes the article in the client wire format, where each
// element carries a "type" discriminator such as "heading2" or "paragraph".
func (a Article) MarshalJSON() ([]byte, error) {
	w := wireArticle{
		Title:       a.Title,
		Author:      a.Author,
		PublishDate: a.PublishDate,
		Content:     make([]wireElement, 0, len(a.Content)),
	}
	for _, e := range a.Content {
		switch e := e.(type) {
		case Heading:
			w.Content = append(w.Content, wireElement{
				Type:    "heading" + strconv.Itoa(e.Level),
				Content: e.Text,
				Level:   e.Level,
			})
		case Paragraph:
			w.Content = append(w.Content, wireElement{Type: "paragraph", Content: e.Text})
		case List:
			w.Content = append(w.Content, wireElement{Type: "list", Items: e.Items})
		case Image:
			w.Content = append(w.Content, wireElement{Type: "image", Content: e.Src, Alt: e.Alt})
		}
	}
	return json.Marshal(w)
}

// UnmarshalJSON decodes the client wire format.
func (a *Article) UnmarshalJSON(data []byte) error {
	var w wireArticle
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}

	content := make([]Element, 0, len(w.Content))
	for _, e := range w.Content {
		switch {
		case strings.HasPrefix(e.Type, "heading"):
			level := e.Level
			if n, err := strconv.Atoi(strings.TrimPrefix(e.Type, "heading")); err == nil {
				level = n
			}
			if level < 1 || level > 4 {
				return Errorf(EINVALID, "invalid heading level %d", level)
			}
			content = append(content, Heading{Level: level, Text: e.Content})
		case e.Type == "paragraph":
			content = append(content, Paragraph{Text: e.Content})
		case e.Type == "list":
			content = append(content, List{Items: e.Items})
		case e.Type == "image":
			alt := e.Alt
			if alt == "" {
				alt = DefaultImageAlt
			}
			content = append(content, Image{Src: e.Content, Alt: alt})
		default:
			return Errorf(EINVALID, "unknown content element type %q", e.Type)
		}
	}

	*a = Article{
		Title:       w.Title,
		Author:      w.Author,
		PublishDate: w.PublishDate,
		Content:     content,
	}
	return nil
}
