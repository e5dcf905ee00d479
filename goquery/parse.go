package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/asheesh-yadav/leximorph"
)

// contentSelector lists the elements visited by the primary parser, which
// returns them in document order.
const contentSelector = "h1, h2, h3, h4, h5, h6, p, div, ul, ol, img"

// fallbackSelector is contentSelector without images.
const fallbackSelector = "h1, h2, h3, h4, h5, h6, p, div, ul, ol"

// parser accumulates content elements for one extraction call.
type parser struct {
	title     string // lower-cased, trimmed
	seen      seenSet
	minDivLen int
	content   []leximorph.Element
}

func newParser(title string, minDivLen int) *parser {
	return &parser{
		title:     strings.ToLower(strings.TrimSpace(title)),
		seen:      newSeenSet(title),
		minDivLen: minDivLen,
	}
}

// parseContent walks the elements under container in document order and
// converts the ones that pass the filters into typed content.
func parseContent(container *goquery.Selection, title string) []leximorph.Element {
	p := newParser(title, minDivParagraphLen)
	container.Find(contentSelector).Each(func(_ int, sel *goquery.Selection) {
		p.visit(sel)
	})
	return p.content
}

// fallbackContent walks the whole document for the most recall: every tag
// shares one minimum length, headings and paragraphs are not checked
// against the title or nested blocks, and lists keep every item. Images are
// ignored and only leaf divs count.
func fallbackContent(doc *goquery.Document, title string) []leximorph.Element {
	p := newParser(title, minParagraphLen)
	doc.Find(fallbackSelector).Each(func(_ int, sel *goquery.Selection) {
		p.visitLoose(sel)
	})
	return p.content
}

func (p *parser) emit(key string, e leximorph.Element) {
	p.seen.add(key)
	p.content = append(p.content, e)
}

func (p *parser) visit(sel *goquery.Selection) {
	if shouldSkip(sel) {
		return
	}

	tag := goquery.NodeName(sel)
	switch tag {
	case "img":
		p.visitImage(sel)
		return
	case "div":
		p.visitDiv(sel)
		return
	}

	text := textOf(sel)
	if text == "" {
		return
	}
	key := leximorph.NormalizeKey(text)
	if p.seen.has(key) || strings.ToLower(text) == p.title {
		return
	}

	switch tag {
	case "h1":
		if runeLen(text) <= maxHeadingLen && !strings.Contains(strings.ToLower(text), p.title) {
			p.emit(key, leximorph.Heading{Level: 2, Text: text})
		}
	case "h2":
		if runeLen(text) <= maxHeadingLen {
			p.emit(key, leximorph.Heading{Level: 2, Text: text})
		}
	case "h3":
		if runeLen(text) <= maxHeadingLen {
			p.emit(key, leximorph.Heading{Level: 3, Text: text})
		}
	case "h4", "h5", "h6":
		if runeLen(text) <= maxHeadingLen {
			p.emit(key, leximorph.Heading{Level: 4, Text: text})
		}
	case "p":
		if n := runeLen(text); n >= minParagraphLen && n < maxParagraphLen && !hasDescendant(sel, paragraphBlockTags) {
			p.emit(key, leximorph.Paragraph{Text: text})
		}
	case "ul", "ol":
		items := listItems(sel)
		if len(items) == 0 || len(items) >= maxListItems {
			return
		}
		listKey := leximorph.NormalizeKey(strings.Join(items[:min(listKeyItems, len(items))], "|"))
		if p.seen.has(listKey) {
			return
		}
		p.seen.add(key)
		p.emit(listKey, leximorph.List{Items: items})
	}
}

// visitLoose applies the fallback rules to one element. Its text is marked
// seen even when the element is then dropped for length.
func (p *parser) visitLoose(sel *goquery.Selection) {
	if shouldSkip(sel) {
		return
	}
	tag := goquery.NodeName(sel)
	if tag == "div" && hasChild(sel, blockTags) {
		return
	}

	text := textOf(sel)
	n := runeLen(text)
	if n < minParagraphLen {
		return
	}
	key := leximorph.NormalizeKey(text)
	if p.seen.has(key) || strings.ToLower(text) == p.title {
		return
	}
	p.seen.add(key)

	var e leximorph.Element
	switch tag {
	case "h1", "h2":
		if n <= maxHeadingLen {
			e = leximorph.Heading{Level: 2, Text: text}
		}
	case "h3":
		if n <= maxHeadingLen {
			e = leximorph.Heading{Level: 3, Text: text}
		}
	case "h4", "h5", "h6":
		if n <= maxHeadingLen {
			e = leximorph.Heading{Level: 4, Text: text}
		}
	case "p", "div":
		if n < maxParagraphLen {
			e = leximorph.Paragraph{Text: text}
		}
	case "ul", "ol":
		if items := itemTexts(sel, false); len(items) > 0 && len(items) < maxListItems {
			e = leximorph.List{Items: items}
		}
	}
	if e != nil {
		p.content = append(p.content, e)
	}
}

// visitDiv emits a leaf div, one without block-level children, as a paragraph.
func (p *parser) visitDiv(sel *goquery.Selection) {
	if hasChild(sel, blockTags) {
		return
	}
	text := textOf(sel)
	if n := runeLen(text); n < p.minDivLen || n >= maxParagraphLen {
		return
	}
	key := leximorph.NormalizeKey(text)
	if p.seen.has(key) || strings.ToLower(text) == p.title {
		return
	}
	p.emit(key, leximorph.Paragraph{Text: text})
}

func (p *parser) visitImage(sel *goquery.Selection) {
	src := strings.TrimSpace(sel.AttrOr("src", ""))
	if src == "" || containsAny(strings.ToLower(src), excludedImageTokens) {
		return
	}
	key := imageKeyPrefix + src
	if p.seen.has(key) {
		return
	}
	alt := strings.TrimSpace(sel.AttrOr("alt", ""))
	if alt == "" {
		alt = leximorph.DefaultImageAlt
	}
	p.emit(key, leximorph.Image{Src: src, Alt: alt})
}

// listItems returns the texts of every <li> under a list, nested ones
// included. Text of a nested list is removed from its parent item.
func listItems(list *goquery.Selection) []string {
	return itemTexts(list, true)
}

func itemTexts(list *goquery.Selection, stripNested bool) []string {
	var items []string
	list.Find("li").Each(func(_ int, li *goquery.Selection) {
		text := li.Text()
		if nested := li.Find("ul, ol").First(); stripNested && nested.Length() > 0 {
			text = strings.Replace(text, nested.Text(), "", 1)
		}
		text = strings.TrimSpace(text)
		if n := runeLen(text); n >= minListItemLen && n < maxListItemLen {
			items = append(items, text)
		}
	})
	return items
}

// shouldSkip reports whether sel is boilerplate: its class or id names a
// chrome component, its text carries a boilerplate phrase, or it is mostly
// links.
func shouldSkip(sel *goquery.Selection) bool {
	class := strings.ToLower(sel.AttrOr("class", ""))
	id := strings.ToLower(sel.AttrOr("id", ""))
	if containsAny(class, skipTokens) || containsAny(id, skipTokens) {
		return true
	}

	text := strings.ToLower(textOf(sel))
	if containsAny(text, skipPhrases) {
		return true
	}

	n := runeLen(text)
	links := sel.Find("a").Length()
	return (links > linkDenseMaxLinks && n < linkDenseMaxTextLen) ||
		(n < linkHeavyMaxTextLen && links > linkHeavyMaxLinks)
}

// hasChild reports whether any direct child element has one of tags.
func hasChild(sel *goquery.Selection, tags map[string]bool) bool {
	found := false
	sel.Children().EachWithBreak(func(_ int, c *goquery.Selection) bool {
		found = tags[goquery.NodeName(c)]
		return !found
	})
	return found
}

// hasDescendant reports whether any descendant element has one of tags.
func hasDescendant(sel *goquery.Selection, tags map[string]bool) bool {
	found := false
	sel.Find("*").EachWithBreak(func(_ int, c *goquery.Selection) bool {
		found = tags[goquery.NodeName(c)]
		return !found
	})
	return found
}
