package goquery

import (
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	"github.com/asheesh-yadav/leximorph"
)

// Length bounds applied by the content parsers. Upper bounds are exclusive.
const (
	minDivParagraphLen      = 20
	minParagraphLen         = 5
	maxParagraphLen         = 5000
	maxHeadingLen           = 300
	minListItemLen          = 6
	maxListItemLen          = 1000
	maxListItems            = 100
	listKeyItems            = 3
	linkDenseMaxTextLen     = 500
	linkDenseMaxLinks       = 8
	linkHeavyMaxTextLen     = 100
	linkHeavyMaxLinks       = 3
	imageKeyPrefix          = "\x00img:"
	titleAncestorWalkLevels = 6
)

// blockTags are the children that make a div a container rather than a leaf.
var blockTags = map[string]bool{
	"div": true, "p": true, "h1": true, "h2": true, "h3": true, "h4": true,
	"h5": true, "h6": true, "ul": true, "ol": true, "article": true, "section": true,
}

// paragraphBlockTags are descendants that disqualify a <p> as mis-marked.
var paragraphBlockTags = map[string]bool{
	"div": true, "section": true, "article": true, "h1": true, "h2": true,
	"h3": true, "h4": true, "h5": true, "h6": true,
}

// textOf returns the trimmed text content of the selection.
func textOf(sel *goquery.Selection) string {
	return strings.TrimSpace(sel.Text())
}

// runeLen returns the length of s in characters.
func runeLen(s string) int {
	return utf8.RuneCountInString(s)
}

// containsAny reports whether s contains any of the needles.
func containsAny(s string, needles []string) bool {
	for _, n := range needles {
		if strings.Contains(s, n) {
			return true
		}
	}
	return false
}

// seenSet records the normalized keys of emitted content. It is local to a
// single extraction call.
type seenSet map[string]struct{}

// newSeenSet returns a set pre-seeded with the title key so the headline is
// never repeated as body content.
func newSeenSet(title string) seenSet {
	s := seenSet{}
	s.add(leximorph.NormalizeKey(title))
	return s
}

func (s seenSet) has(key string) bool {
	_, ok := s[key]
	return ok
}

func (s seenSet) add(key string) {
	s[key] = struct{}{}
}
