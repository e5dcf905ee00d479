package goquery

import (
	"math"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Score weights.
const (
	paragraphTextWeight = 0.001
	paragraphWeight     = 5
	headingWeight       = 2
	titleHitBonus       = 20
	boilerplatePenalty  = 50
	linkDensePenalty    = 10
	linkDenseRatio      = 3
)

// containerSelectors are semantic content containers, in priority order.
var containerSelectors = []string{
	"article", `[role="main"]`, "main", ".article-content", ".post-content",
	".entry-content", ".content", "#content",
}

// Locate returns the element most likely to hold the article body. It tries
// semantic containers first, then the best-scoring ancestor of the first
// <h1>, then the best-scoring block in the document, then <body>. The
// selection is never empty.
func Locate(doc *goquery.Document) *goquery.Selection {
	for _, selector := range containerSelectors {
		if sel := doc.Find(selector).First(); sel.Length() > 0 {
			return sel
		}
	}

	if h1 := doc.Find("h1").First(); h1.Length() > 0 {
		title := textOf(h1)
		var best *goquery.Selection
		bestScore := math.Inf(-1)
		node := h1
		for i := 0; i < titleAncestorWalkLevels && node.Length() > 0; i++ {
			if s := Score(node, title); s > bestScore {
				best, bestScore = node, s
			}
			node = node.Parent()
		}
		if best != nil {
			return best
		}
	}

	var best *goquery.Selection
	bestScore := math.Inf(-1)
	doc.Find("article, main, section, div").Each(func(_ int, sel *goquery.Selection) {
		if s := Score(sel, ""); s > bestScore {
			best, bestScore = sel, s
		}
	})
	if best != nil {
		return best
	}

	if body := doc.Find("body").First(); body.Length() > 0 {
		return body
	}
	return doc.Selection
}

// Score rates how likely sel is to be the main article container. Paragraph
// text and count, headings and the presence of title dominate; boilerplate
// phrases and link-heavy markup are penalized. The result can be negative.
func Score(sel *goquery.Selection, title string) float64 {
	paragraphs := sel.Find("p")
	var textLen int
	paragraphs.Each(func(_ int, p *goquery.Selection) {
		textLen += runeLen(textOf(p))
	})
	pCount := paragraphs.Length()
	headings := sel.Find("h1, h2, h3").Length()
	links := sel.Find("a").Length()
	text := strings.ToLower(sel.Text())

	score := paragraphTextWeight*float64(textLen) +
		paragraphWeight*float64(pCount) +
		headingWeight*float64(headings)
	if title = strings.ToLower(strings.TrimSpace(title)); title != "" && strings.Contains(text, title) {
		score += titleHitBonus
	}
	if containsAny(text, scorePenaltyPhrases) {
		score -= boilerplatePenalty
	}
	if links > pCount*linkDenseRatio {
		score -= linkDensePenalty
	}
	return score
}
