package leximorph

import (
	"strconv"
	"strings"
	"unicode"
)

// Section represents a heading in an article outline.
type Section struct {
	Level  int    `json:"level"`
	Title  string `json:"title"`
	Anchor string `json:"anchor"`
}

// Outline returns the article title (level 1) followed by every heading in
// reading order. It generates URL-safe anchors and handles duplicates with
// numeric suffixes.
func Outline(a *Article) []Section {
	if a == nil {
		return nil
	}

	var sections []Section
	anchorCounts := make(map[string]int)

	add := func(level int, title string) {
		baseAnchor := generateAnchor(title)

		// Handle duplicates
		anchor := baseAnchor
		if count, exists := anchorCounts[baseAnchor]; exists {
			anchor = baseAnchor + "-" + strconv.Itoa(count)
			anchorCounts[baseAnchor]++
		} else {
			anchorCounts[baseAnchor] = 1
		}

		sections = append(sections, Section{
			Level:  level,
			Title:  title,
			Anchor: anchor,
		})
	}

	if title := strings.TrimSpace(a.Title); title != "" {
		add(1, title)
	}
	for _, e := range a.Content {
		if h, ok := e.(Heading); ok {
			add(h.Level, strings.TrimSpace(h.Text))
		}
	}

	return sections
}

// generateAnchor creates a URL-safe anchor from a title.
// Converts to lowercase, replaces spaces with hyphens, removes special chars.
func generateAnchor(title string) string {
	var sb strings.Builder
	prevHyphen := false

	for _, r := range strings.ToLower(title) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			sb.WriteRune(r)
			prevHyphen = false
		} else if unicode.IsSpace(r) || r == '-' {
			if !prevHyphen && sb.Len() > 0 {
				sb.WriteRune('-')
				prevHyphen = true
			}
		}
	}

	result := sb.String()
	// Trim trailing hyphen
	return strings.TrimSuffix(result, "-")
}
