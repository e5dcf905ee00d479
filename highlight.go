package leximorph

import (
	"regexp"
	"sort"
	"strings"
)

// Segment is a run of text that either matches a keyword or does not.
type Segment struct {
	Text  string
	Match bool
}

// Highlight splits text into segments, marking case-insensitive keyword
// occurrences. Blank keywords are ignored. When keywords overlap the longest
// one wins. Concatenating the segment texts yields the input text.
func Highlight(text string, keywords []string) []Segment {
	re := keywordPattern(keywords)
	if re == nil || text == "" {
		return []Segment{{Text: text}}
	}

	var segments []Segment
	pos := 0
	for _, m := range re.FindAllStringIndex(text, -1) {
		if m[0] > pos {
			segments = append(segments, Segment{Text: text[pos:m[0]]})
		}
		segments = append(segments, Segment{Text: text[m[0]:m[1]], Match: true})
		pos = m[1]
	}
	if pos < len(text) {
		segments = append(segments, Segment{Text: text[pos:]})
	}
	return segments
}

// keywordPattern compiles a case-insensitive alternation of the keywords.
// Returns nil when there is nothing to match.
func keywordPattern(keywords []string) *regexp.Regexp {
	quoted := make([]string, 0, len(keywords))
	for _, k := range keywords {
		if k = strings.TrimSpace(k); k != "" {
			quoted = append(quoted, regexp.QuoteMeta(k))
		}
	}
	if len(quoted) == 0 {
		return nil
	}
	sort.SliceStable(quoted, func(i, j int) bool { return len(quoted[i]) > len(quoted[j]) })
	return regexp.MustCompile("(?i)(" + strings.Join(quoted, "|") + ")")
}
