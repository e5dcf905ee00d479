// Package translate orchestrates machine translation of whole articles and
// office documents on top of a span Translator.
package translate

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// DefaultChunkSize is the maximum number of characters sent per request.
const DefaultChunkSize = 500

// sentenceRE matches a sentence with its terminal punctuation, or the
// unterminated tail of the text.
var sentenceRE = regexp.MustCompile(`[^.!?]+(?:[.!?]+|$)`)

// SplitChunks splits text into chunks of at most max characters. Chunks
// break at sentence boundaries where possible and at spaces otherwise. A
// single word longer than max becomes its own chunk. Text that already fits
// is returned as the only chunk.
func SplitChunks(text string, max int) []string {
	if max <= 0 {
		max = DefaultChunkSize
	}
	if utf8.RuneCountInString(text) <= max {
		return []string{text}
	}

	sentences := sentenceRE.FindAllString(text, -1)
	if len(sentences) == 0 {
		sentences = []string{text}
	}

	var chunks []string
	var current string
	flush := func() {
		if c := strings.TrimSpace(current); c != "" {
			chunks = append(chunks, c)
		}
		current = ""
	}

	for _, sentence := range sentences {
		if utf8.RuneCountInString(current+sentence) <= max {
			current += sentence
			continue
		}
		flush()
		if utf8.RuneCountInString(sentence) <= max {
			current = sentence
			continue
		}
		for _, word := range strings.Split(sentence, " ") {
			if current == "" {
				current = word
				continue
			}
			if utf8.RuneCountInString(current+" "+word) <= max {
				current += " " + word
				continue
			}
			flush()
			current = word
		}
	}
	flush()

	return chunks
}
