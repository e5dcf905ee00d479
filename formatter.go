package leximorph

import "strings"

// FormatText renders an article as plain text for terminal display.
// Blocks are separated by blank lines; list items are bulleted and images
// appear as "[Image: alt]" markers.
func FormatText(a *Article) string {
	if a == nil {
		return ""
	}

	parts := make([]string, 0, len(a.Content)+1)

	header := a.Title
	if a.Author != "" {
		header += "\nBy " + a.Author
	}
	if a.PublishDate != "" {
		header += "\n" + a.PublishDate
	}
	parts = append(parts, header)

	for _, e := range a.Content {
		switch e := e.(type) {
		case Heading:
			parts = append(parts, strings.Repeat("#", e.Level)+" "+e.Text)
		case Paragraph:
			parts = append(parts, e.Text)
		case List:
			items := make([]string, len(e.Items))
			for i, item := range e.Items {
				items[i] = "• " + item
			}
			parts = append(parts, strings.Join(items, "\n"))
		case Image:
			parts = append(parts, "[Image: "+e.Alt+"]")
		}
	}

	return strings.Join(parts, "\n\n")
}
