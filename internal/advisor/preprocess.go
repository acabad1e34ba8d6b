package advisor

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// preprocess strips markup, collapses whitespace and cuts the text to max
// runes, appending "..." when it was longer.
func preprocess(s string, max int) string {
	text := s
	if strings.ContainsAny(s, "<&") {
		if doc, err := goquery.NewDocumentFromReader(strings.NewReader(s)); err == nil {
			text = doc.Text()
		}
	}

	text = strings.Join(strings.Fields(text), " ")
	return truncateRunes(text, max, "...")
}

func truncateRunes(s string, max int, suffix string) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max]) + suffix
}
