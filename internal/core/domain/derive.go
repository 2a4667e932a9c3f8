package domain

import (
	"strings"
	"unicode"
)

// maxExcerptLen bounds the generated excerpt length in runes.
const maxExcerptLen = 160

// Slugify derives a URL-safe slug from a title.
// Non-alphanumeric runs collapse to a single hyphen; the result is
// lowercase with no leading or trailing hyphens.
func Slugify(title string) string {
	var b strings.Builder
	prevHyphen := true // suppress a leading hyphen
	for _, r := range strings.ToLower(title) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
			prevHyphen = false
			continue
		}
		if !prevHyphen {
			b.WriteByte('-')
			prevHyphen = true
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}

// Excerpt derives a short plain-text excerpt from content.
// Whitespace runs collapse to single spaces; the text is cut at the last
// word boundary before the length limit, with an ellipsis when truncated.
func Excerpt(content string) string {
	text := strings.Join(strings.Fields(content), " ")
	runes := []rune(text)
	if len(runes) <= maxExcerptLen {
		return text
	}
	cut := string(runes[:maxExcerptLen])
	if i := strings.LastIndex(cut, " "); i > 0 {
		cut = cut[:i]
	}
	return cut + "…"
}
