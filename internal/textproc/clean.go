// Package textproc cleans raw document text and splits it into sentence-aligned chunks.
package textproc

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	newlinesRe   = regexp.MustCompile(`\n+`)
	horizontalRe = regexp.MustCompile(`[ \t\r\f\v]+`)
)

// Clean replaces every control, format and private-use character with a space,
// collapses newline runs and horizontal whitespace, and trims the result.
// Newlines are control characters too, so they end up as spaces.
func Clean(text string) string {
	text = strings.Map(func(r rune) rune {
		if unicode.In(r, unicode.C) {
			return ' '
		}
		return r
	}, text)

	text = newlinesRe.ReplaceAllString(text, "\n")
	text = horizontalRe.ReplaceAllString(text, " ")

	return strings.TrimSpace(text)
}

// RemoveDiacritics decomposes the text and drops combining marks ("café" -> "cafe").
func RemoveDiacritics(text string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)))
	out, _, err := transform.String(t, text)
	if err != nil {
		return text
	}
	return out
}

// LowerPreserving lowercases text rune by rune, keeping any rune whose lowercase
// form has a different UTF-8 width. Byte offsets found in the result are valid
// offsets into the input.
func LowerPreserving(text string) string {
	return strings.Map(func(r rune) rune {
		lower := unicode.ToLower(r)
		if utf8.RuneLen(lower) != utf8.RuneLen(r) {
			return r
		}
		return lower
	}, text)
}

// ContextAround returns up to size runes on each side of the [start,end) byte span.
func ContextAround(text string, start, end, size int) string {
	if start < 0 {
		start = 0
	}
	if end > len(text) {
		end = len(text)
	}
	if start > end {
		start = end
	}

	from := start
	for i := 0; i < size && from > 0; i++ {
		_, width := utf8.DecodeLastRuneInString(text[:from])
		from -= width
	}

	to := end
	for i := 0; i < size && to < len(text); i++ {
		_, width := utf8.DecodeRuneInString(text[to:])
		to += width
	}

	return strings.TrimSpace(text[from:to])
}

// Preview returns the first limit runes of text followed by "..." when the text is longer.
func Preview(text string, limit int) string {
	if utf8.RuneCountInString(text) <= limit {
		return text
	}
	return string([]rune(text)[:limit]) + "..."
}
