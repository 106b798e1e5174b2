package document

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"code.sajari.com/docconv"
	"github.com/PuerkitoBio/goquery"
)

func extractOffice(_ context.Context, name string, data []byte) (string, error) {
	mime := docconv.MimeTypeByExtension(strings.ToLower(name))
	res, err := docconv.Convert(bytes.NewReader(data), mime, false)
	if err != nil {
		return "", fmt.Errorf("convert %s: %w", mime, err)
	}
	return res.Body, nil
}

// extractHTML returns the visible body text, one line per block element.
func extractHTML(_ context.Context, _ string, data []byte) (string, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("parse html: %w", err)
	}

	doc.Find("script, style, noscript, nav, footer").Remove()
	doc.Find("p, div, li, br, h1, h2, h3, h4, h5, h6, tr").Each(func(_ int, sel *goquery.Selection) {
		sel.AppendHtml("\n")
	})

	return doc.Find("body").Text(), nil
}
