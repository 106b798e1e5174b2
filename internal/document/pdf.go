package document

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"
	"go.uber.org/zap"
)

// extractPDF reads every page in order. A page that fails is logged and skipped.
func (s *Source) extractPDF(ctx context.Context, name string, data []byte) (string, error) {
	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("open pdf: %w", err)
	}

	var b strings.Builder
	for i := 1; i <= r.NumPage(); i++ {
		if err := ctx.Err(); err != nil {
			return "", err
		}

		text, err := pageText(r.Page(i))
		if err != nil {
			s.logger.Warn("error extracting text from page",
				zap.String("document", name),
				zap.Int("page", i),
				zap.Error(err),
			)
			continue
		}
		b.WriteString(text)
		b.WriteString("\n")
	}

	return b.String(), nil
}

// pageText guards against panics the pdf reader raises on malformed content streams.
func pageText(p pdf.Page) (text string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("malformed page: %v", r)
		}
	}()

	if p.V.IsNull() {
		return "", nil
	}
	return p.GetPlainText(nil)
}
