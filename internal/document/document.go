// Package document extracts plain text from resume files.
package document

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
)

// Reason classifies an extraction failure.
type Reason string

const (
	ReasonNotFound    Reason = "not_found"
	ReasonUnreadable  Reason = "unreadable"
	ReasonUnsupported Reason = "unsupported"
	ReasonNoText      Reason = "no_text"
)

// ExtractionError is fatal for the document it names.
type ExtractionError struct {
	Path   string
	Reason Reason
	Err    error
}

func (e *ExtractionError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("extract %s: %s", e.Path, e.Reason)
	}
	return fmt.Sprintf("extract %s: %s: %v", e.Path, e.Reason, e.Err)
}

func (e *ExtractionError) Unwrap() error { return e.Err }

type extractFunc func(ctx context.Context, name string, data []byte) (string, error)

// Source turns documents into text, dispatching on the file extension.
type Source struct {
	logger     *zap.Logger
	extractors map[string]extractFunc
}

func NewSource(logger *zap.Logger) *Source {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Source{logger: logger}
	s.extractors = map[string]extractFunc{
		".pdf":  s.extractPDF,
		".docx": extractOffice,
		".doc":  extractOffice,
		".odt":  extractOffice,
		".rtf":  extractOffice,
		".html": extractHTML,
		".htm":  extractHTML,
		".txt":  extractPlain,
		".md":   extractPlain,
	}
	return s
}

// Supported reports whether name has an extension the source can read.
func (s *Source) Supported(name string) bool {
	_, ok := s.extractors[strings.ToLower(filepath.Ext(name))]
	return ok
}

// Extract reads the file at path and returns its text.
func (s *Source) Extract(ctx context.Context, path string) (string, error) {
	if !s.Supported(path) {
		return "", &ExtractionError{Path: path, Reason: ReasonUnsupported,
			Err: fmt.Errorf("unsupported file type %q", filepath.Ext(path))}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		reason := ReasonUnreadable
		if errors.Is(err, fs.ErrNotExist) {
			reason = ReasonNotFound
		}
		return "", &ExtractionError{Path: path, Reason: reason, Err: err}
	}

	return s.ExtractBytes(ctx, path, data)
}

// ExtractBytes returns the text of an in-memory document. name selects the format.
func (s *Source) ExtractBytes(ctx context.Context, name string, data []byte) (string, error) {
	extract, ok := s.extractors[strings.ToLower(filepath.Ext(name))]
	if !ok {
		return "", &ExtractionError{Path: name, Reason: ReasonUnsupported,
			Err: fmt.Errorf("unsupported file type %q", filepath.Ext(name))}
	}

	text, err := extract(ctx, name, data)
	if err != nil {
		var extErr *ExtractionError
		if errors.As(err, &extErr) {
			return "", err
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return "", ctxErr
		}
		return "", &ExtractionError{Path: name, Reason: ReasonUnreadable, Err: err}
	}

	if strings.TrimSpace(text) == "" {
		return "", &ExtractionError{Path: name, Reason: ReasonNoText}
	}

	s.logger.Debug("extracted document text",
		zap.String("document", name),
		zap.Int("bytes", len(data)),
		zap.Int("text_length", len(text)),
	)
	return text, nil
}

func extractPlain(_ context.Context, _ string, data []byte) (string, error) {
	return string(bytes.TrimPrefix(data, []byte("\xef\xbb\xbf"))), nil
}
