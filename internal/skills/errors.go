package skills

import (
	"fmt"
	"strings"
)

// ValidationError reports an argument a detector cannot work with. It is never retried.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// ValidateText rejects empty and whitespace-only text.
func ValidateText(text string) error {
	if strings.TrimSpace(text) == "" {
		return &ValidationError{Field: "text", Reason: "cannot be empty"}
	}
	return nil
}

// ClassificationError is a failed classification call for one (batch, chunk) unit.
type ClassificationError struct {
	Batch int
	Chunk int
	Err   error
}

func (e *ClassificationError) Error() string {
	return fmt.Sprintf("classify batch %d chunk %d: %v", e.Batch, e.Chunk, e.Err)
}

func (e *ClassificationError) Unwrap() error { return e.Err }
