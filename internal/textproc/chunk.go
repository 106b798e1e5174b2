package textproc

import (
	"strings"
	"unicode/utf8"
)

// Segmenter splits text into an ordered list of sentences.
type Segmenter interface {
	Sentences(text string) []string
}

// SegmenterFunc adapts a plain function to the Segmenter interface.
type SegmenterFunc func(text string) []string

func (f SegmenterFunc) Sentences(text string) []string { return f(text) }

// Chunk is a sentence-aligned slice of the cleaned document.
type Chunk struct {
	Index int
	Text  string
}

// Normalizer cleans text and groups its sentences into bounded chunks.
type Normalizer struct {
	segmenter Segmenter
}

func NewNormalizer(segmenter Segmenter) *Normalizer {
	return &Normalizer{segmenter: segmenter}
}

func (n *Normalizer) Clean(text string) string {
	return Clean(text)
}

// Sentences returns the trimmed, non-empty sentences of text.
func (n *Normalizer) Sentences(text string) []string {
	if n == nil || n.segmenter == nil || strings.TrimSpace(text) == "" {
		return nil
	}

	raw := n.segmenter.Sentences(text)
	sentences := make([]string, 0, len(raw))
	for _, s := range raw {
		if s = strings.TrimSpace(s); s != "" {
			sentences = append(sentences, s)
		}
	}
	return sentences
}

// Chunk greedily packs sentences into chunks of at most size runes. A sentence is
// never split, so a chunk holding a single long sentence may exceed size.
func (n *Normalizer) Chunk(text string, size int) []Chunk {
	var (
		chunks  []Chunk
		current string
	)

	flush := func() {
		if current = strings.TrimSpace(current); current != "" {
			chunks = append(chunks, Chunk{Index: len(chunks), Text: current})
		}
	}

	for _, sentence := range n.Sentences(text) {
		if utf8.RuneCountInString(current)+1+utf8.RuneCountInString(sentence) <= size {
			if current == "" {
				current = sentence
			} else {
				current += " " + sentence
			}
			continue
		}

		flush()
		current = sentence
	}
	flush()

	return chunks
}
