package textproc

import (
	"strings"
	"unicode/utf8"
)

// Stats describes the size of a cleaned document.
type Stats struct {
	Length            int     `json:"length"`
	Words             int     `json:"words"`
	Sentences         int     `json:"sentences"`
	Paragraphs        int     `json:"paragraphs"`
	AvgSentenceLength float64 `json:"avg_sentence_length"`
}

func (n *Normalizer) Stats(text string) Stats {
	words := len(strings.Fields(text))
	sentences := len(n.Sentences(text))

	paragraphs := 0
	for _, p := range strings.Split(text, "\n\n") {
		if strings.TrimSpace(p) != "" {
			paragraphs++
		}
	}

	return Stats{
		Length:            utf8.RuneCountInString(text),
		Words:             words,
		Sentences:         sentences,
		Paragraphs:        paragraphs,
		AvgSentenceLength: float64(words) / float64(max(sentences, 1)),
	}
}
