package textproc

import (
	"strings"
	"testing"
)

func splitOnDots(text string) []string {
	parts := strings.SplitAfter(text, ".")
	return parts
}

func TestChunkPacksSentences(t *testing.T) {
	t.Parallel()

	n := NewNormalizer(SegmenterFunc(splitOnDots))
	text := "One two. Three four. Five six."

	chunks := n.Chunk(text, 20)
	if len(chunks) != 2 {
		t.Fatalf("expected 2 chunks, got %d: %+v", len(chunks), chunks)
	}
	if chunks[0].Text != "One two. Three four." {
		t.Fatalf("unexpected first chunk: %q", chunks[0].Text)
	}
	if chunks[1].Text != "Five six." || chunks[1].Index != 1 {
		t.Fatalf("unexpected second chunk: %+v", chunks[1])
	}
}

func TestChunkNeverSplitsSentence(t *testing.T) {
	t.Parallel()

	n := NewNormalizer(SegmenterFunc(splitOnDots))
	long := strings.Repeat("x", 50) + "."

	chunks := n.Chunk("Hi. "+long+" Bye.", 10)
	if len(chunks) != 3 {
		t.Fatalf("expected 3 chunks, got %d: %+v", len(chunks), chunks)
	}
	if chunks[1].Text != long {
		t.Fatalf("expected the long sentence intact, got %q", chunks[1].Text)
	}
}

func TestChunkBoundaryIsInclusive(t *testing.T) {
	t.Parallel()

	n := NewNormalizer(SegmenterFunc(splitOnDots))
	// "abcd." + " " + "efgh." = 11 runes
	chunks := n.Chunk("abcd. efgh.", 11)
	if len(chunks) != 1 {
		t.Fatalf("expected a single chunk at the exact bound, got %+v", chunks)
	}

	chunks = n.Chunk("abcd. efgh.", 10)
	if len(chunks) != 2 {
		t.Fatalf("expected two chunks below the bound, got %+v", chunks)
	}
}

func TestChunkEmptyInput(t *testing.T) {
	t.Parallel()

	n := NewNormalizer(SegmenterFunc(splitOnDots))
	if chunks := n.Chunk("   ", 100); len(chunks) != 0 {
		t.Fatalf("expected no chunks, got %+v", chunks)
	}
}

func TestStats(t *testing.T) {
	n := NewNormalizer(SegmenterFunc(splitOnDots))
	stats := n.Stats("Go is fun. Rust too.")

	if stats.Words != 5 || stats.Sentences != 2 || stats.Paragraphs != 1 {
		t.Fatalf("unexpected stats: %+v", stats)
	}
	if stats.AvgSentenceLength != 2.5 {
		t.Fatalf("unexpected average: %v", stats.AvgSentenceLength)
	}
}
