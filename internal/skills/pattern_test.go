package skills

import (
	"strings"
	"testing"

	"github.com/spigell/resume-skills/internal/textproc"
)

func TestPatternsMatchEveryVocabularySkill(t *testing.T) {
	t.Parallel()

	m := NewMatcher()
	for _, skill := range DefaultTaxonomy().Skills() {
		for _, text := range []string{skill, strings.ToUpper(skill), "I know " + skill + ", really."} {
			if !m.Contains(textproc.LowerPreserving(text), skill) {
				t.Fatalf("skill %q does not match text %q (patterns %v)", skill, text, m.PatternsFor(skill))
			}
		}
	}
}

func TestMatcherBoundaries(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		skill string
		text  string
		want  int
	}{
		{name: "hyphen for dot", skill: "node.js", text: "I use Node-js daily", want: 1},
		{name: "dot literal", skill: "node.js", text: "node.js and node js", want: 2},
		{name: "hyphen for space", skill: "spring boot", text: "spring-boot, Spring Boot", want: 2},
		{name: "no match inside longer word", skill: "java", text: "javascript only", want: 0},
		{name: "c not inside c++", skill: "c", text: "i love c++ and clojure", want: 0},
		{name: "c not inside c#", skill: "c", text: "c# developer", want: 0},
		{name: "bare c", skill: "c", text: "c, go and rust", want: 1},
		{name: "c++ symbol", skill: "c++", text: "i love c++ and clojure", want: 1},
		{name: "c# symbol", skill: "c#", text: "c#/.net", want: 1},
		{name: "r standalone", skill: "r", text: "python, r and sql", want: 1},
		{name: "r inside word", skill: "r", text: "rust programmer", want: 0},
		{name: "leading dot", skill: ".net", text: "asp .net core", want: 1},
		{name: "plus suffix", skill: "kdb+", text: "kdb+ and q", want: 1},
		{name: "symbol neighbour rejected", skill: "go", text: "go+ and #go", want: 0},
		{name: "retry after rejected candidate", skill: "go", text: "gogo go", want: 1},
		{name: "diacritics in skill", skill: "pandás", text: "pandas", want: 1},
		{name: "unicode neighbours", skill: "go", text: "égo go", want: 1},
	}

	m := NewMatcher()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := m.FindAll(textproc.LowerPreserving(tt.text), tt.skill)
			if len(got) != tt.want {
				t.Fatalf("FindAll(%q, %q) = %v, want %d matches", tt.text, tt.skill, got, tt.want)
			}
		})
	}
}

func TestMatcherPositionsAreByteOffsets(t *testing.T) {
	t.Parallel()

	text := "Über Python"
	lowered := textproc.LowerPreserving(text)
	spans := NewMatcher().FindAll(lowered, "python")
	if len(spans) != 1 {
		t.Fatalf("expected one match, got %v", spans)
	}
	if got := text[spans[0][0]:spans[0][1]]; got != "Python" {
		t.Fatalf("span points at %q", got)
	}
}

func TestMatcherCandidatesDeduplicated(t *testing.T) {
	t.Parallel()

	got := NewMatcher().Candidates("Python and Docker", []string{"python", "docker", "python", "rust"})
	want := []string{"python", "docker"}
	if strings.Join(got, ",") != strings.Join(want, ",") {
		t.Fatalf("Candidates() = %v, want %v", got, want)
	}
}

func TestPatternsForEmptySkill(t *testing.T) {
	t.Parallel()

	if got := NewMatcher().PatternsFor("  "); len(got) != 0 {
		t.Fatalf("expected no patterns for blank skill, got %v", got)
	}
}
