package skills

import (
	"regexp"
	"strings"
	"sync"
	"unicode"
	"unicode/utf8"

	"github.com/spigell/resume-skills/internal/textproc"
)

// Span is a [start, end) byte range in the lowercased text.
type Span [2]int

// Pattern matches one skill inside lowercased text. RE2 has no lookaround, so the
// boundary runes on both sides of a candidate are checked by guard instead.
type Pattern struct {
	re    *regexp.Regexp
	guard func(rune) bool
}

func (p *Pattern) String() string { return p.re.String() }

// FindAll returns every non-overlapping bounded match of p in text.
// A rejected candidate restarts the search one rune after its start.
func (p *Pattern) FindAll(text string) []Span {
	var spans []Span

	for pos := 0; pos < len(text); {
		loc := p.re.FindStringIndex(text[pos:])
		if loc == nil {
			break
		}

		start, end := pos+loc[0], pos+loc[1]
		if end > start && p.bounded(text, start, end) {
			spans = append(spans, Span{start, end})
			pos = end
			continue
		}

		_, width := utf8.DecodeRuneInString(text[start:])
		pos = start + max(width, 1)
	}

	return spans
}

// Match reports whether text holds at least one bounded match.
func (p *Pattern) Match(text string) bool {
	for pos := 0; pos < len(text); {
		loc := p.re.FindStringIndex(text[pos:])
		if loc == nil {
			return false
		}
		start, end := pos+loc[0], pos+loc[1]
		if end > start && p.bounded(text, start, end) {
			return true
		}
		_, width := utf8.DecodeRuneInString(text[start:])
		pos = start + max(width, 1)
	}
	return false
}

func (p *Pattern) bounded(text string, start, end int) bool {
	if start > 0 {
		if r, _ := utf8.DecodeLastRuneInString(text[:start]); p.guard(r) {
			return false
		}
	}
	if end < len(text) {
		if r, _ := utf8.DecodeRuneInString(text[end:]); p.guard(r) {
			return false
		}
	}
	return true
}

func isWord(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsMark(r)
}

func isWordOrSymbol(r rune) bool {
	return isWord(r) || r == '+' || r == '#'
}

// Matcher builds and caches the patterns of each skill. It is safe for concurrent use.
type Matcher struct {
	mu    sync.RWMutex
	cache map[string][]*Pattern
}

func NewMatcher() *Matcher {
	return &Matcher{cache: make(map[string][]*Pattern)}
}

// PatternsFor returns the patterns matching skill in lowercased text.
// Empty skills have no patterns.
func (m *Matcher) PatternsFor(skill string) []*Pattern {
	m.mu.RLock()
	patterns, ok := m.cache[skill]
	m.mu.RUnlock()
	if ok {
		return patterns
	}

	patterns = buildPatterns(skill)

	m.mu.Lock()
	m.cache[skill] = patterns
	m.mu.Unlock()

	return patterns
}

// FindAll collects the spans of skill across all of its patterns.
func (m *Matcher) FindAll(lowered, skill string) []Span {
	var spans []Span
	for _, p := range m.PatternsFor(skill) {
		spans = append(spans, p.FindAll(lowered)...)
	}
	return spans
}

// Contains reports whether any pattern of skill matches lowered.
func (m *Matcher) Contains(lowered, skill string) bool {
	for _, p := range m.PatternsFor(skill) {
		if p.Match(lowered) {
			return true
		}
	}
	return false
}

// Candidates returns the skills present in text, deduplicated, in the order given.
func (m *Matcher) Candidates(text string, skills []string) []string {
	lowered := textproc.LowerPreserving(text)
	seen := make(map[string]struct{}, len(skills))

	var out []string
	for _, s := range skills {
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		if m.Contains(lowered, s) {
			out = append(out, s)
		}
	}
	return out
}

func buildPatterns(skill string) []*Pattern {
	lowered := strings.ToLower(skill)

	switch lowered {
	case "c", "r":
		return []*Pattern{{re: regexp.MustCompile(regexp.QuoteMeta(lowered)), guard: isWordOrSymbol}}
	case "c#", "c++":
		return []*Pattern{{re: regexp.MustCompile(regexp.QuoteMeta(lowered)), guard: isWord}}
	}

	normalized := textproc.RemoveDiacritics(lowered)
	if strings.TrimSpace(normalized) == "" {
		return nil
	}

	re, err := regexp.Compile(skillExpr(normalized))
	if err != nil {
		return nil
	}
	return []*Pattern{{re: re, guard: isWordOrSymbol}}
}

// skillExpr escapes skill literally, except that a space matches a space or hyphen and an
// interior dot matches a dot, hyphen or whitespace ("node.js" also finds "node-js").
func skillExpr(skill string) string {
	var b strings.Builder
	for i, r := range skill {
		switch {
		case r == ' ':
			b.WriteString(`[-\s]`)
		case r == '.' && i > 0:
			b.WriteString(`[.\-\s]`)
		default:
			b.WriteString(regexp.QuoteMeta(string(r)))
		}
	}
	return b.String()
}
