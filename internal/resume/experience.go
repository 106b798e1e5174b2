package resume

import (
	"regexp"
	"strconv"
)

// ExperienceEntry is one mention of a number of years of experience.
type ExperienceEntry struct {
	Years    int    `json:"years"`
	Context  string `json:"context"`
	Position [2]int `json:"position"`
}

var experiencePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(\d+)\+?\s*years?\s*(?:of\s*)?experience`),
	regexp.MustCompile(`(?i)(\d+)\+?\s*years?\s*in`),
	regexp.MustCompile(`(?i)experience\s*:?\s*(\d+)\+?\s*years?`),
	regexp.MustCompile(`(?i)(\d+)\+?\s*years?\s*(?:working|developing|programming)`),
}

// ExtractExperience applies every pattern in order and reports each match. The same
// mention may be reported by more than one pattern.
func ExtractExperience(text string) []ExperienceEntry {
	entries := make([]ExperienceEntry, 0)
	for _, re := range experiencePatterns {
		for _, m := range re.FindAllStringSubmatchIndex(text, -1) {
			years, err := strconv.Atoi(text[m[2]:m[3]])
			if err != nil {
				continue
			}
			entries = append(entries, ExperienceEntry{
				Years:    years,
				Context:  text[m[0]:m[1]],
				Position: [2]int{m[0], m[1]},
			})
		}
	}
	return entries
}
