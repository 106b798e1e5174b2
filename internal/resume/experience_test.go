package resume

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractExperience(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		text string
		want []ExperienceEntry
	}{
		{
			name: "years of experience",
			text: "I have 7+ Years of Experience",
			want: []ExperienceEntry{{Years: 7, Context: "7+ Years of Experience", Position: [2]int{7, 29}}},
		},
		{
			name: "experience label",
			text: "Experience: 3 years",
			want: []ExperienceEntry{{Years: 3, Context: "Experience: 3 years", Position: [2]int{0, 19}}},
		},
		{
			name: "in and programming",
			text: "2 years in Go, 10 years programming",
			want: []ExperienceEntry{
				{Years: 2, Context: "2 years in", Position: [2]int{0, 10}},
				{Years: 10, Context: "10 years programming", Position: [2]int{15, 35}},
			},
		},
		{
			name: "no mention",
			text: "Seasoned developer",
			want: []ExperienceEntry{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, ExtractExperience(tt.text))
		})
	}
}

func TestExtractExperienceKeepsDuplicates(t *testing.T) {
	t.Parallel()

	got := ExtractExperience("5 years experience, experience 5 years")
	assert.Len(t, got, 2)
	for _, e := range got {
		assert.Equal(t, 5, e.Years)
	}
}
