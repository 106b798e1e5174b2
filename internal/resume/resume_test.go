package resume

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/spigell/resume-skills/internal/classifier"
	"github.com/spigell/resume-skills/internal/config"
	"github.com/spigell/resume-skills/internal/models"
	"github.com/spigell/resume-skills/internal/skills"
	"github.com/spigell/resume-skills/internal/textproc"
)

const sampleResume = "Senior engineer with 5 years of experience in Python and Node.js development."

func splitSentences() (textproc.Segmenter, error) {
	return textproc.SegmenterFunc(func(text string) []string {
		return strings.Split(text, ". ")
	}), nil
}

// favoring scores the given labels at 0.9 and everything else at 0.001.
func favoring(favored ...string) classifier.ZeroShot {
	return classifier.Func(func(_ context.Context, text string, labels []string, _ bool) (*classifier.Result, error) {
		scores := make([]float64, len(labels))
		for i, label := range labels {
			scores[i] = 0.001
			for _, f := range favored {
				if label == f {
					scores[i] = 0.9
				}
			}
		}
		return classifier.NewResult(text, labels, scores)
	})
}

func newAnalyzer(t *testing.T, provider string, c classifier.ZeroShot, excludeFile string) *Analyzer {
	t.Helper()

	manager := models.NewManager(func(context.Context, string) (classifier.ZeroShot, error) {
		if c == nil {
			return nil, errors.New("no backend")
		}
		return c, nil
	}, splitSentences, zaptest.NewLogger(t))

	a, err := NewAnalyzer(Options{
		Model:       config.Default(),
		Models:      manager,
		Provider:    provider,
		ExcludeFile: excludeFile,
		Logger:      zaptest.NewLogger(t),
	})
	require.NoError(t, err)
	return a
}

func TestProcessTextRuleBasedOnly(t *testing.T) {
	a := newAnalyzer(t, config.ProviderNone, nil, "")

	analysis, err := a.ProcessText(context.Background(), sampleResume)
	require.NoError(t, err)

	assert.NotEqual(t, [16]byte{}, [16]byte(analysis.ID))
	assert.Equal(t, []string{"node.js", "python"}, analysis.Skills.SkillNames)
	assert.Equal(t, 2, analysis.Skills.ExtractionStats.RuleBasedCount)
	assert.Equal(t, 0, analysis.Skills.ExtractionStats.ZSLCount)

	require.Len(t, analysis.Experience, 1)
	assert.Equal(t, 5, analysis.Experience[0].Years)
	assert.Equal(t, "5 years of experience", analysis.Experience[0].Context)

	assert.Equal(t, RoleFallback, analysis.PredictedRole.PredictedRole)
	assert.True(t, analysis.PredictedRole.Failed())

	assert.Equal(t, 12, analysis.TextStats.Words)
	assert.Equal(t, 1, analysis.TextStats.Sentences)
}

func TestProcessTextWithClassifier(t *testing.T) {
	a := newAnalyzer(t, config.ProviderHuggingFace, favoring("python", "Backend Developer"), "")

	analysis, err := a.ProcessText(context.Background(), sampleResume)
	require.NoError(t, err)

	assert.Equal(t, "Backend Developer", analysis.PredictedRole.PredictedRole)
	assert.InDelta(t, 0.9, analysis.PredictedRole.Confidence, 1e-9)
	assert.Len(t, analysis.PredictedRole.TopRoles, 3)
	assert.Empty(t, analysis.PredictedRole.Error)

	byName := map[string]skills.Finding{}
	for _, f := range analysis.Skills.DetailedSkills {
		byName[f.Skill] = f
	}
	require.Contains(t, byName, "python")
	assert.Equal(t, skills.MethodHybrid, byName["python"].Method)
	assert.Equal(t, skills.MethodZeroShot, byName["python"].VerifiedBy)
	assert.InDelta(t, 0.9, byName["python"].Confidence, 1e-9)

	require.Contains(t, byName, "node.js")
	assert.Equal(t, skills.MethodRuleBased, byName["node.js"].Method)
	assert.Equal(t, 1, analysis.Skills.ExtractionStats.ZSLCount)
}

func TestProfileMatchesProcess(t *testing.T) {
	a := newAnalyzer(t, config.ProviderHuggingFace, favoring("python"), "")

	analysis, err := a.ProcessText(context.Background(), sampleResume)
	require.NoError(t, err)

	profile, err := a.Profile(context.Background(), sampleResume)
	require.NoError(t, err)

	assert.Equal(t, analysis.Skills.SkillNames, profile.SkillNames)
	assert.Equal(t, analysis.Skills.ExtractionStats, profile.ExtractionStats)
	assert.Equal(t, skills.MethodHybrid, profile.DetailedSkills[1].Method)
}

func TestProcessTextModelUnavailable(t *testing.T) {
	a := newAnalyzer(t, config.ProviderHuggingFace, nil, "")

	_, err := a.ProcessText(context.Background(), sampleResume)
	require.Error(t, err)
	assert.True(t, classifier.IsModelUnavailable(err))
}

func TestProcessExcludeFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "exclude.yaml")
	_, err := AppendToFile(path, "not relevant", "Node.js")
	require.NoError(t, err)

	a := newAnalyzer(t, config.ProviderNone, nil, path)

	analysis, err := a.ProcessText(context.Background(), sampleResume)
	require.NoError(t, err)

	assert.Equal(t, []string{"python"}, analysis.Skills.SkillNames)
	assert.Equal(t, 1, analysis.Skills.ExtractionStats.TotalFound)
	assert.Equal(t, 2, analysis.Skills.ExtractionStats.RuleBasedCount)
	assert.Equal(t, 1, analysis.Skills.SkillSummary.TotalSkills)
}

func TestProcessFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cv.txt")
	require.NoError(t, os.WriteFile(path, []byte(sampleResume), 0o600))

	a := newAnalyzer(t, config.ProviderNone, nil, "")

	analysis, err := a.Process(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, path, analysis.FilePath)
	assert.Equal(t, []string{"node.js", "python"}, analysis.Skills.SkillNames)
}

func TestProcessRejectsBlankText(t *testing.T) {
	a := newAnalyzer(t, config.ProviderNone, nil, "")

	_, err := a.ProcessText(context.Background(), " \n\t ")
	var verr *skills.ValidationError
	assert.ErrorAs(t, err, &verr)
}

func TestZeroShotDisabled(t *testing.T) {
	a := newAnalyzer(t, config.ProviderNone, nil, "")

	_, err := a.ZeroShot(context.Background(), sampleResume, nil)
	assert.True(t, IsClassifierDisabled(err))
}

func TestDescribe(t *testing.T) {
	a := newAnalyzer(t, config.ProviderNone, nil, "")

	statuses := a.Describe()
	require.Len(t, statuses, 6)

	enabled := map[string]bool{}
	for _, s := range statuses {
		enabled[s.Name] = s.Enabled
	}
	assert.Equal(t, map[string]bool{
		StageRuleBased:  true,
		StageZeroShot:   false,
		StageReconcile:  true,
		StageExclude:    false,
		StageRole:       false,
		StageExperience: true,
	}, enabled)
}
