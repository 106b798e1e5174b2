package resume

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/spigell/resume-skills/internal/pipeline"
	"github.com/spigell/resume-skills/internal/skills"
)

const (
	StageRuleBased  = "rule_based"
	StageZeroShot   = "zero_shot"
	StageReconcile  = "reconcile"
	StageExclude    = "exclude_file"
	StageRole       = "role"
	StageExperience = "experience"

	noClassifierReason = "no classifier configured"
)

// state is shared by the stages of one Process call.
type state struct {
	text       string
	rule       []skills.Finding
	zsl        []skills.Finding
	profile    *skills.Profile
	role       RolePrediction
	experience []ExperienceEntry
}

func (a *Analyzer) stages() []pipeline.Stage[*state] {
	zeroShot := pipeline.NewStage(StageZeroShot, a.applyZeroShot)
	role := pipeline.NewStage(StageRole, a.applyRole)
	exclude := pipeline.NewStage(StageExclude, a.applyExclude).WithDetail("path", a.excludeFile)

	stages := []pipeline.Stage[*state]{
		pipeline.NewStage(StageRuleBased, a.applyRuleBased),
		zeroShot,
		pipeline.NewStage(StageReconcile, a.applyReconcile),
		exclude,
		role,
		pipeline.NewStage(StageExperience, a.applyExperience),
	}

	if a.zeroShot == nil {
		pipeline.DisableByName(stages, StageZeroShot, noClassifierReason)
	}
	if a.role == nil {
		pipeline.DisableByName(stages, StageRole, noClassifierReason)
	}
	if a.excludeFile == "" {
		pipeline.DisableByName(stages, StageExclude, "no exclude file configured")
	}
	return stages
}

func (a *Analyzer) applyRuleBased(_ context.Context, st *state) (pipeline.Step, error) {
	findings, err := a.rule.Detect(st.text)
	if err != nil {
		return pipeline.Step{}, err
	}
	st.rule = findings
	return pipeline.Step{Left: len(findings)}, nil
}

func (a *Analyzer) applyZeroShot(ctx context.Context, st *state) (pipeline.Step, error) {
	candidates := skills.Names(st.rule)
	findings, err := a.zeroShot.Detect(ctx, st.text, candidates)
	if err != nil {
		return pipeline.Step{}, err
	}
	st.zsl = findings
	return pipeline.Step{Initial: len(candidates), Left: len(findings)}, nil
}

func (a *Analyzer) applyReconcile(_ context.Context, st *state) (pipeline.Step, error) {
	st.profile = a.reconciler.Reconcile(st.rule, st.zsl)

	initial := len(st.rule) + len(st.zsl)
	left := len(st.profile.DetailedSkills)
	return pipeline.Step{Initial: initial, Dropped: initial - left, Left: left}, nil
}

func (a *Analyzer) applyExclude(_ context.Context, st *state) (pipeline.Step, error) {
	initial := len(st.profile.DetailedSkills)

	excluded, err := GetExcludedSkillsFromFile(a.excludeFile)
	if err != nil {
		return pipeline.Step{}, fmt.Errorf("getting excluded skills from file: %w", err)
	}

	st.profile = st.profile.Without(excluded.Skills())
	left := len(st.profile.DetailedSkills)
	if left < initial {
		a.logger.Info("excluding skills based on exclude file",
			zap.String("path", a.excludeFile),
			zap.Strings("excluded_skills", excluded.Skills()),
			zap.Int("skills_left", left),
		)
	}
	return pipeline.Step{Initial: initial, Dropped: initial - left, Left: left}, nil
}

func (a *Analyzer) applyRole(ctx context.Context, st *state) (pipeline.Step, error) {
	st.role = a.role.Classify(ctx, st.text)
	if err := ctx.Err(); err != nil {
		return pipeline.Step{}, err
	}

	left := 1
	if st.role.Failed() {
		left = 0
	}
	return pipeline.Step{Left: left}, nil
}

func (a *Analyzer) applyExperience(_ context.Context, st *state) (pipeline.Step, error) {
	st.experience = ExtractExperience(st.text)
	return pipeline.Step{Left: len(st.experience)}, nil
}
