package output

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/spigell/resume-skills/internal/resume"
)

const (
	skillsSheet     = "Skills"
	summarySheet    = "Summary"
	experienceSheet = "Experience"
)

// SaveXLSX exports an analysis as a workbook with skills, summary and experience sheets.
func SaveXLSX(path string, analysis *resume.Analysis) error {
	if !strings.HasSuffix(strings.ToLower(path), ".xlsx") {
		path += ".xlsx"
	}

	f, err := NewWorkbook(analysis)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := f.SaveAs(filepath.Clean(path)); err != nil {
		return fmt.Errorf("save workbook: %w", err)
	}
	return nil
}

// NewWorkbook renders an analysis into an in-memory workbook.
func NewWorkbook(analysis *resume.Analysis) (*excelize.File, error) {
	f := excelize.NewFile()

	if err := f.SetSheetName("Sheet1", skillsSheet); err != nil {
		f.Close()
		return nil, err
	}
	for _, name := range []string{summarySheet, experienceSheet} {
		if _, err := f.NewSheet(name); err != nil {
			f.Close()
			return nil, err
		}
	}

	header, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"4472C4"}, Pattern: 1},
	})
	if err != nil {
		f.Close()
		return nil, err
	}

	steps := []struct {
		name  string
		write func(*excelize.File, int, *resume.Analysis) error
	}{
		{skillsSheet, writeSkills},
		{summarySheet, writeSummary},
		{experienceSheet, writeExperience},
	}
	for _, step := range steps {
		if err := step.write(f, header, analysis); err != nil {
			f.Close()
			return nil, fmt.Errorf("failed to create %s sheet: %w", strings.ToLower(step.name), err)
		}
	}
	return f, nil
}

func writeRows(f *excelize.File, sheet string, header int, rows [][]any) error {
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return err
		}
	}
	if len(rows) == 0 {
		return nil
	}

	last, err := excelize.CoordinatesToCellName(len(rows[0]), 1)
	if err != nil {
		return err
	}
	return f.SetCellStyle(sheet, "A1", last, header)
}

func writeSkills(f *excelize.File, header int, a *resume.Analysis) error {
	rows := [][]any{{"Skill", "Category", "Confidence", "Method", "Verified by", "Matches", "Context"}}
	if a.Skills != nil {
		for _, s := range a.Skills.DetailedSkills {
			rows = append(rows, []any{s.Skill, s.Category, s.Confidence, string(s.Method), string(s.VerifiedBy), s.Matches, s.Context})
		}
	}
	if err := f.SetColWidth(skillsSheet, "G", "G", 80); err != nil {
		return err
	}
	return writeRows(f, skillsSheet, header, rows)
}

func writeSummary(f *excelize.File, header int, a *resume.Analysis) error {
	rows := [][]any{{"Category", "Count", "Average confidence", "Top skill", "Skills"}}
	if a.Skills != nil {
		for _, name := range a.Skills.CategoryNames() {
			c, ok := a.Skills.SkillSummary.Categories[name]
			if !ok {
				continue
			}
			rows = append(rows, []any{name, c.Count, c.AvgConfidence, c.TopSkill, strings.Join(c.Skills, ", ")})
		}
	}

	rows = append(rows,
		[]any{},
		[]any{"Predicted role", a.PredictedRole.PredictedRole},
		[]any{"Role confidence", a.PredictedRole.Confidence},
		[]any{"Words", a.TextStats.Words},
		[]any{"Sentences", a.TextStats.Sentences},
	)
	if err := f.SetColWidth(summarySheet, "A", "A", 25); err != nil {
		return err
	}
	return writeRows(f, summarySheet, header, rows)
}

func writeExperience(f *excelize.File, header int, a *resume.Analysis) error {
	rows := [][]any{{"Years", "Context", "Start", "End"}}
	for _, e := range a.Experience {
		rows = append(rows, []any{e.Years, e.Context, e.Position[0], e.Position[1]})
	}
	return writeRows(f, experienceSheet, header, rows)
}
