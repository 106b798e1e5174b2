package resume

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.yaml.in/yaml/v3"
)

// ExcludedSkills is the content of an exclude file.
type ExcludedSkills struct {
	Items []*ExcludedSkill `json:"items" yaml:"items"`
}

// ExcludedSkill is a skill that must never appear in a profile.
type ExcludedSkill struct {
	Skill      string    `json:"skill" yaml:"skill"`
	Reason     string    `json:"reason,omitempty" yaml:"reason,omitempty"`
	ExcludedAt time.Time `json:"excluded_at" yaml:"excluded_at"`
}

// NewExcludedSkills builds entries for skills stamped with the current time.
func NewExcludedSkills(reason string, skills ...string) *ExcludedSkills {
	excluded := &ExcludedSkills{}
	now := time.Now().UTC()
	for _, skill := range skills {
		skill = strings.ToLower(strings.TrimSpace(skill))
		if skill == "" {
			continue
		}
		excluded.Items = append(excluded.Items, &ExcludedSkill{Skill: skill, Reason: reason, ExcludedAt: now})
	}
	return excluded
}

func isYAML(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return true
	}
	return false
}

// GetExcludedSkillsFromFile reads an exclude file. A missing or empty file yields an empty list.
func GetExcludedSkillsFromFile(path string) (*ExcludedSkills, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return &ExcludedSkills{}, nil
	}
	if err != nil {
		return nil, err
	}

	if len(strings.TrimSpace(string(data))) == 0 {
		return &ExcludedSkills{}, nil
	}

	var excluded ExcludedSkills
	if isYAML(path) {
		err = yaml.Unmarshal(data, &excluded)
	} else {
		err = json.Unmarshal(data, &excluded)
	}
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return &excluded, nil
}

// Append adds entries whose skill is not listed yet.
func (e *ExcludedSkills) Append(s *ExcludedSkills) {
	known := make(map[string]struct{}, len(e.Items))
	for _, item := range e.Items {
		known[item.Skill] = struct{}{}
	}
	for _, item := range s.Items {
		if _, ok := known[item.Skill]; ok {
			continue
		}
		known[item.Skill] = struct{}{}
		e.Items = append(e.Items, item)
	}
}

// Skills returns the excluded skill names in file order.
func (e *ExcludedSkills) Skills() []string {
	names := make([]string, 0, len(e.Items))
	for _, item := range e.Items {
		names = append(names, item.Skill)
	}
	return names
}

// ToFile replaces the content of path with e.
func (e *ExcludedSkills) ToFile(path string) error {
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return err
	}
	defer file.Close()

	if isYAML(path) {
		enc := yaml.NewEncoder(file)
		enc.SetIndent(2)
		if err := enc.Encode(e); err != nil {
			return err
		}
		return enc.Close()
	}

	enc := json.NewEncoder(file)
	enc.SetIndent("", "  ")
	return enc.Encode(e)
}

// AppendToFile records skills as excluded in path, creating the file when needed.
func AppendToFile(path, reason string, skills ...string) (*ExcludedSkills, error) {
	excluded, err := GetExcludedSkillsFromFile(path)
	if err != nil {
		return nil, fmt.Errorf("getting excluded skills from file: %w", err)
	}
	excluded.Append(NewExcludedSkills(reason, skills...))
	if err := excluded.ToFile(path); err != nil {
		return nil, fmt.Errorf("writing exclude file: %w", err)
	}
	return excluded, nil
}
