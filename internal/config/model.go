// Package config holds the processing presets and the application configuration.
package config

import (
	"fmt"
	"slices"
	"strings"
)

const (
	PresetDefault  = "default"
	PresetFast     = "fast"
	PresetAccurate = "accurate"
	PresetCPU      = "cpu"

	DefaultSkillModel = "MoritzLaurer/DeBERTa-v3-base-mnli-fever-anli"
	DefaultRoleModel  = "facebook/bart-large-mnli"
)

// Presets lists the preset names accepted by Preset.
var Presets = []string{PresetDefault, PresetFast, PresetAccurate, PresetCPU}

// Model tunes classification and chunking.
type Model struct {
	SkillModel          string   `mapstructure:"skill-model" json:"skill_model" validate:"required"`
	RoleModel           string   `mapstructure:"role-model" json:"role_model" validate:"required"`
	ConfidenceThreshold float64  `mapstructure:"confidence-threshold" json:"confidence_threshold" validate:"gte=0,lte=1"`
	BatchSize           int      `mapstructure:"batch-size" json:"batch_size" validate:"gte=1"`
	ChunkSize           int      `mapstructure:"chunk-size" json:"chunk_size" validate:"gte=1"`
	UseGPU              bool     `mapstructure:"use-gpu" json:"use_gpu"`
	Device              int      `mapstructure:"device" json:"device" validate:"gte=-1"`
	Workers             int      `mapstructure:"workers" json:"workers" validate:"gte=1"`
	CandidateRoles      []string `mapstructure:"candidate-roles" json:"candidate_roles" validate:"min=1,dive,required"`
}

// Default returns the balanced preset.
func Default() Model {
	return Model{
		SkillModel:          DefaultSkillModel,
		RoleModel:           DefaultRoleModel,
		ConfidenceThreshold: 0.85,
		BatchSize:           16,
		ChunkSize:           400,
		UseGPU:              true,
		Device:              0,
		Workers:             1,
		CandidateRoles:      DefaultCandidateRoles(),
	}
}

// Fast trades precision for fewer, larger classification calls.
func Fast() Model {
	m := Default()
	m.ConfidenceThreshold = 0.6
	m.BatchSize = 64
	m.ChunkSize = 300
	return m
}

// Accurate uses longer chunks and a slightly lower threshold.
func Accurate() Model {
	m := Default()
	m.ConfidenceThreshold = 0.8
	m.BatchSize = 16
	m.ChunkSize = 800
	return m
}

// CPUOnly disables the accelerator and uses smaller batches.
func CPUOnly() Model {
	m := Default()
	m.UseGPU = false
	m.Device = -1
	m.BatchSize = 10
	m.ChunkSize = 400
	return m
}

// Preset returns the named preset. An empty name selects the default preset.
func Preset(name string) (Model, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", PresetDefault:
		return Default(), nil
	case PresetFast:
		return Fast(), nil
	case PresetAccurate:
		return Accurate(), nil
	case PresetCPU:
		return CPUOnly(), nil
	default:
		return Model{}, fmt.Errorf("unknown preset %q (expected one of %s)", name, strings.Join(Presets, ", "))
	}
}

// DefaultCandidateRoles returns the roles offered to the role classifier.
func DefaultCandidateRoles() []string {
	return slices.Clone(defaultCandidateRoles)
}

var defaultCandidateRoles = []string{
	"Web Developer",
	"Frontend Developer",
	"Backend Developer",
	"Frontend Engineer",
	"Backend Engineer",
	"SysAdmin",
	"Cloud R&D Engineer",
	"Full Stack Developer",
	"Data Scientist",
	"Machine Learning Engineer",
	"AI Engineer",
	"Artificial Intelligence Engineer",
	"DevOps Engineer",
	"Mobile Developer",
	"UI/UX Designer",
	"Software Engineer",
	"Data Engineer",
	"Cloud Engineer",
	"Software Architect",
	"Product Manager",
	"Technical Lead",
	"Cybersecurity Specialist",
	"iOS Developer",
	"Platform Engineer",
	"Site Reliability Engineer",
	"Cloud Architect",
	"MLOps",
	"Prompt Engineer",
	"GenAI Engineer",
	"Web3 Developer",
}
