// Package skills detects technical and soft skills in resume text. Vocabulary patterns
// and zero-shot classification run side by side and are reconciled into one profile.
package skills

// Method records which detector produced a finding.
type Method string

const (
	MethodRuleBased Method = "rule_based"
	MethodZeroShot  Method = "zero_shot"
	MethodHybrid    Method = "hybrid"
)

// RuleBasedConfidence is the fixed confidence of a vocabulary match.
const RuleBasedConfidence = 0.80

// Finding is one detected skill.
type Finding struct {
	Skill      string  `json:"skill"`
	Confidence float64 `json:"confidence"`
	Category   string  `json:"category"`
	Method     Method  `json:"method"`
	Context    string  `json:"context"`
	Matches    int     `json:"matches"`
	Positions  []Span  `json:"positions,omitempty"`
	ChunkIndex *int    `json:"chunk_index,omitempty"`
	VerifiedBy Method  `json:"verified_by,omitempty"`
}
