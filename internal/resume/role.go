package resume

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/spigell/resume-skills/internal/classifier"
)

const (
	roleSampleLen = 5000
	roleTopN      = 3

	// RoleFallback is reported when no role could be predicted.
	RoleFallback = "Sorry, couldn't predict role."
)

var errNoLabels = errors.New("classifier returned no labels")

// RolePrediction is the most likely role of a resume.
type RolePrediction struct {
	PredictedRole string             `json:"predicted_role"`
	Confidence    float64            `json:"confidence"`
	TopRoles      map[string]float64 `json:"top_3_roles,omitempty"`
	Error         string             `json:"error,omitempty"`
}

// Failed reports whether the prediction is the fallback.
func (p RolePrediction) Failed() bool { return p.Error != "" }

// RoleClassifier predicts a role among fixed candidates with a single-label classifier.
type RoleClassifier struct {
	classifier classifier.ZeroShot
	roles      []string
	logger     *zap.Logger
}

func NewRoleClassifier(c classifier.ZeroShot, roles []string, logger *zap.Logger) *RoleClassifier {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &RoleClassifier{classifier: c, roles: append([]string(nil), roles...), logger: logger}
}

// Classify looks at the first 5000 characters only. Failures are logged and turned into
// the fallback prediction.
func (r *RoleClassifier) Classify(ctx context.Context, text string) RolePrediction {
	sample := prefix(text, roleSampleLen)

	result, err := r.classifier.Classify(ctx, sample, r.roles, false)
	if err == nil && len(result.Labels) == 0 {
		err = errNoLabels
	}
	if err != nil {
		r.logger.Error("error in role classification", zap.Error(err))
		return RolePrediction{PredictedRole: RoleFallback, Confidence: 0, Error: err.Error()}
	}

	return RolePrediction{
		PredictedRole: result.Labels[0],
		Confidence:    result.Scores[0],
		TopRoles:      result.Top(roleTopN),
	}
}

func prefix(text string, n int) string {
	count := 0
	for i := range text {
		if count == n {
			return text[:i]
		}
		count++
	}
	return text
}
