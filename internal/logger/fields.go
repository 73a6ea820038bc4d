package logger

import (
	"strings"

	"go.uber.org/zap"

	"github.com/spigell/ai-readiness/internal/scoring"
)

const (
	FieldRoleID       = "role_id"
	FieldOverallScore = "overall_score"
	FieldScoringLevel = "scoring_level"
	FieldAIUsage      = "ai_usage"
)

// WithFields attaches fields to logger, falling back to a no-op logger when
// logger is nil.
func WithFields(logger *zap.Logger, fields ...zap.Field) *zap.Logger {
	if logger == nil {
		logger = zap.NewNop()
	}
	if len(fields) == 0 {
		return logger
	}
	return logger.With(fields...)
}

// WithRole tags every entry with the assessed role. A blank role leaves the
// logger untouched.
func WithRole(logger *zap.Logger, roleID string) *zap.Logger {
	roleID = strings.TrimSpace(roleID)
	if roleID == "" {
		return WithFields(logger)
	}
	return WithFields(logger, zap.String(FieldRoleID, roleID))
}

// AssessmentFields describes a result: the verdict plus the score and match
// count of every category, e.g. tool_score and tool_matches.
func AssessmentFields(r scoring.Result) []zap.Field {
	fields := []zap.Field{
		zap.Int(FieldOverallScore, r.OverallScore),
		zap.String(FieldScoringLevel, r.ScoringLevel),
		zap.String(FieldAIUsage, r.AIUsage),
	}
	for _, c := range scoring.Categories {
		a := r.Categories[c]
		fields = append(fields,
			zap.Int(c.String()+"_score", a.Score),
			zap.Int(c.String()+"_matches", a.Count),
		)
	}
	return fields
}
