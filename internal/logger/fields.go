package logger

import (
	"strings"

	"go.uber.org/zap"

	"github.com/spigell/jobfit/internal/model"
)

const (
	FieldProvider   = "ai_provider"
	FieldModel      = "ai_model"
	FieldRunID      = "run_id"
	FieldJobID      = "job_id"
	FieldJobTitle   = "job_title"
	FieldJobCompany = "job_company"
)

// StringField describes a string-valued structured logging field.
type StringField struct {
	Key   string
	Value string
}

// StringFields converts key/value pairs into zap fields, trimming whitespace
// and omitting entries with empty keys or values.
func StringFields(fields ...StringField) []zap.Field {
	result := make([]zap.Field, 0, len(fields))
	for _, field := range fields {
		key := strings.TrimSpace(field.Key)
		value := strings.TrimSpace(field.Value)
		if key == "" || value == "" {
			continue
		}
		result = append(result, zap.String(key, value))
	}
	return result
}

// WithFields attaches fields to the logger, defaulting to a no-op logger when nil.
func WithFields(logger *zap.Logger, fields ...zap.Field) *zap.Logger {
	if logger == nil {
		logger = zap.NewNop()
	}
	if len(fields) == 0 {
		return logger
	}
	return logger.With(fields...)
}

// CommonFields describes the semantic matcher provider and model.
func CommonFields(provider, model string) []zap.Field {
	return StringFields(
		StringField{Key: FieldProvider, Value: provider},
		StringField{Key: FieldModel, Value: model},
	)
}

func WithCommonFields(logger *zap.Logger, provider, model string) *zap.Logger {
	return WithFields(logger, CommonFields(provider, model)...)
}

// JobFields describes a job posting.
func JobFields(job *model.JobPosting) []zap.Field {
	if job == nil {
		return nil
	}
	return StringFields(
		StringField{Key: FieldJobID, Value: job.ID},
		StringField{Key: FieldJobTitle, Value: job.JobTitle},
		StringField{Key: FieldJobCompany, Value: job.Company},
	)
}

// WithRun tags every entry of a batch run with its id.
func WithRun(logger *zap.Logger, runID string) *zap.Logger {
	return WithFields(logger, StringFields(StringField{Key: FieldRunID, Value: runID})...)
}
