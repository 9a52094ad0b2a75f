package gemini

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strings"
	"unicode/utf8"

	_ "embed"

	"github.com/mitchellh/mapstructure"
	"go.uber.org/zap"

	"github.com/spigell/jobfit/internal/ai"
	"github.com/spigell/jobfit/internal/utils"
)

type contentGenerator interface {
	GenerateContent(ctx context.Context, system, message string) (string, error)
}

type Matcher struct {
	generator contentGenerator
	logger    *zap.Logger
	maxLogLen int
}

//go:embed system.md
var systemInstruction string

const defaultMaxLogLength = 200

var errMissingScore = errors.New("response has no score")

func NewMatcher(generator contentGenerator, maxLogLength int, logger *zap.Logger) *Matcher {
	if maxLogLength <= 0 {
		maxLogLength = defaultMaxLogLength
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Matcher{
		generator: generator,
		logger:    logger,
		maxLogLen: maxLogLength,
	}
}

// Match sends the prompt to Gemini and parses the JSON assessment.
func (m *Matcher) Match(ctx context.Context, prompt string) (*ai.Assessment, error) {
	if strings.TrimSpace(prompt) == "" {
		return nil, errors.New("prompt must not be empty")
	}

	m.logger.Debug("gemini generate content request",
		zap.Int("prompt_length", utf8.RuneCountInString(prompt)),
		zap.String("prompt_preview", utils.TruncateForLog(prompt, m.maxLogLen)),
	)

	raw, err := m.generator.GenerateContent(ctx, systemInstruction, prompt)
	if err != nil {
		return nil, err
	}

	m.logger.Debug("gemini generate content response",
		zap.Int("response_length", utf8.RuneCountInString(raw)),
		zap.String("response_preview", utils.TruncateForLog(raw, m.maxLogLen)),
	)

	return parseResponse(raw)
}

func parseResponse(raw string) (*ai.Assessment, error) {
	cleaned := extractJSON(raw)

	var data map[string]any
	if err := json.Unmarshal([]byte(cleaned), &data); err != nil {
		return nil, &ai.ParseError{Raw: raw, Err: err}
	}

	if v, ok := data["score"]; !ok || v == nil {
		return nil, &ai.ParseError{Raw: raw, Err: errMissingScore}
	}

	var assessment ai.Assessment
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		Result:           &assessment,
	})
	if err != nil {
		return nil, fmt.Errorf("create decoder: %w", err)
	}

	if err := decoder.Decode(data); err != nil {
		return nil, &ai.ParseError{Raw: raw, Err: err}
	}

	if math.IsNaN(assessment.Score) || math.IsInf(assessment.Score, 0) {
		return nil, &ai.ParseError{Raw: raw, Err: fmt.Errorf("score is not a finite number")}
	}

	assessment.Reasons = cleanList(assessment.Reasons)
	assessment.Strengths = cleanList(assessment.Strengths)
	assessment.Weaknesses = cleanList(assessment.Weaknesses)
	assessment.Raw = raw

	return &assessment, nil
}

// extractJSON strips code fences and surrounding prose, keeping the outermost object.
func extractJSON(raw string) string {
	raw = strings.TrimSpace(raw)
	if strings.HasPrefix(raw, "```") {
		raw = strings.TrimPrefix(raw, "```json")
		raw = strings.TrimPrefix(raw, "```")
		raw = strings.TrimSpace(raw)
		if idx := strings.LastIndex(raw, "```"); idx != -1 {
			raw = raw[:idx]
		}
	}
	raw = strings.Trim(raw, "`")

	start := strings.Index(raw, "{")
	end := strings.LastIndex(raw, "}")
	if start != -1 && end > start {
		raw = raw[start : end+1]
	}

	return strings.TrimSpace(raw)
}

func cleanList(items []string) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
