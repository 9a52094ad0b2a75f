package scoring

import (
	"math"
	"strings"

	"github.com/spigell/jobfit/internal/model"
)

// ResultBuilder accumulates reasons, strengths and weaknesses and produces an
// immutable MatchResult. Adjustment notes are listed before ordinary reasons
// so they survive the reason cap.
type ResultBuilder struct {
	adjustments []string
	reasons     []string
	strengths   []string
	weaknesses  []string
}

func NewResultBuilder() *ResultBuilder {
	return &ResultBuilder{}
}

// Adjustment records a reason produced by a deterministic rule.
func (b *ResultBuilder) Adjustment(text string) *ResultBuilder {
	if !containsFold(b.adjustments, text) && !containsFold(b.reasons, text) {
		b.adjustments = appendText(b.adjustments, text)
	}
	return b
}

func (b *ResultBuilder) Reason(text string) *ResultBuilder {
	if !containsFold(b.adjustments, text) && !containsFold(b.reasons, text) {
		b.reasons = appendText(b.reasons, text)
	}
	return b
}

func (b *ResultBuilder) Strength(text string) *ResultBuilder {
	if !containsFold(b.strengths, text) {
		b.strengths = appendText(b.strengths, text)
	}
	return b
}

func (b *ResultBuilder) Weakness(text string) *ResultBuilder {
	if !containsFold(b.weaknesses, text) {
		b.weaknesses = appendText(b.weaknesses, text)
	}
	return b
}

// Build clamps the score to [0,100], rounds it and caps the reasons.
func (b *ResultBuilder) Build(score float64) *model.MatchResult {
	reasons := make([]string, 0, len(b.adjustments)+len(b.reasons))
	reasons = append(reasons, b.adjustments...)
	reasons = append(reasons, b.reasons...)
	if len(reasons) > model.MaxReasons {
		reasons = reasons[:model.MaxReasons]
	}

	return &model.MatchResult{
		Score:      clampScore(score),
		Reasons:    reasons,
		Strengths:  append([]string{}, b.strengths...),
		Weaknesses: append([]string{}, b.weaknesses...),
	}
}

func clampScore(score float64) int {
	if math.IsNaN(score) {
		return 0
	}
	return int(math.Round(math.Max(0, math.Min(100, score))))
}

func appendText(list []string, text string) []string {
	if text = strings.TrimSpace(text); text == "" {
		return list
	}
	return append(list, text)
}

func containsFold(list []string, text string) bool {
	text = strings.TrimSpace(text)
	for _, item := range list {
		if strings.EqualFold(strings.TrimSpace(item), text) {
			return true
		}
	}
	return false
}
