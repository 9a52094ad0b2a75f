package scoring

import (
	"fmt"
	"math"
	"strings"

	"github.com/spigell/jobfit/internal/ai"
	"github.com/spigell/jobfit/internal/classify"
	"github.com/spigell/jobfit/internal/mismatch"
	"github.com/spigell/jobfit/internal/model"
)

const (
	PrefilterSeniorityScore = 15
	PrefilterStructureScore = 30

	itCeiling           = 35
	seniorityClampScore = 35
	warningClampScore   = 65
	structuralCeiling   = 45
	industryPenalty     = 30
	negativeToneDeduct  = 15
	itTrigger           = 40
	criticalTrigger     = 50
	warningTrigger      = 70
	industryTrigger     = 50
	negativeToneTrigger = 40
)

// negativeIndicators are phrases in a semantic answer that signal a poor fit
// the model did not reflect in its number.
var negativeIndicators = []string{
	"overqualified", "over-qualified", "überqualifiziert", "underqualified", "under-qualified",
	"unterqualifiziert", "backward step", "step backwards", "step back", "rückschritt",
	"trainee", "intern", "internship", "graduate", "praktikant", "praktikum",
	"mismatch", "mismatched", "fehlt", "fehlen", "fehlende",
	"geringe übereinstimmung", "schlechte übereinstimmung", "poor match", "low match", "weak match",
}

func seniorityNote(s mismatch.Signals) string {
	return fmt.Sprintf("Seniority mismatch: profile is %s, job is %s", s.ProfileSeniority.Level, s.JobSeniority)
}

func industryNote(s mismatch.Signals) string {
	return fmt.Sprintf("Industry mismatch: profile background is %s, job is in %s", s.ProfileIndustry.Primary, s.JobIndustry)
}

const itNote = "IT position without IT experience"

// Prefilter returns a fixed low result when a structural disqualifier is certain.
func Prefilter(s mismatch.Signals) (*model.MatchResult, bool) {
	critical := s.Seniority == mismatch.SeverityCritical
	blocked := s.IndustryBlocked()

	if !critical && !blocked && !s.ITMismatch {
		return nil, false
	}

	b := NewResultBuilder()
	score := PrefilterStructureScore

	if critical {
		score = PrefilterSeniorityScore
		b.Adjustment(seniorityNote(s)).Weakness(seniorityNote(s))
	}
	if s.ITMismatch {
		b.Adjustment(itNote).Weakness("No IT background for an IT role")
	}
	if blocked && !s.ITMismatch {
		b.Adjustment(industryNote(s)).Weakness(industryNote(s))
	}
	b.Reason("Semantic assessment skipped by structural pre-filter")

	return b.Build(float64(score)), true
}

// Reconcile bounds a semantic assessment by the deterministic signals.
// It does not modify the assessment.
func Reconcile(a *ai.Assessment, s mismatch.Signals) *model.MatchResult {
	b := NewResultBuilder()
	for _, r := range a.Reasons {
		b.Reason(r)
	}
	for _, st := range a.Strengths {
		b.Strength(st)
	}
	for _, w := range a.Weaknesses {
		b.Weakness(w)
	}

	score := a.Score
	if math.IsNaN(score) {
		score = 0
	}

	switch {
	case s.ITMismatch && score >= itTrigger:
		score = math.Min(score, itCeiling)
		b.Adjustment(itNote).Weakness("No IT background for an IT role")
	case s.Seniority == mismatch.SeverityCritical && score >= criticalTrigger:
		score = math.Min(score, seniorityClampScore)
		b.Weakness(seniorityNote(s))
	case s.Seniority == mismatch.SeverityWarning && score >= warningTrigger:
		score = math.Min(score, warningClampScore)
		b.Adjustment(fmt.Sprintf("Score capped: seniority gap between %s profile and %s job", s.ProfileSeniority.Level, s.JobSeniority))
	}

	if s.IndustryBlocked() && !s.ITMismatch && score >= industryTrigger {
		score = math.Max(0, score-industryPenalty)
		b.Weakness(industryNote(s))
	}

	if hasNegativeIndicator(a) && score >= negativeToneTrigger {
		score = math.Max(0, score-negativeToneDeduct)
	}

	switch {
	case s.ITMismatch:
		score = math.Min(score, itCeiling)
	case s.Seniority == mismatch.SeverityCritical || s.IndustryBlocked():
		score = math.Min(score, structuralCeiling)
	}

	return b.Build(score)
}

func hasNegativeIndicator(a *ai.Assessment) bool {
	for _, list := range [][]string{a.Reasons, a.Weaknesses} {
		for _, text := range list {
			for _, phrase := range negativeIndicators {
				if classify.ContainsTerm(strings.ToLower(text), phrase) {
					return true
				}
			}
		}
	}
	return false
}
