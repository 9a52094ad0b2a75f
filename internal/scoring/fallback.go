package scoring

import (
	"fmt"
	"math"
	"strings"
	"unicode"

	"github.com/spigell/jobfit/internal/classify"
	"github.com/spigell/jobfit/internal/mismatch"
	"github.com/spigell/jobfit/internal/model"
)

// FallbackReason is the first reason of every rule-based result.
const FallbackReason = "Automatic assessment (semantic matcher unavailable)"

const (
	seniorityFitPoints       = 10
	seniorityWarningPenalty  = 20
	seniorityCriticalPenalty = 50
	industryMatchPoints      = 15
	industryMismatchPenalty  = 30
	skillOverlapMaxPoints    = 40
	titleOverlapPoints       = 30
	educationPoints          = 10
	languagePoints           = 10
	minTitleTokenLength      = 4
)

// languageAliases maps a canonical language to the names it appears under in
// job texts and profiles.
var languageAliases = map[string][]string{
	"german":  {"german", "deutsch"},
	"english": {"english", "englisch"},
	"french":  {"french", "französisch", "français", "francais"},
	"italian": {"italian", "italienisch", "italiano"},
	"spanish": {"spanish", "spanisch", "español", "espanol"},
}

// Fallback scores a pair from the deterministic signals alone.
func Fallback(profile *model.ProfileData, job *model.JobPosting, s mismatch.Signals, relevantSkillThreshold int) *model.MatchResult {
	b := NewResultBuilder().Adjustment(FallbackReason)
	score := 0.0

	switch s.Seniority {
	case mismatch.SeverityCritical:
		score -= seniorityCriticalPenalty
		b.Weakness(seniorityNote(s))
	case mismatch.SeverityWarning:
		score -= seniorityWarningPenalty
		b.Weakness(fmt.Sprintf("Seniority gap: profile is %s, job is %s", s.ProfileSeniority.Level, s.JobSeniority))
	default:
		score += seniorityFitPoints
		b.Strength(fmt.Sprintf("Seniority level fits (%s)", s.ProfileSeniority.Level))
	}

	switch {
	case s.IndustryBlocked():
		score -= industryMismatchPenalty
		b.Weakness(industryNote(s))
	case s.JobIndustry != "" && (s.ProfileIndustry.Primary == s.JobIndustry || s.ProfileIndustry.Has(s.JobIndustry)):
		score += industryMatchPoints
		b.Strength(fmt.Sprintf("Industry experience in %s", s.JobIndustry))
	}

	if skills := profile.SkillNames(); len(skills) > 0 {
		ratio := float64(len(s.MatchedSkills)) / float64(len(skills))
		score += math.Round(ratio * skillOverlapMaxPoints)
		b.Reason(fmt.Sprintf("%d of %d profile skills found in the job text", len(s.MatchedSkills), len(skills)))
		if len(s.MatchedSkills) >= relevantSkillThreshold {
			b.Strength("Relevant skills found: " + strings.Join(s.MatchedSkills, ", "))
		}
	}

	if title, ok := titleOverlap(profile, job); ok {
		score += titleOverlapPoints
		b.Strength(fmt.Sprintf("Previous role %q is related to the job", title))
	} else {
		b.Weakness("No directly related previous role")
	}

	if len(profile.Education) > 0 {
		score += educationPoints
	}

	if languages := languageOverlap(profile, job); len(languages) > 0 {
		score += languagePoints
		b.Strength("Required languages covered: " + strings.Join(languages, ", "))
	}

	return b.Build(score)
}

// titleOverlap reports the first experience title sharing a meaningful word
// with the job, or containing the job title.
func titleOverlap(profile *model.ProfileData, job *model.JobPosting) (string, bool) {
	jobTitle := strings.ToLower(strings.TrimSpace(job.JobTitle))
	jobText := strings.ToLower(job.JobTitle + " " + job.Description)

	for _, title := range profile.Titles() {
		lower := strings.ToLower(title)
		if jobTitle != "" && strings.Contains(lower, jobTitle) {
			return title, true
		}
		for _, token := range strings.FieldsFunc(lower, notLetter) {
			if len([]rune(token)) < minTitleTokenLength || seniorityWord(token) {
				continue
			}
			if classify.ContainsTerm(jobText, token) {
				return title, true
			}
		}
	}
	return "", false
}

func notLetter(r rune) bool {
	return !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '+' && r != '#'
}

func seniorityWord(token string) bool {
	for _, level := range []classify.Level{classify.LevelExecutive, classify.LevelLead, classify.LevelSenior, classify.LevelJunior} {
		for _, kw := range classify.SeniorityKeywords(level) {
			if kw == token {
				return true
			}
		}
	}
	return false
}

// languageOverlap returns the canonical languages both demanded by the job and
// spoken by the candidate, in stable order.
func languageOverlap(profile *model.ProfileData, job *model.JobPosting) []string {
	if len(profile.Languages) == 0 {
		return nil
	}

	jobText := job.FullText()
	spoken := make(map[string]bool)
	for _, l := range profile.Languages {
		if canonical := canonicalLanguage(strings.ToLower(l.Name)); canonical != "" {
			spoken[canonical] = true
		}
	}

	var overlap []string
	for _, canonical := range []string{"english", "french", "german", "italian", "spanish"} {
		if !spoken[canonical] {
			continue
		}
		for _, alias := range languageAliases[canonical] {
			if classify.ContainsTerm(jobText, alias) {
				overlap = append(overlap, canonical)
				break
			}
		}
	}
	return overlap
}

func canonicalLanguage(name string) string {
	for canonical, aliases := range languageAliases {
		for _, alias := range aliases {
			if classify.ContainsTerm(name, alias) {
				return canonical
			}
		}
	}
	return ""
}
