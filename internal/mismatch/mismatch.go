// Package mismatch combines seniority, industry and skill evidence into the
// structural signals that bound a profile-to-job score.
package mismatch

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/spigell/jobfit/internal/classify"
	"github.com/spigell/jobfit/internal/experience"
	"github.com/spigell/jobfit/internal/model"
)

type Severity string

const (
	SeverityOK       Severity = "OK"
	SeverityWarning  Severity = "WARNING"
	SeverityCritical Severity = "CRITICAL"
)

// DefaultRelevantSkillThreshold is the number of profile skills that must
// appear in the job text before an industry mismatch is excused.
const DefaultRelevantSkillThreshold = 3

const minSkillTokenLength = 4

// Signals is the deterministic evidence derived for one (profile, job) pair.
type Signals struct {
	ProfileSeniority classify.SeniorityInfo
	JobSeniority     classify.Level
	Seniority        Severity

	ProfileIndustry  classify.IndustryExperience
	JobIndustry      string
	IndustryMismatch bool

	ITPosition      bool
	HasITExperience bool
	ITMismatch      bool

	MatchedSkills  []string
	RelevantSkills bool
}

// IndustryBlocked reports an industry mismatch that relevant skills do not rescue.
func (s Signals) IndustryBlocked() bool {
	return s.IndustryMismatch && !s.RelevantSkills
}

// Options tune detection.
type Options struct {
	RelevantSkillThreshold int
	Now                    time.Time
}

// Detect derives all signals for a profile and a job.
func Detect(profile *model.ProfileData, job *model.JobPosting, opts Options) Signals {
	if opts.RelevantSkillThreshold <= 0 {
		opts.RelevantSkillThreshold = DefaultRelevantSkillThreshold
	}
	if opts.Now.IsZero() {
		opts.Now = time.Now()
	}

	years := experience.TotalYears(profile.Experiences, opts.Now)

	s := Signals{
		ProfileSeniority: classify.ClassifyProfile(profile, years),
		JobSeniority:     classify.ClassifyJobTitle(job.JobTitle),
		ProfileIndustry:  classify.ClassifyProfileIndustry(profile),
		JobIndustry:      classify.ClassifyJobIndustry(job),
	}

	s.Seniority = SeniorityMismatch(s.ProfileSeniority.Level, s.JobSeniority)
	s.IndustryMismatch = IndustryMismatch(s.ProfileIndustry, s.JobIndustry)

	s.ITPosition = IsITPosition(job, s.JobIndustry)
	s.HasITExperience = HasITExperience(profile, s.ProfileIndustry)
	s.ITMismatch = s.ITPosition && !s.HasITExperience

	s.MatchedSkills = MatchedSkills(profile, job)
	s.RelevantSkills = len(s.MatchedSkills) >= opts.RelevantSkillThreshold && !s.ITMismatch

	return s
}

// SeniorityMismatch grades the distance between two levels on the ordinal
// scale. Unknown levels carry no evidence and grade as OK.
func SeniorityMismatch(profile, job classify.Level) Severity {
	p, okP := profile.Rank()
	j, okJ := job.Rank()
	if !okP || !okJ {
		return SeverityOK
	}

	diff := p - j
	if diff < 0 {
		diff = -diff
	}

	switch {
	case diff > 2:
		return SeverityCritical
	case diff == 2:
		return SeverityWarning
	default:
		return SeverityOK
	}
}

// IndustryMismatch is true when both sides have an industry, they differ and
// the job's industry is absent from everything the profile touched.
func IndustryMismatch(profile classify.IndustryExperience, jobIndustry string) bool {
	if jobIndustry == "" || profile.Primary == "" {
		return false
	}
	if profile.Primary == jobIndustry {
		return false
	}
	return !profile.Has(jobIndustry)
}

// IsITPosition reports whether a job is an IT role by industry or IT signal terms.
func IsITPosition(job *model.JobPosting, jobIndustry string) bool {
	if jobIndustry == classify.IndustryIT {
		return true
	}
	text := strings.ToLower(job.JobTitle + " " + job.Description)
	return classify.FirstKeyword(text, jobITSignals) != ""
}

// HasITExperience reports IT evidence in experience titles, companies or skills.
func HasITExperience(profile *model.ProfileData, industries classify.IndustryExperience) bool {
	if industries.Has(classify.IndustryIT) {
		return true
	}
	for _, exp := range profile.Experiences {
		if hasITSignal(exp.JobTitle + " " + exp.Company) {
			return true
		}
	}
	for _, name := range profile.SkillNames() {
		if hasITSignal(name) {
			return true
		}
	}
	return false
}

func hasITSignal(text string) bool {
	if classify.ContainsWord(text, itAbbreviation) {
		return true
	}

	lower := strings.ToLower(text)
	for _, stem := range profileITStems {
		if strings.Contains(lower, stem) {
			return true
		}
	}
	for _, prefix := range profileITPrefixes {
		if classify.HasWordPrefix(lower, prefix) {
			return true
		}
	}
	for _, word := range profileITWords {
		if classify.ContainsWord(lower, word) {
			return true
		}
	}
	return false
}

// MatchedSkills returns the profile skills found in the job description and
// requirements, either as a whole term or through a whole word of at least
// four letters. Skills shorter than that never match inside hyphenated words.
func MatchedSkills(profile *model.ProfileData, job *model.JobPosting) []string {
	text := job.Text()

	var matched []string
	for _, name := range profile.SkillNames() {
		if skillInText(strings.ToLower(strings.TrimSpace(name)), text) {
			matched = append(matched, name)
		}
	}
	return matched
}

func skillInText(skill, text string) bool {
	if skill == "" {
		return false
	}
	if utf8.RuneCountInString(skill) < minSkillTokenLength {
		return classify.ContainsWord(text, skill)
	}
	if classify.ContainsTerm(text, skill) {
		return true
	}
	for _, token := range strings.FieldsFunc(skill, isSeparator) {
		if utf8.RuneCountInString(token) >= minSkillTokenLength && classify.ContainsTerm(text, token) {
			return true
		}
	}
	return false
}

func isSeparator(r rune) bool {
	switch r {
	case ' ', '/', ',', '-', '(', ')', '&':
		return true
	}
	return false
}
