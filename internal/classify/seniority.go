// Package classify infers seniority tiers and industries from profiles and job postings.
package classify

import (
	"fmt"
	"strings"

	"github.com/spigell/jobfit/internal/model"
)

type Level string

const (
	LevelUnknown   Level = "UNKNOWN"
	LevelEntry     Level = "ENTRY"
	LevelJunior    Level = "JUNIOR"
	LevelMid       Level = "MID"
	LevelSenior    Level = "SENIOR"
	LevelLead      Level = "LEAD"
	LevelExecutive Level = "EXECUTIVE"
)

// ladder is the ordinal scale used for mismatch distances.
var ladder = []Level{LevelEntry, LevelJunior, LevelMid, LevelSenior, LevelLead, LevelExecutive}

// Rank returns the position of the level on the ordinal scale.
// UNKNOWN has no rank.
func (l Level) Rank() (int, bool) {
	for i, lvl := range ladder {
		if lvl == l {
			return i, true
		}
	}
	return 0, false
}

const (
	yearsExecutiveWithLead = 15
	yearsLeadWithSenior    = 10
	yearsSenior            = 5
	yearsMid               = 2

	confidenceEvidence = 0.8
	confidenceText     = 0.6
	confidenceNone     = 0.5
)

type levelKeywords struct {
	level    Level
	keywords []string
	// suffixes match any word ending with them, for compounds like "Abteilungsleiter".
	suffixes []string
}

// leaderExclusions are compounds ending like a leader title that are not one.
var leaderExclusions = []string{"begleiter", "begleiterin"}

// seniorityKeywords is ordered by priority; keywords match as whole words.
var seniorityKeywords = []levelKeywords{
	{LevelExecutive, []string{
		"ceo", "cto", "cfo", "coo", "cio", "cmo", "president", "vp", "vice president",
		"head of", "director", "managing director", "chief executive", "chief technology officer",
		"chief financial officer", "chief operating officer", "chief information officer", "chief marketing officer",
		"geschäftsführer", "geschäftsführerin", "vorstand", "bereichsleiter", "bereichsleiterin",
	}, nil},
	{LevelLead, []string{
		"lead", "team lead", "principal", "architect", "chief", "leitend", "leitender", "leitende",
		"teamleiter", "teamleiterin", "staff engineer",
	}, []string{"leader", "leiter", "leiterin"}},
	{LevelSenior, []string{
		"senior", "sr.", "sr", "erfahren", "erfahrener", "experienced",
	}, nil},
	{LevelJunior, []string{
		"junior", "jr.", "trainee", "intern", "internship", "praktikant", "praktikantin",
		"graduate", "entry", "entry level", "associate", "werkstudent", "werkstudentin",
		"apprentice", "lehrling",
	}, nil},
}

// SeniorityKeywords returns a copy of the keyword list for a level.
func SeniorityKeywords(level Level) []string {
	for _, entry := range seniorityKeywords {
		if entry.level == level {
			return append([]string(nil), entry.keywords...)
		}
	}
	return nil
}

// SeniorityInfo is the derived seniority of a profile for a single scoring call.
type SeniorityInfo struct {
	Level      Level
	Confidence float64
	Indicators []string
	TotalYears int
}

// matchSeniority returns the first keyword of level found as a whole term in
// text, or else the first word carrying one of the level's suffixes.
func matchSeniority(text string, level Level) string {
	for _, entry := range seniorityKeywords {
		if entry.level != level {
			continue
		}
		for _, kw := range entry.keywords {
			if ContainsTerm(text, kw) {
				return kw
			}
		}
		if word := WordWithSuffix(text, entry.suffixes, leaderExclusions); word != "" {
			return word
		}
	}
	return ""
}

// titleHit records the first title that matched a level and the matched keyword.
type titleHit struct {
	title   string
	keyword string
}

func titleHits(titles []string) map[Level]*titleHit {
	hits := make(map[Level]*titleHit)
	for _, title := range titles {
		lower := strings.ToLower(title)
		for _, entry := range seniorityKeywords {
			if _, seen := hits[entry.level]; seen {
				continue
			}
			if kw := matchSeniority(lower, entry.level); kw != "" {
				hits[entry.level] = &titleHit{title: title, keyword: kw}
			}
		}
	}
	return hits
}

// ClassifyProfile infers the seniority tier of a profile from its experience
// titles and total years. Title evidence at a higher tier always wins over the
// year count at a lower tier. Without titles the tagline and summary are used.
func ClassifyProfile(p *model.ProfileData, totalYears int) SeniorityInfo {
	info := SeniorityInfo{Level: LevelUnknown, TotalYears: totalYears}
	if p == nil {
		info.Confidence = confidenceNone
		return info
	}

	if titles := p.Titles(); len(titles) > 0 {
		info.Level, info.Indicators = levelFromTitles(titleHits(titles), totalYears)
	}

	if info.Level == LevelUnknown {
		text := strings.ToLower(p.Tagline + " " + p.Summary)
		for _, entry := range seniorityKeywords {
			if kw := matchSeniority(text, entry.level); kw != "" {
				info.Level = entry.level
				info.Indicators = append(info.Indicators, fmt.Sprintf("profile text mentions %q", kw))
				info.Confidence = confidenceText
				return info
			}
		}
	}

	info.Confidence = confidenceNone
	if len(info.Indicators) > 0 {
		info.Confidence = confidenceEvidence
	}
	return info
}

func levelFromTitles(hits map[Level]*titleHit, years int) (Level, []string) {
	describe := func(kind string, hit *titleHit) string {
		return fmt.Sprintf("%s title %q (%s)", kind, hit.title, hit.keyword)
	}
	yearsNote := fmt.Sprintf("%d years of experience", years)

	exec, lead, senior, junior := hits[LevelExecutive], hits[LevelLead], hits[LevelSenior], hits[LevelJunior]

	switch {
	case exec != nil:
		return LevelExecutive, []string{describe("executive", exec)}
	case lead != nil && years >= yearsExecutiveWithLead:
		return LevelExecutive, []string{describe("lead", lead), yearsNote}
	case lead != nil:
		return LevelLead, []string{describe("lead", lead)}
	case senior != nil && years >= yearsLeadWithSenior:
		return LevelLead, []string{describe("senior", senior), yearsNote}
	case senior != nil:
		return LevelSenior, []string{describe("senior", senior)}
	case years >= yearsSenior:
		return LevelSenior, []string{yearsNote}
	case years >= yearsMid && junior == nil:
		return LevelMid, []string{yearsNote}
	case junior != nil && years > 0:
		return LevelJunior, []string{describe("junior", junior)}
	case junior != nil:
		return LevelEntry, []string{describe("junior", junior)}
	default:
		return LevelEntry, nil
	}
}

// ClassifyJobTitle infers the level a job title asks for, MID when nothing matches.
func ClassifyJobTitle(title string) Level {
	lower := strings.ToLower(title)
	for _, entry := range seniorityKeywords {
		if matchSeniority(lower, entry.level) != "" {
			return entry.level
		}
	}
	return LevelMid
}
