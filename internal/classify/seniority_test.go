package classify

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spigell/jobfit/internal/model"
)

func profileWithTitles(titles ...string) *model.ProfileData {
	p := &model.ProfileData{}
	for _, title := range titles {
		p.Experiences = append(p.Experiences, model.Experience{JobTitle: title})
	}
	return p
}

func TestClassifyProfile(t *testing.T) {
	tests := []struct {
		name    string
		profile *model.ProfileData
		years   int
		expect  Level
	}{
		{"executive keyword outranks years", profileWithTitles("Head of IT"), 0, LevelExecutive},
		{"german executive title", profileWithTitles("Geschäftsführer"), 3, LevelExecutive},
		{"lead with many years is executive", profileWithTitles("Lead Engineer"), 16, LevelExecutive},
		{"lead title", profileWithTitles("Principal Consultant"), 4, LevelLead},
		{"senior with ten years is lead", profileWithTitles("Senior Accountant"), 10, LevelLead},
		{"senior title", profileWithTitles("Sr. Developer"), 1, LevelSenior},
		{"years alone make senior", profileWithTitles("Accountant"), 16, LevelSenior},
		{"mid without junior keyword", profileWithTitles("Accountant"), 3, LevelMid},
		{"junior keyword blocks mid", profileWithTitles("Junior Accountant"), 3, LevelJunior},
		{"junior with zero years is entry", profileWithTitles("Trainee"), 0, LevelEntry},
		{"nothing matched", profileWithTitles("Accountant"), 1, LevelEntry},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info := ClassifyProfile(tt.profile, tt.years)
			assert.Equal(t, tt.expect, info.Level)
			assert.Equal(t, tt.years, info.TotalYears)
		})
	}
}

func TestClassifyProfileConfidence(t *testing.T) {
	withEvidence := ClassifyProfile(profileWithTitles("VP Marketing"), 12)
	require.NotEmpty(t, withEvidence.Indicators)
	assert.Equal(t, confidenceEvidence, withEvidence.Confidence)

	noEvidence := ClassifyProfile(profileWithTitles("Accountant"), 0)
	assert.Empty(t, noEvidence.Indicators)
	assert.Equal(t, confidenceNone, noEvidence.Confidence)
}

func TestClassifyProfileFallsBackToText(t *testing.T) {
	profile := &model.ProfileData{
		Tagline: "Experienced product manager",
		Summary: "Ten years in retail banking.",
	}

	info := ClassifyProfile(profile, 0)
	assert.Equal(t, LevelSenior, info.Level)
	assert.Equal(t, confidenceText, info.Confidence)
	require.Len(t, info.Indicators, 1)
	assert.Contains(t, info.Indicators[0], "experienced")

	empty := ClassifyProfile(&model.ProfileData{Summary: "Hello"}, 0)
	assert.Equal(t, LevelUnknown, empty.Level)
}

func TestClassifyJobTitle(t *testing.T) {
	tests := map[string]Level{
		"Unpaid Intern — Marketing": LevelJunior,
		"Head of IT Infrastructure": LevelExecutive,
		"Team Lead Backend":         LevelLead,
		"Team Leader":               LevelLead,
		"Sales Team Leader":         LevelLead,
		"Teamleader Customer Care":  LevelLead,
		"Abteilungsleiter Finanzen": LevelLead,
		"Projektleiterin Bau":       LevelLead,
		"Bereichsleiter Vertrieb":   LevelExecutive,
		"Senior Java Developer":     LevelSenior,
		"Accountant":                LevelMid,
		"International Sales Rep":   LevelMid,
		"Entrepreneur in Residence": LevelMid,
		"Flugbegleiter":             LevelMid,
		"Reisebegleiterin":          LevelMid,
	}

	for title, expect := range tests {
		assert.Equal(t, expect, ClassifyJobTitle(title), title)
	}
}

func TestClassifyProfileLeaderTitles(t *testing.T) {
	profile := &model.ProfileData{Experiences: []model.Experience{
		{JobTitle: "Abteilungsleiter Finanzen"},
		{JobTitle: "Sachbearbeiter Buchhaltung"},
	}}

	info := ClassifyProfile(profile, 3)
	assert.Equal(t, LevelLead, info.Level)
	require.NotEmpty(t, info.Indicators)
	assert.Contains(t, info.Indicators[0], "abteilungsleiter")
}

func TestLevelRank(t *testing.T) {
	entry, ok := LevelEntry.Rank()
	require.True(t, ok)
	assert.Equal(t, 0, entry)

	exec, ok := LevelExecutive.Rank()
	require.True(t, ok)
	assert.Equal(t, 5, exec)

	_, ok = LevelUnknown.Rank()
	assert.False(t, ok)
}

func TestSeniorityKeywordsReturnsCopy(t *testing.T) {
	kws := SeniorityKeywords(LevelSenior)
	require.NotEmpty(t, kws)
	kws[0] = "changed"
	assert.NotEqual(t, "changed", SeniorityKeywords(LevelSenior)[0])
}
