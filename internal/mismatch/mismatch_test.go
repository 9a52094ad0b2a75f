package mismatch

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spigell/jobfit/internal/classify"
	"github.com/spigell/jobfit/internal/model"
)

var now = time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC)

func TestSeniorityMismatch(t *testing.T) {
	cases := []struct {
		profile classify.Level
		job     classify.Level
		want    Severity
	}{
		{classify.LevelExecutive, classify.LevelJunior, SeverityCritical},
		{classify.LevelEntry, classify.LevelLead, SeverityCritical},
		{classify.LevelLead, classify.LevelMid, SeverityWarning},
		{classify.LevelMid, classify.LevelLead, SeverityWarning},
		{classify.LevelSenior, classify.LevelMid, SeverityOK},
		{classify.LevelMid, classify.LevelMid, SeverityOK},
		{classify.LevelUnknown, classify.LevelJunior, SeverityOK},
		{classify.LevelExecutive, classify.LevelUnknown, SeverityOK},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, SeniorityMismatch(tc.profile, tc.job), "%s vs %s", tc.profile, tc.job)
	}
}

func TestIndustryMismatch(t *testing.T) {
	finance := classify.IndustryExperience{
		Industries: []string{classify.IndustryFinance, classify.IndustryMarketing},
		Primary:    classify.IndustryFinance,
	}

	assert.True(t, IndustryMismatch(finance, classify.IndustryHealthcare))
	assert.False(t, IndustryMismatch(finance, classify.IndustryFinance))
	assert.False(t, IndustryMismatch(finance, classify.IndustryMarketing), "industry touched by the profile")
	assert.False(t, IndustryMismatch(finance, ""))
	assert.False(t, IndustryMismatch(classify.IndustryExperience{}, classify.IndustryHealthcare))
}

func managerProfile() *model.ProfileData {
	return &model.ProfileData{
		Skills: []model.Skill{
			{Name: "Team Management"},
			{Name: "Budgeting"},
			{Name: "Stakeholder Management"},
			{Name: "Leadership"},
		},
		Experiences: []model.Experience{
			{JobTitle: "Operations Manager", Company: "Helvetia Logistics", StartDate: "2012-01", EndDate: "2018-01"},
			{JobTitle: "Team Manager", Company: "Alpen Transport", StartDate: "2018-02", IsCurrent: true},
		},
	}
}

func TestDetectITMismatchDisablesSkillRescue(t *testing.T) {
	job := &model.JobPosting{
		JobTitle:    "Head of IT Infrastructure",
		Company:     "Alpine Bank",
		Description: "Own IT governance and cybersecurity for the bank.",
		Requirements: []string{
			"Leadership and team management",
			"Budgeting and stakeholder management",
		},
	}

	s := Detect(managerProfile(), job, Options{Now: now})

	assert.Equal(t, classify.IndustryIT, s.JobIndustry)
	assert.True(t, s.ITPosition)
	assert.False(t, s.HasITExperience)
	assert.True(t, s.ITMismatch)
	assert.Len(t, s.MatchedSkills, 4)
	assert.False(t, s.RelevantSkills)
	assert.Equal(t, classify.LevelExecutive, s.JobSeniority)
	assert.Equal(t, classify.LevelSenior, s.ProfileSeniority.Level)
	assert.Equal(t, SeverityWarning, s.Seniority)
}

func financeProfile() *model.ProfileData {
	return &model.ProfileData{
		Skills: []model.Skill{
			{Name: "Excel"},
			{Name: "Reporting"},
			{Name: "Budget Planning"},
			{Name: "Forecasting"},
		},
		Experiences: []model.Experience{
			{JobTitle: "Financial Controller", Company: "Alpine Bank", StartDate: "2019-01", IsCurrent: true},
			{JobTitle: "Accountant", Company: "Treuhand Meier", StartDate: "2016-01", EndDate: "2019-01"},
		},
	}
}

func TestDetectIndustryRescue(t *testing.T) {
	job := &model.JobPosting{
		JobTitle:    "Marketing Analyst",
		Company:     "Brandify",
		Description: "Analyse campaign performance with Excel reporting, forecasting and budget planning.",
	}

	s := Detect(financeProfile(), job, Options{Now: now})

	require.Equal(t, classify.IndustryFinance, s.ProfileIndustry.Primary)
	assert.Equal(t, classify.IndustryMarketing, s.JobIndustry)
	assert.True(t, s.IndustryMismatch)
	assert.False(t, s.ITPosition)
	assert.False(t, s.ITMismatch)
	assert.Equal(t, []string{"Excel", "Reporting", "Budget Planning", "Forecasting"}, s.MatchedSkills)
	assert.True(t, s.RelevantSkills)
	assert.False(t, s.IndustryBlocked())

	strict := Detect(financeProfile(), job, Options{Now: now, RelevantSkillThreshold: 5})
	assert.False(t, strict.RelevantSkills)
	assert.True(t, strict.IndustryBlocked())
}

func TestDetectIndustryBlocked(t *testing.T) {
	job := &model.JobPosting{
		JobTitle:    "Marketing Manager",
		Description: "Plan social media campaigns.",
	}

	s := Detect(financeProfile(), job, Options{Now: now})

	assert.True(t, s.IndustryMismatch)
	assert.Empty(t, s.MatchedSkills)
	assert.True(t, s.IndustryBlocked())
}

func TestHasITExperience(t *testing.T) {
	cases := []struct {
		name    string
		profile *model.ProfileData
		want    bool
	}{
		{
			name:    "skill",
			profile: &model.ProfileData{Skills: []model.Skill{{Name: "Python"}}},
			want:    true,
		},
		{
			name:    "title",
			profile: &model.ProfileData{Experiences: []model.Experience{{JobTitle: "Softwareentwickler"}}},
			want:    true,
		},
		{
			name:    "company",
			profile: &model.ProfileData{Experiences: []model.Experience{{JobTitle: "Analyst", Company: "Acme IT Services"}}},
			want:    true,
		},
		{
			name:    "it compound title",
			profile: &model.ProfileData{Experiences: []model.Experience{{JobTitle: "IT-Leiterin"}}},
			want:    true,
		},
		{
			name:    "short language skill",
			profile: &model.ProfileData{Skills: []model.Skill{{Name: "Go"}, {Name: "C++"}}},
			want:    true,
		},
		{
			name:    "none",
			profile: managerProfile(),
			want:    false,
		},
		{
			name:    "scala inside escalation",
			profile: &model.ProfileData{Skills: []model.Skill{{Name: "Escalation Management"}}},
			want:    false,
		},
		{
			name:    "rust inside trust",
			profile: &model.ProfileData{Skills: []model.Skill{{Name: "Customer Trust"}}},
			want:    false,
		},
		{
			name:    "go in hyphenated compound",
			profile: &model.ProfileData{Skills: []model.Skill{{Name: "Go-to-Market Strategy"}}},
			want:    false,
		},
		{
			name:    "lowercase it",
			profile: &model.ProfileData{Skills: []model.Skill{{Name: "Make it happen"}}},
			want:    false,
		},
		{
			name:    "audit is not it",
			profile: &model.ProfileData{Experiences: []model.Experience{{JobTitle: "Audit-Manager", Company: "Credit Suisse"}}},
			want:    false,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			industries := classify.ClassifyProfileIndustry(tc.profile)
			assert.Equal(t, tc.want, HasITExperience(tc.profile, industries))
		})
	}
}

func TestMatchedSkillsWordTokens(t *testing.T) {
	profile := &model.ProfileData{Skills: []model.Skill{
		{Name: "Project Management (PMP)"},
		{Name: "Go"},
		{Name: "SAP"},
	}}
	job := &model.JobPosting{
		Description:  "You will own project delivery.",
		Requirements: []string{"Experience with SAP S/4HANA"},
	}

	assert.Equal(t, []string{"Project Management (PMP)", "SAP"}, MatchedSkills(profile, job))
}

func TestDetectITMismatchIgnoresLookalikeSkills(t *testing.T) {
	job := &model.JobPosting{
		JobTitle:    "Head of IT Infrastructure",
		Company:     "Zurich Private Bank",
		Description: "Lead IT governance and cybersecurity across the bank.",
	}

	for _, skill := range []string{"Escalation Management", "Customer Trust", "Go-to-Market Strategy", "Proactive Leadership"} {
		t.Run(skill, func(t *testing.T) {
			profile := &model.ProfileData{
				Skills: []model.Skill{
					{Name: "Budgeting"}, {Name: "Stakeholder Management"}, {Name: "Team Management"}, {Name: skill},
				},
				Experiences: []model.Experience{
					{JobTitle: "Finance Director", Company: "Helvetia Bank", StartDate: "2010-01", IsCurrent: true},
				},
			}

			s := Detect(profile, job, Options{Now: now})

			assert.True(t, s.ITPosition)
			assert.False(t, s.HasITExperience)
			assert.True(t, s.ITMismatch)
			assert.False(t, s.RelevantSkills)
		})
	}
}

func TestMatchedSkillsRejectsLookalikes(t *testing.T) {
	job := &model.JobPosting{
		Description:  "A good go-to-market plan built on trust. NoSQL is a plus.",
		Requirements: []string{"Escalation handling"},
	}

	cases := []string{"Go", "R", "SQL", "Scala", "Rust"}
	for _, skill := range cases {
		profile := &model.ProfileData{Skills: []model.Skill{{Name: skill}}}
		assert.Empty(t, MatchedSkills(profile, job), skill)
	}

	profile := &model.ProfileData{Skills: []model.Skill{{Name: "Go"}, {Name: "Trust Building"}}}
	assert.Equal(t, []string{"Go", "Trust Building"}, MatchedSkills(profile, &model.JobPosting{
		Description: "Write Go services and build trust with clients.",
	}))
}
