package classify

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/spigell/jobfit/internal/model"
)

func TestTaxonomyCoversRequiredIndustries(t *testing.T) {
	labels := Industries()
	assert.GreaterOrEqual(t, len(labels), 15)
	assert.Equal(t, IndustryIT, labels[0])
	for _, label := range labels {
		assert.NotEmpty(t, IndustryKeywords(label), label)
	}
}

func TestClassifyProfileIndustryIncludesIT(t *testing.T) {
	profile := &model.ProfileData{
		Experiences: []model.Experience{
			{JobTitle: "Senior Java Developer", Company: "Tech Solutions AG"},
		},
	}

	result := ClassifyProfileIndustry(profile)
	assert.True(t, result.Has(IndustryIT))
	assert.Equal(t, IndustryIT, result.Primary)
}

func TestClassifyProfileIndustryPrimaryCountsPerExperience(t *testing.T) {
	profile := &model.ProfileData{
		Summary: "Software enthusiast",
		Experiences: []model.Experience{
			{JobTitle: "Financial Controller", Company: "Alpine Bank"},
			{JobTitle: "Accountant", Company: "Treuhand Meier"},
			{JobTitle: "Marketing Assistant", Company: "Brandify"},
		},
	}

	result := ClassifyProfileIndustry(profile)
	assert.Equal(t, IndustryFinance, result.Primary)
	assert.True(t, result.Has(IndustryIT), "aggregate text counts the summary")
	assert.True(t, result.Has(IndustryMarketing))
}

func TestClassifyProfileIndustryTieBreaksByTaxonomyOrder(t *testing.T) {
	profile := &model.ProfileData{
		Experiences: []model.Experience{
			{JobTitle: "Sales Manager"},
			{JobTitle: "Marketing Manager"},
		},
	}

	assert.Equal(t, IndustryMarketing, ClassifyProfileIndustry(profile).Primary)
}

func TestClassifyProfileIndustryWithoutExperience(t *testing.T) {
	result := ClassifyProfileIndustry(&model.ProfileData{Tagline: "Nurse"})
	assert.Equal(t, []string{IndustryHealthcare}, result.Industries)
	assert.Empty(t, result.Primary)
}

func TestClassifyJobIndustry(t *testing.T) {
	tests := []struct {
		job    model.JobPosting
		expect string
	}{
		{model.JobPosting{JobTitle: "Head of IT Infrastructure", Description: "Own IT governance and cybersecurity for a private bank."}, IndustryIT},
		{model.JobPosting{JobTitle: "Brand Manager", Description: "Run campaigns."}, IndustryMarketing},
		{model.JobPosting{JobTitle: "Receptionist", Description: "Welcome guests."}, ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expect, ClassifyJobIndustry(&tt.job), tt.job.JobTitle)
	}
}
