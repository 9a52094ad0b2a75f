package model

import "strings"

// JobPosting is a job advertisement as provided by the job store.
type JobPosting struct {
	// ID is optional for scoring and is used by stores, exclude files and logs.
	ID           string   `json:"id,omitempty" mapstructure:"id"`
	JobTitle     string   `json:"jobTitle" mapstructure:"jobTitle" validate:"required"`
	Company      string   `json:"company,omitempty" mapstructure:"company"`
	Location     string   `json:"location,omitempty" mapstructure:"location"`
	Description  string   `json:"description" mapstructure:"description" validate:"required"`
	Requirements []string `json:"requirements,omitempty" mapstructure:"requirements"`
	NiceToHave   []string `json:"niceToHave,omitempty" mapstructure:"niceToHave"`
}

// Text returns description and requirements joined, lowercased.
func (j *JobPosting) Text() string {
	parts := make([]string, 0, len(j.Requirements)+1)
	parts = append(parts, j.Description)
	parts = append(parts, j.Requirements...)
	return strings.ToLower(strings.Join(parts, " "))
}

// FullText returns title, description, requirements and nice-to-have, lowercased.
func (j *JobPosting) FullText() string {
	parts := []string{j.JobTitle, j.Description}
	parts = append(parts, j.Requirements...)
	parts = append(parts, j.NiceToHave...)
	return strings.ToLower(strings.Join(parts, " "))
}
