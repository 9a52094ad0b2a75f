package model

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

const (
	JobIDField      = "ID"
	JobCompanyField = "Company"
)

// Job statuses used by the job store.
const (
	StatusNew       = "new"
	StatusShortlist = "shortlist"
	StatusRejected  = "rejected"
)

// Jobs is an ordered collection of job postings flowing through the filters.
type Jobs struct {
	Items []*JobPosting
}

func (j *Jobs) Len() int {
	return len(j.Items)
}

func (j *Jobs) FindByID(id string) *JobPosting {
	for _, job := range j.Items {
		if job.ID == id {
			return job
		}
	}
	return nil
}

func (j *JobPosting) GetStringField(name string) string {
	switch name {
	case JobIDField:
		return j.ID
	case JobCompanyField:
		return j.Company
	default:
		return ""
	}
}

// Exclude removes jobs whose field equals (case-insensitively) one of the targets
// and returns the ids of removed jobs. Order of the remaining items is preserved.
func (j *Jobs) Exclude(name string, targets []string) []string {
	if len(targets) == 0 {
		return nil
	}

	set := make(map[string]struct{}, len(targets))
	for _, t := range targets {
		t = strings.ToLower(strings.TrimSpace(t))
		if t != "" {
			set[t] = struct{}{}
		}
	}

	var excluded []string
	kept := j.Items[:0]
	for _, job := range j.Items {
		if _, ok := set[strings.ToLower(strings.TrimSpace(job.GetStringField(name)))]; ok {
			excluded = append(excluded, job.ID)
			continue
		}
		kept = append(kept, job)
	}
	j.Items = kept

	return excluded
}

func (j *Jobs) DumpToTmpFile(results map[string]*MatchResult) (string, error) {
	file, err := os.CreateTemp("", "jobfit_results_*.json")
	if err != nil {
		return "", err
	}
	defer file.Close()

	type entry struct {
		Job    *JobPosting  `json:"job"`
		Result *MatchResult `json:"result,omitempty"`
	}

	entries := make([]entry, 0, len(j.Items))
	for _, job := range j.Items {
		entries = append(entries, entry{Job: job, Result: results[job.ID]})
	}

	enc := json.NewEncoder(file)
	enc.SetIndent("", "  ")
	if err := enc.Encode(entries); err != nil {
		return "", err
	}
	return file.Name(), nil
}

// ReportByCompany groups jobs by company with their score and top reason.
func (j *Jobs) ReportByCompany(results map[string]*MatchResult) map[string][]map[string]string {
	report := make(map[string][]map[string]string)
	for _, job := range j.Items {
		key := job.Company
		if key == "" {
			key = "unknown company"
		}
		entry := map[string]string{
			"id":       job.ID,
			"title":    job.JobTitle,
			"location": job.Location,
		}
		if res, ok := results[job.ID]; ok && res != nil {
			entry["score"] = fmt.Sprintf("%d", res.Score)
			entry["reason"] = res.FirstReason()
		}
		report[key] = append(report[key], entry)
	}
	return report
}
