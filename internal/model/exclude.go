package model

import (
	"encoding/json"
	"errors"
	"os"
	"time"
)

const (
	ExcludeActorUser    = "user"
	ExcludeActorScoring = "scoring"
)

type ExcludedJobs struct {
	Items []*ExcludedJob
}

type ExcludedJob struct {
	ID         string
	Title      string
	Company    string
	Actor      string `json:",omitempty"`
	Reason     string `json:",omitempty"`
	ExcludedAt time.Time
}

func (j *Jobs) ToExcluded(actor, reason string) *ExcludedJobs {
	excluded := &ExcludedJobs{}
	for _, job := range j.Items {
		excluded.Items = append(excluded.Items, &ExcludedJob{
			ID:         job.ID,
			Title:      job.JobTitle,
			Company:    job.Company,
			Actor:      actor,
			Reason:     reason,
			ExcludedAt: time.Now().UTC(),
		})
	}
	return excluded
}

// GetExcludedJobsFromFile reads an exclude file. A missing or empty file yields an empty list.
func GetExcludedJobsFromFile(path string) (*ExcludedJobs, error) {
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &ExcludedJobs{}, nil
		}
		return nil, err
	}
	defer file.Close()

	stat, err := file.Stat()
	if err != nil {
		return nil, err
	}

	if stat.Size() == 0 {
		return &ExcludedJobs{}, nil
	}

	var excluded ExcludedJobs
	if err := json.NewDecoder(file).Decode(&excluded); err != nil {
		return nil, err
	}
	return &excluded, nil
}

func (e *ExcludedJobs) Append(s *ExcludedJobs) {
	e.Items = append(e.Items, s.Items...)
}

func (e *ExcludedJobs) JobIDs() []string {
	ids := make([]string, 0, len(e.Items))
	for _, job := range e.Items {
		ids = append(ids, job.ID)
	}
	return ids
}

func (e *ExcludedJobs) ToFile(path string) error {
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return err
	}
	defer file.Close()

	enc := json.NewEncoder(file)
	enc.SetIndent("", "  ")
	return enc.Encode(e)
}
