package model

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// LoadProfile reads a profile from a YAML, JSON or TOML file and validates it.
func LoadProfile(path string) (*ProfileData, error) {
	var profile ProfileData
	if err := readFile(path, &profile); err != nil {
		return nil, fmt.Errorf("load profile: %w", err)
	}
	if err := ValidateProfile(&profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

// LoadJob reads a single job posting from a file and validates it.
// The file name (without extension) becomes the id when none is set.
func LoadJob(path string) (*JobPosting, error) {
	var job JobPosting
	if err := readFile(path, &job); err != nil {
		return nil, fmt.Errorf("load job: %w", err)
	}
	if strings.TrimSpace(job.ID) == "" {
		job.ID = baseName(path)
	}
	if err := ValidateJob(&job); err != nil {
		return nil, err
	}
	return &job, nil
}

func readFile(path string, target any) error {
	path = strings.TrimSpace(path)
	if path == "" {
		return fmt.Errorf("%w: file path is empty", ErrInvalidInput)
	}

	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return err
	}

	return v.Unmarshal(target)
}

func baseName(path string) string {
	name := path
	if idx := strings.LastIndexAny(name, `/\`); idx != -1 {
		name = name[idx+1:]
	}
	if idx := strings.LastIndex(name, "."); idx > 0 {
		name = name[:idx]
	}
	return name
}
