package model

import (
	"errors"
	"fmt"
	"sync"

	"github.com/go-playground/validator/v10"
)

// ErrInvalidInput marks precondition failures: records that must not be scored.
var ErrInvalidInput = errors.New("invalid input")

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

func validatorInstance() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
	})
	return validate
}

// ValidateProfile checks that the profile is present and structurally usable.
func ValidateProfile(p *ProfileData) error {
	if p == nil {
		return fmt.Errorf("%w: profile is required", ErrInvalidInput)
	}
	if err := validatorInstance().Struct(p); err != nil {
		return fmt.Errorf("%w: profile: %v", ErrInvalidInput, err)
	}
	return nil
}

// ValidateJob checks that the job posting carries a title and a description.
func ValidateJob(j *JobPosting) error {
	if j == nil {
		return fmt.Errorf("%w: job posting is required", ErrInvalidInput)
	}
	if err := validatorInstance().Struct(j); err != nil {
		return fmt.Errorf("%w: job %q: %v", ErrInvalidInput, j.ID, err)
	}
	return nil
}
