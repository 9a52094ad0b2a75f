// Package ai defines the semantic matcher capability used by the scorer.
package ai

import (
	"context"
	"fmt"
)

// Assessment is a parsed semantic judgment of a profile against a job.
type Assessment struct {
	Score      float64  `json:"score" mapstructure:"score"`
	Reasons    []string `json:"reasons" mapstructure:"reasons"`
	Strengths  []string `json:"strengths" mapstructure:"strengths"`
	Weaknesses []string `json:"weaknesses" mapstructure:"weaknesses"`
	Raw        string   `json:"-" mapstructure:"-"`
}

// Matcher scores a fully rendered prompt.
// Implementations return *ParseError when the response cannot be read as an Assessment.
type Matcher interface {
	Match(ctx context.Context, prompt string) (*Assessment, error)
}

// ParseError is returned when a matcher answered but its output is unusable.
type ParseError struct {
	Raw string
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse semantic response: %v", e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
