package gemini

import (
	"context"
	"errors"
	"strings"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/spigell/jobfit/internal/ai"
)

type stubGenerator struct {
	response   string
	err        error
	lastSystem string
	lastPrompt string
}

func (s *stubGenerator) GenerateContent(_ context.Context, system, prompt string) (string, error) {
	s.lastSystem = system
	s.lastPrompt = prompt
	if s.err != nil {
		return "", s.err
	}
	return s.response, nil
}

func TestMatcherMatch(t *testing.T) {
	stub := &stubGenerator{response: `{"score": 82, "reasons": ["Strong Go background"], "strengths": ["Go", " "], "weaknesses": []}`}
	matcher := NewMatcher(stub, 0, zap.NewNop())

	assessment, err := matcher.Match(context.Background(), "profile and job")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if assessment.Score != 82 {
		t.Fatalf("expected score 82, got %v", assessment.Score)
	}

	if len(assessment.Reasons) != 1 || assessment.Reasons[0] != "Strong Go background" {
		t.Fatalf("unexpected reasons: %v", assessment.Reasons)
	}

	if len(assessment.Strengths) != 1 {
		t.Fatalf("expected blank strengths to be dropped, got %v", assessment.Strengths)
	}

	if assessment.Raw == "" {
		t.Fatalf("expected raw response to be kept")
	}

	if stub.lastPrompt != "profile and job" {
		t.Fatalf("unexpected prompt: %q", stub.lastPrompt)
	}

	if !strings.Contains(stub.lastSystem, `"score"`) {
		t.Fatalf("expected system instruction to describe the schema")
	}
}

func TestMatcherPropagatesGeneratorError(t *testing.T) {
	genErr := errors.New("unavailable")
	matcher := NewMatcher(&stubGenerator{err: genErr}, 0, nil)

	_, err := matcher.Match(context.Background(), "prompt")
	if !errors.Is(err, genErr) {
		t.Fatalf("expected generator error, got %v", err)
	}

	var parseErr *ai.ParseError
	if errors.As(err, &parseErr) {
		t.Fatalf("generator failure must not be reported as parse error")
	}
}

func TestMatcherLogsTruncatedPayloads(t *testing.T) {
	core, observed := observer.New(zapcore.DebugLevel)
	stub := &stubGenerator{response: `{"score": 10}`}
	matcher := NewMatcher(stub, 5, zap.New(core))

	if _, err := matcher.Match(context.Background(), "a very long prompt"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	entries := observed.FilterMessage("gemini generate content request").All()
	if len(entries) != 1 {
		t.Fatalf("expected request log entry, got %d", len(entries))
	}

	if got := entries[0].ContextMap()["prompt_preview"]; got != "a ver..." {
		t.Fatalf("unexpected prompt preview: %v", got)
	}
}

func TestParseResponse(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name      string
		raw       string
		score     float64
		reasons   int
		wantParse bool
	}{
		{
			name:    "code block with string score",
			raw:     "```json\n{\"score\": \"64\", \"reasons\": [\"ok\"]}\n```",
			score:   64,
			reasons: 1,
		},
		{
			name:    "prose around object",
			raw:     "Here is my answer: {\"score\": 40, \"reasons\": \"single reason\"} Thanks.",
			score:   40,
			reasons: 1,
		},
		{
			name:      "not json",
			raw:       "I think the candidate is a good fit.",
			wantParse: true,
		},
		{
			name:      "missing score",
			raw:       `{"reasons": ["no number"]}`,
			wantParse: true,
		},
		{
			name:      "non numeric score",
			raw:       `{"score": "high"}`,
			wantParse: true,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			assessment, err := parseResponse(tc.raw)
			if tc.wantParse {
				var parseErr *ai.ParseError
				if !errors.As(err, &parseErr) {
					t.Fatalf("expected parse error, got %v", err)
				}
				if parseErr.Raw != tc.raw {
					t.Fatalf("expected raw response in parse error")
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if assessment.Score != tc.score {
				t.Fatalf("expected score %v, got %v", tc.score, assessment.Score)
			}
			if len(assessment.Reasons) != tc.reasons {
				t.Fatalf("expected %d reasons, got %v", tc.reasons, assessment.Reasons)
			}
		})
	}
}
