package model

// MaxReasons caps the number of reasons carried by a MatchResult.
const MaxReasons = 5

// MatchResult is the outcome of scoring one profile against one job posting.
type MatchResult struct {
	Score      int      `json:"score"`
	Reasons    []string `json:"reasons"`
	Strengths  []string `json:"strengths"`
	Weaknesses []string `json:"weaknesses"`
}

// Verdict returns "shortlist" when the score reaches minScore, "rejected" otherwise.
func (r *MatchResult) Verdict(minScore int) string {
	if r == nil || r.Score < minScore {
		return StatusRejected
	}
	return StatusShortlist
}

// FirstReason returns the first reason or an empty string.
func (r *MatchResult) FirstReason() string {
	if r == nil || len(r.Reasons) == 0 {
		return ""
	}
	return r.Reasons[0]
}
