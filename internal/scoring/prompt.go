package scoring

import (
	"fmt"
	"strings"

	_ "embed"

	"github.com/spigell/jobfit/internal/mismatch"
	"github.com/spigell/jobfit/internal/model"
)

//go:embed prompt.md
var promptTemplate string

// BuildPrompt renders the semantic matcher prompt for one profile and job.
func BuildPrompt(profile *model.ProfileData, job *model.JobPosting, s mismatch.Signals, cfg Config) string {
	prompt := strings.ReplaceAll(promptTemplate, "{{SIGNALS}}", signalsSection(s))
	prompt = strings.ReplaceAll(prompt, "{{PROFILE}}", profileSection(profile, s))
	prompt = strings.ReplaceAll(prompt, "{{JOB}}", jobSection(job, cfg.DefaultLocation))
	return strings.TrimSpace(prompt)
}

func signalsSection(s mismatch.Signals) string {
	var b strings.Builder
	line(&b, "Seniority", fmt.Sprintf("candidate %s, job %s, mismatch %s", s.ProfileSeniority.Level, s.JobSeniority, s.Seniority))
	line(&b, "Industry", fmt.Sprintf("candidate %s, job %s", orNone(s.ProfileIndustry.Primary), orNone(s.JobIndustry)))
	if s.IndustryMismatch {
		rescue := "not excused"
		if s.RelevantSkills {
			rescue = "excused by matching skills"
		}
		line(&b, "Industry mismatch", rescue)
	}
	line(&b, "IT position", yesNo(s.ITPosition))
	line(&b, "Candidate has IT experience", yesNo(s.HasITExperience))
	line(&b, "Skills found in the job text", orNone(strings.Join(s.MatchedSkills, ", ")))
	return strings.TrimRight(b.String(), "\n")
}

func profileSection(p *model.ProfileData, s mismatch.Signals) string {
	var b strings.Builder
	line(&b, "Tagline", p.Tagline)
	line(&b, "Summary", p.Summary)
	line(&b, "Skills", strings.Join(p.SkillNames(), ", "))

	if len(p.Experiences) > 0 {
		b.WriteString("- Experience:\n")
		for _, exp := range p.Experiences {
			end := exp.EndDate
			if exp.IsCurrent || end == "" {
				end = "present"
			}
			fmt.Fprintf(&b, "  - %s", exp.JobTitle)
			if exp.Company != "" {
				fmt.Fprintf(&b, " at %s", exp.Company)
			}
			if exp.StartDate != "" {
				fmt.Fprintf(&b, " (%s - %s)", exp.StartDate, end)
			}
			b.WriteString("\n")
		}
	}

	if len(p.Education) > 0 {
		items := make([]string, 0, len(p.Education))
		for _, e := range p.Education {
			items = append(items, strings.TrimSpace(strings.Join(nonEmpty(e.Degree, e.Institution), ", ")))
		}
		line(&b, "Education", strings.Join(items, "; "))
	}

	if len(p.Languages) > 0 {
		items := make([]string, 0, len(p.Languages))
		for _, l := range p.Languages {
			if l.Level != "" {
				items = append(items, fmt.Sprintf("%s (%s)", l.Name, l.Level))
				continue
			}
			items = append(items, l.Name)
		}
		line(&b, "Languages", strings.Join(items, ", "))
	}

	line(&b, "Derived seniority", fmt.Sprintf("%s, %d years of experience", s.ProfileSeniority.Level, s.ProfileSeniority.TotalYears))
	if len(s.ProfileSeniority.Indicators) > 0 {
		line(&b, "Seniority evidence", strings.Join(s.ProfileSeniority.Indicators, "; "))
	}
	line(&b, "Primary industry", orNone(s.ProfileIndustry.Primary))

	return strings.TrimRight(b.String(), "\n")
}

func jobSection(j *model.JobPosting, defaultLocation string) string {
	location := j.Location
	if strings.TrimSpace(location) == "" {
		location = defaultLocation
	}

	var b strings.Builder
	line(&b, "Title", j.JobTitle)
	line(&b, "Company", j.Company)
	line(&b, "Location", location)
	line(&b, "Description", j.Description)
	list(&b, "Requirements", j.Requirements)
	list(&b, "Nice to have", j.NiceToHave)
	return strings.TrimRight(b.String(), "\n")
}

func line(b *strings.Builder, label, value string) {
	if value = strings.TrimSpace(value); value == "" {
		return
	}
	fmt.Fprintf(b, "- %s: %s\n", label, value)
}

func list(b *strings.Builder, label string, items []string) {
	items = nonEmpty(items...)
	if len(items) == 0 {
		return
	}
	fmt.Fprintf(b, "- %s:\n", label)
	for _, item := range items {
		fmt.Fprintf(b, "  - %s\n", item)
	}
}

func nonEmpty(items ...string) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}

func orNone(s string) string {
	if strings.TrimSpace(s) == "" {
		return "none"
	}
	return s
}

func yesNo(v bool) string {
	if v {
		return "yes"
	}
	return "no"
}
