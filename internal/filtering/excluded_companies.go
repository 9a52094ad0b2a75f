package filtering

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/spigell/jobfit/internal/model"
)

type excludedCompaniesFilter struct {
	disabled  bool
	reason    string
	companies []string
}

// NewExcludedCompanies creates a filter that removes jobs of configured companies.
func NewExcludedCompanies() Filter {
	return &excludedCompaniesFilter{}
}

func (f *excludedCompaniesFilter) Name() string { return "excluded_companies" }

func (f *excludedCompaniesFilter) Disable(reason string) {
	f.disabled = true
	f.reason = reason
}

func (f *excludedCompaniesFilter) IsEnabled() bool { return !f.disabled }

func (f *excludedCompaniesFilter) Validate(cfg *Config) error {
	f.companies = nil
	if cfg != nil {
		f.companies = append(f.companies, cfg.ExcludedCompanies...)
	}
	return nil
}

func (f *excludedCompaniesFilter) Apply(_ context.Context, deps Deps, jobs *model.Jobs) (*model.Jobs, Step, error) {
	initial := jobs.Len()
	if len(f.companies) == 0 {
		return jobs, Step{Initial: initial, Left: initial}, nil
	}

	excluded := jobs.Exclude(model.JobCompanyField, f.companies)
	if len(excluded) > 0 {
		deps.Logger.Info("excluding jobs by company",
			zap.Strings("excluded_companies", f.companies),
			zap.Strings("excluded_jobs", excluded),
			zap.Int("jobs_left", jobs.Len()),
		)
	}

	return jobs, Step{Initial: initial, Dropped: len(excluded), Left: jobs.Len()}, nil
}

func (f *excludedCompaniesFilter) Status() Status {
	details := map[string]string{}
	if len(f.companies) > 0 {
		details["companies"] = strings.Join(f.companies, ",")
	}
	return Status{Name: f.Name(), Enabled: f.IsEnabled(), Reason: f.reason, Details: details}
}
