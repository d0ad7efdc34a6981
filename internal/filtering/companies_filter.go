package filtering

import (
	"context"

	"github.com/Thiwanka-1/Job-Search-Engine/internal/jobs"
)

type companiesFilter struct {
	companies []string
}

// NewExcludedCompanies creates a filter that removes postings from companies configured in the config.
func NewExcludedCompanies(companies []string) Filter {
	return &companiesFilter{
		companies: companies,
	}
}

func (f *companiesFilter) Name() string { return "companies" }

func (f *companiesFilter) Disable(string) {}

func (f *companiesFilter) IsEnabled() bool { return true }

func (f *companiesFilter) Validate() error { return nil }

func (f *companiesFilter) Apply(_ context.Context, v *jobs.Jobs) (*jobs.Jobs, Step, error) {
	initial := v.Len()
	if len(f.companies) == 0 {
		return v, Step{Initial: initial, Dropped: 0, Left: v.Len()}, nil
	}

	excluded := v.Exclude(jobs.JobCompanyField, f.companies)

	return v, Step{Initial: initial, Dropped: len(excluded), Left: v.Len()}, nil
}
