package filtering

import (
	"context"

	"github.com/Thiwanka-1/Job-Search-Engine/internal/jobs"
)

type duplicatesFilter struct{}

// NewDuplicates creates a filter that removes postings appearing more than
// once across provider exports.
func NewDuplicates() Filter {
	return &duplicatesFilter{}
}

func (f *duplicatesFilter) Name() string { return "duplicates" }

func (f *duplicatesFilter) Disable(string) {}

func (f *duplicatesFilter) IsEnabled() bool { return true }

func (f *duplicatesFilter) Validate() error { return nil }

func (f *duplicatesFilter) Apply(_ context.Context, v *jobs.Jobs) (*jobs.Jobs, Step, error) {
	initial := v.Len()
	removed := v.Deduplicate()

	return v, Step{Initial: initial, Dropped: removed, Left: v.Len()}, nil
}
