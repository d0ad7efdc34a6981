package filtering

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/Thiwanka-1/Job-Search-Engine/internal/jobs"

	"go.uber.org/zap"
)

func TestDuplicatesFilter(t *testing.T) {
	postings := &jobs.Jobs{
		Items: []*jobs.Job{
			{ID: "1", Source: "adzuna"},
			{ID: "1", Source: "adzuna"},
			{ID: "2", Source: "adzuna"},
		},
	}

	_, step, err := NewDuplicates().Apply(context.Background(), postings)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if step.Dropped != 1 || step.Left != 2 {
		t.Fatalf("unexpected step: %+v", step)
	}
}

func TestCompaniesFilter(t *testing.T) {
	postings := &jobs.Jobs{
		Items: []*jobs.Job{
			{ID: "1", Source: "adzuna", Company: "Acme"},
			{ID: "2", Source: "adzuna", Company: "Globex"},
		},
	}

	_, step, err := NewExcludedCompanies([]string{"Acme"}).Apply(context.Background(), postings)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if step.Dropped != 1 || step.Left != 1 {
		t.Fatalf("unexpected step: %+v", step)
	}
	if postings.Items[0].Company != "Globex" {
		t.Fatalf("wrong posting survived: %s", postings.Items[0].Key())
	}
}

func TestExcludeFileFilter(t *testing.T) {
	path := filepath.Join(t.TempDir(), "exclude.json")

	seed := &jobs.Jobs{
		Items: []*jobs.Job{{ID: "1", Source: "adzuna"}},
	}
	if err := seed.ToExcluded(jobs.ExcludeActorUser, "seen before").ToFile(path); err != nil {
		t.Fatalf("seeding exclude file: %v", err)
	}

	postings := &jobs.Jobs{
		Items: []*jobs.Job{
			{ID: "1", Source: "adzuna"},
			{ID: "2", Source: "adzuna"},
		},
	}

	_, step, err := NewExcludeFile(path).Apply(context.Background(), postings)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if step.Dropped != 1 || step.Left != 1 {
		t.Fatalf("unexpected step: %+v", step)
	}
	if postings.FindByKey("adzuna/1") != nil {
		t.Fatalf("excluded posting is still present")
	}
}

func TestExcludeFileFilterWithoutPath(t *testing.T) {
	postings := &jobs.Jobs{
		Items: []*jobs.Job{{ID: "1", Source: "adzuna"}},
	}

	_, step, err := NewExcludeFile("").Apply(context.Background(), postings)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if step.Dropped != 0 || step.Left != 1 {
		t.Fatalf("unexpected step: %+v", step)
	}
}

func TestRunFiltersValidatesBeforeApplying(t *testing.T) {
	match := NewMatch(&MatchFilterConfig{Enabled: true}, &MatchFilterDeps{
		Logger: zap.NewNop(),
	})

	filters := New([]Filter{NewDuplicates(), match}, zap.NewNop())

	postings := &jobs.Jobs{
		Items: []*jobs.Job{
			{ID: "1", Source: "adzuna"},
			{ID: "1", Source: "adzuna"},
		},
	}

	if _, err := filters.RunFilters(context.Background(), postings); err == nil {
		t.Fatalf("expected a validation error for the missing profile")
	}

	// Validation failed up front, so the duplicates filter never ran.
	if postings.Len() != 2 {
		t.Fatalf("postings were mutated before validation completed: %d", postings.Len())
	}
}

func TestRunFiltersSkipsDisabled(t *testing.T) {
	// The match filter would fail validation without a profile, but a
	// disabled filter is neither validated nor applied.
	match := NewMatch(&MatchFilterConfig{Enabled: true}, &MatchFilterDeps{
		Logger: zap.NewNop(),
	})

	filters := New([]Filter{match}, zap.NewNop())
	filters.DisableByName("match_score", "testing")

	postings := &jobs.Jobs{
		Items: []*jobs.Job{
			{ID: "1", Source: "adzuna"},
		},
	}

	left, err := filters.RunFilters(context.Background(), postings)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if left.Len() != 1 {
		t.Fatalf("disabled filter still dropped postings: %d", left.Len())
	}
}
