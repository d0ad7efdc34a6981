package filtering

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/Thiwanka-1/Job-Search-Engine/internal/jobs"
	"github.com/Thiwanka-1/Job-Search-Engine/internal/profile"

	"go.uber.org/zap"
)

func newMatchFilter(p *profile.Profile, minScore int, excludeFile string) Filter {
	return NewMatch(&MatchFilterConfig{
		Enabled:      true,
		MinimumScore: minScore,
	}, &MatchFilterDeps{
		Logger:      zap.NewNop(),
		Profile:     p,
		ExcludeFile: excludeFile,
	})
}

func TestMatchFilterKeepsPassingPostings(t *testing.T) {
	p := &profile.Profile{
		Skills:   []string{"Go"},
		WorkType: profile.WorkTypeRemote,
	}

	postings := &jobs.Jobs{
		Items: []*jobs.Job{
			{ID: "1", Source: "adzuna", Title: "Go Developer", WorkType: jobs.WorkTypeRemote},
			{ID: "2", Source: "adzuna", Title: "Registered Nurse"},
		},
	}

	left, step, err := newMatchFilter(p, 0, "").Apply(context.Background(), postings)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if step.Initial != 2 || step.Dropped != 1 || step.Left != 1 {
		t.Fatalf("unexpected step: %+v", step)
	}
	if left.Items[0].Key() != "adzuna/1" {
		t.Fatalf("wrong posting survived: %s", left.Items[0].Key())
	}
}

func TestMatchFilterAttachesAssessmentToEveryPosting(t *testing.T) {
	p := &profile.Profile{Skills: []string{"Go"}}

	rejected := &jobs.Job{ID: "2", Source: "adzuna", Title: "Registered Nurse"}
	postings := &jobs.Jobs{Items: []*jobs.Job{rejected}}

	if _, _, err := newMatchFilter(p, 0, "").Apply(context.Background(), postings); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Dropped postings still carry their verdict for reporting.
	if rejected.Match == nil {
		t.Fatalf("expected an assessment on the rejected posting")
	}
	if rejected.Match.Pass {
		t.Fatalf("did not expect the nurse posting to pass")
	}
	if len(rejected.Match.Reasons) == 0 {
		t.Fatalf("expected reasons on the rejected posting")
	}
}

func TestMatchFilterHonorsMinimumScore(t *testing.T) {
	p := &profile.Profile{
		Skills:   []string{"Go"},
		WorkType: profile.WorkTypeRemote,
	}

	// This posting scores 85, above the pass threshold but below the floor.
	postings := &jobs.Jobs{
		Items: []*jobs.Job{
			{ID: "1", Source: "adzuna", Title: "Go Developer", WorkType: jobs.WorkTypeRemote},
		},
	}

	_, step, err := newMatchFilter(p, 90, "").Apply(context.Background(), postings)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if step.Left != 0 {
		t.Fatalf("expected the posting to be dropped by the score floor, got %+v", step)
	}
}

func TestMatchFilterAppendsRejectsToExcludeFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "exclude.json")
	p := &profile.Profile{Skills: []string{"Go"}}

	postings := &jobs.Jobs{
		Items: []*jobs.Job{
			{ID: "2", Source: "adzuna", Title: "Registered Nurse", Company: "Clinic"},
		},
	}

	if _, _, err := newMatchFilter(p, 0, path).Apply(context.Background(), postings); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	excluded, err := jobs.GetExcludedJobsFromFile(path)
	if err != nil {
		t.Fatalf("loading exclude file: %v", err)
	}

	if len(excluded.Items) != 1 {
		t.Fatalf("expected 1 excluded posting, got %d", len(excluded.Items))
	}

	item := excluded.Items[0]
	if item.Key != "adzuna/2" {
		t.Fatalf("unexpected key: %q", item.Key)
	}
	if item.Actor != jobs.ExcludeActorMatcher {
		t.Fatalf("unexpected actor: %q", item.Actor)
	}
	if item.Reason == "" {
		t.Fatalf("expected the leading score reason to be recorded")
	}
}

func TestMatchFilterValidate(t *testing.T) {
	tests := []struct {
		name    string
		filter  Filter
		wantErr bool
	}{
		{
			name:    "valid",
			filter:  newMatchFilter(&profile.Profile{Skills: []string{"Go"}}, 70, ""),
			wantErr: false,
		},
		{
			name:    "missing profile",
			filter:  NewMatch(&MatchFilterConfig{Enabled: true}, &MatchFilterDeps{Logger: zap.NewNop()}),
			wantErr: true,
		},
		{
			name:    "score floor out of range",
			filter:  newMatchFilter(&profile.Profile{Skills: []string{"Go"}}, 101, ""),
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.filter.Validate()
			if tt.wantErr && err == nil {
				t.Fatalf("expected an error")
			}
			if !tt.wantErr && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}
