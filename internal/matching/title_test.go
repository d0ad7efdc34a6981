package matching

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestScoreTitle(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		preferred []string
		jobTitle  string
		expect    float64
		reason    string
	}{
		{
			name:      "no preferences is neutral",
			preferred: nil,
			jobTitle:  "Chief Yak Shaver",
			expect:    10,
			reason:    "title somewhat relevant",
		},
		{
			name:      "identical title",
			preferred: []string{"Backend Engineer"},
			jobTitle:  "Backend Engineer",
			expect:    20,
			reason:    "title matches well",
		},
		{
			name:      "partial overlap plus synonym group",
			preferred: []string{"Backend Engineer"},
			jobTitle:  "Back-end Software Engineer",
			expect:    10,
			reason:    "title somewhat relevant",
		},
		{
			name:      "unrelated title",
			preferred: []string{"Backend Engineer"},
			jobTitle:  "Registered Nurse",
			expect:    0,
			reason:    "title has low relevance",
		},
		{
			name:      "best preferred title wins",
			preferred: []string{"Registered Nurse", "Backend Engineer"},
			jobTitle:  "Backend Engineer",
			expect:    20,
			reason:    "title matches well",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			score, reason := scoreTitle(tt.preferred, tt.jobTitle)

			require.InDelta(t, tt.expect, score, 1e-9)
			require.Equal(t, tt.reason, reason)
		})
	}
}

func TestJaccard(t *testing.T) {
	t.Parallel()

	a := map[string]bool{"backend": true, "engineer": true}
	b := map[string]bool{"backend": true, "developer": true}

	require.InDelta(t, 1.0/3.0, jaccard(a, b), 1e-9)
	require.Zero(t, jaccard(map[string]bool{}, map[string]bool{}))
}

func TestSynonymGroups(t *testing.T) {
	t.Parallel()

	groups := synonymGroups(Normalize("Back-end Software Engineer"))

	require.True(t, groups["backend"])
	require.True(t, groups["software engineer"])
	require.False(t, groups["devops"])
}
