package matching

import (
	"testing"

	"github.com/Thiwanka-1/Job-Search-Engine/internal/jobs"
	"github.com/Thiwanka-1/Job-Search-Engine/internal/profile"

	"github.com/stretchr/testify/require"
)

func intp(v int) *int { return &v }

func TestScoreSalary(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		profile *profile.Profile
		job     *jobs.Job
		expect  float64
		reason  string
	}{
		{
			name:    "candidate indifferent",
			profile: &profile.Profile{},
			job:     &jobs.Job{SalaryMin: intp(100000), SalaryMax: intp(150000)},
			expect:  10,
			reason:  "",
		},
		{
			name:    "job salary unknown",
			profile: &profile.Profile{SalaryMin: intp(80000)},
			job:     &jobs.Job{},
			expect:  8,
			reason:  "job salary unknown",
		},
		{
			name:    "partial overlap",
			profile: &profile.Profile{SalaryMin: intp(80000), SalaryMax: intp(120000)},
			job:     &jobs.Job{SalaryMin: intp(100000), SalaryMax: intp(150000)},
			expect:  8,
			reason:  "salary partially fits preference",
		},
		{
			name:    "full containment",
			profile: &profile.Profile{SalaryMin: intp(50000)},
			job:     &jobs.Job{SalaryMin: intp(60000), SalaryMax: intp(90000)},
			expect:  20,
			reason:  "salary fits preference",
		},
		{
			name:    "no overlap",
			profile: &profile.Profile{SalaryMin: intp(150000)},
			job:     &jobs.Job{SalaryMin: intp(60000), SalaryMax: intp(90000)},
			expect:  0,
			reason:  "salary likely outside preference",
		},
		{
			name:    "single bound posting collapses to zero width band",
			profile: &profile.Profile{SalaryMin: intp(50000), SalaryMax: intp(100000)},
			job:     &jobs.Job{SalaryMin: intp(70000)},
			expect:  0,
			reason:  "salary likely outside preference",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			score, reason := scoreSalary(tt.profile, tt.job)

			require.InDelta(t, tt.expect, score, 1e-9)
			require.Equal(t, tt.reason, reason)
		})
	}
}

func TestEffectiveJobRange(t *testing.T) {
	t.Parallel()

	low, high := effectiveJobRange(intp(60000), intp(90000))
	require.Equal(t, 60000, low)
	require.Equal(t, 90000, high)

	low, high = effectiveJobRange(intp(60000), nil)
	require.Equal(t, 60000, low)
	require.Equal(t, 60000, high)

	low, high = effectiveJobRange(nil, intp(90000))
	require.Equal(t, 90000, low)
	require.Equal(t, 90000, high)
}
