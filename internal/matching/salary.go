package matching

import (
	"github.com/Thiwanka-1/Job-Search-Engine/internal/jobs"
	"github.com/Thiwanka-1/Job-Search-Engine/internal/profile"
)

const (
	salaryScoreCap     = 20.0
	salaryNeutralScore = 10.0

	// Awarded when the candidate cares about salary but the posting does
	// not publish one.
	salaryUnknownScore = 8.0

	// Stand-in upper bound for an open-ended salary band.
	salaryUnbounded = 1 << 31
)

// scoreSalary measures how much of the posted band overlaps the candidate's
// desired band, normalized by the posted band's width. A candidate without a
// salary preference is indifferent and gets the neutral score.
func scoreSalary(p *profile.Profile, job *jobs.Job) (float64, string) {
	candidateHas := p.SalaryMin != nil || p.SalaryMax != nil
	jobHas := job.SalaryMin != nil || job.SalaryMax != nil

	if !candidateHas {
		return salaryNeutralScore, ""
	}
	if !jobHas {
		return salaryUnknownScore, "job salary unknown"
	}

	candLow, candHigh := 0, salaryUnbounded
	if p.SalaryMin != nil {
		candLow = *p.SalaryMin
	}
	if p.SalaryMax != nil {
		candHigh = *p.SalaryMax
	}

	jobLow, jobHigh := effectiveJobRange(job.SalaryMin, job.SalaryMax)

	overlap := min(candHigh, jobHigh) - max(candLow, jobLow)
	if overlap < 0 {
		overlap = 0
	}

	width := max(1, jobHigh-jobLow)

	score := clamp(float64(overlap)/float64(width)*salaryScoreCap, 0, salaryScoreCap)

	switch {
	case score >= 14:
		return score, "salary fits preference"
	case score >= 8:
		return score, "salary partially fits preference"
	default:
		return score, "salary likely outside preference"
	}
}

// effectiveJobRange builds the posted band. A missing bound mirrors the
// present one, collapsing single-bound postings to a zero-width band; a
// fully unspecified band falls back to the open range.
func effectiveJobRange(low, high *int) (int, int) {
	switch {
	case low != nil && high != nil:
		return *low, *high
	case low != nil:
		return *low, *low
	case high != nil:
		return *high, *high
	default:
		return 0, salaryUnbounded
	}
}
