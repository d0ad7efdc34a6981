package matching

import (
	"math"

	"github.com/Thiwanka-1/Job-Search-Engine/internal/jobs"
	"github.com/Thiwanka-1/Job-Search-Engine/internal/profile"
)

// PassThreshold is the score at and above which a posting counts as an
// acceptable match.
const PassThreshold = 70

// hardRejectCeiling keeps hard-rejected postings below the pass threshold no
// matter what the other categories contribute.
const hardRejectCeiling = 49

// Result is the verdict for one (profile, posting) pair.
type Result struct {
	Score      int       `json:"score"`
	Pass       bool      `json:"pass"`
	HardReject bool      `json:"hardReject"`
	Breakdown  Breakdown `json:"breakdown"`
	Reasons    []string  `json:"reasons"`
}

// Breakdown carries the capped sub-scores and the auxiliary signals behind
// them. The five sub-scores always sum to the raw score before rounding and
// gating. MustHaveRatio is nil when the profile names no must-have skills.
type Breakdown struct {
	SkillScore        float64  `json:"skillScore"`
	TitleScore        float64  `json:"titleScore"`
	SalaryScore       float64  `json:"salaryScore"`
	LocationWorkScore float64  `json:"locationWorkScore"`
	IndustryScore     float64  `json:"industryScore"`
	WorkTypeScore     float64  `json:"workTypeScore"`
	LocationScore     float64  `json:"locationScore"`
	MustHaveRatio     *float64 `json:"mustHaveRatio,omitempty"`
	OverallMatchRatio float64  `json:"overallMatchRatio"`
	MatchedSkills     []string `json:"matchedSkills,omitempty"`
	MissingMustHaves  []string `json:"missingMustHaves,omitempty"`
}

// Score evaluates how well a normalized posting fits the candidate profile.
// Categories run in a fixed order (skills, title, salary, location/work
// type, industry) and the reasons list follows that order with must-have
// warnings first. Missing fields degrade to neutral defaults instead of
// failing.
func Score(p *profile.Profile, job *jobs.Job) *Result {
	jobText := Normalize(job.Title) + " " + Normalize(job.Description)

	skills := assessSkills(p, jobText)
	titleScore, titleReason := scoreTitle(p.PreferredTitles, job.Title)
	salaryScore, salaryReason := scoreSalary(p, job)
	workScore, locScore, locationReasons := scoreLocation(p, job)
	locationWorkScore := clamp(workScore+locScore, 0, locationWorkScoreCap)
	industryScore, industryReason := scoreIndustry(p.PreferredIndustries, job.Industry)

	raw := skills.score + titleScore + salaryScore + locationWorkScore + industryScore
	score := int(math.Round(raw))
	// The category caps sum to 110, so a near-perfect posting overflows the
	// reported scale.
	if score > 100 {
		score = 100
	}
	if skills.hardReject && score > hardRejectCeiling {
		score = hardRejectCeiling
	}

	reasons := make([]string, 0, len(skills.reasons)+len(locationReasons)+3)
	reasons = append(reasons, skills.reasons...)
	reasons = append(reasons, titleReason)
	if salaryReason != "" {
		reasons = append(reasons, salaryReason)
	}
	reasons = append(reasons, locationReasons...)
	if industryReason != "" {
		reasons = append(reasons, industryReason)
	}

	return &Result{
		Score:      score,
		Pass:       score >= PassThreshold && !skills.hardReject,
		HardReject: skills.hardReject,
		Breakdown: Breakdown{
			SkillScore:        skills.score,
			TitleScore:        titleScore,
			SalaryScore:       salaryScore,
			LocationWorkScore: locationWorkScore,
			IndustryScore:     industryScore,
			WorkTypeScore:     workScore,
			LocationScore:     locScore,
			MustHaveRatio:     skills.mustHaveRatio,
			OverallMatchRatio: skills.overallRatio,
			MatchedSkills:     skills.matched,
			MissingMustHaves:  skills.mustHaveMissing,
		},
		Reasons: reasons,
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
