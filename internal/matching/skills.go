package matching

import (
	"fmt"
	"strings"

	"github.com/Thiwanka-1/Job-Search-Engine/internal/profile"
)

const (
	skillScoreCap = 40.0

	// Must-have coverage below this ratio hard-rejects the posting.
	mustHaveRejectThreshold = 0.6

	// How many missing must-haves a hard-reject reason names before
	// truncating.
	maxListedMissing = 8

	minSkillLength = 2
)

type skillAssessment struct {
	score            float64
	matched          []string
	mustHaveMatched  []string
	mustHaveMissing  []string
	mustHaveRatio    *float64
	overallRatio     float64
	hardReject       bool
	reasons          []string
}

// skillSet unions the profile's general, must-have and nice-to-have skills
// into one normalized list, preserving first-seen order so scoring stays
// deterministic.
func skillSet(p *profile.Profile) []string {
	return normalizeUnique(append(append(append([]string{}, p.Skills...), p.MustHaveSkills...), p.NiceToHaveSkills...))
}

func normalizeUnique(items []string) []string {
	seen := make(map[string]bool, len(items))
	out := make([]string, 0, len(items))
	for _, item := range items {
		n := Normalize(item)
		if n == "" || seen[n] {
			continue
		}
		seen[n] = true
		out = append(out, n)
	}
	return out
}

// assessSkills substring-matches every candidate skill against the combined
// normalized title+description text. Substring containment is deliberately
// permissive so compound names like "react native" match naturally; the only
// guard is the minimum skill length.
func assessSkills(p *profile.Profile, jobText string) *skillAssessment {
	a := &skillAssessment{}

	set := skillSet(p)
	matched := make(map[string]bool, len(set))
	for _, skill := range set {
		if len(skill) < minSkillLength {
			continue
		}
		if strings.Contains(jobText, skill) {
			matched[skill] = true
			a.matched = append(a.matched, skill)
		}
	}

	denom := len(set)
	if denom < 1 {
		denom = 1
	}
	a.overallRatio = float64(len(a.matched)) / float64(denom)

	mustHave := normalizeUnique(p.MustHaveSkills)
	if len(mustHave) == 0 {
		a.score = clamp(a.overallRatio*skillScoreCap, 0, skillScoreCap)
		a.reasons = append(a.reasons, skillReason(a.score))
		return a
	}

	for _, skill := range mustHave {
		if matched[skill] {
			a.mustHaveMatched = append(a.mustHaveMatched, skill)
		} else {
			a.mustHaveMissing = append(a.mustHaveMissing, skill)
		}
	}

	ratio := float64(len(a.mustHaveMatched)) / float64(len(mustHave))
	a.mustHaveRatio = &ratio

	if ratio < mustHaveRejectThreshold {
		a.hardReject = true
		a.reasons = append(a.reasons, fmt.Sprintf("missing too many must-have skills: %s", listMissing(a.mustHaveMissing)))
	} else if len(a.mustHaveMissing) > 0 {
		a.reasons = append(a.reasons, fmt.Sprintf("missing must-have skills: %s", strings.Join(a.mustHaveMissing, ", ")))
	}

	a.score = clamp((ratio*0.7+a.overallRatio*0.3)*skillScoreCap, 0, skillScoreCap)
	a.reasons = append(a.reasons, skillReason(a.score))
	return a
}

func skillReason(score float64) string {
	switch {
	case score >= 28:
		return "strong skill match"
	case score >= 18:
		return "moderate skill match"
	default:
		return "weak skill match"
	}
}

func listMissing(missing []string) string {
	if len(missing) > maxListedMissing {
		return strings.Join(missing[:maxListedMissing], ", ") + ", ..."
	}
	return strings.Join(missing, ", ")
}
