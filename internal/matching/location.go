package matching

import (
	"fmt"
	"strings"

	"github.com/Thiwanka-1/Job-Search-Engine/internal/jobs"
	"github.com/Thiwanka-1/Job-Search-Engine/internal/profile"
)

const (
	workTypeScoreCap     = 10.0
	locationScoreCap     = 10.0
	locationWorkScoreCap = 20.0

	// Awarded when the posting does not publish the compared field.
	unknownFieldScore = 6.0
)

// scoreLocation evaluates the work arrangement and the country/city
// preferences independently. Both halves degrade gracefully when either side
// leaves a field unknown.
func scoreLocation(p *profile.Profile, job *jobs.Job) (workScore, locationScore float64, reasons []string) {
	workScore = workTypeScoreCap

	if pref := p.EffectiveWorkType(); pref != profile.WorkTypeAny {
		switch advertised := job.EffectiveWorkType(); advertised {
		case jobs.WorkTypeUnknown:
			workScore = unknownFieldScore
			reasons = append(reasons, "work arrangement unknown")
		case pref:
			reasons = append(reasons, fmt.Sprintf("work arrangement matches (%s)", pref))
		default:
			workScore = 0
			reasons = append(reasons, fmt.Sprintf("work arrangement mismatch: want %s, posting is %s", pref, advertised))
		}
	}

	locationScore = locationScoreCap

	if len(p.PreferredCountries) > 0 {
		switch {
		case strings.TrimSpace(job.Country) == "":
			locationScore = unknownFieldScore
			reasons = append(reasons, "country unknown")
		case containsNormalized(p.PreferredCountries, job.Country):
			locationScore = locationScoreCap
			reasons = append(reasons, fmt.Sprintf("country matches (%s)", job.Country))
		default:
			locationScore = 0
			reasons = append(reasons, fmt.Sprintf("country %s is not in preferred countries", job.Country))
		}
	}

	// City adjustments never resurrect a rejected country.
	if locationScore > 0 && len(p.PreferredCities) > 0 {
		switch {
		case strings.TrimSpace(job.City) == "":
			locationScore = min(locationScore, 8)
		case containsNormalized(p.PreferredCities, job.City):
			locationScore = min(locationScoreCap, locationScore+2)
			reasons = append(reasons, fmt.Sprintf("city matches (%s)", job.City))
		default:
			locationScore = max(0, locationScore-4)
		}
	}

	return workScore, locationScore, reasons
}

// containsNormalized reports whether value equals any set member after
// normalization. Exact match, not substring.
func containsNormalized(set []string, value string) bool {
	v := Normalize(value)
	for _, item := range set {
		if Normalize(item) == v {
			return true
		}
	}
	return false
}
