package matching

import (
	"fmt"
	"strings"
)

const (
	industryScoreCap          = 10.0
	industryNeutralScore      = 5.0
	industryUnknownScore      = 4.0
	industryMismatchScore     = 2.0
)

// scoreIndustry substring-matches the candidate's preferred industries
// against the posting's industry tag, in both directions.
func scoreIndustry(preferred []string, industry string) (float64, string) {
	if len(preferred) == 0 {
		return industryNeutralScore, ""
	}

	norm := Normalize(industry)
	if norm == "" {
		return industryUnknownScore, "industry unknown"
	}

	for _, p := range preferred {
		np := Normalize(p)
		if np == "" {
			continue
		}
		if strings.Contains(norm, np) || strings.Contains(np, norm) {
			return industryScoreCap, fmt.Sprintf("industry matches (%s)", industry)
		}
	}

	return industryMismatchScore, "industry may not match preferences"
}
