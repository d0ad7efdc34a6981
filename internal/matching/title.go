package matching

import "strings"

const (
	titleScoreCap = 20.0

	// Granted when the job title and a preferred title land in the same
	// synonym cluster.
	synonymBonus = 0.25

	titleNeutralScore = 10.0
)

// scoreTitle compares the job title against the candidate's preferred titles
// with token-set Jaccard similarity plus the synonym-cluster bonus, keeping
// the best preferred title. No preferences yield the neutral score.
func scoreTitle(preferredTitles []string, jobTitle string) (float64, string) {
	score := titleNeutralScore

	if len(preferredTitles) > 0 {
		jobTokens := Tokenize(jobTitle)
		jobGroups := synonymGroups(Normalize(jobTitle))

		best := 0.0
		for _, preferred := range preferredTitles {
			sim := jaccard(jobTokens, Tokenize(preferred))
			if shareGroup(jobGroups, synonymGroups(Normalize(preferred))) {
				sim += synonymBonus
			}
			if sim > 1 {
				sim = 1
			}
			if sim > best {
				best = sim
			}
		}

		score = best * titleScoreCap
	}

	switch {
	case score >= 16:
		return score, "title matches well"
	case score >= 10:
		return score, "title somewhat relevant"
	default:
		return score, "title has low relevance"
	}
}

// jaccard computes intersection-over-union of two token sets. Two empty sets
// count as no similarity.
func jaccard(a, b map[string]bool) float64 {
	inter := 0
	for tok := range a {
		if b[tok] {
			inter++
		}
	}

	union := len(a) + len(b) - inter
	if union == 0 {
		return 0
	}
	return float64(inter) / float64(union)
}

// synonymGroups returns the canonical clusters whose member phrases appear
// in the normalized title.
func synonymGroups(normalizedTitle string) map[string]bool {
	groups := make(map[string]bool)
	for canonical, members := range titleSynonyms {
		for _, member := range members {
			if strings.Contains(normalizedTitle, member) {
				groups[canonical] = true
				break
			}
		}
	}
	return groups
}

func shareGroup(a, b map[string]bool) bool {
	for group := range a {
		if b[group] {
			return true
		}
	}
	return false
}
