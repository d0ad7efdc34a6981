package matching

// stopWords filters common English function words that add noise to token
// comparison. Read-only shared data.
var stopWords = map[string]bool{
	"a": true, "an": true, "and": true, "are": true, "as": true,
	"at": true, "be": true, "but": true, "by": true, "for": true,
	"from": true, "has": true, "have": true, "in": true, "is": true,
	"it": true, "its": true, "of": true, "on": true, "or": true,
	"that": true, "the": true, "their": true, "this": true, "to": true,
	"was": true, "were": true, "will": true, "with": true, "you": true,
	"your": true,
}

// titleSynonyms clusters interchangeable role phrases under a canonical
// label. Membership is substring-based against the normalized title; two
// titles landing in the same cluster earn the similarity bonus. Extend the
// table, not the scoring logic.
var titleSynonyms = map[string][]string{
	"software engineer": {"software engineer", "software developer", "swe", "developer", "programmer"},
	"backend":           {"backend", "back-end", "back end", "server-side"},
	"frontend":          {"frontend", "front-end", "front end", "web developer"},
	"fullstack":         {"fullstack", "full-stack", "full stack"},
	"mobile":            {"mobile developer", "mobile engineer", "ios", "android"},
	"data scientist":    {"data scientist", "data science", "machine learning", "ml engineer"},
	"data engineer":     {"data engineer", "data engineering", "etl"},
	"devops":            {"devops", "sre", "site reliability", "platform engineer", "infrastructure engineer"},
	"qa":                {"qa engineer", "quality assurance", "test engineer", "sdet"},
	"product manager":   {"product manager", "product owner"},
	"designer":          {"product designer", "ux designer", "ui designer", "ux/ui"},
	"security":          {"security engineer", "application security", "infosec"},
}
