package jobs

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
)

const (
	JobKeyField     = "Key"
	JobCompanyField = "Company"
)

// Work arrangements a posting can advertise. Providers that do not publish
// the arrangement leave it unknown rather than guessing.
const (
	WorkTypeRemote  = "remote"
	WorkTypeOnsite  = "onsite"
	WorkTypeHybrid  = "hybrid"
	WorkTypeUnknown = "unknown"
)

type Jobs struct {
	Items []*Job
}

// Job is a posting already normalized into the common schema by a
// provider-specific collaborator (adzuna, greenhouse, ...).
type Job struct {
	ID          string `json:"id,omitempty"`
	Source      string `json:"source,omitempty"`
	Title       string `json:"title,omitempty"`
	Company     string `json:"company,omitempty"`
	Industry    string `json:"industry,omitempty"`
	WorkType    string `json:"work_type,omitempty"`
	Country     string `json:"country,omitempty"`
	City        string `json:"city,omitempty"`
	SalaryMin   *int   `json:"salary_min,omitempty"`
	SalaryMax   *int   `json:"salary_max,omitempty"`
	Description string `json:"description,omitempty"`
	URL         string `json:"url,omitempty"`
	PostedAt    string `json:"posted_at,omitempty"`

	Match *MatchAssessment `json:"match,omitempty"`
}

// MatchAssessment is the scoring verdict attached to a posting after the
// match filter ran.
type MatchAssessment struct {
	Score      int      `json:"score"`
	Pass       bool     `json:"pass"`
	HardReject bool     `json:"hard_reject,omitempty"`
	Reasons    []string `json:"reasons,omitempty"`
}

// Key identifies a posting across provider exports. IDs are stable only
// within their source.
func (j *Job) Key() string {
	return fmt.Sprintf("%s/%s", j.Source, j.ID)
}

// EffectiveWorkType returns the advertised arrangement, defaulting to unknown.
func (j *Job) EffectiveWorkType() string {
	if j.WorkType == "" {
		return WorkTypeUnknown
	}
	return j.WorkType
}

func (j *Job) GetStringField(name string) string {
	switch name {
	case JobKeyField:
		return j.Key()
	case JobCompanyField:
		return j.Company

	default:
		return ""
	}
}

func (v *Jobs) Len() int {
	return len(v.Items)
}

// Append merges another list into this one, keeping order.
func (v *Jobs) Append(s *Jobs) {
	v.Items = append(v.Items, s.Items...)
}

func (v *Jobs) FindByKey(key string) *Job {
	for _, job := range v.Items {
		if job.Key() == key {
			return job
		}
	}
	return nil
}

// Exclude removes every posting matching any target on the given string
// field. A company target can hit several postings.
func (v *Jobs) Exclude(name string, targets []string) []string {
	var excluded []string
	for _, target := range targets {
		for idx := 0; idx < len(v.Items); {
			job := v.Items[idx]
			if job.GetStringField(name) == target {
				v.RemoveByIndex(idx)
				excluded = append(excluded, job.Key())
				continue
			}
			idx++
		}
	}
	return excluded
}

// Deduplicate drops postings whose key was already seen, keeping the first
// occurrence. Aggregating several boards routinely produces overlap.
func (v *Jobs) Deduplicate() int {
	seen := make(map[string]bool, len(v.Items))
	unique := make([]*Job, 0, len(v.Items))
	for _, job := range v.Items {
		key := job.Key()
		if seen[key] {
			continue
		}
		seen[key] = true
		unique = append(unique, job)
	}
	removed := len(v.Items) - len(unique)
	v.Items = unique
	return removed
}

// RemoveByIndex remove posting from list by index. Do not preserve order.
func (v *Jobs) RemoveByIndex(idx int) {
	v.Items[idx] = v.Items[len(v.Items)-1]
	v.Items = v.Items[:len(v.Items)-1]
}

// SortByMatchScore orders postings by descending match score. Unscored
// postings sink to the bottom; ties break on the posting key so identical
// inputs always rank identically.
func (v *Jobs) SortByMatchScore() {
	sort.SliceStable(v.Items, func(i, j int) bool {
		a, b := v.Items[i], v.Items[j]
		as, bs := -1, -1
		if a.Match != nil {
			as = a.Match.Score
		}
		if b.Match != nil {
			bs = b.Match.Score
		}
		if as != bs {
			return as > bs
		}
		return a.Key() < b.Key()
	})
}

// Truncate keeps only the first n postings. Non-positive n keeps everything.
func (v *Jobs) Truncate(n int) {
	if n <= 0 || n >= len(v.Items) {
		return
	}
	v.Items = v.Items[:n]
}

func (v *Jobs) DumpToTmpFile() (string, error) {
	file, err := os.CreateTemp("", "postings_*.json")
	if err != nil {
		return "", err
	}
	defer file.Close()

	enc := json.NewEncoder(file)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return "", err
	}
	return file.Name(), nil
}

// ReportByCompany groups postings by company with their match verdicts.
func (v *Jobs) ReportByCompany() map[string][]map[string]string {
	report := make(map[string][]map[string]string)
	for _, job := range v.Items {
		entry := map[string]string{
			"title":    job.Title,
			"url":      job.URL,
			"location": formatLocation(job),
			"salary":   formatSalary(job),
		}

		if job.Match != nil {
			entry["match_score"] = fmt.Sprintf("%d", job.Match.Score)
			entry["match_pass"] = fmt.Sprintf("%t", job.Match.Pass)
			if len(job.Match.Reasons) > 0 {
				entry["match_reason"] = job.Match.Reasons[0]
			}
		}

		report[job.Company] = append(report[job.Company], entry)
	}
	return report
}

func formatLocation(job *Job) string {
	switch {
	case job.City != "" && job.Country != "":
		return fmt.Sprintf("%s, %s (%s)", job.City, job.Country, job.EffectiveWorkType())
	case job.Country != "":
		return fmt.Sprintf("%s (%s)", job.Country, job.EffectiveWorkType())
	default:
		return job.EffectiveWorkType()
	}
}

func formatSalary(job *Job) string {
	if job.SalaryMin == nil && job.SalaryMax == nil {
		return "unknown"
	}

	low, high := "?", "?"
	if job.SalaryMin != nil {
		low = fmt.Sprintf("%d", *job.SalaryMin)
	}
	if job.SalaryMax != nil {
		high = fmt.Sprintf("%d", *job.SalaryMax)
	}
	return fmt.Sprintf("%s-%s", low, high)
}
