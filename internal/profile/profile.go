package profile

// Work arrangement preferences a candidate can express. WorkTypeAny accepts
// every arrangement and is the default.
const (
	WorkTypeRemote = "remote"
	WorkTypeOnsite = "onsite"
	WorkTypeHybrid = "hybrid"
	WorkTypeAny    = "any"
)

// Profile describes the searching candidate. Field shapes are expected to be
// validated upstream; the matching engine does not re-validate them.
type Profile struct {
	ID                  string   `mapstructure:"id"`
	Skills              []string `mapstructure:"skills"`
	MustHaveSkills      []string `mapstructure:"must-have-skills"`
	NiceToHaveSkills    []string `mapstructure:"nice-to-have-skills"`
	PreferredTitles     []string `mapstructure:"preferred-titles"`
	PreferredIndustries []string `mapstructure:"preferred-industries"`
	PreferredCountries  []string `mapstructure:"preferred-countries"`
	PreferredCities     []string `mapstructure:"preferred-cities"`
	WorkType            string   `mapstructure:"work-type"`
	SalaryMin           *int     `mapstructure:"salary-min"`
	SalaryMax           *int     `mapstructure:"salary-max"`
}

// EffectiveWorkType returns the configured work arrangement, defaulting to any.
func (p *Profile) EffectiveWorkType() string {
	if p.WorkType == "" {
		return WorkTypeAny
	}
	return p.WorkType
}
