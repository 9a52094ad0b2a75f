package model

// ProfileData is the candidate profile scored against job postings.
type ProfileData struct {
	Tagline     string       `json:"tagline,omitempty" mapstructure:"tagline"`
	Summary     string       `json:"summary,omitempty" mapstructure:"summary"`
	Skills      []Skill      `json:"skills,omitempty" mapstructure:"skills" validate:"dive"`
	Experiences []Experience `json:"experiences,omitempty" mapstructure:"experiences" validate:"dive"`
	Education   []Education  `json:"education,omitempty" mapstructure:"education" validate:"dive"`
	Languages   []Language   `json:"languages,omitempty" mapstructure:"languages" validate:"dive"`
}

type Skill struct {
	Name     string `json:"name" mapstructure:"name" validate:"required"`
	Category string `json:"category,omitempty" mapstructure:"category"`
}

// Experience is a single employment interval. Dates are kept as the raw
// strings the profile was stored with; unparsable values are tolerated.
type Experience struct {
	JobTitle  string   `json:"jobTitle" mapstructure:"jobTitle" validate:"required"`
	Company   string   `json:"company,omitempty" mapstructure:"company"`
	Bullets   []string `json:"bullets,omitempty" mapstructure:"bullets"`
	StartDate string   `json:"startDate,omitempty" mapstructure:"startDate"`
	EndDate   string   `json:"endDate,omitempty" mapstructure:"endDate"`
	IsCurrent bool     `json:"isCurrent,omitempty" mapstructure:"isCurrent"`
}

type Education struct {
	Degree      string `json:"degree" mapstructure:"degree"`
	Institution string `json:"institution,omitempty" mapstructure:"institution"`
}

type Language struct {
	Name  string `json:"name" mapstructure:"name" validate:"required"`
	Level string `json:"level,omitempty" mapstructure:"level"`
}

// Titles returns the non-empty experience titles in profile order.
func (p *ProfileData) Titles() []string {
	titles := make([]string, 0, len(p.Experiences))
	for _, exp := range p.Experiences {
		if exp.JobTitle != "" {
			titles = append(titles, exp.JobTitle)
		}
	}
	return titles
}

// SkillNames returns the non-empty skill names in profile order.
func (p *ProfileData) SkillNames() []string {
	names := make([]string, 0, len(p.Skills))
	for _, s := range p.Skills {
		if s.Name != "" {
			names = append(names, s.Name)
		}
	}
	return names
}
