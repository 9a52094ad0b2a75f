package classify

import (
	"strings"

	"github.com/spigell/jobfit/internal/model"
)

const (
	IndustryIT                 = "IT"
	IndustryFinance            = "Finance"
	IndustryConsulting         = "Consulting"
	IndustryLegal              = "Legal"
	IndustryMarketing          = "Marketing"
	IndustrySales              = "Sales"
	IndustryHR                 = "HR"
	IndustryHealthcare         = "Healthcare"
	IndustryManufacturing      = "Manufacturing"
	IndustryEducation          = "Education"
	IndustryRealEstate         = "Real Estate"
	IndustryRetail             = "Retail"
	IndustryMedia              = "Media"
	IndustryTelecommunications = "Telecommunications"
	IndustryEnergy             = "Energy"
	IndustryAutomotive         = "Automotive"
)

type industryKeywords struct {
	label    string
	keywords []string
}

// taxonomy order is the tie-break for every industry decision.
// IT is intentionally the richest list so technical roles are caught early.
var taxonomy = []industryKeywords{
	{IndustryIT, []string{
		"software", "developer", "entwickler", "programmer", "programming", "informatik",
		"information technology", "head of it", "it manager", "it director", "it governance",
		"it infrastructure", "it security", "it services", "it support", "it project", "it department",
		"cybersecurity", "cyber security", "devops", "kubernetes", "backend", "frontend", "fullstack",
		"full stack", "java", "python", "javascript", "typescript", "golang", "sql", "database",
		"sysadmin", "system administrator", "network engineer", "saas", "machine learning",
		"data engineer", "data scientist", "cto", "cio", "technology", "cloud",
	}},
	{IndustryFinance, []string{
		"finance", "financial", "finanz", "bank", "accounting", "accountant", "buchhaltung",
		"controlling", "controller", "audit", "treasury", "investment", "asset management",
		"wealth management", "insurance", "versicherung", "fintech", "cfo", "risk management",
	}},
	{IndustryConsulting, []string{
		"consulting", "consultant", "beratung", "berater", "advisory", "mckinsey", "deloitte",
		"accenture", "kpmg", "pwc", "boston consulting",
	}},
	{IndustryLegal, []string{
		"legal", "lawyer", "attorney", "law firm", "jurist", "rechtsanwalt", "anwalt",
		"paralegal", "litigation", "counsel", "compliance",
	}},
	{IndustryMarketing, []string{
		"marketing", "brand", "campaign", "seo", "sem", "social media", "advertising", "werbung",
		"public relations", "kommunikation",
	}},
	{IndustrySales, []string{
		"sales", "vertrieb", "verkauf", "account manager", "account executive", "key account",
		"business development",
	}},
	{IndustryHR, []string{
		"human resources", "hr", "recruiting", "recruiter", "talent acquisition", "personalwesen",
		"personalleiter", "payroll", "people operations",
	}},
	{IndustryHealthcare, []string{
		"healthcare", "health", "hospital", "medical", "clinic", "klinik", "pharma", "nurse",
		"pflege", "doctor", "arzt", "patient",
	}},
	{IndustryManufacturing, []string{
		"manufacturing", "production", "produktion", "factory", "fabrik", "supply chain",
		"maschinenbau", "assembly", "lean management",
	}},
	{IndustryEducation, []string{
		"education", "teacher", "lehrer", "school", "schule", "university", "universität",
		"teaching", "e-learning", "academic", "professor",
	}},
	{IndustryRealEstate, []string{
		"real estate", "immobilien", "property", "facility management", "realtor",
	}},
	{IndustryRetail, []string{
		"retail", "einzelhandel", "store manager", "e-commerce", "ecommerce", "merchandising",
	}},
	{IndustryMedia, []string{
		"media", "journalist", "journalism", "publishing", "verlag", "broadcast", "redaktion",
		"film", "tv",
	}},
	{IndustryTelecommunications, []string{
		"telecom", "telecommunications", "telekommunikation", "swisscom", "mobile network",
		"network operator", "5g",
	}},
	{IndustryEnergy, []string{
		"energy", "energie", "oil and gas", "renewable", "solar", "utilities", "power plant",
		"strom",
	}},
	{IndustryAutomotive, []string{
		"automotive", "automobil", "vehicle", "fahrzeug", "car manufacturer", "bmw", "mercedes",
		"volkswagen",
	}},
}

// Industries returns the taxonomy labels in iteration order.
func Industries() []string {
	labels := make([]string, 0, len(taxonomy))
	for _, entry := range taxonomy {
		labels = append(labels, entry.label)
	}
	return labels
}

// IndustryKeywords returns a copy of the keyword list for a label.
func IndustryKeywords(label string) []string {
	for _, entry := range taxonomy {
		if entry.label == label {
			return append([]string(nil), entry.keywords...)
		}
	}
	return nil
}

// IndustryExperience is the derived industry affiliation of a profile.
type IndustryExperience struct {
	// Industries holds every label with at least one hit, in taxonomy order.
	Industries []string
	// Primary is the label with most hits across individual experiences, "" when none.
	Primary string
}

func (e IndustryExperience) Has(label string) bool {
	for _, l := range e.Industries {
		if l == label {
			return true
		}
	}
	return false
}

// MatchIndustries returns every taxonomy label with a keyword hit in the lowercased text.
func MatchIndustries(text string) []string {
	var labels []string
	for _, entry := range taxonomy {
		if FirstKeyword(text, entry.keywords) != "" {
			labels = append(labels, entry.label)
		}
	}
	return labels
}

// ClassifyProfileIndustry classifies the aggregate profile text and picks the
// primary industry by counting hits per experience entry.
func ClassifyProfileIndustry(p *model.ProfileData) IndustryExperience {
	if p == nil {
		return IndustryExperience{}
	}

	parts := []string{p.Tagline, p.Summary}
	for _, exp := range p.Experiences {
		parts = append(parts, exp.JobTitle, exp.Company)
	}
	parts = append(parts, p.SkillNames()...)

	result := IndustryExperience{
		Industries: MatchIndustries(strings.ToLower(strings.Join(parts, " "))),
	}

	counts := make(map[string]int)
	for _, exp := range p.Experiences {
		for _, label := range MatchIndustries(strings.ToLower(exp.JobTitle + " " + exp.Company)) {
			counts[label]++
		}
	}

	best := 0
	for _, entry := range taxonomy {
		if c := counts[entry.label]; c > best {
			best = c
			result.Primary = entry.label
		}
	}

	return result
}

// ClassifyJobIndustry returns the first taxonomy label hit by the job title and
// description, or "" when nothing matches.
func ClassifyJobIndustry(job *model.JobPosting) string {
	if job == nil {
		return ""
	}
	text := strings.ToLower(job.JobTitle + " " + job.Description)
	for _, entry := range taxonomy {
		if FirstKeyword(text, entry.keywords) != "" {
			return entry.label
		}
	}
	return ""
}
