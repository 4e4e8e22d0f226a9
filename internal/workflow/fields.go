package workflow

import "strconv"

// CompanyOptions are the boolean toggles for the company enrichment and name
// cleanup workflows.
type CompanyOptions struct {
	JobOpenings       bool `json:"company_job_openings"`
	Description       bool `json:"company_description"`
	NewsSummary       bool `json:"company_news_summary"`
	LinkedInURLFinder bool `json:"company_linkedin_url_finder"`
}

// Flags returns the toggles keyed by wire field name.
func (o CompanyOptions) Flags() map[string]bool {
	return map[string]bool{
		"company_job_openings":        o.JobOpenings,
		"company_description":         o.Description,
		"company_news_summary":        o.NewsSummary,
		"company_linkedin_url_finder": o.LinkedInURLFinder,
	}
}

// ICPFitAnswers is the questionnaire for the ICP fit check workflow.
type ICPFitAnswers struct {
	TargetIndustries     string `json:"target_industries" binding:"required"`
	CompanySizes         string `json:"company_sizes" binding:"required"`
	TargetGeography      string `json:"target_geography" binding:"required"`
	RequiredTechnologies string `json:"required_technologies" binding:"required"`
	ExclusionCriteria    string `json:"exclusion_criteria" binding:"required"`
	PerfectMatchKeywords string `json:"perfect_match_keywords" binding:"required"`
}

// Fields returns the answers keyed by wire field name.
func (a ICPFitAnswers) Fields() map[string]string {
	return map[string]string{
		"target_industries":      a.TargetIndustries,
		"company_sizes":          a.CompanySizes,
		"target_geography":       a.TargetGeography,
		"required_technologies":  a.RequiredTechnologies,
		"exclusion_criteria":     a.ExclusionCriteria,
		"perfect_match_keywords": a.PerfectMatchKeywords,
	}
}

// CustomSalesEmailAnswers is the questionnaire for the custom sales email
// workflow.
type CustomSalesEmailAnswers struct {
	CompanyDescription     string `json:"company_description" binding:"required"`
	WhatYouSell            string `json:"what_you_sell" binding:"required"`
	WhoYouSellTo           string `json:"who_you_sell_to" binding:"required"`
	WhereYouSell           string `json:"where_you_sell" binding:"required"`
	CompaniesNotToSellTo   string `json:"companies_not_to_sell_to" binding:"required"`
	UniqueValueProposition string `json:"unique_value_proposition" binding:"required"`
}

// Fields returns the answers keyed by wire field name.
func (a CustomSalesEmailAnswers) Fields() map[string]string {
	return map[string]string{
		"company_description":      a.CompanyDescription,
		"what_you_sell":            a.WhatYouSell,
		"who_you_sell_to":          a.WhoYouSellTo,
		"where_you_sell":           a.WhereYouSell,
		"companies_not_to_sell_to": a.CompaniesNotToSellTo,
		"unique_value_proposition": a.UniqueValueProposition,
	}
}

// BuildFormFields assembles the multipart string fields for a submission
// under def. Boolean toggles are serialized as the literal strings "true" and
// "false". Only the field set declared by the workflow is ever sent: a
// questionnaire workflow sends its answers and no flags, an options workflow
// sends its flags and no answers.
func BuildFormFields(def *Definition, options map[string]bool, answers map[string]string) map[string]string {
	fields := make(map[string]string)
	for _, flag := range def.OptionFlags {
		fields[flag] = strconv.FormatBool(options[flag])
	}
	for _, prompt := range def.RequiredPrompts {
		fields[prompt] = answers[prompt]
	}
	return fields
}
