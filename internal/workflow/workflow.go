// Package workflow defines the enrichment workflow catalog: one entry per
// backend use-case, each mapping to a distinct endpoint path and field set.
package workflow

import "leadmend/internal/domain"

// ID identifies an enrichment workflow.
type ID string

const (
	CompanyEnrichment   ID = "company_enrichment"
	CompanyNameCleanup  ID = "company_name_cleanup"
	ICPFitCheck         ID = "icp_fit_check"
	CustomSalesEmail    ID = "custom_sales_email"
	ColdEmailFirstLine  ID = "cold_email_first_line"
	PainPointExtraction ID = "pain_point_extraction"
)

// Definition describes one workflow's backend contract and input surface.
type Definition struct {
	ID   ID
	Path string

	// OptionFlags are the boolean toggles shown for this workflow. A
	// workflow with flags requires at least one enabled toggle before
	// submission; a workflow without flags has no options panel.
	OptionFlags []string

	// RequiredPrompts are questionnaire fields that must carry non-blank
	// text before submission.
	RequiredPrompts []string
}

// HasOptionsPanel reports whether this workflow presents boolean toggles.
func (d *Definition) HasOptionsPanel() bool {
	return len(d.OptionFlags) > 0
}

// HasQuestionnaire reports whether this workflow requires free-text answers.
func (d *Definition) HasQuestionnaire() bool {
	return len(d.RequiredPrompts) > 0
}

// HasOption reports whether name is a toggle defined for this workflow.
func (d *Definition) HasOption(name string) bool {
	for _, f := range d.OptionFlags {
		if f == name {
			return true
		}
	}
	return false
}

// HasPrompt reports whether id is a questionnaire field for this workflow.
func (d *Definition) HasPrompt(id string) bool {
	for _, p := range d.RequiredPrompts {
		if p == id {
			return true
		}
	}
	return false
}

// companyOptionFlags are shared by company enrichment and name cleanup.
var companyOptionFlags = []string{
	"company_job_openings",
	"company_description",
	"company_news_summary",
	"company_linkedin_url_finder",
}

var catalog = map[ID]Definition{
	CompanyEnrichment: {
		ID:          CompanyEnrichment,
		Path:        "/enrich-company",
		OptionFlags: companyOptionFlags,
	},
	CompanyNameCleanup: {
		ID:          CompanyNameCleanup,
		Path:        "/enrich-company",
		OptionFlags: companyOptionFlags,
	},
	ICPFitCheck: {
		ID:   ICPFitCheck,
		Path: "/icp-fit-check",
		RequiredPrompts: []string{
			"target_industries",
			"company_sizes",
			"target_geography",
			"required_technologies",
			"exclusion_criteria",
			"perfect_match_keywords",
		},
	},
	CustomSalesEmail: {
		ID:   CustomSalesEmail,
		Path: "/api/custom-sales-email",
		RequiredPrompts: []string{
			"company_description",
			"what_you_sell",
			"who_you_sell_to",
			"where_you_sell",
			"companies_not_to_sell_to",
			"unique_value_proposition",
		},
	},
	ColdEmailFirstLine: {
		ID:   ColdEmailFirstLine,
		Path: "/api/cold-email-first-line",
	},
	PainPointExtraction: {
		ID:   PainPointExtraction,
		Path: "/pain-point-extraction",
	},
}

// Get returns the definition for id.
func Get(id ID) (*Definition, error) {
	def, ok := catalog[id]
	if !ok {
		return nil, domain.ErrInvalidWorkflow
	}
	return &def, nil
}

// All returns the catalog entries in a stable order.
func All() []Definition {
	order := []ID{
		CompanyEnrichment, CompanyNameCleanup, ICPFitCheck,
		CustomSalesEmail, ColdEmailFirstLine, PainPointExtraction,
	}
	defs := make([]Definition, 0, len(order))
	for _, id := range order {
		defs = append(defs, catalog[id])
	}
	return defs
}
