package workflow_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"leadmend/internal/domain"
	"leadmend/internal/workflow"
)

func TestGet_KnownWorkflows(t *testing.T) {
	cases := map[workflow.ID]string{
		workflow.CompanyEnrichment:   "/enrich-company",
		workflow.CompanyNameCleanup:  "/enrich-company",
		workflow.ICPFitCheck:         "/icp-fit-check",
		workflow.CustomSalesEmail:    "/api/custom-sales-email",
		workflow.ColdEmailFirstLine:  "/api/cold-email-first-line",
		workflow.PainPointExtraction: "/pain-point-extraction",
	}

	for id, path := range cases {
		def, err := workflow.Get(id)
		assert.NoError(t, err)
		assert.Equal(t, path, def.Path)
	}
}

func TestGet_UnknownWorkflow(t *testing.T) {
	def, err := workflow.Get("lead-scoring")

	assert.Nil(t, def)
	assert.ErrorIs(t, err, domain.ErrInvalidWorkflow)
}

func TestDefinition_PanelAndQuestionnaireShape(t *testing.T) {
	company, _ := workflow.Get(workflow.CompanyEnrichment)
	assert.True(t, company.HasOptionsPanel())
	assert.False(t, company.HasQuestionnaire())
	assert.True(t, company.HasOption("company_news_summary"))
	assert.False(t, company.HasOption("target_industries"))

	icp, _ := workflow.Get(workflow.ICPFitCheck)
	assert.False(t, icp.HasOptionsPanel())
	assert.True(t, icp.HasQuestionnaire())
	assert.True(t, icp.HasPrompt("exclusion_criteria"))
	assert.False(t, icp.HasPrompt("company_description"))

	firstLine, _ := workflow.Get(workflow.ColdEmailFirstLine)
	assert.False(t, firstLine.HasOptionsPanel())
	assert.False(t, firstLine.HasQuestionnaire())
}

func TestBuildFormFields_ICPSendsExactlyItsPrompts(t *testing.T) {
	def, _ := workflow.Get(workflow.ICPFitCheck)

	answers := workflow.ICPFitAnswers{
		TargetIndustries:     "saas",
		CompanySizes:         "50-500",
		TargetGeography:      "europe",
		RequiredTechnologies: "kubernetes",
		ExclusionCriteria:    "agencies",
		PerfectMatchKeywords: "platform",
	}.Fields()

	fields := workflow.BuildFormFields(def, map[string]bool{"company_description": true}, answers)

	assert.Len(t, fields, 6)
	assert.Equal(t, "saas", fields["target_industries"])
	assert.NotContains(t, fields, "company_job_openings")
	assert.NotContains(t, fields, "company_linkedin_url_finder")
}

func TestBuildFormFields_CompanyFlagsSerializedAsLiterals(t *testing.T) {
	def, _ := workflow.Get(workflow.CompanyEnrichment)

	opts := workflow.CompanyOptions{Description: true, NewsSummary: true}.Flags()
	fields := workflow.BuildFormFields(def, opts, nil)

	assert.Equal(t, map[string]string{
		"company_job_openings":        "false",
		"company_description":         "true",
		"company_news_summary":        "true",
		"company_linkedin_url_finder": "false",
	}, fields)
}

func TestBuildFormFields_NoPanelWorkflowSendsNothing(t *testing.T) {
	def, _ := workflow.Get(workflow.PainPointExtraction)

	fields := workflow.BuildFormFields(def, map[string]bool{"company_description": true}, map[string]string{"x": "y"})

	assert.Empty(t, fields)
}
