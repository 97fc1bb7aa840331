package plan

import (
	"github.com/AnirudhBhagat/AI-Automation-Platform/internal/classify"
)

// BuildPlan returns the static plan for the given workflow type, or nil
// when the workflow has no plan defined. Deterministic, no LLM involved.
//
// Callers must distinguish two outcomes: an empty-step plan means
// "nothing to execute yet" (the workflow is recognized but has no
// runnable steps), while nil means "not supported".
//
// Every call builds fresh Step values; callers may not rely on plan
// identity between calls.
func BuildPlan(workflow classify.WorkflowType) *WorkflowPlan {
	switch workflow {
	case classify.WorkflowDealApproval:
		return &WorkflowPlan{
			Workflow: workflow,
			Steps: []Step{
				{
					ID:          "sales_collect",
					Type:        StepTypeAgent,
					Owner:       OwnerSalesAgent,
					Action:      ActionCollectDealContext,
					Requires:    []string{"request_text", "entities.customer_name"},
					Produces:    []string{"facts.sales"},
					Description: "Collect sales context (account + latest opportunity) via CRM lookup.",
				},
				{
					ID:     "finance_check",
					Type:   StepTypeAgent,
					Owner:  OwnerFinanceAgent,
					Action: ActionComputeFinancials,
					Requires: []string{
						"request_text",
						"entities.customer_name",
						"entities.deal_amount_usd",
						"entities.term_months",
					},
					Produces: []string{
						"facts.finance.computed_arr_usd",
						"facts.finance.risk_flags",
						"facts.finance.billing_profile",
					},
					Description: "Compute ARR and pull the billing profile via billing lookup.",
				},
				{
					ID:          "data_signals",
					Type:        StepTypeAgent,
					Owner:       OwnerDataAgent,
					Action:      ActionCollectUsageSignals,
					Requires:    []string{"entities.customer_name"},
					Produces:    []string{"facts.data.usage_summary"},
					Description: "Collect usage signals from the analytics store.",
				},
				{
					ID:          "compliance_validate",
					Type:        StepTypeAgent,
					Owner:       OwnerComplianceAgent,
					Action:      ActionValidatePolicy,
					Requires:    []string{"facts.finance.computed_arr_usd"},
					Produces:    []string{"facts.compliance.policy"},
					Description: "Validate the deal against policy rules (discount caps, ARR thresholds).",
				},
				{
					ID:     "orchestrator_assemble",
					Type:   StepTypeAgent,
					Owner:  OwnerOrchestrator,
					Action: ActionAssembleDecisionPacket,
					Requires: []string{
						"facts.sales",
						"facts.finance.computed_arr_usd",
						"facts.compliance.policy",
						"facts.data.usage_summary",
					},
					Produces:    []string{"decision_packet"},
					Description: "Assemble a structured decision packet for downstream synthesis.",
				},
			},
		}

	case classify.WorkflowRefundEscalation:
		// Recognized but not yet planned: nothing to execute.
		return &WorkflowPlan{Workflow: workflow, Steps: []Step{}}

	case classify.WorkflowAccessRequest:
		// Recognized but not yet planned: nothing to execute.
		return &WorkflowPlan{Workflow: workflow, Steps: []Step{}}

	default:
		return nil
	}
}
