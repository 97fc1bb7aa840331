package plan

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AnirudhBhagat/AI-Automation-Platform/internal/classify"
)

func TestBuildPlan_DealApproval(t *testing.T) {
	p := BuildPlan(classify.WorkflowDealApproval)
	require.NotNil(t, p)
	assert.Equal(t, classify.WorkflowDealApproval, p.Workflow)
	require.Len(t, p.Steps, 5)

	// The dependency chain is fixed: gather context, compute terms,
	// gather signals, validate policy, assemble the packet.
	wantIDs := []string{
		"sales_collect",
		"finance_check",
		"data_signals",
		"compliance_validate",
		"orchestrator_assemble",
	}
	for i, step := range p.Steps {
		assert.Equal(t, wantIDs[i], step.ID)
		assert.Equal(t, StepTypeAgent, step.Type)
		assert.NotEmpty(t, step.Description)
	}

	assert.Equal(t, OwnerSalesAgent, p.Steps[0].Owner)
	assert.Equal(t, ActionCollectDealContext, p.Steps[0].Action)
	assert.Equal(t, []string{"request_text", "entities.customer_name"}, p.Steps[0].Requires)
	assert.Equal(t, []string{"facts.sales"}, p.Steps[0].Produces)

	assert.Equal(t, OwnerFinanceAgent, p.Steps[1].Owner)
	assert.Contains(t, p.Steps[1].Requires, "entities.deal_amount_usd")
	assert.Contains(t, p.Steps[1].Requires, "entities.term_months")

	assert.Equal(t, OwnerComplianceAgent, p.Steps[3].Owner)
	assert.Equal(t, []string{"facts.finance.computed_arr_usd"}, p.Steps[3].Requires)

	last := p.Steps[4]
	assert.Equal(t, OwnerOrchestrator, last.Owner)
	assert.Equal(t, ActionAssembleDecisionPacket, last.Action)
	assert.Equal(t, []string{"decision_packet"}, last.Produces)
	assert.Equal(t, []string{
		"facts.sales",
		"facts.finance.computed_arr_usd",
		"facts.compliance.policy",
		"facts.data.usage_summary",
	}, last.Requires)
}

func TestBuildPlan_RecognizedButUnplanned(t *testing.T) {
	for _, wf := range []classify.WorkflowType{
		classify.WorkflowRefundEscalation,
		classify.WorkflowAccessRequest,
	} {
		p := BuildPlan(wf)
		require.NotNil(t, p, "workflow %s", wf)
		assert.Equal(t, wf, p.Workflow)
		assert.Empty(t, p.Steps)
	}
}

func TestBuildPlan_Unknown(t *testing.T) {
	assert.Nil(t, BuildPlan(classify.WorkflowUnknown))
	assert.Nil(t, BuildPlan(classify.WorkflowType("BOGUS")))
}

func TestBuildPlan_FreshValuesPerCall(t *testing.T) {
	first := BuildPlan(classify.WorkflowDealApproval)
	first.Steps[0].Requires[0] = "mutated"

	second := BuildPlan(classify.WorkflowDealApproval)
	assert.Equal(t, "request_text", second.Steps[0].Requires[0])
}
