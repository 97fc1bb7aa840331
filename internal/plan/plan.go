package plan

import (
	"github.com/AnirudhBhagat/AI-Automation-Platform/internal/classify"
)

// StepType represents the kind of a plan step.
type StepType string

const (
	// StepTypeAgent runs an agent step. Only agent steps are executable
	// in this version.
	StepTypeAgent StepType = "AGENT"

	// StepTypeTool is declared for future tool/MCP module steps; the
	// executor skips it with a warning.
	StepTypeTool StepType = "TOOL"
)

// String returns the string representation of the step type.
func (t StepType) String() string {
	return string(t)
}

// Step owners and actions known to the platform. A binding table maps
// (owner, action) pairs to handlers at execution time.
const (
	OwnerSalesAgent      = "SalesAgent"
	OwnerFinanceAgent    = "FinanceAgent"
	OwnerDataAgent       = "DataAgent"
	OwnerComplianceAgent = "ComplianceAgent"
	OwnerOrchestrator    = "Orchestrator"

	ActionCollectDealContext     = "collect_deal_context"
	ActionComputeFinancials      = "compute_financials"
	ActionCollectUsageSignals    = "collect_usage_signals"
	ActionValidatePolicy         = "validate_policy"
	ActionAssembleDecisionPacket = "assemble_decision_packet"
)

// Step is a single step in a workflow plan. Immutable once built.
type Step struct {
	// ID is unique within a plan.
	ID string `json:"step_id"`

	// Type is the step kind; only StepTypeAgent executes.
	Type StepType `json:"step_type"`

	// Owner names the agent responsible for the step, e.g. "SalesAgent".
	Owner string `json:"owner"`

	// Action names the operation, e.g. "collect_deal_context".
	Action string `json:"action"`

	// Requires lists blackboard paths that must be present before the
	// step may run.
	Requires []string `json:"requires"`

	// Produces lists blackboard paths the step is expected to populate.
	Produces []string `json:"produces"`

	// Description is a human-readable summary.
	Description string `json:"description"`
}

// WorkflowPlan is the ordered step sequence for one workflow type.
// Immutable once built; one plan per workflow type, looked up by value.
type WorkflowPlan struct {
	Workflow classify.WorkflowType `json:"workflow"`
	Steps    []Step                `json:"steps"`
}
