package agents

import (
	"context"

	"github.com/AnirudhBhagat/AI-Automation-Platform/internal/policy"
)

// ComplianceAgent validates deals against the platform policy rules.
type ComplianceAgent struct{}

// NewComplianceAgent creates a ComplianceAgent.
func NewComplianceAgent() *ComplianceAgent {
	return &ComplianceAgent{}
}

// ValidatePolicy applies the deal policy to the requested discount and
// computed ARR.
func (a *ComplianceAgent) ValidatePolicy(_ context.Context, discountPct, computedARRUSD int) (map[string]any, error) {
	result := policy.ValidateDealPolicy(discountPct, computedARRUSD)
	return map[string]any{
		"status": StatusOK,
		"policy": result.Map(),
	}, nil
}
