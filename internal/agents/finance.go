package agents

import (
	"context"
	"math"
)

// Risk flags reported in the finance fact block.
const (
	RiskFlagPaymentRisk = "PAYMENT_RISK"
)

// paymentRiskThreshold is the on-time payment rate below which a billing
// profile is flagged as a payment risk.
const paymentRiskThreshold = 0.90

// FinanceAgent computes deal financials and pulls billing facts.
type FinanceAgent struct {
	billing BillingReader
}

// NewFinanceAgent creates a FinanceAgent backed by the given billing reader.
func NewFinanceAgent(billing BillingReader) *FinanceAgent {
	return &FinanceAgent{billing: billing}
}

// ComputeARR annualizes a deal amount over its term in months.
// Deterministic: round(dealAmountUSD / max(termMonths, 1) * 12).
func ComputeARR(dealAmountUSD, termMonths int) int {
	if termMonths < 1 {
		termMonths = 1
	}
	return int(math.Round(float64(dealAmountUSD) / float64(termMonths) * 12))
}

// ComputeFinancials computes the ARR for a deal and pulls the customer's
// billing profile. A missing billing profile yields a nil profile value
// with no risk flags derived from it.
func (a *FinanceAgent) ComputeFinancials(ctx context.Context, customerName string, dealAmountUSD, termMonths int) (map[string]any, error) {
	billing, err := a.billing.BillingProfileByCustomerName(ctx, customerName)
	if err != nil {
		return nil, err
	}

	arr := ComputeARR(dealAmountUSD, termMonths)

	riskFlags := []string{}
	if billing != nil && billing.OnTimePaymentRate < paymentRiskThreshold {
		riskFlags = append(riskFlags, RiskFlagPaymentRisk)
	}

	out := map[string]any{
		"status":           StatusOK,
		"computed_arr_usd": arr,
		"risk_flags":       riskFlags,
	}
	if billing != nil {
		out["billing_profile"] = billing.Map()
	} else {
		out["billing_profile"] = nil
	}
	return out, nil
}
