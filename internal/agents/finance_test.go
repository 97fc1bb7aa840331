package agents

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AnirudhBhagat/AI-Automation-Platform/internal/store"
)

type fakeBillingReader struct {
	profile *store.BillingProfile
}

func (f *fakeBillingReader) BillingProfileByCustomerName(_ context.Context, _ string) (*store.BillingProfile, error) {
	return f.profile, nil
}

func TestComputeARR(t *testing.T) {
	tests := []struct {
		name          string
		dealAmountUSD int
		termMonths    int
		expected      int
	}{
		{name: "twelve month deal annualizes to itself", dealAmountUSD: 120_000, termMonths: 12, expected: 120_000},
		{name: "two year deal halves", dealAmountUSD: 24_000, termMonths: 24, expected: 12_000},
		{name: "six month deal doubles", dealAmountUSD: 60_000, termMonths: 6, expected: 120_000},
		{name: "zero term clamps to one month", dealAmountUSD: 1_000, termMonths: 0, expected: 12_000},
		{name: "rounding", dealAmountUSD: 100, termMonths: 7, expected: 171},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ComputeARR(tt.dealAmountUSD, tt.termMonths))
		})
	}
}

func TestFinanceAgent_ComputeFinancials(t *testing.T) {
	agent := NewFinanceAgent(&fakeBillingReader{profile: &store.BillingProfile{
		CustomerName:      "Acme",
		MRRUSD:            8000,
		Status:            "active",
		OnTimePaymentRate: 0.96,
	}})

	out, err := agent.ComputeFinancials(context.Background(), "Acme", 120_000, 12)
	require.NoError(t, err)

	assert.Equal(t, StatusOK, out["status"])
	assert.Equal(t, 120_000, out["computed_arr_usd"])
	assert.Equal(t, []string{}, out["risk_flags"])

	profile, ok := out["billing_profile"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, 0.96, profile["on_time_payment_rate"])
}

func TestFinanceAgent_FlagsPaymentRisk(t *testing.T) {
	agent := NewFinanceAgent(&fakeBillingReader{profile: &store.BillingProfile{
		CustomerName:      "BetaCo",
		MRRUSD:            1200,
		Status:            "active",
		OnTimePaymentRate: 0.89,
	}})

	out, err := agent.ComputeFinancials(context.Background(), "BetaCo", 12_000, 12)
	require.NoError(t, err)

	assert.Equal(t, []string{RiskFlagPaymentRisk}, out["risk_flags"])
}

func TestFinanceAgent_MissingBillingProfile(t *testing.T) {
	agent := NewFinanceAgent(&fakeBillingReader{profile: nil})

	out, err := agent.ComputeFinancials(context.Background(), "Ghost", 12_000, 12)
	require.NoError(t, err)

	assert.Equal(t, StatusOK, out["status"])
	assert.Nil(t, out["billing_profile"])
	assert.Equal(t, []string{}, out["risk_flags"])
}
