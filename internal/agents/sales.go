package agents

import (
	"context"
	"fmt"
)

// SalesAgent collects deal context from the CRM.
type SalesAgent struct {
	crm CRMReader
}

// NewSalesAgent creates a SalesAgent backed by the given CRM reader.
func NewSalesAgent(crm CRMReader) *SalesAgent {
	return &SalesAgent{crm: crm}
}

// CollectDealContext looks up the account and its latest opportunity for
// a customer. A missing account yields a NOT_FOUND fact block, not an
// error; a missing opportunity yields a nil opportunity value.
func (a *SalesAgent) CollectDealContext(ctx context.Context, customerName string) (map[string]any, error) {
	account, err := a.crm.AccountByCustomerName(ctx, customerName)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return map[string]any{
			"status": StatusNotFound,
			"error":  fmt.Sprintf("No account for %s", customerName),
		}, nil
	}

	opp, err := a.crm.LatestOpportunityForAccount(ctx, account.AccountID)
	if err != nil {
		return nil, err
	}

	out := map[string]any{
		"status":  StatusOK,
		"account": account.Map(),
	}
	if opp != nil {
		out["opportunity"] = opp.Map()
	} else {
		out["opportunity"] = nil
	}
	return out, nil
}
