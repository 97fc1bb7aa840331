// Package agents implements the per-domain collaborators invoked by
// plan steps: thin functions that call read-only data lookups and
// return structured fact maps.
//
// Agents never mutate the stores they read. Each agent receives its
// data-access dependency as a narrow interface, injected at
// construction; there are no global singletons.
package agents

import (
	"context"

	"github.com/AnirudhBhagat/AI-Automation-Platform/internal/store"
)

// Fact block status values.
const (
	StatusOK       = "OK"
	StatusNotFound = "NOT_FOUND"
)

// CRMReader serves read-only CRM facts.
type CRMReader interface {
	AccountByCustomerName(ctx context.Context, customerName string) (*store.Account, error)
	LatestOpportunityForAccount(ctx context.Context, accountID string) (*store.Opportunity, error)
}

// BillingReader serves read-only billing facts.
type BillingReader interface {
	BillingProfileByCustomerName(ctx context.Context, customerName string) (*store.BillingProfile, error)
}

// UsageReader serves aggregated usage facts over a fixed trailing window.
type UsageReader interface {
	UsageSummaryLastThreeMonths(ctx context.Context, customerName string) (*store.UsageSummary, error)
}
