package store

import (
	"context"
	"database/sql"
	"errors"

	"github.com/AnirudhBhagat/AI-Automation-Platform/internal/types"
)

// AccountByCustomerName returns the CRM account for a customer, matched
// case-insensitively. A missing account is (nil, nil), not an error.
func (s *Store) AccountByCustomerName(ctx context.Context, customerName string) (*Account, error) {
	row := s.conn.QueryRowContext(ctx,
		`SELECT account_id, customer_name, segment, region
		 FROM accounts WHERE lower(customer_name) = lower(?) LIMIT 1`,
		customerName,
	)

	var a Account
	if err := row.Scan(&a.AccountID, &a.CustomerName, &a.Segment, &a.Region); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, types.WrapError(types.STORE_QUERY_FAILED, "account lookup failed", err)
	}
	return &a, nil
}

// LatestOpportunityForAccount returns the latest opportunity for an
// account, or (nil, nil) when none exists.
func (s *Store) LatestOpportunityForAccount(ctx context.Context, accountID string) (*Opportunity, error) {
	row := s.conn.QueryRowContext(ctx,
		`SELECT opportunity_id, account_id, stage, requested_discount_pct, payment_terms, owner
		 FROM opportunities WHERE account_id = ? LIMIT 1`,
		accountID,
	)

	var o Opportunity
	err := row.Scan(&o.OpportunityID, &o.AccountID, &o.Stage, &o.RequestedDiscountPct, &o.PaymentTerms, &o.Owner)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, types.WrapError(types.STORE_QUERY_FAILED, "opportunity lookup failed", err)
	}
	return &o, nil
}

// BillingProfileByCustomerName returns the billing profile for a
// customer, matched case-insensitively, or (nil, nil) when none exists.
func (s *Store) BillingProfileByCustomerName(ctx context.Context, customerName string) (*BillingProfile, error) {
	row := s.conn.QueryRowContext(ctx,
		`SELECT customer_name, mrr_usd, status, on_time_payment_rate
		 FROM subscriptions WHERE lower(customer_name) = lower(?) LIMIT 1`,
		customerName,
	)

	var b BillingProfile
	if err := row.Scan(&b.CustomerName, &b.MRRUSD, &b.Status, &b.OnTimePaymentRate); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, types.WrapError(types.STORE_QUERY_FAILED, "billing profile lookup failed", err)
	}
	return &b, nil
}

// UsageSummaryLastThreeMonths aggregates usage metrics for a customer
// over the trailing window, or (nil, nil) when no metrics exist.
func (s *Store) UsageSummaryLastThreeMonths(ctx context.Context, customerName string) (*UsageSummary, error) {
	row := s.conn.QueryRowContext(ctx,
		`SELECT
			customer_name,
			AVG(active_seats)        AS avg_active_seats_3mo,
			AVG(weekly_active_ratio) AS avg_weekly_active_ratio_3mo
		 FROM usage_metrics
		 WHERE lower(customer_name) = lower(?)
		 GROUP BY customer_name`,
		customerName,
	)

	var u UsageSummary
	if err := row.Scan(&u.CustomerName, &u.AvgActiveSeats3Mo, &u.AvgWeeklyActiveRatio3M); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, types.WrapError(types.STORE_QUERY_FAILED, "usage summary lookup failed", err)
	}
	return &u, nil
}
