package store

// Account is a CRM account record.
type Account struct {
	AccountID    string `json:"account_id"`
	CustomerName string `json:"customer_name"`
	Segment      string `json:"segment"`
	Region       string `json:"region"`
}

// Map returns the account as a generic fact map for blackboard storage.
func (a *Account) Map() map[string]any {
	return map[string]any{
		"account_id":    a.AccountID,
		"customer_name": a.CustomerName,
		"segment":       a.Segment,
		"region":        a.Region,
	}
}

// Opportunity is a CRM opportunity record.
type Opportunity struct {
	OpportunityID        string `json:"opportunity_id"`
	AccountID            string `json:"account_id"`
	Stage                string `json:"stage"`
	RequestedDiscountPct int    `json:"requested_discount_pct"`
	PaymentTerms         string `json:"payment_terms"`
	Owner                string `json:"owner"`
}

// Map returns the opportunity as a generic fact map for blackboard storage.
func (o *Opportunity) Map() map[string]any {
	return map[string]any{
		"opportunity_id":         o.OpportunityID,
		"account_id":             o.AccountID,
		"stage":                  o.Stage,
		"requested_discount_pct": o.RequestedDiscountPct,
		"payment_terms":          o.PaymentTerms,
		"owner":                  o.Owner,
	}
}

// BillingProfile is a billing subscription record. OnTimePaymentRate is
// in [0,1].
type BillingProfile struct {
	CustomerName      string  `json:"customer_name"`
	MRRUSD            int     `json:"mrr_usd"`
	Status            string  `json:"status"`
	OnTimePaymentRate float64 `json:"on_time_payment_rate"`
}

// Map returns the billing profile as a generic fact map for blackboard storage.
func (b *BillingProfile) Map() map[string]any {
	return map[string]any{
		"customer_name":        b.CustomerName,
		"mrr_usd":              b.MRRUSD,
		"status":               b.Status,
		"on_time_payment_rate": b.OnTimePaymentRate,
	}
}

// UsageSummary aggregates product usage over a fixed trailing window.
type UsageSummary struct {
	CustomerName           string  `json:"customer_name"`
	AvgActiveSeats3Mo      float64 `json:"avg_active_seats_3mo"`
	AvgWeeklyActiveRatio3M float64 `json:"avg_weekly_active_ratio_3mo"`
}

// Map returns the usage summary as a generic fact map for blackboard storage.
func (u *UsageSummary) Map() map[string]any {
	return map[string]any{
		"customer_name":               u.CustomerName,
		"avg_active_seats_3mo":        u.AvgActiveSeats3Mo,
		"avg_weekly_active_ratio_3mo": u.AvgWeeklyActiveRatio3M,
	}
}
