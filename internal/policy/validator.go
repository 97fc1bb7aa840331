// Package policy implements the deal approval policy rules: discount
// caps and ARR thresholds that determine whether director approval is
// required.
package policy

// Default policy parameters, version v1.
const (
	PolicyVersion        = "v1"
	DiscountCapPct       = 20
	MaxAutoApproveARRUSD = 200_000
)

// Violation codes reported by ValidateDealPolicy.
const (
	ViolationDiscountExceedsCap = "DISCOUNT_EXCEEDS_CAP"
)

// Result is the outcome of validating a deal against the default policy.
type Result struct {
	PolicyVersion            string   `json:"policy_version"`
	DiscountCapPct           int      `json:"discount_cap_pct"`
	MaxAutoApproveARRUSD     int      `json:"max_auto_approve_arr_usd"`
	RequiresDirectorApproval bool     `json:"requires_director_approval"`
	Violations               []string `json:"violations"`
}

// ValidateDealPolicy applies the default policy to a deal. Pure function.
//
// A discount above the cap is a violation. Director approval is required
// when the computed ARR meets the auto-approve ceiling or any violation
// exists.
func ValidateDealPolicy(discountPct, computedARRUSD int) Result {
	violations := []string{}

	if discountPct > DiscountCapPct {
		violations = append(violations, ViolationDiscountExceedsCap)
	}

	return Result{
		PolicyVersion:            PolicyVersion,
		DiscountCapPct:           DiscountCapPct,
		MaxAutoApproveARRUSD:     MaxAutoApproveARRUSD,
		RequiresDirectorApproval: computedARRUSD >= MaxAutoApproveARRUSD || len(violations) > 0,
		Violations:               violations,
	}
}

// Map returns the result as a generic fact map for blackboard storage.
func (r Result) Map() map[string]any {
	return map[string]any{
		"policy_version":             r.PolicyVersion,
		"discount_cap_pct":           r.DiscountCapPct,
		"max_auto_approve_arr_usd":   r.MaxAutoApproveARRUSD,
		"requires_director_approval": r.RequiresDirectorApproval,
		"violations":                 r.Violations,
	}
}
