package classify

import (
	"strings"
)

// WorkflowType identifies one of the fixed set of supported workflows.
type WorkflowType string

const (
	WorkflowDealApproval     WorkflowType = "DEAL_APPROVAL"
	WorkflowRefundEscalation WorkflowType = "REFUND_ESCALATION"
	WorkflowAccessRequest    WorkflowType = "ACCESS_REQUEST"
	WorkflowUnknown          WorkflowType = "UNKNOWN"
)

// workflowOrder is the declaration order of workflow types. Score ties
// break in favor of the earlier entry, so this order is part of the
// classifier contract.
var workflowOrder = []WorkflowType{
	WorkflowDealApproval,
	WorkflowRefundEscalation,
	WorkflowAccessRequest,
	WorkflowUnknown,
}

// String returns the string representation of the workflow type.
func (w WorkflowType) String() string {
	return string(w)
}

// confidenceThreshold is the minimum aggregate rule score a workflow must
// reach to be selected; anything below degrades to WorkflowUnknown.
const confidenceThreshold = 0.40

// requiredFields lists, per workflow, the entity keys a complete request
// must carry, in reporting order.
var requiredFields = map[WorkflowType][]string{
	WorkflowDealApproval:     {EntityDealAmountUSD, EntityTermMonths, EntityCustomerName},
	WorkflowRefundEscalation: {EntityCustomerName},
	WorkflowAccessRequest:    {EntityCustomerName},
}

// Result is the immutable outcome of classifying one request.
type Result struct {
	Workflow      WorkflowType `json:"workflow"`
	Confidence    float64      `json:"confidence"`
	Reasons       []string     `json:"reasons,omitempty"`
	MissingFields []string     `json:"missing_fields,omitempty"`
	Entities      Entities     `json:"entities"`
}

// rule is a single weighted classification signal. Rules are independent:
// several may fire for the same workflow and their weights accumulate.
type rule struct {
	workflow WorkflowType
	weight   float64
	reason   string
	// match receives the lower-cased text and the raw text; most rules
	// only need the former, the money rule matches against the raw text.
	match func(lower, raw string) bool
}

// rules is the fixed, ordered signal set. Evaluation order determines
// reason ordering in the result.
var rules = []rule{
	{
		workflow: WorkflowDealApproval,
		weight:   0.55,
		reason:   "Matched 'approve' + deal-related keyword",
		match: func(lower, _ string) bool {
			return strings.Contains(lower, "approve") &&
				containsAny(lower, "deal", "discount", "opportunity", "quote", "pricing")
		},
	},
	{
		workflow: WorkflowDealApproval,
		weight:   0.20,
		reason:   "Matched finance/terms keyword for deal flow",
		match: func(lower, _ string) bool {
			return containsAny(lower, "net-30", "net 30", "payment terms", "invoice", "arr", "annual", "subscription")
		},
	},
	{
		workflow: WorkflowDealApproval,
		weight:   0.10,
		reason:   "Detected monetary amount",
		match: func(_, raw string) bool {
			return moneyRE.MatchString(raw)
		},
	},
	{
		workflow: WorkflowRefundEscalation,
		weight:   0.70,
		reason:   "Matched refund/chargeback keyword",
		match: func(lower, _ string) bool {
			return containsAny(lower, "refund", "chargeback", "dispute")
		},
	},
	{
		workflow: WorkflowRefundEscalation,
		weight:   0.15,
		reason:   "Matched payment/billing signal",
		match: func(lower, _ string) bool {
			return containsAny(lower, "invoice", "payment failed", "failed payment")
		},
	},
	{
		workflow: WorkflowAccessRequest,
		weight:   0.75,
		reason:   "Matched access + system keyword",
		match: func(lower, _ string) bool {
			return strings.Contains(lower, "access") &&
				containsAny(lower, "snowflake", "vpn", "github", "okta", "admin")
		},
	},
	{
		workflow: WorkflowAccessRequest,
		weight:   0.15,
		reason:   "Matched permission keyword",
		match: func(lower, _ string) bool {
			return containsAny(lower, "permission", "role", "rbac")
		},
	},
}

// Classify deterministically classifies a request into a workflow type.
//
// Strategy:
//   - Extract lightweight entities to support planning in later steps.
//   - Apply the scoring rule set and aggregate weights per workflow.
//   - Choose the workflow with the highest score, ties broken by
//     declaration order.
//   - Clamp the winning score into [0,1] as the confidence.
//   - Identify missing required fields for the chosen workflow.
//
// Classification never fails: weak signals degrade to WorkflowUnknown.
func Classify(text string) Result {
	entities := Extract(text)
	lower := strings.ToLower(text)

	scores := make(map[WorkflowType]float64, len(workflowOrder))
	reasons := make(map[WorkflowType][]string, len(workflowOrder))

	for _, r := range rules {
		if r.match(lower, text) {
			scores[r.workflow] += r.weight
			reasons[r.workflow] = append(reasons[r.workflow], r.reason)
		}
	}

	best := workflowOrder[0]
	bestScore := scores[best]
	for _, wf := range workflowOrder[1:] {
		if scores[wf] > bestScore {
			best = wf
			bestScore = scores[wf]
		}
	}

	if bestScore < confidenceThreshold {
		return Result{
			Workflow:   WorkflowUnknown,
			Confidence: clamp01(bestScore),
			Reasons:    []string{"no strong rule matches; workflow unknown"},
			Entities:   entities,
		}
	}

	var missing []string
	for _, field := range requiredFields[best] {
		if _, ok := entities[field]; !ok {
			missing = append(missing, field)
		}
	}

	return Result{
		Workflow:      best,
		Confidence:    clamp01(bestScore),
		Reasons:       reasons[best],
		MissingFields: missing,
		Entities:      entities,
	}
}

func containsAny(s string, substrs ...string) bool {
	for _, sub := range substrs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
