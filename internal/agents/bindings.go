package agents

import (
	"context"
	"fmt"
	"strconv"

	"github.com/AnirudhBhagat/AI-Automation-Platform/internal/blackboard"
	"github.com/AnirudhBhagat/AI-Automation-Platform/internal/classify"
	"github.com/AnirudhBhagat/AI-Automation-Platform/internal/plan"
)

// GeneratedBy is the provenance marker stamped on every decision packet.
const GeneratedBy = "deterministic_plan_executor"

// Bindings builds the full executor binding table for the platform's
// known (owner, action) pairs, wiring each agent step to its
// collaborator. Pass the returned options to plan.NewExecutor.
func Bindings(crm CRMReader, billing BillingReader, usage UsageReader) []plan.ExecutorOption {
	sales := NewSalesAgent(crm)
	finance := NewFinanceAgent(billing)
	data := NewDataAgent(usage)
	compliance := NewComplianceAgent()

	return []plan.ExecutorOption{
		plan.WithBinding(plan.OwnerSalesAgent, plan.ActionCollectDealContext, collectDealContext(sales)),
		plan.WithBinding(plan.OwnerFinanceAgent, plan.ActionComputeFinancials, computeFinancials(finance)),
		plan.WithBinding(plan.OwnerDataAgent, plan.ActionCollectUsageSignals, collectUsageSignals(data)),
		plan.WithBinding(plan.OwnerComplianceAgent, plan.ActionValidatePolicy, validatePolicy(compliance)),
		plan.WithBinding(plan.OwnerOrchestrator, plan.ActionAssembleDecisionPacket, assembleDecisionPacket()),
	}
}

func collectDealContext(sales *SalesAgent) plan.StepHandler {
	return func(ctx context.Context, state *blackboard.State, _ plan.Step) error {
		customer, _ := state.GetString("entities.customer_name")

		out, err := sales.CollectDealContext(ctx, customer)
		if err != nil {
			return err
		}
		if err := state.Set("facts.sales", out); err != nil {
			return err
		}

		// If the CRM provides discount/payment terms, backfill entities
		// deterministically. Extracted values are never overwritten.
		if opp, ok := out["opportunity"].(map[string]any); ok {
			if v, ok := opp["requested_discount_pct"]; ok && v != nil {
				state.SetDefaultEntity(classify.EntityDiscountPct, fmt.Sprint(v))
			}
			if v, ok := opp["payment_terms"].(string); ok {
				state.SetDefaultEntity(classify.EntityPaymentTerms, v)
			}
		}
		return nil
	}
}

func computeFinancials(finance *FinanceAgent) plan.StepHandler {
	return func(ctx context.Context, state *blackboard.State, _ plan.Step) error {
		customer, _ := state.GetString("entities.customer_name")

		amountStr, _ := state.GetString("entities.deal_amount_usd")
		amount, err := strconv.Atoi(amountStr)
		if err != nil {
			return fmt.Errorf("deal_amount_usd is not an integer: %w", err)
		}

		termStr, _ := state.GetString("entities.term_months")
		term, err := strconv.Atoi(termStr)
		if err != nil {
			return fmt.Errorf("term_months is not an integer: %w", err)
		}

		out, err := finance.ComputeFinancials(ctx, customer, amount, term)
		if err != nil {
			return err
		}
		return state.Set("facts.finance", out)
	}
}

func collectUsageSignals(data *DataAgent) plan.StepHandler {
	return func(ctx context.Context, state *blackboard.State, _ plan.Step) error {
		customer, _ := state.GetString("entities.customer_name")

		out, err := data.CollectUsageSignals(ctx, customer)
		if err != nil {
			return err
		}
		return state.Set("facts.data", out)
	}
}

func validatePolicy(compliance *ComplianceAgent) plan.StepHandler {
	return func(ctx context.Context, state *blackboard.State, _ plan.Step) error {
		// Discount defaults to 0 when neither extraction nor backfill
		// produced a value.
		discount := 0
		if raw, ok := state.GetString("entities.discount_pct"); ok {
			f, err := strconv.ParseFloat(raw, 64)
			if err != nil {
				return fmt.Errorf("discount_pct is not numeric: %w", err)
			}
			discount = int(f)
		}

		arrValue, _ := state.Get("facts.finance.computed_arr_usd")
		arr, err := toInt(arrValue)
		if err != nil {
			return fmt.Errorf("computed_arr_usd: %w", err)
		}

		out, err := compliance.ValidatePolicy(ctx, discount, arr)
		if err != nil {
			return err
		}
		return state.Set("facts.compliance", out)
	}
}

func assembleDecisionPacket() plan.StepHandler {
	return func(_ context.Context, state *blackboard.State, _ plan.Step) error {
		// The terminal step synthesizes the packet directly from current
		// state; no collaborator call.
		packet := map[string]any{
			"trace_id":     state.TraceID.String(),
			"request_text": state.RequestText,
			"entities":     state.Entities,
			"facts":        state.Facts,
			"generated_by": GeneratedBy,
		}
		return state.Set("decision_packet", packet)
	}
}

func toInt(v any) (int, error) {
	switch n := v.(type) {
	case int:
		return n, nil
	case int64:
		return int(n), nil
	case float64:
		return int(n), nil
	case string:
		return strconv.Atoi(n)
	default:
		return 0, fmt.Errorf("not an integer value: %T", v)
	}
}
