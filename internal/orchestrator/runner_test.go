package orchestrator

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/trace/noop"

	"github.com/AnirudhBhagat/AI-Automation-Platform/internal/classify"
	"github.com/AnirudhBhagat/AI-Automation-Platform/internal/store"
)

const dealRequest = "Approve the $120k deal for Acme, 12 months term, 15% discount, NET-30 payment terms"

func newTestRunner(t *testing.T, opts ...Option) *Runner {
	t.Helper()
	s, err := store.Open()
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })

	opts = append(opts, WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))))
	return NewRunner(s, s, s, noop.NewTracerProvider().Tracer("test"), opts...)
}

func TestRun_DealApproval(t *testing.T) {
	runner := newTestRunner(t)

	result, err := runner.Run(context.Background(), dealRequest)
	require.NoError(t, err)

	assert.Equal(t, classify.WorkflowDealApproval, result.Classification.Workflow)
	assert.InDelta(t, 0.85, result.Classification.Confidence, 1e-9)
	assert.Empty(t, result.Classification.MissingFields)

	require.NotNil(t, result.Plan)
	assert.Len(t, result.Plan.Steps, 5)

	state := result.State
	require.NotNil(t, state)

	// Extracted entities plus the CRM-backfilled payment terms.
	assert.Equal(t, "Acme", state.Entities[classify.EntityCustomerName])
	assert.Equal(t, "120000", state.Entities[classify.EntityDealAmountUSD])
	assert.Equal(t, "12", state.Entities[classify.EntityTermMonths])
	assert.Equal(t, "15", state.Entities[classify.EntityDiscountPct])
	assert.Equal(t, "NET_30", state.Entities[classify.EntityPaymentTerms])

	arr, ok := state.Get("facts.finance.computed_arr_usd")
	require.True(t, ok)
	assert.Equal(t, 120000, arr)

	// Acme pays on time, within the discount cap, below the ARR ceiling.
	flags, ok := state.Get("facts.finance.risk_flags")
	require.True(t, ok)
	assert.Empty(t, flags)
	violations, ok := state.Get("facts.compliance.policy.violations")
	require.True(t, ok)
	assert.Empty(t, violations)
	approval, ok := state.Get("facts.compliance.policy.requires_director_approval")
	require.True(t, ok)
	assert.Equal(t, false, approval)

	require.NotNil(t, result.DecisionPacket)
	assert.Equal(t, state.TraceID.String(), result.DecisionPacket["trace_id"])
	assert.Equal(t, dealRequest, result.DecisionPacket["request_text"])
	assert.Equal(t, "deterministic_plan_executor", result.DecisionPacket["generated_by"])
}

func TestRun_ExtractedDiscountWins(t *testing.T) {
	runner := newTestRunner(t)

	// The text carries 10%, the CRM opportunity carries 15. Extraction wins.
	result, err := runner.Run(context.Background(),
		"Approve the $120k deal for Acme, 12 months term, 10% discount")
	require.NoError(t, err)

	assert.Equal(t, "10", result.State.Entities[classify.EntityDiscountPct])
}

func TestRun_DiscountBackfilledFromCRM(t *testing.T) {
	runner := newTestRunner(t)

	result, err := runner.Run(context.Background(),
		"Approve the $120k deal for Acme, 12 months term, NET-30 payment terms")
	require.NoError(t, err)

	assert.Equal(t, "15", result.State.Entities[classify.EntityDiscountPct])
}

func TestRun_Deterministic(t *testing.T) {
	runner := newTestRunner(t)
	ctx := context.Background()

	first, err := runner.Run(ctx, dealRequest)
	require.NoError(t, err)
	second, err := runner.Run(ctx, dealRequest)
	require.NoError(t, err)

	// Everything except the per-run trace id is identical.
	assert.Equal(t, first.Classification, second.Classification)
	assert.Equal(t, first.State.Entities, second.State.Entities)
	assert.Equal(t, first.State.Facts, second.State.Facts)
	assert.NotEqual(t, first.State.TraceID, second.State.TraceID)
}

func TestRun_UnknownWorkflow(t *testing.T) {
	runner := newTestRunner(t)

	result, err := runner.Run(context.Background(), "What is the weather like today?")
	require.ErrorIs(t, err, ErrWorkflowNotSupported)

	assert.Equal(t, classify.WorkflowUnknown, result.Classification.Workflow)
	assert.Nil(t, result.Plan)
	assert.Nil(t, result.State)
}

func TestRun_EmptyPlan(t *testing.T) {
	runner := newTestRunner(t)

	result, err := runner.Run(context.Background(), "Customer BetaCo requested a refund for their invoice")
	require.NoError(t, err)

	assert.Equal(t, classify.WorkflowRefundEscalation, result.Classification.Workflow)
	require.NotNil(t, result.Plan)
	assert.Empty(t, result.Plan.Steps)

	// Nothing executed: no facts, no events, no packet.
	assert.Empty(t, result.State.Facts)
	assert.Empty(t, result.State.Events)
	assert.Nil(t, result.DecisionPacket)
}

func TestRun_MissingPreconditionAborts(t *testing.T) {
	runner := newTestRunner(t)

	// No monetary amount or term, so the finance step's required
	// entities are absent and execution aborts mid-plan.
	result, err := runner.Run(context.Background(), "Approve the deal for Acme please")
	require.Error(t, err)

	require.NotNil(t, result.State)
	assert.Nil(t, result.DecisionPacket)
	assert.NotEmpty(t, result.State.Events)
}
