// Package orchestrator wires the platform pipeline for one request:
// classification, plan lookup, plan execution against a fresh
// blackboard, and optional decision synthesis.
package orchestrator

import (
	"context"
	"errors"
	"log/slog"

	"go.opentelemetry.io/otel/trace"

	"github.com/AnirudhBhagat/AI-Automation-Platform/internal/agents"
	"github.com/AnirudhBhagat/AI-Automation-Platform/internal/blackboard"
	"github.com/AnirudhBhagat/AI-Automation-Platform/internal/classify"
	"github.com/AnirudhBhagat/AI-Automation-Platform/internal/llm"
	"github.com/AnirudhBhagat/AI-Automation-Platform/internal/plan"
)

// ErrWorkflowNotSupported reports a classified workflow with no plan
// defined. Distinct from an empty plan, which simply has nothing to
// execute.
var ErrWorkflowNotSupported = errors.New("no plan defined for workflow")

// Runner executes the full pipeline for one request at a time. Each run
// allocates its own blackboard state; a Runner holds no per-run state
// and may be reused sequentially.
type Runner struct {
	executor    *plan.Executor
	synthesizer *llm.Synthesizer
	logger      *slog.Logger
}

// Option is a functional option for configuring Runner.
type Option func(*Runner)

// WithLogger configures the structured logger for the runner and its
// executor.
func WithLogger(l *slog.Logger) Option {
	return func(r *Runner) {
		r.logger = l
	}
}

// WithSynthesizer enables the final decision synthesis call.
func WithSynthesizer(s *llm.Synthesizer) Option {
	return func(r *Runner) {
		r.synthesizer = s
	}
}

// NewRunner creates a Runner whose executor bindings are backed by the
// given data readers.
func NewRunner(crm agents.CRMReader, billing agents.BillingReader, usage agents.UsageReader, tracer trace.Tracer, opts ...Option) *Runner {
	r := &Runner{
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(r)
	}

	execOpts := append(
		agents.Bindings(crm, billing, usage),
		plan.WithLogger(r.logger),
	)
	if tracer != nil {
		execOpts = append(execOpts, plan.WithTracer(tracer))
	}
	r.executor = plan.NewExecutor(execOpts...)

	return r
}

// RunResult carries everything one request produced: the classification,
// the plan, the final blackboard state with its event trace, and when
// synthesis is enabled, the decision memo.
type RunResult struct {
	Classification classify.Result
	Plan           *plan.WorkflowPlan
	State          *blackboard.State
	DecisionPacket map[string]any
	Memo           map[string]any
	MemoCached     bool
}

// Run classifies the request, looks up its plan, and executes it on a
// fresh blackboard state.
//
// A workflow without a plan returns ErrWorkflowNotSupported alongside
// the classification. An empty plan returns normally with nothing
// executed. Execution failures return the partial state so the event
// trace remains inspectable.
func (r *Runner) Run(ctx context.Context, requestText string) (*RunResult, error) {
	result := classify.Classify(requestText)
	r.logger.Info("request classified",
		"workflow", result.Workflow,
		"confidence", result.Confidence,
		"missing_fields", result.MissingFields,
	)

	out := &RunResult{Classification: result}

	p := plan.BuildPlan(result.Workflow)
	if p == nil {
		return out, ErrWorkflowNotSupported
	}
	out.Plan = p

	state := blackboard.NewState(requestText, result.Entities)
	out.State = state

	if len(p.Steps) == 0 {
		r.logger.Info("plan has no steps; nothing to execute", "workflow", p.Workflow)
		return out, nil
	}

	if err := r.executor.Execute(ctx, state, p); err != nil {
		return out, err
	}
	out.DecisionPacket = state.DecisionPacket

	if r.synthesizer != nil && state.DecisionPacket != nil {
		memo, cached, err := r.synthesizer.SynthesizeDecision(ctx, state.DecisionPacket)
		if err != nil {
			return out, err
		}
		out.Memo = memo
		out.MemoCached = cached
	}

	return out, nil
}
