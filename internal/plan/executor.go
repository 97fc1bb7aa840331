package plan

import (
	"context"
	"fmt"
	"log/slog"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/AnirudhBhagat/AI-Automation-Platform/internal/blackboard"
)

// BindingKey identifies one (owner, action) pair in the binding table.
type BindingKey struct {
	Owner  string
	Action string
}

// StepHandler implements one (owner, action) binding. Handlers read
// their inputs from the blackboard and write their outputs under the
// step's declared paths. A returned error is fatal to the run.
type StepHandler func(ctx context.Context, state *blackboard.State, step Step) error

// Executor runs workflow plans step by step against a blackboard state.
// Execution is single-threaded and synchronous: each step fully
// completes, including collaborator calls, before the next begins.
type Executor struct {
	bindings map[BindingKey]StepHandler
	logger   *slog.Logger
	tracer   trace.Tracer
}

// ExecutorOption is a functional option for configuring Executor.
type ExecutorOption func(*Executor)

// WithLogger configures the structured logger for the executor.
func WithLogger(l *slog.Logger) ExecutorOption {
	return func(e *Executor) {
		e.logger = l
	}
}

// WithTracer configures an OpenTelemetry tracer for the executor.
func WithTracer(t trace.Tracer) ExecutorOption {
	return func(e *Executor) {
		e.tracer = t
	}
}

// WithBinding registers a handler for one (owner, action) pair.
func WithBinding(owner, action string, h StepHandler) ExecutorOption {
	return func(e *Executor) {
		e.bindings[BindingKey{Owner: owner, Action: action}] = h
	}
}

// NewExecutor creates an Executor with the given options.
// Default logger is slog.Default(); the binding table starts empty, so
// an executor with no bindings logs every agent step as unimplemented.
func NewExecutor(opts ...ExecutorOption) *Executor {
	e := &Executor{
		bindings: make(map[BindingKey]StepHandler),
		logger:   slog.Default(),
	}

	for _, opt := range opts {
		opt(e)
	}

	return e
}

// Execute runs every step of the plan, in declared order, mutating the
// given state.
//
// For each step:
//   - Non-agent steps are skipped with a WARN event; no precondition
//     check, no execution.
//   - Every required path is checked against current state; any absence
//     logs an ERROR event listing the missing paths and aborts the run
//     with a *StepError (code ErrMissingPrecondition). Steps after the
//     failed one do not execute and prior effects are not rolled back.
//   - The (owner, action) pair dispatches through the binding table; an
//     unregistered pair logs a WARN event and is otherwise a no-op.
//   - A completion event names the step's declared outputs. This is a
//     declared-intent log, not a verification.
//
// A start event and a finish event bracket the run on the state's trace.
func (e *Executor) Execute(ctx context.Context, state *blackboard.State, p *WorkflowPlan) error {
	var span trace.Span
	if e.tracer != nil {
		ctx, span = e.tracer.Start(ctx, "plan.execute",
			trace.WithAttributes(
				attribute.String("plan.workflow", p.Workflow.String()),
				attribute.String("plan.trace_id", state.TraceID.String()),
				attribute.Int("plan.steps", len(p.Steps)),
			),
		)
		defer span.End()
	}

	e.logger.Info("starting plan execution",
		"workflow", p.Workflow,
		"trace_id", state.TraceID,
		"steps", len(p.Steps),
	)
	state.Log(blackboard.LevelInfo, "runner",
		fmt.Sprintf("Starting plan execution: %s", p.Workflow),
		map[string]any{"steps": len(p.Steps)},
	)

	for i := range p.Steps {
		step := p.Steps[i]

		if step.Type != StepTypeAgent {
			e.logger.Warn("skipping non-agent step",
				"step_id", step.ID,
				"step_type", step.Type,
			)
			state.Log(blackboard.LevelWarn, step.ID, "Skipping non-agent step",
				map[string]any{"step_type": step.Type.String()},
			)
			continue
		}

		if err := e.checkRequires(state, step); err != nil {
			if span != nil {
				span.SetStatus(codes.Error, "missing precondition")
				span.RecordError(err)
			}
			return err
		}

		if err := e.runAgentStep(ctx, state, step); err != nil {
			if span != nil {
				span.SetStatus(codes.Error, "step execution failed")
				span.RecordError(err)
			}
			return err
		}
	}

	if span != nil {
		span.SetStatus(codes.Ok, "plan execution completed")
	}

	e.logger.Info("plan execution finished",
		"workflow", p.Workflow,
		"trace_id", state.TraceID,
	)
	state.Log(blackboard.LevelInfo, "runner", "Plan execution finished", nil)

	return nil
}

// checkRequires verifies every required path resolves to a present value.
func (e *Executor) checkRequires(state *blackboard.State, step Step) error {
	var missing []string
	for _, path := range step.Requires {
		if _, ok := state.Get(path); !ok {
			missing = append(missing, path)
		}
	}

	if len(missing) == 0 {
		return nil
	}

	e.logger.Error("missing required inputs for step",
		"step_id", step.ID,
		"missing", missing,
	)
	state.Log(blackboard.LevelError, step.ID, "Missing required inputs for step",
		map[string]any{"missing": missing},
	)

	return NewMissingPreconditionError(step.ID, missing)
}

// runAgentStep dispatches one agent step through the binding table.
func (e *Executor) runAgentStep(ctx context.Context, state *blackboard.State, step Step) error {
	var span trace.Span
	if e.tracer != nil {
		ctx, span = e.tracer.Start(ctx, "step.execute",
			trace.WithAttributes(
				attribute.String("step.id", step.ID),
				attribute.String("step.owner", step.Owner),
				attribute.String("step.action", step.Action),
			),
		)
		defer span.End()
	}

	state.Log(blackboard.LevelInfo, step.ID,
		fmt.Sprintf("Running agent step: %s.%s", step.Owner, step.Action), nil)

	handler, ok := e.bindings[BindingKey{Owner: step.Owner, Action: step.Action}]
	if !ok {
		// Unregistered bindings are non-fatal: logged and skipped.
		e.logger.Warn("no implementation for agent step",
			"step_id", step.ID,
			"owner", step.Owner,
			"action", step.Action,
		)
		state.Log(blackboard.LevelWarn, step.ID, "No implementation for agent step",
			map[string]any{"owner": step.Owner, "action": step.Action},
		)
	} else if err := handler(ctx, state, step); err != nil {
		if span != nil {
			span.SetStatus(codes.Error, "handler failed")
			span.RecordError(err)
		}
		e.logger.Error("step handler failed",
			"step_id", step.ID,
			"error", err,
		)
		stepErr := NewStepFailedError(step.ID, err)
		state.Log(blackboard.LevelError, step.ID, "Step handler failed",
			map[string]any{"error": err.Error()},
		)
		return stepErr
	}

	state.Log(blackboard.LevelInfo, step.ID, "Step completed",
		map[string]any{"produces": step.Produces},
	)
	e.logger.Info("step completed",
		"step_id", step.ID,
		"produces", step.Produces,
	)

	if span != nil {
		span.SetStatus(codes.Ok, "step completed")
	}
	return nil
}
