// Package plan provides the static workflow plan catalog and the
// dependency-checked plan executor for the automation platform.
//
// # Overview
//
// A WorkflowPlan is an ordered, statically declared sequence of Steps
// for one workflow type. Each Step declares an owner and action, the
// blackboard paths it requires as preconditions, and the paths it is
// expected to produce. Plans are immutable value objects built fresh
// from literal data on every catalog lookup; no mutable slice is ever
// shared between two steps or two plans.
//
// # Execution
//
// The Executor iterates a plan's steps in declared order against a
// blackboard.State. For each agent step it verifies every required path
// resolves to a present value, then dispatches through a binding table
// keyed by (owner, action). A missing precondition is fatal to the run
// and surfaces as a *StepError with code ErrMissingPrecondition; an
// unregistered (owner, action) pair is non-fatal, logged and skipped.
// Steps are never retried, and a failed run performs no rollback of
// prior steps' effects.
//
// Every significant transition is recorded both on the state's event
// trace (for run reproducibility) and through structured slog logging,
// with optional OpenTelemetry spans around plan and step execution.
package plan
