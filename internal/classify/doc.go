// Package classify turns a free-text business request into a workflow
// type, a set of extracted entities, and a confidence value.
//
// Classification is deliberately rule-based, not ML-based: a fixed,
// ordered set of weighted keyword rules is evaluated against the
// lower-cased request text, per-workflow weights accumulate, and the
// top-scoring workflow wins. Ties break by workflow declaration order.
// A winning score below the decision threshold yields WorkflowUnknown.
// The same text always produces the same result.
//
// Entity extraction is equally deterministic: each entity field has one
// pattern, the first match in the text wins, and extraction failure is
// represented by field absence rather than an error.
package classify
