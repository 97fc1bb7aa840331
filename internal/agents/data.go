package agents

import (
	"context"
)

// DataAgent collects aggregated usage signals from the analytics store.
type DataAgent struct {
	usage UsageReader
}

// NewDataAgent creates a DataAgent backed by the given usage reader.
func NewDataAgent(usage UsageReader) *DataAgent {
	return &DataAgent{usage: usage}
}

// CollectUsageSignals aggregates the customer's usage over the trailing
// window. No recorded usage yields a nil summary value, not an error.
func (a *DataAgent) CollectUsageSignals(ctx context.Context, customerName string) (map[string]any, error) {
	usage, err := a.usage.UsageSummaryLastThreeMonths(ctx, customerName)
	if err != nil {
		return nil, err
	}

	out := map[string]any{"status": StatusOK}
	if usage != nil {
		out["usage_summary"] = usage.Map()
	} else {
		out["usage_summary"] = nil
	}
	return out, nil
}
