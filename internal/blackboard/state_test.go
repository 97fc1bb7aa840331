package blackboard

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AnirudhBhagat/AI-Automation-Platform/internal/classify"
)

func TestNewState(t *testing.T) {
	state := NewState("approve the deal", classify.Entities{"customer_name": "Acme"})

	assert.NoError(t, state.TraceID.Validate())
	assert.Equal(t, "approve the deal", state.RequestText)
	assert.NotNil(t, state.Facts)
	assert.Nil(t, state.DecisionPacket)
	assert.Empty(t, state.Events)
}

func TestNewState_FreshTracePerRun(t *testing.T) {
	first := NewState("text", nil)
	second := NewState("text", nil)
	assert.NotEqual(t, first.TraceID, second.TraceID)
}

func TestState_GetTopLevelKeys(t *testing.T) {
	state := NewState("some request", classify.Entities{"customer_name": "Acme"})

	v, ok := state.Get("request_text")
	require.True(t, ok)
	assert.Equal(t, "some request", v)

	v, ok = state.Get("trace_id")
	require.True(t, ok)
	assert.Equal(t, state.TraceID.String(), v)

	v, ok = state.Get("entities.customer_name")
	require.True(t, ok)
	assert.Equal(t, "Acme", v)
}

func TestState_GetAbsent(t *testing.T) {
	state := NewState("text", nil)

	tests := []struct {
		name string
		path string
	}{
		{name: "missing entity", path: "entities.customer_name"},
		{name: "missing fact", path: "facts.finance.computed_arr_usd"},
		{name: "decision packet before assembly", path: "decision_packet"},
		{name: "unknown top-level key", path: "bogus"},
		{name: "segment through scalar", path: "request_text.deeper"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, ok := state.Get(tt.path)
			assert.False(t, ok)
		})
	}
}

func TestState_SetAutoVivifiesIntermediates(t *testing.T) {
	state := NewState("text", nil)

	require.NoError(t, state.Set("facts.finance.computed_arr_usd", 120000))

	v, ok := state.Get("facts.finance.computed_arr_usd")
	require.True(t, ok)
	assert.Equal(t, 120000, v)

	// The intermediate container is reachable too.
	v, ok = state.Get("facts.finance")
	require.True(t, ok)
	assert.Equal(t, map[string]any{"computed_arr_usd": 120000}, v)
}

func TestState_SetWholeFactBlock(t *testing.T) {
	state := NewState("text", nil)

	require.NoError(t, state.Set("facts.sales", map[string]any{
		"status":  "OK",
		"account": map[string]any{"account_id": "ACC_001"},
	}))

	v, ok := state.Get("facts.sales.account.account_id")
	require.True(t, ok)
	assert.Equal(t, "ACC_001", v)
}

func TestState_GetNilValueIsAbsent(t *testing.T) {
	state := NewState("text", nil)
	require.NoError(t, state.Set("facts.data.usage_summary", nil))

	_, ok := state.Get("facts.data.usage_summary")
	assert.False(t, ok)

	// Reaching through the nil value is absent as well.
	_, ok = state.Get("facts.data.usage_summary.customer_name")
	assert.False(t, ok)
}

func TestState_SetRejectsUnknownSection(t *testing.T) {
	state := NewState("text", nil)

	assert.Error(t, state.Set("trace_id", "override"))
	assert.Error(t, state.Set("request_text", "override"))
	assert.Error(t, state.Set("bogus.key", 1))
}

func TestState_SetDecisionPacket(t *testing.T) {
	state := NewState("text", nil)

	packet := map[string]any{"trace_id": state.TraceID.String()}
	require.NoError(t, state.Set("decision_packet", packet))

	v, ok := state.Get("decision_packet.trace_id")
	require.True(t, ok)
	assert.Equal(t, state.TraceID.String(), v)
}

func TestState_SetDefaultEntity(t *testing.T) {
	state := NewState("text", classify.Entities{"discount_pct": "10"})

	// Absent key backfills.
	state.SetDefaultEntity("payment_terms", "NET_30")
	assert.Equal(t, "NET_30", state.Entities["payment_terms"])

	// An extracted value is never overwritten.
	state.SetDefaultEntity("discount_pct", "15")
	assert.Equal(t, "10", state.Entities["discount_pct"])
}

func TestState_LogPreservesOrder(t *testing.T) {
	state := NewState("text", nil)

	state.Log(LevelInfo, "runner", "first", nil)
	state.Log(LevelWarn, "step_a", "second", map[string]any{"k": "v"})
	state.Log(LevelError, "step_b", "third", nil)

	require.Len(t, state.Events, 3)
	assert.Equal(t, "first", state.Events[0].Message)
	assert.Equal(t, "second", state.Events[1].Message)
	assert.Equal(t, "third", state.Events[2].Message)
	assert.Equal(t, LevelWarn, state.Events[1].Level)
	assert.Equal(t, "step_a", state.Events[1].StepID)
	assert.Equal(t, map[string]any{"k": "v"}, state.Events[1].Details)
	assert.NotNil(t, state.Events[0].Details)

	for i := 1; i < len(state.Events); i++ {
		assert.False(t, state.Events[i].Timestamp.Before(state.Events[i-1].Timestamp))
	}
}
