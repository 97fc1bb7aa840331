// Package blackboard provides the shared, path-addressable execution
// state through which independent plan steps communicate, plus the
// append-only event trace recording a run's execution.
package blackboard

import (
	"fmt"
	"strings"
	"time"

	"github.com/AnirudhBhagat/AI-Automation-Platform/internal/classify"
	"github.com/AnirudhBhagat/AI-Automation-Platform/internal/types"
)

// Top-level state sections addressable via dotted paths. Writes outside
// these sections are rejected.
const (
	SectionEntities       = "entities"
	SectionFacts          = "facts"
	SectionDecisionPacket = "decision_packet"
)

// Read-only top-level keys, also resolvable via Get.
const (
	KeyTraceID     = "trace_id"
	KeyRequestText = "request_text"
)

// State is the mutable execution context for one workflow run: the
// blackboard. Everything agents produce is stored here under stable
// dotted keys. A State is exclusively owned by one in-flight run and
// must never be shared across concurrent runs.
type State struct {
	// TraceID uniquely identifies this run.
	TraceID types.ID

	// RequestText is the original free-text request.
	RequestText string

	// Entities holds fields extracted from the request text. Values
	// discovered later by steps may be backfilled, but never overwrite
	// an extracted value.
	Entities classify.Entities

	// Facts holds the structured outputs of agent steps, nested under
	// stable dotted paths such as "facts.finance.computed_arr_usd".
	Facts map[string]any

	// DecisionPacket is the final payload for downstream synthesis.
	// Nil until the terminal assembly step populates it.
	DecisionPacket map[string]any

	// Events is the ordered, append-only execution trace.
	Events []Event
}

// NewState creates a State for one run with a fresh trace ID.
// The entities map is taken over by the state, not copied; callers must
// not retain it.
func NewState(requestText string, entities classify.Entities) *State {
	if entities == nil {
		entities = classify.Entities{}
	}
	return &State{
		TraceID:     types.NewID(),
		RequestText: requestText,
		Entities:    entities,
		Facts:       map[string]any{},
	}
}

// Log appends an Event with a fresh UTC timestamp. Prior events are
// never removed or reordered.
func (s *State) Log(level Level, stepID, message string, details map[string]any) {
	if details == nil {
		details = map[string]any{}
	}
	s.Events = append(s.Events, Event{
		Timestamp: time.Now().UTC(),
		Level:     level,
		StepID:    stepID,
		Message:   message,
		Details:   details,
	})
}

// Get reads state using dotted keys like "entities.customer_name" or
// "facts.finance.computed_arr_usd". It resolves segment by segment
// through nested maps; any missing intermediate segment or nil value
// short-circuits to absent (ok == false).
func (s *State) Get(path string) (any, bool) {
	parts := strings.Split(path, ".")

	var cur any
	switch parts[0] {
	case KeyTraceID:
		cur = s.TraceID.String()
	case KeyRequestText:
		cur = s.RequestText
	case SectionEntities:
		cur = s.Entities
	case SectionFacts:
		cur = s.Facts
	case SectionDecisionPacket:
		if s.DecisionPacket == nil {
			return nil, false
		}
		cur = s.DecisionPacket
	default:
		return nil, false
	}

	for _, p := range parts[1:] {
		next, ok := resolveSegment(cur, p)
		if !ok || next == nil {
			return nil, false
		}
		cur = next
	}

	if cur == nil {
		return nil, false
	}
	return cur, true
}

// GetString reads a dotted path and returns its value as a string.
// Non-string values and absent paths report ok == false.
func (s *State) GetString(path string) (string, bool) {
	v, ok := s.Get(path)
	if !ok {
		return "", false
	}
	str, ok := v.(string)
	return str, ok
}

func resolveSegment(cur any, segment string) (any, bool) {
	switch m := cur.(type) {
	case map[string]any:
		v, ok := m[segment]
		return v, ok
	case classify.Entities:
		v, ok := m[segment]
		return v, ok
	case map[string]string:
		v, ok := m[segment]
		return v, ok
	default:
		return nil, false
	}
}

// Set writes state using dotted keys, auto-creating intermediate maps
// along the path. The top-level segment must be one of the known
// sections (entities, facts, decision_packet); writes elsewhere are
// rejected. A non-map value found where the path needs an intermediate
// container is replaced by a fresh map.
func (s *State) Set(path string, value any) error {
	parts := strings.Split(path, ".")

	switch parts[0] {
	case SectionEntities:
		if len(parts) == 1 {
			return fmt.Errorf("cannot replace the entities section wholesale")
		}
		if len(parts) > 2 {
			return fmt.Errorf("entities paths have exactly one key segment, got %q", path)
		}
		s.Entities[parts[1]] = fmt.Sprint(value)
		return nil

	case SectionFacts:
		if len(parts) == 1 {
			m, ok := value.(map[string]any)
			if !ok {
				return fmt.Errorf("facts section requires a map value, got %T", value)
			}
			s.Facts = m
			return nil
		}
		setNested(s.Facts, parts[1:], value)
		return nil

	case SectionDecisionPacket:
		if len(parts) == 1 {
			m, ok := value.(map[string]any)
			if !ok {
				return fmt.Errorf("decision_packet requires a map value, got %T", value)
			}
			s.DecisionPacket = m
			return nil
		}
		if s.DecisionPacket == nil {
			s.DecisionPacket = map[string]any{}
		}
		setNested(s.DecisionPacket, parts[1:], value)
		return nil

	default:
		return fmt.Errorf("unknown top-level state section %q", parts[0])
	}
}

// SetDefaultEntity backfills an entity value only when the key is
// currently absent. Values supplied by the original text extraction are
// never overwritten.
func (s *State) SetDefaultEntity(key, value string) {
	if _, ok := s.Entities[key]; !ok {
		s.Entities[key] = value
	}
}

func setNested(m map[string]any, parts []string, value any) {
	for i, p := range parts {
		if i == len(parts)-1 {
			m[p] = value
			return
		}
		next, ok := m[p].(map[string]any)
		if !ok || next == nil {
			next = map[string]any{}
			m[p] = next
		}
		m = next
	}
}
