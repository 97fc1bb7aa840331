package blackboard

import "time"

// Level identifies the severity of a trace event.
type Level string

const (
	LevelInfo  Level = "INFO"
	LevelWarn  Level = "WARN"
	LevelError Level = "ERROR"
)

// String returns the string representation of the level.
func (l Level) String() string {
	return string(l)
}

// Event is a single execution trace entry for observability and
// debugging. Events are append-only and their ordering is the execution
// order; it must be preserved exactly for trace reproducibility.
type Event struct {
	Timestamp time.Time      `json:"ts"`
	Level     Level          `json:"level"`
	StepID    string         `json:"step_id"`
	Message   string         `json:"message"`
	Details   map[string]any `json:"details,omitempty"`
}
