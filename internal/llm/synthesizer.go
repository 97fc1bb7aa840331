// Package llm provides the decision synthesis collaborator: a single
// Gemini call that turns an assembled decision packet into a structured
// decision memo, with a file-backed response cache in front of it.
//
// Synthesis sits outside the deterministic core: plan execution is
// complete and correct without it, and every memo claim must cite an
// evidence key present in the decision packet.
package llm

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"strings"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/googleai"

	"github.com/AnirudhBhagat/AI-Automation-Platform/internal/types"
)

// DefaultModel is the Gemini model used when config does not override it.
const DefaultModel = "gemini-2.5-flash"

// Synthesizer produces decision memos from decision packets via one LLM
// call, consulting the cache first.
type Synthesizer struct {
	model     llms.Model
	modelName string
	cache     *Cache
	logger    *slog.Logger
}

// SynthesizerOption is a functional option for configuring Synthesizer.
type SynthesizerOption func(*Synthesizer)

// WithSynthesizerLogger configures the logger for the synthesizer.
func WithSynthesizerLogger(l *slog.Logger) SynthesizerOption {
	return func(s *Synthesizer) {
		s.logger = l
	}
}

// NewSynthesizer creates a Synthesizer over any langchaingo model.
func NewSynthesizer(model llms.Model, modelName string, cache *Cache, opts ...SynthesizerOption) *Synthesizer {
	s := &Synthesizer{
		model:     model,
		modelName: modelName,
		cache:     cache,
		logger:    slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// NewGoogleSynthesizer creates a Synthesizer backed by Gemini. The API
// key falls back to the GEMINI_API_KEY environment variable; a missing
// key fails fast.
func NewGoogleSynthesizer(ctx context.Context, apiKey, modelName string, cache *Cache, opts ...SynthesizerOption) (*Synthesizer, error) {
	if apiKey == "" {
		apiKey = os.Getenv("GEMINI_API_KEY")
	}
	if apiKey == "" {
		return nil, types.NewError(types.SYNTHESIS_UNAVAILABLE, "missing Gemini API key")
	}
	if modelName == "" {
		modelName = DefaultModel
	}

	client, err := googleai.New(ctx,
		googleai.WithAPIKey(apiKey),
		googleai.WithDefaultModel(modelName),
	)
	if err != nil {
		return nil, types.WrapError(types.SYNTHESIS_UNAVAILABLE, "failed to create Gemini client", err)
	}

	return NewSynthesizer(client, modelName, cache, opts...), nil
}

// SynthesizeDecision calls the model once for the given decision packet
// and returns the parsed memo. Repeated calls with an identical packet
// are served from the cache; the second return value reports a cache hit.
//
// Model output that is not valid JSON degrades to a NEEDS_INFO memo
// carrying the raw output for debugging, and that memo is cached like
// any other response.
func (s *Synthesizer) SynthesizeDecision(ctx context.Context, decisionPacket map[string]any) (map[string]any, bool, error) {
	keyObj := map[string]any{
		"prompt_version":  PromptVersion,
		"model":           s.modelName,
		"decision_packet": decisionPacket,
	}

	if cached, ok := s.cache.Get(keyObj); ok {
		s.logger.Info("synthesis served from cache", "model", s.modelName)
		return cached, true, nil
	}

	prompt, err := BuildPrompt(decisionPacket, s.modelName)
	if err != nil {
		return nil, false, types.WrapError(types.SYNTHESIS_CALL_FAILED, "failed to build prompt", err)
	}

	s.logger.Info("calling synthesis model", "model", s.modelName)
	text, err := llms.GenerateFromSinglePrompt(ctx, s.model, prompt)
	if err != nil {
		return nil, false, types.WrapError(types.SYNTHESIS_CALL_FAILED, "synthesis call failed", err)
	}

	memo := s.parseMemo(strings.TrimSpace(text), decisionPacket)

	if err := s.cache.Set(keyObj, memo); err != nil {
		// A cache write failure does not invalidate the memo.
		s.logger.Warn("failed to cache synthesis response", "error", err)
	}
	return memo, false, nil
}

// parseMemo parses model output as JSON, degrading to a NEEDS_INFO memo
// when the output is malformed.
func (s *Synthesizer) parseMemo(text string, decisionPacket map[string]any) map[string]any {
	var memo map[string]any
	if err := json.Unmarshal([]byte(text), &memo); err == nil && memo != nil {
		return memo
	}

	traceID, _ := decisionPacket["trace_id"].(string)
	return map[string]any{
		"decision": "NEEDS_INFO",
		"summary":  "Model output was not valid JSON.",
		"rationale": []any{
			map[string]any{"claim": "JSON parsing failed", "evidence_key": "N/A"},
		},
		"risks":      []any{"MODEL_OUTPUT_NOT_JSON"},
		"follow_ups": []any{"Adjust the prompt or enforce JSON mode in the SDK."},
		"audit": map[string]any{
			"trace_id":       traceID,
			"workflow":       "DEAL_APPROVAL",
			"model":          s.modelName,
			"prompt_version": PromptVersion,
		},
		"missing_items":     []any{},
		"_raw_model_output": text,
	}
}
