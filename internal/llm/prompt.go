package llm

import (
	"encoding/json"
	"fmt"
	"strings"
)

// PromptVersion participates in the cache key; bump it whenever the
// prompt or the response schema changes.
const PromptVersion = "v1"

const promptTemplate = `You are an internal automation assistant for a software company.
You will be given a JSON object called DECISION_PACKET containing:
- request_text
- entities
- facts from internal systems (crm, billing, analytics)
- policy results
Your job: produce a decision memo in STRICT JSON ONLY.

Rules:
1) Do not invent data. Use ONLY values present in DECISION_PACKET.
2) Output MUST be valid JSON. No markdown. No backticks.
3) Every claim must reference an evidence_key that exists in DECISION_PACKET.
4) If required info is missing, set decision="NEEDS_INFO" and list missing_items.

Return JSON with this exact schema:
{
  "decision": "APPROVE" | "REJECT" | "NEEDS_INFO",
  "summary": "string",
  "rationale": [
    {"claim": "string", "evidence_key": "string"}
  ],
  "risks": ["string"],
  "follow_ups": ["string"],
  "audit": {
    "trace_id": "string",
    "workflow": "DEAL_APPROVAL",
    "model": "%s",
    "prompt_version": "%s"
  },
  "missing_items": ["string"]
}

DECISION_PACKET:
%s`

// BuildPrompt renders the strict-JSON synthesis prompt for a decision
// packet. The prompt constrains the model to cite evidence keys present
// in the packet.
func BuildPrompt(decisionPacket map[string]any, model string) (string, error) {
	packet, err := json.Marshal(decisionPacket)
	if err != nil {
		return "", fmt.Errorf("decision packet not serializable: %w", err)
	}
	return strings.TrimSpace(fmt.Sprintf(promptTemplate, model, PromptVersion, packet)), nil
}
