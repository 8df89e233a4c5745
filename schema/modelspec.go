package schema

// EndpointKind tags how a preset identifies the model behind an endpoint.
type EndpointKind string

const (
	EndpointKindAgent     EndpointKind = "agent"
	EndpointKindAssistant EndpointKind = "assistant"
	EndpointKindDirect    EndpointKind = "direct"
)

// WarningSeverity grades a modal warning entry.
type WarningSeverity string

const (
	SeverityInfo     WarningSeverity = "info"
	SeverityWarning  WarningSeverity = "warning"
	SeverityCritical WarningSeverity = "critical"
)

// ModelSpec is a configured model specification. Specs are supplied at
// startup and treated as read-only; a spec is gated iff ModalInfo is set.
type ModelSpec struct {
	Name   string     `json:"name" mapstructure:"name"`
	Label  string     `json:"label" mapstructure:"label"`
	Preset Preset     `json:"preset" mapstructure:"preset"`
	Modal  *ModalInfo `json:"modal_info,omitempty" mapstructure:"modal_info"`
}

// Preset points a spec at an endpoint plus one of three identifier kinds:
// an agent, an assistant, or a direct model name.
type Preset struct {
	Endpoint    string `json:"endpoint" mapstructure:"endpoint"`
	AgentID     string `json:"agent_id,omitempty" mapstructure:"agent_id"`
	AssistantID string `json:"assistant_id,omitempty" mapstructure:"assistant_id"`
	Model       string `json:"model,omitempty" mapstructure:"model"`
}

// ModalInfo declares the acknowledgment dialog shown before a gated model
// can be used.
type ModalInfo struct {
	IntendedUse           string         `json:"intended_use,omitempty" mapstructure:"intended_use"`
	Warnings              []ModalWarning `json:"warnings" mapstructure:"warnings"`
	CostInfo              *ModalCostInfo `json:"cost_info,omitempty" mapstructure:"cost_info"`
	ModelCardURL          string         `json:"model_card_url,omitempty" mapstructure:"model_card_url"`
	RequireAcknowledgment *bool          `json:"require_acknowledgment,omitempty" mapstructure:"require_acknowledgment"`
}

type ModalWarning struct {
	Title          string          `json:"title" mapstructure:"title"`
	Description    string          `json:"description" mapstructure:"description"`
	Severity       WarningSeverity `json:"severity" mapstructure:"severity"`
	Acknowledgment string          `json:"acknowledgment" mapstructure:"acknowledgment"`
}

type ModalCostInfo struct {
	Description    string `json:"description" mapstructure:"description"`
	Acknowledgment string `json:"acknowledgment" mapstructure:"acknowledgment"`
}

// Gated reports whether using the spec requires an accepted consent.
func (s *ModelSpec) Gated() bool {
	return s.Modal != nil
}

// AcknowledgmentRequired defaults to true when the field is omitted.
func (m *ModalInfo) AcknowledgmentRequired() bool {
	if m == nil || m.RequireAcknowledgment == nil {
		return true
	}
	return *m.RequireAcknowledgment
}
