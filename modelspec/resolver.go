package modelspec

import (
	"strings"

	"github.com/r-huijts/LibreChat/schema"
)

// Registry holds the model specifications supplied at startup. Lookups are
// pure; a miss means the combination is ungated, since specs absent from
// configuration cannot require consent.
type Registry struct {
	specs []schema.ModelSpec
}

func NewRegistry(specs []schema.ModelSpec) *Registry {
	return &Registry{specs: specs}
}

func (r *Registry) Specs() []schema.ModelSpec {
	return r.specs
}

// Get returns a spec by its configured name.
func (r *Registry) Get(name string) (*schema.ModelSpec, bool) {
	for i := range r.specs {
		if r.specs[i].Name == name {
			return &r.specs[i], true
		}
	}
	return nil, false
}

// Resolve matches a target (endpoint, model identifier) against the
// configured specs. The effective identifier of a candidate depends on the
// endpoint kind: agent-backed presets compare agent_id, assistant-backed
// presets compare assistant_id, everything else compares model. An empty
// identifier matches only candidates that carry none either.
func (r *Registry) Resolve(endpoint, modelIdentifier string) (*schema.ModelSpec, bool) {
	for i := range r.specs {
		spec := &r.specs[i]
		if !strings.EqualFold(spec.Preset.Endpoint, endpoint) {
			continue
		}
		if EffectiveIdentifier(spec.Preset) == modelIdentifier {
			return spec, true
		}
	}
	return nil, false
}

// IsGated reports whether the target requires consent before use. A resolver
// miss is not an error and never gates.
func (r *Registry) IsGated(endpoint, modelIdentifier string) (*schema.ModelSpec, bool) {
	spec, ok := r.Resolve(endpoint, modelIdentifier)
	if !ok {
		return nil, false
	}
	return spec, spec.Gated()
}

// KindOf classifies a preset by which identifier field it carries.
func KindOf(preset schema.Preset) schema.EndpointKind {
	switch {
	case preset.AgentID != "":
		return schema.EndpointKindAgent
	case preset.AssistantID != "":
		return schema.EndpointKindAssistant
	default:
		return schema.EndpointKindDirect
	}
}

// EffectiveIdentifier picks the identifier to compare for a preset,
// branching on the endpoint kind so the matching stays exhaustive when new
// kinds are added.
func EffectiveIdentifier(preset schema.Preset) string {
	switch KindOf(preset) {
	case schema.EndpointKindAgent:
		return preset.AgentID
	case schema.EndpointKindAssistant:
		return preset.AssistantID
	default:
		return preset.Model
	}
}
