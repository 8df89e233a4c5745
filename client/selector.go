package client

import (
	"github.com/r-huijts/LibreChat/modelspec"
	"github.com/r-huijts/LibreChat/schema"
)

// Selector is the glue between the model picker and the consent dialog:
// switching a slot to a gated spec the user has not accepted publishes the
// same notification the gate emits, so the dialog opens immediately instead
// of at submit time.
type Selector struct {
	specs    *modelspec.Registry
	cache    *IdentityCache
	notifier *Notifier
	lang     string
}

func NewSelector(specs *modelspec.Registry, cache *IdentityCache, notifier *Notifier, lang string) *Selector {
	return &Selector{
		specs:    specs,
		cache:    cache,
		notifier: notifier,
		lang:     lang,
	}
}

// Select records a slot switching to (endpoint, model). Selecting a gated,
// unaccepted spec triggers the consent notification; selecting anything
// else is silent. Selection itself never implies consent.
func (s *Selector) Select(slot SlotID, endpoint, model string) *schema.ModelSpec {
	spec, gated := s.specs.IsGated(endpoint, model)
	if !gated {
		return spec
	}

	if s.cache.HasActiveConsent(spec.Name) {
		return spec
	}

	s.notifier.Publish(ConsentRequired{
		Slot:    slot,
		Spec:    spec,
		Message: blockedMessage(s.lang, spec.Label),
	})
	return spec
}
