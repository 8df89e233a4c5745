package client

import (
	"fmt"

	"github.com/nicksnyder/go-i18n/v2/i18n"

	"github.com/r-huijts/LibreChat/modelspec"
	"github.com/r-huijts/LibreChat/utils"
)

// SlotID names one of the concurrently visible conversation panes. The root
// slot always exists; the added slot only exists in split view.
type SlotID string

const (
	SlotRoot  SlotID = "root"
	SlotAdded SlotID = "added"
)

// Slot is one conversation pane's current model target. A slot with no
// endpoint is a brand-new conversation and is vacuously ungated.
type Slot struct {
	ID       SlotID
	Endpoint string
	Model    string
}

// BlockedError reports the spec that blocked a submission.
type BlockedError struct {
	Slot      SlotID
	ModelName string
}

func (e *BlockedError) Error() string {
	return fmt.Sprintf("consent required for model %q", e.ModelName)
}

// Gate is the pre-flight check run immediately before any outbound chat
// submission. It is synchronous and only reads cached state; it never
// issues a network call.
type Gate struct {
	specs    *modelspec.Registry
	cache    *IdentityCache
	notifier *Notifier
	lang     string
}

func NewGate(specs *modelspec.Registry, cache *IdentityCache, notifier *Notifier, lang string) *Gate {
	return &Gate{
		specs:    specs,
		cache:    cache,
		notifier: notifier,
		lang:     lang,
	}
}

// CheckSubmit evaluates every active slot. If any slot targets a gated spec
// without an active cached consent, the whole submission is blocked and a
// notification naming the blocking spec is published so the modal can open.
// Partial sends across slots are forbidden. Resubmission after the user
// grants consent is a separate, manual action.
func (g *Gate) CheckSubmit(slots ...Slot) error {
	for _, slot := range slots {
		if slot.Endpoint == "" {
			continue
		}

		spec, gated := g.specs.IsGated(slot.Endpoint, slot.Model)
		if !gated {
			continue
		}

		if g.cache.HasActiveConsent(spec.Name) {
			continue
		}

		g.notifier.Publish(ConsentRequired{
			Slot:    slot.ID,
			Spec:    spec,
			Message: blockedMessage(g.lang, spec.Label),
		})
		return &BlockedError{Slot: slot.ID, ModelName: spec.Name}
	}

	return nil
}

func blockedMessage(lang, label string) string {
	msg, err := utils.NewLocalizer(lang).Localize(&i18n.LocalizeConfig{
		MessageID:    "consent.blocked",
		TemplateData: map[string]string{"Model": label},
	})
	if err != nil {
		return fmt.Sprintf("%s requires your acknowledgment before messages can be sent", label)
	}
	return msg
}
