package client

import (
	"context"
	"fmt"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	log "github.com/sirupsen/logrus"

	"github.com/r-huijts/LibreChat/schema"
	"github.com/r-huijts/LibreChat/utils"
)

var (
	ErrModalNotOpen             = fmt.Errorf("consent dialog is not open")
	ErrAcknowledgmentIncomplete = fmt.Errorf("all items must be acknowledged before accepting")
	ErrNoConsentToRetract       = fmt.Errorf("no active consent to retract")
	ErrChecklistItemOutOfRange  = fmt.Errorf("checklist item out of range")
)

// ConsentService is the slice of the API client the modal drives.
type ConsentService interface {
	AcceptConsent(ctx context.Context, modelName, modelLabel string, metadata map[string]interface{}) (*schema.ModelConsent, error)
	RevokeConsent(ctx context.Context, modelName string) error
}

// ChecklistItem is one acknowledgment the user must tick: one per declared
// warning plus one for the cost info when present.
type ChecklistItem struct {
	Label          string
	Description    string
	Acknowledgment string
	Checked        bool
}

// Modal is the acknowledgment dialog state machine:
// Closed → Open → {accepted, cancelled, retracted} → Closed.
// Viewing the dialog never implies consent; only a confirmed accept call
// has a side effect, and a failed call leaves the dialog open and the model
// locked.
type Modal struct {
	svc   ConsentService
	cache *IdentityCache
	lang  string

	open  bool
	spec  *schema.ModelSpec
	items []ChecklistItem
}

func NewModal(svc ConsentService, cache *IdentityCache, lang string) *Modal {
	return &Modal{
		svc:   svc,
		cache: cache,
		lang:  lang,
	}
}

// Open presents the dialog for a spec and derives a fresh, unchecked
// checklist from its modal info.
func (m *Modal) Open(spec *schema.ModelSpec) {
	m.open = true
	m.spec = spec
	m.items = buildChecklist(spec, m.lang)
}

func (m *Modal) IsOpen() bool {
	return m.open
}

// Spec returns the spec currently displayed, or nil when closed.
func (m *Modal) Spec() *schema.ModelSpec {
	if !m.open {
		return nil
	}
	return m.spec
}

// Checklist returns a copy of the current checklist state.
func (m *Modal) Checklist() []ChecklistItem {
	items := make([]ChecklistItem, len(m.items))
	copy(items, m.items)
	return items
}

// Toggle flips one checklist item.
func (m *Modal) Toggle(i int) error {
	if !m.open {
		return ErrModalNotOpen
	}
	if i < 0 || i >= len(m.items) {
		return ErrChecklistItemOutOfRange
	}

	m.items[i].Checked = !m.items[i].Checked
	return nil
}

// CanAccept reports whether the accept control is enabled: every item
// checked, unless the spec explicitly waives acknowledgment, in which case
// the checklist is purely informational.
func (m *Modal) CanAccept() bool {
	if !m.open {
		return false
	}
	if !m.spec.Modal.AcknowledgmentRequired() {
		return true
	}

	for _, item := range m.items {
		if !item.Checked {
			return false
		}
	}
	return true
}

// CanRetract reports whether a retract control is shown: only when an
// active consent for the displayed spec already exists.
func (m *Modal) CanRetract() bool {
	return m.open && m.cache.HasActiveConsent(m.spec.Name)
}

// Accept issues the accept operation. Only on confirmed success does the
// dialog close and the checklist reset; the cached identity is invalidated
// and refreshed so the gate observes the new state on the next check.
func (m *Modal) Accept(ctx context.Context) error {
	if !m.open {
		return ErrModalNotOpen
	}
	if !m.CanAccept() {
		return ErrAcknowledgmentIncomplete
	}

	if _, err := m.svc.AcceptConsent(ctx, m.spec.Name, m.spec.Label, nil); err != nil {
		// fail closed: dialog stays open, model stays locked
		return err
	}

	m.refreshIdentity(ctx)
	m.reset()
	return nil
}

// Cancel discards the checklist state and closes without any side effect.
func (m *Modal) Cancel() {
	m.reset()
}

// Retract revokes the displayed spec's active consent and closes on
// success, with the same cache invalidation as Accept.
func (m *Modal) Retract(ctx context.Context) error {
	if !m.open {
		return ErrModalNotOpen
	}
	if !m.CanRetract() {
		return ErrNoConsentToRetract
	}

	if err := m.svc.RevokeConsent(ctx, m.spec.Name); err != nil {
		return err
	}

	m.refreshIdentity(ctx)
	m.reset()
	return nil
}

func (m *Modal) refreshIdentity(ctx context.Context) {
	m.cache.Invalidate()
	if err := m.cache.Refresh(ctx); err != nil {
		// the cache stays stale; the gate keeps reading the old state
		// until the next successful refresh
		log.WithError(err).Error("fail to refresh identity after consent change")
	}
}

func (m *Modal) reset() {
	m.open = false
	m.spec = nil
	m.items = nil
}

func buildChecklist(spec *schema.ModelSpec, lang string) []ChecklistItem {
	if spec.Modal == nil {
		return nil
	}

	localizer := utils.NewLocalizer(lang)
	items := make([]ChecklistItem, 0, len(spec.Modal.Warnings)+1)

	for _, w := range spec.Modal.Warnings {
		items = append(items, ChecklistItem{
			Label:          fmt.Sprintf("%s: %s", severityLabel(localizer, w.Severity), w.Title),
			Description:    w.Description,
			Acknowledgment: w.Acknowledgment,
		})
	}

	if ci := spec.Modal.CostInfo; ci != nil {
		label, err := localizer.Localize(&i18n.LocalizeConfig{MessageID: "consent.cost"})
		if err != nil {
			label = "Cost"
		}
		items = append(items, ChecklistItem{
			Label:          label,
			Description:    ci.Description,
			Acknowledgment: ci.Acknowledgment,
		})
	}

	return items
}

func severityLabel(localizer *i18n.Localizer, severity schema.WarningSeverity) string {
	label, err := localizer.Localize(&i18n.LocalizeConfig{
		MessageID: fmt.Sprintf("consent.severity.%s", severity),
	})
	if err != nil {
		return string(severity)
	}
	return label
}
