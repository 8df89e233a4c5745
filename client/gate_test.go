package client

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/r-huijts/LibreChat/modelspec"
	"github.com/r-huijts/LibreChat/schema"
)

type fakeFetcher struct {
	user  *schema.User
	err   error
	calls int
}

func (f *fakeFetcher) GetUser(ctx context.Context) (*schema.User, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.user, nil
}

func gateRegistry() *modelspec.Registry {
	return modelspec.NewRegistry([]schema.ModelSpec{
		{
			Name:  "gpt-4-vision",
			Label: "GPT-4 Vision",
			Preset: schema.Preset{
				Endpoint: "openAI",
				Model:    "gpt-4-vision-preview",
			},
			Modal: &schema.ModalInfo{
				Warnings: []schema.ModalWarning{{Title: "Experimental", Severity: schema.SeverityWarning}},
			},
		},
		{
			Name:  "gpt-3.5",
			Label: "GPT-3.5",
			Preset: schema.Preset{
				Endpoint: "openAI",
				Model:    "gpt-3.5-turbo",
			},
		},
	})
}

func loadedCache(t *testing.T, user *schema.User) *IdentityCache {
	cache := NewIdentityCache(&fakeFetcher{user: user})
	if err := cache.Refresh(context.Background()); err != nil {
		t.Fatalf("refresh cache: %s", err)
	}
	return cache
}

func TestGateAllowsUngatedSlots(t *testing.T) {
	cache := loadedCache(t, &schema.User{ID: "user-1"})
	gate := NewGate(gateRegistry(), cache, NewNotifier(), "en")

	err := gate.CheckSubmit(
		Slot{ID: SlotRoot, Endpoint: "openAI", Model: "gpt-3.5-turbo"},
		Slot{ID: SlotAdded, Endpoint: "anthropic", Model: "claude-3-opus"}, // resolver miss is ungated
	)
	assert.NoError(t, err)
}

func TestGateUnconfiguredSlotIsVacuouslyUngated(t *testing.T) {
	cache := loadedCache(t, &schema.User{ID: "user-1"})
	gate := NewGate(gateRegistry(), cache, NewNotifier(), "en")

	assert.NoError(t, gate.CheckSubmit(Slot{ID: SlotRoot}))
}

func TestGateBlocksAllSlotsWhenOneIsGated(t *testing.T) {
	cache := loadedCache(t, &schema.User{ID: "user-1"})
	notifier := NewNotifier()
	events := notifier.Subscribe()
	gate := NewGate(gateRegistry(), cache, notifier, "en")

	sends := 0
	submit := func(slots ...Slot) {
		if err := gate.CheckSubmit(slots...); err != nil {
			return
		}
		sends += len(slots)
	}

	// slot A gated and unaccepted, slot B ungated: both blocked, zero sends
	submit(
		Slot{ID: SlotRoot, Endpoint: "openAI", Model: "gpt-4-vision-preview"},
		Slot{ID: SlotAdded, Endpoint: "openAI", Model: "gpt-3.5-turbo"},
	)
	assert.Equal(t, 0, sends)

	event := <-events
	assert.Equal(t, SlotRoot, event.Slot)
	assert.Equal(t, "gpt-4-vision", event.Spec.Name)
	assert.Contains(t, event.Message, "GPT-4 Vision")
}

func TestGateReadsConsentFromCachedIdentity(t *testing.T) {
	fetcher := &fakeFetcher{user: &schema.User{
		ID: "user-1",
		ModelConsents: []schema.UserModelConsent{
			{ModelName: "gpt-4-vision"},
		},
	}}
	cache := NewIdentityCache(fetcher)
	assert.NoError(t, cache.Refresh(context.Background()))

	gate := NewGate(gateRegistry(), cache, NewNotifier(), "en")

	before := fetcher.calls
	err := gate.CheckSubmit(Slot{ID: SlotRoot, Endpoint: "openAI", Model: "gpt-4-vision-preview"})
	assert.NoError(t, err)
	// the gate never fetches on its own
	assert.Equal(t, before, fetcher.calls)
}

func TestGateBlocksOnRevokedConsent(t *testing.T) {
	revoked := nowPtr()
	cache := loadedCache(t, &schema.User{
		ID: "user-1",
		ModelConsents: []schema.UserModelConsent{
			{ModelName: "gpt-4-vision", RevokedAt: revoked},
		},
	})
	gate := NewGate(gateRegistry(), cache, NewNotifier(), "en")

	err := gate.CheckSubmit(Slot{ID: SlotRoot, Endpoint: "openAI", Model: "gpt-4-vision-preview"})
	var blocked *BlockedError
	assert.ErrorAs(t, err, &blocked)
	assert.Equal(t, "gpt-4-vision", blocked.ModelName)
}

func TestSelectorNotifiesOnGatedSelection(t *testing.T) {
	cache := loadedCache(t, &schema.User{ID: "user-1"})
	notifier := NewNotifier()
	events := notifier.Subscribe()
	selector := NewSelector(gateRegistry(), cache, notifier, "en")

	spec := selector.Select(SlotRoot, "openAI", "gpt-4-vision-preview")
	assert.Equal(t, "gpt-4-vision", spec.Name)

	event := <-events
	assert.Equal(t, "gpt-4-vision", event.Spec.Name)

	// ungated selection is silent
	selector.Select(SlotRoot, "openAI", "gpt-3.5-turbo")
	select {
	case e := <-events:
		t.Fatalf("unexpected notification for %s", e.Spec.Name)
	default:
	}
}
