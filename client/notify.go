package client

import (
	"sync"

	log "github.com/sirupsen/logrus"

	"github.com/r-huijts/LibreChat/schema"
)

// ConsentRequired is published whenever the gate or the selector hits a
// gated spec without an active consent. Subscribers (the modal) use it to
// open the acknowledgment dialog from wherever the check fired.
type ConsentRequired struct {
	Slot    SlotID
	Spec    *schema.ModelSpec
	Message string
}

// Notifier is a small in-process fan-out of ConsentRequired events.
type Notifier struct {
	mu   sync.Mutex
	subs []chan ConsentRequired
}

func NewNotifier() *Notifier {
	return &Notifier{}
}

// Subscribe returns a channel receiving future notifications.
func (n *Notifier) Subscribe() <-chan ConsentRequired {
	ch := make(chan ConsentRequired, 8)

	n.mu.Lock()
	n.subs = append(n.subs, ch)
	n.mu.Unlock()
	return ch
}

// Publish delivers the event to every subscriber. A subscriber that stopped
// draining its channel is skipped rather than blocking the UI thread.
func (n *Notifier) Publish(event ConsentRequired) {
	n.mu.Lock()
	defer n.mu.Unlock()

	for _, ch := range n.subs {
		select {
		case ch <- event:
		default:
			log.WithField("model", event.Spec.Name).Warn("consent notification dropped")
		}
	}
}
