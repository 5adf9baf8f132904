// Package connectivity holds the online/offline operating-mode state machine.
// The mode only changes through explicit activate/deactivate calls; a real
// network probe lives behind the Probe interface and drives the tracker from
// the outside.
package connectivity

import "sync"

// Tracker toggles between online and offline mode and notifies subscribers.
// Exactly one notification is sent per effective transition; idempotent
// repeat calls stay silent.
type Tracker struct {
	mu          sync.RWMutex
	offline     bool
	subscribers map[int]chan bool
	nextID      int
	closed      bool
}

func NewTracker() *Tracker {
	return &Tracker{
		subscribers: map[int]chan bool{},
	}
}

// IsOffline reports the current mode flag.
func (t *Tracker) IsOffline() bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.offline
}

// CheckNetworkConnectivity mirrors the explicit mode flag (true = online).
// Live probing belongs to the external Probe collaborator.
func (t *Tracker) CheckNetworkConnectivity() bool {
	return !t.IsOffline()
}

// ActivateOfflineMode switches to offline mode. Idempotent.
func (t *Tracker) ActivateOfflineMode() {
	t.setOffline(true)
}

// DeactivateOfflineMode switches back to online mode. Idempotent.
func (t *Tracker) DeactivateOfflineMode() {
	t.setOffline(false)
}

func (t *Tracker) setOffline(offline bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.closed || t.offline == offline {
		return
	}
	t.offline = offline
	for _, ch := range t.subscribers {
		// Buffered channels; a subscriber that stopped draining only loses
		// its own notifications.
		select {
		case ch <- offline:
		default:
		}
	}
}

// Subscribe registers for mode-change notifications. The returned cancel
// func removes the subscription and closes the channel.
func (t *Tracker) Subscribe() (<-chan bool, func()) {
	t.mu.Lock()
	defer t.mu.Unlock()

	id := t.nextID
	t.nextID++
	ch := make(chan bool, 8)
	if t.closed {
		close(ch)
		return ch, func() {}
	}
	t.subscribers[id] = ch

	cancel := func() {
		t.mu.Lock()
		defer t.mu.Unlock()
		if sub, ok := t.subscribers[id]; ok {
			delete(t.subscribers, id)
			close(sub)
		}
	}
	return ch, cancel
}

// Close releases every notification channel. Further transitions are ignored.
func (t *Tracker) Close() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.closed {
		return
	}
	t.closed = true
	for id, ch := range t.subscribers {
		delete(t.subscribers, id)
		close(ch)
	}
}
