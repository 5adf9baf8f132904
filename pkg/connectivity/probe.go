package connectivity

import (
	"context"
	"time"
)

// Probe is the external collaborator that actually checks the network.
type Probe interface {
	// Reachable reports whether the backend is reachable right now.
	Reachable(ctx context.Context) bool
}

// ProbeFunc adapts a plain function to a Probe.
type ProbeFunc func(ctx context.Context) bool

func (f ProbeFunc) Reachable(ctx context.Context) bool {
	return f(ctx)
}

// RunProbeLoop polls the probe on the given interval and drives the tracker
// until the context is cancelled. Transitions stay explicit: the loop calls
// the same activate/deactivate entry points the host UI would.
func RunProbeLoop(ctx context.Context, tracker *Tracker, probe Probe, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if probe.Reachable(ctx) {
				tracker.DeactivateOfflineMode()
			} else {
				tracker.ActivateOfflineMode()
			}
		}
	}
}
