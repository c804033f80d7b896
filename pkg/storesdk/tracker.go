package storesdk

import (
	"context"
	"sync"
	"time"
)

const (
	// DefaultWarnBefore is how long before the access token's expiry the
	// tracker enters the expiring state.
	DefaultWarnBefore = time.Minute

	// displayTick is the cadence of OnTick callbacks while the expiring
	// state is visible. The tick is for display only and never triggers a
	// renewal itself.
	displayTick = time.Second
)

// Tracker keeps a session alive across the access token's short
// lifetime. It decodes the token's expiry locally, schedules a one-shot
// timer for WarnBefore ahead of expiry, and on firing either renews
// silently (AutoRenew) or surfaces OnExpiring so an interactive client
// can prompt the user.
//
// A renewal failure means the refresh token itself is invalid or
// expired. That is a hard transition: the session is logged out, local
// state is cleared, and OnSessionEnd fires. There is no retry loop, so
// a genuinely expired session is never masked.
//
// Stop cancels any pending timer and tick. A stale timer firing after
// Stop or logout is a no-op.
type Tracker struct {
	session *Session

	// WarnBefore is the lead time before expiry at which the expiring
	// state begins. Defaults to DefaultWarnBefore.
	WarnBefore time.Duration

	// AutoRenew renews silently on entering the expiring state. Disable
	// it to drive renewal from a user-visible prompt via Renew.
	AutoRenew bool

	// OnExpiring fires once when the expiring state is entered, with the
	// time remaining until the token expires.
	OnExpiring func(remaining time.Duration)

	// OnTick fires every second while the expiring state is active, for
	// countdown display.
	OnTick func(remaining time.Duration)

	// OnRenewed fires after a successful renewal.
	OnRenewed func()

	// OnSessionEnd fires after a failed renewal has logged the session
	// out. The user must re-authenticate.
	OnSessionEnd func()

	mu       sync.Mutex
	timer    *time.Timer
	tickStop chan struct{}
	gen      uint64
	running  bool
}

// NewTracker creates a tracker for the given session with silent
// renewal enabled. Call Start to begin tracking.
func NewTracker(session *Session) *Tracker {
	return &Tracker{
		session:    session,
		WarnBefore: DefaultWarnBefore,
		AutoRenew:  true,
	}
}

// Start schedules tracking against the session's current token. With no
// token held the tracker stays idle until the next Start.
func (t *Tracker) Start() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.running = true
	t.scheduleLocked()
}

// Stop cancels the pending timer and any visible tick. Outstanding
// callbacks become no-ops. The session itself is left untouched.
func (t *Tracker) Stop() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.running = false
	t.cancelLocked()
}

// Renew refreshes the access token and reschedules the expiry timer.
// On failure the session is logged out and OnSessionEnd fires; the
// returned error describes the failed refresh.
func (t *Tracker) Renew(ctx context.Context) error {
	t.mu.Lock()
	if !t.running {
		t.mu.Unlock()
		return nil
	}
	gen := t.gen
	t.mu.Unlock()

	if err := t.session.Refresh(ctx); err != nil {
		// Hard transition: the refresh token is gone, the user is
		// anonymous again.
		t.Stop()
		t.session.Logout()
		if t.OnSessionEnd != nil {
			t.OnSessionEnd()
		}
		return err
	}

	t.mu.Lock()
	if !t.running || gen != t.gen {
		// Stopped or rescheduled while the refresh was in flight; the
		// newer state wins.
		t.mu.Unlock()
		return nil
	}
	t.scheduleLocked()
	t.mu.Unlock()

	if t.OnRenewed != nil {
		t.OnRenewed()
	}
	return nil
}

// scheduleLocked cancels any outstanding timer and schedules the next
// expiring transition from the session's current token. Caller holds
// t.mu.
func (t *Tracker) scheduleLocked() {
	t.cancelLocked()

	if !t.session.Authenticated() {
		// Logged out: no timer, tracker is idle
		return
	}

	gen := t.gen
	warnIn := time.Until(t.session.ExpiresAt().Add(-t.WarnBefore))
	if warnIn <= 0 {
		// Already inside the warning window
		go t.enterExpiring(gen)
		return
	}

	t.timer = time.AfterFunc(warnIn, func() {
		t.enterExpiring(gen)
	})
}

// cancelLocked invalidates outstanding callbacks and stops the timer
// and tick. Caller holds t.mu.
func (t *Tracker) cancelLocked() {
	t.gen++
	if t.timer != nil {
		t.timer.Stop()
		t.timer = nil
	}
	t.stopTickLocked()
}

func (t *Tracker) stopTickLocked() {
	if t.tickStop != nil {
		close(t.tickStop)
		t.tickStop = nil
	}
}

// enterExpiring transitions to the expiring state: surface the warning,
// start the display tick, and renew if silent renewal is enabled.
func (t *Tracker) enterExpiring(gen uint64) {
	t.mu.Lock()
	if !t.running || gen != t.gen {
		// Stale timer from a superseded or stopped schedule
		t.mu.Unlock()
		return
	}
	stop := make(chan struct{})
	t.tickStop = stop
	t.mu.Unlock()

	if t.OnExpiring != nil {
		t.OnExpiring(time.Until(t.session.ExpiresAt()))
	}
	if t.OnTick != nil {
		go t.runTicks(stop)
	}

	if t.AutoRenew {
		_ = t.Renew(context.Background())
	}
}

// runTicks emits countdown callbacks until the expiring state ends.
func (t *Tracker) runTicks(stop <-chan struct{}) {
	ticker := time.NewTicker(displayTick)
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			t.OnTick(time.Until(t.session.ExpiresAt()))
		}
	}
}
