package orchestrator

import (
	"sync"
	"time"
)

// StatusTicker owns the rotating busy message shown while a long operation is
// outstanding. Start replaces any previous rotation before installing a new
// one, so at most one timer is ever live; Stop is idempotent.
type StatusTicker struct {
	mu      sync.Mutex
	current string
	stop    chan struct{}
	active  int
}

// Start begins rotating through messages on the given interval, wrapping back
// to the first after the last. The first message is visible immediately. An
// empty message list clears the ticker instead.
func (t *StatusTicker) Start(messages []string, interval time.Duration) {
	t.mu.Lock()
	if t.stop != nil {
		close(t.stop)
		t.stop = nil
	}
	if len(messages) == 0 {
		t.current = ""
		t.mu.Unlock()
		return
	}
	t.current = messages[0]
	if len(messages) == 1 || interval <= 0 {
		t.mu.Unlock()
		return
	}
	stop := make(chan struct{})
	t.stop = stop
	t.active++
	t.mu.Unlock()

	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		defer func() {
			t.mu.Lock()
			t.active--
			t.mu.Unlock()
		}()
		idx := 0
		for {
			select {
			case <-stop:
				return
			case <-ticker.C:
				idx = (idx + 1) % len(messages)
				t.mu.Lock()
				// A racing Start may have replaced this rotation already.
				if t.stop == stop {
					t.current = messages[idx]
				}
				t.mu.Unlock()
			}
		}
	}()
}

// Stop cancels the rotation, if any, and clears the visible message.
func (t *StatusTicker) Stop() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.stop != nil {
		close(t.stop)
		t.stop = nil
	}
	t.current = ""
}

// Current returns the message to display, or "" when idle.
func (t *StatusTicker) Current() string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.current
}

func (t *StatusTicker) activeTimers() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.active
}
