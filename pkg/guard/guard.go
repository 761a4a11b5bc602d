// Package guard serializes remote commands: at most one execution per
// command key is in flight, and after it finishes the key stays locked for
// a cooldown so a double-press cannot stack commands while the appliance is
// still spinning up playback.
package guard

import (
	"sync"
	"time"

	"github.com/rs/zerolog/log"
)

// Guard is a process-wide lock map keyed by command identity. The zero
// value is not usable; call New.
type Guard struct {
	mu     sync.Mutex
	active map[string]bool
}

func New() *Guard {
	return &Guard{active: map[string]bool{}}
}

// TryAcquire marks the key active and schedules its release after the
// cooldown. It reports false while the key is already held; a denial is an
// intentional no-op, not a failure.
func (g *Guard) TryAcquire(key string, cooldown time.Duration) bool {
	if !g.acquire(key) {
		return false
	}
	time.AfterFunc(cooldown, func() { g.release(key) })
	return true
}

// Run executes fn under the key's lock and always releases the key one
// cooldown after fn returns, even when fn fails, so a failing remote call
// cannot wedge the key. A call while the key is held is silently dropped:
// not queued, not retried, and nil is returned.
func (g *Guard) Run(key string, cooldown time.Duration, fn func() error) error {
	if !g.acquire(key) {
		log.Debug().Str("key", key).Msg("command already in flight, dropped")
		return nil
	}
	defer time.AfterFunc(cooldown, func() { g.release(key) })
	return fn()
}

func (g *Guard) acquire(key string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.active[key] {
		return false
	}
	g.active[key] = true
	return true
}

func (g *Guard) release(key string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	delete(g.active, key)
}

// Held reports whether the key is currently locked.
func (g *Guard) Held(key string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.active[key]
}
