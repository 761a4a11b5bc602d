package guard

import (
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func TestRunDropsWhileHeld(t *testing.T) {
	g := New()
	var calls int32

	run := func() error {
		atomic.AddInt32(&calls, 1)
		return nil
	}

	if err := g.Run("bell", 200*time.Millisecond, run); err != nil {
		t.Fatalf("first run: %v", err)
	}
	// A second press inside the cooldown is silently dropped.
	if err := g.Run("bell", 200*time.Millisecond, run); err != nil {
		t.Fatalf("dropped run should return nil, got %v", err)
	}
	if got := atomic.LoadInt32(&calls); got != 1 {
		t.Fatalf("expected 1 execution, got %d", got)
	}

	time.Sleep(300 * time.Millisecond)
	if err := g.Run("bell", 10*time.Millisecond, run); err != nil {
		t.Fatalf("run after cooldown: %v", err)
	}
	if got := atomic.LoadInt32(&calls); got != 2 {
		t.Fatalf("expected 2 executions after cooldown, got %d", got)
	}
}

func TestKeysAreIndependent(t *testing.T) {
	g := New()
	var calls int32

	run := func() error {
		atomic.AddInt32(&calls, 1)
		return nil
	}

	if err := g.Run("bell", time.Second, run); err != nil {
		t.Fatalf("bell: %v", err)
	}
	if err := g.Run("stop", time.Second, run); err != nil {
		t.Fatalf("stop: %v", err)
	}
	if got := atomic.LoadInt32(&calls); got != 2 {
		t.Fatalf("different keys must not block each other, got %d executions", got)
	}
}

func TestCooldownStartsAfterFnReturns(t *testing.T) {
	g := New()

	done := make(chan struct{})
	go func() {
		_ = g.Run("bell", 50*time.Millisecond, func() error {
			time.Sleep(150 * time.Millisecond)
			return nil
		})
		close(done)
	}()

	time.Sleep(100 * time.Millisecond)
	if !g.Held("bell") {
		t.Fatalf("key must stay held while fn is still running")
	}
	<-done
	if !g.Held("bell") {
		t.Fatalf("key must stay held through the cooldown after fn returns")
	}
	time.Sleep(100 * time.Millisecond)
	if g.Held("bell") {
		t.Fatalf("key should release after the cooldown")
	}
}

func TestFailingFnStillReleases(t *testing.T) {
	g := New()
	boom := errors.New("remote unreachable")

	if err := g.Run("bell", 20*time.Millisecond, func() error { return boom }); !errors.Is(err, boom) {
		t.Fatalf("fn's error should surface, got %v", err)
	}
	time.Sleep(80 * time.Millisecond)
	if g.Held("bell") {
		t.Fatalf("a failing fn must not wedge the key")
	}
}

func TestConcurrentPressesRunOnce(t *testing.T) {
	g := New()
	var calls int32
	var wg sync.WaitGroup

	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = g.Run("bell", 500*time.Millisecond, func() error {
				atomic.AddInt32(&calls, 1)
				return nil
			})
		}()
	}
	wg.Wait()
	if got := atomic.LoadInt32(&calls); got != 1 {
		t.Fatalf("expected exactly 1 execution, got %d", got)
	}
}

func TestTryAcquire(t *testing.T) {
	g := New()
	if !g.TryAcquire("media", 50*time.Millisecond) {
		t.Fatalf("first acquire should succeed")
	}
	if g.TryAcquire("media", 50*time.Millisecond) {
		t.Fatalf("second acquire inside the cooldown should fail")
	}
	time.Sleep(100 * time.Millisecond)
	if !g.TryAcquire("media", 10*time.Millisecond) {
		t.Fatalf("acquire after the cooldown should succeed")
	}
}
