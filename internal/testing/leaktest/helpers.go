// Package leaktest provides goroutine leak checks for tests that start the
// tick loop or async workers and must prove they stop cleanly.
package leaktest

import (
	"runtime"
	"testing"
	"time"
)

// GoroutineChecker records the goroutine count at construction and compares
// it against the count at Check time.
type GoroutineChecker struct {
	before int
	t      testing.TB
}

// NewGoroutineChecker creates a checker and records the current goroutine count.
func NewGoroutineChecker(t testing.TB) *GoroutineChecker {
	t.Helper()

	// Allow background goroutines to stabilize before sampling
	runtime.Gosched()
	time.Sleep(10 * time.Millisecond)

	return &GoroutineChecker{
		before: runtime.NumGoroutine(),
		t:      t,
	}
}

// Check fails the test when the goroutine count grew beyond tolerance.
func (g *GoroutineChecker) Check(tolerance int) {
	g.t.Helper()

	// Give loop and worker goroutines time to drain after Stop
	runtime.Gosched()
	time.Sleep(50 * time.Millisecond)
	runtime.GC()
	time.Sleep(50 * time.Millisecond)

	after := runtime.NumGoroutine()
	leaked := after - g.before

	if leaked > tolerance {
		g.t.Errorf("Potential goroutine leak: before=%d, after=%d, leaked=%d (tolerance=%d)",
			g.before, after, leaked, tolerance)
	}
}

// CheckNoGoroutineLeak runs fn and fails the test when any goroutine it
// started is still alive afterwards.
func CheckNoGoroutineLeak(t *testing.T, fn func()) {
	t.Helper()

	checker := NewGoroutineChecker(t)
	fn()
	checker.Check(0)
}

// WaitForGoroutines polls until the goroutine count drops to target or the
// timeout elapses.
func WaitForGoroutines(t *testing.T, target int, timeout time.Duration) {
	t.Helper()

	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		runtime.Gosched()
		if runtime.NumGoroutine() <= target {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}

	t.Errorf("Timeout waiting for goroutines to finish: current=%d, target=%d",
		runtime.NumGoroutine(), target)
}
