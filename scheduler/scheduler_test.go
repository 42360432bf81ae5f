package scheduler

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/osse101/MenuForge_Go/internal/testing/leaktest"
)

func TestLoopStopsCleanly(t *testing.T) {
	leaktest.CheckNoGoroutineLeak(t, func() {
		l := NewLoop(time.Millisecond, 2)
		l.Start()

		var ran int32
		l.Run(func() { atomic.AddInt32(&ran, 1) })
		l.RunAsync(func() { atomic.AddInt32(&ran, 1) })

		assert.Eventually(t, func() bool {
			return atomic.LoadInt32(&ran) == 2
		}, time.Second, time.Millisecond)

		l.Stop()
	})
}

func TestLoopRunsQueuedWork(t *testing.T) {
	var ran int32
	l := NewLoop(time.Millisecond, 1)
	l.Start()
	defer l.Stop()

	l.Run(func() { atomic.AddInt32(&ran, 1) })

	assert.Eventually(t, func() bool {
		return atomic.LoadInt32(&ran) == 1
	}, time.Second, time.Millisecond)
}

func TestLoopTimerFiresRepeatedly(t *testing.T) {
	var fired int32
	l := NewLoop(time.Millisecond, 1)
	l.Start()
	defer l.Stop()

	task := l.RunTimer(func() { atomic.AddInt32(&fired, 1) }, 1, 1)

	assert.Eventually(t, func() bool {
		return atomic.LoadInt32(&fired) >= 3
	}, time.Second, time.Millisecond)

	task.Cancel()
	task.Cancel() // cancelling twice is safe
	assert.True(t, task.Cancelled())

	count := atomic.LoadInt32(&fired)
	time.Sleep(20 * time.Millisecond)
	assert.LessOrEqual(t, atomic.LoadInt32(&fired), count+1, "a cancelled timer must stop firing")
}

func TestLoopAsyncRejoin(t *testing.T) {
	done := make(chan struct{})
	l := NewLoop(time.Millisecond, 1)
	l.Start()
	defer l.Stop()

	// The async job computes off-thread and posts its continuation back onto
	// the tick context.
	l.RunAsync(func() {
		l.Run(func() { close(done) })
	})

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("continuation never ran on the tick context")
	}
}

func TestManualTickOrder(t *testing.T) {
	m := NewManual()
	var order []string

	m.Run(func() { order = append(order, "run") })
	m.RunLater(func() { order = append(order, "later") }, 2)
	m.RunTimer(func() { order = append(order, "timer") }, 1, 2)

	m.Tick()
	assert.Equal(t, []string{"run", "timer"}, order)

	m.Tick()
	assert.Equal(t, []string{"run", "timer", "later"}, order)

	m.Tick()
	assert.Equal(t, []string{"run", "timer", "later", "timer"}, order)
}

func TestManualCancelledTaskNeverRuns(t *testing.T) {
	m := NewManual()
	ran := false

	task := m.RunTimer(func() { ran = true }, 1, 1)
	task.Cancel()
	m.Tick()
	m.Tick()

	assert.False(t, ran)
	assert.Equal(t, 0, m.PendingTimers())
}

func TestManualAsyncRunsInline(t *testing.T) {
	m := NewManual()
	ran := false
	m.RunAsync(func() { ran = true })
	assert.True(t, ran)
}
