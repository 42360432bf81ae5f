// Package scheduler provides the execution contexts a menu layer runs on: a
// single-threaded tick loop for all inventory mutation, and an async worker
// context for expensive lookups. Async work rejoins the tick loop by
// submitting a continuation with Run; async code must never touch shared
// menu state directly.
package scheduler

import (
	"sync"
	"sync/atomic"
	"time"
)

// Task is a handle to scheduled work. Cancel is idempotent; a cancelled task
// never runs again.
type Task interface {
	Cancel()
	Cancelled() bool
}

// Scheduler submits work onto the tick context (Run, RunLater, RunTimer) or
// onto the async worker context (RunAsync). Delays and periods are measured
// in ticks.
type Scheduler interface {
	Run(fn func()) Task
	RunLater(fn func(), delayTicks int64) Task
	RunTimer(fn func(), delayTicks, periodTicks int64) Task
	RunAsync(fn func()) Task
}

type task struct {
	cancelled atomic.Bool
}

func (t *task) Cancel()         { t.cancelled.Store(true) }
func (t *task) Cancelled() bool { return t.cancelled.Load() }

type timedTask struct {
	task
	fn        func()
	remaining int64
	period    int64
}

type asyncJob struct {
	task *task
	fn   func()
}

// Loop is the Scheduler implementation backing a live server: one goroutine
// advances ticks and runs all tick-context work, a small worker pool runs
// async jobs.
type Loop struct {
	tickInterval time.Duration
	workers      int

	mu     sync.Mutex
	queue  []*timedTask
	timers []*timedTask

	asyncJobs chan asyncJob
	quit      chan struct{}
	stopOnce  sync.Once
	wg        sync.WaitGroup
}

// NewLoop creates a loop. A tickInterval of zero uses DefaultTickInterval;
// worker counts below 1 fall back to DefaultAsyncWorkers.
func NewLoop(tickInterval time.Duration, asyncWorkers int) *Loop {
	if tickInterval <= 0 {
		tickInterval = DefaultTickInterval
	}
	if asyncWorkers < 1 {
		asyncWorkers = DefaultAsyncWorkers
	}
	return &Loop{
		tickInterval: tickInterval,
		workers:      asyncWorkers,
		asyncJobs:    make(chan asyncJob, AsyncQueueSize),
		quit:         make(chan struct{}),
	}
}

// Start launches the tick goroutine and the async workers.
func (l *Loop) Start() {
	l.wg.Add(1)
	go l.run()

	for i := 0; i < l.workers; i++ {
		l.wg.Add(1)
		go l.asyncWorker()
	}
}

// Stop shuts the loop down and waits for the tick goroutine and workers to
// exit. Stop is idempotent.
func (l *Loop) Stop() {
	l.stopOnce.Do(func() {
		close(l.quit)
	})
	l.wg.Wait()
}

// Run submits fn onto the tick context for execution on the next tick.
func (l *Loop) Run(fn func()) Task {
	t := &timedTask{fn: fn}
	l.mu.Lock()
	l.queue = append(l.queue, t)
	l.mu.Unlock()
	return t
}

// RunLater submits fn for execution after delayTicks ticks. Non-positive
// delays behave like Run.
func (l *Loop) RunLater(fn func(), delayTicks int64) Task {
	if delayTicks <= 0 {
		return l.Run(fn)
	}
	t := &timedTask{fn: fn, remaining: delayTicks}
	l.mu.Lock()
	l.timers = append(l.timers, t)
	l.mu.Unlock()
	return t
}

// RunTimer submits fn for repeated execution: first after delayTicks, then
// every periodTicks. A non-positive period degrades to RunLater.
func (l *Loop) RunTimer(fn func(), delayTicks, periodTicks int64) Task {
	if periodTicks <= 0 {
		return l.RunLater(fn, delayTicks)
	}
	if delayTicks <= 0 {
		delayTicks = periodTicks
	}
	t := &timedTask{fn: fn, remaining: delayTicks, period: periodTicks}
	l.mu.Lock()
	l.timers = append(l.timers, t)
	l.mu.Unlock()
	return t
}

// RunAsync submits fn onto the worker context.
func (l *Loop) RunAsync(fn func()) Task {
	t := &task{}
	select {
	case l.asyncJobs <- asyncJob{task: t, fn: fn}:
	case <-l.quit:
		t.Cancel()
	}
	return t
}

// CancelAll cancels every queued and repeating task.
func (l *Loop) CancelAll() {
	l.mu.Lock()
	defer l.mu.Unlock()
	for _, t := range l.queue {
		t.Cancel()
	}
	for _, t := range l.timers {
		t.Cancel()
	}
}

func (l *Loop) run() {
	defer l.wg.Done()
	ticker := time.NewTicker(l.tickInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			l.Tick()
		case <-l.quit:
			return
		}
	}
}

// Tick advances the tick context by one tick: it drains the one-shot queue
// and fires due timers. Exported so hosts driving their own game loop can
// call it directly instead of Start.
func (l *Loop) Tick() {
	l.mu.Lock()
	queue := l.queue
	l.queue = nil

	var due []*timedTask
	kept := l.timers[:0]
	for _, t := range l.timers {
		if t.Cancelled() {
			continue
		}
		t.remaining--
		if t.remaining <= 0 {
			due = append(due, t)
			if t.period > 0 {
				t.remaining = t.period
				kept = append(kept, t)
			}
			continue
		}
		kept = append(kept, t)
	}
	l.timers = kept
	l.mu.Unlock()

	for _, t := range queue {
		if !t.Cancelled() {
			t.fn()
		}
	}
	for _, t := range due {
		if !t.Cancelled() {
			t.fn()
		}
	}
}

func (l *Loop) asyncWorker() {
	defer l.wg.Done()
	for {
		select {
		case job := <-l.asyncJobs:
			if !job.task.Cancelled() {
				job.fn()
			}
		case <-l.quit:
			return
		}
	}
}
