package scheduler

// Manual is a Scheduler advanced explicitly with Tick. Async jobs execute
// inline on the submitting goroutine, which makes the worker-rejoin path
// fully deterministic. Intended for tests and for hosts that embed the menu
// framework into an existing game loop.
type Manual struct {
	queue  []*timedTask
	timers []*timedTask
}

// NewManual creates an empty manual scheduler.
func NewManual() *Manual {
	return &Manual{}
}

// Run queues fn for the next Tick.
func (m *Manual) Run(fn func()) Task {
	t := &timedTask{fn: fn}
	m.queue = append(m.queue, t)
	return t
}

// RunLater queues fn to fire after delayTicks calls to Tick.
func (m *Manual) RunLater(fn func(), delayTicks int64) Task {
	if delayTicks <= 0 {
		return m.Run(fn)
	}
	t := &timedTask{fn: fn, remaining: delayTicks}
	m.timers = append(m.timers, t)
	return t
}

// RunTimer queues fn to fire after delayTicks and then every periodTicks.
func (m *Manual) RunTimer(fn func(), delayTicks, periodTicks int64) Task {
	if periodTicks <= 0 {
		return m.RunLater(fn, delayTicks)
	}
	if delayTicks <= 0 {
		delayTicks = periodTicks
	}
	t := &timedTask{fn: fn, remaining: delayTicks, period: periodTicks}
	m.timers = append(m.timers, t)
	return t
}

// RunAsync executes fn immediately, inline.
func (m *Manual) RunAsync(fn func()) Task {
	t := &task{}
	fn()
	return t
}

// Tick runs queued one-shots and advances timers by one tick.
func (m *Manual) Tick() {
	queue := m.queue
	m.queue = nil

	var due []*timedTask
	kept := m.timers[:0]
	for _, t := range m.timers {
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
	m.timers = kept

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

// PendingTimers returns how many repeating or delayed tasks are still live.
func (m *Manual) PendingTimers() int {
	n := 0
	for _, t := range m.timers {
		if !t.Cancelled() {
			n++
		}
	}
	return n
}
