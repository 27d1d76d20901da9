package schedule

import (
	"sync"
	"time"
)

// Task runs fn on a fixed interval until fn returns false or Stop is called.
// Start always cancels the previous run before scheduling a new one, and
// ticks from a cancelled run are dropped.
type Task struct {
	clock    Clock
	interval time.Duration
	fn       func(now time.Time) bool

	mu    sync.Mutex
	timer Timer
	gen   uint64
}

// NewTask creates a stopped task.
func NewTask(clock Clock, interval time.Duration, fn func(now time.Time) bool) *Task {
	return &Task{clock: clock, interval: interval, fn: fn}
}

// Start (re)schedules the task. The first tick fires one interval from now.
func (t *Task) Start() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.stopLocked()
	gen := t.gen
	t.timer = t.clock.Every(t.interval, func(now time.Time) {
		t.tick(gen, now)
	})
}

// Stop cancels the task. It is a no-op when the task is not running.
func (t *Task) Stop() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.stopLocked()
}

// Running reports whether a run is scheduled.
func (t *Task) Running() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.timer != nil
}

func (t *Task) tick(gen uint64, now time.Time) {
	t.mu.Lock()
	live := t.timer != nil && t.gen == gen
	t.mu.Unlock()
	if !live {
		return
	}

	if t.fn(now) {
		return
	}

	t.mu.Lock()
	if t.gen == gen {
		t.stopLocked()
	}
	t.mu.Unlock()
}

func (t *Task) stopLocked() {
	if t.timer != nil {
		t.timer.Stop()
		t.timer = nil
	}
	t.gen++
}
