// Package schedule provides an injectable clock and a cancellable repeating
// task, so countdown restarts can be tested without wall-clock waits.
package schedule

import (
	"sort"
	"sync"
	"time"
)

// Clock is the time source for the countdown.
type Clock interface {
	Now() time.Time
	// Every calls fn every d until the returned Timer is stopped.
	Every(d time.Duration, fn func(now time.Time)) Timer
}

// Timer cancels a repeating callback. Stop is safe to call more than once.
type Timer interface {
	Stop()
}

type realClock struct{}

// Real returns the wall clock.
func Real() Clock { return realClock{} }

func (realClock) Now() time.Time { return time.Now() }

func (realClock) Every(d time.Duration, fn func(time.Time)) Timer {
	rt := &realTimer{stop: make(chan struct{})}
	ticker := time.NewTicker(d)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-rt.stop:
				return
			case now := <-ticker.C:
				select {
				case <-rt.stop:
					return
				default:
				}
				fn(now)
			}
		}
	}()
	return rt
}

type realTimer struct {
	once sync.Once
	stop chan struct{}
}

// Stop does not wait for the goroutine, so fn may stop its own timer.
func (t *realTimer) Stop() {
	t.once.Do(func() { close(t.stop) })
}

// FakeClock is a manually advanced Clock. Callbacks run synchronously on the
// goroutine calling Advance.
type FakeClock struct {
	mu     sync.Mutex
	now    time.Time
	timers []*fakeTimer
}

// NewFakeClock returns a FakeClock reading now.
func NewFakeClock(now time.Time) *FakeClock {
	return &FakeClock{now: now}
}

// Now implements Clock.
func (c *FakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

// Every implements Clock.
func (c *FakeClock) Every(d time.Duration, fn func(time.Time)) Timer {
	c.mu.Lock()
	defer c.mu.Unlock()
	ft := &fakeTimer{clock: c, interval: d, next: c.now.Add(d), fn: fn}
	c.timers = append(c.timers, ft)
	return ft
}

// Set moves the clock to t without firing any timers.
func (c *FakeClock) Set(t time.Time) {
	c.mu.Lock()
	c.now = t
	c.mu.Unlock()
}

// Advance moves the clock forward by d, firing due callbacks in time order.
func (c *FakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	target := c.now.Add(d)
	c.mu.Unlock()

	for {
		c.mu.Lock()
		due := c.nextDueLocked(target)
		if due == nil {
			c.now = target
			c.mu.Unlock()
			return
		}
		c.now = due.next
		due.next = due.next.Add(due.interval)
		now, fn := c.now, due.fn
		c.mu.Unlock()

		fn(now)
	}
}

// ActiveTimers reports how many repeating callbacks are still scheduled.
func (c *FakeClock) ActiveTimers() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.timers)
}

func (c *FakeClock) nextDueLocked(target time.Time) *fakeTimer {
	if len(c.timers) == 0 {
		return nil
	}
	sort.SliceStable(c.timers, func(i, j int) bool {
		return c.timers[i].next.Before(c.timers[j].next)
	})
	if first := c.timers[0]; !first.next.After(target) {
		return first
	}
	return nil
}

type fakeTimer struct {
	clock    *FakeClock
	interval time.Duration
	next     time.Time
	fn       func(time.Time)
}

func (t *fakeTimer) Stop() {
	c := t.clock
	c.mu.Lock()
	defer c.mu.Unlock()
	for i, ft := range c.timers {
		if ft == t {
			c.timers = append(c.timers[:i], c.timers[i+1:]...)
			return
		}
	}
}
