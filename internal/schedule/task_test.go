package schedule

import (
	"testing"
	"time"

	"go.uber.org/goleak"
)

var epoch = time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)

func TestTask_TicksEveryInterval(t *testing.T) {
	clock := NewFakeClock(epoch)
	var ticks []time.Time
	task := NewTask(clock, time.Second, func(now time.Time) bool {
		ticks = append(ticks, now)
		return true
	})

	task.Start()
	clock.Advance(3500 * time.Millisecond)

	if len(ticks) != 3 {
		t.Fatalf("ticks = %d, want 3", len(ticks))
	}
	if !ticks[2].Equal(epoch.Add(3 * time.Second)) {
		t.Fatalf("third tick at %s, want %s", ticks[2], epoch.Add(3*time.Second))
	}
	if !task.Running() {
		t.Fatal("task should still be running")
	}
}

func TestTask_StopsWhenCallbackReturnsFalse(t *testing.T) {
	clock := NewFakeClock(epoch)
	n := 0
	task := NewTask(clock, time.Second, func(time.Time) bool {
		n++
		return n < 2
	})

	task.Start()
	clock.Advance(10 * time.Second)

	if n != 2 {
		t.Fatalf("callback ran %d times, want 2", n)
	}
	if task.Running() {
		t.Fatal("task should have stopped itself")
	}
	if clock.ActiveTimers() != 0 {
		t.Fatalf("active timers = %d, want 0", clock.ActiveTimers())
	}
}

func TestTask_StopIsIdempotent(t *testing.T) {
	clock := NewFakeClock(epoch)
	task := NewTask(clock, time.Second, func(time.Time) bool { return true })

	task.Stop() // never started
	task.Start()
	task.Stop()
	task.Stop()

	if task.Running() {
		t.Fatal("task should be stopped")
	}
	if clock.ActiveTimers() != 0 {
		t.Fatalf("active timers = %d, want 0", clock.ActiveTimers())
	}
}

func TestTask_RestartCancelsPrevious(t *testing.T) {
	clock := NewFakeClock(epoch)
	n := 0
	task := NewTask(clock, time.Second, func(time.Time) bool {
		n++
		return true
	})

	task.Start()
	clock.Advance(500 * time.Millisecond)
	task.Start()

	if clock.ActiveTimers() != 1 {
		t.Fatalf("active timers = %d, want 1 after restart", clock.ActiveTimers())
	}

	clock.Advance(1200 * time.Millisecond)
	// Only the restarted timer fires: at 1.5s, not at 1.0s.
	if n != 1 {
		t.Fatalf("callback ran %d times, want 1", n)
	}
}

func TestFakeClock_SetDoesNotFire(t *testing.T) {
	clock := NewFakeClock(epoch)
	fired := false
	clock.Every(time.Second, func(time.Time) { fired = true })

	clock.Set(epoch.Add(time.Hour))
	if fired {
		t.Fatal("Set should not fire timers")
	}
	if !clock.Now().Equal(epoch.Add(time.Hour)) {
		t.Fatalf("Now = %s", clock.Now())
	}
}

func TestRealClock_TaskGoroutineExits(t *testing.T) {
	defer goleak.VerifyNone(t)

	done := make(chan struct{})
	n := 0
	task := NewTask(Real(), 5*time.Millisecond, func(time.Time) bool {
		n++
		if n == 3 {
			close(done)
			return false
		}
		return true
	})
	task.Start()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		task.Stop()
		t.Fatal("real clock task did not tick")
	}
	if task.Running() {
		// tick clears the timer right after the callback returns
		time.Sleep(20 * time.Millisecond)
	}
	if task.Running() {
		t.Fatal("task should have stopped itself")
	}
}
