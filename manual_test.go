package reel

import (
	"testing"
	"time"
)

func TestManualScheduler_FiresInDueOrder(t *testing.T) {
	sched := NewManualScheduler()
	var order []string

	sched.ScheduleOnce(30*time.Millisecond, func() { order = append(order, "c") })
	sched.ScheduleOnce(10*time.Millisecond, func() { order = append(order, "a") })
	sched.ScheduleOnce(20*time.Millisecond, func() { order = append(order, "b") })

	if fired := sched.Advance(25 * time.Millisecond); fired != 2 {
		t.Fatalf("expected 2 callbacks fired, got %d", fired)
	}
	if len(order) != 2 || order[0] != "a" || order[1] != "b" {
		t.Fatalf("expected [a b], got %v", order)
	}

	sched.Advance(10 * time.Millisecond)
	if len(order) != 3 || order[2] != "c" {
		t.Fatalf("expected [a b c], got %v", order)
	}
	if sched.Elapsed() != 35*time.Millisecond {
		t.Errorf("expected 35ms elapsed, got %v", sched.Elapsed())
	}
}

func TestManualScheduler_SameDueRunsInCreationOrder(t *testing.T) {
	sched := NewManualScheduler()
	var order []int

	for i := 0; i < 5; i++ {
		sched.ScheduleOnce(10*time.Millisecond, func() { order = append(order, i) })
	}
	sched.Advance(10 * time.Millisecond)

	for i, v := range order {
		if v != i {
			t.Fatalf("expected creation order, got %v", order)
		}
	}
}

func TestManualScheduler_RepeatingKeepsCreationOrder(t *testing.T) {
	sched := NewManualScheduler()
	var order []string

	sched.ScheduleRepeating(10*time.Millisecond, func() { order = append(order, "tick") })
	sched.ScheduleOnce(30*time.Millisecond, func() { order = append(order, "once") })
	sched.Advance(30 * time.Millisecond)

	want := []string{"tick", "tick", "tick", "once"}
	if len(order) != len(want) {
		t.Fatalf("expected %v, got %v", want, order)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, order)
		}
	}
}

func TestManualScheduler_RepeatingUntilCancelled(t *testing.T) {
	sched := NewManualScheduler()
	count := 0

	h := sched.ScheduleRepeating(10*time.Millisecond, func() { count++ })
	sched.Advance(35 * time.Millisecond)
	if count != 3 {
		t.Fatalf("expected 3 ticks, got %d", count)
	}

	if !h.Cancel() {
		t.Error("expected Cancel to report pending")
	}
	sched.Advance(time.Second)
	if count != 3 {
		t.Errorf("expected no ticks after cancel, got %d", count)
	}
	if sched.Pending() != 0 {
		t.Errorf("expected nothing pending, got %d", sched.Pending())
	}
}

func TestManualScheduler_RepeatingCancelsItself(t *testing.T) {
	sched := NewManualScheduler()
	count := 0

	var h Handle
	h = sched.ScheduleRepeating(10*time.Millisecond, func() {
		count++
		if count == 2 {
			h.Cancel()
		}
	})
	sched.Advance(time.Second)

	if count != 2 {
		t.Errorf("expected 2 ticks, got %d", count)
	}
}

func TestManualScheduler_CancelOnce(t *testing.T) {
	sched := NewManualScheduler()
	fired := false

	h := sched.ScheduleOnce(10*time.Millisecond, func() { fired = true })
	if !h.Cancel() {
		t.Error("expected first Cancel to report pending")
	}
	if h.Cancel() {
		t.Error("expected second Cancel to report not pending")
	}
	sched.Advance(time.Second)
	if fired {
		t.Error("cancelled callback fired")
	}
}

func TestManualScheduler_CancelAfterFire(t *testing.T) {
	sched := NewManualScheduler()

	h := sched.ScheduleOnce(10*time.Millisecond, func() {})
	sched.Advance(10 * time.Millisecond)
	if h.Cancel() {
		t.Error("expected Cancel after firing to report not pending")
	}
}

func TestManualScheduler_NowDuringCallback(t *testing.T) {
	sched := NewManualScheduler()
	start := sched.Now()

	var seen []time.Duration
	sched.ScheduleOnce(10*time.Millisecond, func() {
		seen = append(seen, sched.Now().Sub(start))
		sched.ScheduleOnce(5*time.Millisecond, func() {
			seen = append(seen, sched.Now().Sub(start))
		})
	})
	sched.Advance(20 * time.Millisecond)

	if len(seen) != 2 || seen[0] != 10*time.Millisecond || seen[1] != 15*time.Millisecond {
		t.Errorf("expected callbacks at [10ms 15ms], got %v", seen)
	}
}

func TestManualScheduler_ClampsRepeatingInterval(t *testing.T) {
	sched := NewManualScheduler()
	count := 0

	sched.ScheduleRepeating(0, func() { count++ })
	sched.Advance(5 * time.Millisecond)

	if count != 5 {
		t.Errorf("expected 5 ticks at the minimum interval, got %d", count)
	}
}

func TestManualScheduler_SubMillisecondDelayClamped(t *testing.T) {
	sched := NewManualScheduler()

	fired := 0
	var chain func()
	chain = func() {
		fired++
		sched.ScheduleOnce(time.Nanosecond, chain)
	}
	sched.ScheduleOnce(time.Nanosecond, chain)

	sched.Advance(time.Millisecond - time.Nanosecond)
	if fired != 0 {
		t.Fatalf("expected nothing before 1ms, got %d", fired)
	}

	sched.Advance(49*time.Millisecond + time.Nanosecond)
	if fired != 50 {
		t.Errorf("expected one firing per millisecond, got %d", fired)
	}
}

func TestManualScheduler_ZeroDelayNotClamped(t *testing.T) {
	sched := NewManualScheduler()

	fired := false
	sched.ScheduleOnce(0, func() { fired = true })
	sched.Advance(0)

	if !fired {
		t.Error("expected a zero delay to fire without advancing")
	}
}
