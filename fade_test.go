package reel

import (
	"testing"
	"time"
)

func levels(from, to int) []float64 {
	var out []float64
	step := 1
	if to < from {
		step = -1
	}
	for i := from; ; i += step {
		out = append(out, float64(i)/FadeSteps)
		if i == to {
			return out
		}
	}
}

func assertOpacities(t *testing.T, got, want []float64) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("expected opacities %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected opacities %v, got %v", want, got)
		}
	}
}

func TestFadeOut_TenStepsToZero(t *testing.T) {
	sched := NewManualScheduler()
	target := NewMemoryTarget("slide")

	ramp := FadeOut(sched, target, 100*time.Millisecond)

	sched.Advance(100 * time.Millisecond)
	assertOpacities(t, target.Opacities(), levels(9, 0))
	if ramp.Done() {
		t.Error("expected ramp to run one more tick before finishing")
	}

	sched.Advance(10 * time.Millisecond)
	if !ramp.Done() {
		t.Error("expected ramp to finish after the final tick")
	}
	if sched.Pending() != 0 {
		t.Errorf("expected ramp timer cancelled, %d pending", sched.Pending())
	}
	if target.Opacity() != 0 {
		t.Errorf("expected opacity 0, got %v", target.Opacity())
	}
}

func TestFadeIn_TenStepsToOne(t *testing.T) {
	sched := NewManualScheduler()
	target := NewMemoryTarget("slide")
	target.SetOpacity(0)

	ramp := FadeIn(sched, target, 50*time.Millisecond)
	sched.Advance(time.Second)

	assertOpacities(t, target.Opacities(), append([]float64{0}, levels(1, 10)...))
	if !ramp.Done() {
		t.Error("expected ramp to be done")
	}
	if target.Opacity() != 1 {
		t.Errorf("expected opacity 1, got %v", target.Opacity())
	}
}

func TestFade_StepSpacing(t *testing.T) {
	sched := NewManualScheduler()
	target := NewMemoryTarget("slide")

	FadeOut(sched, target, 100*time.Millisecond)

	sched.Advance(9 * time.Millisecond)
	if n := len(target.Opacities()); n != 0 {
		t.Fatalf("expected no step before d/10, got %d", n)
	}
	sched.Advance(time.Millisecond)
	assertOpacities(t, target.Opacities(), []float64{0.9})
	sched.Advance(30 * time.Millisecond)
	assertOpacities(t, target.Opacities(), levels(9, 6))
}

func TestFade_ZeroDurationUsesDefault(t *testing.T) {
	sched := NewManualScheduler()
	target := NewMemoryTarget("slide")

	FadeOut(sched, target, 0)

	sched.Advance(DefaultFadeDuration - time.Millisecond)
	if n := len(target.Opacities()); n != FadeSteps-1 {
		t.Fatalf("expected %d steps before the default duration, got %d", FadeSteps-1, n)
	}
	sched.Advance(time.Millisecond)
	if target.Opacity() != 0 {
		t.Errorf("expected opacity 0 at the default duration, got %v", target.Opacity())
	}
}

func TestRamp_CancelFreezesOpacity(t *testing.T) {
	sched := NewManualScheduler()
	target := NewMemoryTarget("slide")

	ramp := FadeOut(sched, target, 100*time.Millisecond)
	sched.Advance(30 * time.Millisecond)

	if !ramp.Cancel() {
		t.Fatal("expected Cancel to report running")
	}
	if ramp.Cancel() {
		t.Error("expected second Cancel to report not running")
	}

	sched.Advance(time.Second)
	assertOpacities(t, target.Opacities(), levels(9, 7))
	if sched.Pending() != 0 {
		t.Errorf("expected nothing pending, got %d", sched.Pending())
	}
}

func TestRamp_OverlappingRampsInterleave(t *testing.T) {
	sched := NewManualScheduler()
	target := NewMemoryTarget("slide")

	FadeOut(sched, target, 100*time.Millisecond)
	sched.Advance(50 * time.Millisecond)
	FadeIn(sched, target, 100*time.Millisecond)
	sched.Advance(time.Second)

	// Both ramps run to completion; the later one writes last.
	if n := len(target.Opacities()); n != 2*FadeSteps {
		t.Errorf("expected %d writes from two ramps, got %d", 2*FadeSteps, n)
	}
	if target.Opacity() != 1 {
		t.Errorf("expected the fade-in to win, got %v", target.Opacity())
	}
}
