package reel

import "testing"

func TestPhase_String(t *testing.T) {
	cases := map[Phase]string{
		PhaseIdle:      "idle",
		PhaseFadingOut: "fading-out",
		PhaseSwapping:  "swapping",
		PhasePaused:    "paused",
		PhaseFadingIn:  "fading-in",
		Phase(42):      "unknown",
	}

	for phase, want := range cases {
		if s := phase.String(); s != want {
			t.Errorf("expected %q, got %q", want, s)
		}
	}
}

func TestPhase_ZeroIsIdle(t *testing.T) {
	var p Phase
	if p != PhaseIdle {
		t.Errorf("expected zero phase to be idle, got %s", p)
	}
}
