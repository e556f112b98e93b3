package reel

import (
	"testing"
	"time"
)

func TestFieldKeys(t *testing.T) {
	cases := []struct {
		name string
		got  string
	}{
		{"phase", KeyPhase.Field("idle").Key().Name()},
		{"old_phase", KeyOldPhase.Field("idle").Key().Name()},
		{"new_phase", KeyNewPhase.Field("fading-out").Key().Name()},
		{"strategy", KeyStrategy.Field("random").Key().Name()},
		{"slide_index", KeySlideIndex.Field(1).Key().Name()},
		{"slide_count", KeySlideCount.Field(2).Key().Name()},
		{"draws", KeyDraws.Field(3).Key().Name()},
		{"cycle", KeyCycle.Field(5 * time.Second).Key().Name()},
		{"state", KeyState.Field("playing").Key().Name()},
		{"old_state", KeyOldState.Field("awaiting").Key().Name()},
		{"new_state", KeyNewState.Field("playing").Key().Name()},
		{"error", KeyError.Field("something went wrong").Key().Name()},
		{"debounce", KeyDebounce.Field(100 * time.Millisecond).Key().Name()},
	}

	for _, c := range cases {
		if c.got != c.name {
			t.Errorf("expected key %q, got %q", c.name, c.got)
		}
	}
}
