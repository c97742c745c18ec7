package ascon

import "testing"

func TestRoundConstantSchedule(t *testing.T) {
	for r, c := range roundConstants {
		want := uint64(0xf0 - r*0x10 + r*0x1)
		if c != want {
			t.Errorf("round %d: constant %#02x, want %#02x", r, c, want)
		}
	}
}

func TestPermuteZeroRounds(t *testing.T) {
	s := state{1, 2, 3, 4, 5}
	before := s
	s.permute(0)
	if s != before {
		t.Error("permute(0) should leave the state unchanged")
	}
}

func TestPermuteMutatesState(t *testing.T) {
	var s state
	s.permute(fullRounds)
	if s == (state{}) {
		t.Error("permute(12) left the all-zero state unchanged")
	}

	s2 := state{}
	s2.permute(fullRounds)
	if s != s2 {
		t.Error("permute should be deterministic")
	}

	// Fewer rounds must produce a different result than the full schedule.
	s6 := state{}
	s6.permute(6)
	if s6 == s {
		t.Error("permute(6) and permute(12) agree on the zero state")
	}
}

func TestPermuteTooManyRoundsPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("permute with more than 12 rounds should panic")
		}
	}()
	var s state
	s.permute(13)
}
