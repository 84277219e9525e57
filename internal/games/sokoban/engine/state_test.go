package engine

import "testing"

func TestDetectWin(t *testing.T) {
	tests := []struct {
		name string
		m    string
		want Phase
	}{
		{"uncovered spot", "P RB RS", PhasePlaying},
		{"box beside spot", "P . RS\n. . RB", PhasePlaying},
		{"no spots", "P RB .", PhaseWon},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := mustParse(t, tt.m)
			if got := DetectWin(w); got != tt.want {
				t.Errorf("DetectWin = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDetectWinCoverage(t *testing.T) {
	w := NewWorld(4, 1, 0)
	w.Spawn(KindPlayer, ColourNone, 0, 0)
	w.Spawn(KindBoxSpot, ColourRed, 2, 0)
	w.Spawn(KindBoxSpot, ColourBlue, 3, 0)
	red := w.Spawn(KindBox, ColourRed, 2, 0)
	blue := w.Spawn(KindBox, ColourBlue, 1, 0)

	if DetectWin(w) != PhasePlaying {
		t.Fatal("one spot uncovered should still be Playing")
	}

	w.Entity(blue).Pos.X = 3
	if DetectWin(w) != PhaseWon {
		t.Fatal("all spots covered should be Won")
	}
	if got := CorrectPlacements(w); got != 2 {
		t.Errorf("CorrectPlacements = %d, want 2", got)
	}

	w.Entity(red).Pos.X = 3
	w.Entity(blue).Pos.X = 2
	if DetectWin(w) != PhaseWon {
		t.Error("swapped colours still cover every spot")
	}
	if got := CorrectPlacements(w); got != 0 {
		t.Errorf("CorrectPlacements = %d, want 0", got)
	}
}

func TestPlayerOnSpotDoesNotWin(t *testing.T) {
	w := NewWorld(2, 1, 0)
	w.Spawn(KindBoxSpot, ColourRed, 0, 0)
	w.Spawn(KindPlayer, ColourNone, 0, 0)
	w.Spawn(KindBox, ColourRed, 1, 0)
	if DetectWin(w) != PhasePlaying {
		t.Error("a player on a spot does not cover it")
	}
}

func TestPhaseString(t *testing.T) {
	if PhasePlaying.String() != "Playing" || PhaseWon.String() != "Won" {
		t.Errorf("got %q and %q", PhasePlaying, PhaseWon)
	}
}
