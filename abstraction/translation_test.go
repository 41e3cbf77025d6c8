package abstraction

import (
	"testing"

	"github.com/floriskappen/nlth-engine/action"
	"github.com/floriskappen/nlth-engine/internal/randutil"
)

func TestTranslateExactMenuValuePassesThrough(t *testing.T) {
	menu := ForDepth(Preflop, 0)
	got := Translate(randutil.New(1), menu, action.NewBet(134))
	if got != action.NewBet(134) {
		t.Errorf("Translate(exact) = %v, want unchanged 134", got)
	}
}

func TestTranslateNonBetPassesThrough(t *testing.T) {
	menu := ForDepth(Preflop, 0)
	if got := Translate(nil, menu, action.NewFold()); got != action.NewFold() {
		t.Errorf("Translate(fold) = %v, want fold", got)
	}
}

func TestTranslateClosureLandsOnMenu(t *testing.T) {
	menu := ForDepth(Preflop, 0)
	betAmounts := map[uint16]bool{}
	for _, a := range menu {
		if a.Kind == action.Bet {
			betAmounts[a.RaiseAmount] = true
		}
	}

	rng := randutil.New(7)
	for i := 0; i < 200; i++ {
		got := Translate(rng, menu, action.NewBet(300))
		if !betAmounts[got.RaiseAmount] {
			t.Fatalf("Translate produced off-menu amount %d", got.RaiseAmount)
		}
	}
}

func TestTranslateBelowLowestNeighborClampsUp(t *testing.T) {
	menu := ForDepth(Preflop, 0)
	got := Translate(randutil.New(1), menu, action.NewBet(1))
	if got.RaiseAmount != 134 {
		t.Errorf("Translate(1) = %v, want clamp to lowest menu entry 134", got)
	}
}

func TestTranslateAboveHighestNeighborClampsDown(t *testing.T) {
	menu := ForDepth(Preflop, 0)
	got := Translate(randutil.New(1), menu, action.NewBet(9999))
	if got.RaiseAmount != 2500 {
		t.Errorf("Translate(9999) = %v, want clamp to highest menu entry 2500", got)
	}
}

func TestBetAmountsSortedAndDeduped(t *testing.T) {
	menu := []action.Action{action.NewBet(200), action.NewBet(100), action.NewBet(200), action.NewFold()}
	got := BetAmounts(menu)
	want := []uint16{100, 200}
	if len(got) != len(want) {
		t.Fatalf("BetAmounts() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("BetAmounts() = %v, want %v", got, want)
		}
	}
}
