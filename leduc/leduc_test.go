package leduc

import (
	"testing"

	"github.com/floriskappen/nlth-engine/action"
)

func TestCheckCheckAdvancesRound(t *testing.T) {
	s := State{hands: [2]Rank{Jack, King}, board: Queen, active: 0}
	n1 := s.HandleAction(action.NewCall()).(State)
	if n1.CurrentRound() != 0 {
		t.Fatal("round should not advance after a single check")
	}
	n2 := n1.HandleAction(action.NewCall()).(State)
	if n2.CurrentRound() != 1 {
		t.Fatalf("round = %d, want 1 after check-check", n2.CurrentRound())
	}
	if n2.IsTerminal() {
		t.Fatal("should not be terminal at start of round 1")
	}
}

func TestBetFoldAwardsPotToNonFolder(t *testing.T) {
	s := State{hands: [2]Rank{King, Jack}, board: Queen, active: 0}
	n1 := s.HandleAction(action.NewBet(0)).(State)
	n2 := n1.HandleAction(action.NewFold()).(State)
	if !n2.IsTerminal() {
		t.Fatal("should be terminal after bet-fold")
	}
	payoffs := n2.Payoffs()
	if payoffs[0] <= 0 || payoffs[1] >= 0 {
		t.Errorf("payoffs = %v, want player 0 (bettor) to win", payoffs)
	}
	if payoffs[0]+payoffs[1] != 0 {
		t.Errorf("payoffs = %v, want zero sum", payoffs)
	}
}

func TestPairedBoardBeatsHigherUnpairedRank(t *testing.T) {
	s := State{hands: [2]Rank{Jack, King}, board: Jack, active: 0}
	n1 := s.HandleAction(action.NewCall()).(State)
	n2 := n1.HandleAction(action.NewCall()).(State)
	n3 := n2.HandleAction(action.NewCall()).(State)
	n4 := n3.HandleAction(action.NewCall()).(State)
	if !n4.IsTerminal() {
		t.Fatal("should be terminal after check-check twice")
	}
	payoffs := n4.Payoffs()
	if payoffs[0] <= 0 {
		t.Errorf("payoffs = %v, want player 0 (paired jacks) to win despite lower rank", payoffs)
	}
}

func TestSecondRaiseNotOffered(t *testing.T) {
	menu := []action.Action{action.NewFold(), action.NewCall(), action.NewBet(0)}
	s := State{hands: [2]Rank{Jack, King}, board: Queen, active: 0}
	n1 := s.HandleAction(action.NewBet(0)).(State)
	offered := n1.ActivePlayerActions(menu)
	for _, a := range offered {
		if a.Kind == action.Bet {
			t.Error("a second raise should not be offered in a single betting round")
		}
	}
}
