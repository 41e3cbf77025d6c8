// Package abstraction supplies the per-round, per-bet-depth action menus
// and the randomized pseudo-harmonic mapping used to translate an
// off-menu bet size onto the nearest menu neighbors.
package abstraction

import "github.com/floriskappen/nlth-engine/action"

// Rounds indexes Menu's first dimension: preflop, flop, turn, river.
const (
	Preflop = iota
	Flop
	Turn
	River
	NumRounds
)

// Menu[round][depth] is the fixed, compile-time menu of abstracted
// actions for that (round, bet-depth) pair, grounded on the reference
// implementation's blueprint action table. Depth counts prior Bet actions
// within the current round; indices beyond a round's slice are closed to
// further betting (Fold/Call only, via ForDepth's clamping).
var Menu = [NumRounds][][]action.Action{
	Preflop: {
		// initial bet
		{
			action.NewFold(), action.NewCall(),
			action.NewBet(134), action.NewBet(150), action.NewBet(200),
			action.NewBet(400), action.NewBet(800), action.NewBet(1300),
			action.NewBet(1500), action.NewBet(2500), action.NewAllIn(),
		},
		// raise
		{
			action.NewFold(), action.NewCall(),
			action.NewBet(50), action.NewBet(100), action.NewBet(200),
			action.NewBet(400), action.NewBet(700), action.NewBet(1000),
			action.NewAllIn(),
		},
		// three-bet
		{
			action.NewFold(), action.NewCall(),
			action.NewBet(50), action.NewBet(100), action.NewBet(200),
			action.NewBet(400), action.NewAllIn(),
		},
		// four-bet
		{
			action.NewFold(), action.NewCall(),
			action.NewBet(50), action.NewBet(100), action.NewAllIn(),
		},
		// five-bet
		{
			action.NewFold(), action.NewCall(),
			action.NewBet(100), action.NewAllIn(),
		},
		// six-bet and beyond: closed to further betting
		{
			action.NewFold(), action.NewCall(),
		},
	},
	Flop: {
		{
			action.NewFold(), action.NewCall(),
			action.NewBet(50), action.NewBet(100), action.NewBet(200),
			action.NewBet(400), action.NewBet(700), action.NewBet(1300),
			action.NewAllIn(),
		},
		{
			action.NewFold(), action.NewCall(),
			action.NewBet(50), action.NewBet(100), action.NewBet(200),
			action.NewAllIn(),
		},
		{
			action.NewFold(), action.NewCall(),
			action.NewBet(50), action.NewBet(100), action.NewAllIn(),
		},
		{
			action.NewFold(), action.NewCall(),
		},
	},
	Turn: {
		{
			action.NewFold(), action.NewCall(),
			action.NewBet(50), action.NewBet(100), action.NewAllIn(),
		},
		{
			action.NewFold(), action.NewCall(),
			action.NewBet(100), action.NewAllIn(),
		},
		{
			action.NewFold(), action.NewCall(),
		},
	},
	River: {
		{
			action.NewFold(), action.NewCall(),
			action.NewBet(50), action.NewBet(100), action.NewAllIn(),
		},
		{
			action.NewFold(), action.NewCall(),
			action.NewBet(100), action.NewAllIn(),
		},
		{
			action.NewFold(), action.NewCall(),
		},
	},
}

// ForDepth returns the menu for (round, depth), clamping depth to the
// deepest defined level for that round (a closed, Fold/Call-only menu).
func ForDepth(round, depth int) []action.Action {
	rounds := Menu[round]
	if depth >= len(rounds) {
		depth = len(rounds) - 1
	}
	return rounds[depth]
}
