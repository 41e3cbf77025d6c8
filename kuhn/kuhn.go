// Package kuhn implements Kuhn poker, the minimal single-round,
// three-card, no-side-pot degenerate case of gametrait.GameState. It
// exists to prove the shared trait is exercised by more than one game
// variant, per the reference implementation's sibling game_states
// modules; the engine proper (package nlth) never depends on it.
package kuhn

import (
	"github.com/floriskappen/nlth-engine/action"
	"github.com/floriskappen/nlth-engine/gametrait"
	"github.com/floriskappen/nlth-engine/internal/randutil"
)

// Card is one of Jack, Queen, King.
type Card uint8

const (
	Jack Card = iota
	Queen
	King
)

// Ante is the fixed forced bet both players contribute before cards are
// dealt. Bet is the fixed size of Kuhn's single allowed bet.
const (
	Ante = 1
	Bet  = 1
)

// State is Kuhn poker's single-round, two-player state: one private card
// each, a single fixed bet size, no community cards, no side pots.
type State struct {
	hands    [2]Card
	history  []action.Action
	active   int
	bet      [2]int32
	terminal bool
}

// NewEmpty deals two of the three Kuhn cards to the two players. seed, if
// non-nil, makes the deal reproducible.
func NewEmpty(seed *uint64) State {
	var s uint64
	if seed != nil {
		s = *seed
	}
	rng := randutil.New(int64(s))
	cards := []Card{Jack, Queen, King}
	rng.Shuffle(len(cards), func(i, j int) { cards[i], cards[j] = cards[j], cards[i] })
	return State{hands: [2]Card{cards[0], cards[1]}, active: 0}
}

func (s State) TotalRounds() int  { return 1 }
func (s State) PlayerCount() int  { return 2 }
func (s State) CurrentRound() int { return 0 }
func (s State) ActivePlayer() int { return s.active }
func (s State) IsLeaf(int) bool   { return false }
func (s State) IsTerminal() bool  { return s.terminal }

// betMade reports whether either player has opened with a Bet this hand.
func (s State) betMade() bool {
	return s.bet[0] > 0 || s.bet[1] > 0
}

// CurrentBetDepth is 0 before any bet, 1 after the single allowed bet.
func (s State) CurrentBetDepth() int {
	if s.betMade() {
		return 1
	}
	return 0
}

func (s State) CanProceedToNextRound() bool { return false }

// ActivePlayerActions offers Fold only once a bet stands, Call always (a
// check when no bet stands), and Bet only before any bet has been made.
// AllIn is unused in Kuhn's fixed-size betting and is always filtered out.
func (s State) ActivePlayerActions(menu []action.Action) []action.Action {
	open := s.betMade()
	var out []action.Action
	for _, a := range menu {
		switch a.Kind {
		case action.Fold:
			if open {
				out = append(out, a)
			}
		case action.Call:
			out = append(out, a)
		case action.Bet:
			if !open {
				out = append(out, a)
			}
		}
	}
	return out
}

// HandleAction applies a, returning the successor state. A hand ends on
// check-check, bet-call, bet-fold, check-bet-call, or check-bet-fold.
func (s State) HandleAction(a action.Action) gametrait.GameState {
	actor := s.active
	next := s
	next.history = append(append([]action.Action(nil), s.history...), a)
	next.active = 1 - s.active

	switch a.Kind {
	case action.Bet:
		next.bet[actor] = Bet
	case action.Call:
		if s.betMade() {
			next.bet[actor] = Bet
		}
	}

	switch len(next.history) {
	case 1:
		next.terminal = false
	case 2:
		next.terminal = a.Kind == action.Fold || a.Kind == action.Call
	case 3:
		next.terminal = true
	}

	return next
}

// Payoffs: the higher card wins the pot at showdown; a fold awards the
// pot to the non-folding player.
func (s State) Payoffs() []int32 {
	if !s.terminal {
		panic("kuhn: Payoffs called on a non-terminal state")
	}

	payoffs := make([]int32, 2)
	pot := int32(2*Ante) + s.bet[0] + s.bet[1]

	if s.history[len(s.history)-1].Kind == action.Fold {
		folder := 1 - s.active // active already flipped past the folder to their opponent
		winner := s.active
		payoffs[winner] = pot - (Ante + s.bet[winner])
		payoffs[folder] = -(Ante + s.bet[folder])
		return payoffs
	}

	winner, loser := 0, 1
	if s.hands[1] > s.hands[0] {
		winner, loser = 1, 0
	}
	payoffs[winner] = pot - (Ante + s.bet[winner])
	payoffs[loser] = -(Ante + s.bet[loser])
	return payoffs
}

// History returns the single round's action list.
func (s State) History() [][]action.Action { return [][]action.Action{s.history} }

// CommunityCards is always empty: Kuhn deals no board.
func (s State) CommunityCards() []uint8 { return nil }

// PrivateHands returns each player's single hole card as a raw 0-2 code.
func (s State) PrivateHands() [][]uint8 {
	return [][]uint8{{uint8(s.hands[0])}, {uint8(s.hands[1])}}
}

var _ gametrait.GameState = State{}
