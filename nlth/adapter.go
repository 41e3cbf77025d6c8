package nlth

import (
	"github.com/floriskappen/nlth-engine/action"
	"github.com/floriskappen/nlth-engine/gametrait"
	"github.com/floriskappen/nlth-engine/poker"
)

// Adapter boxes a State as a gametrait.GameState. State itself exposes a
// richer, NLTH-specific surface (side pots, card injection); Adapter is
// only needed where code is written once against the shared trait.
type Adapter struct {
	State State
}

func NewAdapter(s State) Adapter { return Adapter{State: s} }

func (a Adapter) TotalRounds() int      { return a.State.TotalRounds() }
func (a Adapter) PlayerCount() int      { return a.State.PlayerCount() }
func (a Adapter) CurrentRound() int     { return a.State.CurrentRound() }
func (a Adapter) CurrentBetDepth() int  { return a.State.CurrentBetDepth() }
func (a Adapter) ActivePlayer() int     { return a.State.ActivePlayer() }
func (a Adapter) IsTerminal() bool      { return a.State.IsTerminal() }
func (a Adapter) IsLeaf(mode int) bool  { return a.State.IsLeaf(mode) }
func (a Adapter) Payoffs() []int32      { return a.State.Payoffs() }
func (a Adapter) CanProceedToNextRound() bool {
	return a.State.CanProceedToNextRound()
}

func (a Adapter) ActivePlayerActions(menu []action.Action) []action.Action {
	return a.State.ActivePlayerActions(menu)
}

func (a Adapter) HandleAction(act action.Action) gametrait.GameState {
	return NewAdapter(a.State.HandleAction(act))
}

// History returns each round's action list in round order.
func (a Adapter) History() [][]action.Action {
	out := make([][]action.Action, len(a.State.History))
	for r, h := range a.State.History {
		out[r] = h
	}
	return out
}

// CommunityCards returns the dealt board cards as raw 0-51 codes, omitting
// any card still left as the NoCard sentinel.
func (a Adapter) CommunityCards() []uint8 {
	out := make([]uint8, 0, len(a.State.CommunityCards))
	for _, c := range a.State.CommunityCards {
		if c == poker.NoCard {
			continue
		}
		out = append(out, uint8(c))
	}
	return out
}

// PrivateHands returns every seated player's hole cards as raw 0-51 codes.
func (a Adapter) PrivateHands() [][]uint8 {
	out := make([][]uint8, a.State.Players)
	for p := 0; p < a.State.Players; p++ {
		hand := make([]uint8, 0, len(a.State.PrivateHands[p]))
		for _, c := range a.State.PrivateHands[p] {
			if c == poker.NoCard {
				continue
			}
			hand = append(hand, uint8(c))
		}
		out[p] = hand
	}
	return out
}

var _ gametrait.GameState = Adapter{}
