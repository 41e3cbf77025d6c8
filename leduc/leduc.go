// Package leduc implements Leduc hold'em, a two-round, one board-card
// degenerate case of gametrait.GameState sitting between Kuhn and NLTH in
// complexity: two betting rounds, a single shared community card, no side
// pots (heads-up only). It exists as the reference's second sibling
// game_states module, exercising the shared trait's round-transition
// hooks that Kuhn's single round never reaches.
package leduc

import (
	"github.com/floriskappen/nlth-engine/action"
	"github.com/floriskappen/nlth-engine/gametrait"
	"github.com/floriskappen/nlth-engine/internal/randutil"
)

// Rank is one of Jack, Queen, King; the deck carries two of each (six
// cards total), unsuited.
type Rank uint8

const (
	Jack Rank = iota
	Queen
	King
)

const (
	Ante      = 1
	BetRound0 = 2
	BetRound1 = 4
	MaxRaises = 1 // Leduc allows at most one raise per round
)

// State is Leduc's two-round, two-player state.
type State struct {
	hands       [2]Rank
	board       Rank
	boardKnown  bool
	round       int
	active      int
	bets        [2][2]int32 // bets[round][player]
	raisesDone  [2]int
	history     [2][]action.Action
	terminal    bool
}

// NewEmpty deals one private card to each player and one board card
// (revealed only after round 0 closes), from a six-card deck (two of
// each rank). seed, if non-nil, makes the deal reproducible.
func NewEmpty(seed *uint64) State {
	var sv uint64
	if seed != nil {
		sv = *seed
	}
	rng := randutil.New(int64(sv))
	deck := []Rank{Jack, Jack, Queen, Queen, King, King}
	rng.Shuffle(len(deck), func(i, j int) { deck[i], deck[j] = deck[j], deck[i] })

	return State{
		hands: [2]Rank{deck[0], deck[1]},
		board: deck[2],
		active: 0,
	}
}

func (s State) TotalRounds() int  { return 2 }
func (s State) PlayerCount() int  { return 2 }
func (s State) CurrentRound() int { return s.round }
func (s State) ActivePlayer() int { return s.active }
func (s State) IsTerminal() bool  { return s.terminal }

// IsLeaf treats mode 1 the same way NLTH does: a leaf once the first
// round has closed.
func (s State) IsLeaf(mode int) bool {
	if mode == 1 {
		return s.round > 0
	}
	return false
}

func (s State) CurrentBetDepth() int {
	return s.raisesDone[s.round]
}

func (s State) CanProceedToNextRound() bool {
	return s.round == 0 && !s.terminal && s.roundClosed()
}

func (s State) roundClosed() bool {
	h := s.history[s.round]
	if len(h) < 2 {
		return false
	}
	last := h[len(h)-1]
	return last.Kind == action.Call || last.Kind == action.Fold
}

// ActivePlayerActions offers Fold only once a bet stands this round, Call
// always (a check when no bet stands), and Bet only while under the
// one-raise-per-round cap. AllIn is unused.
func (s State) ActivePlayerActions(menu []action.Action) []action.Action {
	open := s.raisesDone[s.round] > 0 && !s.lastWasCallOrFold()
	canRaise := s.raisesDone[s.round] < MaxRaises
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
			if canRaise && !open {
				out = append(out, a)
			}
		}
	}
	return out
}

func (s State) lastWasCallOrFold() bool {
	h := s.history[s.round]
	if len(h) == 0 {
		return false
	}
	last := h[len(h)-1]
	return last.Kind == action.Call || last.Kind == action.Fold
}

func betSize(round int) int32 {
	if round == 0 {
		return BetRound0
	}
	return BetRound1
}

// HandleAction applies a, returning the successor state.
func (s State) HandleAction(a action.Action) gametrait.GameState {
	next := s
	next.history[s.round] = append(append([]action.Action(nil), s.history[s.round]...), a)
	actor := s.active
	next.active = 1 - s.active

	switch a.Kind {
	case action.Fold:
		next.terminal = true
		return next
	case action.Bet:
		next.bets[s.round][actor] += betSize(s.round)
		next.raisesDone[s.round]++
	case action.Call:
		if s.raisesDone[s.round] > 0 {
			next.bets[s.round][actor] += betSize(s.round)
		}
	}

	if next.roundClosed() {
		if s.round == 0 {
			next.round = 1
			next.boardKnown = true
			next.active = 0
		} else {
			next.terminal = true
		}
	}

	return next
}

// Payoffs: at showdown the board pairs with a hand's hole card beating an
// unpaired higher rank; otherwise higher rank wins; a fold awards the pot
// to the non-folder.
func (s State) Payoffs() []int32 {
	if !s.terminal {
		panic("leduc: Payoffs called on a non-terminal state")
	}
	payoffs := make([]int32, 2)

	var totalBet [2]int32
	for r := 0; r < 2; r++ {
		totalBet[0] += s.bets[r][0]
		totalBet[1] += s.bets[r][1]
	}
	pot := int32(2*Ante) + totalBet[0] + totalBet[1]

	lastRound := s.history[s.round]
	if len(lastRound) > 0 && lastRound[len(lastRound)-1].Kind == action.Fold {
		folder := 1 - s.active
		winner := s.active
		payoffs[winner] = pot - (Ante + totalBet[winner])
		payoffs[folder] = -(Ante + totalBet[folder])
		return payoffs
	}

	winner, loser := s.showdownWinner()
	payoffs[winner] = pot - (Ante + totalBet[winner])
	payoffs[loser] = -(Ante + totalBet[loser])
	return payoffs
}

// showdownWinner ranks each player's hand: a pair with the board beats
// any unpaired holding, otherwise the higher private rank wins.
func (s State) showdownWinner() (winner, loser int) {
	paired0 := s.hands[0] == s.board
	paired1 := s.hands[1] == s.board
	switch {
	case paired0 && !paired1:
		return 0, 1
	case paired1 && !paired0:
		return 1, 0
	case s.hands[0] > s.hands[1]:
		return 0, 1
	default:
		return 1, 0
	}
}

// History returns both rounds' action lists in order.
func (s State) History() [][]action.Action {
	return [][]action.Action{s.history[0], s.history[1]}
}

// CommunityCards returns the single board card as a raw 0-2 code, or
// nothing before it is revealed at the start of round 1.
func (s State) CommunityCards() []uint8 {
	if !s.boardKnown {
		return nil
	}
	return []uint8{uint8(s.board)}
}

// PrivateHands returns each player's single hole card as a raw 0-2 code.
func (s State) PrivateHands() [][]uint8 {
	return [][]uint8{{uint8(s.hands[0])}, {uint8(s.hands[1])}}
}

var _ gametrait.GameState = State{}
