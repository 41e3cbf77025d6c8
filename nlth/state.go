// Package nlth implements the rules-exact No-Limit Texas Hold'em
// state-transition kernel: betting rounds, turn order, side pots,
// legality filtering, terminal detection, and payoffs. State is a value
// type; HandleAction never mutates its receiver, it returns a new State.
package nlth

import (
	"fmt"
	"math/rand/v2"

	"github.com/floriskappen/nlth-engine/action"
	"github.com/floriskappen/nlth-engine/internal/randutil"
	"github.com/floriskappen/nlth-engine/poker"
)

const (
	// MaxPlayers bounds every fixed-size array in State.
	MaxPlayers = 6
	// Rounds is the number of betting streets: preflop, flop, turn, river.
	Rounds = 4
	// PrivateCardAmount is the number of hole cards dealt per player.
	PrivateCardAmount = 2
	// CommunityCardAmount is the number of shared board cards.
	CommunityCardAmount = 5

	StackSize  = 10_000
	SmallBlind = 50
	BigBlind   = 100

	RoundPreflop = 0
	RoundFlop    = 1
	RoundTurn    = 2
	RoundRiver   = 3
)

// State is the NLTH game-state value. All fields are fixed-size arrays so
// a State is cheap to copy; CFR-style search clones by assignment plus a
// History copy (see clone).
type State struct {
	Round   int
	Players int

	PrivateHands   [MaxPlayers][PrivateCardAmount]poker.Card
	CommunityCards [CommunityCardAmount]poker.Card

	Stacks             [MaxPlayers]int32
	Bets               [Rounds][MaxPlayers]int32
	MinimumRaiseAmount int32

	History           [Rounds][]action.Action
	ActivePlayerIndex int
	FoldedPlayers     [MaxPlayers]bool
	// AllInPlayers[p] is -1 if p has not gone all-in, else the index of
	// the pot p capped when going all-in.
	AllInPlayers [MaxPlayers]int32

	// Pots[k][p] is the chips player p has committed to pot k. Pot 0 is
	// the main pot; pots are opened in creation order as players go
	// all-in.
	Pots                        [MaxPlayers][MaxPlayers]int32
	CurrentRoundPotAllInAmounts [MaxPlayers]int32
	CurrentPot                  int

	ActivePlayerCount int32
}

// NewEmpty constructs the initial hand state for playerCount seated
// players (2-6). If drawCards is false, hole and community cards are left
// as NoCard sentinels for external injection via SetPrivateHands /
// SetCommunityCards (used by deterministic test scenarios). When seed is
// non-nil, the shuffle is reproducible.
func NewEmpty(playerCount int, drawCards bool, seed *uint64) State {
	if playerCount < 2 || playerCount > MaxPlayers {
		panic(fmt.Sprintf("nlth: player count %d out of range [2,%d]", playerCount, MaxPlayers))
	}

	var privateHands [MaxPlayers][PrivateCardAmount]poker.Card
	var communityCards [CommunityCardAmount]poker.Card
	for p := 0; p < MaxPlayers; p++ {
		privateHands[p] = [PrivateCardAmount]poker.Card{poker.NoCard, poker.NoCard}
	}
	for i := range communityCards {
		communityCards[i] = poker.NoCard
	}

	if drawCards {
		deck := poker.NewDeck()
		var rng *rand.Rand
		if seed != nil {
			rng = randutil.New(int64(*seed))
		} else {
			rng = randutil.New(int64(rand.Uint64()))
		}
		deck.Shuffle(rng)

		for p := 0; p < playerCount; p++ {
			privateHands[p] = [PrivateCardAmount]poker.Card{deck.DealOne(), deck.DealOne()}
		}
		for i := range communityCards {
			communityCards[i] = deck.DealOne()
		}
	}

	var blinds [MaxPlayers]int32
	if playerCount >= 1 {
		blinds[0] = SmallBlind
	}
	if playerCount >= 2 {
		blinds[1] = BigBlind
	}

	s := State{
		Round:              RoundPreflop,
		Players:            playerCount,
		PrivateHands:       privateHands,
		CommunityCards:     communityCards,
		MinimumRaiseAmount: BigBlind,
		CurrentPot:         0,
		ActivePlayerCount:  int32(playerCount),
	}
	for p := 0; p < MaxPlayers; p++ {
		s.Stacks[p] = StackSize - blinds[p]
		s.Bets[RoundPreflop][p] = blinds[p]
		s.Pots[0][p] = blinds[p]
		s.AllInPlayers[p] = -1
	}
	for r := 0; r < Rounds; r++ {
		s.History[r] = nil
	}
	if playerCount == 2 {
		s.ActivePlayerIndex = 0
	} else {
		s.ActivePlayerIndex = 2
	}
	return s
}

// clone produces a deep copy safe to mutate independently of s: arrays
// copy by value already, but History's slices must be copied explicitly
// so appends in the successor never alias the predecessor's backing array.
func (s State) clone() State {
	next := s
	for r := 0; r < Rounds; r++ {
		if len(s.History[r]) > 0 {
			next.History[r] = append([]action.Action(nil), s.History[r]...)
		}
	}
	return next
}

// SetPrivateHands overwrites the seated players' hole cards, for
// deterministic test scenarios built without a shuffle.
func (s State) SetPrivateHands(hands [MaxPlayers][PrivateCardAmount]poker.Card) State {
	next := s.clone()
	next.PrivateHands = hands
	return next
}

// SetCommunityCards overwrites the board, for deterministic test
// scenarios built without a shuffle.
func (s State) SetCommunityCards(cards [CommunityCardAmount]poker.Card) State {
	next := s.clone()
	next.CommunityCards = cards
	return next
}

func (s State) TotalRounds() int { return Rounds }

func (s State) PlayerCount() int { return s.Players }

func (s State) CurrentRound() int { return s.Round }

func (s State) ActivePlayer() int { return s.ActivePlayerIndex }

// CurrentBetDepth is the number of Bet actions so far in the current
// round's history.
func (s State) CurrentBetDepth() int {
	count := 0
	for _, a := range s.History[s.Round] {
		if a.IsBetOrRaise() {
			count++
		}
	}
	return count
}

// TotalPot sums every pot's committed chips.
func (s State) TotalPot() int32 {
	var total int32
	for _, pot := range s.Pots {
		for _, v := range pot {
			total += v
		}
	}
	return total
}

// CallAmount is the chips the active player must add to match the
// current round's highest bet.
func (s State) CallAmount() int32 {
	var highest int32
	for _, b := range s.Bets[s.Round] {
		if b > highest {
			highest = b
		}
	}
	return highest - s.Bets[s.Round][s.ActivePlayerIndex]
}

// IsLeaf implements the three subgame-resolve leaf modes: 0 never, 1 at
// the end of preflop, 2 at the end of turn or once a second bet has
// occurred in the current round.
func (s State) IsLeaf(mode int) bool {
	switch mode {
	case 1:
		return s.Round > RoundPreflop
	case 2:
		return s.Round > RoundTurn || s.CurrentBetDepth() > 1
	default:
		return false
	}
}
