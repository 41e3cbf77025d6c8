package nlth

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/floriskappen/nlth-engine/action"
	"github.com/floriskappen/nlth-engine/poker"
)

// headsUpToShowdown drives both players to check the whole way down so
// the hand reaches the river and resolves by card strength.
func headsUpToShowdown(t *testing.T, s State) State {
	t.Helper()
	for !s.IsTerminal() {
		s = s.HandleAction(action.NewCall())
	}
	return s
}

func TestHeadsUpShowdownHigherHandWins(t *testing.T) {
	s := NewEmpty(2, false, nil)
	s = s.SetPrivateHands([MaxPlayers][PrivateCardAmount]poker.Card{
		{poker.NewCard(12, poker.SuitSpades), poker.NewCard(12, poker.SuitHearts)}, // pair of aces
		{poker.NewCard(0, poker.SuitClubs), poker.NewCard(1, poker.SuitDiamonds)},  // 2-3 offsuit
	})
	s = s.SetCommunityCards([CommunityCardAmount]poker.Card{
		poker.NewCard(5, poker.SuitClubs), poker.NewCard(7, poker.SuitHearts),
		poker.NewCard(9, poker.SuitSpades), poker.NewCard(2, poker.SuitDiamonds),
		poker.NewCard(4, poker.SuitHearts),
	})

	s = headsUpToShowdown(t, s)
	require.True(t, s.IsTerminal())

	payoffs := s.Payoffs()
	require.Greater(t, payoffs[0], int32(0))
	require.Equal(t, -payoffs[0], payoffs[1], "heads-up payoffs are exact opposites")
}

func TestShowdownSplitsPotOnTie(t *testing.T) {
	s := NewEmpty(2, false, nil)
	board := [CommunityCardAmount]poker.Card{
		poker.NewCard(12, poker.SuitClubs), poker.NewCard(11, poker.SuitClubs),
		poker.NewCard(10, poker.SuitClubs), poker.NewCard(9, poker.SuitClubs),
		poker.NewCard(8, poker.SuitClubs), // board itself is a royal flush
	}
	s = s.SetCommunityCards(board)
	s = s.SetPrivateHands([MaxPlayers][PrivateCardAmount]poker.Card{
		{poker.NewCard(0, poker.SuitDiamonds), poker.NewCard(1, poker.SuitDiamonds)},
		{poker.NewCard(2, poker.SuitHearts), poker.NewCard(3, poker.SuitHearts)},
	})

	s = headsUpToShowdown(t, s)
	payoffs := s.Payoffs()
	require.Zero(t, payoffs[0], "identical best-five-of-seven hands split the pot evenly")
	require.Zero(t, payoffs[1])
}

func TestAllInPlayerIneligibleForLaterSidePot(t *testing.T) {
	s := sixPlayerState(t)
	s.Stacks[3] = 180

	s = s.HandleAction(action.NewBet(300))
	s = s.HandleAction(action.NewAllIn())
	require.Equal(t, int32(0), s.AllInPlayers[3])

	// Everyone still in the hand calls the outstanding bet every street
	// until the hand reaches showdown; player 3 is skipped by turn order
	// once all-in, and never owes another call.
	for !s.IsTerminal() {
		s = s.HandleAction(action.NewCall())
	}
	require.True(t, s.IsTerminal())

	payoffs := s.Payoffs()
	var sum int32
	for p := 0; p < s.Players; p++ {
		sum += payoffs[p]
	}
	require.Zero(t, sum, "payoffs sum to zero across every pot")
}

// S5: heads-up, the literal eight-action sequence {Bet 2x, Call, Bet 1x,
// Call, Bet 0.5x, Call, Bet 1x, Call} run to showdown with P0 holding the
// stronger hand.
func TestHeadsUpEightActionSequencePayoffs(t *testing.T) {
	s := NewEmpty(2, false, nil)
	s = s.SetPrivateHands([MaxPlayers][PrivateCardAmount]poker.Card{
		{poker.NewCard(12, poker.SuitSpades), poker.NewCard(12, poker.SuitHearts)}, // pair of aces
		{poker.NewCard(0, poker.SuitClubs), poker.NewCard(1, poker.SuitDiamonds)},  // 2-3 offsuit
	})
	s = s.SetCommunityCards([CommunityCardAmount]poker.Card{
		poker.NewCard(5, poker.SuitClubs), poker.NewCard(7, poker.SuitHearts),
		poker.NewCard(9, poker.SuitSpades), poker.NewCard(2, poker.SuitDiamonds),
		poker.NewCard(4, poker.SuitHearts),
	})

	sequence := []action.Action{
		action.NewBet(200), action.NewCall(),
		action.NewBet(100), action.NewCall(),
		action.NewBet(50), action.NewCall(),
		action.NewBet(100), action.NewCall(),
	}
	for _, a := range sequence {
		s = s.HandleAction(a)
	}

	require.True(t, s.IsTerminal())
	payoffs := s.Payoffs()
	require.Equal(t, int32(9000), payoffs[0])
	require.Equal(t, int32(-9000), payoffs[1])
	for _, p := range payoffs[2:] {
		require.Zero(t, p)
	}
}

func TestIsLeafModes(t *testing.T) {
	s := NewEmpty(2, false, nil)
	require.False(t, s.IsLeaf(1))
	require.False(t, s.IsLeaf(2))

	s = s.HandleAction(action.NewCall())
	s = s.HandleAction(action.NewCall())
	require.Equal(t, RoundFlop, s.CurrentRound())
	require.True(t, s.IsLeaf(1), "leaf mode 1 fires as soon as preflop closes")
}

func TestPayoffsPanicsWhenNotTerminal(t *testing.T) {
	s := NewEmpty(2, false, nil)
	require.Panics(t, func() { s.Payoffs() })
}
