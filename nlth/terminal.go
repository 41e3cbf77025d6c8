package nlth

import "github.com/floriskappen/nlth-engine/poker"

// IsTerminal reports whether the hand has reached a showdown, a single
// remaining player, or the end of the river's action.
func (s State) IsTerminal() bool {
	if s.ActivePlayerCount == 0 {
		return true
	}
	if s.foldedCount() == s.Players-1 {
		return true
	}
	if s.ActivePlayerCount < 2 && (s.allRemainingPlayersChecked() || s.betOrRaiseFinished()) {
		return true
	}
	if s.Round == RoundRiver && (s.allRemainingPlayersChecked() || s.betOrRaiseFinished()) {
		return true
	}
	return false
}

func (s State) foldedCount() int {
	n := 0
	for p := 0; p < s.Players; p++ {
		if s.FoldedPlayers[p] {
			n++
		}
	}
	return n
}

// Payoffs computes the zero-sum chip result for every seated player. It
// is a contract violation to call Payoffs on a non-terminal state.
func (s State) Payoffs() []int32 {
	if !s.IsTerminal() {
		panic("nlth: Payoffs called on a non-terminal state")
	}

	payoffs := make([]int32, MaxPlayers)

	if s.foldedCount() == s.Players-1 {
		winner := -1
		for p := 0; p < s.Players; p++ {
			if !s.FoldedPlayers[p] {
				winner = p
				break
			}
		}
		var winnerBets int32
		for r := 0; r < Rounds; r++ {
			winnerBets += s.Bets[r][winner]
		}
		payoffs[winner] = s.TotalPot() - winnerBets
		for p := 0; p < s.Players; p++ {
			if p == winner {
				continue
			}
			var lost int32
			for k := 0; k < MaxPlayers; k++ {
				lost += s.Pots[k][p]
			}
			payoffs[p] = -lost
		}
		return payoffs
	}

	// Showdown: divide each pot among its eligible contestants.
	for potIndex := 0; potIndex < MaxPlayers; potIndex++ {
		pot := s.Pots[potIndex]
		var potSum int32
		for _, v := range pot {
			potSum += v
		}

		var eligible []int
		for p := 0; p < s.Players; p++ {
			if s.FoldedPlayers[p] {
				continue
			}
			if s.AllInPlayers[p] != -1 && int(s.AllInPlayers[p]) < potIndex {
				continue
			}
			eligible = append(eligible, p)
		}
		if len(eligible) == 0 {
			continue
		}

		var bestRank poker.HandRank
		ranks := make(map[int]poker.HandRank, len(eligible))
		for _, p := range eligible {
			cards := make([]poker.Card, 0, 7)
			cards = append(cards, s.PrivateHands[p][:]...)
			cards = append(cards, s.CommunityCards[:]...)
			rank := poker.Evaluate7(cards)
			ranks[p] = rank
			if rank > bestRank {
				bestRank = rank
			}
		}

		var winners []int
		for _, p := range eligible {
			if ranks[p] == bestRank {
				winners = append(winners, p)
			}
		}

		share := potSum / int32(len(winners))
		winnerSet := make(map[int]bool, len(winners))
		for _, p := range winners {
			winnerSet[p] = true
		}
		for _, p := range eligible {
			if winnerSet[p] {
				payoffs[p] += share - pot[p]
			} else {
				payoffs[p] -= pot[p]
			}
		}
	}

	for p := 0; p < s.Players; p++ {
		if s.FoldedPlayers[p] {
			var lost int32
			for k := 0; k < MaxPlayers; k++ {
				lost += s.Pots[k][p]
			}
			payoffs[p] -= lost
		}
	}

	return payoffs
}
