package nlth

import (
	"github.com/floriskappen/nlth-engine/action"
)

// ActivePlayerActions filters a candidate menu down to what the active
// player may legally do right now. AllIn is always offered (when the
// player has chips); Fold only when there is something to call; Call
// only when the player has chips left over after calling (otherwise the
// same intent is expressed as AllIn); each Bet only if its pot-fraction
// raise meets the minimum raise and the player can afford it.
func (s State) ActivePlayerActions(menu []action.Action) []action.Action {
	pot := s.TotalPot()
	callAmount := s.CallAmount()
	stack := s.Stacks[s.ActivePlayerIndex]

	out := make([]action.Action, 0, len(menu))
	for _, a := range menu {
		switch a.Kind {
		case action.AllIn:
			if stack > 0 {
				out = append(out, a)
			}
		case action.Fold:
			if callAmount > 0 {
				out = append(out, a)
			}
		case action.Call:
			if stack-callAmount > 0 {
				out = append(out, a)
			}
		case action.Bet:
			raise := int32(float64(pot+callAmount) * a.Multiplier())
			if raise < s.MinimumRaiseAmount {
				continue
			}
			if stack-(callAmount+raise) < 0 {
				continue
			}
			out = append(out, a)
		}
	}
	return out
}

// HandleAction expects a to be legal in the current state (per
// ActivePlayerActions). It does not check this: an action outside the
// legal set is applied as given.
func (s State) HandleAction(a action.Action) State {
	next := s.clone()
	active := next.ActivePlayerIndex

	if a.Kind == action.Fold {
		next.FoldedPlayers[active] = true
		next.ActivePlayerCount--
	} else {
		currentBets := next.Bets[next.Round][active]
		callAmount := next.CallAmount()
		extraBets := callAmount

		switch a.Kind {
		case action.AllIn:
			stack := next.Stacks[active]
			if stack >= next.MinimumRaiseAmount*2 {
				next.MinimumRaiseAmount = stack - callAmount
			}
			extraBets += stack - callAmount
			next.distributeIntoPots(active, currentBets, extraBets)
			next.CurrentRoundPotAllInAmounts[next.CurrentPot] = currentBets + extraBets
			next.AllInPlayers[active] = int32(next.CurrentPot)
			next.CurrentPot++
			next.ActivePlayerCount--
		default: // Call or Bet
			if a.IsBetOrRaise() {
				totalPot := next.TotalPot()
				raise := int32(float64(totalPot+callAmount) * a.Multiplier())
				extraBets += raise
				next.MinimumRaiseAmount = raise
			}
			next.distributeIntoPots(active, currentBets, extraBets)
		}

		next.Stacks[active] -= extraBets
		next.Bets[next.Round][active] += extraBets
	}

	next.History[next.Round] = append(next.History[next.Round], a)

	next.advanceActivePlayer()

	if next.CanProceedToNextRound() {
		next.Round++
		next.MinimumRaiseAmount = BigBlind
		next.CurrentRoundPotAllInAmounts = [MaxPlayers]int32{}
		if next.Players == 2 {
			next.ActivePlayerIndex = 1
		} else {
			next.ActivePlayerIndex = 0
		}
	}

	return next
}

// distributeIntoPots walks already-open side pots in creation order,
// filling each up to its per-player cap before any residual lands in the
// current (youngest, still-open) pot. currentBets is the active player's
// committed amount in this round before the new contribution; extraBets
// is the chip amount now being committed.
func (s *State) distributeIntoPots(active int, currentBets, extraBets int32) {
	remaining := extraBets
	for potIndex, cap_ := range s.CurrentRoundPotAllInAmounts {
		if remaining <= 0 {
			break
		}
		if cap_ > currentBets {
			amount := cap_ - currentBets
			if amount > remaining {
				amount = remaining
			}
			s.Pots[potIndex][active] += amount
			remaining -= amount
			currentBets += amount
		}
	}
	s.Pots[s.CurrentPot][active] += remaining
}

// advanceActivePlayer walks forward from the current active player,
// skipping folded and all-in seats, and stops at the first eligible one.
// It never lands on a folded or all-in seat (tested property: turn
// order).
func (s *State) advanceActivePlayer() {
	idx := (s.ActivePlayerIndex + 1) % s.Players
	for i := 0; i < s.Players; i++ {
		if !s.FoldedPlayers[idx] && s.AllInPlayers[idx] == -1 {
			s.ActivePlayerIndex = idx
			return
		}
		idx = (idx + 1) % s.Players
	}
}

// CanProceedToNextRound reports whether betting has closed this round
// with at least two players still able to act.
func (s State) CanProceedToNextRound() bool {
	return s.Round < RoundRiver && s.ActivePlayerCount > 1 &&
		(s.allRemainingPlayersChecked() || s.betOrRaiseFinished())
}

// allRemainingPlayersChecked reports whether every active player has
// called (including the trivial "check" of calling 0) and no one has bet
// or raised this round.
func (s State) allRemainingPlayersChecked() bool {
	calls := 0
	for _, a := range s.History[s.Round] {
		if a.Kind == action.Call {
			calls++
		}
		if a.IsBetOrRaise() {
			return false
		}
	}
	return calls == int(s.ActivePlayerCount)
}

// betOrRaiseFinished walks this round's history in reverse looking for
// the most recent aggressive action (Bet or AllIn) and checks whether
// every subsequent non-fold action constitutes a full response from the
// table (a closed raise chain).
func (s State) betOrRaiseFinished() bool {
	history := s.History[s.Round]
	for i := len(history) - 1; i >= 0; i-- {
		a := history[i]
		if a.IsBetOrRaise() {
			nonFold := 0
			for _, later := range history[i:] {
				if later.Kind != action.Fold {
					nonFold++
				}
			}
			return nonFold == int(s.ActivePlayerCount)
		}
		if a.Kind == action.AllIn {
			nonFold := 0
			for _, later := range history[i:] {
				if later.Kind != action.Fold {
					nonFold++
				}
			}
			// The all-in itself already decremented ActivePlayerCount.
			return nonFold > int(s.ActivePlayerCount)
		}
	}
	return false
}
