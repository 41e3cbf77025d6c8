package abstraction

import (
	"math/rand/v2"
	"sort"

	"github.com/floriskappen/nlth-engine/action"
)

// Translate maps an off-menu Bet action onto one of menu's Bet entries
// using randomized pseudo-harmonic mapping: given neighbors a (nearest
// menu value at or below x) and b (nearest at or above x),
//
//	f(a, b, x) = ((b - x)(1 + a)) / ((b - a)(1 + x))
//
// a draw u ~ Uniform[0,1] picks a when u <= f, else b. If x already sits
// on the menu, or only one neighbor exists, that value is returned
// without consulting rng. Non-Bet actions pass through unchanged, since
// Fold/Call/AllIn always have a menu home. rng may be nil, in which case
// the package-level math/rand/v2 default source is used.
func Translate(rng *rand.Rand, menu []action.Action, x action.Action) action.Action {
	if x.Kind != action.Bet {
		return x
	}

	var belowAmt, aboveAmt uint16
	haveBelow, haveAbove := false, false
	exact := false

	for _, m := range menu {
		if m.Kind != action.Bet {
			continue
		}
		switch {
		case m.RaiseAmount == x.RaiseAmount:
			exact = true
		case m.RaiseAmount < x.RaiseAmount:
			if !haveBelow || m.RaiseAmount > belowAmt {
				belowAmt = m.RaiseAmount
				haveBelow = true
			}
		case m.RaiseAmount > x.RaiseAmount:
			if !haveAbove || m.RaiseAmount < aboveAmt {
				aboveAmt = m.RaiseAmount
				haveAbove = true
			}
		}
	}

	if exact {
		return x
	}
	if !haveBelow {
		return action.NewBet(aboveAmt)
	}
	if !haveAbove {
		return action.NewBet(belowAmt)
	}

	a := float64(belowAmt)
	b := float64(aboveAmt)
	xv := float64(x.RaiseAmount)

	f := ((b - xv) * (1 + a)) / ((b - a) * (1 + xv))

	var u float64
	if rng != nil {
		u = rng.Float64()
	} else {
		u = rand.Float64()
	}

	if u <= f {
		return action.NewBet(belowAmt)
	}
	return action.NewBet(aboveAmt)
}

// BetAmounts returns the sorted, deduplicated Bet raise amounts present in
// menu, useful for callers building their own neighbor search.
func BetAmounts(menu []action.Action) []uint16 {
	seen := map[uint16]bool{}
	var amounts []uint16
	for _, m := range menu {
		if m.Kind == action.Bet && !seen[m.RaiseAmount] {
			seen[m.RaiseAmount] = true
			amounts = append(amounts, m.RaiseAmount)
		}
	}
	sort.Slice(amounts, func(i, j int) bool { return amounts[i] < amounts[j] })
	return amounts
}
