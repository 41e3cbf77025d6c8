// Package gametrait defines the capability surface shared by every game
// variant in this module (NLTH, and the degenerate Kuhn/Leduc stubs), so
// that outer search code can be written once against the interface
// instead of against a concrete state type.
package gametrait

import "github.com/floriskappen/nlth-engine/action"

// GameState is the uniform contract across game variants. Implementations
// are value types: HandleAction returns a new state and never mutates the
// receiver.
type GameState interface {
	TotalRounds() int
	PlayerCount() int
	CurrentRound() int
	CurrentBetDepth() int
	ActivePlayer() int
	ActivePlayerActions(menu []action.Action) []action.Action
	IsTerminal() bool
	IsLeaf(mode int) bool
	CanProceedToNextRound() bool
	HandleAction(a action.Action) GameState
	Payoffs() []int32

	// History, CommunityCards, and PrivateHands expose enough of a
	// variant's deal and action record for an outer caller (a hand
	// isomorphism indexer, a transcript renderer) to work against the
	// trait alone, without assuming the richer concrete state type.
	// Cards are each variant's own raw rank/card encoding - 0-51 for
	// NLTH's 52-card deck, 0-2 for Kuhn and Leduc's Jack/Queen/King -
	// callers that need NLTH's full rank/suit semantics should use the
	// concrete nlth.State instead. CommunityCards omits any card not
	// yet dealt; Leduc also withholds its board card before round 1,
	// while NLTH returns every dealt board card whatever the round.
	History() [][]action.Action
	CommunityCards() []uint8
	PrivateHands() [][]uint8
}
