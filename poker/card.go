// Package poker implements the card, deck, and hand-evaluation primitives
// the rest of the engine builds on. Cards are small integers so that a
// seven-card hand is a fixed-size array with no heap traffic.
package poker

import "fmt"

// Card is a playing card encoded 0-51. Rank = Card/4, Suit = Card%4.
// NoCard is the sentinel used for unseated players and undealt community
// cards.
type Card uint8

// NoCard marks an absent card (unseated player, undealt street).
const NoCard Card = 52

// NumCards is the number of distinct cards in a standard deck.
const NumCards = 52

const (
	// SuitClubs, SuitDiamonds, SuitHearts, SuitSpades are Card%4 values.
	SuitClubs = iota
	SuitDiamonds
	SuitHearts
	SuitSpades
)

var rankChars = [13]byte{'2', '3', '4', '5', '6', '7', '8', '9', 'T', 'J', 'Q', 'K', 'A'}
var suitChars = [4]byte{'c', 'd', 'h', 's'}

// NewCard builds a Card from a zero-based rank (0=two .. 12=ace) and suit.
func NewCard(rank, suit int) Card {
	if rank < 0 || rank > 12 || suit < 0 || suit > 3 {
		panic(fmt.Sprintf("poker: invalid rank/suit %d/%d", rank, suit))
	}
	return Card(rank*4 + suit)
}

// Rank returns the zero-based rank (0=two .. 12=ace) of c.
func (c Card) Rank() int {
	return int(c) / 4
}

// Suit returns the suit (0-3) of c.
func (c Card) Suit() int {
	return int(c) % 4
}

// RankValue returns the evaluator-facing rank value (2-14, ace high).
func (c Card) RankValue() int {
	return c.Rank() + 2
}

// Valid reports whether c is a real, in-range card (not NoCard or beyond).
func (c Card) Valid() bool {
	return c < NumCards
}

// String renders a card like "Ah" or "Tc"; NoCard renders as "--".
func (c Card) String() string {
	if c == NoCard || c >= NumCards {
		return "--"
	}
	return string([]byte{rankChars[c.Rank()], suitChars[c.Suit()]})
}
