package poker

import "math/rand/v2"

// Deck is a fixed array of 52 cards dealt from the front after a shuffle.
// It carries no RNG of its own; callers pass one in so shuffles are
// reproducible when a seeded source is supplied.
type Deck struct {
	cards [NumCards]Card
	next  int
}

// NewDeck returns an unshuffled, full 52-card deck in rank-major order.
func NewDeck() *Deck {
	d := &Deck{}
	for i := 0; i < NumCards; i++ {
		d.cards[i] = Card(i)
	}
	return d
}

// Shuffle performs an in-place Fisher-Yates shuffle using rng. If rng is
// nil, the package-level math/rand/v2 default source is used.
func (d *Deck) Shuffle(rng *rand.Rand) {
	for i := NumCards - 1; i > 0; i-- {
		var j int
		if rng != nil {
			j = rng.IntN(i + 1)
		} else {
			j = rand.IntN(i + 1)
		}
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	}
	d.next = 0
}

// Deal returns the next n cards from the deck, advancing its cursor.
// It panics if fewer than n cards remain.
func (d *Deck) Deal(n int) []Card {
	if d.next+n > NumCards {
		panic("poker: deck exhausted")
	}
	out := d.cards[d.next : d.next+n]
	d.next += n
	return out
}

// DealOne deals a single card.
func (d *Deck) DealOne() Card {
	return d.Deal(1)[0]
}

// Remaining reports how many cards are left to deal.
func (d *Deck) Remaining() int {
	return NumCards - d.next
}

// Reset rewinds the deck cursor without reshuffling.
func (d *Deck) Reset() {
	d.next = 0
}
