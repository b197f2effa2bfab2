package game

import (
	"math/rand"
)

// Deck is the policy draw pile plus its discard pile. The union of the two
// piles always holds the full card multiset; discarded cards only re-enter
// the draw pile through a reshuffle.
type Deck struct {
	draw    []Policy
	discard []Policy
	rng     *rand.Rand
}

func NewDeck(liberals, fascists int, rng *rand.Rand) *Deck {
	cards := make([]Policy, 0, liberals+fascists)
	for i := 0; i < liberals; i++ {
		cards = append(cards, PolicyLiberal)
	}
	for i := 0; i < fascists; i++ {
		cards = append(cards, PolicyFascist)
	}
	deck := &Deck{draw: cards, rng: rng}
	deck.shuffle()
	return deck
}

// Draw removes the top amount cards. If the draw pile is short, the discard
// pile is shuffled back in first, never mid-draw.
func (d *Deck) Draw(amount int) []Policy {
	if len(d.draw) < amount {
		d.reshuffle()
	}
	if len(d.draw) < amount {
		amount = len(d.draw)
	}
	cards := make([]Policy, amount)
	copy(cards, d.draw[:amount])
	d.draw = d.draw[amount:]
	return cards
}

// DrawOne removes the top card.
func (d *Deck) DrawOne() Policy {
	return d.Draw(1)[0]
}

// Peek returns the top amount cards without drawing them, reshuffling first
// if the draw pile is short, same as a draw would.
func (d *Deck) Peek(amount int) []Policy {
	if len(d.draw) < amount {
		d.reshuffle()
	}
	if len(d.draw) < amount {
		amount = len(d.draw)
	}
	cards := make([]Policy, amount)
	copy(cards, d.draw[:amount])
	return cards
}

// Discard appends cards to the discard pile.
func (d *Deck) Discard(cards ...Policy) {
	d.discard = append(d.discard, cards...)
}

// Remaining reports the draw pile size.
func (d *Deck) Remaining() int {
	return len(d.draw)
}

// Discarded reports the discard pile size.
func (d *Deck) Discarded() int {
	return len(d.discard)
}

// Total reports the combined card count, which never changes.
func (d *Deck) Total() int {
	return len(d.draw) + len(d.discard)
}

func (d *Deck) reshuffle() {
	d.draw = append(d.draw, d.discard...)
	d.discard = d.discard[:0]
	d.shuffle()
}

func (d *Deck) shuffle() {
	d.rng.Shuffle(len(d.draw), func(i, j int) {
		d.draw[i], d.draw[j] = d.draw[j], d.draw[i]
	})
}
