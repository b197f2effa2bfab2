package game_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shadowgov/server/game"
)

func countPolicies(cards []game.Policy) (liberals, fascists int) {
	for _, c := range cards {
		if c == game.PolicyLiberal {
			liberals++
		} else {
			fascists++
		}
	}
	return liberals, fascists
}

func TestDeckDraw(t *testing.T) {
	t.Run("holds_six_liberal_and_eleven_fascist_cards", func(t *testing.T) {
		deck := game.NewDeck(6, 11, rand.New(rand.NewSource(1)))
		cards := deck.Draw(17)
		liberals, fascists := countPolicies(cards)
		assert.Equal(t, 6, liberals)
		assert.Equal(t, 11, fascists)
		assert.Equal(t, 0, deck.Remaining())
	})

	t.Run("reshuffles_the_discard_pile_when_short", func(t *testing.T) {
		deck := game.NewDeck(6, 11, rand.New(rand.NewSource(2)))
		deck.Discard(deck.Draw(15)...)
		require.Equal(t, 2, deck.Remaining())
		require.Equal(t, 15, deck.Discarded())

		cards := deck.Draw(3)
		require.Len(t, cards, 3)
		assert.Equal(t, 0, deck.Discarded())
		assert.Equal(t, 17, deck.Remaining()+deck.Discarded()+len(cards))
	})

	t.Run("total_is_preserved_across_draw_and_discard_cycles", func(t *testing.T) {
		deck := game.NewDeck(6, 11, rand.New(rand.NewSource(3)))
		for i := 0; i < 5; i++ {
			cards := deck.Draw(3)
			deck.Discard(cards[1:]...)
			assert.Equal(t, 17-(i+1), deck.Total())
		}
	})
}

func TestDeckPeek(t *testing.T) {
	deck := game.NewDeck(6, 11, rand.New(rand.NewSource(4)))
	peeked := deck.Peek(3)
	drawn := deck.Draw(3)
	assert.Equal(t, peeked, drawn)
}

func TestDeckDeterminism(t *testing.T) {
	a := game.NewDeck(6, 11, rand.New(rand.NewSource(42)))
	b := game.NewDeck(6, 11, rand.New(rand.NewSource(42)))
	assert.Equal(t, a.Draw(17), b.Draw(17))
}
