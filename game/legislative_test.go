package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shadowgov/server/consts"
)

func TestLegislativeSession(t *testing.T) {
	g := startedGame(t, 5, 31)
	chancellor := anyEligibleChancellor(t, g)
	electGovernment(t, g, chancellor.ID)
	presID := g.Election.PresidentID

	stackDeck(g,
		PolicyFascist, PolicyLiberal, PolicyFascist,
		PolicyLiberal, PolicyLiberal, PolicyLiberal, PolicyLiberal,
		PolicyFascist, PolicyFascist, PolicyFascist, PolicyFascist,
		PolicyFascist, PolicyFascist, PolicyFascist, PolicyFascist,
		PolicyFascist, PolicyFascist)
	require.Equal(t, 17, g.Deck.Total())

	result, err := g.DrawPolicies(presID)
	require.NoError(t, err)
	assert.Equal(t, []Policy{PolicyFascist, PolicyLiberal, PolicyFascist}, result.Data["policies"])
	// The public event never carries the cards themselves.
	assert.NotContains(t, result.Event.Data, "policies")
	assert.Equal(t, 3, result.Event.Data["count"])

	_, err = g.DiscardPolicy(presID, PolicyFascist)
	require.NoError(t, err)
	assert.Equal(t, []Policy{PolicyLiberal, PolicyFascist}, g.Legislative.Hand)
	assert.Equal(t, 1, g.Deck.Discarded())

	_, err = g.EnactPolicy(chancellor.ID, PolicyLiberal)
	require.NoError(t, err)
	assert.Equal(t, 1, g.Tracks.Liberal)
	assert.Equal(t, 0, g.Tracks.Fascist)
	assert.Empty(t, g.Legislative.Hand)
	assert.Equal(t, consts.PhaseElection, g.Phase)

	// One card enacted, so the deck and discard together hold sixteen.
	assert.Equal(t, 16, g.Deck.Total())
}

func TestLegislativeValidation(t *testing.T) {
	g := startedGame(t, 5, 32)
	chancellor := anyEligibleChancellor(t, g)
	electGovernment(t, g, chancellor.ID)
	presID := g.Election.PresidentID
	stackDeck(g, PolicyLiberal, PolicyLiberal, PolicyLiberal, PolicyFascist)

	t.Run("only_the_president_draws", func(t *testing.T) {
		_, err := g.DrawPolicies(chancellor.ID)
		assert.Equal(t, consts.ErrorsNotPlayerTurn, err)
	})

	t.Run("discarding_before_drawing_is_rejected", func(t *testing.T) {
		_, err := g.DiscardPolicy(presID, PolicyLiberal)
		assert.Equal(t, consts.ErrorsInvalidAction, err)
	})

	t.Run("a_second_draw_is_rejected", func(t *testing.T) {
		_, err := g.DrawPolicies(presID)
		require.NoError(t, err)
		_, err = g.DrawPolicies(presID)
		assert.Equal(t, consts.ErrorsInvalidAction, err)
	})

	t.Run("discarding_a_card_not_in_hand_is_rejected", func(t *testing.T) {
		_, err := g.DiscardPolicy(presID, PolicyFascist)
		assert.Equal(t, consts.ErrorsInvalidAction, err)
	})

	t.Run("only_the_chancellor_enacts", func(t *testing.T) {
		_, err := g.DiscardPolicy(presID, PolicyLiberal)
		require.NoError(t, err)
		_, err = g.EnactPolicy(presID, PolicyLiberal)
		assert.Equal(t, consts.ErrorsNotPlayerTurn, err)
	})

	t.Run("enacting_a_card_not_in_hand_is_rejected", func(t *testing.T) {
		_, err := g.EnactPolicy(chancellor.ID, PolicyFascist)
		assert.Equal(t, consts.ErrorsInvalidAction, err)
	})
}

func TestFascistEnactmentTriggersPower(t *testing.T) {
	g := startedGame(t, 7, 33)
	g.Tracks.Fascist = 1
	chancellor := anyEligibleChancellor(t, g)
	electGovernment(t, g, chancellor.ID)
	presID := g.Election.PresidentID
	stackDeck(g, PolicyFascist, PolicyFascist, PolicyFascist)

	_, err := g.DrawPolicies(presID)
	require.NoError(t, err)
	_, err = g.DiscardPolicy(presID, PolicyFascist)
	require.NoError(t, err)
	result, err := g.EnactPolicy(chancellor.ID, PolicyFascist)
	require.NoError(t, err)

	assert.Equal(t, 2, g.Tracks.Fascist)
	assert.Equal(t, "power_triggered", result.Status)
	assert.Equal(t, PowerInvestigate, g.PendingPower)
	assert.Equal(t, consts.PhasePresidentialPower, g.Phase)
	// The president stays in office until the power resolves.
	assert.Equal(t, presID, g.Election.PresidentID)
}

func TestLiberalTrackWin(t *testing.T) {
	g := startedGame(t, 5, 34)
	g.Tracks.Liberal = 4
	chancellor := anyEligibleChancellor(t, g)
	electGovernment(t, g, chancellor.ID)
	presID := g.Election.PresidentID
	stackDeck(g, PolicyLiberal, PolicyLiberal, PolicyFascist)

	_, err := g.DrawPolicies(presID)
	require.NoError(t, err)
	_, err = g.DiscardPolicy(presID, PolicyFascist)
	require.NoError(t, err)
	_, err = g.EnactPolicy(chancellor.ID, PolicyLiberal)
	require.NoError(t, err)

	assert.True(t, g.IsGameOver())
	assert.Equal(t, PartyLiberal, g.GetWinner())
	assert.Equal(t, PowerNone, g.PendingPower)
}

func vetoSession(t *testing.T, seed int64, fascistTrack int) (*Game, string, string) {
	t.Helper()
	g := startedGame(t, 5, seed)
	g.Tracks.Fascist = fascistTrack
	chancellor := anyEligibleChancellor(t, g)
	electGovernment(t, g, chancellor.ID)
	presID := g.Election.PresidentID
	cards := []Policy{PolicyFascist, PolicyFascist, PolicyLiberal}
	for i := 0; i < 5; i++ {
		cards = append(cards, PolicyLiberal)
	}
	for i := 0; i < 9; i++ {
		cards = append(cards, PolicyFascist)
	}
	stackDeck(g, cards...)

	_, err := g.DrawPolicies(presID)
	require.NoError(t, err)
	_, err = g.DiscardPolicy(presID, PolicyFascist)
	require.NoError(t, err)
	return g, presID, chancellor.ID
}

func TestVeto(t *testing.T) {
	t.Run("unavailable_below_the_unlock_threshold", func(t *testing.T) {
		g, _, chanID := vetoSession(t, 41, 4)
		_, err := g.RequestVeto(chanID)
		assert.Equal(t, consts.ErrorsInvalidAction, err)
	})

	t.Run("refusal_forces_the_chancellor_to_enact", func(t *testing.T) {
		g, presID, chanID := vetoSession(t, 42, 5)
		_, err := g.RequestVeto(chanID)
		require.NoError(t, err)
		assert.True(t, g.Legislative.VetoRequested)

		// The enactment window is closed while the veto is pending.
		_, err = g.EnactPolicy(chanID, PolicyLiberal)
		assert.Equal(t, consts.ErrorsInvalidAction, err)

		_, err = g.HandleVeto(presID, false)
		require.NoError(t, err)
		assert.True(t, g.Legislative.VetoSpent)

		// One veto per session.
		_, err = g.RequestVeto(chanID)
		assert.Equal(t, consts.ErrorsInvalidAction, err)

		_, err = g.EnactPolicy(chanID, PolicyLiberal)
		require.NoError(t, err)
		assert.Equal(t, 1, g.Tracks.Liberal)
	})

	t.Run("approval_discards_the_hand_and_advances_the_tracker", func(t *testing.T) {
		g, presID, chanID := vetoSession(t, 43, 5)
		expectedNext := g.Players[g.nextLivingIdx(g.presidentIdx)].ID
		_, err := g.RequestVeto(chanID)
		require.NoError(t, err)
		_, err = g.HandleVeto(presID, true)
		require.NoError(t, err)

		assert.Equal(t, 1, g.Election.Tracker)
		assert.Empty(t, g.Legislative.Hand)
		assert.Equal(t, consts.PhaseElection, g.Phase)
		assert.Equal(t, expectedNext, g.Election.PresidentID)
		// Nothing was enacted: the full seventeen cards are still in play.
		assert.Equal(t, 17, g.Deck.Total())
	})

	t.Run("approval_at_the_tracker_limit_triggers_chaos", func(t *testing.T) {
		g, presID, chanID := vetoSession(t, 44, 5)
		g.Election.Tracker = 2
		_, err := g.RequestVeto(chanID)
		require.NoError(t, err)
		_, err = g.HandleVeto(presID, true)
		require.NoError(t, err)

		// Tracker hit three: top card enacted by chaos. The stacked deck
		// leaves a liberal on top after the three drawn cards.
		assert.Equal(t, 1, g.Tracks.Liberal)
		assert.Equal(t, 0, g.Election.Tracker)
	})

	t.Run("only_the_president_resolves_a_veto", func(t *testing.T) {
		g, _, chanID := vetoSession(t, 45, 5)
		_, err := g.RequestVeto(chanID)
		require.NoError(t, err)
		_, err = g.HandleVeto(chanID, true)
		assert.Equal(t, consts.ErrorsNotPlayerTurn, err)
	})
}
