package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shadowgov/server/consts"
)

func TestRoleVisibility(t *testing.T) {
	t.Run("seven_players", func(t *testing.T) {
		g := startedGame(t, 7, 61)
		hitler := playerWithRole(g, RoleHitler)
		fascist := playerWithRole(g, RoleFascist)
		liberal := playerWithRole(g, RoleLiberal)

		fascistView := g.ViewFor(fascist.ID)
		assert.Equal(t, hitler.ID, fascistView.HitlerID)
		require.Len(t, fascistView.KnownFascists, 1)
		assert.NotEqual(t, fascist.ID, fascistView.KnownFascists[0])

		// In larger games Hitler does not learn the fascist identities.
		hitlerView := g.ViewFor(hitler.ID)
		assert.Empty(t, hitlerView.KnownFascists)
		assert.Empty(t, hitlerView.HitlerID)

		liberalView := g.ViewFor(liberal.ID)
		assert.Equal(t, RoleLiberal, liberalView.YourRole)
		assert.Empty(t, liberalView.KnownFascists)
		assert.Empty(t, liberalView.HitlerID)
	})

	t.Run("five_players", func(t *testing.T) {
		g := startedGame(t, 5, 62)
		hitler := playerWithRole(g, RoleHitler)
		fascist := playerWithRole(g, RoleFascist)

		hitlerView := g.ViewFor(hitler.ID)
		assert.Equal(t, []string{fascist.ID}, hitlerView.KnownFascists)
	})
}

func TestSpectatorView(t *testing.T) {
	g := startedGame(t, 5, 63)

	view := g.ViewFor("")
	assert.Empty(t, view.YourRole)
	assert.Empty(t, view.KnownFascists)
	assert.Nil(t, view.Hand)
	assert.Len(t, view.Players, 5)

	view = g.ViewFor("no-such-player")
	assert.Empty(t, view.YourRole)
}

func TestHandVisibility(t *testing.T) {
	g := startedGame(t, 5, 64)
	chancellor := anyEligibleChancellor(t, g)
	electGovernment(t, g, chancellor.ID)
	presID := g.Election.PresidentID
	stackDeck(g, PolicyLiberal, PolicyFascist, PolicyLiberal, PolicyFascist)

	_, err := g.DrawPolicies(presID)
	require.NoError(t, err)
	assert.Len(t, g.ViewFor(presID).Hand, 3)
	assert.Nil(t, g.ViewFor(chancellor.ID).Hand)

	_, err = g.DiscardPolicy(presID, PolicyFascist)
	require.NoError(t, err)
	assert.Nil(t, g.ViewFor(presID).Hand)
	assert.Len(t, g.ViewFor(chancellor.ID).Hand, 2)

	for _, p := range g.Players {
		if p.ID == presID || p.ID == chancellor.ID {
			continue
		}
		assert.Nil(t, g.ViewFor(p.ID).Hand, p.Name)
	}
}

func TestInvestigationVisibility(t *testing.T) {
	g := startedGame(t, 9, 65)
	presID := g.Election.PresidentID
	openPower(g, PowerInvestigate)
	target := anyTarget(g)

	_, err := g.InvestigateLoyalty(presID, target.ID)
	require.NoError(t, err)

	view := g.ViewFor(presID)
	require.Contains(t, view.Investigations, target.ID)
	assert.Equal(t, target.Role.Party(), view.Investigations[target.ID])

	for _, p := range g.Players {
		if p.ID == presID {
			continue
		}
		assert.Nil(t, g.ViewFor(p.ID).Investigations, p.Name)
	}
}

func TestPublicStateTracksTheBoard(t *testing.T) {
	g := startedGame(t, 5, 66)
	chancellor := anyEligibleChancellor(t, g)
	_, err := g.NominateChancellor(g.Election.PresidentID, chancellor.ID)
	require.NoError(t, err)
	voter := g.Players[0]
	_, err = g.SubmitVote(voter.ID, true)
	require.NoError(t, err)

	state := g.PublicView()
	assert.Equal(t, consts.PhaseElection, state.Phase)
	assert.Equal(t, chancellor.ID, state.ChancellorID)
	// Who voted is public while the ballots are still secret.
	assert.Equal(t, []string{voter.ID}, state.VotesSubmitted)
	assert.Equal(t, 17, state.DeckRemaining+state.DeckDiscarded)
}
