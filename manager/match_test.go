package manager

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shadowgov/server/game"
)

func TestRecordClaimReachesAutonomousSeats(t *testing.T) {
	m := New(game.DefaultRules(), nil)
	match, err := m.CreateMatch([]string{"alice"}, 5, 5)
	require.NoError(t, err)
	_, err = match.Start()
	require.NoError(t, err)

	var human string
	for _, p := range match.Game.Players {
		if p.Human {
			human = p.ID
		}
	}
	require.NotEmpty(t, human)

	claim := []game.Policy{game.PolicyLiberal, game.PolicyLiberal, game.PolicyFascist}
	match.RecordClaim(human, claim)

	require.Len(t, match.seats, 4)
	for _, seat := range match.seats {
		assert.Equal(t, claim, seat.Memory.PolicyClaims[human])
	}
}

func TestRecordClaimSkipsTheClaimant(t *testing.T) {
	m := New(game.DefaultRules(), nil)
	match, err := m.CreateMatch(nil, 5, 6)
	require.NoError(t, err)
	_, err = match.Start()
	require.NoError(t, err)

	var claimant string
	for id := range match.seats {
		claimant = id
		break
	}
	match.RecordClaim(claimant, []game.Policy{game.PolicyLiberal})

	assert.Empty(t, match.seats[claimant].Memory.PolicyClaims[claimant])
	for id, seat := range match.seats {
		if id == claimant {
			continue
		}
		assert.NotEmpty(t, seat.Memory.PolicyClaims[claimant])
	}
}
