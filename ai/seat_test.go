package ai_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shadowgov/server/ai"
	"github.com/shadowgov/server/game"
)

// playMatch drives a fully autonomous game to the end, failing if any seat
// ever produces an illegal action or the game stops making progress.
func playMatch(t *testing.T, players int, seed int64) *game.Game {
	t.Helper()

	seats := make([]game.Seat, players)
	for i := range seats {
		seats[i] = game.Seat{Name: fmt.Sprintf("Bot %d", i+1)}
	}
	g := game.New("sim", seats, game.DefaultRules(), seed)
	result, err := g.Start()
	require.NoError(t, err)

	reveals, ok := result.Data["reveals"].(map[string]interface{})
	require.True(t, ok)

	bots := make([]*ai.Seat, 0, players)
	for i, p := range g.Players {
		reveal, ok := reveals[p.ID].(game.Reveal)
		require.True(t, ok)
		personality := ai.Personalities[i%len(ai.Personalities)]
		bots = append(bots, ai.NewSeat(p.ID, reveal.Role, personality, reveal, seed+int64(i)+1))
	}

	cursor := 0
	flush := func() {
		events := g.Events()
		for ; cursor < len(events); cursor++ {
			for _, bot := range bots {
				bot.Observe(events[cursor])
			}
		}
	}
	flush()

	for step := 0; step < 5000 && !g.IsGameOver(); step++ {
		progressed := false
		for _, bot := range bots {
			action := bot.NextAction(g)
			if action == nil {
				continue
			}
			res, err := g.Apply(*action)
			require.NoError(t, err, "seat %s action %s", bot.PlayerID, action.Type)
			if action.Type == game.ActionInvestigate {
				if party, ok := res.Data["party"].(game.Party); ok {
					bot.Memory.RecordInvestigation(action.TargetID, party)
				}
			}
			flush()
			progressed = true
			if g.IsGameOver() {
				break
			}
		}
		require.True(t, progressed, "no seat could act but the game is not over")
	}

	require.True(t, g.IsGameOver(), "match did not terminate")
	return g
}

func TestAutonomousMatchesRunToCompletion(t *testing.T) {
	for _, players := range []int{5, 7, 10} {
		for seed := int64(1); seed <= 5; seed++ {
			t.Run(fmt.Sprintf("%d_players_seed_%d", players, seed), func(t *testing.T) {
				g := playMatch(t, players, seed)
				assert.NotEmpty(t, g.GetWinner())
			})
		}
	}
}

func TestSeatActsOnlyOnItsTurn(t *testing.T) {
	seats := make([]game.Seat, 5)
	for i := range seats {
		seats[i] = game.Seat{Name: fmt.Sprintf("Bot %d", i+1)}
	}
	g := game.New("sim", seats, game.DefaultRules(), 77)
	result, err := g.Start()
	require.NoError(t, err)

	reveals := result.Data["reveals"].(map[string]interface{})
	presID := g.PublicView().PresidentID
	for _, p := range g.Players {
		reveal := reveals[p.ID].(game.Reveal)
		bot := ai.NewSeat(p.ID, reveal.Role, ai.QuietObserver, reveal, 78)
		action := bot.NextAction(g)
		if p.ID == presID {
			require.NotNil(t, action)
			assert.Equal(t, game.ActionNominateChancellor, action.Type)
		} else {
			assert.Nil(t, action)
		}
	}
}
