package ai_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/shadowgov/server/ai"
	"github.com/shadowgov/server/consts"
	"github.com/shadowgov/server/game"
)

func electionResult(president, chancellor string, votes map[string]interface{}) game.Event {
	return game.Event{
		Type: consts.EventElectionResult,
		Data: map[string]interface{}{
			"passed":       true,
			"presidentId":  president,
			"chancellorId": chancellor,
			"votes":        votes,
		},
	}
}

func policyEnacted(policy game.Policy, forced bool) game.Event {
	data := map[string]interface{}{"policy": policy}
	if forced {
		data["forced"] = true
	}
	return game.Event{Type: consts.EventPolicyEnacted, Data: data}
}

func TestSuspicionTracking(t *testing.T) {
	votes := map[string]interface{}{"p1": true, "p2": true, "p3": false}

	t.Run("fascist_policies_taint_the_government", func(t *testing.T) {
		m := ai.NewMemory()
		m.ObserveEvent(electionResult("p1", "p2", votes))
		m.ObserveEvent(policyEnacted(game.PolicyFascist, false))

		assert.Greater(t, m.Suspicion("p1"), 0.5)
		assert.Greater(t, m.Suspicion("p2"), 0.5)
		// Nein voters take no blame.
		assert.Equal(t, 0.5, m.Suspicion("p3"))
	})

	t.Run("liberal_policies_build_trust", func(t *testing.T) {
		m := ai.NewMemory()
		m.ObserveEvent(electionResult("p1", "p2", votes))
		m.ObserveEvent(policyEnacted(game.PolicyLiberal, false))

		assert.Less(t, m.Suspicion("p1"), 0.5)
		assert.Less(t, m.Suspicion("p2"), 0.5)
	})

	t.Run("chaos_policies_blame_nobody", func(t *testing.T) {
		m := ai.NewMemory()
		m.ObserveEvent(electionResult("p1", "p2", votes))
		m.ObserveEvent(policyEnacted(game.PolicyFascist, true))

		assert.Equal(t, 0.5, m.Suspicion("p1"))
		assert.Equal(t, 0.5, m.Suspicion("p2"))
	})

	t.Run("policy_type_survives_a_json_round_trip", func(t *testing.T) {
		m := ai.NewMemory()
		m.ObserveEvent(electionResult("p1", "p2", votes))
		m.ObserveEvent(game.Event{
			Type: consts.EventPolicyEnacted,
			Data: map[string]interface{}{"policy": "fascist"},
		})
		assert.Greater(t, m.Suspicion("p1"), 0.5)
	})
}

func TestRevealGrantsCertainty(t *testing.T) {
	m := ai.NewMemory()
	m.Grant(game.Reveal{Fascists: []string{"f1"}, HitlerID: "h1"})

	assert.Equal(t, 1.0, m.Suspicion("f1"))
	assert.Equal(t, 1.0, m.Suspicion("h1"))
	assert.Equal(t, "h1", m.HitlerID)
	assert.Equal(t, 0.5, m.Suspicion("someone_else"))
}

func TestInvestigationsOverrideHearsay(t *testing.T) {
	m := ai.NewMemory()
	m.ObserveEvent(electionResult("p1", "p2", map[string]interface{}{"p1": true, "p2": true}))
	m.ObserveEvent(policyEnacted(game.PolicyFascist, false))
	assert.Greater(t, m.Suspicion("p1"), 0.5)

	m.RecordInvestigation("p1", game.PartyLiberal)
	assert.Equal(t, 0.0, m.Suspicion("p1"))

	m.RecordInvestigation("p2", game.PartyFascist)
	assert.Equal(t, 1.0, m.Suspicion("p2"))
}

func TestNominationHistory(t *testing.T) {
	m := ai.NewMemory()
	m.ObserveEvent(game.Event{
		Type: consts.EventChancellorNominated,
		Data: map[string]interface{}{"presidentId": "p1", "chancellorId": "p2"},
	})
	assert.Equal(t, []string{"p2"}, m.Nominations["p1"])
}
