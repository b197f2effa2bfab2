package game

import (
	"github.com/shadowgov/server/consts"
)

// NominateChancellor records the president's chancellor candidate and opens
// the voting window.
func (g *Game) NominateChancellor(presidentID, chancellorID string) (*Result, error) {
	g.Lock()
	defer g.Unlock()

	if err := g.validate(presidentID, consts.PhaseElection); err != nil {
		return nil, err
	}
	if presidentID != g.Election.PresidentID {
		return nil, consts.ErrorsNotPlayerTurn
	}
	if g.Election.ChancellorID != "" {
		return nil, consts.ErrorsInvalidAction
	}
	if !g.chancellorEligible(chancellorID) {
		return nil, consts.ErrorsInvalidTarget
	}

	g.Election.ChancellorID = chancellorID
	g.Election.Votes = map[string]bool{}

	event := g.appendEvent(consts.EventChancellorNominated, map[string]interface{}{
		"presidentId":  presidentID,
		"chancellorId": chancellorID,
	})
	g.emitChatTrigger("chancellor_nominated", presidentID, map[string]interface{}{
		"chancellorId": chancellorID,
	})
	return g.result("nomination_recorded", event, nil), nil
}

func (g *Game) chancellorEligible(id string) bool {
	candidate := g.PlayerByID(id)
	if candidate == nil || !candidate.Alive || id == g.Election.PresidentID {
		return false
	}
	if id == g.Election.LastChancellorID {
		return false
	}
	if id == g.Election.LastPresidentID {
		// With five or fewer players left only the last chancellor is
		// term-limited.
		if g.rules.RelaxTermLimits && g.livingCount() <= 5 {
			return true
		}
		return false
	}
	return true
}

// EligibleChancellors lists the players the current president may nominate.
func (g *Game) EligibleChancellors() []*Player {
	g.Lock()
	defer g.Unlock()
	var eligible []*Player
	for _, p := range g.Players {
		if g.chancellorEligible(p.ID) {
			eligible = append(eligible, p)
		}
	}
	return eligible
}

// SubmitVote records a living player's vote. A repeated vote overwrites the
// earlier one, so client retries are harmless. The election resolves the
// moment the last outstanding living voter's ballot lands.
func (g *Game) SubmitVote(playerID string, vote bool) (*Result, error) {
	g.Lock()
	defer g.Unlock()

	if err := g.validate(playerID, consts.PhaseElection); err != nil {
		return nil, err
	}
	if g.Election.ChancellorID == "" {
		return nil, consts.ErrorsInvalidAction
	}

	g.Election.Votes[playerID] = vote
	event := g.appendEvent(consts.EventVoteSubmitted, map[string]interface{}{
		"playerId": playerID,
	})

	if len(g.Election.Votes) < g.livingCount() {
		return g.result("vote_recorded", event, nil), nil
	}
	return g.resolveElection()
}

func (g *Game) resolveElection() (*Result, error) {
	votes := g.Election.Votes
	ja := 0
	for _, v := range votes {
		if v {
			ja++
		}
	}
	passed := ja*2 > len(votes)

	ballots := map[string]interface{}{}
	for id, v := range votes {
		ballots[id] = v
	}

	if passed {
		return g.formGovernment(ballots)
	}
	return g.failElection(ballots)
}

func (g *Game) formGovernment(ballots map[string]interface{}) (*Result, error) {
	g.Governments = append(g.Governments, [2]string{g.Election.PresidentID, g.Election.ChancellorID})
	g.Election.LastPresidentID = g.Election.PresidentID
	g.Election.LastChancellorID = g.Election.ChancellorID
	g.Election.Tracker = 0

	event := g.appendEvent(consts.EventElectionResult, map[string]interface{}{
		"passed":       true,
		"presidentId":  g.Election.PresidentID,
		"chancellorId": g.Election.ChancellorID,
		"votes":        ballots,
	})

	// Hitler chancellor with three fascist policies ends the game before
	// any legislative session starts.
	if winner := g.evaluateWin(); winner != "" {
		g.gameOver(winner)
		return g.result("government_formed", event, nil), nil
	}

	g.transitionTo(consts.PhaseLegislativeSession)
	g.emitChatTrigger("government_formed", "", map[string]interface{}{
		"presidentId":  g.Election.PresidentID,
		"chancellorId": g.Election.ChancellorID,
	})
	return g.result("government_formed", event, nil), nil
}

func (g *Game) failElection(ballots map[string]interface{}) (*Result, error) {
	g.Election.Tracker++
	event := g.appendEvent(consts.EventElectionResult, map[string]interface{}{
		"passed":  false,
		"tracker": g.Election.Tracker,
		"votes":   ballots,
	})

	if g.Election.Tracker >= g.rules.TrackerLimit {
		g.enactChaosPolicy()
		if g.isGameOver() {
			return g.result("election_failed", event, nil), nil
		}
	}
	g.nextRound()
	return g.result("election_failed", event, nil), nil
}

// enactChaosPolicy enacts the top deck card after three failed elections.
// No presidential power triggers, the tracker resets and the populace
// forgets the term limits.
func (g *Game) enactChaosPolicy() {
	policy := g.Deck.DrawOne()
	switch policy {
	case PolicyLiberal:
		g.Tracks.Liberal++
	case PolicyFascist:
		g.Tracks.Fascist++
	}
	g.Election.Tracker = 0
	g.Election.LastPresidentID = ""
	g.Election.LastChancellorID = ""

	g.appendEvent(consts.EventPolicyEnacted, map[string]interface{}{
		"policy": policy,
		"forced": true,
	})
	g.emitChatTrigger("chaos_policy", "", map[string]interface{}{
		"policy": policy,
	})

	if winner := g.evaluateWin(); winner != "" {
		g.gameOver(winner)
	}
}
