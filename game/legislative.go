package game

import (
	"github.com/shadowgov/server/consts"
)

// DrawPolicies hands the top three cards to the president. The cards are
// returned in the result data for the president's eyes only; the public
// event carries just the count.
func (g *Game) DrawPolicies(presidentID string) (*Result, error) {
	g.Lock()
	defer g.Unlock()

	if err := g.validate(presidentID, consts.PhaseLegislativeSession); err != nil {
		return nil, err
	}
	if presidentID != g.Election.PresidentID {
		return nil, consts.ErrorsNotPlayerTurn
	}
	if len(g.Legislative.Hand) != 0 {
		return nil, consts.ErrorsInvalidAction
	}

	g.Legislative.Hand = g.Deck.Draw(3)
	event := g.appendEvent(consts.EventPolicyDrawn, map[string]interface{}{
		"presidentId": presidentID,
		"count":       len(g.Legislative.Hand),
	})
	return g.result("policies_drawn", event, map[string]interface{}{
		"policies": append([]Policy(nil), g.Legislative.Hand...),
	}), nil
}

// DiscardPolicy removes one card of the president's three. Which card was
// discarded stays hidden; only the fact of the discard is public.
func (g *Game) DiscardPolicy(presidentID string, policy Policy) (*Result, error) {
	g.Lock()
	defer g.Unlock()

	if err := g.validate(presidentID, consts.PhaseLegislativeSession); err != nil {
		return nil, err
	}
	if presidentID != g.Election.PresidentID {
		return nil, consts.ErrorsNotPlayerTurn
	}
	if len(g.Legislative.Hand) != 3 {
		return nil, consts.ErrorsInvalidAction
	}
	if !g.removeFromHand(policy) {
		return nil, consts.ErrorsInvalidAction
	}

	g.Deck.Discard(policy)
	event := g.appendEvent(consts.EventPolicyDiscarded, map[string]interface{}{
		"presidentId": presidentID,
	})
	return g.result("policy_discarded", event, map[string]interface{}{
		"policies": append([]Policy(nil), g.Legislative.Hand...),
	}), nil
}

// EnactPolicy commits the chancellor's choice: one track advances, the
// unchosen card is discarded, and any unlocked presidential power opens.
func (g *Game) EnactPolicy(chancellorID string, policy Policy) (*Result, error) {
	g.Lock()
	defer g.Unlock()

	if err := g.validate(chancellorID, consts.PhaseLegislativeSession); err != nil {
		return nil, err
	}
	if chancellorID != g.Election.ChancellorID {
		return nil, consts.ErrorsNotPlayerTurn
	}
	if len(g.Legislative.Hand) != 2 || g.Legislative.VetoRequested {
		return nil, consts.ErrorsInvalidAction
	}
	if !g.removeFromHand(policy) {
		return nil, consts.ErrorsInvalidAction
	}

	g.Deck.Discard(g.Legislative.Hand...)
	g.Legislative.Hand = nil

	switch policy {
	case PolicyLiberal:
		g.Tracks.Liberal++
	case PolicyFascist:
		g.Tracks.Fascist++
	}

	event := g.appendEvent(consts.EventPolicyEnacted, map[string]interface{}{
		"chancellorId": chancellorID,
		"policy":       policy,
	})
	g.emitChatTrigger("policy_enacted", "", map[string]interface{}{
		"policy": policy,
	})

	if winner := g.evaluateWin(); winner != "" {
		g.gameOver(winner)
		return g.result("policy_enacted", event, nil), nil
	}

	if policy == PolicyFascist {
		if power := g.rules.PowerAt(g.rosterSize, g.Tracks.Fascist); power != PowerNone {
			g.PendingPower = power
			g.transitionTo(consts.PhasePresidentialPower)
			g.appendEvent(consts.EventPresidentialPowerTriggered, map[string]interface{}{
				"power":       power,
				"presidentId": g.Election.PresidentID,
			})
			return g.result("power_triggered", event, map[string]interface{}{
				"power": power,
			}), nil
		}
	}

	g.nextRound()
	return g.result("policy_enacted", event, nil), nil
}

// RequestVeto records the chancellor's wish to discard both cards. Only
// available once the fascist track unlocks veto power, and only once per
// legislative session.
func (g *Game) RequestVeto(chancellorID string) (*Result, error) {
	g.Lock()
	defer g.Unlock()

	if err := g.validate(chancellorID, consts.PhaseLegislativeSession); err != nil {
		return nil, err
	}
	if chancellorID != g.Election.ChancellorID {
		return nil, consts.ErrorsNotPlayerTurn
	}
	if len(g.Legislative.Hand) != 2 || !g.vetoAvailable() {
		return nil, consts.ErrorsInvalidAction
	}

	g.Legislative.VetoRequested = true
	event := g.appendEvent(consts.EventVetoRequested, map[string]interface{}{
		"chancellorId": chancellorID,
	})
	g.emitChatTrigger("veto_requested", chancellorID, nil)
	return g.result("veto_requested", event, nil), nil
}

// HandleVeto is the president's answer to a veto request. Agreement discards
// both cards unenacted and advances the election tracker as a failed
// election would; refusal forces the chancellor to enact.
func (g *Game) HandleVeto(presidentID string, agree bool) (*Result, error) {
	g.Lock()
	defer g.Unlock()

	if err := g.validate(presidentID, consts.PhaseLegislativeSession); err != nil {
		return nil, err
	}
	if presidentID != g.Election.PresidentID {
		return nil, consts.ErrorsNotPlayerTurn
	}
	if !g.Legislative.VetoRequested {
		return nil, consts.ErrorsInvalidAction
	}

	g.Legislative.VetoRequested = false
	event := g.appendEvent(consts.EventVetoResolved, map[string]interface{}{
		"presidentId": presidentID,
		"approved":    agree,
	})

	if !agree {
		g.Legislative.VetoSpent = true
		return g.result("veto_refused", event, nil), nil
	}

	g.Deck.Discard(g.Legislative.Hand...)
	g.Legislative.Hand = nil
	g.Election.Tracker++

	if g.Election.Tracker >= g.rules.TrackerLimit {
		g.enactChaosPolicy()
		if g.isGameOver() {
			return g.result("veto_approved", event, nil), nil
		}
	}
	g.nextRound()
	return g.result("veto_approved", event, nil), nil
}

func (g *Game) vetoAvailable() bool {
	return g.Tracks.Fascist >= g.rules.VetoUnlock && !g.Legislative.VetoSpent
}

func (g *Game) removeFromHand(policy Policy) bool {
	for i, card := range g.Legislative.Hand {
		if card == policy {
			g.Legislative.Hand = append(g.Legislative.Hand[:i], g.Legislative.Hand[i+1:]...)
			return true
		}
	}
	return false
}
