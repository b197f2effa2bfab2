package game

import (
	"github.com/shadowgov/server/consts"
)

func (g *Game) validatePower(presidentID string, power Power) error {
	if err := g.validate(presidentID, consts.PhasePresidentialPower); err != nil {
		return err
	}
	if presidentID != g.Election.PresidentID {
		return consts.ErrorsNotPlayerTurn
	}
	if g.PendingPower != power {
		return consts.ErrorsInvalidAction
	}
	return nil
}

// InvestigateLoyalty reveals the target's party membership to the president
// only. Each player may be investigated at most once per match.
func (g *Game) InvestigateLoyalty(presidentID, targetID string) (*Result, error) {
	g.Lock()
	defer g.Unlock()

	if err := g.validatePower(presidentID, PowerInvestigate); err != nil {
		return nil, err
	}
	target := g.PlayerByID(targetID)
	if target == nil || !target.Alive || targetID == presidentID || g.investigated[targetID] {
		return nil, consts.ErrorsInvalidTarget
	}

	g.investigated[targetID] = true
	target.InvestigatedBy = presidentID

	event := g.appendEvent(consts.EventPresidentialPowerExecuted, map[string]interface{}{
		"power":    PowerInvestigate,
		"targetId": targetID,
	})
	g.emitChatTrigger("player_investigated", presidentID, map[string]interface{}{
		"targetId": targetID,
	})
	g.completePower()
	return g.result("investigation_complete", event, map[string]interface{}{
		"targetId": targetID,
		"party":    target.Role.Party(),
	}), nil
}

// CallSpecialElection names the next president out of seating order for one
// round. Afterwards rotation resumes from the seat that would have been next
// had the special election not happened.
func (g *Game) CallSpecialElection(presidentID, targetID string) (*Result, error) {
	g.Lock()
	defer g.Unlock()

	if err := g.validatePower(presidentID, PowerSpecialElection); err != nil {
		return nil, err
	}
	target := g.PlayerByID(targetID)
	if target == nil || !target.Alive || targetID == presidentID {
		return nil, consts.ErrorsInvalidTarget
	}

	g.specialPresident = targetID
	event := g.appendEvent(consts.EventPresidentialPowerExecuted, map[string]interface{}{
		"power":    PowerSpecialElection,
		"targetId": targetID,
	})
	g.completePower()
	return g.result("special_election_called", event, nil), nil
}

// PolicyPeek shows the president the top three deck cards without drawing.
func (g *Game) PolicyPeek(presidentID string) (*Result, error) {
	g.Lock()
	defer g.Unlock()

	if err := g.validatePower(presidentID, PowerPolicyPeek); err != nil {
		return nil, err
	}

	cards := g.Deck.Peek(3)
	event := g.appendEvent(consts.EventPresidentialPowerExecuted, map[string]interface{}{
		"power": PowerPolicyPeek,
	})
	g.completePower()
	return g.result("policies_peeked", event, map[string]interface{}{
		"policies": cards,
	}), nil
}

// Execute kills the target. Executing Hitler ends the game immediately with
// a liberal victory.
func (g *Game) Execute(presidentID, targetID string) (*Result, error) {
	g.Lock()
	defer g.Unlock()

	if err := g.validatePower(presidentID, PowerExecution); err != nil {
		return nil, err
	}
	target := g.PlayerByID(targetID)
	if target == nil || !target.Alive || targetID == presidentID {
		return nil, consts.ErrorsInvalidTarget
	}

	target.Alive = false
	g.appendEvent(consts.EventPresidentialPowerExecuted, map[string]interface{}{
		"power":    PowerExecution,
		"targetId": targetID,
	})
	event := g.appendEvent(consts.EventPlayerEliminated, map[string]interface{}{
		"playerId": targetID,
	})
	g.emitChatTrigger("player_executed", presidentID, map[string]interface{}{
		"targetId": targetID,
	})

	if winner := g.evaluateWin(); winner != "" {
		g.gameOver(winner)
		return g.result("execution_complete", event, nil), nil
	}
	g.completePower()
	return g.result("execution_complete", event, nil), nil
}

func (g *Game) completePower() {
	g.PendingPower = PowerNone
	g.nextRound()
}

// EligiblePowerTargets lists the legal targets for the pending power.
func (g *Game) EligiblePowerTargets() []*Player {
	g.Lock()
	defer g.Unlock()
	var targets []*Player
	for _, p := range g.Players {
		if !p.Alive || p.ID == g.Election.PresidentID {
			continue
		}
		if g.PendingPower == PowerInvestigate && g.investigated[p.ID] {
			continue
		}
		targets = append(targets, p)
	}
	return targets
}
