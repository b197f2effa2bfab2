package game

import (
	"github.com/shadowgov/server/consts"
)

// Result describes one processed action: the status string, the event the
// mutation emitted, the resulting public state, and any actor-private data
// (drawn cards, investigation results).
type Result struct {
	Status string                 `json:"status"`
	Event  *Event                 `json:"event,omitempty"`
	State  *PublicState           `json:"state"`
	Data   map[string]interface{} `json:"data,omitempty"`
}

func (g *Game) result(status string, event *Event, data map[string]interface{}) *Result {
	return &Result{
		Status: status,
		Event:  event,
		State:  g.publicState(),
		Data:   data,
	}
}

// Start deals roles, shuffles the policy deck and opens the first election.
// The role reveal is informational: reveal payloads are produced per player
// and the machine moves straight on to the election phase.
func (g *Game) Start() (*Result, error) {
	g.Lock()
	defer g.Unlock()

	if g.Phase != consts.PhaseLobby {
		return nil, consts.ErrorsWrongPhase
	}
	if len(g.Players) < consts.MinPlayers || len(g.Players) > consts.MaxPlayers {
		return nil, consts.ErrorsInvalidRosterSize
	}

	g.rosterSize = len(g.Players)
	g.assignRoles()
	g.Deck = NewDeck(g.rules.LiberalPolicies, g.rules.FascistPolicies, g.rng)

	g.transitionTo(consts.PhaseRoleReveal)
	event := g.appendEvent(consts.EventGameStarted, map[string]interface{}{
		"playerCount": len(g.Players),
	})

	reveals := map[string]interface{}{}
	for _, p := range g.Players {
		reveals[p.ID] = g.revealFor(p)
	}

	g.presidentIdx = g.rng.Intn(len(g.Players))
	g.Election.PresidentID = g.Players[g.presidentIdx].ID
	g.transitionTo(consts.PhaseElection)
	g.emitChatTrigger("game_started", "", nil)

	return g.result("game_started", event, map[string]interface{}{
		"reveals": reveals,
	}), nil
}

func (g *Game) assignRoles() {
	roles := g.rules.RoleSet(len(g.Players))
	g.rng.Shuffle(len(roles), func(i, j int) {
		roles[i], roles[j] = roles[j], roles[i]
	})
	for i, p := range g.Players {
		p.Role = roles[i]
	}
}

// AvailableActions lists the action names currently legal for a player.
func (g *Game) AvailableActions(playerID string) []string {
	g.Lock()
	defer g.Unlock()

	player := g.PlayerByID(playerID)
	if player == nil || !player.Alive || g.isGameOver() {
		return nil
	}

	var actions []string
	switch g.Phase {
	case consts.PhaseLobby:
		actions = append(actions, ActionStartGame)
	case consts.PhaseElection:
		if g.Election.ChancellorID == "" {
			if playerID == g.Election.PresidentID {
				actions = append(actions, ActionNominateChancellor)
			}
		} else if _, voted := g.Election.Votes[playerID]; !voted {
			actions = append(actions, ActionSubmitVote)
		}
	case consts.PhaseLegislativeSession:
		switch {
		case g.Legislative.VetoRequested:
			if playerID == g.Election.PresidentID {
				actions = append(actions, ActionHandleVeto)
			}
		case len(g.Legislative.Hand) == 0:
			if playerID == g.Election.PresidentID {
				actions = append(actions, ActionDrawPolicies)
			}
		case len(g.Legislative.Hand) == 3:
			if playerID == g.Election.PresidentID {
				actions = append(actions, ActionDiscardPolicy)
			}
		case len(g.Legislative.Hand) == 2:
			if playerID == g.Election.ChancellorID {
				actions = append(actions, ActionEnactPolicy)
				if g.vetoAvailable() {
					actions = append(actions, ActionRequestVeto)
				}
			}
		}
	case consts.PhasePresidentialPower:
		if playerID == g.Election.PresidentID {
			switch g.PendingPower {
			case PowerInvestigate:
				actions = append(actions, ActionInvestigate)
			case PowerSpecialElection:
				actions = append(actions, ActionSpecialElection)
			case PowerPolicyPeek:
				actions = append(actions, ActionPolicyPeek)
			case PowerExecution:
				actions = append(actions, ActionExecute)
			}
		}
	}
	return actions
}

// nextRound opens a new election. A pending special election names the
// president once; the seating-order pointer is left untouched during the
// special round so rotation resumes where it would have anyway.
func (g *Game) nextRound() {
	if g.specialPresident != "" {
		g.Election.PresidentID = g.specialPresident
		g.specialPresident = ""
	} else {
		g.presidentIdx = g.nextLivingIdx(g.presidentIdx)
		g.Election.PresidentID = g.Players[g.presidentIdx].ID
	}
	g.Election.ChancellorID = ""
	g.Election.Votes = map[string]bool{}
	g.Legislative = LegislativeState{}
	g.PendingPower = PowerNone
	g.transitionTo(consts.PhaseElection)
}
