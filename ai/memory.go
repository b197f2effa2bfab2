package ai

import (
	"github.com/shadowgov/server/consts"
	"github.com/shadowgov/server/game"
)

// Memory is one seat's private record of what it has observed. It is fed
// public events plus whatever private payloads the seat legitimately
// received; it never reads the authoritative state directly.
type Memory struct {
	VotingHistory  map[string][]bool
	Nominations    map[string][]string
	PolicyClaims   map[string][]game.Policy
	Investigations map[string]game.Party
	KnownFascists  map[string]bool
	HitlerID       string

	suspicion map[string]float64

	// lastGovernment tracks whose legislative session is in flight so a
	// fascist enactment can be attributed.
	lastGovernment [2]string
	lastJaVoters   []string
}

func NewMemory() *Memory {
	return &Memory{
		VotingHistory:  map[string][]bool{},
		Nominations:    map[string][]string{},
		PolicyClaims:   map[string][]game.Policy{},
		Investigations: map[string]game.Party{},
		KnownFascists:  map[string]bool{},
		suspicion:      map[string]float64{},
	}
}

// Grant stores the role-reveal payload: fascists learn each other.
func (m *Memory) Grant(reveal game.Reveal) {
	for _, id := range reveal.Fascists {
		m.KnownFascists[id] = true
	}
	if reveal.HitlerID != "" {
		m.HitlerID = reveal.HitlerID
		m.KnownFascists[reveal.HitlerID] = true
	}
}

// RecordInvestigation stores a party membership this seat saw itself.
func (m *Memory) RecordInvestigation(targetID string, party game.Party) {
	m.Investigations[targetID] = party
	if party == game.PartyFascist {
		m.bumpSuspicion(targetID, 0.4)
	} else {
		m.bumpSuspicion(targetID, -0.4)
	}
}

// RecordClaim stores a self-reported policy claim for later contradiction.
func (m *Memory) RecordClaim(playerID string, policies []game.Policy) {
	m.PolicyClaims[playerID] = append(m.PolicyClaims[playerID], policies...)
}

// ObserveEvent folds one public event into the memory.
func (m *Memory) ObserveEvent(e game.Event) {
	switch e.Type {
	case consts.EventChancellorNominated:
		president, _ := e.Data["presidentId"].(string)
		chancellor, _ := e.Data["chancellorId"].(string)
		m.Nominations[president] = append(m.Nominations[president], chancellor)

	case consts.EventElectionResult:
		passed, _ := e.Data["passed"].(bool)
		votes, _ := e.Data["votes"].(map[string]interface{})
		m.lastJaVoters = m.lastJaVoters[:0]
		for id, v := range votes {
			ja, _ := v.(bool)
			m.VotingHistory[id] = append(m.VotingHistory[id], ja)
			if ja {
				m.lastJaVoters = append(m.lastJaVoters, id)
			}
		}
		if passed {
			president, _ := e.Data["presidentId"].(string)
			chancellor, _ := e.Data["chancellorId"].(string)
			m.lastGovernment = [2]string{president, chancellor}
		}

	case consts.EventPolicyEnacted:
		var policy game.Policy
		switch v := e.Data["policy"].(type) {
		case game.Policy:
			policy = v
		case string:
			policy = game.Policy(v)
		}
		if forced, _ := e.Data["forced"].(bool); forced {
			return
		}
		if policy == game.PolicyFascist {
			m.bumpSuspicion(m.lastGovernment[0], 0.15)
			m.bumpSuspicion(m.lastGovernment[1], 0.15)
			for _, id := range m.lastJaVoters {
				m.bumpSuspicion(id, 0.05)
			}
		} else {
			m.bumpSuspicion(m.lastGovernment[0], -0.1)
			m.bumpSuspicion(m.lastGovernment[1], -0.1)
		}
	}
}

// Suspicion reports how likely this seat thinks a player is fascist,
// 0 clean to 1 certain, defaulting to an even 0.5.
func (m *Memory) Suspicion(playerID string) float64 {
	if m.KnownFascists[playerID] {
		return 1
	}
	if party, ok := m.Investigations[playerID]; ok {
		if party == game.PartyFascist {
			return 1
		}
		return 0
	}
	if s, ok := m.suspicion[playerID]; ok {
		return s
	}
	return 0.5
}

func (m *Memory) bumpSuspicion(playerID string, delta float64) {
	if playerID == "" {
		return
	}
	s, ok := m.suspicion[playerID]
	if !ok {
		s = 0.5
	}
	s += delta
	if s < 0 {
		s = 0
	}
	if s > 1 {
		s = 1
	}
	m.suspicion[playerID] = s
}
