package ai

import (
	"math/rand"

	"github.com/shadowgov/server/game"
)

// fascistStrategy advances the fascist track while steering suspicion onto
// liberals. It knows the other fascists and where Hitler sits.
type fascistStrategy struct {
	personality Personality
	rng         *rand.Rand
}

func (s *fascistStrategy) DecideNomination(v *game.PlayerView, m *Memory, eligible []string) string {
	// Hitler as chancellor wins at three fascist policies and is a
	// liability before that.
	if v.FascistTrack >= 3 && m.HitlerID != "" && contains(eligible, m.HitlerID) {
		return m.HitlerID
	}
	fellows := filter(eligible, func(id string) bool {
		return m.KnownFascists[id] && id != m.HitlerID
	})
	if len(fellows) > 0 {
		return fellows[s.rng.Intn(len(fellows))]
	}
	// Otherwise nominate a distrusted liberal so a fascist policy lands
	// on someone else's reputation.
	return mostSuspicious(m, eligible)
}

func (s *fascistStrategy) DecideVote(v *game.PlayerView, m *Memory) bool {
	chancellorIsHitler := v.ChancellorID == m.HitlerID && m.HitlerID != ""
	if chancellorIsHitler {
		return v.FascistTrack >= 3
	}
	if m.KnownFascists[v.PresidentID] || m.KnownFascists[v.ChancellorID] {
		return true
	}
	// Voting down clean governments advances the tracker toward chaos.
	return governmentSuspicion(v, m) > 0.6-0.2*s.personality.RiskTolerance
}

func (s *fascistStrategy) ChoosePolicyToDiscard(v *game.PlayerView, m *Memory, hand []game.Policy) game.Policy {
	if containsPolicy(hand, game.PolicyLiberal) {
		return game.PolicyLiberal
	}
	return hand[0]
}

func (s *fascistStrategy) ChoosePolicyToEnact(v *game.PlayerView, m *Memory, hand []game.Policy) game.Policy {
	if containsPolicy(hand, game.PolicyFascist) {
		// A deceptive fascist occasionally plays the liberal card early
		// to buy credibility.
		if containsPolicy(hand, game.PolicyLiberal) && v.FascistTrack < 2 &&
			s.rng.Float64() > s.personality.DeceptionPropensity {
			return game.PolicyLiberal
		}
		return game.PolicyFascist
	}
	return hand[0]
}

func (s *fascistStrategy) DecideVetoRequest(v *game.PlayerView, m *Memory, hand []game.Policy) bool {
	return !containsPolicy(hand, game.PolicyFascist)
}

func (s *fascistStrategy) DecideVetoConsent(v *game.PlayerView, m *Memory) bool {
	return m.KnownFascists[v.ChancellorID]
}

func (s *fascistStrategy) ChooseInvestigationTarget(v *game.PlayerView, m *Memory, eligible []string) string {
	// Investigating a liberal keeps the result boring and the president
	// looking honest.
	liberals := filter(eligible, func(id string) bool { return !m.KnownFascists[id] })
	if len(liberals) > 0 {
		return leastSuspicious(m, liberals)
	}
	return eligible[s.rng.Intn(len(eligible))]
}

func (s *fascistStrategy) ChooseExecutionTarget(v *game.PlayerView, m *Memory, eligible []string) string {
	liberals := filter(eligible, func(id string) bool { return !m.KnownFascists[id] })
	if len(liberals) > 0 {
		// The loudest accuser is the biggest threat.
		return mostSuspicious(m, liberals)
	}
	return eligible[s.rng.Intn(len(eligible))]
}

func (s *fascistStrategy) ChooseSpecialElectionNominee(v *game.PlayerView, m *Memory, eligible []string) string {
	fellows := filter(eligible, func(id string) bool { return m.KnownFascists[id] && id != m.HitlerID })
	if len(fellows) > 0 {
		return fellows[s.rng.Intn(len(fellows))]
	}
	return leastSuspicious(m, eligible)
}
