package ai

import (
	"math/rand"

	"github.com/shadowgov/server/game"
)

// hitlerStrategy plays liberal in public. In large games Hitler does not
// even know the fascists, so the cover is mostly genuine; the mask slips
// only where the payoff is the game.
type hitlerStrategy struct {
	personality Personality
	rng         *rand.Rand
}

func (s *hitlerStrategy) DecideNomination(v *game.PlayerView, m *Memory, eligible []string) string {
	return leastSuspicious(m, eligible)
}

func (s *hitlerStrategy) DecideVote(v *game.PlayerView, m *Memory) bool {
	// Being elected chancellor at three fascist policies is the win.
	if v.ChancellorID == v.YourID && v.FascistTrack >= 3 {
		return true
	}
	return governmentSuspicion(v, m) < 0.5+0.2*s.personality.RiskTolerance
}

func (s *hitlerStrategy) ChoosePolicyToDiscard(v *game.PlayerView, m *Memory, hand []game.Policy) game.Policy {
	if containsPolicy(hand, game.PolicyLiberal) {
		return game.PolicyLiberal
	}
	return hand[0]
}

func (s *hitlerStrategy) ChoosePolicyToEnact(v *game.PlayerView, m *Memory, hand []game.Policy) game.Policy {
	// A sixth fascist policy wins outright; no point in cover then.
	if v.FascistTrack >= 5 && containsPolicy(hand, game.PolicyFascist) {
		return game.PolicyFascist
	}
	// Enacting liberal as chancellor is the cheapest cover available.
	if containsPolicy(hand, game.PolicyLiberal) && s.rng.Float64() > s.personality.DeceptionPropensity {
		return game.PolicyLiberal
	}
	if containsPolicy(hand, game.PolicyFascist) {
		return game.PolicyFascist
	}
	return hand[0]
}

func (s *hitlerStrategy) DecideVetoRequest(v *game.PlayerView, m *Memory, hand []game.Policy) bool {
	return !containsPolicy(hand, game.PolicyLiberal)
}

func (s *hitlerStrategy) DecideVetoConsent(v *game.PlayerView, m *Memory) bool {
	return false
}

func (s *hitlerStrategy) ChooseInvestigationTarget(v *game.PlayerView, m *Memory, eligible []string) string {
	return mostSuspicious(m, eligible)
}

func (s *hitlerStrategy) ChooseExecutionTarget(v *game.PlayerView, m *Memory, eligible []string) string {
	// Execute the player most likely to finger Hitler.
	return mostSuspicious(m, eligible)
}

func (s *hitlerStrategy) ChooseSpecialElectionNominee(v *game.PlayerView, m *Memory, eligible []string) string {
	if len(m.KnownFascists) > 0 {
		fellows := filter(eligible, func(id string) bool { return m.KnownFascists[id] })
		if len(fellows) > 0 {
			return fellows[s.rng.Intn(len(fellows))]
		}
	}
	return leastSuspicious(m, eligible)
}
