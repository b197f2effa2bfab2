package ai

import (
	"math/rand"

	"github.com/shadowgov/server/game"
)

// liberalStrategy plays the information game straight: trust the least
// suspicious, block fascist policies whenever the cards allow it.
type liberalStrategy struct {
	personality Personality
	rng         *rand.Rand
}

func (s *liberalStrategy) DecideNomination(v *game.PlayerView, m *Memory, eligible []string) string {
	return leastSuspicious(m, eligible)
}

func (s *liberalStrategy) DecideVote(v *game.PlayerView, m *Memory) bool {
	// Risk-tolerant liberals accept shakier governments to keep the
	// tracker down; cautious ones hold out for clean ones.
	threshold := 0.5 + 0.2*s.personality.RiskTolerance
	if v.ElectionTracker == 2 {
		// A third failure hands the top card to chaos.
		threshold += 0.2
	}
	return governmentSuspicion(v, m) < threshold
}

func (s *liberalStrategy) ChoosePolicyToDiscard(v *game.PlayerView, m *Memory, hand []game.Policy) game.Policy {
	if containsPolicy(hand, game.PolicyFascist) {
		return game.PolicyFascist
	}
	return hand[0]
}

func (s *liberalStrategy) ChoosePolicyToEnact(v *game.PlayerView, m *Memory, hand []game.Policy) game.Policy {
	if containsPolicy(hand, game.PolicyLiberal) {
		return game.PolicyLiberal
	}
	return hand[0]
}

func (s *liberalStrategy) DecideVetoRequest(v *game.PlayerView, m *Memory, hand []game.Policy) bool {
	return !containsPolicy(hand, game.PolicyLiberal)
}

func (s *liberalStrategy) DecideVetoConsent(v *game.PlayerView, m *Memory) bool {
	// Agreeing burns an election; only worth it when the chancellor is
	// probably stuck with fascist cards and trusted to say so.
	return m.Suspicion(v.ChancellorID) < 0.4
}

func (s *liberalStrategy) ChooseInvestigationTarget(v *game.PlayerView, m *Memory, eligible []string) string {
	return mostSuspicious(m, eligible)
}

func (s *liberalStrategy) ChooseExecutionTarget(v *game.PlayerView, m *Memory, eligible []string) string {
	return mostSuspicious(m, eligible)
}

func (s *liberalStrategy) ChooseSpecialElectionNominee(v *game.PlayerView, m *Memory, eligible []string) string {
	return leastSuspicious(m, eligible)
}
