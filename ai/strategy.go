package ai

import (
	"math/rand"

	"github.com/shadowgov/server/game"
)

// Strategy is the capability set every role plays with. Implementations
// receive only the seat's own view and memory, never the hidden state.
type Strategy interface {
	DecideNomination(v *game.PlayerView, m *Memory, eligible []string) string
	DecideVote(v *game.PlayerView, m *Memory) bool
	ChoosePolicyToDiscard(v *game.PlayerView, m *Memory, hand []game.Policy) game.Policy
	ChoosePolicyToEnact(v *game.PlayerView, m *Memory, hand []game.Policy) game.Policy
	DecideVetoRequest(v *game.PlayerView, m *Memory, hand []game.Policy) bool
	DecideVetoConsent(v *game.PlayerView, m *Memory) bool
	ChooseInvestigationTarget(v *game.PlayerView, m *Memory, eligible []string) string
	ChooseExecutionTarget(v *game.PlayerView, m *Memory, eligible []string) string
	ChooseSpecialElectionNominee(v *game.PlayerView, m *Memory, eligible []string) string
}

// NewStrategy selects the strategy variant for a role and personality pair.
func NewStrategy(role game.Role, personality Personality, rng *rand.Rand) Strategy {
	switch role {
	case game.RoleFascist:
		return &fascistStrategy{personality: personality, rng: rng}
	case game.RoleHitler:
		return &hitlerStrategy{personality: personality, rng: rng}
	default:
		return &liberalStrategy{personality: personality, rng: rng}
	}
}

func leastSuspicious(m *Memory, ids []string) string {
	if len(ids) == 0 {
		return ""
	}
	best := ids[0]
	for _, id := range ids[1:] {
		if m.Suspicion(id) < m.Suspicion(best) {
			best = id
		}
	}
	return best
}

func mostSuspicious(m *Memory, ids []string) string {
	if len(ids) == 0 {
		return ""
	}
	best := ids[0]
	for _, id := range ids[1:] {
		if m.Suspicion(id) > m.Suspicion(best) {
			best = id
		}
	}
	return best
}

func governmentSuspicion(v *game.PlayerView, m *Memory) float64 {
	return (m.Suspicion(v.PresidentID) + m.Suspicion(v.ChancellorID)) / 2
}

func contains(ids []string, id string) bool {
	for _, candidate := range ids {
		if candidate == id {
			return true
		}
	}
	return false
}

func containsPolicy(hand []game.Policy, policy game.Policy) bool {
	for _, card := range hand {
		if card == policy {
			return true
		}
	}
	return false
}

func filter(ids []string, keep func(string) bool) []string {
	var out []string
	for _, id := range ids {
		if keep(id) {
			out = append(out, id)
		}
	}
	return out
}
