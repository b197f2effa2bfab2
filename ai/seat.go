package ai

import (
	"math/rand"

	"github.com/shadowgov/server/game"
)

// Seat drives one autonomous player. It owns the seat's memory and
// strategy, and converts strategy output into actions the engine will
// accept: any illegal choice falls back to the first legal one, so an
// autonomous seat can never stall the game.
type Seat struct {
	PlayerID    string
	Personality Personality

	Memory   *Memory
	strategy Strategy
	rng      *rand.Rand
}

// NewSeat binds a strategy to a seat. The reveal payload seeds the memory
// with whatever role knowledge the rules grant.
func NewSeat(playerID string, role game.Role, personality Personality, reveal game.Reveal, seed int64) *Seat {
	rng := rand.New(rand.NewSource(seed))
	memory := NewMemory()
	memory.Grant(reveal)
	return &Seat{
		PlayerID:    playerID,
		Personality: personality,
		Memory:      memory,
		strategy:    NewStrategy(role, personality, rng),
		rng:         rng,
	}
}

// Observe feeds a public event into the seat's memory.
func (s *Seat) Observe(e game.Event) {
	s.Memory.ObserveEvent(e)
}

// NextAction produces the seat's action for the current state, or nil when
// the seat has nothing to do. The returned action is always legal.
func (s *Seat) NextAction(g *game.Game) *game.Action {
	actions := g.AvailableActions(s.PlayerID)
	if len(actions) == 0 {
		return nil
	}
	view := g.ViewFor(s.PlayerID)

	// Veto outranks enacting when both are on the table.
	if contains(actions, game.ActionRequestVeto) &&
		s.strategy.DecideVetoRequest(view, s.Memory, view.Hand) {
		return &game.Action{Type: game.ActionRequestVeto, ActorID: s.PlayerID}
	}

	for _, name := range actions {
		switch name {
		case game.ActionNominateChancellor:
			eligible := playerIDs(g.EligibleChancellors())
			if len(eligible) == 0 {
				return nil
			}
			choice := s.strategy.DecideNomination(view, s.Memory, eligible)
			return &game.Action{
				Type:     game.ActionNominateChancellor,
				ActorID:  s.PlayerID,
				TargetID: legalize(choice, eligible),
			}

		case game.ActionSubmitVote:
			return &game.Action{
				Type:    game.ActionSubmitVote,
				ActorID: s.PlayerID,
				Vote:    s.strategy.DecideVote(view, s.Memory),
			}

		case game.ActionDrawPolicies:
			return &game.Action{Type: game.ActionDrawPolicies, ActorID: s.PlayerID}

		case game.ActionDiscardPolicy:
			choice := s.strategy.ChoosePolicyToDiscard(view, s.Memory, view.Hand)
			return &game.Action{
				Type:    game.ActionDiscardPolicy,
				ActorID: s.PlayerID,
				Policy:  legalizePolicy(choice, view.Hand),
			}

		case game.ActionEnactPolicy:
			choice := s.strategy.ChoosePolicyToEnact(view, s.Memory, view.Hand)
			return &game.Action{
				Type:    game.ActionEnactPolicy,
				ActorID: s.PlayerID,
				Policy:  legalizePolicy(choice, view.Hand),
			}

		case game.ActionHandleVeto:
			return &game.Action{
				Type:    game.ActionHandleVeto,
				ActorID: s.PlayerID,
				Agree:   s.strategy.DecideVetoConsent(view, s.Memory),
			}

		case game.ActionInvestigate:
			eligible := playerIDs(g.EligiblePowerTargets())
			if len(eligible) == 0 {
				return nil
			}
			choice := s.strategy.ChooseInvestigationTarget(view, s.Memory, eligible)
			return &game.Action{
				Type:     game.ActionInvestigate,
				ActorID:  s.PlayerID,
				TargetID: legalize(choice, eligible),
			}

		case game.ActionSpecialElection:
			eligible := playerIDs(g.EligiblePowerTargets())
			if len(eligible) == 0 {
				return nil
			}
			choice := s.strategy.ChooseSpecialElectionNominee(view, s.Memory, eligible)
			return &game.Action{
				Type:     game.ActionSpecialElection,
				ActorID:  s.PlayerID,
				TargetID: legalize(choice, eligible),
			}

		case game.ActionPolicyPeek:
			return &game.Action{Type: game.ActionPolicyPeek, ActorID: s.PlayerID}

		case game.ActionExecute:
			eligible := playerIDs(g.EligiblePowerTargets())
			if len(eligible) == 0 {
				return nil
			}
			choice := s.strategy.ChooseExecutionTarget(view, s.Memory, eligible)
			return &game.Action{
				Type:     game.ActionExecute,
				ActorID:  s.PlayerID,
				TargetID: legalize(choice, eligible),
			}
		}
	}
	return nil
}

// WantsToChat decides whether the seat responds to a discussion
// opportunity, by personality chat frequency.
func (s *Seat) WantsToChat(trigger game.ChatTrigger) bool {
	if s.rng == nil {
		return false
	}
	return s.rng.Float64() < s.Personality.ChatFrequency
}

// legalize falls back to the first eligible choice when the strategy
// produced an ineligible one.
func legalize(choice string, eligible []string) string {
	if contains(eligible, choice) {
		return choice
	}
	return eligible[0]
}

func legalizePolicy(choice game.Policy, hand []game.Policy) game.Policy {
	if containsPolicy(hand, choice) {
		return choice
	}
	return hand[0]
}

func playerIDs(players []*game.Player) []string {
	ids := make([]string, 0, len(players))
	for _, p := range players {
		ids = append(ids, p.ID)
	}
	return ids
}
