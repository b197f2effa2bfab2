package game

import (
	"github.com/shadowgov/server/consts"
)

// Action names accepted by Apply and reported by AvailableActions.
const (
	ActionStartGame          = "start_game"
	ActionNominateChancellor = "nominate_chancellor"
	ActionSubmitVote         = "submit_vote"
	ActionDrawPolicies       = "draw_policies"
	ActionDiscardPolicy      = "discard_policy"
	ActionEnactPolicy        = "enact_policy"
	ActionRequestVeto        = "request_veto"
	ActionHandleVeto         = "handle_veto"
	ActionInvestigate        = "investigate_loyalty"
	ActionSpecialElection    = "call_special_election"
	ActionPolicyPeek         = "policy_peek"
	ActionExecute            = "execute_player"
)

// Action is the discriminated action request: one type name, the acting
// player, and the payload fields the type needs.
type Action struct {
	Type     string `json:"type"`
	ActorID  string `json:"actorId"`
	TargetID string `json:"targetId,omitempty"`
	Policy   Policy `json:"policy,omitempty"`
	Vote     bool   `json:"vote,omitempty"`
	Agree    bool   `json:"agree,omitempty"`
}

// Apply dispatches one action into the engine. Every mutation of a running
// game funnels through here or through the named methods it calls.
func (g *Game) Apply(a Action) (*Result, error) {
	switch a.Type {
	case ActionStartGame:
		return g.Start()
	case ActionNominateChancellor:
		return g.NominateChancellor(a.ActorID, a.TargetID)
	case ActionSubmitVote:
		return g.SubmitVote(a.ActorID, a.Vote)
	case ActionDrawPolicies:
		return g.DrawPolicies(a.ActorID)
	case ActionDiscardPolicy:
		return g.DiscardPolicy(a.ActorID, a.Policy)
	case ActionEnactPolicy:
		return g.EnactPolicy(a.ActorID, a.Policy)
	case ActionRequestVeto:
		return g.RequestVeto(a.ActorID)
	case ActionHandleVeto:
		return g.HandleVeto(a.ActorID, a.Agree)
	case ActionInvestigate:
		return g.InvestigateLoyalty(a.ActorID, a.TargetID)
	case ActionSpecialElection:
		return g.CallSpecialElection(a.ActorID, a.TargetID)
	case ActionPolicyPeek:
		return g.PolicyPeek(a.ActorID)
	case ActionExecute:
		return g.Execute(a.ActorID, a.TargetID)
	default:
		return nil, consts.ErrorsInvalidAction
	}
}
