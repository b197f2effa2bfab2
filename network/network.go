package network

import (
	"github.com/shadowgov/server/game"
	"github.com/shadowgov/server/manager"
)

// Network is the interface of all kinds of transport front ends.
type Network interface {
	Serve() error
}

// Request is one inbound wire frame. Type selects which fields matter.
type Request struct {
	Type     string        `json:"type"`
	MatchID  string        `json:"matchId,omitempty"`
	PlayerID string        `json:"playerId,omitempty"`
	Humans   []string      `json:"humans,omitempty"`
	Seats    int           `json:"seats,omitempty"`
	Action   *game.Action  `json:"action,omitempty"`
	Policies []game.Policy `json:"policies,omitempty"`
}

// Request types.
const (
	RequestCreateMatch = "create_match"
	RequestStartMatch  = "start_match"
	RequestAction      = "action"
	RequestState       = "state"
	RequestActions     = "available_actions"
	RequestSubscribe   = "subscribe"
	RequestClaim       = "claim"
)

// Response is the reply to one request. Event and chat frames pushed by the
// broadcast fanout reuse the same envelope with types "event" and "chat".
type Response struct {
	Type    string               `json:"type"`
	OK      bool                 `json:"ok"`
	Error   string               `json:"error,omitempty"`
	MatchID string               `json:"matchId,omitempty"`
	Result  *game.Result         `json:"result,omitempty"`
	View    *game.PlayerView     `json:"view,omitempty"`
	Actions []string             `json:"actions,omitempty"`
	Event   *game.Event          `json:"event,omitempty"`
	Chat    *manager.ChatMessage `json:"chat,omitempty"`
}

func errResponse(reqType string, err error) Response {
	return Response{Type: reqType, Error: err.Error()}
}
