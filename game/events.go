package game

import (
	"time"

	jsoniter "github.com/json-iterator/go"

	"github.com/shadowgov/server/consts"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Event is one immutable record in the match journal. The journal is
// append-only; records are never rewritten after being emitted.
type Event struct {
	Type      consts.EventType       `json:"type"`
	Timestamp time.Time              `json:"timestamp"`
	MatchID   string                 `json:"matchId"`
	Data      map[string]interface{} `json:"data"`
	State     *PublicState           `json:"publicState"`
}

// Marshal renders the event for the broadcast layer.
func (e Event) Marshal() ([]byte, error) {
	return json.Marshal(e)
}

// ChatTrigger is a discussion-opportunity signal. A collaborator turns it
// into message text; the engine neither generates nor parses chat content.
type ChatTrigger struct {
	MatchID   string                 `json:"matchId"`
	Phase     consts.Phase           `json:"phase"`
	Context   string                 `json:"context"`
	SpeakerID string                 `json:"speakerId,omitempty"`
	Data      map[string]interface{} `json:"data,omitempty"`
}

// ChatGenerator supplies message text for a chat trigger.
type ChatGenerator interface {
	Generate(trigger ChatTrigger) (string, error)
}

func (g *Game) appendEvent(t consts.EventType, data map[string]interface{}) *Event {
	event := Event{
		Type:      t,
		Timestamp: time.Now(),
		MatchID:   g.ID,
		Data:      data,
		State:     g.publicState(),
	}
	g.events = append(g.events, event)
	return &g.events[len(g.events)-1]
}

func (g *Game) emitChatTrigger(context, speakerID string, data map[string]interface{}) {
	if g.ChatHook == nil {
		return
	}
	g.ChatHook(ChatTrigger{
		MatchID:   g.ID,
		Phase:     g.Phase,
		Context:   context,
		SpeakerID: speakerID,
		Data:      data,
	})
}

// Events returns a copy of the journal so far.
func (g *Game) Events() []Event {
	g.Lock()
	defer g.Unlock()
	events := make([]Event, len(g.events))
	copy(events, g.events)
	return events
}
