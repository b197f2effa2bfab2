package manager

import (
	"log"
	"sync"

	"github.com/shadowgov/server/ai"
	"github.com/shadowgov/server/game"
)

// Subscriber receives every event of a match in order.
type Subscriber func(e game.Event)

// ChatMessage is what a resolved chat trigger fans out as. The manager
// relays the generated text verbatim.
type ChatMessage struct {
	MatchID   string `json:"matchId"`
	SpeakerID string `json:"speakerId"`
	Message   string `json:"message"`
}

// ChatSubscriber receives chat messages for a match.
type ChatSubscriber func(msg ChatMessage)

// Match wraps one game with its autonomous seats and its broadcast fanout.
// All submissions funnel through Submit, which also runs the AI pump, so a
// single action from outside can play the game forward through any number
// of autonomous turns.
type Match struct {
	Game *game.Game

	mu       sync.Mutex
	seats    map[string]*ai.Seat
	cursor   int
	subs     map[string]Subscriber
	chatSubs map[string]ChatSubscriber
	chatGen  game.ChatGenerator

	triggerMu sync.Mutex
	triggers  []game.ChatTrigger
}

func newMatch(g *game.Game, chatGen game.ChatGenerator) *Match {
	match := &Match{
		Game:     g,
		seats:    map[string]*ai.Seat{},
		subs:     map[string]Subscriber{},
		chatSubs: map[string]ChatSubscriber{},
		chatGen:  chatGen,
	}
	g.ChatHook = match.enqueueTrigger
	return match
}

func (mt *Match) Subscribe(id string, sub Subscriber) {
	mt.mu.Lock()
	defer mt.mu.Unlock()
	mt.subs[id] = sub
}

func (mt *Match) SubscribeChat(id string, sub ChatSubscriber) {
	mt.mu.Lock()
	defer mt.mu.Unlock()
	mt.chatSubs[id] = sub
}

func (mt *Match) Unsubscribe(id string) {
	mt.mu.Lock()
	defer mt.mu.Unlock()
	delete(mt.subs, id)
	delete(mt.chatSubs, id)
}

// Start begins the match, creates the autonomous seats from the reveal
// payloads, and pumps AI turns until a human must act or the game ends.
func (mt *Match) Start() (*game.Result, error) {
	mt.mu.Lock()
	defer mt.mu.Unlock()
	return mt.start()
}

// start does the work of Start. Called with mt.mu held.
func (mt *Match) start() (*game.Result, error) {
	result, err := mt.Game.Start()
	if err != nil {
		return nil, err
	}

	reveals, _ := result.Data["reveals"].(map[string]interface{})
	i := 0
	for _, p := range mt.Game.Players {
		if p.Human {
			continue
		}
		reveal, _ := reveals[p.ID].(game.Reveal)
		personality := ai.Personalities[i%len(ai.Personalities)]
		mt.seats[p.ID] = ai.NewSeat(p.ID, reveal.Role, personality, reveal, mt.Game.Seed()+int64(i)+1)
		i++
	}

	mt.flush()
	mt.pump()
	return result, nil
}

// Submit processes one external action. Timed-out humans are handled by the
// caller submitting a forced default through here; the engine has no timers.
func (mt *Match) Submit(a game.Action) (*game.Result, error) {
	mt.mu.Lock()
	defer mt.mu.Unlock()

	// Starting needs the seat setup, not just the engine call.
	if a.Type == game.ActionStartGame {
		return mt.start()
	}

	result, err := mt.Game.Apply(a)
	if err != nil {
		return nil, err
	}
	mt.recordPrivate(a, result)
	mt.flush()
	mt.pump()
	return result, nil
}

// pump lets every autonomous seat act until only humans have pending
// actions or the game is over. Called with mt.mu held.
func (mt *Match) pump() {
	for !mt.Game.IsGameOver() {
		progressed := false
		for id, seat := range mt.seats {
			action := seat.NextAction(mt.Game)
			if action == nil {
				continue
			}
			result, err := mt.Game.Apply(*action)
			if err != nil {
				// NextAction only emits legal moves; a failure here means
				// another seat resolved the window first. Skip and rescan.
				log.Printf("match %s: seat %s action %s rejected: %v", mt.Game.ID, id, action.Type, err)
				continue
			}
			mt.recordPrivate(*action, result)
			mt.flush()
			progressed = true
		}
		if !progressed {
			return
		}
	}
	mt.flush()
}

// RecordClaim relays a player's self-reported cards to every autonomous
// seat. Claims are table talk: the engine never verifies them, the seats
// just remember them for later contradiction.
func (mt *Match) RecordClaim(playerID string, policies []game.Policy) {
	mt.mu.Lock()
	defer mt.mu.Unlock()
	for id, seat := range mt.seats {
		if id == playerID {
			continue
		}
		seat.Memory.RecordClaim(playerID, policies)
	}
}

// recordPrivate feeds actor-private result payloads back into the acting
// seat's memory, mirroring what a human player would have seen.
func (mt *Match) recordPrivate(a game.Action, result *game.Result) {
	seat, ok := mt.seats[a.ActorID]
	if !ok || result.Data == nil {
		return
	}
	if a.Type == game.ActionInvestigate {
		if party, ok := result.Data["party"].(game.Party); ok {
			seat.Memory.RecordInvestigation(a.TargetID, party)
		}
	}
}

// flush delivers journal events appended since the last flush to the AI
// seats and the subscribers, then resolves any pending chat triggers.
// Called with mt.mu held.
func (mt *Match) flush() {
	events := mt.Game.Events()
	for ; mt.cursor < len(events); mt.cursor++ {
		e := events[mt.cursor]
		for _, seat := range mt.seats {
			seat.Observe(e)
		}
		for _, sub := range mt.subs {
			sub(e)
		}
	}
	mt.drainTriggers()
}

func (mt *Match) enqueueTrigger(trigger game.ChatTrigger) {
	mt.triggerMu.Lock()
	defer mt.triggerMu.Unlock()
	mt.triggers = append(mt.triggers, trigger)
}

func (mt *Match) drainTriggers() {
	mt.triggerMu.Lock()
	triggers := mt.triggers
	mt.triggers = nil
	mt.triggerMu.Unlock()

	if mt.chatGen == nil {
		return
	}
	for _, trigger := range triggers {
		speaker := trigger.SpeakerID
		if speaker == "" {
			speaker = mt.pickSpeaker(trigger)
		} else if _, autonomous := mt.seats[speaker]; !autonomous {
			// Humans speak for themselves.
			continue
		}
		if speaker == "" {
			continue
		}
		trigger.SpeakerID = speaker
		text, err := mt.chatGen.Generate(trigger)
		if err != nil {
			log.Printf("match %s: chat generation failed: %v", mt.Game.ID, err)
			continue
		}
		if text == "" {
			continue
		}
		msg := ChatMessage{MatchID: mt.Game.ID, SpeakerID: speaker, Message: text}
		for _, sub := range mt.chatSubs {
			sub(msg)
		}
	}
}

// pickSpeaker finds an autonomous seat in the mood to comment.
func (mt *Match) pickSpeaker(trigger game.ChatTrigger) string {
	for id, seat := range mt.seats {
		if seat.WantsToChat(trigger) {
			return id
		}
	}
	return ""
}
