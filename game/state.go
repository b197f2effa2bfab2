package game

import (
	"math/rand"
	"sync"

	"github.com/google/uuid"

	"github.com/shadowgov/server/consts"
)

// ElectionState tracks one election window plus the term-limit memory,
// which is updated only on successful government formation.
type ElectionState struct {
	PresidentID      string          `json:"presidentId"`
	ChancellorID     string          `json:"chancellorId"`
	Votes            map[string]bool `json:"votes"`
	LastPresidentID  string          `json:"lastPresidentId"`
	LastChancellorID string          `json:"lastChancellorId"`
	Tracker          int             `json:"tracker"`
}

// LegislativeState tracks the cards in play between draw and enactment.
type LegislativeState struct {
	Hand          []Policy `json:"-"`
	VetoRequested bool     `json:"vetoRequested"`
	VetoSpent     bool     `json:"vetoSpent"`
}

// Tracks counts enacted policies. Both counts only ever increase.
type Tracks struct {
	Liberal int `json:"liberal"`
	Fascist int `json:"fascist"`
}

// Game is the authoritative state of one match. All mutation goes through
// the action methods, which serialize on the embedded mutex, validate fully,
// then commit; a rejected action leaves the state untouched.
type Game struct {
	sync.Mutex

	ID          string
	Players     []*Player
	Deck        *Deck
	Phase       consts.Phase
	Election    ElectionState
	Legislative LegislativeState
	Tracks      Tracks

	PendingPower Power
	Winner       Party
	Governments  [][2]string

	// ChatHook, when set, receives discussion-opportunity signals. The
	// engine never waits on it and never consumes its output directly.
	ChatHook func(ChatTrigger)

	rules        Rules
	rng          *rand.Rand
	seed         int64
	rosterSize   int
	events       []Event
	investigated map[string]bool

	presidentIdx     int
	specialPresident string
}

// Seat describes one player joining a new game.
type Seat struct {
	Name  string
	Human bool
}

// New creates a game in the lobby phase. The seed drives every shuffle the
// game will ever make, so a seed plus an action sequence replays exactly.
func New(id string, seats []Seat, rules Rules, seed int64) *Game {
	players := make([]*Player, 0, len(seats))
	for _, seat := range seats {
		players = append(players, &Player{
			ID:    uuid.NewString(),
			Name:  seat.Name,
			Human: seat.Human,
			Alive: true,
		})
	}
	return &Game{
		ID:           id,
		Players:      players,
		Phase:        consts.PhaseLobby,
		Election:     ElectionState{Votes: map[string]bool{}},
		PendingPower: PowerNone,
		rules:        rules,
		rng:          rand.New(rand.NewSource(seed)),
		seed:         seed,
		investigated: map[string]bool{},
	}
}

func (g *Game) Rules() Rules {
	return g.rules
}

func (g *Game) Seed() int64 {
	return g.seed
}

// RosterSize is the starting player count, which fixes the power table.
func (g *Game) RosterSize() int {
	return g.rosterSize
}

func (g *Game) PlayerByID(id string) *Player {
	for _, p := range g.Players {
		if p.ID == id {
			return p
		}
	}
	return nil
}

func (g *Game) LivingPlayers() []*Player {
	living := make([]*Player, 0, len(g.Players))
	for _, p := range g.Players {
		if p.Alive {
			living = append(living, p)
		}
	}
	return living
}

func (g *Game) livingCount() int {
	return len(g.LivingPlayers())
}

// nextLivingIdx walks the seating order from the seat after idx, wrapping,
// and returns the first living seat.
func (g *Game) nextLivingIdx(idx int) int {
	for i := 1; i <= len(g.Players); i++ {
		next := (idx + i) % len(g.Players)
		if g.Players[next].Alive {
			return next
		}
	}
	return idx
}

func (g *Game) isGameOver() bool {
	return g.Phase == consts.PhaseGameOver
}

// IsGameOver reports whether a winner has been determined.
func (g *Game) IsGameOver() bool {
	g.Lock()
	defer g.Unlock()
	return g.isGameOver()
}

// GetWinner returns the winning party, or empty until the game is over.
func (g *Game) GetWinner() Party {
	g.Lock()
	defer g.Unlock()
	return g.Winner
}

// evaluateWin checks the win conditions in fixed priority order. It never
// mutates; callers transition to game over on a non-empty result.
func (g *Game) evaluateWin() Party {
	for _, p := range g.Players {
		if p.IsHitler() && !p.Alive {
			return PartyLiberal
		}
	}
	if g.Tracks.Liberal >= g.rules.LiberalTrack {
		return PartyLiberal
	}
	if g.Tracks.Fascist >= g.rules.FascistTrack {
		return PartyFascist
	}
	if g.Tracks.Fascist >= 3 && len(g.Governments) > 0 {
		chancellor := g.PlayerByID(g.Governments[len(g.Governments)-1][1])
		if chancellor != nil && chancellor.IsHitler() {
			return PartyFascist
		}
	}
	return ""
}

func (g *Game) gameOver(winner Party) {
	g.Winner = winner
	g.transitionTo(consts.PhaseGameOver)
	roles := map[string]interface{}{}
	for _, p := range g.Players {
		roles[p.ID] = p.Role
	}
	g.appendEvent(consts.EventGameOver, map[string]interface{}{
		"winner": winner,
		"roles":  roles,
	})
}

func (g *Game) transitionTo(phase consts.Phase) {
	if g.Phase == phase {
		return
	}
	from := g.Phase
	g.Phase = phase
	g.appendEvent(consts.EventPhaseChanged, map[string]interface{}{
		"from": from,
		"to":   phase,
	})
}

// validate runs the common pre-mutation checks: game not over, phase
// matches, actor exists and is alive.
func (g *Game) validate(actorID string, phase consts.Phase) error {
	if g.isGameOver() {
		return consts.ErrorsGameOver
	}
	if g.Phase != phase {
		return consts.ErrorsWrongPhase
	}
	actor := g.PlayerByID(actorID)
	if actor == nil || !actor.Alive {
		return consts.ErrorsInvalidAction
	}
	return nil
}
