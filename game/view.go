package game

import (
	"github.com/shadowgov/server/consts"
)

// PublicPlayer is the roster entry everyone may see.
type PublicPlayer struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Human bool   `json:"human"`
	Alive bool   `json:"alive"`
}

// PublicState is the maximally redacted projection of the game: what a
// spectator sees. Hidden roles and undisclosed cards never appear here.
type PublicState struct {
	MatchID         string        `json:"matchId"`
	Phase           consts.Phase  `json:"phase"`
	Players         []PublicPlayer `json:"players"`
	PresidentID     string        `json:"presidentId"`
	ChancellorID    string        `json:"chancellorId"`
	VotesSubmitted  []string      `json:"votesSubmitted"`
	ElectionTracker int           `json:"electionTracker"`
	LiberalTrack    int           `json:"liberalTrack"`
	FascistTrack    int           `json:"fascistTrack"`
	DeckRemaining   int           `json:"deckRemaining"`
	DeckDiscarded   int           `json:"deckDiscarded"`
	PendingPower    Power         `json:"pendingPower"`
	Governments     [][2]string   `json:"governments"`
	Winner          Party         `json:"winner,omitempty"`
}

// PlayerView is the projection for one seated player: the public state plus
// exactly the private information that seat has legitimately learned.
type PlayerView struct {
	PublicState

	YourID         string           `json:"yourId"`
	YourRole       Role             `json:"yourRole"`
	YourParty      Party            `json:"yourParty"`
	KnownFascists  []string         `json:"knownFascists,omitempty"`
	HitlerID       string           `json:"hitlerId,omitempty"`
	Hand           []Policy         `json:"hand,omitempty"`
	Investigations map[string]Party `json:"investigations,omitempty"`
}

// Reveal is the private role payload produced at game start.
type Reveal struct {
	Role     Role     `json:"role"`
	Party    Party    `json:"party"`
	Fascists []string `json:"fascists,omitempty"`
	HitlerID string   `json:"hitlerId,omitempty"`
}

func (g *Game) publicState() *PublicState {
	players := make([]PublicPlayer, 0, len(g.Players))
	for _, p := range g.Players {
		players = append(players, PublicPlayer{ID: p.ID, Name: p.Name, Human: p.Human, Alive: p.Alive})
	}
	voted := make([]string, 0, len(g.Election.Votes))
	for id := range g.Election.Votes {
		voted = append(voted, id)
	}
	governments := make([][2]string, len(g.Governments))
	copy(governments, g.Governments)

	state := &PublicState{
		MatchID:         g.ID,
		Phase:           g.Phase,
		Players:         players,
		PresidentID:     g.Election.PresidentID,
		ChancellorID:    g.Election.ChancellorID,
		VotesSubmitted:  voted,
		ElectionTracker: g.Election.Tracker,
		LiberalTrack:    g.Tracks.Liberal,
		FascistTrack:    g.Tracks.Fascist,
		PendingPower:    g.PendingPower,
		Governments:     governments,
		Winner:          g.Winner,
	}
	if g.Deck != nil {
		state.DeckRemaining = g.Deck.Remaining()
		state.DeckDiscarded = g.Deck.Discarded()
	}
	return state
}

// PublicView returns the spectator projection.
func (g *Game) PublicView() *PublicState {
	g.Lock()
	defer g.Unlock()
	return g.publicState()
}

// ViewFor projects the state for one player id. Unknown ids get the
// spectator projection inside an otherwise empty view.
func (g *Game) ViewFor(viewerID string) *PlayerView {
	g.Lock()
	defer g.Unlock()

	view := &PlayerView{PublicState: *g.publicState()}
	viewer := g.PlayerByID(viewerID)
	if viewer == nil || viewer.Role == "" {
		return view
	}

	view.YourID = viewer.ID
	view.YourRole = viewer.Role
	view.YourParty = viewer.Role.Party()

	reveal := g.revealFor(viewer)
	view.KnownFascists = reveal.Fascists
	view.HitlerID = reveal.HitlerID

	if g.Phase == consts.PhaseLegislativeSession {
		hand := g.Legislative.Hand
		if (len(hand) == 3 && viewerID == g.Election.PresidentID) ||
			(len(hand) == 2 && viewerID == g.Election.ChancellorID) {
			view.Hand = append([]Policy(nil), hand...)
		}
	}

	investigations := map[string]Party{}
	for _, p := range g.Players {
		if p.InvestigatedBy == viewerID {
			investigations[p.ID] = p.Role.Party()
		}
	}
	if len(investigations) > 0 {
		view.Investigations = investigations
	}
	return view
}

// revealFor builds the role-reveal payload per the visibility rules:
// fascists see each other and Hitler; Hitler sees the fascists only in
// games small enough for the rulebook to allow it.
func (g *Game) revealFor(p *Player) Reveal {
	reveal := Reveal{Role: p.Role, Party: p.Role.Party()}
	knows := p.Role == RoleFascist ||
		(p.Role == RoleHitler && g.rules.HitlerKnowsFascists(g.rosterSize))
	if !knows {
		return reveal
	}
	for _, other := range g.Players {
		if other.ID == p.ID {
			continue
		}
		switch other.Role {
		case RoleFascist:
			reveal.Fascists = append(reveal.Fascists, other.ID)
		case RoleHitler:
			reveal.HitlerID = other.ID
		}
	}
	return reveal
}
