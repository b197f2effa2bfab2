package manager

import (
	"fmt"
	"sort"

	"github.com/awesome-cap/hashmap"
	"github.com/google/uuid"

	"github.com/shadowgov/server/game"
)

// Manager owns every running match. Matches are fully independent; each
// serializes its own action processing.
type Manager struct {
	matches *hashmap.HashMap
	rules   game.Rules
	chatGen game.ChatGenerator
}

func New(rules game.Rules, chatGen game.ChatGenerator) *Manager {
	return &Manager{
		matches: hashmap.New(),
		rules:   rules,
		chatGen: chatGen,
	}
}

// CreateMatch creates a lobby with the given human players, padded with
// autonomous seats up to totalSeats. Seed 0 picks a random seed.
func (m *Manager) CreateMatch(humanNames []string, totalSeats int, seed int64) (*Match, error) {
	if totalSeats < len(humanNames) {
		totalSeats = len(humanNames)
	}
	seats := make([]game.Seat, 0, totalSeats)
	for _, name := range humanNames {
		seats = append(seats, game.Seat{Name: name, Human: true})
	}
	for i := len(seats); i < totalSeats; i++ {
		seats = append(seats, game.Seat{Name: fmt.Sprintf("Bot %d", i+1), Human: false})
	}
	if seed == 0 {
		var err error
		if seed, err = NewSeed(); err != nil {
			return nil, err
		}
	}

	id := uuid.NewString()
	match := newMatch(game.New(id, seats, m.rules, seed), m.chatGen)
	m.matches.Set(id, match)
	return match, nil
}

func (m *Manager) GetMatch(id string) *Match {
	if v, ok := m.matches.Get(id); ok {
		return v.(*Match)
	}
	return nil
}

func (m *Manager) RemoveMatch(id string) {
	m.matches.Del(id)
}

func (m *Manager) Matches() []*Match {
	list := make([]*Match, 0)
	m.matches.Foreach(func(e *hashmap.Entry) {
		list = append(list, e.Value().(*Match))
	})
	sort.Slice(list, func(i, j int) bool {
		return list[i].Game.ID < list[j].Game.ID
	})
	return list
}
