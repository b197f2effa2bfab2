package game

// Role is a player's secret role.
type Role string

const (
	RoleLiberal Role = "liberal"
	RoleFascist Role = "fascist"
	RoleHitler  Role = "hitler"
)

// Party is the affiliation revealed by an investigation.
type Party string

const (
	PartyLiberal Party = "liberal"
	PartyFascist Party = "fascist"
)

// Party gets the party membership card for the role. Investigations reveal
// the party only, never the Hitler distinction.
func (r Role) Party() Party {
	switch r {
	case RoleFascist, RoleHitler:
		return PartyFascist
	default:
		return PartyLiberal
	}
}

// Policy is a card in the policy deck.
type Policy string

const (
	PolicyLiberal Policy = "liberal"
	PolicyFascist Policy = "fascist"
)

type Player struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Role           Role   `json:"role"`
	Human          bool   `json:"human"`
	Alive          bool   `json:"alive"`
	InvestigatedBy string `json:"investigatedBy,omitempty"`
}

func (p *Player) IsHitler() bool {
	return p.Role == RoleHitler
}

func (p *Player) IsFascist() bool {
	return p.Role.Party() == PartyFascist
}
