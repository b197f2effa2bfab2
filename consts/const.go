package consts

type Phase string

const (
	PhaseLobby              Phase = "lobby"
	PhaseRoleReveal         Phase = "role_reveal"
	PhaseElection           Phase = "election"
	PhaseLegislativeSession Phase = "legislative_session"
	PhasePresidentialPower  Phase = "presidential_power"
	PhaseGameOver           Phase = "game_over"
)

type EventType string

const (
	EventGameStarted                EventType = "game_started"
	EventPhaseChanged               EventType = "phase_changed"
	EventChancellorNominated        EventType = "chancellor_nominated"
	EventVoteSubmitted              EventType = "vote_submitted"
	EventElectionResult             EventType = "election_result"
	EventPolicyDrawn                EventType = "policy_drawn"
	EventPolicyDiscarded            EventType = "policy_discarded"
	EventPolicyEnacted              EventType = "policy_enacted"
	EventPresidentialPowerTriggered EventType = "presidential_power_triggered"
	EventPresidentialPowerExecuted  EventType = "presidential_power_executed"
	EventPlayerEliminated           EventType = "player_eliminated"
	EventGameOver                   EventType = "game_over"
	EventVetoRequested              EventType = "veto_requested"
	EventVetoResolved               EventType = "veto_resolved"
)

const (
	MinPlayers = 5
	MaxPlayers = 10

	LiberalPolicyCount = 6
	FascistPolicyCount = 11

	LiberalTrackLength = 5
	FascistTrackLength = 6

	ElectionTrackerLimit = 3
	VetoUnlockThreshold  = 5
)

type Error struct {
	Code int
	Msg  string
}

func (e Error) Error() string {
	return e.Msg
}

func NewErr(code int, msg string) Error {
	return Error{Code: code, Msg: msg}
}

var (
	ErrorsInvalidRosterSize = NewErr(1, "Roster size must be between 5 and 10. ")
	ErrorsWrongPhase        = NewErr(2, "Action not allowed in current phase. ")
	ErrorsNotPlayerTurn     = NewErr(3, "Not your turn. ")
	ErrorsInvalidTarget     = NewErr(4, "Invalid target. ")
	ErrorsInvalidAction     = NewErr(5, "Invalid action. ")
	ErrorsGameOver          = NewErr(6, "Game is over. ")
)

var Phases = map[Phase]string{
	PhaseLobby:              "Lobby",
	PhaseRoleReveal:         "Role Reveal",
	PhaseElection:           "Election",
	PhaseLegislativeSession: "Legislative Session",
	PhasePresidentialPower:  "Presidential Power",
	PhaseGameOver:           "Game Over",
}
