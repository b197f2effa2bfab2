package render

import (
	"bytes"
	"fmt"

	"github.com/fatih/color"

	"github.com/shadowgov/server/consts"
	"github.com/shadowgov/server/game"
)

var (
	liberalColor = color.New(color.FgBlue, color.Bold)
	fascistColor = color.New(color.FgRed, color.Bold)
	phaseColor   = color.New(color.FgYellow)
	mutedColor   = color.New(color.FgHiBlack)
)

func policyDesc(p game.Policy) string {
	if p == game.PolicyLiberal {
		return liberalColor.Sprint("LIBERAL")
	}
	return fascistColor.Sprint("FASCIST")
}

func partyDesc(p game.Party) string {
	if p == game.PartyLiberal {
		return liberalColor.Sprint("Liberals")
	}
	return fascistColor.Sprint("Fascists")
}

// Event renders one journal event as a console line.
func Event(e game.Event, names map[string]string) string {
	name := func(key string) string {
		id, _ := e.Data[key].(string)
		if n, ok := names[id]; ok {
			return n
		}
		return id
	}

	switch e.Type {
	case consts.EventGameStarted:
		return fmt.Sprintf("Game started with %v players", e.Data["playerCount"])
	case consts.EventPhaseChanged:
		return phaseColor.Sprintf("-- %v -> %v --", e.Data["from"], e.Data["to"])
	case consts.EventChancellorNominated:
		return fmt.Sprintf("%s nominates %s as chancellor", name("presidentId"), name("chancellorId"))
	case consts.EventVoteSubmitted:
		return mutedColor.Sprintf("%s voted", name("playerId"))
	case consts.EventElectionResult:
		if passed, _ := e.Data["passed"].(bool); passed {
			return fmt.Sprintf("Government elected: president %s, chancellor %s", name("presidentId"), name("chancellorId"))
		}
		return fmt.Sprintf("Election failed, tracker at %v", e.Data["tracker"])
	case consts.EventPolicyDrawn:
		return mutedColor.Sprintf("%s drew %v policies", name("presidentId"), e.Data["count"])
	case consts.EventPolicyDiscarded:
		return mutedColor.Sprintf("%s discarded a policy", name("presidentId"))
	case consts.EventPolicyEnacted:
		policy, _ := e.Data["policy"].(game.Policy)
		if forced, _ := e.Data["forced"].(bool); forced {
			return fmt.Sprintf("CHAOS! Top policy enacted: %s", policyDesc(policy))
		}
		return fmt.Sprintf("Policy enacted: %s (board %d/%d)", policyDesc(policy), e.State.LiberalTrack, e.State.FascistTrack)
	case consts.EventPresidentialPowerTriggered:
		return phaseColor.Sprintf("Presidential power unlocked: %v", e.Data["power"])
	case consts.EventPresidentialPowerExecuted:
		return fmt.Sprintf("Power %v used on %s", e.Data["power"], name("targetId"))
	case consts.EventPlayerEliminated:
		return fascistColor.Sprintf("%s has been executed", name("playerId"))
	case consts.EventVetoRequested:
		return fmt.Sprintf("%s requests a veto", name("chancellorId"))
	case consts.EventVetoResolved:
		if approved, _ := e.Data["approved"].(bool); approved {
			return "Veto approved, both policies discarded"
		}
		return "Veto refused, chancellor must enact"
	case consts.EventGameOver:
		winner, _ := e.Data["winner"].(game.Party)
		return fmt.Sprintf("GAME OVER. %s win!", partyDesc(winner))
	default:
		return string(e.Type)
	}
}

// Summary renders the public board state.
func Summary(state *game.PublicState, names map[string]string) string {
	buf := bytes.Buffer{}
	buf.WriteString(fmt.Sprintf("Phase: %s\n", consts.Phases[state.Phase]))
	buf.WriteString(fmt.Sprintf("Board: %s %d/5  %s %d/6  tracker %d/3\n",
		liberalColor.Sprint("L"), state.LiberalTrack,
		fascistColor.Sprint("F"), state.FascistTrack,
		state.ElectionTracker))
	buf.WriteString(fmt.Sprintf("Deck: %d draw, %d discard\n", state.DeckRemaining, state.DeckDiscarded))
	for _, p := range state.Players {
		marker := "  "
		if p.ID == state.PresidentID {
			marker = "P "
		} else if p.ID == state.ChancellorID {
			marker = "C "
		}
		status := ""
		if !p.Alive {
			status = mutedColor.Sprint(" (dead)")
		}
		buf.WriteString(fmt.Sprintf("%s%s%s\n", marker, p.Name, status))
	}
	return buf.String()
}
