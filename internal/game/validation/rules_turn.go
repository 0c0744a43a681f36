package validation

import (
	"fmt"

	"github.com/mage-knight-digital/mageknight/internal/game/action"
	"github.com/mage-knight-digital/mageknight/internal/game/state"
)

// GameNotEnded rejects every action once the game has ended.
func GameNotEnded(g state.Game, _ state.PlayerID, _ action.Action) Result {
	if g.Ended {
		return Invalid(CodeGameEnded, "the game has ended")
	}
	return Valid()
}

// PlayerExists rejects actions from unknown player ids.
func PlayerExists(g state.Game, player state.PlayerID, _ action.Action) Result {
	if !g.HasPlayer(player) {
		return Invalid(CodeUnknownPlayer, fmt.Sprintf("unknown player %q", player))
	}
	return Valid()
}

// TurnOwnership rejects actions from players other than the turn owner.
func TurnOwnership(g state.Game, player state.PlayerID, _ action.Action) Result {
	if current := g.CurrentPlayer(); current != player {
		return Invalid(CodeNotYourTurn, fmt.Sprintf("it is %s's turn", current))
	}
	return Valid()
}

// PendingChoiceGate rejects everything except resolve-choice while an effect
// awaits a player decision.
func PendingChoiceGate(g state.Game, _ state.PlayerID, act action.Action) Result {
	if g.PendingChoice == nil {
		return Valid()
	}
	if act.Type() == action.TypeResolveChoice {
		return Valid()
	}
	return Invalid(CodePendingChoiceBlocks, "a pending choice must be resolved first")
}

// NotKnockedOut rejects actions from a knocked-out player; only ending the
// turn remains legal.
func NotKnockedOut(g state.Game, player state.PlayerID, _ action.Action) Result {
	if g.Player(player).KnockedOut {
		return Invalid(CodePlayerKnockedOut, "player is knocked out; only end turn is allowed")
	}
	return Valid()
}

// NotInCombat rejects non-combat actions while a combat is active.
func NotInCombat(g state.Game, _ state.PlayerID, act action.Action) Result {
	if g.Combat == nil {
		return Valid()
	}
	switch act.Type() {
	case action.TypeMove:
		return Invalid(CodeMoveWhileInCombat, "cannot move during combat")
	case action.TypeExplore:
		return Invalid(CodeExploreWhileInCombat, "cannot explore during combat")
	case action.TypeRest:
		return Invalid(CodeRestWhileInCombat, "cannot rest during combat")
	case action.TypeRecruit:
		return Invalid(CodeRecruitWhileInCombat, "cannot recruit during combat")
	case action.TypeEndTurn:
		return Invalid(CodeEndTurnDuringCombat, "combat must be resolved before ending the turn")
	default:
		return Valid()
	}
}

// ChoicePending checks a resolve-choice action against the pending effect.
func ChoicePending(g state.Game, player state.PlayerID, act action.Action) Result {
	choose, ok := act.(action.ResolveChoice)
	if !ok {
		return Valid()
	}
	pending := g.PendingChoice
	if pending == nil {
		return Invalid(CodeNoPendingChoice, "no choice is pending")
	}
	if pending.Player != player {
		return Invalid(CodeChoiceNotYours, "the pending choice belongs to another player")
	}
	if choose.Option < 0 || choose.Option >= len(pending.Options) {
		return Invalid(CodeChoiceOutOfRange,
			fmt.Sprintf("option %d out of range (%d options)", choose.Option, len(pending.Options)))
	}
	return Valid()
}
