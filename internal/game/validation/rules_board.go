package validation

import (
	"fmt"

	"github.com/mage-knight-digital/mageknight/internal/game/action"
	"github.com/mage-knight-digital/mageknight/internal/game/modifier"
	"github.com/mage-knight-digital/mageknight/internal/game/state"
)

// MoveTarget checks the destination hex exists, is passable and adjacent.
func MoveTarget(g state.Game, player state.PlayerID, act action.Action) Result {
	move, ok := act.(action.Move)
	if !ok {
		return Valid()
	}
	terrain, onBoard := g.Board[move.To]
	if !onBoard {
		return Invalid(CodeMoveTargetOffBoard, "destination is not on the board")
	}
	if _, passable := terrain.BaseCost(); !passable {
		return Invalid(CodeMoveTargetImpassable, fmt.Sprintf("%s is impassable", terrain))
	}
	if !g.Player(player).Position.Adjacent(move.To) {
		return Invalid(CodeMoveNotAdjacent, "destination is not adjacent")
	}
	return Valid()
}

// MoveCost checks the player can pay the effective terrain cost. The cost
// folds active modifiers, so reading it goes through the registry.
func MoveCost(g state.Game, player state.PlayerID, act action.Action) Result {
	move, ok := act.(action.Move)
	if !ok {
		return Valid()
	}
	terrain := g.Board[move.To]
	base, _ := terrain.BaseCost()
	cost := modifier.EffectiveTerrainCost(g, player, terrain, base)
	if points := g.Player(player).MovePoints; points < cost {
		return Invalid(CodeMoveInsufficientPoints,
			fmt.Sprintf("move costs %d, player has %d", cost, points))
	}
	return Valid()
}

// ExploreTarget checks the explored position is adjacent, unrevealed, and
// that tiles remain.
func ExploreTarget(g state.Game, player state.PlayerID, act action.Action) Result {
	explore, ok := act.(action.Explore)
	if !ok {
		return Valid()
	}
	if _, revealed := g.Board[explore.At]; revealed {
		return Invalid(CodeExploreAlreadyRevealed, "position is already revealed")
	}
	if !g.Player(player).Position.Adjacent(explore.At) {
		return Invalid(CodeExploreNotAdjacent, "position is not adjacent")
	}
	if len(g.Decks.Tiles) == 0 {
		return Invalid(CodeExploreNoTilesLeft, "no tiles remain")
	}
	if g.Player(player).MovePoints < 2 {
		return Invalid(CodeExploreInsufficientMove, "exploring costs 2 move points")
	}
	return Valid()
}
