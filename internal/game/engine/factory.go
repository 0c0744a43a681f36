package engine

import (
	"errors"
	"fmt"

	"github.com/mage-knight-digital/mageknight/internal/game/action"
	"github.com/mage-knight-digital/mageknight/internal/game/combat"
	"github.com/mage-knight-digital/mageknight/internal/game/command"
	"github.com/mage-knight-digital/mageknight/internal/game/effect"
	"github.com/mage-knight-digital/mageknight/internal/game/modifier"
	"github.com/mage-knight-digital/mageknight/internal/game/state"
	"github.com/mage-knight-digital/mageknight/internal/game/validation"
)

// build turns a validated action into its command. Derived parameters (move
// cost, recruit cost, resolved card effects) are computed here so the
// command executes exactly what the validator approved.
func (e *Engine) build(g state.Game, player state.PlayerID, act action.Action) (command.Command, validation.Result) {
	switch a := act.(type) {
	case action.Move:
		terrain := g.Board[a.To]
		base, _ := terrain.BaseCost()
		cost := modifier.EffectiveTerrainCost(g, player, terrain, base)
		return &command.Move{PlayerID: player, To: a.To, Cost: cost}, validation.Valid()

	case action.Explore:
		return &command.Explore{PlayerID: player, At: a.At}, validation.Valid()

	case action.PlayCard:
		eff, err := e.resolver.Resolve(g, player, string(a.Card))
		if err != nil {
			return nil, resolveFailure(validation.CodeCardUnknown, string(a.Card), err)
		}
		return &command.PlayCard{PlayerID: player, Card: a.Card, Effect: eff}, validation.Valid()

	case action.UseSkill:
		eff, err := e.resolver.Resolve(g, player, string(a.Skill))
		if err != nil {
			return nil, resolveFailure(validation.CodeSkillUnknown, string(a.Skill), err)
		}
		return &command.UseSkill{PlayerID: player, Skill: a.Skill, Effect: eff}, validation.Valid()

	case action.Rest:
		return &command.Rest{PlayerID: player, Discard: a.Discard}, validation.Valid()

	case action.Recruit:
		return &command.Recruit{PlayerID: player, Unit: a.Unit, Cost: g.UnitCosts[a.Unit]}, validation.Valid()

	case action.EndTurn:
		return &command.EndTurn{PlayerID: player}, validation.Valid()

	case action.ResolveChoice:
		return &command.ResolveChoice{PlayerID: player, Option: a.Option}, validation.Valid()

	case action.EnterCombat:
		return &combat.EnterCombat{PlayerID: player, EnemyIDs: a.EnemyIDs, FortifiedSite: a.FortifiedSite}, validation.Valid()

	case action.AssignAttack:
		return &combat.AssignAttack{PlayerID: player, Enemy: a.Enemy, AttackType: a.AttackType, Element: a.Element, Amount: a.Amount}, validation.Valid()

	case action.UnassignAttack:
		return &combat.UnassignAttack{PlayerID: player, Enemy: a.Enemy, AttackType: a.AttackType, Element: a.Element, Amount: a.Amount}, validation.Valid()

	case action.AssignBlock:
		return &combat.AssignBlock{PlayerID: player, Enemy: a.Enemy, Element: a.Element, Amount: a.Amount}, validation.Valid()

	case action.UnassignBlock:
		return &combat.UnassignBlock{PlayerID: player, Enemy: a.Enemy, Element: a.Element, Amount: a.Amount}, validation.Valid()

	case action.DeclareBlock:
		return &combat.DeclareBlock{PlayerID: player, Enemy: a.Enemy}, validation.Valid()

	case action.FinalizeAttack:
		return &combat.FinalizeAttack{PlayerID: player}, validation.Valid()

	case action.AssignDamage:
		return &combat.AssignDamage{PlayerID: player, Enemy: a.Enemy}, validation.Valid()

	case action.AdvancePhase:
		return &combat.AdvancePhase{PlayerID: player}, validation.Valid()

	default:
		return nil, validation.Invalid(validation.CodeActionUnknown, fmt.Sprintf("no command for action %q", act.Type()))
	}
}

func resolveFailure(code validation.Code, source string, err error) validation.Result {
	if errors.Is(err, effect.ErrUnknownSource) {
		return validation.Invalid(code, fmt.Sprintf("no effect for %q", source))
	}
	return validation.Invalid(code, err.Error())
}
