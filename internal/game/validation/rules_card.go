package validation

import (
	"fmt"

	"github.com/mage-knight-digital/mageknight/internal/game/action"
	"github.com/mage-knight-digital/mageknight/internal/game/state"
)

// CardInHand checks a played card is in hand and is not a wound.
func CardInHand(g state.Game, player state.PlayerID, act action.Action) Result {
	play, ok := act.(action.PlayCard)
	if !ok {
		return Valid()
	}
	if play.Card == state.WoundCard {
		return Invalid(CodeCardIsWound, "wounds cannot be played")
	}
	if _, found := g.Player(player).RemoveHandCard(play.Card); !found {
		return Invalid(CodeCardNotInHand, fmt.Sprintf("card %q is not in hand", play.Card))
	}
	return Valid()
}

// SkillAvailable checks skill ownership and once-per-turn use.
func SkillAvailable(g state.Game, player state.PlayerID, act action.Action) Result {
	use, ok := act.(action.UseSkill)
	if !ok {
		return Valid()
	}
	p := g.Player(player)
	if !p.HasSkill(use.Skill) {
		return Invalid(CodeSkillNotOwned, fmt.Sprintf("skill %q is not owned", use.Skill))
	}
	if p.UsedSkills[use.Skill] {
		return Invalid(CodeSkillUsed, fmt.Sprintf("skill %q was already used this turn", use.Skill))
	}
	return Valid()
}

// RestDiscard checks the rest discard is a non-wound hand card.
func RestDiscard(g state.Game, player state.PlayerID, act action.Action) Result {
	rest, ok := act.(action.Rest)
	if !ok {
		return Valid()
	}
	if rest.Discard == state.WoundCard {
		return Invalid(CodeRestDiscardIsWound, "rest requires discarding a non-wound card")
	}
	if _, found := g.Player(player).RemoveHandCard(rest.Discard); !found {
		return Invalid(CodeRestDiscardNotInHand, fmt.Sprintf("card %q is not in hand", rest.Discard))
	}
	return Valid()
}

// RecruitOffer checks the unit is on offer and affordable.
func RecruitOffer(g state.Game, player state.PlayerID, act action.Action) Result {
	recruit, ok := act.(action.Recruit)
	if !ok {
		return Valid()
	}
	onOffer := false
	for _, u := range g.Offers.Units {
		if u == recruit.Unit {
			onOffer = true
			break
		}
	}
	if !onOffer {
		return Invalid(CodeRecruitUnitNotInOffer, fmt.Sprintf("unit %q is not on offer", recruit.Unit))
	}
	cost, known := g.UnitCosts[recruit.Unit]
	if !known {
		return Invalid(CodeRecruitUnknownUnit, fmt.Sprintf("unit %q has no cost entry", recruit.Unit))
	}
	if influence := g.Player(player).Influence; influence < cost {
		return Invalid(CodeRecruitInsufficientInfluence,
			fmt.Sprintf("unit costs %d influence, player has %d", cost, influence))
	}
	return Valid()
}
